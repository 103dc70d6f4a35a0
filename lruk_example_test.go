package lruk_test

import (
	"fmt"

	lruk "github.com/farazdagi/lru-k"
)

func ExampleCache() {
	const (
		capacity = 1024 // TODO(Anyone): Use contextual capacity.
		key      = "name"
		value    = 1
	)
	cache, err := lruk.New[string, int](capacity)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	cache.Set(key, value)
	if got, ok := cache.Get(key); ok {
		fmt.Printf("%s: %d\n", key, got)
	}
	// Output:
	// name: 1
}

func ExampleNewK() {
	cache, err := lruk.NewK[int, string](2, 2, 0)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	cache.Set(1, "hot")
	cache.Get(1) // A second reference completes 1's history.
	cache.Set(2, "cold")
	cache.Set(3, "scan") // Evicts 2: referenced once, oldest.
	if _, ok := cache.Get(2); !ok {
		fmt.Println("2 was evicted")
	}
	if value, ok := cache.Get(1); ok {
		fmt.Println("1 is still cached:", value)
	}
	// Output:
	// 2 was evicted
	// 1 is still cached: hot
}
