//go:build lruk_debug

package lruk

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
