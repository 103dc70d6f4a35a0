//go:build !lruk_debug

package lruk

const debugging = false

func assert(bool, string) {}
