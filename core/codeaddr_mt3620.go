//go:build tinygo

package core

import "unsafe"

// codeAddress extracts the entry address from a func value. TinyGo lowers
// a func value to a {context, code pointer} pair; for the top-level
// functions the table accepts, the context word is nil and the code
// pointer sits one word in.
func codeAddress(h Handler) uintptr {
	pair := (*[2]uintptr)(unsafe.Pointer(&h))
	return pair[1]
}
