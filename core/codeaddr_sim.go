//go:build !tinygo

package core

import "unsafe"

// codeAddress extracts the entry address from a func value. Under the gc
// toolchain a func value points at a header whose first word is the code
// pointer.
func codeAddress(h Handler) uintptr {
	return **(**uintptr)(unsafe.Pointer(&h))
}
