//go:build tinygo

package core

import (
	"runtime/volatile"
	"unsafe"
)

// Hardware bus backend. volatile.Register* guarantees every access reaches
// the bus exactly once, in program order.

func busWrite8(addr uintptr, value uint8) {
	(*volatile.Register8)(unsafe.Pointer(addr)).Set(value)
}

func busWrite32(addr uintptr, value uint32) {
	(*volatile.Register32)(unsafe.Pointer(addr)).Set(value)
}

func busRead32(addr uintptr) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(addr)).Get()
}
