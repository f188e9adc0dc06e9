package core

// Memory-mapped register access. Every register is addressed as a base
// address (start of a register bank) plus a byte offset within the bank.
// Addresses are not validated; at this layer there is no way to tell a
// valid peripheral address from garbage, so that contract stays with the
// caller.
//
// On hardware builds each access is volatile: it reaches the bus exactly
// once and is never cached, elided, or reordered relative to other register
// accesses. On host builds the same API is backed by a simulated register
// file so the rest of the firmware can be tested with the ordinary Go
// toolchain.

// WriteReg8 writes an 8-bit value to base+offset.
func WriteReg8(base, offset uintptr, value uint8) {
	busWrite8(base+offset, value)
}

// WriteReg32 writes a 32-bit value to base+offset.
func WriteReg32(base, offset uintptr, value uint32) {
	busWrite32(base+offset, value)
}

// ReadReg32 reads a 32-bit value from base+offset.
func ReadReg32(base, offset uintptr) uint32 {
	return busRead32(base + offset)
}

// ClearReg32 reads the register at base+offset, clears the given bits and
// writes the result back.
//
// This is not atomic. If the register can change between the read and the
// write (an interrupt handler, a hardware state machine), the caller must
// hold a critical section around the call.
func ClearReg32(base, offset uintptr, clearBits uint32) {
	value := ReadReg32(base, offset)
	value &^= clearBits
	WriteReg32(base, offset, value)
}

// SetReg32 reads the register at base+offset, sets the given bits and
// writes the result back. Same atomicity caveat as ClearReg32.
func SetReg32(base, offset uintptr, setBits uint32) {
	value := ReadReg32(base, offset)
	value |= setBits
	WriteReg32(base, offset, value)
}
