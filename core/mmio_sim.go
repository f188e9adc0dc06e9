//go:build !tinygo

package core

// Simulated register file for host builds. Byte-addressable so that 8-bit
// priority writes and 32-bit bank writes land in the same address space,
// little-endian like the real bus.

var simMem = map[uintptr]uint8{}

func busWrite8(addr uintptr, value uint8) {
	simMem[addr] = value
}

func busWrite32(addr uintptr, value uint32) {
	simMem[addr] = uint8(value)
	simMem[addr+1] = uint8(value >> 8)
	simMem[addr+2] = uint8(value >> 16)
	simMem[addr+3] = uint8(value >> 24)
}

func busRead32(addr uintptr) uint32 {
	return uint32(simMem[addr]) |
		uint32(simMem[addr+1])<<8 |
		uint32(simMem[addr+2])<<16 |
		uint32(simMem[addr+3])<<24
}

// simReset clears the simulated register file.
func simReset() {
	simMem = map[uintptr]uint8{}
}
