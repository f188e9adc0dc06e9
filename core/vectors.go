package core

import "unsafe"

// Exception vector table for the IOM4 core. The hardware reads slot 0 as
// the initial stack pointer and every other slot as a handler address, so
// no slot may ever be empty: unused slots carry the default halt handler.
//
// ARM DDI 0403E.d SB1.5.3: the table must be naturally aligned to a power
// of two >= its byte size, minimum 128 bytes. For 116 slots of 4 bytes
// that is 512. The checks below are constant expressions; violating them
// fails the build, never the device.

// ExceptionCount is the stack-pointer slot plus 15 system exception slots
// plus one slot per peripheral interrupt line.
const ExceptionCount = 16 + IRQCount

const vectorTableBytes = ExceptionCount * 4

// Round vectorTableBytes up to the next power of two (bit smear), then
// apply the architectural 128-byte floor.
const (
	vtSmear1 = vectorTableBytes - 1
	vtSmear2 = vtSmear1 | vtSmear1>>1
	vtSmear3 = vtSmear2 | vtSmear2>>2
	vtSmear4 = vtSmear3 | vtSmear3>>4
	vtSmear5 = vtSmear4 | vtSmear4>>8
	vtSmear6 = vtSmear5 | vtSmear5>>16

	// VectorTableAlign is the required alignment and, after padding, the
	// exact byte size of the encoded table.
	VectorTableAlign = max(128, vtSmear6+1)
)

// encodedVectorTable is the raw word layout the hardware consumes. The
// trailing pad fills the table out to its alignment; a table bigger than
// its computed alignment makes the pad length negative and stops the
// build.
type encodedVectorTable struct {
	words [ExceptionCount]uint32
	_     [VectorTableAlign - vectorTableBytes]byte
}

// The padded table must fill its alignment exactly (either subtraction
// underflows the uint conversion if not).
const (
	_ = uint(VectorTableAlign - unsafe.Sizeof(encodedVectorTable{}))
	_ = uint(unsafe.Sizeof(encodedVectorTable{}) - VectorTableAlign)
)

// System exception slots, ARMv7-M fixed assignments.
const (
	excStack        = 0 // initial MSP, not a handler
	ExcReset        = 1
	ExcNMI          = 2
	ExcHardFault    = 3
	ExcMPUFault     = 4
	ExcBusFault     = 5
	ExcUsageFault   = 6
	ExcSVCall       = 11
	ExcDebugMonitor = 12
	ExcPendSV       = 14
	ExcSysTick      = 15
)

// IRQToException maps a peripheral interrupt number to its table slot.
func IRQToException(irq int) int {
	return 16 + irq
}

// Handler is an exception or interrupt handler. Handlers must be
// top-level functions: the table stores raw code addresses and a closure
// has state the hardware cannot carry.
type Handler func()

// DefaultExceptionHandler is the sink for every fault the application does
// not handle. Recovery from a faulted bare-metal core is not generally
// possible, so it spins rather than guessing.
func DefaultExceptionHandler() {
	for {
	}
}

// VectorTable assembles handler assignments before the table is encoded
// and installed. After Install it is immutable.
type VectorTable struct {
	stackTop  uintptr
	handlers  [ExceptionCount]Handler
	installed bool
}

// NewVectorTable builds a fully populated table: stack top in slot 0, the
// reset handler in slot 1, and DefaultExceptionHandler everywhere else.
func NewVectorTable(stackTop uintptr, reset Handler) *VectorTable {
	if reset == nil {
		panic("nil handler")
	}
	t := &VectorTable{stackTop: stackTop}
	t.handlers[ExcReset] = reset
	for i := 2; i < ExceptionCount; i++ {
		t.handlers[i] = DefaultExceptionHandler
	}
	return t
}

// SetHandler overrides one system exception slot before installation.
func (t *VectorTable) SetHandler(slot int, h Handler) {
	if t.installed {
		panic("vector table already installed")
	}
	if slot <= excStack || slot >= 16 {
		panic("not a system exception slot")
	}
	if h == nil {
		panic("nil handler")
	}
	t.handlers[slot] = h
}

// SetIRQHandler overrides one peripheral interrupt slot before
// installation.
func (t *VectorTable) SetIRQHandler(irq int, h Handler) {
	if t.installed {
		panic("vector table already installed")
	}
	if irq < 0 || irq >= IRQCount {
		panic("IRQ number out of range")
	}
	if h == nil {
		panic("nil handler")
	}
	t.handlers[IRQToException(irq)] = h
}

// The one encoded table image. Its address goes into VTOR; the linker
// script places this object on a VectorTableAlign boundary (Go itself has
// no alignment directive for package data).
var encodedTable encodedVectorTable

// Install encodes the table into its hardware layout and points the
// processor's vector-table-offset register at it. Must run before any
// peripheral interrupt can assert; until then exceptions dispatch through
// whatever table the boot ROM left configured. Returns the table address.
func (t *VectorTable) Install() uintptr {
	encodedTable.words[excStack] = uint32(t.stackTop)
	for i := 1; i < ExceptionCount; i++ {
		encodedTable.words[i] = uint32(codeAddress(t.handlers[i]))
	}
	t.installed = true

	addr := uintptr(unsafe.Pointer(&encodedTable))
	WriteReg32(scbBase, scbVTOROffset, uint32(addr))
	return addr
}
