package core

// NVIC and interrupt masking for the MT3620 IOM4 cores (ARMv7-M).
// Register addresses from ARM DDI 0403E.b S3.2.2, S3.4.3.

const (
	scbBase       uintptr = 0xE000ED00
	scbVTOROffset uintptr = 0x08

	nvicISERBase uintptr = 0xE000E100
	nvicIPRBase  uintptr = 0xE000E400
)

// The IOM4 cores use three bits to encode interrupt priorities. The value
// written to an IPR byte occupies the top bits; the rest are reserved.
const IRQPriorityBits = 3

// IRQCount is the number of peripheral interrupt lines on the IOM4, from
// the MT3620 datasheet.
const IRQCount = 100

// Interrupts with priority blockThreshold and above (numerically higher,
// logically lower urgency) are masked inside a critical section.
const blockThreshold = 1

// IRQState is the previous interrupt-mask threshold returned by BlockIRQs.
// It is an opaque token: the bit pattern is processor defined and may
// include reserved bits. Pass it to RestoreIRQs unchanged, exactly once.
type IRQState uint32

// SetIRQPriority sets the NVIC priority for one interrupt line.
// The priority must fit in IRQPriorityBits; anything wider is undefined.
// ARM DDI 0403E.d SB3.4.9, NVIC_IPR0-NVIC_IPR123.
func SetIRQPriority(irq int, priority uint8) {
	WriteReg8(nvicIPRBase, uintptr(irq), priority<<(8-IRQPriorityBits))
}

// EnableIRQ enables one interrupt line. Sets exactly one bit in the
// set-enable bank; writes of zero bits are ignored by the hardware, so no
// read-modify-write is needed on the ISER words themselves.
// ARM DDI 0403E.d SB3.4.4, NVIC_ISER0-NVIC_ISER15.
func EnableIRQ(irq int) {
	offset := uintptr(4 * (irq / 32))
	mask := uint32(1) << (irq % 32)
	SetReg32(nvicISERBase, offset, mask)
}

// BlockIRQs raises the priority-mask threshold so that interrupts at
// priority blockThreshold and above cannot preempt. Returns the previous
// threshold; pair every call with RestoreIRQs.
func BlockIRQs() IRQState {
	return IRQState(blockIRQs(blockThreshold))
}

// RestoreIRQs writes back a threshold token from BlockIRQs, exactly
// undoing the paired block.
func RestoreIRQs(state IRQState) {
	restoreIRQs(uint32(state))
}

// CriticalSection pairs BlockIRQs with its RestoreIRQs so the restore
// cannot be forgotten across early returns.
//
//	cs := core.EnterCritical()
//	defer cs.Exit()
type CriticalSection struct {
	prev IRQState
}

// EnterCritical blocks interrupts and captures the state to restore.
func EnterCritical() CriticalSection {
	return CriticalSection{prev: BlockIRQs()}
}

// Exit restores the interrupt state captured by EnterCritical. Call it
// exactly once.
func (cs CriticalSection) Exit() {
	RestoreIRQs(cs.prev)
}
