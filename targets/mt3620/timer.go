//go:build mt3620

package main

import "voltmon/core"

// GPT3 is the free-running 1 MHz counter on the IOM4 general-purpose
// timer block. Delays are busy-polled against it; there is no interrupt
// and no early exit.
const gptBase uintptr = 0x21030000

const (
	gpt3Ctrl  = 0x50
	gpt3Count = 0x54
)

const (
	gpt3Enable  = 0x1
	gpt3Speed1M = 0x4 // count at 1 MHz instead of 32 kHz
)

type gptTimer struct {
	started bool
}

func (t *gptTimer) start() {
	core.SetReg32(gptBase, gpt3Ctrl, gpt3Enable|gpt3Speed1M)
	t.started = true
}

// WaitUs blocks for at least us microseconds. Unsigned subtraction keeps
// the comparison correct across counter wraparound.
func (t *gptTimer) WaitUs(us uint32) {
	if !t.started {
		t.start()
	}
	start := core.ReadReg32(gptBase, gpt3Count)
	for core.ReadReg32(gptBase, gpt3Count)-start < us {
	}
}
