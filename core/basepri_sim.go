//go:build !tinygo

package core

// Simulated BASEPRI register for host builds.
var simBasePri uint32

func blockIRQs(threshold uint32) uint32 {
	prev := simBasePri
	simBasePri = threshold
	return prev
}

func restoreIRQs(state uint32) {
	simBasePri = state
}
