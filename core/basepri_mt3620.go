//go:build tinygo

package core

import "device/arm"

// BASEPRI access. MRS/MSR are the only way at this register; there is no
// memory-mapped alias.

func blockIRQs(threshold uint32) uint32 {
	prev := uint32(arm.AsmFull("mrs {}, BASEPRI", nil))
	arm.AsmFull("msr BASEPRI, {threshold}", map[string]interface{}{
		"threshold": threshold,
	})
	return prev
}

func restoreIRQs(state uint32) {
	arm.AsmFull("msr BASEPRI, {state}", map[string]interface{}{
		"state": state,
	})
}
