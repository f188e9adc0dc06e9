//go:build mt3620

package main

import (
	"unsafe"

	"voltmon/core"
)

// End of TCM0; the linker script provides the symbol.
//
//go:extern _stack_top
var stackTop [0]uint32

func main() {
	rtCoreMain()
}

// rtCoreMain is the reset entry for the IOM4 core. The vector table's
// reset slot points back here, so a warm reset re-runs the whole INIT
// path. Never returns.
func rtCoreMain() {
	vt := core.NewVectorTable(uintptr(unsafe.Pointer(&stackTop)), rtCoreMain)

	core.SetUARTDriver(&iom4UART{})
	core.SetADCDriver(&mt3620ADC{})
	core.SetTimerDriver(&gptTimer{})

	// Installs the vector table, brings up the UART and ADC, then prints
	// one voltage line per second forever.
	core.NewApp(vt).Run()
}
