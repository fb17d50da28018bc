package hostkit

import (
	"io"

	"github.com/z80core/z80emu/z80"
)

// cpmBDOSEntry is the fixed CP/M BDOS entry point guest code CALLs.
const cpmBDOSEntry = 0x0005

// CPM BDOS function numbers this trap understands (console I/O only;
// disk functions are out of scope for a CPU-core reference host).
const (
	bdosConsoleOutput = 2
	bdosPrintString   = 9
	bdosSystemReset   = 0
)

// CPMConsole implements just enough of the CP/M BDOS surface (console
// output) for guest programs written against CP/M rather than bare
// I/O ports — the "CP/M BDOS trap" spec §1 names as an external
// collaborator. It is driven by ACIABus.Service, called once per Step
// iteration by the host run loop (see cmd/z80run), not by the core.
type CPMConsole struct {
	Out io.Writer

	// Halt is set by Trap when guest code invokes BDOS function 0
	// (system reset); the host run loop checks it to end execution.
	Halt bool
}

// Trap emulates the effect of `CALL 0005H`: it reads the requested
// BDOS function out of register C, performs it, then pops the return
// address the guest's CALL pushed and resumes there — exactly as if
// the CPU itself had executed a RET, without spending any core T-states
// on BDOS's internal (unspecified, host-side) implementation.
func (d *CPMConsole) Trap(cpu *z80.CPU, mem *RAM) {
	switch cpu.C {
	case bdosConsoleOutput:
		d.write(cpu.E)
	case bdosPrintString:
		addr := cpu.DE()
		for {
			b := mem.ReadMem(addr)
			if b == '$' {
				break
			}
			d.write(b)
			addr++
		}
	case bdosSystemReset:
		d.Halt = true
	}

	lo := mem.ReadMem(cpu.SP)
	hi := mem.ReadMem(cpu.SP + 1)
	cpu.SP += 2
	cpu.PC = uint16(hi)<<8 | uint16(lo)
}

func (d *CPMConsole) write(b byte) {
	if d.Out != nil {
		_, _ = d.Out.Write([]byte{b})
	}
}
