// Package hostkit is a reference host system binding for package z80: a
// flat 64K RAM, an MC6850-style ACIA serial peripheral, and a CP/M BDOS
// console trap, wired together behind a single z80.Bus implementation.
//
// None of this is part of the CPU core's contract (see z80's package
// doc and spec §1/§7): the core never imports hostkit, and hostkit's
// only dependency on the core is the Bus interface it implements and
// the CPU type its BDOS trap peeks at between Step calls.
package hostkit

import "github.com/z80core/z80emu/z80"

// RAM is a flat 64K address space with wraparound identical to the
// core's own memory addressing (writes past 0xFFFF wrap to 0x0000).
type RAM [0x10000]byte

func (m *RAM) ReadMem(addr uint16) byte     { return m[addr] }
func (m *RAM) WriteMem(addr uint16, v byte) { m[addr] = v }

// Load copies data into RAM starting at addr, wrapping at 0x10000.
func (m *RAM) Load(addr uint16, data []byte) {
	for i, b := range data {
		m[addr+uint16(i)] = b
	}
}

// ACIABus is the reference Bus: RAM for every memory access, an ACIA
// on two I/O ports for serial console traffic, and an optional CP/M
// BDOS trap for guest programs written against CP/M's BDOS rather than
// bare-metal I/O.
type ACIABus struct {
	RAM  RAM
	ACIA ACIA

	// ControlPort/DataPort select which I/O addresses reach the ACIA;
	// everything else falls through to a no-op (real software on real
	// hardware sees an unused port as a floating bus, which this core
	// has no way to model — see spec's out-of-scope bus-cycle note).
	ControlPort, DataPort uint16

	// CPM, when non-nil, intercepts CALL 0005H (the BDOS entry point)
	// the way a CP/M host would: see cpm.go.
	CPM *CPMConsole
}

// NewACIABus returns a bus with the ACIA at the conventional ZX-style
// ports 0x80 (control/status) and 0x81 (data); callers that need a
// different port map set ControlPort/DataPort directly afterwards.
func NewACIABus() *ACIABus {
	return &ACIABus{ControlPort: 0x80, DataPort: 0x81}
}

func (b *ACIABus) ReadMem(addr uint16) byte     { return b.RAM.ReadMem(addr) }
func (b *ACIABus) WriteMem(addr uint16, v byte) { b.RAM.WriteMem(addr, v) }

func (b *ACIABus) In(port uint16) byte {
	switch byte(port) {
	case byte(b.ControlPort):
		return b.ACIA.ReadStatus()
	case byte(b.DataPort):
		return b.ACIA.ReadData()
	}
	return 0xFF
}

func (b *ACIABus) Out(port uint16, v byte) {
	switch byte(port) {
	case byte(b.ControlPort):
		b.ACIA.WriteControl(v)
	case byte(b.DataPort):
		b.ACIA.WriteData(v)
	}
}

// Service gives the host-level collaborators (the BDOS trap) a chance
// to intercept execution before the next Step; it is not part of the
// core's contract, hence its own entry point here rather than inside
// z80.CPU.Step. Returns true if it handled this PC itself (the caller
// should skip calling cpu.Step for this iteration).
func (b *ACIABus) Service(cpu *z80.CPU) bool {
	if b.CPM != nil && cpu.PC == cpmBDOSEntry {
		b.CPM.Trap(cpu, &b.RAM)
		return true
	}
	return false
}
