package z80

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	deep "github.com/go-test/deep"
)

// TestDDFDIdempotence: a run of k>=1 prefix bytes of the same kind
// followed by an unprefixed opcode produces the same architectural
// state as a single prefix (modulo T-states and R, so the two runs
// are over identical programs of different prefix-run length rather
// than compared run-for-run).
func TestDDFDIdempotence(t *testing.T) {
	// ADD IX,BC with one DD, versus three redundant DD bytes in front of it.
	single, _ := newRig(0, 0xDD, 0x09)
	single.SetBC(0x0101)
	single.IX = 0x2000

	repeated, _ := newRig(0, 0xDD, 0xDD, 0xDD, 0x09)
	repeated.SetBC(0x0101)
	repeated.IX = 0x2000

	single.Step()
	repeated.Step()
	repeated.Step()
	repeated.Step()

	got, want := repeated.Snapshot(), single.Snapshot()
	got.Clocks, want.Clocks = 0, 0
	got.PC, want.PC = 0, 0
	got.R, want.R = 0, 0
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("DD-run not idempotent with single DD: %v\nrepeated state: %s", diff, spew.Sdump(repeated))
	}
}

// TestPushPopRoundTripFullState: PUSH BC; POP BC must restore every
// register field untouched, not just BC/SP, diffed via go-test/deep
// across the whole RegisterSnapshot in one call.
func TestPushPopRoundTripFullState(t *testing.T) {
	cpu, _ := newRig(0, 0xC5 /* PUSH BC */, 0xC1 /* POP BC */)
	cpu.SetBC(0xBEEF)
	cpu.SP = 0x9000
	before := cpu.Snapshot()

	cpu.Step()
	cpu.Step()

	after := cpu.Snapshot()
	after.PC, before.PC = 0, 0
	after.Clocks, before.Clocks = 0, 0
	after.R, before.R = 0, 0
	if diff := deep.Equal(before, after); diff != nil {
		t.Fatalf("PUSH/POP did not round-trip the full register file: %v\nfinal state: %s", diff, spew.Sdump(cpu))
	}
}
