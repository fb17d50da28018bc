package hostkit

import "io"

// ACIA status register bits (Motorola MC6850 layout).
const (
	aciaStatusRDRF = 1 << 0 // receive data register full
	aciaStatusTDRE = 1 << 1 // transmit data register empty
)

// ACIA is a minimal MC6850-style serial peripheral: one status/control
// register and one data register, reachable through two I/O ports (see
// ACIABus.In/Out). It is the "peripheral emulation" example spec §1
// names as a host-system concern outside the CPU core.
//
// Received bytes are queued by the host calling Feed (e.g. from a
// terminal reader goroutine or a test); transmitted bytes are written
// to Out immediately, matching real ACIA behaviour where the TDRE flag
// clears only for the duration of the actual shift-out (which this
// model treats as instantaneous, consistent with spec's "no bus-cycle
// accuracy" non-goal).
type ACIA struct {
	Out io.Writer // transmit sink; nil discards output

	rx      []byte
	control byte
}

// Feed appends bytes to the receive queue, as if they had arrived over
// the wire; ReadData drains them in order.
func (a *ACIA) Feed(data []byte) { a.rx = append(a.rx, data...) }

func (a *ACIA) ReadStatus() byte {
	var s byte = aciaStatusTDRE // Out never blocks, so always ready to transmit.
	if len(a.rx) > 0 {
		s |= aciaStatusRDRF
	}
	return s
}

func (a *ACIA) ReadData() byte {
	if len(a.rx) == 0 {
		return 0
	}
	v := a.rx[0]
	a.rx = a.rx[1:]
	return v
}

func (a *ACIA) WriteControl(v byte) {
	a.control = v
	if v&0x03 == 0x03 {
		// Master reset: discards any pending receive bytes. The written
		// value is still kept as the control register.
		a.rx = nil
	}
}

func (a *ACIA) WriteData(v byte) {
	if a.Out != nil {
		_, _ = a.Out.Write([]byte{v})
	}
}
