// Package loader reads guest program images for the reference host
// (cmd/z80run): raw binary dumps and Intel HEX records. It reads
// through afero.Fs rather than the os package directly, so the host
// and its tests can substitute an in-memory filesystem without ever
// touching disk.
//
// loader has no dependency on package z80 beyond the MemWriter
// interface below — it is one of the "external collaborators" spec §1
// places outside the CPU core, never imported by it.
package loader

import (
	"bufio"
	"fmt"

	"github.com/spf13/afero"
)

// MemWriter is the minimal surface loader needs to place bytes in
// guest memory; hostkit.RAM and hostkit.ACIABus's RAM field both
// satisfy it without loader importing hostkit.
type MemWriter interface {
	WriteMem(addr uint16, v byte)
}

// LoadBinary reads the raw file at path and writes it starting at
// loadAddr, wrapping at 0x10000 like every other memory access in this
// system. It returns the number of bytes written.
func LoadBinary(fs afero.Fs, path string, loadAddr uint16, mem MemWriter) (int, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, fmt.Errorf("loader: read binary %s: %w", path, err)
	}
	for i, b := range data {
		mem.WriteMem(loadAddr+uint16(i), b)
	}
	return len(data), nil
}

// HexResult reports what an Intel HEX load found, since (unlike a raw
// binary) a HEX file names its own load addresses and may declare an
// entry point.
type HexResult struct {
	BytesLoaded int
	EntryPoint  uint16
	HasEntry    bool
}

// LoadIntelHex parses standard Intel HEX (record types 00 data and 01
// end-of-file; 03/05 start-address records populate EntryPoint). The
// 16-bit Z80 address space means the extended segment/linear address
// records (02/04) are accepted and ignored rather than rejected: a
// well-formed file targeting this core will never need them to reach
// an address outside 0x0000-0xFFFF.
func LoadIntelHex(fs afero.Fs, path string, mem MemWriter) (HexResult, error) {
	f, err := fs.Open(path)
	if err != nil {
		return HexResult{}, fmt.Errorf("loader: open hex %s: %w", path, err)
	}
	defer f.Close()

	var result HexResult
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		n, entry, hasEntry, done, err := parseHexLine(line, mem)
		if err != nil {
			return result, fmt.Errorf("loader: %s:%d: %w", path, lineNo, err)
		}
		result.BytesLoaded += n
		if hasEntry {
			result.EntryPoint, result.HasEntry = entry, true
		}
		if done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("loader: read hex %s: %w", path, err)
	}
	return result, nil
}

// parseHexLine decodes one ":llaaaatt[dd...]cc" record.
func parseHexLine(line string, mem MemWriter) (written int, entry uint16, hasEntry bool, eof bool, err error) {
	if line[0] != ':' {
		return 0, 0, false, false, fmt.Errorf("record does not start with ':'")
	}
	raw, err := hexDecode(line[1:])
	if err != nil {
		return 0, 0, false, false, err
	}
	if len(raw) < 5 {
		return 0, 0, false, false, fmt.Errorf("record too short")
	}

	byteCount := int(raw[0])
	addr := uint16(raw[1])<<8 | uint16(raw[2])
	recType := raw[3]
	if len(raw) != byteCount+5 {
		return 0, 0, false, false, fmt.Errorf("byte count %d does not match record length", byteCount)
	}

	var sum byte
	for _, b := range raw[:len(raw)-1] {
		sum += b
	}
	if checksum := byte(0x100 - int(sum)); checksum != raw[len(raw)-1] {
		return 0, 0, false, false, fmt.Errorf("checksum mismatch")
	}

	switch recType {
	case 0x00: // data
		data := raw[4 : 4+byteCount]
		for i, b := range data {
			mem.WriteMem(addr+uint16(i), b)
		}
		return byteCount, 0, false, false, nil
	case 0x01: // end of file
		return 0, 0, false, true, nil
	case 0x03, 0x05: // start segment/linear address: low 16 bits is the entry PC
		if byteCount >= 2 {
			off := byteCount - 2
			e := uint16(raw[4+off])<<8 | uint16(raw[5+off])
			return 0, e, true, false, nil
		}
		return 0, 0, false, false, nil
	default: // 02/04 extended address records: accepted, no effect at 16 bits
		return 0, 0, false, false, nil
	}
}

func hexDecode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex data")
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("invalid hex digit at offset %d", i*2)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
