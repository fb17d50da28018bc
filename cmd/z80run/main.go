// Command z80run is the reference host binding for package z80: it
// loads a guest image, wires up hostkit's RAM/ACIA/CP/M bus, and drives
// the core in a bounded polling loop — the "host system binding, file
// loading, CLI parsing, and scheduling/polling loop" spec §1 places
// outside the CPU core itself. None of this package is part of the
// core's contract.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "z80run: logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	root := &cobra.Command{
		Use:   "z80run",
		Short: "Reference host for the z80 CPU core: run or disassemble a guest image",
	}
	root.AddCommand(newRunCmd(sugar))
	root.AddCommand(newDisasmCmd(sugar))

	if err := root.Execute(); err != nil {
		sugar.Errorw("command failed", "error", err)
		os.Exit(1)
	}
}
