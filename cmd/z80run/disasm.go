package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/z80core/z80emu/disasm"
	"github.com/z80core/z80emu/hostkit"
	"github.com/z80core/z80emu/loader"
)

func newDisasmCmd(log *zap.SugaredLogger) *cobra.Command {
	var binPath, hexPath string
	var loadAddr, addr uint16
	var count int

	cmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble a binary or Intel HEX image without executing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if binPath == "" && hexPath == "" {
				return fmt.Errorf("z80run disasm: one of --bin or --hex is required")
			}

			fs := afero.NewOsFs()
			var ram hostkit.RAM
			start := addr

			switch {
			case binPath != "":
				n, err := loader.LoadBinary(fs, binPath, loadAddr, &ram)
				if err != nil {
					return err
				}
				log.Infow("loaded binary image for disassembly", "path", binPath, "bytes", n)
				if !cmd.Flags().Changed("addr") {
					start = loadAddr
				}
			case hexPath != "":
				result, err := loader.LoadIntelHex(fs, hexPath, &ram)
				if err != nil {
					return err
				}
				log.Infow("loaded Intel HEX image for disassembly", "path", hexPath, "bytes", result.BytesLoaded)
				if !cmd.Flags().Changed("addr") && result.HasEntry {
					start = result.EntryPoint
				}
			}

			for _, line := range disasm.Disassemble(&ram, start, count) {
				fmt.Println(line.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&binPath, "bin", "", "raw binary image to disassemble")
	cmd.Flags().StringVar(&hexPath, "hex", "", "Intel HEX image to disassemble")
	cmd.Flags().Uint16Var(&loadAddr, "load-addr", 0x0000, "load address for --bin")
	cmd.Flags().Uint16Var(&addr, "addr", 0x0000, "start address for disassembly")
	cmd.Flags().IntVar(&count, "count", 20, "number of instructions to disassemble")

	return cmd
}
