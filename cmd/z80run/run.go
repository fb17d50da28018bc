package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/z80core/z80emu/hostkit"
	"github.com/z80core/z80emu/loader"
	"github.com/z80core/z80emu/z80"
)

// RunConfig holds the run subcommand's options, populated from CLI
// flags rather than a config file — matching the scale of the
// teacher's own per-run CPUZ80Config, just for a headless CLI host
// instead of a GUI one.
type RunConfig struct {
	BinPath    string
	HexPath    string
	LoadAddr   uint16
	Entry      uint16
	HasEntry   bool
	MaxSteps   int
	Trace      bool
	TraceEvery int
	CPM        bool
	Breakpoint uint16
	HasBP      bool
}

func newRunCmd(log *zap.SugaredLogger) *cobra.Command {
	var cfg RunConfig
	var loadAddr, entry, breakpoint uint16

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a binary or Intel HEX image and run it against the z80 core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.LoadAddr = loadAddr
			if cmd.Flags().Changed("entry") {
				cfg.Entry, cfg.HasEntry = entry, true
			}
			if cmd.Flags().Changed("breakpoint") {
				cfg.Breakpoint, cfg.HasBP = breakpoint, true
			}
			return runGuest(log, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.BinPath, "bin", "", "raw binary image to load")
	cmd.Flags().StringVar(&cfg.HexPath, "hex", "", "Intel HEX image to load")
	cmd.Flags().Uint16Var(&loadAddr, "load-addr", 0x0000, "load address for --bin (ignored for --hex)")
	cmd.Flags().Uint16Var(&entry, "entry", 0, "override PC at start (defaults to load address, or a HEX file's own start record)")
	cmd.Flags().IntVar(&cfg.MaxSteps, "max-steps", 1_000_000, "stop after this many Step calls (bounds otherwise-infinite HALT loops)")
	cmd.Flags().BoolVar(&cfg.Trace, "trace", false, "log every instruction's register snapshot")
	cmd.Flags().IntVar(&cfg.TraceEvery, "trace-every", 1, "only log every Nth traced step")
	cmd.Flags().BoolVar(&cfg.CPM, "cpm", false, "intercept CALL 0005H as a CP/M BDOS console trap")
	cmd.Flags().Uint16Var(&breakpoint, "breakpoint", 0, "stop when PC reaches this address")

	return cmd
}

func runGuest(log *zap.SugaredLogger, cfg RunConfig) error {
	if cfg.BinPath == "" && cfg.HexPath == "" {
		return fmt.Errorf("z80run run: one of --bin or --hex is required")
	}

	fs := afero.NewOsFs()
	bus := hostkit.NewACIABus()
	bus.ACIA.Out = logWriter{log}
	if cfg.CPM {
		bus.CPM = &hostkit.CPMConsole{Out: logWriter{log}}
	}

	entry := cfg.Entry
	switch {
	case cfg.BinPath != "":
		n, err := loader.LoadBinary(fs, cfg.BinPath, cfg.LoadAddr, &bus.RAM)
		if err != nil {
			return err
		}
		log.Infow("loaded binary image", "path", cfg.BinPath, "bytes", n, "loadAddr", cfg.LoadAddr)
		if !cfg.HasEntry {
			entry = cfg.LoadAddr
		}
	case cfg.HexPath != "":
		result, err := loader.LoadIntelHex(fs, cfg.HexPath, &bus.RAM)
		if err != nil {
			return err
		}
		log.Infow("loaded Intel HEX image", "path", cfg.HexPath, "bytes", result.BytesLoaded)
		if !cfg.HasEntry && result.HasEntry {
			entry = result.EntryPoint
		}
	}

	cpu := z80.New(bus)
	cpu.PC = entry
	log.Infow("starting execution", "entry", fmt.Sprintf("0x%04X", entry), "maxSteps", cfg.MaxSteps)

	steps := 0
	for steps < cfg.MaxSteps {
		if cfg.HasBP && cpu.PC == cfg.Breakpoint {
			log.Infow("breakpoint hit", "pc", fmt.Sprintf("0x%04X", cpu.PC), "steps", steps)
			break
		}
		if bus.Service(cpu) {
			if bus.CPM != nil && bus.CPM.Halt {
				log.Infow("BDOS system reset requested guest termination", "steps", steps)
				break
			}
			continue
		}

		if cfg.Trace && steps%cfg.TraceEvery == 0 {
			snap := cpu.Snapshot()
			log.Debugw("step", "pc", fmt.Sprintf("0x%04X", snap.PC), "af", fmt.Sprintf("0x%02X%02X", snap.A, snap.F),
				"bc", fmt.Sprintf("0x%02X%02X", snap.B, snap.C), "de", fmt.Sprintf("0x%02X%02X", snap.D, snap.E),
				"hl", fmt.Sprintf("0x%02X%02X", snap.H, snap.L), "clocks", snap.Clocks)
		}

		cpu.Step()
		steps++
	}

	log.Infow("execution finished", "steps", steps, "clocks", cpu.Clocks, "pc", fmt.Sprintf("0x%04X", cpu.PC))
	return nil
}

// logWriter adapts a zap.SugaredLogger to io.Writer for hostkit's
// console sinks (ACIA.Out / CPMConsole.Out), so guest output lands in
// the same structured log stream as trace/interrupt events rather than
// bypassing it with a raw os.Stdout write.
type logWriter struct{ log *zap.SugaredLogger }

func (w logWriter) Write(p []byte) (int, error) {
	w.log.Infow("guest output", "data", string(p))
	return len(p), nil
}
