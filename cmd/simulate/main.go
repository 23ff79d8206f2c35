// Command simulate assembles a source program and runs it to
// completion: constructs RAM, wires the Bus (with or without MMIO),
// creates the CPU, pre-seeds the stack pointer, and ticks until STOPPED.
package main

import (
	"flag"
	"fmt"
	"os"

	"yarisc32/config"
	"yarisc32/isa"
	"yarisc32/loader"
	"yarisc32/vm"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file path (default: platform config directory)")
		spSeed     = flag.Uint64("sp", 0, "Initial value of the stack-pointer register (r30); overrides config")
		noMMIO     = flag.Bool("no-mmio", false, "Disable the MMIO STDOUT device")
		maxTicks   = flag.Uint64("max-ticks", 0, "Override the configured max tick count (0 keeps the config value)")
		dumpRegs   = flag.Bool("dump-regs", false, "Print every register's value on halt instead of just r2")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <source>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *configPath, *spSeed, *noMMIO, *maxTicks, *dumpRegs); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(source, configPath string, spSeed uint64, noMMIO bool, maxTicks uint64, dumpRegs bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if maxTicks > 0 {
		cfg.Execution.MaxTicks = maxTicks
	}

	ram := vm.NewRAM(cfg.RAM.SizeWords)
	if err := loader.LoadIntoRAM(ram, source); err != nil {
		return fmt.Errorf("assembling %s: %w", source, err)
	}

	var bus *vm.Bus
	if noMMIO || !cfg.Execution.EnableMMIOStdout {
		bus = vm.NewBus(ram)
	} else {
		bus = vm.NewBusWithMMIO(ram, cfg.RAM.MaxRAMAddr, vm.NewStdoutDevice(os.Stdout))
	}

	cpu := vm.NewCPU(bus)
	seed := cfg.Execution.StackPointerSeed
	if spSeed > 0 {
		seed = uint32(spSeed)
	}
	cpu.Regs.Write(isa.RegSP, seed)

	for ticks := uint64(0); ; ticks++ {
		if cfg.Execution.MaxTicks > 0 && ticks >= cfg.Execution.MaxTicks {
			return fmt.Errorf("exceeded max ticks (%d)", cfg.Execution.MaxTicks)
		}
		stage, err := cpu.Tick()
		if err != nil {
			return fmt.Errorf("at PC=%d: %w", cpu.PC, err)
		}
		if stage == vm.StageStopped {
			break
		}
	}

	if dumpRegs {
		dump := cpu.Regs.Dump()
		for i, v := range dump {
			fmt.Printf("%-4s (r%-2d) = %d\n", isa.RegisterName(i), i, v)
		}
		return nil
	}

	fmt.Printf("halted; r2=%d\n", cpu.Regs.Read(2))
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}
