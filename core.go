package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"

	"tc-chip8/chip8"
	"tc-chip8/common"
)

const framesPerSecond = 60

func usage() {
	fmt.Printf("Usage: %s [options] <program file>\n", os.Args[0])
	flag.PrintDefaults()
}

func dumpDisplayList() {
	for name, desc := range displayDescriptions {
		fmt.Printf("%-10s %s\n", name, desc)
	}
}

func newLogger(debug bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}

func main() {
	display := flag.String("display", "sdl",
		"Display front-end. See -dump-displays for a list.")
	dumpDisplays := flag.Bool("dump-displays", false,
		"Dump a list of display front-ends and exit.")
	scale := flag.Int("scale", 5, "Window scale factor (sdl display only).")
	ipf := flag.Int("ipf", 60, "Instructions executed per 60Hz frame.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	flag.Parse()

	logger := newLogger(*debug)

	if *dumpDisplays {
		dumpDisplayList()
		return
	}

	programFile := flag.Arg(0)
	if programFile == "" {
		fmt.Printf("Missing required program file name!\n")
		usage()
		os.Exit(1)
	}

	program, err := os.ReadFile(programFile)
	if err != nil {
		logger.Fatal("failed to read program file", log.Err(err))
	}

	c, err := chip8.New(program)
	if err != nil {
		logger.Fatal("failed to load program", log.Err(err))
	}
	logger.Debug("program loaded",
		log.Hex("bytes", len(program)),
		log.Hex("load address", uint16(chip8.LoadAddress)))

	dt, ok := displayTypes[*display]
	if !ok {
		fmt.Printf("Unknown display front-end: %s\n", *display)
		dumpDisplayList()
		os.Exit(1)
	}
	devices, err := dt(chip8.DisplayWidth, chip8.DisplayHeight, *scale)
	if err != nil {
		logger.Fatal("failed to set up display front-end", log.Err(err))
	}
	defer func() {
		for _, d := range devices {
			d.Cleanup()
		}
	}()

	run(c, devices, *ipf, logger)
}

// run drives the machine at 60 frames per second. Each frame executes the
// instruction batch, ticks the timers once, then ticks the hardware: input
// devices publish the hexpad bitmap, display devices paint the
// framebuffer.
func run(m common.Machine, devices []common.Device, ipf int, logger *log.Logger) {
	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()

	for range ticker.C {
		if err := m.Run(ipf); err != nil {
			var fault *chip8.DecodeFault
			if errors.As(err, &fault) {
				logger.Fatal("decode fault",
					log.Hex("address", fault.Addr),
					log.Hex("word", fault.Word))
			}
			logger.Fatal("execution failed", log.Err(err))
		}
		m.TickTimers()

		for _, d := range devices {
			if err := d.Tick(m); err != nil {
				if errors.Is(err, common.ErrShutdown) {
					return
				}
				logger.Fatal("device failed", log.Err(err))
			}
		}
	}
}
