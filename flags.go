package main

import (
	"flag"

	"gameoflife/internal/life"
	"gameoflife/internal/params"
)

// Command-line flags. They must precede the four positional arguments.
var (
	// renderFlag picks the display used when simulation is 1.
	renderFlag = flag.String("render", renderText, "display for simulation=1: text, term or window")

	// pauseFlag is slept after every displayed generation.
	pauseFlag = flag.Duration("pause", defaultFramePause, "pause after each displayed generation")

	seedFlag = flag.Uint("seed", uint(life.DefaultSeed), "seed for the initial grid")

	// backendFlag selects worker goroutines or the OpenCL solver.
	backendFlag = flag.String("backend", backendCPU, "cpu (worker goroutines) or opencl (build with -tags opencl)")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")

	// statsFlag logs per-worker busy and barrier wait times after the run.
	statsFlag = flag.Bool("stats", false, "log per-worker busy and barrier wait times")

	// debugFlag enables the FPS overlay in window mode.
	debugFlag = flag.Bool("debug", false, "show FPS overlay in window mode")
)

// checkFlags rejects flag values the driver cannot act on.
func checkFlags() error {
	switch *renderFlag {
	case renderText, renderTerm, renderWindow:
	default:
		return &params.UsageError{Msg: "-render must be text, term or window, got " + *renderFlag}
	}
	switch *backendFlag {
	case backendCPU, backendOpenCL:
	default:
		return &params.UsageError{Msg: "-backend must be cpu or opencl, got " + *backendFlag}
	}
	if *pauseFlag < 0 {
		return &params.UsageError{Msg: "-pause must not be negative"}
	}
	if uint64(*seedFlag) > uint64(^uint32(0)) {
		return &params.UsageError{Msg: "-seed must fit in 32 bits"}
	}
	return nil
}
