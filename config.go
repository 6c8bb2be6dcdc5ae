package main

import "time"

// Driver constants: display text, timing defaults and exit codes.
const (
	defaultFramePause = 100 * time.Millisecond
	finalTermHold     = 2 * time.Second
	frameHeader       = "Current state:"
	finalHeader       = "Final state:"
	windowTitle       = "Game of Life"

	renderText   = "text"
	renderTerm   = "term"
	renderWindow = "window"

	backendCPU    = "cpu"
	backendOpenCL = "opencl"

	exitUsage       = -1
	exitFailure     = 1
	exitInterrupted = 130
)
