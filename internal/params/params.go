// Package params parses the four positional arguments of the simulator.
package params

import (
	"fmt"
	"strconv"
)

// Usage is the positional synopsis printed with every usage error.
const Usage = "Expected input: gameoflife [flags] grid_size time_steps simulation num_of_threads"

// Params are the validated run parameters.
type Params struct {
	GridSize  int
	TimeSteps int
	Simulate  bool
	Threads   int
}

// UsageError reports arguments the simulator cannot run with.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Parse validates args, which must hold exactly grid_size, time_steps,
// simulation (0 or 1) and num_of_threads. Every failure is a *UsageError.
func Parse(args []string) (Params, error) {
	if len(args) != 4 {
		return Params{}, usagef("expected 4 arguments, got %d", len(args))
	}

	gridSize, err := parseInt("grid_size", args[0])
	if err != nil {
		return Params{}, err
	}
	timeSteps, err := parseInt("time_steps", args[1])
	if err != nil {
		return Params{}, err
	}
	simulation, err := parseInt("simulation", args[2])
	if err != nil {
		return Params{}, err
	}
	threads, err := parseInt("num_of_threads", args[3])
	if err != nil {
		return Params{}, err
	}

	if simulation != 0 && simulation != 1 {
		return Params{}, usagef("simulation input argument must be 1 or 0")
	}
	if gridSize < 1 {
		return Params{}, usagef("grid_size must be at least 1, got %d", gridSize)
	}
	if timeSteps < 0 {
		return Params{}, usagef("time_steps must not be negative, got %d", timeSteps)
	}
	if threads < 1 {
		return Params{}, usagef("num_of_threads must be at least 1, got %d", threads)
	}

	return Params{
		GridSize:  gridSize,
		TimeSteps: timeSteps,
		Simulate:  simulation == 1,
		Threads:   threads,
	}, nil
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, usagef("%s must be an integer, got %q", name, value)
	}
	return n, nil
}
