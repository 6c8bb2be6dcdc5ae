//go:build !opencl

// Package gpu advances a life field on an OpenCL device.
package gpu

import (
	"errors"

	"gameoflife/internal/life"
)

// ErrUnavailable is returned when the binary was built without OpenCL.
var ErrUnavailable = errors.New("OpenCL support is not enabled; rebuild with -tags opencl")

type Solver struct{}

func NewSolver(size int) (*Solver, error) {
	return nil, ErrUnavailable
}

func (s *Solver) Step(f *life.Field, steps int) error {
	return ErrUnavailable
}

func (s *Solver) Close() {}

func (s *Solver) DeviceName() string { return "" }
