package main

import (
	"fmt"
	"log"
	"time"

	"gameoflife/internal/gpu"
	"gameoflife/internal/life"
	"gameoflife/internal/params"
)

// simulate advances field p.TimeSteps generations on the selected backend,
// calling frame at the start of every generation when it is not nil.
func simulate(p params.Params, field *life.Field, frame life.FrameFunc) error {
	if *backendFlag == backendOpenCL {
		return simulateOpenCL(p, field, frame)
	}
	return simulateWorkers(p, field, frame)
}

func simulateWorkers(p params.Params, field *life.Field, frame life.FrameFunc) error {
	cfg := life.Config{
		Workers:     p.Threads,
		Generations: p.TimeSteps,
		Frame:       frame,
	}
	if frame != nil {
		cfg.FrameDelay = *pauseFlag
	}
	sim, err := life.New(field, cfg)
	if err != nil {
		return err
	}
	report, err := sim.Run()
	if *statsFlag {
		logReport(report)
	}
	return err
}

func simulateOpenCL(p params.Params, field *life.Field, frame life.FrameFunc) error {
	solver, err := gpu.NewSolver(p.GridSize)
	if err != nil {
		return fmt.Errorf("OpenCL initialization failed: %w", err)
	}
	defer solver.Close()
	log.Printf("OpenCL solver enabled (device: %s)", solver.DeviceName())

	if frame == nil {
		return solver.Step(field, p.TimeSteps)
	}
	for gen := 0; gen < p.TimeSteps; gen++ {
		if err := frame(gen, field); err != nil {
			return fmt.Errorf("frame %d: %w", gen, err)
		}
		time.Sleep(*pauseFlag)
		if err := solver.Step(field, 1); err != nil {
			return err
		}
	}
	return nil
}

func logReport(r life.Report) {
	log.Printf("%d generations in %v across %d workers", r.Generations, r.Elapsed, len(r.Workers))
	for _, w := range r.Workers {
		log.Printf("worker %d rows [%d,%d) busy %v wait %v", w.Index, w.Rows.Start, w.Rows.Stop, w.Busy, w.Wait)
	}
}
