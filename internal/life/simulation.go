// Package life runs Conway's Game of Life on a square grid with a dead border,
// splitting the rows across a fixed pool of goroutines that advance in
// lockstep through a hand-built generation barrier.
package life

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyField          = errors.New("life: field has no cells")
	ErrNoWorkers           = errors.New("life: at least one worker is required")
	ErrNegativeGenerations = errors.New("life: generation count is negative")
)

// FrameFunc observes the grid at the start of a generation. It runs on the
// goroutine that completes the rendezvous while every worker is blocked, so it
// may read the field freely but must not keep a reference to it.
type FrameFunc func(gen int, f *Field) error

// Config controls a run.
type Config struct {
	Workers     int
	Generations int

	// Frame is optional. FrameDelay is slept after each frame, still inside
	// the rendezvous, so the display stays on that generation.
	Frame      FrameFunc
	FrameDelay time.Duration
}

// Simulation bundles the shared state of one run: the field, the partitions
// and the two per-generation barriers.
type Simulation struct {
	cfg      Config
	field    *Field
	parts    []Partition
	arrive   *Barrier
	snapshot *Barrier
	workers  []*worker

	// Written only from the arrive barrier's trip function.
	frameErr error
}

// Report describes a finished run.
type Report struct {
	Generations int
	Elapsed     time.Duration
	Workers     []WorkerReport
}

// New validates cfg and prepares a run over field.
func New(field *Field, cfg Config) (*Simulation, error) {
	if field == nil || field.Size() == 0 {
		return nil, ErrEmptyField
	}
	if cfg.Workers < 1 {
		return nil, ErrNoWorkers
	}
	if cfg.Generations < 0 {
		return nil, ErrNegativeGenerations
	}

	s := &Simulation{
		cfg:   cfg,
		field: field,
		parts: PartitionRows(field.Size(), cfg.Workers),
	}
	s.arrive = NewBarrier(cfg.Workers, s.onGeneration)
	s.snapshot = NewBarrier(cfg.Workers, nil)
	s.workers = make([]*worker, len(s.parts))
	for i, p := range s.parts {
		s.workers[i] = &worker{
			index:       i,
			rows:        p,
			field:       field,
			generations: cfg.Generations,
			arrive:      s.arrive,
			snapshot:    s.snapshot,
		}
	}
	return s, nil
}

// Field returns the grid the simulation mutates. Read it only before Run or
// after Run has returned.
func (s *Simulation) Field() *Field { return s.field }

// Partitions returns the row ranges assigned to each worker.
func (s *Simulation) Partitions() []Partition {
	out := make([]Partition, len(s.parts))
	copy(out, s.parts)
	return out
}

func (s *Simulation) onGeneration(gen int) {
	if s.cfg.Frame == nil {
		return
	}
	if err := s.cfg.Frame(gen, s.field); err != nil && s.frameErr == nil {
		s.frameErr = fmt.Errorf("frame %d: %w", gen, err)
	}
	if s.cfg.FrameDelay > 0 {
		time.Sleep(s.cfg.FrameDelay)
	}
}

// Run starts one goroutine per partition, advances the configured number of
// generations and joins them. A frame error does not interrupt the workers;
// the first one is returned once they have all finished.
func (s *Simulation) Run() (Report, error) {
	start := time.Now()
	var g errgroup.Group
	for _, w := range s.workers {
		w := w
		g.Go(func() error {
			w.run()
			return nil
		})
	}
	err := g.Wait()

	report := Report{
		Generations: s.arrive.Rounds(),
		Elapsed:     time.Since(start),
		Workers:     make([]WorkerReport, len(s.workers)),
	}
	for i, w := range s.workers {
		report.Workers[i] = w.report()
	}
	if err != nil {
		return report, err
	}
	return report, s.frameErr
}
