package life

import "time"

// worker owns one row partition for the lifetime of a run.
type worker struct {
	index       int
	rows        Partition
	field       *Field
	generations int

	arrive   *Barrier
	snapshot *Barrier

	busy time.Duration
	wait time.Duration
}

// run executes every generation for the worker's rows. Each generation takes
// two rendezvous: one before the snapshot so no row is copied while another
// worker is still writing the previous generation, and one before the compute
// phase so no neighbour row is read before its owner has copied it.
func (w *worker) run() {
	for gen := 0; gen < w.generations; gen++ {
		w.await(w.arrive)

		start := time.Now()
		if !w.rows.Empty() {
			w.field.SnapshotRows(w.rows)
		}
		w.busy += time.Since(start)

		w.await(w.snapshot)

		start = time.Now()
		if !w.rows.Empty() {
			w.field.StepRows(w.rows)
		}
		w.busy += time.Since(start)
	}
}

func (w *worker) await(b *Barrier) {
	start := time.Now()
	b.Wait()
	w.wait += time.Since(start)
}

// WorkerReport summarises one worker after a run.
type WorkerReport struct {
	Index int
	Rows  Partition
	Busy  time.Duration
	Wait  time.Duration
}

func (w *worker) report() WorkerReport {
	return WorkerReport{Index: w.index, Rows: w.rows, Busy: w.busy, Wait: w.wait}
}
