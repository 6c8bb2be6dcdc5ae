package life

import "sync"

// TripFunc runs once per round, on the goroutine that arrives last, while
// every other party is still blocked. round counts from zero.
type TripFunc func(round int)

// Barrier is a reusable sense-reversing rendezvous for a fixed number of
// parties.
type Barrier struct {
	parties int
	onTrip  TripFunc

	mu      sync.Mutex
	cond    *sync.Cond
	sense   int
	waiting int
	rounds  int
}

// NewBarrier returns a barrier for parties goroutines. onTrip may be nil.
func NewBarrier(parties int, onTrip TripFunc) *Barrier {
	if parties < 1 {
		panic("life: barrier needs at least one party")
	}
	b := &Barrier{parties: parties, onTrip: onTrip}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until all parties have called Wait for the current round. It
// returns true to the caller whose arrival released the round.
func (b *Barrier) Wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	local := b.sense
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.sense = 1 - local
		round := b.rounds
		b.rounds++
		if b.onTrip != nil {
			b.onTrip(round)
		}
		b.cond.Broadcast()
		return true
	}
	// Parity, not the counter, decides release: a waiter that wakes after the
	// next round has already started counting must still leave.
	for b.sense == local {
		b.cond.Wait()
	}
	return false
}

// Rounds returns the number of completed rounds.
func (b *Barrier) Rounds() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rounds
}
