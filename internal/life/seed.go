package life

// DefaultSeed reproduces the grid every run starts from unless told otherwise.
const DefaultSeed uint32 = 1

// Linear congruential generator constants (Numerical Recipes). A cell is the
// top bit of each new state; the low bits of a power-of-two LCG cycle too
// quickly to be used directly.
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// Seed fills the live grid row by row from a fixed-seed LCG so the same seed
// yields the same grid on every platform.
func (f *Field) Seed(seed uint32) {
	state := seed
	for i := range f.live {
		state = state*lcgMultiplier + lcgIncrement
		f.live[i] = Cell(state >> 31)
	}
}
