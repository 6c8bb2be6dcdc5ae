package render

import "gameoflife/internal/life"

var (
	alivePixel = [4]byte{80, 220, 120, 255}
	deadPixel  = [4]byte{16, 18, 24, 255}
)

// RGBA fills dst with one opaque pixel per cell in row-major order and
// returns it, reallocating when dst is too small.
func RGBA(dst []byte, f *life.Field) []byte {
	n := f.Size()
	need := n * n * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			px := deadPixel
			if f.At(row, col) == life.Alive {
				px = alivePixel
			}
			base := (row*n + col) * 4
			copy(dst[base:base+4], px[:])
		}
	}
	return dst
}
