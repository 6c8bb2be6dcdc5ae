package life

import "fmt"

// Cell is the state of one grid position. Only Dead and Alive are valid.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Field stores the live grid and the padded shadow copy that the row workers
// read neighbour counts from.
//
// Both buffers are flat row-major slices. The shadow is (size+2)x(size+2) and
// its outer ring stays Dead for the lifetime of the field, which is what gives
// the simulation its fixed dead border.
type Field struct {
	size   int
	stride int
	live   []Cell
	shadow []Cell
}

// NewField allocates a size x size field with every cell dead.
func NewField(size int) *Field {
	if size < 0 {
		size = 0
	}
	stride := size + 2
	return &Field{
		size:   size,
		stride: stride,
		live:   make([]Cell, size*size),
		shadow: make([]Cell, stride*stride),
	}
}

// Size returns the side length of the grid.
func (f *Field) Size() int { return f.size }

// At returns the live value at row, col.
func (f *Field) At(row, col int) Cell {
	return f.live[row*f.size+col]
}

// Set writes a live cell. It panics on values other than Dead and Alive.
func (f *Field) Set(row, col int, value Cell) {
	if value != Dead && value != Alive {
		panic(fmt.Sprintf("life: invalid cell value %d", value))
	}
	f.live[row*f.size+col] = value
}

// Alive counts the live cells in the grid.
func (f *Field) Alive() int {
	n := 0
	for _, c := range f.live {
		n += int(c)
	}
	return n
}

// Snapshot returns a copy of the live grid in row-major order.
func (f *Field) Snapshot() []Cell {
	out := make([]Cell, len(f.live))
	copy(out, f.live)
	return out
}

// Load replaces the live grid with cells, which must hold size*size values.
func (f *Field) Load(cells []Cell) error {
	if len(cells) != len(f.live) {
		return fmt.Errorf("life: load %d cells into %dx%d field", len(cells), f.size, f.size)
	}
	for i, c := range cells {
		if c != Dead && c != Alive {
			return fmt.Errorf("life: invalid cell value %d at index %d", c, i)
		}
	}
	copy(f.live, cells)
	return nil
}

// Equal reports whether both fields have the same size and live cells.
func (f *Field) Equal(other *Field) bool {
	if other == nil || f.size != other.size {
		return false
	}
	for i, c := range f.live {
		if other.live[i] != c {
			return false
		}
	}
	return true
}

// SnapshotRows copies the live rows of p into the interior of the shadow grid.
// Border cells are never touched.
func (f *Field) SnapshotRows(p Partition) {
	n := f.size
	for row := p.Start; row < p.Stop; row++ {
		src := f.live[row*n : row*n+n]
		base := (row+1)*f.stride + 1
		copy(f.shadow[base:base+n], src)
	}
}

// StepRows writes the next generation of the rows in p into the live grid,
// counting neighbours from the shadow grid.
func (f *Field) StepRows(p Partition) {
	n := f.size
	stride := f.stride
	for row := p.Start; row < p.Stop; row++ {
		centerBase := (row + 1) * stride
		top := f.shadow[centerBase-stride : centerBase]
		center := f.shadow[centerBase : centerBase+stride]
		bottom := f.shadow[centerBase+stride : centerBase+2*stride]
		out := f.live[row*n : row*n+n]

		for col := 0; col < n; col++ {
			x := col + 1
			neighbours := top[x-1] + top[x] + top[x+1] +
				center[x-1] + center[x+1] +
				bottom[x-1] + bottom[x] + bottom[x+1]
			out[col] = nextState(center[x], neighbours)
		}
	}
}

// nextState applies B3/S23.
func nextState(current, neighbours Cell) Cell {
	if neighbours == 3 || (current == Alive && neighbours == 2) {
		return Alive
	}
	return Dead
}
