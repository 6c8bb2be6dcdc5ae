package life

import "testing"

// fieldFromRows builds a field from rows of '*' (alive) and '.' (dead).
func fieldFromRows(t *testing.T, rows ...string) *Field {
	t.Helper()
	f := NewField(len(rows))
	for r, line := range rows {
		if len(line) != len(rows) {
			t.Fatalf("row %d has %d columns, want %d", r, len(line), len(rows))
		}
		for c, ch := range line {
			if ch == '*' {
				f.Set(r, c, Alive)
			}
		}
	}
	return f
}

func rowsOf(f *Field) []string {
	out := make([]string, f.Size())
	for r := range out {
		line := make([]byte, f.Size())
		for c := range line {
			line[c] = '.'
			if f.At(r, c) == Alive {
				line[c] = '*'
			}
		}
		out[r] = string(line)
	}
	return out
}

func stepAll(f *Field) {
	all := Partition{Start: 0, Stop: f.Size()}
	f.SnapshotRows(all)
	f.StepRows(all)
}

func TestNextState(t *testing.T) {
	tests := []struct {
		name       string
		current    Cell
		neighbours Cell
		want       Cell
	}{
		{"dead with 3 is born", Dead, 3, Alive},
		{"dead with 2 stays dead", Dead, 2, Dead},
		{"dead with 4 stays dead", Dead, 4, Dead},
		{"alive with 1 dies", Alive, 1, Dead},
		{"alive with 2 survives", Alive, 2, Alive},
		{"alive with 3 survives", Alive, 3, Alive},
		{"alive with 4 dies", Alive, 4, Dead},
		{"alive with 8 dies", Alive, 8, Dead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextState(tt.current, tt.neighbours); got != tt.want {
				t.Errorf("nextState(%d, %d) = %d, want %d", tt.current, tt.neighbours, got, tt.want)
			}
		})
	}
}

func TestStepRowsPatterns(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		want  []string
	}{
		{
			name:  "block is still",
			start: []string{".....", ".**..", ".**..", ".....", "....."},
			want:  []string{".....", ".**..", ".**..", ".....", "....."},
		},
		{
			name:  "blinker flips",
			start: []string{".....", ".....", ".***.", ".....", "....."},
			want:  []string{".....", "..*..", "..*..", "..*..", "....."},
		},
		{
			name:  "corner block survives",
			start: []string{"**...", "**...", ".....", ".....", "....."},
			want:  []string{"**...", "**...", ".....", ".....", "....."},
		},
		{
			name:  "edge blinker is clipped by dead border",
			start: []string{".***.", ".....", ".....", ".....", "....."},
			want:  []string{"..*..", "..*..", ".....", ".....", "....."},
		},
		{
			name:  "lone corner cell dies",
			start: []string{"....*", ".....", ".....", ".....", "....."},
			want:  []string{".....", ".....", ".....", ".....", "....."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fieldFromRows(t, tt.start...)
			stepAll(f)
			got := rowsOf(f)
			for r := range got {
				if got[r] != tt.want[r] {
					t.Errorf("row %d = %q, want %q", r, got[r], tt.want[r])
				}
			}
		})
	}
}

func TestShadowBorderStaysDead(t *testing.T) {
	f := NewField(6)
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			f.Set(r, c, Alive)
		}
	}
	for i := 0; i < 3; i++ {
		stepAll(f)
	}
	stride := f.Size() + 2
	for i := 0; i < stride; i++ {
		border := []int{i, (stride-1)*stride + i, i * stride, i*stride + stride - 1}
		for _, idx := range border {
			if f.shadow[idx] != Dead {
				t.Fatalf("shadow border cell %d = %d", idx, f.shadow[idx])
			}
		}
	}
}

func TestSnapshotRowsOnlyCopiesOwnRows(t *testing.T) {
	f := NewField(4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			f.Set(r, c, Alive)
		}
	}
	f.SnapshotRows(Partition{Start: 1, Stop: 3})

	stride := f.Size() + 2
	for r := 0; r < 4; r++ {
		want := Dead
		if r == 1 || r == 2 {
			want = Alive
		}
		for c := 0; c < 4; c++ {
			if got := f.shadow[(r+1)*stride+c+1]; got != want {
				t.Errorf("shadow row %d col %d = %d, want %d", r, c, got, want)
			}
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := NewField(32)
	b := NewField(32)
	a.Seed(DefaultSeed)
	b.Seed(DefaultSeed)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}

	c := NewField(32)
	c.Seed(DefaultSeed + 1)
	if a.Equal(c) {
		t.Error("different seeds produced identical grids")
	}

	alive := a.Alive()
	if alive < 32*32/4 || alive > 32*32*3/4 {
		t.Errorf("seeded grid has %d live cells out of %d", alive, 32*32)
	}
	for _, cell := range a.Snapshot() {
		if cell != Dead && cell != Alive {
			t.Fatalf("seeded cell has value %d", cell)
		}
	}
}

func TestSeedSequence(t *testing.T) {
	// First states from seed 1: 1015568748, 1586005467, 2165703038, 3027450565.
	f := NewField(2)
	f.Seed(1)
	want := []Cell{Dead, Dead, Alive, Alive}
	for i, c := range f.Snapshot() {
		if c != want[i] {
			t.Errorf("cell %d = %d, want %d", i, c, want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	f := NewField(2)
	if err := f.Load([]Cell{Alive, Dead, Dead, Alive}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.At(0, 0) != Alive || f.At(1, 1) != Alive || f.Alive() != 2 {
		t.Errorf("Load produced %v", f.Snapshot())
	}
	if err := f.Load([]Cell{Alive}); err == nil {
		t.Error("Load accepted the wrong number of cells")
	}
	if err := f.Load([]Cell{0, 1, 2, 0}); err == nil {
		t.Error("Load accepted an invalid cell value")
	}
}

func TestSetPanicsOnInvalidValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set(2) did not panic")
		}
	}()
	NewField(2).Set(0, 0, 2)
}
