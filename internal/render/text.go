package render

import (
	"bufio"
	"fmt"
	"io"

	"gameoflife/internal/life"
)

// Text writes each generation as size lines of '*' and '.' cells, every cell
// followed by a space, under a one-line header.
type Text struct {
	w      *bufio.Writer
	header string
}

// NewText returns a Text renderer writing to w with the given header line.
// An empty header prints no header line.
func NewText(w io.Writer, header string) *Text {
	return &Text{w: bufio.NewWriter(w), header: header}
}

// Render writes f and flushes.
func (t *Text) Render(_ int, f *life.Field) error {
	if t.header != "" {
		if _, err := fmt.Fprintln(t.w, t.header); err != nil {
			return err
		}
	}
	n := f.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			t.w.WriteRune(glyph(f.At(row, col)))
			t.w.WriteByte(' ')
		}
		if err := t.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return t.w.Flush()
}
