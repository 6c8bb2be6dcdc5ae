// Package render draws life fields for display: plain text, a full-screen
// terminal and RGBA pixel buffers for the window viewer.
package render

import "gameoflife/internal/life"

const (
	aliveGlyph = '*'
	deadGlyph  = '.'
)

// Renderer displays one generation of a field.
type Renderer interface {
	Render(gen int, f *life.Field) error
}

// Func adapts a function to Renderer.
type Func func(gen int, f *life.Field) error

func (fn Func) Render(gen int, f *life.Field) error { return fn(gen, f) }

func glyph(c life.Cell) rune {
	if c == life.Alive {
		return aliveGlyph
	}
	return deadGlyph
}
