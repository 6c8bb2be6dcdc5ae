// Package window shows the running simulation in an Ebiten window.
package window

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gameoflife/internal/life"
	"gameoflife/internal/render"
)

const (
	boardPixels   = 512
	captionHeight = 20
)

var captionColor = color.RGBA{220, 220, 220, 255}

// Viewer is an ebiten.Game displaying the most recently rendered generation.
// Render is safe to call from the simulation while the window runs on the
// main goroutine.
type Viewer struct {
	size  int
	debug bool

	mu       sync.Mutex
	pending  []byte
	dirty    bool
	gen      int
	alive    int
	finished bool

	board *ebiten.Image
}

// New returns a viewer for a size x size field. debug adds an FPS overlay.
func New(size int, debug bool) *Viewer {
	return &Viewer{size: size, debug: debug}
}

// Render stores a copy of f for the next frame.
func (v *Viewer) Render(gen int, f *life.Field) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = render.RGBA(v.pending, f)
	v.gen = gen
	v.alive = f.Alive()
	v.dirty = true
	return nil
}

// Finish marks the simulation complete so the caption says so.
func (v *Viewer) Finish() {
	v.mu.Lock()
	v.finished = true
	v.mu.Unlock()
}

// Run opens the window and blocks until it is closed. It must be called from
// the main goroutine.
func (v *Viewer) Run(title string) error {
	ebiten.SetWindowSize(boardPixels, boardPixels+captionHeight)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(v)
}

// Update closes the window on Escape or Q.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw scales the board to the window and writes the caption beneath it.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.board == nil {
		v.board = ebiten.NewImage(v.size, v.size)
	}
	v.mu.Lock()
	if v.dirty {
		v.board.WritePixels(v.pending)
		v.dirty = false
	}
	caption := fmt.Sprintf("generation %d  alive %d", v.gen, v.alive)
	if v.finished {
		caption += "  (done)"
	}
	v.mu.Unlock()

	op := &ebiten.DrawImageOptions{}
	scale := float64(boardPixels) / float64(v.size)
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(v.board, op)

	text.Draw(screen, caption, basicfont.Face7x13, 4, boardPixels+captionHeight-6, captionColor)

	if v.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout reports the logical screen size used by Ebiten.
func (v *Viewer) Layout(_, _ int) (int, int) {
	return boardPixels, boardPixels + captionHeight
}
