package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"gameoflife/internal/life"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Terminal draws generations full-screen on a tcell screen, two columns per
// cell, with a status line on the last row. Cells that do not fit the screen
// are clipped.
type Terminal struct {
	screen    tcell.Screen
	quit      chan struct{}
	quitOnce  sync.Once
	closeOnce sync.Once
}

// NewTerminal initialises screen and starts watching it for Escape, 'q' or
// Ctrl-C, which close the channel returned by Quit.
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	t := &Terminal{screen: screen, quit: make(chan struct{})}
	go t.watch()
	return t, nil
}

func (t *Terminal) watch() {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				t.quitOnce.Do(func() { close(t.quit) })
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Quit is closed once the user asks to leave.
func (t *Terminal) Quit() <-chan struct{} { return t.quit }

// Render draws f and shows it.
func (t *Terminal) Render(gen int, f *life.Field) error {
	width, height := t.screen.Size()
	rows := height - 1
	n := f.Size()

	t.screen.Clear()
	for row := 0; row < n && row < rows; row++ {
		for col := 0; col < n && 2*col < width; col++ {
			c := f.At(row, col)
			style := deadStyle
			if c == life.Alive {
				style = aliveStyle
			}
			t.screen.SetContent(2*col, row, glyph(c), nil, style)
		}
	}
	if height > 0 {
		status := fmt.Sprintf(" generation %d  alive %d  size %dx%d ", gen, f.Alive(), n, n)
		for i, r := range status {
			if i >= width {
				break
			}
			t.screen.SetContent(i, height-1, r, nil, statusStyle)
		}
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal. Later calls do nothing.
func (t *Terminal) Close() {
	t.closeOnce.Do(t.screen.Fini)
}
