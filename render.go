package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"gameoflife/internal/life"
	"gameoflife/internal/params"
	"gameoflife/internal/render"
	"gameoflife/internal/window"
)

// run seeds the field and simulates it, displaying generations on the
// selected output when p.Simulate is set.
func run(p params.Params) error {
	field := life.NewField(p.GridSize)
	field.Seed(uint32(*seedFlag))

	if !p.Simulate {
		return simulate(p, field, nil)
	}
	switch *renderFlag {
	case renderTerm:
		return runTerminal(p, field)
	case renderWindow:
		return runWindow(p, field)
	default:
		return runText(p, field)
	}
}

func runText(p params.Params, field *life.Field) error {
	frames := render.NewText(os.Stdout, frameHeader)
	if err := simulate(p, field, frames.Render); err != nil {
		return err
	}
	return render.NewText(os.Stdout, finalHeader).Render(p.TimeSteps, field)
}

func runTerminal(p params.Params, field *life.Field) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	term, err := render.NewTerminal(screen)
	if err != nil {
		return err
	}
	defer term.Close()

	go func() {
		<-term.Quit()
		term.Close()
		log.Printf("interrupted")
		os.Exit(exitInterrupted)
	}()

	if err := simulate(p, field, term.Render); err != nil {
		return err
	}
	if err := term.Render(p.TimeSteps, field); err != nil {
		return err
	}
	time.Sleep(finalTermHold)
	return nil
}

// runWindow keeps the Ebiten loop on the main goroutine and simulates on
// another. Closing the window early does not stop the simulation.
func runWindow(p params.Params, field *life.Field) error {
	viewer := window.New(p.GridSize, *debugFlag)
	if err := viewer.Render(0, field); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		err := simulate(p, field, viewer.Render)
		if err == nil {
			err = viewer.Render(p.TimeSteps, field)
		}
		viewer.Finish()
		done <- err
	}()

	if err := viewer.Run(windowTitle); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return <-done
}
