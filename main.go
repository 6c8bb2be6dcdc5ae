// Command gameoflife runs Conway's Game of Life on a square grid with a dead
// border, sharing the rows between a fixed number of worker goroutines that
// meet at a generation barrier.
//
// Usage:
//
//	gameoflife [flags] grid_size time_steps simulation num_of_threads
//
// With simulation set to 1 every generation is displayed before it is
// advanced. The last line on stdout is the wall-clock time of the run.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"gameoflife/internal/params"
)

func main() {
	start := time.Now()
	runtime.GOMAXPROCS(runtime.NumCPU())

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	flag.Usage = printUsage
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(exitUsage)
	}

	p, err := params.Parse(flag.Args())
	if err == nil {
		err = checkFlags()
	}
	if err != nil {
		fmt.Printf("Error: %v\n%s\n", err, params.Usage)
		os.Exit(exitUsage)
	}

	stopProfile := func() {}
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("starting CPU profile: %v", err)
		}
		stopProfile = stop
	}

	err = run(p)
	stopProfile()
	if err != nil {
		log.Printf("gameoflife: %v", err)
		os.Exit(exitFailure)
	}

	fmt.Printf("gameOfLife took %7.3f wall seconds.\n", time.Since(start).Seconds())
}

func printUsage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, params.Usage)
	fmt.Fprintln(out, "\nFlags:")
	flag.PrintDefaults()
}
