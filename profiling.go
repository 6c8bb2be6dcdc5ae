package main

import (
	"os"
	"runtime/pprof"
	"sync"
)

// startCPUProfile begins writing a CPU profile to path and returns the func
// that stops it. The stop func is safe to call more than once.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	return stop, nil
}
