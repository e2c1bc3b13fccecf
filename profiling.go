package main

import (
	"log/slog"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startDefaultPGORecording writes a CPU profile to path until the returned
// stop function runs.
func startDefaultPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	started := time.Now()
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				slog.Warn("closing profile", "path", path, "err", err)
				return
			}
			slog.Info("profile written", "path", path, "elapsed", time.Since(started).Round(time.Millisecond))
		})
	}
	return stop, nil
}
