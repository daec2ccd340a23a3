// Package performance provides optional CPU and heap profiling for the
// demo binaries, switched on by their -cpuprofile and -memprofile flags.
package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/tendrilgames/chronoframe/errors"
)

// StartCPUProfile begins writing a pprof CPU profile to path if path is
// non-empty, returning a stop function the caller must defer. If path is
// empty, StartCPUProfile is a no-op and the returned stop function does
// nothing.
func StartCPUProfile(path string) (stop func(), err error) {
	if path == "" {
		return func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.New(errors.ProfileWriteFailed, err.Error())
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, errors.New(errors.ProfileWriteFailed, err.Error())
	}

	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

// WriteHeapProfile writes a pprof heap profile to path, forcing a GC first
// so the snapshot reflects live objects rather than garbage awaiting
// collection. A no-op if path is empty.
func WriteHeapProfile(path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.New(errors.ProfileWriteFailed, err.Error())
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return errors.New(errors.ProfileWriteFailed, err.Error())
	}
	return nil
}
