package main

import (
	"os"

	"github.com/felixge/fgprof"
)

// startProfile starts wall-clock profiling into the named file. The
// returned function stops profiling and closes the file. An empty name
// disables profiling.
func startProfile(name string) (stop func() error, err error) {
	if name == "" {
		return func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
