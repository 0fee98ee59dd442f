// Package launch opens files with whatever application the host associates with them.
package launch

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
)

// Launcher opens a file for viewing.
type Launcher interface {
	Launch(path string) error
}

// Func adapts a plain function to a Launcher.
type Func func(path string) error

func (f Func) Launch(path string) error {
	return f(path)
}

// Nop is a Launcher that does nothing.
var Nop Launcher = Func(func(string) error { return nil })

// start is swapped out in tests so nothing is actually opened.
var start = open.Start

// Default returns the Launcher for the current host.
// The viewer is started without waiting for it to exit, since it usually outlives the caller.
func Default() Launcher {
	return Func(func(path string) error {
		if err := start(path); err != nil {
			return fmt.Errorf("failed to open '%s' with the default application: %w", path, err)
		}
		return nil
	})
}
