package vpack

import (
	"errors"
	"os"

	"github.com/saylorsolutions/vpack/pkg/launch"
)

type restoreConfig struct {
	dir      string
	play     bool
	launcher launch.Launcher
}

// RestoreOpt operates on the Restore configuration.
// If any RestoreOpt returns an error, then Restore returns it before reading the container.
type RestoreOpt = func(*restoreConfig) error

// RestoreTo restores into dir instead of the system temp directory.
func RestoreTo(dir string) RestoreOpt {
	return func(cfg *restoreConfig) error {
		if len(dir) == 0 {
			return errors.New("restore directory must not be empty")
		}
		cfg.dir = dir
		return nil
	}
}

// Play toggles opening the restored file once it's written.
func Play(play bool) RestoreOpt {
	return func(cfg *restoreConfig) error {
		cfg.play = play
		return nil
	}
}

// UseLauncher overrides the Launcher used for playback.
func UseLauncher(l launch.Launcher) RestoreOpt {
	return func(cfg *restoreConfig) error {
		if l == nil {
			return errors.New("nil launcher")
		}
		cfg.launcher = l
		return nil
	}
}

// Restore decodes the container at path into the temp directory and, by default, opens the result with the host's default application.
// A failure to open the file is reported in Result.LaunchErr and doesn't fail the restore.
func Restore(path, password string, opts ...RestoreOpt) (Result, error) {
	cfg := &restoreConfig{
		dir:      os.TempDir(),
		play:     true,
		launcher: launch.Default(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return Result{}, err
		}
	}

	result, err := DecodeFile(path, password, cfg.dir)
	if err != nil {
		return Result{}, err
	}
	if cfg.play {
		result.LaunchErr = cfg.launcher.Launch(result.Path)
	}
	return result, nil
}
