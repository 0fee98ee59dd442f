package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/saylorsolutions/vpack/cmd/internal"
	"github.com/saylorsolutions/vpack/pkg/launch"
	"github.com/saylorsolutions/vpack/pkg/vpack"
	"github.com/saylorsolutions/vpack/pkg/xor"
)

var (
	errNotFound     = errors.New("file not found")
	errNotContainer = errors.New("only " + vpack.Extension + " files are supported")
)

type tool struct {
	cfg      *internal.Config
	password string
	launcher launch.Launcher
	out      io.Writer
}

func (t *tool) stdout() io.Writer {
	if t.out == nil {
		return os.Stdout
	}
	return t.out
}

func (t *tool) printf(msg string, args ...any) {
	_, _ = fmt.Fprintf(t.stdout(), msg, args...)
}

// cleanPath strips surrounding whitespace and quotes, which file managers like to add when copying a path.
func cleanPath(path string) string {
	return strings.Trim(strings.TrimSpace(path), `"'`)
}

func checkExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", errNotFound, path)
		}
		return err
	}
	return nil
}

func (t *tool) encode(src string) error {
	src = cleanPath(src)
	if err := checkExists(src); err != nil {
		return err
	}
	password, err := internal.Password(t.password, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(t.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	out := filepath.Join(t.cfg.OutputDir, vpack.OutputName(src))
	t.printf("Saving encrypted file as: %s\n", out)
	internal.Log.Debug().Str("source", src).Str("output", out).Msg("Encoding")

	res, err := vpack.EncodeFile(src, out, password)
	if err != nil {
		return err
	}
	internal.Log.Debug().
		Str("filename", res.Metadata.Filename).
		Uint64("payload_size", res.Metadata.Size).
		Int64("container_size", res.Size).
		Msg("Encoded")
	t.printf("Encrypted and packed '%s' into:\n   '%s' (%d bytes)\n", src, res.Path, res.Size)
	return nil
}

func (t *tool) decode(path string) error {
	path = cleanPath(path)
	if err := checkExists(path); err != nil {
		return err
	}
	if !strings.HasSuffix(path, vpack.Extension) {
		return errNotContainer
	}
	password, err := internal.Password(t.password, false)
	if err != nil {
		return err
	}

	opts := []vpack.RestoreOpt{
		vpack.RestoreTo(t.cfg.TempDir),
		vpack.Play(t.cfg.Play),
	}
	if t.launcher != nil {
		opts = append(opts, vpack.UseLauncher(t.launcher))
	}
	internal.Log.Debug().Str("container", path).Str("restore_dir", t.cfg.TempDir).Msg("Decoding")
	res, err := vpack.Restore(path, password, opts...)
	if err != nil {
		return err
	}
	t.printf("Decrypted and restored to temporary file:\n   '%s'\n", res.Path)
	switch {
	case !t.cfg.Play:
		t.printf("Playback skipped\n")
	case res.LaunchErr != nil:
		internal.Log.Warn().Err(res.LaunchErr).Str("path", res.Path).Msg("Failed to launch viewer")
		t.printf("Couldn't auto-play: %v\n", res.LaunchErr)
	default:
		t.printf("Opened with the default application\n")
	}
	return nil
}

func (t *tool) inspect(path string) error {
	path = cleanPath(path)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	meta, err := vpack.ReadMetadata(f)
	if err != nil {
		return err
	}
	t.printf("Filename:  %s\nSize:      %d bytes\nEncrypted: %t\n", meta.Filename, meta.Size, meta.Encrypted)
	return nil
}

func (t *tool) genpass(length int) error {
	pass, err := xor.GenPassword(length)
	if err != nil {
		return err
	}
	t.printf("%s\n", pass)
	return nil
}
