package vpack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// Result reports what an Encode or Decode file operation produced.
type Result struct {
	// Path is the file that was written.
	Path string
	// Size is the number of bytes written to Path.
	Size int64
	// Metadata is the record stored in, or read from, the container.
	Metadata Metadata
	// LaunchErr is set when the restored file couldn't be opened for playback.
	// The restore itself still succeeded.
	LaunchErr error
}

// OutputName derives the container file name for a source file: its base name without extension, plus Extension.
func OutputName(srcPath string) string {
	base := filepath.Base(srcPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + Extension
}

// EncodeFile packs the file at srcPath into a container at outPath, screening it with password.
// An existing file at outPath is replaced, and is left untouched if anything fails.
func EncodeFile(srcPath, outPath, password string) (Result, error) {
	if len(password) == 0 {
		return Result{}, ErrEmptyPassword
	}
	src, err := os.Open(srcPath)
	if err != nil {
		return Result{}, fmt.Errorf("unable to read source file '%s': %w", srcPath, err)
	}
	defer func() {
		_ = src.Close()
	}()
	info, err := src.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("unable to read source file '%s': %w", srcPath, err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("unable to read source file '%s': is a directory", srcPath)
	}

	meta := NewMetadata(srcPath, uint64(info.Size()))
	size, err := writeAtomic(outPath, func(w io.Writer) error {
		return Encode(w, bufio.NewReader(src), meta, password)
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Path:     outPath,
		Size:     size,
		Metadata: meta,
	}, nil
}

// DecodeFile restores the payload of the container at path into outDir, named after the recorded file name.
// A file with the same name already in outDir is replaced.
func DecodeFile(path, password, outDir string) (Result, error) {
	if len(password) == 0 {
		return Result{}, ErrEmptyPassword
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("unable to read container '%s': %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	meta, data, err := Decode(f, password)
	if err != nil {
		return Result{}, err
	}
	target := filepath.Join(outDir, meta.Filename)
	size, err := writeAtomic(target, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Path:     target,
		Size:     size,
		Metadata: meta,
	}, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

var errWriteAborted = errors.New("output file write aborted")

// writeAtomic streams whatever fn writes into a temporary file next to path, then renames it into place.
// The temporary file is removed if anything fails, so path is either fully written or not touched.
// An error from fn is returned as-is.
func writeAtomic(path string, fn func(w io.Writer) error) (int64, error) {
	pr, pw := io.Pipe()
	cw := &countingWriter{w: pw}
	done := make(chan error, 1)
	go func() {
		err := fn(cw)
		_ = pw.CloseWithError(err)
		done <- err
	}()

	err := atomic.WriteFile(path, bufio.NewReader(pr))
	// Unblocks fn if the write stopped before reading everything.
	_ = pr.CloseWithError(errWriteAborted)
	if fnErr := <-done; fnErr != nil && !errors.Is(fnErr, errWriteAborted) {
		return 0, fnErr
	}
	if err != nil {
		return 0, fmt.Errorf("unable to write output file '%s': %w", path, err)
	}
	return cw.n, nil
}
