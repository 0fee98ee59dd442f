package vpack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"path/filepath"
)

// Metadata describes the original file packed into a container.
type Metadata struct {
	Filename  string `json:"filename"`
	Size      uint64 `json:"size"`
	Encrypted bool   `json:"encrypted"`
}

// NewMetadata creates the Metadata recorded for a screened file at path with the given size.
func NewMetadata(path string, size uint64) Metadata {
	return Metadata{
		Filename:  filepath.Base(path),
		Size:      size,
		Encrypted: true,
	}
}

// rawMetadata is used to tell a missing field apart from its zero value.
type rawMetadata struct {
	Filename  *string `json:"filename"`
	Size      *uint64 `json:"size"`
	Encrypted truthy  `json:"encrypted"`
}

// truthy accepts any JSON value for a flag.
// false, null, 0, "", [] and {} are false, everything else is true.
type truthy bool

func (t *truthy) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*t = false
	case bool:
		*t = truthy(val)
	case float64:
		*t = val != 0
	case string:
		*t = len(val) > 0
	case []any:
		*t = len(val) > 0
	case map[string]any:
		*t = len(val) > 0
	default:
		return fmt.Errorf("unexpected JSON value %s", data)
	}
	return nil
}

func (m Metadata) marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("metadata is too large to encode: %d bytes", len(data))
	}
	return data, nil
}

// readMetadata reads exactly length bytes from r and parses them.
// Data is read through a limit rather than preallocated, so a bogus length can't force a huge allocation.
func readMetadata(r io.Reader, length uint32) (rawMetadata, error) {
	var raw rawMetadata
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, int64(length)))
	if err != nil {
		return raw, fmt.Errorf("failed to read metadata: %w", err)
	}
	if n < int64(length) {
		return raw, fmt.Errorf("%w: metadata length %d exceeds remaining data (%d bytes)", ErrFormat, length, n)
	}
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		return raw, fmt.Errorf("%w: malformed metadata: %v", ErrFormat, err)
	}
	return raw, nil
}

// validate converts the raw record, checking the screening flag before anything else.
func (raw rawMetadata) validate() (Metadata, error) {
	if !raw.Encrypted {
		return Metadata{}, ErrNotEncrypted
	}
	if raw.Size == nil {
		return Metadata{}, fmt.Errorf("%w: metadata is missing size", ErrFormat)
	}
	if raw.Filename == nil {
		return Metadata{}, fmt.Errorf("%w: metadata is missing filename", ErrFormat)
	}
	name, err := sanitizeFilename(*raw.Filename)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		Filename:  name,
		Size:      *raw.Size,
		Encrypted: bool(raw.Encrypted),
	}, nil
}

// sanitizeFilename keeps only the base name, so a recorded name can never point outside the restore directory.
func sanitizeFilename(name string) (string, error) {
	base := filepath.Base(filepath.FromSlash(name))
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: unusable file name '%s'", ErrFormat, name)
	}
	return base, nil
}
