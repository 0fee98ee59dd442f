package vpack

import (
	"bufio"
	"fmt"
	"io"

	"github.com/saylorsolutions/vpack/pkg/xor"
)

// Encode writes a complete container to w.
// Exactly meta.Size bytes are read from src and screened with password on the way out.
// If src runs out early the container is incomplete and an error is returned.
func Encode(w io.Writer, src io.Reader, meta Metadata, password string) error {
	if len(password) == 0 {
		return ErrEmptyPassword
	}
	metaBytes, err := meta.marshal()
	if err != nil {
		return err
	}
	xw, err := xor.NewWriter(w, []byte(password))
	if err != nil {
		return err
	}

	h := header{
		magic:   magicValue,
		metaLen: uint32(len(metaBytes)),
	}
	if err := h.write(w); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(metaBytes); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	n, err := io.CopyN(xw, src, int64(meta.Size))
	if err != nil {
		return fmt.Errorf("failed to write payload after %d of %d bytes: %w", n, meta.Size, err)
	}
	return nil
}

// ReadMetadata reads the header and metadata block from r, leaving r positioned at the start of the payload.
// The screening flag isn't checked, so this may be used to inspect any container.
func ReadMetadata(r io.Reader) (Metadata, error) {
	var h header
	if err := h.read(r); err != nil {
		return Metadata{}, err
	}
	raw, err := readMetadata(r, h.metaLen)
	if err != nil {
		return Metadata{}, err
	}
	meta := Metadata{Encrypted: bool(raw.Encrypted)}
	if raw.Filename != nil {
		meta.Filename = *raw.Filename
	}
	if raw.Size != nil {
		meta.Size = *raw.Size
	}
	return meta, nil
}

// Decode reads a whole container from r and returns its metadata and the restored payload.
//
// The returned error matches ErrFormat if the marker or metadata is bad, ErrNotEncrypted if the payload isn't screened,
// and ErrIntegrity if the restored payload isn't the recorded size.
// A wrong password that leaves the length intact is not detected.
func Decode(r io.Reader, password string) (Metadata, []byte, error) {
	if len(password) == 0 {
		return Metadata{}, nil, ErrEmptyPassword
	}
	var h header
	if err := h.read(r); err != nil {
		return Metadata{}, nil, err
	}
	raw, err := readMetadata(r, h.metaLen)
	if err != nil {
		return Metadata{}, nil, err
	}
	meta, err := raw.validate()
	if err != nil {
		return Metadata{}, nil, err
	}

	xr, err := xor.NewReader(bufio.NewReader(r), []byte(password))
	if err != nil {
		return meta, nil, err
	}
	data, err := io.ReadAll(xr)
	if err != nil {
		return meta, nil, fmt.Errorf("failed to read payload: %w", err)
	}
	if uint64(len(data)) != meta.Size {
		return meta, nil, fmt.Errorf("%w: restored %d bytes, expected %d", ErrIntegrity, len(data), meta.Size)
	}
	return meta, data, nil
}
