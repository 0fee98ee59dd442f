package vpack

import (
	"encoding/binary"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
)

const (
	// Magic is the marker at the start of every container.
	Magic = "VPK1"
	// Extension is the file extension reserved for containers.
	Extension = ".vpack+"

	magicValue uint32 = 'V'<<24 | 'P'<<16 | 'K'<<8 | '1'
	headerLen         = 8
)

var byteOrder binary.ByteOrder = binary.BigEndian

type header struct {
	magic   uint32
	metaLen uint32
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.magic),
		bin.Int(&h.metaLen),
	)
}

func (h *header) write(w io.Writer) error {
	return h.mapper().Write(w, byteOrder)
}

// read consumes the header from r.
// The magic marker is checked before the length field is read, so a foreign file fails without touching anything past the first 4 bytes.
func (h *header) read(r io.Reader) error {
	if err := bin.Int(&h.magic).Read(r, byteOrder); err != nil {
		return fmt.Errorf("%w: unable to read magic marker: %v", ErrFormat, err)
	}
	if h.magic != magicValue {
		return fmt.Errorf("%w: unexpected marker %#08x", ErrFormat, h.magic)
	}
	if err := bin.Int(&h.metaLen).Read(r, byteOrder); err != nil {
		return fmt.Errorf("%w: unable to read metadata length: %v", ErrFormat, err)
	}
	return nil
}
