package xor

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey = errors.New("cannot use empty key")
)

// keyRing walks the bytes of a key, wrapping back to the start after the last one.
type keyRing struct {
	key   []byte
	start int
	pos   int
}

func newKeyRing(key []byte, offset ...int) (*keyRing, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	r := &keyRing{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("offset %d out of range for provided key of len %d", offset[0], len(key))
		}
		r.start = offset[0]
		r.pos = r.start
	}
	return r, nil
}

func (r *keyRing) next(b byte) byte {
	b ^= r.key[r.pos]
	r.pos++
	if r.pos == len(r.key) {
		r.pos = 0
	}
	return b
}

// apply XORs each byte of in into the same index of out, advancing the ring.
// out must be at least as long as in, and may be the same slice.
func (r *keyRing) apply(out, in []byte) {
	for i, b := range in {
		out[i] = r.next(b)
	}
}

func (r *keyRing) reset() {
	r.pos = r.start
}
