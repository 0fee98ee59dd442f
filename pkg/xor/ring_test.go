package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyRingNeg(t *testing.T) {
	_, err := newKeyRing(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = newKeyRing([]byte{0}, -1)
	assert.Error(t, err)
	_, err = newKeyRing([]byte{0}, 1)
	assert.Error(t, err)
	_, err = newKeyRing([]byte{0}, 2)
	assert.Error(t, err)
}

func TestKeyRing_Wraps(t *testing.T) {
	r, err := newKeyRing([]byte{0x1, 0x2}, 1)
	assert.NoError(t, err)
	out := make([]byte, 3)
	r.apply(out, []byte{0x0, 0x0, 0x0})
	assert.Equal(t, []byte{0x2, 0x1, 0x2}, out)

	r.reset()
	assert.Equal(t, byte(0x2), r.next(0x0))
}
