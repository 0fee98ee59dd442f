package xor

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenKey(t *testing.T) {
	key, err := GenKey(32)
	assert.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestGenKey_Neg(t *testing.T) {
	_, err := GenKey(0)
	assert.Error(t, err)
	_, err = GenKey(-1)
	assert.Error(t, err)

	orig := rand.Reader
	defer func() {
		rand.Reader = orig
	}()
	rand.Reader = bytes.NewBuffer(nil)

	_, err = GenKey(10)
	assert.Error(t, err)
}

func TestGenPassword(t *testing.T) {
	pass, err := GenPassword(16)
	assert.NoError(t, err)
	assert.Len(t, pass, 32)
	_, err = hex.DecodeString(pass)
	assert.NoError(t, err)
}
