package xor

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// GenKey will generate an XOR key with the given length.
func GenKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a 0-length key")
	}
	buf := make([]byte, length)
	n, err := io.ReadFull(rand.Reader, buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return buf, nil
}

// GenPassword generates a random key of length bytes and returns it hex encoded, so it can be typed back in as a password.
// The returned string is twice as long as length.
func GenPassword(length int) (string, error) {
	key, err := GenKey(length)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}
