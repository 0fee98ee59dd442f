package xor

// Transform returns a copy of data with every byte XORed against the UTF-8 bytes of key, repeating the key as needed.
// Calling Transform on its own output with the same key returns the original data.
// An empty key is rejected with ErrEmptyKey.
func Transform(data []byte, key string) ([]byte, error) {
	ring, err := newKeyRing([]byte(key))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	ring.apply(out, data)
	return out, nil
}
