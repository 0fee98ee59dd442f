package xor

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	data := []byte("0123456789")
	out, err := Transform(data, "ab")
	require.NoError(t, err)
	require.Len(t, out, len(data))
	for i := range data {
		assert.Equal(t, data[i]^"ab"[i%2], out[i], "byte %d", i)
	}
	assert.Equal(t, []byte("0123456789"), data, "input should not be modified")
}

func TestTransform_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tests := map[string]string{
		"single byte": "k",
		"ascii":       "a longer password",
		"multi-byte":  "pässwörd🔑",
	}
	for name, key := range tests {
		t.Run(name, func(t *testing.T) {
			for _, size := range []int{0, 1, 7, 1024, 4099} {
				data := make([]byte, size)
				rng.Read(data)
				screened, err := Transform(data, key)
				require.NoError(t, err)
				restored, err := Transform(screened, key)
				require.NoError(t, err)
				assert.Equal(t, data, restored)
			}
		})
	}
}

func TestTransform_UTF8Key(t *testing.T) {
	key := "é"
	out, err := Transform([]byte{0x0, 0x0, 0x0}, key)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc3, 0xa9, 0xc3}, out)
}

func TestTransform_EmptyKey(t *testing.T) {
	_, err := Transform([]byte("data"), "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = Transform(nil, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestTransform_MatchesWriter(t *testing.T) {
	var buf bytes.Buffer
	data := bytes.Repeat([]byte("some video bytes "), 5000)
	w, err := NewWriter(&buf, []byte("secret"))
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)

	expected, err := Transform(data, "secret")
	require.NoError(t, err)
	assert.Equal(t, expected, buf.Bytes())
}
