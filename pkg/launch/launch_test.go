package launch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubStart(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := start
	start = fn
	t.Cleanup(func() {
		start = orig
	})
}

func TestDefault(t *testing.T) {
	var opened []string
	stubStart(t, func(path string) error {
		opened = append(opened, path)
		return nil
	})
	assert.NoError(t, Default().Launch("/tmp/video.mp4"))
	assert.Equal(t, []string{"/tmp/video.mp4"}, opened)
}

func TestDefault_Error(t *testing.T) {
	failed := errors.New("xdg-open: not found")
	stubStart(t, func(string) error {
		return failed
	})
	err := Default().Launch("/tmp/video.mp4")
	assert.ErrorIs(t, err, failed)
	assert.Contains(t, err.Error(), "/tmp/video.mp4")
}

func TestFunc(t *testing.T) {
	var got string
	l := Func(func(path string) error {
		got = path
		return nil
	})
	assert.NoError(t, l.Launch("video.mp4"))
	assert.Equal(t, "video.mp4", got)
	assert.NoError(t, Nop.Launch("anything"))
}
