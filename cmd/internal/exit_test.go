package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := Output
	Output = &buf
	t.Cleanup(func() {
		Output = orig
	})
	return &buf
}

func TestEcho(t *testing.T) {
	buf := captureOutput(t)
	Echo("Saving to %s", "/tmp/a.vpack+")
	Echo("100%% literal")
	Echo("50% done\n")
	assert.Equal(t, "Saving to /tmp/a.vpack+\n100%% literal\n50% done\n", buf.String())
}

func TestFatal(t *testing.T) {
	buf := captureOutput(t)
	var code int
	orig := exit
	exit = func(c int) { code = c }
	defer func() {
		exit = orig
	}()

	Fatal("Error: %v", "boom")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestWaitForEnter(t *testing.T) {
	buf := captureOutput(t)
	WaitForEnter(bytes.NewBufferString("\n"), "Press Enter to exit...")
	assert.Equal(t, "Press Enter to exit...\n", buf.String())
}
