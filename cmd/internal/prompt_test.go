package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword_Given(t *testing.T) {
	t.Setenv(PasswordEnvVar, "from env")
	pass, err := Password("given", true)
	assert.NoError(t, err)
	assert.Equal(t, "given", pass)
}

func TestPassword_Env(t *testing.T) {
	t.Setenv(PasswordEnvVar, "from env")
	pass, err := Password("", true)
	assert.NoError(t, err)
	assert.Equal(t, "from env", pass)
}

func TestReadLine(t *testing.T) {
	line, err := readLine(strings.NewReader("s3cre+\r\nignored\n"))
	assert.NoError(t, err)
	assert.Equal(t, "s3cre+", line)

	line, err = readLine(strings.NewReader("no newline"))
	assert.NoError(t, err)
	assert.Equal(t, "no newline", line)
}
