package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PasswordEnvVar may hold the password, skipping the prompt.
const PasswordEnvVar = EnvPrefix + "_" + "PASSWORD"

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Password returns given if it's set, then the PasswordEnvVar value, and finally prompts on the terminal.
// When confirm is set, the prompt asks twice and the entries must match.
func Password(given string, confirm bool) (string, error) {
	if len(given) > 0 {
		return given, nil
	}
	if env := os.Getenv(PasswordEnvVar); len(env) > 0 {
		return env, nil
	}
	pass, err := readPassword("Enter password: ")
	if err != nil {
		return "", err
	}
	if !confirm {
		return pass, nil
	}
	again, err := readPassword("Confirm password: ")
	if err != nil {
		return "", err
	}
	if pass != again {
		return "", ErrPasswordMismatch
	}
	return pass, nil
}

func readPassword(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pass, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(pass), nil
	}
	return readLine(os.Stdin)
}

// WaitForEnter blocks until a line (or EOF) is read from in.
func WaitForEnter(in io.Reader, msg string) {
	Echo(msg)
	_, _ = readLine(in)
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
