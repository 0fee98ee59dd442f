package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// Output receives everything written with Echo.
	Output io.Writer = os.Stderr
	exit             = os.Exit
)

// Fatal will Echo the message and exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	exit(1)
}

// Echo will emit the given message without any logging formatting.
// The message is only treated as a format string when args are given, so paths containing '%' print as-is.
func Echo(msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = io.WriteString(Output, msg)
}
