// Package cliutil holds small helpers shared by the jsonref commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef formats to w. Command output and usage text treat writes as
// best-effort, so a failed write is reported on stderr instead of
// returned.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
