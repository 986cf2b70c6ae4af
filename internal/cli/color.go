package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// useColor reports whether w is a terminal that should get ANSI colors.
// NO_COLOR disables colors (https://no-color.org/).
func useColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// mark returns the pass/fail marker for scenario output.
func mark(pass, color bool) string {
	switch {
	case pass && color:
		return ansiGreen + "✓" + ansiReset
	case pass:
		return "✓"
	case color:
		return ansiRed + "✗" + ansiReset
	default:
		return "✗"
	}
}
