package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Amr-9/bech32m/pkg/converter"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorCyan  = "\033[36m"
	ColorGreen = "\033[32m"
	ColorRed   = "\033[31m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"
)

// IsTerminal reports whether w is a terminal. Only terminals get colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// palette returns the color codes to use for w, or empty strings when w is
// not a terminal.
func palette(w io.Writer, codes ...string) []string {
	if IsTerminal(w) {
		return codes
	}
	return make([]string, len(codes))
}

// ErrorLine returns the single line printed for err. Input errors carry their
// own label, everything else is prefixed with "Error: ".
func ErrorLine(err error) string {
	switch converter.KindOf(err) {
	case converter.KindStdinRead, converter.KindEmptyInput:
		return err.Error()
	default:
		return "Error: " + err.Error()
	}
}

// PrintError writes the error line for err to w, highlighting its label on
// a terminal.
func PrintError(w io.Writer, err error) {
	line := ErrorLine(err)
	c := palette(w, ColorRed+ColorBold, ColorReset)

	label, rest := line, ""
	if i := strings.Index(line, ": "); i >= 0 {
		label, rest = line[:i+1], line[i+1:]
	}
	fmt.Fprintf(w, "%s%s%s%s\n", c[0], label, c[1], rest)
}

// PrintVersion writes the program name and version.
func PrintVersion(w io.Writer, name, version string) {
	fmt.Fprintf(w, "%s %s\n", name, version)
}

// PrintVerifyResults writes the self-test report.
func PrintVerifyResults(w io.Writer, passed bool, results []converter.VerifyResult) {
	c := palette(w, ColorCyan, ColorGreen, ColorRed, ColorDim, ColorReset)
	cyan, green, red, dim, reset := c[0], c[1], c[2], c[3], c[4]

	fmt.Fprintln(w)
	for i, r := range results {
		fmt.Fprintf(w, "  %sTest %d:%s %s\n", cyan, i+1, reset, r.TestName)
		if r.Prefix != "" {
			fmt.Fprintf(w, "    Prefix:   %s\n", r.Prefix)
		}
		fmt.Fprintf(w, "    Input:    %s%s%s\n", dim, r.Input, reset)
		fmt.Fprintf(w, "    Expected: %s\n", r.Expected)

		switch {
		case r.ErrorMessage != "":
			fmt.Fprintf(w, "    %s❌ Error: %s%s\n", red, r.ErrorMessage, reset)
		case r.Match:
			fmt.Fprintf(w, "    Got:      %s\n", r.Got)
			fmt.Fprintf(w, "    %s✅ MATCH%s\n", green, reset)
		default:
			fmt.Fprintf(w, "    Got:      %s\n", r.Got)
			fmt.Fprintf(w, "    %s❌ MISMATCH%s\n", red, reset)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "  ─────────────────────────────────────────────────────────────────")
	if passed {
		fmt.Fprintf(w, "  %s✅ ALL %d VECTORS PASSED%s\n", green, len(results), reset)
	} else {
		fmt.Fprintf(w, "  %s❌ SOME VECTORS FAILED%s\n", red, reset)
	}
	fmt.Fprintln(w)
}
