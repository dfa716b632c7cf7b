package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"input-object-generator/internal/diagnostic"
)

var severityColors = map[diagnostic.Severity]*color.Color{
	diagnostic.SeverityError:   color.New(color.FgRed, color.Bold),
	diagnostic.SeverityWarning: color.New(color.FgYellow),
	diagnostic.SeverityInfo:    color.New(color.FgCyan),
}

// printDiagnostics writes every diagnostic, errors first, followed by a
// summary line.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		label := severityColors[d.Severity].Sprint(d.Severity.String())
		fmt.Fprintf(w, "%s: %s\n", label, d.String())
	}

	if len(diags.Errors)+len(diags.Warnings) == 0 {
		return
	}

	fmt.Fprintf(w, "%s, %s\n",
		plural(len(diags.Errors), "error"),
		plural(len(diags.Warnings), "warning"),
	)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}
