package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/kk-code-lab/scroll/internal/textutil"
	"github.com/kk-code-lab/scroll/internal/ui/pager"
)

const (
	programName     = "scroll"
	operationFailed = "Operation could not be completed."
)

// printDiagnostic writes the two-line error report. The entity usually comes
// from the command line or the environment and is sanitised before printing.
func printDiagnostic(w io.Writer, err error) {
	message, entity := err.Error(), ""
	var diag pager.Diagnostic
	if errors.As(err, &diag) {
		message, entity = diag.Diagnostic()
	}

	line := message
	if entity != "" {
		line += " " + textutil.SanitizeTerminalText(entity)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n%s: %s\n", programName, line, programName, operationFailed)
}
