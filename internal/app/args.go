package app

import (
	"strings"

	"github.com/kk-code-lab/scroll/internal/ui/pager"
)

// parseArgs accepts at most one file name. No options are defined, so any
// token starting with '-' is rejected.
func parseArgs(args []string) (string, error) {
	path := ""
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return "", &pager.UsageError{Message: "Unrecognized Option:", Entity: arg}
		}
		if i > 0 {
			return "", &pager.UsageError{Message: "Unrecognized input:", Entity: arg}
		}
		path = arg
	}
	return path, nil
}
