package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// PrintError writes the error, any attached detail, and every remediation hint.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %v\n", GlyphError, err)
	if detail := strings.TrimSpace(errors.FlattenDetails(err)); detail != "" {
		for _, line := range strings.Split(detail, "\n") {
			fmt.Fprintf(w, "   %s\n", line)
		}
	}
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
