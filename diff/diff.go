// Package diff counts line-level changes between two text blobs using an
// LCS-based sequence diff, producing the same counts a unified diff reports.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Delta holds the line counts of a replace operation.
type Delta struct {
	Added   int
	Deleted int
}

// CountDelta splits both texts into lines and aligns them with a sequence
// diff. Insert runs sum into Added, delete runs into Deleted; unchanged runs
// contribute nothing. An empty input splits to a single empty line, matching
// naive split semantics — except when both inputs are empty, which short
// circuits to a zero Delta without diffing.
func CountDelta(oldText, newText string) Delta {
	if oldText == "" && newText == "" {
		return Delta{}
	}

	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	var d Delta
	for _, op := range difflib.NewMatcher(oldLines, newLines).GetOpCodes() {
		switch op.Tag {
		case 'i':
			d.Added += op.J2 - op.J1
		case 'd':
			d.Deleted += op.I2 - op.I1
		case 'r':
			d.Added += op.J2 - op.J1
			d.Deleted += op.I2 - op.I1
		}
	}
	return d
}

// CountLines returns the number of newline-delimited segments in text after
// trimming surrounding whitespace from the whole blob. Empty text counts 0;
// a trailing newline is not itself a line.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(strings.TrimSpace(text), "\n") + 1
}
