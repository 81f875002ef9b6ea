// Package render defines the interface for rendering metric reports into
// various output formats.
package render

import (
	"io"

	"github.com/sonnes/ganaka/stats"
)

// Renderer writes a report to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, rep *stats.Report) error
}
