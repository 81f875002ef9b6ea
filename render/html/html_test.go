package html

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/ganaka/core"
	"github.com/sonnes/ganaka/stats"
)

func TestRender(t *testing.T) {
	start := time.Date(2026, 3, 7, 9, 0, 0, 0, time.Local)
	results := []*core.ExecutionResult{
		{ExecutionID: "e1", StartTime: &start, FsWriteLines: 12, StrReplaceAdded: 4, StrReplaceDeleted: 2,
			FileOperations: []core.FileOperation{{Type: core.OpCreate, Path: "a.go", Lines: 12}}},
	}
	rep := stats.NewReport(results, time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local))

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "Kiro Code Generation Report")
	// The GFM tables come through as HTML tables.
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "2026-03-07")
	assert.Contains(t, out, "2026-03-09T12:00:00.000")
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, stats.NewReport(nil, time.Now())))
	assert.Contains(t, buf.String(), "Executions: 0")
}
