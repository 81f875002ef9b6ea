package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/ganaka/core"
)

func at(day, hour int) *time.Time {
	t := time.Date(2026, 3, day, hour, 0, 0, 0, time.Local)
	return &t
}

func result(id string, start *time.Time, write, added, deleted int, ops ...core.FileOperation) *core.ExecutionResult {
	return &core.ExecutionResult{
		ExecutionID:       id,
		StartTime:         start,
		Status:            "completed",
		WorkflowType:      "vibe",
		FsWriteLines:      write,
		StrReplaceAdded:   added,
		StrReplaceDeleted: deleted,
		FileOperations:    ops,
	}
}

func TestByDate(t *testing.T) {
	results := []*core.ExecutionResult{
		result("e1", at(7, 9), 10, 2, 1,
			core.FileOperation{Type: core.OpCreate, Path: "a.go", Lines: 10},
			core.FileOperation{Type: core.OpReplace, Path: "b.go", Added: 2, Deleted: 1},
		),
		result("e2", at(7, 18), 5, 0, 0,
			core.FileOperation{Type: core.OpCreate, Path: "c.go", Lines: 5},
		),
		result("e3", at(8, 1), 0, 3, 3,
			core.FileOperation{Type: core.OpReplace, Path: "d.go", Added: 3, Deleted: 3},
		),
		result("e4", nil, 99, 0, 0), // no start time: excluded from buckets
	}

	daily := ByDate(results)
	require.Len(t, daily, 2)

	day7 := daily["2026-03-07"]
	assert.Equal(t, 15, day7.FsWriteLines)
	assert.Equal(t, 2, day7.StrReplaceAdded)
	assert.Equal(t, 1, day7.StrReplaceDeleted)
	assert.Equal(t, 2, day7.ExecutionCount)
	assert.Equal(t, 2, day7.FilesCreated)
	assert.Equal(t, 1, day7.FilesModified)

	day8 := daily["2026-03-08"]
	assert.Equal(t, 1, day8.ExecutionCount)
	assert.Equal(t, 1, day8.FilesModified)
}

// File-operation counts are independent of the line counters: a zero-line
// operation still increments the created/modified tallies.
func TestByDateZeroLineOperations(t *testing.T) {
	results := []*core.ExecutionResult{
		result("e1", at(7, 9), 0, 0, 0,
			core.FileOperation{Type: core.OpCreate, Path: "empty.go", Lines: 0},
		),
	}

	daily := ByDate(results)
	day := daily["2026-03-07"]
	assert.Equal(t, 1, day.FilesCreated)
	assert.Equal(t, 0, day.FsWriteLines)
}

func TestByMonth(t *testing.T) {
	results := []*core.ExecutionResult{
		result("e1", at(7, 9), 10, 2, 1),
		result("e2", at(7, 18), 5, 0, 0),
		result("e3", at(8, 1), 0, 3, 3),
		result("e4", nil, 99, 0, 0),
	}

	monthly := ByMonth(results)
	require.Len(t, monthly, 1)

	m := monthly["2026-03"]
	assert.Equal(t, 15, m.FsWriteLines)
	assert.Equal(t, 5, m.StrReplaceAdded)
	assert.Equal(t, 4, m.StrReplaceDeleted)
	assert.Equal(t, 16, m.NetLines, "netLines = write + added - deleted")
	assert.Equal(t, 3, m.ExecutionCount)
	assert.Equal(t, 2, m.ActiveDays, "two distinct days with executions")
}

func TestActiveDaysMatchesDistinctDateKeys(t *testing.T) {
	results := []*core.ExecutionResult{
		result("e1", at(1, 0), 1, 0, 0),
		result("e2", at(1, 23), 1, 0, 0),
		result("e3", at(2, 12), 1, 0, 0),
		result("e4", at(15, 12), 1, 0, 0),
	}

	monthly := ByMonth(results)
	daily := ByDate(results)

	assert.Equal(t, len(daily), monthly["2026-03"].ActiveDays)
}

func TestSummarize(t *testing.T) {
	results := []*core.ExecutionResult{
		result("e1", at(7, 9), 10, 2, 1),
		result("e2", nil, 5, 4, 8), // counted in totals even without start time
	}

	s := Summarize(results)
	assert.Equal(t, 2, s.TotalExecutions)
	assert.Equal(t, 15, s.TotalFsWriteLines)
	assert.Equal(t, 6, s.TotalStrReplaceAdded)
	assert.Equal(t, 9, s.TotalStrReplaceDeleted)
	assert.Equal(t, 12, s.NetLines)

	// netLines always equals the sum of per-execution net deltas.
	var want int
	for _, r := range results {
		want += r.NetLines()
	}
	assert.Equal(t, want, s.NetLines)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, core.Summary{}, s)
}

func TestNewReport(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local)
	results := []*core.ExecutionResult{result("e1", at(7, 9), 10, 2, 1)}

	rep := NewReport(results, now)
	assert.Equal(t, now, rep.GeneratedAt)
	assert.Equal(t, 1, rep.Summary.TotalExecutions)
	assert.Len(t, rep.Daily, 1)
	assert.Len(t, rep.Monthly, 1)
	assert.Equal(t, results, rep.Results)
}
