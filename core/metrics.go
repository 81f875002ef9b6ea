// Package core defines the normalized metric model — the typed representation
// of code-generation activity that the reader produces and the aggregation
// and rendering layers consume.
package core

import "time"

// OpType enumerates file operation kinds.
type OpType string

const (
	// OpCreate is a whole-file write (fsWrite tool).
	OpCreate OpType = "fsWrite"
	// OpReplace is an in-place text substitution (strReplace tool).
	OpReplace OpType = "strReplace"
)

// FileOperation is one recorded file mutation within an execution.
// Immutable once constructed.
type FileOperation struct {
	Type    OpType `json:"type"`
	Path    string `json:"path"`
	Lines   int    `json:"lines,omitempty"`   // fsWrite: line count of the created content
	Added   int    `json:"added,omitempty"`   // strReplace: lines added
	Deleted int    `json:"deleted,omitempty"` // strReplace: lines deleted
}

// ExecutionResult is the outcome of one agent execution, built once per log
// file and never mutated afterwards.
type ExecutionResult struct {
	ExecutionID       string
	StartTime         *time.Time
	EndTime           *time.Time
	Status            string
	WorkflowType      string
	FsWriteLines      int
	StrReplaceAdded   int
	StrReplaceDeleted int
	FileOperations    []FileOperation
}

// NetLines derives the net line delta from the three base counters.
func (r *ExecutionResult) NetLines() int {
	return r.FsWriteLines + r.StrReplaceAdded - r.StrReplaceDeleted
}

// HasActivity reports whether the execution recorded any file-mutation lines.
func (r *ExecutionResult) HasActivity() bool {
	return r.FsWriteLines > 0 || r.StrReplaceAdded > 0 || r.StrReplaceDeleted > 0
}

// DailyStats holds counters for one local calendar day, keyed externally by
// a YYYY-MM-DD string.
type DailyStats struct {
	FsWriteLines      int `json:"fsWriteLines"`
	StrReplaceAdded   int `json:"strReplaceAdded"`
	StrReplaceDeleted int `json:"strReplaceDeleted"`
	ExecutionCount    int `json:"executionCount"`
	FilesCreated      int `json:"filesCreated"`
	FilesModified     int `json:"filesModified"`
}

// NetLines derives the net line delta from the three base counters.
func (d DailyStats) NetLines() int {
	return d.FsWriteLines + d.StrReplaceAdded - d.StrReplaceDeleted
}

// MonthlyStats holds counters for one local calendar month, keyed externally
// by a YYYY-MM string. NetLines and ActiveDays are derived at aggregation
// time from the base counters and the set of contributing days.
type MonthlyStats struct {
	FsWriteLines      int `json:"fsWriteLines"`
	StrReplaceAdded   int `json:"strReplaceAdded"`
	StrReplaceDeleted int `json:"strReplaceDeleted"`
	NetLines          int `json:"netLines"`
	ExecutionCount    int `json:"executionCount"`
	FilesCreated      int `json:"filesCreated"`
	FilesModified     int `json:"filesModified"`
	ActiveDays        int `json:"activeDays"`
}

// Summary holds grand totals across all executions in a scan.
type Summary struct {
	TotalExecutions        int `json:"totalExecutions"`
	TotalFsWriteLines      int `json:"totalFsWriteLines"`
	TotalStrReplaceAdded   int `json:"totalStrReplaceAdded"`
	TotalStrReplaceDeleted int `json:"totalStrReplaceDeleted"`
	NetLines               int `json:"netLines"`
}
