package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionResultNetLines(t *testing.T) {
	r := &ExecutionResult{FsWriteLines: 10, StrReplaceAdded: 5, StrReplaceDeleted: 3}
	assert.Equal(t, 12, r.NetLines())
}

func TestHasActivity(t *testing.T) {
	tests := []struct {
		name   string
		result ExecutionResult
		want   bool
	}{
		{"zero counters", ExecutionResult{}, false},
		{"write lines only", ExecutionResult{FsWriteLines: 1}, true},
		{"added only", ExecutionResult{StrReplaceAdded: 1}, true},
		{"deleted only", ExecutionResult{StrReplaceDeleted: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.HasActivity())
		})
	}
}

func TestDailyStatsNetLines(t *testing.T) {
	d := DailyStats{FsWriteLines: 7, StrReplaceAdded: 2, StrReplaceDeleted: 4}
	assert.Equal(t, 5, d.NetLines())

	// Net can go negative when deletions dominate.
	d = DailyStats{StrReplaceDeleted: 9}
	assert.Equal(t, -9, d.NetLines())
}
