package json

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/ganaka/core"
	"github.com/sonnes/ganaka/stats"
)

func TestRender(t *testing.T) {
	start := time.Date(2026, 3, 7, 9, 30, 5, 120_000_000, time.Local)
	results := []*core.ExecutionResult{
		{
			ExecutionID:     "e1",
			StartTime:       &start,
			Status:          "completed",
			WorkflowType:    "vibe",
			FsWriteLines:    3,
			StrReplaceAdded: 1,
			FileOperations:  []core.FileOperation{{Type: core.OpCreate, Path: "a.txt", Lines: 3}},
		},
		{ExecutionID: "e2", Status: "unknown", WorkflowType: "unknown"},
	}
	rep := stats.NewReport(results, time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local))

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, rep))

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	for _, key := range []string{"generatedAt", "summary", "monthlyStats", "dailyStats", "executions"} {
		assert.Contains(t, decoded, key)
	}

	var executions []map[string]any
	require.NoError(t, json.Unmarshal(decoded["executions"], &executions))
	require.Len(t, executions, 2)

	assert.Equal(t, "e1", executions[0]["executionId"])
	assert.Equal(t, "2026-03-07T09:30:05.120", executions[0]["startTime"])
	assert.Nil(t, executions[0]["endTime"], "absent end time serializes as null")
	assert.Nil(t, executions[1]["startTime"], "absent start time serializes as null")

	var generatedAt string
	require.NoError(t, json.Unmarshal(decoded["generatedAt"], &generatedAt))
	assert.Equal(t, "2026-03-09T12:00:00.000", generatedAt)
}

func TestRenderIndent(t *testing.T) {
	rep := stats.NewReport(nil, time.Now())

	var plain, pretty bytes.Buffer
	require.NoError(t, (&Renderer{}).Render(&plain, rep))
	require.NoError(t, (&Renderer{Indent: true}).Render(&pretty, rep))

	assert.Greater(t, pretty.Len(), plain.Len())
}
