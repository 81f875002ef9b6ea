// Package json renders a metrics report as the JSON export envelope used for
// diagnostics: generatedAt, summary, monthlyStats, dailyStats, executions.
package json

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sonnes/ganaka/core"
	"github.com/sonnes/ganaka/stats"
)

// Renderer renders a report to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer.
func New() *Renderer {
	return &Renderer{}
}

// envelope is the exported document shape. Timestamps are re-serialized as
// local-time strings with millisecond precision, or null when absent.
type envelope struct {
	GeneratedAt  string                       `json:"generatedAt"`
	Summary      core.Summary                 `json:"summary"`
	MonthlyStats map[string]core.MonthlyStats `json:"monthlyStats"`
	DailyStats   map[string]core.DailyStats   `json:"dailyStats"`
	Executions   []execution                  `json:"executions"`
}

type execution struct {
	ExecutionID       string               `json:"executionId"`
	StartTime         *string              `json:"startTime"`
	EndTime           *string              `json:"endTime"`
	Status            string               `json:"status"`
	WorkflowType      string               `json:"workflowType"`
	FsWriteLines      int                  `json:"fsWriteLines"`
	StrReplaceAdded   int                  `json:"strReplaceAdded"`
	StrReplaceDeleted int                  `json:"strReplaceDeleted"`
	FileOperations    []core.FileOperation `json:"fileOperations"`
}

// Render writes the export envelope to w.
func (r *Renderer) Render(w io.Writer, rep *stats.Report) error {
	env := envelope{
		GeneratedAt:  core.LocalISO(rep.GeneratedAt),
		Summary:      rep.Summary,
		MonthlyStats: rep.Monthly,
		DailyStats:   rep.Daily,
		Executions:   make([]execution, 0, len(rep.Results)),
	}

	for _, res := range rep.Results {
		env.Executions = append(env.Executions, execution{
			ExecutionID:       res.ExecutionID,
			StartTime:         localISOPtr(res.StartTime),
			EndTime:           localISOPtr(res.EndTime),
			Status:            res.Status,
			WorkflowType:      res.WorkflowType,
			FsWriteLines:      res.FsWriteLines,
			StrReplaceAdded:   res.StrReplaceAdded,
			StrReplaceDeleted: res.StrReplaceDeleted,
			FileOperations:    res.FileOperations,
		})
	}

	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(env)
}

func localISOPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := core.LocalISO(*t)
	return &s
}
