// Package stats folds execution results into daily and monthly time series
// and grand totals. All folds are pure functions of the result list; results
// without a start time are excluded from every time bucket.
package stats

import (
	"time"

	"github.com/sonnes/ganaka/core"
)

// ByDate buckets results by their local calendar day (YYYY-MM-DD keys).
func ByDate(results []*core.ExecutionResult) map[string]core.DailyStats {
	daily := make(map[string]core.DailyStats)

	for _, r := range results {
		if r.StartTime == nil {
			continue
		}
		key := core.DateKey(*r.StartTime)

		day := daily[key]
		day.FsWriteLines += r.FsWriteLines
		day.StrReplaceAdded += r.StrReplaceAdded
		day.StrReplaceDeleted += r.StrReplaceDeleted
		day.ExecutionCount++
		for _, op := range r.FileOperations {
			if op.Type == core.OpCreate {
				day.FilesCreated++
			} else {
				day.FilesModified++
			}
		}
		daily[key] = day
	}

	return daily
}

// monthAccum carries the running month counters plus the set of distinct
// contributing days.
type monthAccum struct {
	core.DailyStats
	days map[string]struct{}
}

// ByMonth buckets results by their local calendar month (YYYY-MM keys).
// ActiveDays counts distinct local days with at least one execution;
// NetLines is derived from the accumulated base counters.
func ByMonth(results []*core.ExecutionResult) map[string]core.MonthlyStats {
	accum := make(map[string]*monthAccum)

	for _, r := range results {
		if r.StartTime == nil {
			continue
		}
		monthKey := core.MonthKey(*r.StartTime)
		dateKey := core.DateKey(*r.StartTime)

		m, ok := accum[monthKey]
		if !ok {
			m = &monthAccum{days: make(map[string]struct{})}
			accum[monthKey] = m
		}
		m.FsWriteLines += r.FsWriteLines
		m.StrReplaceAdded += r.StrReplaceAdded
		m.StrReplaceDeleted += r.StrReplaceDeleted
		m.ExecutionCount++
		m.days[dateKey] = struct{}{}
		for _, op := range r.FileOperations {
			if op.Type == core.OpCreate {
				m.FilesCreated++
			} else {
				m.FilesModified++
			}
		}
	}

	monthly := make(map[string]core.MonthlyStats, len(accum))
	for key, m := range accum {
		monthly[key] = core.MonthlyStats{
			FsWriteLines:      m.FsWriteLines,
			StrReplaceAdded:   m.StrReplaceAdded,
			StrReplaceDeleted: m.StrReplaceDeleted,
			NetLines:          m.NetLines(),
			ExecutionCount:    m.ExecutionCount,
			FilesCreated:      m.FilesCreated,
			FilesModified:     m.FilesModified,
			ActiveDays:        len(m.days),
		}
	}
	return monthly
}

// Summarize computes grand totals across all results, including those
// without a start time.
func Summarize(results []*core.ExecutionResult) core.Summary {
	var s core.Summary
	s.TotalExecutions = len(results)
	for _, r := range results {
		s.TotalFsWriteLines += r.FsWriteLines
		s.TotalStrReplaceAdded += r.StrReplaceAdded
		s.TotalStrReplaceDeleted += r.StrReplaceDeleted
	}
	s.NetLines = s.TotalFsWriteLines + s.TotalStrReplaceAdded - s.TotalStrReplaceDeleted
	return s
}

// Report bundles every aggregate view over one scan.
type Report struct {
	GeneratedAt time.Time
	Summary     core.Summary
	Daily       map[string]core.DailyStats
	Monthly     map[string]core.MonthlyStats
	Results     []*core.ExecutionResult
}

// NewReport aggregates results into a Report generated at now.
func NewReport(results []*core.ExecutionResult, now time.Time) *Report {
	return &Report{
		GeneratedAt: now,
		Summary:     Summarize(results),
		Daily:       ByDate(results),
		Monthly:     ByMonth(results),
		Results:     results,
	}
}
