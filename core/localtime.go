package core

import "time"

// Time-bucketing keys are derived in the observer's local calendar, not UTC:
// two executions straddling a UTC day boundary but sharing a local day land
// in the same bucket.

// DateKey formats t as a YYYY-MM-DD key in the local calendar.
func DateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// MonthKey formats t as a YYYY-MM key in the local calendar.
func MonthKey(t time.Time) string {
	return t.Local().Format("2006-01")
}

// LocalISO formats t as a local-time ISO-like string with millisecond
// precision and no offset suffix, e.g. "2026-03-01T14:05:09.120".
func LocalISO(t time.Time) string {
	return t.Local().Format("2006-01-02T15:04:05.000")
}
