// Package reader defines the interface for extracting normalized execution
// results from an agent's local log store.
package reader

import "github.com/sonnes/ganaka/core"

// Reader extracts execution results from agent execution logs.
type Reader interface {
	// ReadFile processes a single execution log file.
	ReadFile(path string) (*core.ExecutionResult, error)

	// ReadAll scans the agent's log store and returns every execution that
	// recorded file-mutation activity.
	ReadAll() ([]*core.ExecutionResult, error)
}
