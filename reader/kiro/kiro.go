// Package kiro reads Kiro agent execution logs — JSON documents stored under
// <storage root>/<session hash>/<log dir>/ — and normalizes them into
// execution results.
package kiro

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sonnes/ganaka/core"
	"github.com/sonnes/ganaka/diff"
)

// logSubdir is the fixed-name directory holding execution logs inside each
// session-hash directory.
const logSubdir = "414d1636299d2b9e4ce7e17fb11f63e9"

// Tool names recognized as file-mutating.
const (
	toolWrite   = "fsWrite"
	toolReplace = "strReplace"
)

// Reader reads Kiro execution logs from a two-level directory tree.
type Reader struct {
	// Root is the storage directory containing session-hash directories.
	Root string

	// LogDir overrides the fixed log subdirectory name. Empty uses the default.
	LogDir string

	// Logger receives skip diagnostics. Nil disables them.
	Logger *log.Logger
}

// Raw JSON deserialization types. These mirror the execution log structure
// on disk; every field is optional and tolerated when absent.

type rawLog struct {
	ExecutionID  string       `json:"executionId"`
	WorkflowType string       `json:"workflowType"`
	Status       string       `json:"status"`
	StartTime    *int64       `json:"startTime"`
	EndTime      *int64       `json:"endTime"`
	Metadata     *rawMetadata `json:"metadata"`
	Actions      []rawAction  `json:"actions"`
	Context      *rawContext  `json:"context"`
}

type rawMetadata struct {
	EndTime *int64 `json:"endTime"`
}

type rawAction struct {
	ActionID   string    `json:"actionId"`
	ActionType string    `json:"actionType"`
	EmittedAt  int64     `json:"emittedAt"`
	Input      *rawInput `json:"input"`
}

type rawInput struct {
	File            string `json:"file"`
	ModifiedContent string `json:"modifiedContent"`
	OriginalContent string `json:"originalContent"`
}

type rawContext struct {
	Messages []rawMessage `json:"messages"`
}

type rawMessage struct {
	Entries []rawEntry `json:"entries"`
}

type rawEntry struct {
	Type string   `json:"type"`
	Name string   `json:"name"`
	ID   string   `json:"id"`
	Args *rawArgs `json:"args"`
}

type rawArgs struct {
	Path   string `json:"path"`
	Text   string `json:"text"`
	OldStr string `json:"oldStr"`
	NewStr string `json:"newStr"`
}

// toolUse is one normalized file-mutation invocation, produced by either
// extraction pass.
type toolUse struct {
	id     string
	name   string
	path   string
	text   string
	oldStr string
	newStr string
}

// ReadFile processes a single execution log file with a fresh dedup context.
func (r *Reader) ReadFile(path string) (*core.ExecutionResult, error) {
	result := r.processFile(path, make(map[string]struct{}))
	if result == nil {
		return nil, fmt.Errorf("no execution record in %s", path)
	}
	return result, nil
}

// ReadAll scans every session-hash directory under Root, processing each log
// file found in the fixed log subdirectory. Execution IDs are deduplicated
// across the entire scan; zero-activity executions are dropped from the
// returned list but keep their dedup slot. Unreadable sessions and files are
// skipped; a missing root is fatal.
func (r *Reader) ReadAll() ([]*core.ExecutionResult, error) {
	sessions, err := os.ReadDir(r.Root)
	if err != nil {
		return nil, fmt.Errorf("read log root: %w", err)
	}

	seen := make(map[string]struct{})
	var results []*core.ExecutionResult

	for _, session := range sessions {
		if !session.IsDir() {
			continue
		}

		logDir := filepath.Join(r.Root, session.Name(), r.logDir())
		files, err := os.ReadDir(logDir)
		if err != nil {
			// Session without a log subdirectory, or unreadable.
			continue
		}

		for _, f := range files {
			if !f.Type().IsRegular() {
				continue
			}
			result := r.processFile(filepath.Join(logDir, f.Name()), seen)
			if result == nil {
				continue
			}
			if result.HasActivity() {
				results = append(results, result)
			}
		}
	}

	return results, nil
}

func (r *Reader) logDir() string {
	if r.LogDir != "" {
		return r.LogDir
	}
	return logSubdir
}

func (r *Reader) debugf(msg string, keyvals ...any) {
	if r.Logger != nil {
		r.Logger.Debug(msg, keyvals...)
	}
}

// processFile turns one log file into an ExecutionResult. It returns nil when
// the file is unreadable, unparseable, missing an execution ID, or a
// duplicate of an already-seen execution. Duplicates are discarded entirely,
// never merged.
func (r *Reader) processFile(path string, seenExecutions map[string]struct{}) *core.ExecutionResult {
	data, err := os.ReadFile(path)
	if err != nil {
		r.debugf("skip unreadable log", "path", path, "err", err)
		return nil
	}

	raw, ok := parseLog(data)
	if !ok {
		r.debugf("skip malformed log", "path", path)
		return nil
	}

	if _, dup := seenExecutions[raw.ExecutionID]; dup {
		r.debugf("skip duplicate execution", "executionId", raw.ExecutionID)
		return nil
	}
	seenExecutions[raw.ExecutionID] = struct{}{}

	result := &core.ExecutionResult{
		ExecutionID:  raw.ExecutionID,
		StartTime:    epochTime(raw.StartTime),
		EndTime:      endTime(raw),
		Status:       orUnknown(raw.Status),
		WorkflowType: orUnknown(raw.WorkflowType),
	}

	// Tool-ID dedup does not cross execution boundaries: one fresh set per
	// execution, shared by both extraction passes. The actions pass runs
	// first, so on an ID collision the actions entry wins.
	seenTools := make(map[string]struct{})
	uses := extractFromActions(raw.Actions, seenTools)
	if raw.Context != nil {
		uses = append(uses, extractFromMessages(raw.Context.Messages, seenTools)...)
	}

	for _, tu := range uses {
		switch tu.name {
		case toolWrite:
			lines := diff.CountLines(tu.text)
			result.FsWriteLines += lines
			result.FileOperations = append(result.FileOperations, core.FileOperation{
				Type:  core.OpCreate,
				Path:  tu.path,
				Lines: lines,
			})
		case toolReplace:
			d := diff.CountDelta(tu.oldStr, tu.newStr)
			result.StrReplaceAdded += d.Added
			result.StrReplaceDeleted += d.Deleted
			result.FileOperations = append(result.FileOperations, core.FileOperation{
				Type:    core.OpReplace,
				Path:    tu.path,
				Added:   d.Added,
				Deleted: d.Deleted,
			})
		}
	}

	return result
}

// parseLog decodes raw bytes into a rawLog. It fails softly: unparseable
// data or a missing executionId yields ok=false.
func parseLog(data []byte) (*rawLog, bool) {
	var raw rawLog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}
	if raw.ExecutionID == "" {
		return nil, false
	}
	return &raw, true
}

// extractFromActions emits a synthetic fsWrite tool-use for each unseen
// "create" action carrying modified content. The action ID is marked seen
// even when the content is absent, so a later messages-pass entry with the
// same ID stays suppressed.
func extractFromActions(actions []rawAction, seen map[string]struct{}) []toolUse {
	var uses []toolUse
	for _, action := range actions {
		if action.ActionType != "create" || action.ActionID == "" {
			continue
		}
		if _, ok := seen[action.ActionID]; ok {
			continue
		}
		seen[action.ActionID] = struct{}{}

		if action.Input == nil || action.Input.ModifiedContent == "" {
			continue
		}
		uses = append(uses, toolUse{
			id:   action.ActionID,
			name: toolWrite,
			path: action.Input.File,
			text: action.Input.ModifiedContent,
		})
	}
	return uses
}

// extractFromMessages emits a tool-use for each unseen toolUse entry naming
// a file-mutating tool. Only non-empty IDs participate in dedup; an entry
// without an ID is always emitted.
func extractFromMessages(messages []rawMessage, seen map[string]struct{}) []toolUse {
	var uses []toolUse
	for _, msg := range messages {
		for _, entry := range msg.Entries {
			if entry.Type != "toolUse" {
				continue
			}
			if entry.ID != "" {
				if _, ok := seen[entry.ID]; ok {
					continue
				}
			}
			if entry.Name != toolWrite && entry.Name != toolReplace {
				continue
			}
			if entry.ID != "" {
				seen[entry.ID] = struct{}{}
			}

			tu := toolUse{id: entry.ID, name: entry.Name}
			if entry.Args != nil {
				tu.path = entry.Args.Path
				tu.text = entry.Args.Text
				tu.oldStr = entry.Args.OldStr
				tu.newStr = entry.Args.NewStr
			}
			uses = append(uses, tu)
		}
	}
	return uses
}

// endTime resolves the execution end time; the top-level field wins over the
// nested metadata field when both are present.
func endTime(raw *rawLog) *time.Time {
	if t := epochTime(raw.EndTime); t != nil {
		return t
	}
	if raw.Metadata != nil {
		return epochTime(raw.Metadata.EndTime)
	}
	return nil
}

// epochTime converts an optional epoch-millisecond timestamp. Zero is
// treated the same as absent.
func epochTime(ms *int64) *time.Time {
	if ms == nil || *ms == 0 {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
