// Package export turns daily statistics into the fixed-schema CSV records
// the downstream ingestion expects, and uploads them to an object store
// under deterministic keys.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/sonnes/ganaka/core"
)

// Columns is the 41-column daily activity schema. This is an external
// contract: column order and names must match exactly for downstream
// ingestion to succeed.
var Columns = []string{
	"UserId",
	"Date",
	"Chat_AICodeLines",
	"Chat_MessagesInteracted",
	"Chat_MessagesSent",
	"CodeFix_AcceptanceEventCount",
	"CodeFix_AcceptedLines",
	"CodeFix_GeneratedLines",
	"CodeFix_GenerationEventCount",
	"CodeReview_FailedEventCount",
	"CodeReview_FindingsCount",
	"CodeReview_SucceededEventCount",
	"Dev_AcceptanceEventCount",
	"Dev_AcceptedLines",
	"Dev_GeneratedLines",
	"Dev_GenerationEventCount",
	"DocGeneration_AcceptedFileUpdates",
	"DocGeneration_AcceptedFilesCreations",
	"DocGeneration_AcceptedLineAdditions",
	"DocGeneration_AcceptedLineUpdates",
	"DocGeneration_EventCount",
	"DocGeneration_RejectedFileCreations",
	"DocGeneration_RejectedFileUpdates",
	"DocGeneration_RejectedLineAdditions",
	"DocGeneration_RejectedLineUpdates",
	"InlineChat_AcceptanceEventCount",
	"InlineChat_AcceptedLineAdditions",
	"InlineChat_AcceptedLineDeletions",
	"InlineChat_DismissalEventCount",
	"InlineChat_DismissedLineAdditions",
	"InlineChat_DismissedLineDeletions",
	"InlineChat_EventCount",
	"InlineChat_RejectedLineAdditions",
	"InlineChat_RejectedLineDeletions",
	"InlineChat_RejectionEventCount",
	"Inline_AcceptanceCount",
	"Inline_AcceptedCodeLines",
	"Inline_SuggestionsCount",
	"TestGeneration_AcceptedLines",
	"TestGeneration_EventCount",
	"TestGeneration_GeneratedLines",
}

// Live column indexes. Every other column carries the literal "0".
const (
	colUserID       = 0
	colDate         = 1
	colAICodeLines  = 2
	colMessagesSent = 4
)

// objectName is the fixed file-name stem of every daily object.
const objectName = "kiro-metrics"

// Record produces the CSV document for one day: header row plus one data
// row. It is a pure function of its arguments — identical inputs yield
// byte-identical output. date is a YYYY-MM-DD key; the Date column is
// reformatted to MM-DD-YYYY. Chat_AICodeLines carries the day's net lines,
// Chat_MessagesSent its execution count.
func Record(userID, date string, day core.DailyStats) ([]byte, error) {
	formatted, err := reformatDate(date)
	if err != nil {
		return nil, err
	}

	row := make([]string, len(Columns))
	for i := range row {
		row[i] = "0"
	}
	row[colUserID] = userID
	row[colDate] = formatted
	row[colAICodeLines] = strconv.Itoa(day.NetLines())
	row[colMessagesSent] = strconv.Itoa(day.ExecutionCount)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Key returns the deterministic object key for one day's record:
//
//	<prefix>/<YYYY>/<MM>/<DD>/00/kiro-metrics-<userID>.csv
//
// No random or time-of-upload component: re-uploading the same day for the
// same user overwrites the same object.
func Key(prefix, date, userID string) (string, error) {
	year, month, day, err := splitDate(date)
	if err != nil {
		return "", err
	}
	return path.Join(prefix, year, month, day, "00", objectName+"-"+userID+".csv"), nil
}

// reformatDate converts YYYY-MM-DD to MM-DD-YYYY.
func reformatDate(date string) (string, error) {
	year, month, day, err := splitDate(date)
	if err != nil {
		return "", err
	}
	return month + "-" + day + "-" + year, nil
}

func splitDate(date string) (year, month, day string, err error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("invalid date key %q, want YYYY-MM-DD", date)
	}
	return parts[0], parts[1], parts[2], nil
}
