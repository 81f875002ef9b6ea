// Package report renders a metrics report as fixed-width text columns for
// the terminal, and as a markdown document for downstream HTML rendering.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/x/term"

	"github.com/sonnes/ganaka/core"
	"github.com/sonnes/ganaka/stats"
)

const defaultWidth = 100

// Renderer pretty-prints a metrics report to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal report Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the report: summary block, monthly table, daily table.
// Months and dates are sorted ascending; the zero-padded key format makes
// lexicographic order chronological.
func (r *Renderer) Render(w io.Writer, rep *stats.Report) error {
	if rep.Summary.TotalExecutions == 0 {
		fmt.Fprintln(w, "No code generation activity found.")
		return nil
	}

	width := r.termWidth()
	sep := styleSeparator.Render(strings.Repeat("─", min(width, 72)))

	fmt.Fprintln(w, styleTitle.Render("Kiro Code Generation Report"))
	fmt.Fprintln(w, styleMeta.Render("generated "+core.LocalISO(rep.GeneratedAt)))
	fmt.Fprintln(w)

	writeSummary(w, rep.Summary)

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render("By Month"))
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, styleColumns.Render(fmt.Sprintf(
		"%-9s %9s %9s %9s %9s %6s %6s", "MONTH", "WRITTEN", "ADDED", "DELETED", "NET", "RUNS", "DAYS")))
	for _, month := range sortedKeys(rep.Monthly) {
		m := rep.Monthly[month]
		fmt.Fprintf(w, "%-9s %9d %9s %9s %9d %6d %6d\n",
			month, m.FsWriteLines,
			styleAdded.Render(fmt.Sprintf("%9d", m.StrReplaceAdded)),
			styleRemoved.Render(fmt.Sprintf("%9d", m.StrReplaceDeleted)),
			m.NetLines, m.ExecutionCount, m.ActiveDays)
	}
	fmt.Fprintln(w, sep)

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render("By Day"))
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, styleColumns.Render(fmt.Sprintf(
		"%-11s %9s %9s %9s %6s %8s %9s", "DATE", "WRITTEN", "ADDED", "DELETED", "RUNS", "CREATED", "MODIFIED")))
	for _, date := range sortedKeys(rep.Daily) {
		d := rep.Daily[date]
		fmt.Fprintf(w, "%-11s %9d %9s %9s %6d %8d %9d\n",
			date, d.FsWriteLines,
			styleAdded.Render(fmt.Sprintf("%9d", d.StrReplaceAdded)),
			styleRemoved.Render(fmt.Sprintf("%9d", d.StrReplaceDeleted)),
			d.ExecutionCount, d.FilesCreated, d.FilesModified)
	}
	fmt.Fprintln(w, sep)

	return nil
}

// writeSummary renders grand totals in two rows: values then labels.
func writeSummary(w io.Writer, s core.Summary) {
	type stat struct {
		value int
		label string
	}
	stats := []stat{
		{s.TotalExecutions, "RUNS"},
		{s.TotalFsWriteLines, "WRITTEN"},
		{s.TotalStrReplaceAdded, "ADDED"},
		{s.TotalStrReplaceDeleted, "DELETED"},
		{s.NetLines, "NET"},
	}

	var values, labels []string
	for _, st := range stats {
		formatted := formatNumber(st.value)
		colWidth := max(len(formatted), len(st.label))
		values = append(values, fmt.Sprintf("%*s", colWidth, formatted))
		labels = append(labels, fmt.Sprintf("%-*s", colWidth, st.label))
	}

	fmt.Fprintln(w, "  "+styleTitle.Render(strings.Join(values, "    ")))
	fmt.Fprintln(w, "  "+styleMeta.Render(strings.Join(labels, "    ")))
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// Markdown renders rep as a GFM document: summary list plus monthly and
// daily tables, sorted ascending. The HTML renderer consumes this output.
func Markdown(rep *stats.Report) string {
	var b strings.Builder

	b.WriteString("# Kiro Code Generation Report\n\n")
	b.WriteString("Generated " + core.LocalISO(rep.GeneratedAt) + "\n\n")

	s := rep.Summary
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Executions: %d\n", s.TotalExecutions)
	fmt.Fprintf(&b, "- Lines written (fsWrite): %d\n", s.TotalFsWriteLines)
	fmt.Fprintf(&b, "- Lines added (strReplace): %d\n", s.TotalStrReplaceAdded)
	fmt.Fprintf(&b, "- Lines deleted (strReplace): %d\n", s.TotalStrReplaceDeleted)
	fmt.Fprintf(&b, "- Net lines: %d\n\n", s.NetLines)

	b.WriteString("## By Month\n\n")
	b.WriteString("| Month | Written | Added | Deleted | Net | Runs | Active Days |\n")
	b.WriteString("|-------|--------:|------:|--------:|----:|-----:|------------:|\n")
	for _, month := range sortedKeys(rep.Monthly) {
		m := rep.Monthly[month]
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %d | %d |\n",
			month, m.FsWriteLines, m.StrReplaceAdded, m.StrReplaceDeleted,
			m.NetLines, m.ExecutionCount, m.ActiveDays)
	}
	b.WriteString("\n## By Day\n\n")
	b.WriteString("| Date | Written | Added | Deleted | Runs | Created | Modified |\n")
	b.WriteString("|------|--------:|------:|--------:|-----:|--------:|---------:|\n")
	for _, date := range sortedKeys(rep.Daily) {
		d := rep.Daily[date]
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %d | %d |\n",
			date, d.FsWriteLines, d.StrReplaceAdded, d.StrReplaceDeleted,
			d.ExecutionCount, d.FilesCreated, d.FilesModified)
	}

	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}
