// Package render turns service documentation rows into Markdown documents.
package render

import (
	"fmt"
	"strings"
)

// EmptyTable is rendered in place of a parameter table without data.
const EmptyTable = "| Sin datos |\n|-----------|"

// PipeTable renders a Markdown pipe table: a header row, a "---" separator row
// and one row per entry of rows. Each row ends with a newline.
func PipeTable(headers []string, rows [][]string) string {
	var b strings.Builder
	writeTableRow(&b, headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeTableRow(&b, sep)
	for _, row := range rows {
		writeTableRow(&b, row)
	}
	return b.String()
}

func writeTableRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

// CodeBlock renders body as a fenced code block tagged with lang. The fence
// is longer than any backtick run inside body so the block always closes.
func CodeBlock(lang, body string) string {
	fence := strings.Repeat("`", max(3, longestBacktickRun(body)+1))
	return fence + lang + "\n" + body + "\n" + fence
}

func longestBacktickRun(s string) int {
	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return longest
}

// SizeEstimate formats the byte length of content in kilobytes.
func SizeEstimate(content string) string {
	return fmt.Sprintf("%.2f KB", float64(len(content))/1024)
}

// fileID joins the identifying parts of a document with hyphens.
func fileID(parts ...string) string {
	return strings.Join(parts, "-")
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
