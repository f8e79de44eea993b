package parser

import (
	"regexp"
	"strings"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

const (
	tableSeparator = "----"
	missingCell    = "N/A"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	columnGap     = regexp.MustCompile(`\s{2,}`)
)

// ParseTextTable parses a whitespace-aligned text table such as the output of
// a database console:
//
//	NAME      TYPE      REQUIRED
//	--------  --------  --------
//	p_id      NUMBER    S
//
// The first line containing "----" separates the header from the body. The
// header is the line right before it, split on whitespace; body lines are
// split on runs of two or more spaces and empty cells become "N/A".
// ok is false when the text has no separator or no header line, in which case
// callers should use the text as is.
func ParseTextTable(text string) (table models.TextTable, ok bool) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	sep := -1
	for i, line := range lines {
		if strings.Contains(line, tableSeparator) {
			sep = i
			break
		}
	}
	if sep < 1 {
		return models.TextTable{}, false
	}

	for _, h := range whitespaceRun.Split(strings.TrimSpace(lines[sep-1]), -1) {
		if h != "" {
			table.Headers = append(table.Headers, h)
		}
	}

	for _, line := range lines[sep+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		values := columnGap.Split(line, -1)
		for i, v := range values {
			if v = strings.TrimSpace(v); v == "" {
				v = missingCell
			}
			values[i] = v
		}
		table.Rows = append(table.Rows, values)
	}
	return table, true
}
