package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipeTable(t *testing.T) {
	got := PipeTable([]string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}})
	assert.Equal(t, "| A | B |\n| --- | --- |\n| 1 | 2 |\n| 3 | 4 |\n", got)
}

func TestCodeBlock(t *testing.T) {
	assert.Equal(t, "```sql\nSELECT 1\n```", CodeBlock("sql", "SELECT 1"))

	// Embedded fences must not close the block early.
	got := CodeBlock("json", "a ``` b")
	assert.True(t, strings.HasPrefix(got, "````json\n"))
	assert.True(t, strings.HasSuffix(got, "\n````"))
}

func TestSizeEstimate(t *testing.T) {
	tests := []struct {
		content  string
		expected string
	}{
		{"", "0.00 KB"},
		{strings.Repeat("x", 1024), "1.00 KB"},
		{strings.Repeat("x", 1536), "1.50 KB"},
		{"ñ", "0.00 KB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SizeEstimate(tt.content))
	}
}
