package finder

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/findgroup/pkg/types"
)

// Document is a text buffer split into lines. Each line keeps its terminator.
type Document struct {
	Path  string
	Lang  types.Language
	lines []string
}

// NewDocument splits content into lines
func NewDocument(path string, content []byte) *Document {
	lines := strings.SplitAfter(string(content), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &Document{
		Path:  path,
		Lang:  types.DetectLanguage(path),
		lines: lines,
	}
}

// LoadDocument reads a file from disk and returns the document with its raw content
func LoadDocument(path string) (*Document, []byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}
	return NewDocument(path, content), content, nil
}

// LineCount returns the number of lines
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the 1-based line n including its terminator, or "" when out of range
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}
