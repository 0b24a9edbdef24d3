package finder

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Location is the position of a match
type Location struct {
	Line   int
	Column int
}

// Engine finds successive matches in a document the way an editor's
// "find next" does: each hit moves the caret to the start of the following
// line, and with Wrap enabled the search continues from the top.
type Engine struct {
	doc   *Document
	opts  Options
	re    *regexp.Regexp
	caret int // 0-based index of the line the next search starts on
}

// NewEngine creates an engine positioned at the start of the document
func NewEngine(doc *Document, opts Options) (*Engine, error) {
	re, err := opts.compile()
	if err != nil {
		return nil, err
	}
	return &Engine{doc: doc, opts: opts, re: re}, nil
}

// Reset moves the caret back to the start of the document
func (e *Engine) Reset() {
	e.caret = 0
}

// Execute finds the next match. It reports false when the document holds no
// match in the searched range.
func (e *Engine) Execute() (Location, bool) {
	n := e.doc.LineCount()
	for i := e.caret; i < n; i++ {
		if col, ok := e.matchLine(i); ok {
			e.caret = i + 1
			return Location{Line: i + 1, Column: col}, true
		}
	}
	if !e.opts.Wrap {
		e.caret = n
		return Location{}, false
	}
	for i := 0; i < e.caret && i < n; i++ {
		if col, ok := e.matchLine(i); ok {
			e.caret = i + 1
			return Location{Line: i + 1, Column: col}, true
		}
	}
	return Location{}, false
}

// matchLine returns the 1-based byte column of the first acceptable match on
// line index i. A rejected candidate resumes the search one rune past its
// start, so a whole-word hit overlapping a rejected one is still found.
func (e *Engine) matchLine(i int) (int, bool) {
	text := strings.TrimRight(e.doc.lines[i], "\r\n")
	for off := 0; off <= len(text); {
		loc := e.re.FindStringIndex(text[off:])
		if loc == nil {
			return 0, false
		}
		start, end := off+loc[0], off+loc[1]
		if start < end && (!e.opts.WholeWord || isWholeWord(text, start, end)) {
			return start + 1, true
		}
		if start == len(text) {
			break
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		off = start + size
	}
	return 0, false
}

// isWholeWord reports whether text[start:end] is not glued to word characters
func isWholeWord(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		first, _ := utf8.DecodeRuneInString(text[start:])
		if isWordRune(r) && isWordRune(first) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		last, _ := utf8.DecodeLastRuneInString(text[:end])
		if isWordRune(r) && isWordRune(last) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
