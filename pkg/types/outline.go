package types

import "sort"

// Outline is the set of function spans of one file, ordered by start line
type Outline struct {
	Path      string
	Language  Language
	Functions []Symbol
}

// NewOutline builds an outline from the function symbols of a parse result
func NewOutline(path string, result *ParseResult) *Outline {
	o := &Outline{Path: path, Language: LangUnknown}
	if result == nil {
		return o
	}
	o.Language = result.Language
	o.Functions = result.Functions()
	sort.SliceStable(o.Functions, func(i, j int) bool {
		if o.Functions[i].Start.Line == o.Functions[j].Start.Line {
			return o.Functions[i].End.Line > o.Functions[j].End.Line
		}
		return o.Functions[i].Start.Line < o.Functions[j].Start.Line
	})
	return o
}

// FunctionAt returns the full name of the innermost function containing line,
// or NoFunction
func (o *Outline) FunctionAt(line int) string {
	if o == nil {
		return NoFunction
	}
	best := -1
	for i := range o.Functions {
		fn := &o.Functions[i]
		if fn.Start.Line > line {
			break
		}
		if !fn.Contains(line) {
			continue
		}
		// later starts are nested deeper
		best = i
	}
	if best < 0 {
		return NoFunction
	}
	return o.Functions[best].QualifiedName()
}
