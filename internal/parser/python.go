package parser

import (
	"regexp"
	"strings"

	"github.com/dshills/findgroup/pkg/types"
)

var (
	rePyDef   = regexp.MustCompile(`^(\s*)(?:async\s+)?def\s+([A-Za-z_]\w*)\s*\(`)
	rePyClass = regexp.MustCompile(`^(\s*)class\s+([A-Za-z_]\w*)`)
)

type pyBlock struct {
	indent   int
	sym      types.Symbol
	lastLine int
}

// outlinePython outlines Python sources by indentation. A def or class block
// ends at the last non-blank line before a line indented at or left of its header.
func outlinePython(filePath string, content []byte) *types.ParseResult {
	result := &types.ParseResult{Language: types.LangPython}
	lines := strings.Split(string(content), "\n")

	var (
		stack    []*pyBlock
		inString string // active triple quote delimiter
		depth    int    // open brackets carried across lines
		joined   bool   // previous line ended with a backslash
	)

	closeUntil := func(indent int) {
		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.sym.End = types.Position{Line: top.lastLine, Column: 1}
			result.Symbols = append(result.Symbols, top.sym)
			if len(stack) > 0 && stack[len(stack)-1].lastLine < top.lastLine {
				stack[len(stack)-1].lastLine = top.lastLine
			}
		}
	}

	for i, raw := range lines {
		lineNo := i + 1
		text := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(text)

		if inString != "" {
			markLine(stack, lineNo)
			idx := strings.Index(text, inString)
			if idx < 0 {
				continue
			}
			text = text[idx+len(inString):]
			inString = ""
		} else {
			if trimmed == "" || (strings.HasPrefix(trimmed, "#") && !joined) {
				continue
			}

			// Continuation lines belong to the statement that opened them.
			if depth == 0 && !joined {
				indent := indentWidth(text)
				closeUntil(indent)

				if m := rePyDef.FindStringSubmatch(text); m != nil {
					stack = append(stack, newPyBlock(stack, indent, m[2], lineNo, false))
				} else if m := rePyClass.FindStringSubmatch(text); m != nil {
					stack = append(stack, newPyBlock(stack, indent, m[2], lineNo, true))
				}
			}
			markLine(stack, lineNo)
		}

		delta, backslash, open := scanPyLine(text)
		depth += delta
		if depth < 0 {
			depth = 0
		}
		joined = backslash
		inString = open
	}
	closeUntil(0)

	return result
}

func newPyBlock(parents []*pyBlock, indent int, name string, line int, isClass bool) *pyBlock {
	parts := make([]string, 0, len(parents)+1)
	receiver := ""
	for _, p := range parents {
		parts = append(parts, p.sym.Name)
		if p.sym.Kind == types.KindContainer {
			receiver = p.sym.Name
		} else {
			receiver = ""
		}
	}
	parts = append(parts, name)

	sym := types.Symbol{
		Name:     name,
		FullName: types.JoinName(parts...),
		Start:    types.Position{Line: line, Column: indent + 1},
		Scope:    pyScope(name),
	}
	switch {
	case isClass:
		sym.Kind = types.KindContainer
	case receiver != "":
		sym.Kind = types.KindMethod
		sym.Receiver = receiver
	default:
		sym.Kind = types.KindFunction
	}
	return &pyBlock{indent: indent, sym: sym, lastLine: line}
}

func markLine(stack []*pyBlock, line int) {
	if len(stack) > 0 {
		stack[len(stack)-1].lastLine = line
	}
}

func pyScope(name string) types.SymbolScope {
	if strings.HasPrefix(name, "_") {
		return types.ScopeUnexported
	}
	return types.ScopeExported
}

// indentWidth counts leading whitespace with tabs expanded to 8 columns
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 8 - width%8
		default:
			return width
		}
	}
	return width
}

// scanPyLine walks the code on one physical line, skipping string literals
// and comments. It reports the net bracket change, whether the line ends
// with an explicit continuation, and the delimiter of a triple-quoted
// string left open at the end of the line.
func scanPyLine(line string) (delta int, backslash bool, open string) {
	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case '#':
			return delta, false, ""
		case '(', '[', '{':
			delta++
		case ')', ']', '}':
			delta--
		case '"', '\'':
			quote := line[i : i+1]
			if triple := strings.Repeat(quote, 3); strings.HasPrefix(line[i:], triple) {
				end := strings.Index(line[i+3:], triple)
				if end < 0 {
					return delta, false, triple
				}
				i += 3 + end + 2
				continue
			}
			i = closingQuote(line, i+1, c)
		}
	}
	return delta, strings.HasSuffix(line, `\`), ""
}

// closingQuote returns the index of the quote ending a single-line string
// that starts at from, or the last index when the string is unterminated.
func closingQuote(line string, from int, quote byte) int {
	for j := from; j < len(line); j++ {
		switch line[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}
	return len(line) - 1
}
