package parser

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/dshills/findgroup/pkg/types"
)

var (
	// namespace Foo.Bar / class Foo / enum class Foo
	reContainer = regexp.MustCompile(`\b(?:namespace|class|struct|interface|enum|record|trait|object|module)\s+(?:class\s+|struct\s+)?([A-Za-z_][\w.]*)`)

	// impl Foo / impl<T> Display for Foo<T>
	reImpl = regexp.MustCompile(`\bimpl\b(?:\s*<[^{}]*?>)?\s+(?:[\w:]+(?:<[^{}]*?>)?\s+for\s+)?([A-Za-z_]\w*)`)

	// name( or Type::name( or name<T>(
	reCallable = regexp.MustCompile(`([A-Za-z_$~][\w$]*(?:::~?[A-Za-z_$][\w$]*)*)\s*(?:<[^(){};]*>)?\s*\(`)

	// @Annotation(args) and [Attribute] prefixes
	reAnnotation = regexp.MustCompile(`@[\w.]+(?:\s*\([^()]*\))?`)
	reAttribute  = regexp.MustCompile(`^\s*(?:\[[^\]]*\]\s*)+`)

	notFunctionNames = map[string]bool{
		"if": true, "for": true, "foreach": true, "while": true, "switch": true,
		"catch": true, "using": true, "lock": true, "fixed": true, "return": true,
		"sizeof": true, "typeof": true, "nameof": true, "new": true, "else": true,
		"do": true, "try": true, "synchronized": true, "when": true, "function": true,
		"match": true, "loop": true, "unsafe": true, "checked": true, "unchecked": true,
		"defer": true, "guard": true,
	}

	// a callable preceded by one of these is an expression, not a declaration
	expressionWords = map[string]bool{
		"new": true, "return": true, "throw": true, "await": true, "yield": true, "else": true,
	}
)

type scopeKind int

const (
	scopeBlock scopeKind = iota
	scopeContainer
	scopeFunction
)

type braceScope struct {
	kind      scopeKind
	name      string
	qualifier string // Type:: prefix written on the function itself
	startLine int
	startCol  int
}

// outlineBraces outlines C-family sources by matching braces. Function and
// container headers are recognised from the code between the previous
// statement boundary and each opening brace.
func outlineBraces(filePath string, content []byte) *types.ParseResult {
	result := &types.ParseResult{Language: types.LangBrace}
	clean := stripCommentsAndStrings(string(content), singleQuoteStrings(filePath))
	lines := newLineIndex(clean)

	var (
		stack    []braceScope
		boundary int
	)

	for i := 0; i < len(clean); i++ {
		switch clean[i] {
		case ';':
			boundary = i + 1
		case '{':
			header := clean[boundary:i]
			scope, at := classifyHeader(header, parentKind(stack))
			offset := boundary + at + leadingSpace(header[at:])
			scope.startLine, scope.startCol = lines.position(offset)
			stack = append(stack, scope)
			boundary = i + 1
		case '}':
			boundary = i + 1
			if len(stack) == 0 {
				line, col := lines.position(i)
				result.AddError(filePath, line, col, "unbalanced closing brace")
				continue
			}
			scope := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if scope.kind == scopeBlock {
				continue
			}
			endLine, endCol := lines.position(i)
			result.Symbols = append(result.Symbols, scopeSymbol(scope, stack, endLine, endCol+1))
		}
	}

	if len(stack) > 0 {
		result.AddError(filePath, lines.count(), 0, "unclosed brace at end of file")
		// close what is still open at end of file so matches inside still resolve
		endLine := lines.count()
		for len(stack) > 0 {
			scope := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if scope.kind != scopeBlock {
				result.Symbols = append(result.Symbols, scopeSymbol(scope, stack, endLine, 1))
			}
		}
	}

	sort.SliceStable(result.Symbols, func(i, j int) bool {
		return result.Symbols[i].Start.Line < result.Symbols[j].Start.Line
	})
	return result
}

func parentKind(stack []braceScope) scopeKind {
	if len(stack) == 0 {
		return scopeContainer // file level behaves like a container body
	}
	return stack[len(stack)-1].kind
}

// scopeSymbol converts a closed scope into a symbol qualified by its named parents
func scopeSymbol(scope braceScope, parents []braceScope, endLine, endCol int) types.Symbol {
	var parts []string
	receiver := ""
	for _, p := range parents {
		if p.kind == scopeBlock || p.name == "" {
			continue
		}
		parts = append(parts, p.qualifiedName())
		if p.kind == scopeContainer {
			receiver = lastPart(p.name)
		}
	}
	if scope.qualifier != "" {
		receiver = lastPart(scope.qualifier)
	}
	parts = append(parts, scope.qualifiedName())

	sym := types.Symbol{
		Name:     scope.name,
		FullName: types.JoinName(parts...),
		Scope:    types.ScopeUnknown,
		Start:    types.Position{Line: scope.startLine, Column: scope.startCol},
		End:      types.Position{Line: endLine, Column: endCol},
	}
	switch {
	case scope.kind == scopeContainer:
		sym.Kind = types.KindContainer
	case receiver != "":
		sym.Kind = types.KindMethod
		sym.Receiver = receiver
	default:
		sym.Kind = types.KindFunction
	}
	return sym
}

func (s braceScope) qualifiedName() string {
	return types.JoinName(s.qualifier, s.name)
}

// classifyHeader decides what an opening brace opens. Languages without
// statement terminators leave earlier statements in the header, so when the
// whole header is not recognised each later line is tried on its own. The
// returned offset is where the recognised header starts.
func classifyHeader(header string, parent scopeKind) (braceScope, int) {
	if scope := classifyText(header, parent); scope.kind != scopeBlock {
		return scope, 0
	}
	for i := 0; i < len(header); i++ {
		if header[i] != '\n' {
			continue
		}
		if scope := classifyText(header[i+1:], parent); scope.kind != scopeBlock {
			return scope, i + 1
		}
	}
	return braceScope{kind: scopeBlock}, 0
}

func classifyText(header string, parent scopeKind) braceScope {
	h := reAttribute.ReplaceAllString(header, " ")
	h = reAnnotation.ReplaceAllString(h, " ")
	h = strings.Join(strings.Fields(h), " ")
	if h == "" {
		return braceScope{kind: scopeBlock}
	}

	firstParen := strings.IndexByte(h, '(')
	if m := reContainer.FindStringSubmatchIndex(h); m != nil && (firstParen < 0 || m[0] < firstParen) {
		return braceScope{kind: scopeContainer, name: h[m[2]:m[3]]}
	}
	if m := reImpl.FindStringSubmatch(h); m != nil {
		return braceScope{kind: scopeContainer, name: m[1]}
	}

	if scope, ok := classifyFunction(h, parent); ok {
		return scope
	}
	return braceScope{kind: scopeBlock}
}

func classifyFunction(h string, parent scopeKind) (braceScope, bool) {
	m := reCallable.FindStringSubmatchIndex(h)
	if m == nil {
		return braceScope{}, false
	}
	name := h[m[2]:m[3]]
	if notFunctionNames[name] {
		return braceScope{}, false
	}

	// parameter list must close inside the header
	if !balancedFrom(h, m[1]-1) {
		return braceScope{}, false
	}

	before := strings.TrimSpace(h[:m[0]])
	if strings.ContainsAny(before, "=(,") || strings.HasSuffix(before, ".") {
		return braceScope{}, false
	}
	if fields := strings.Fields(before); len(fields) > 0 && expressionWords[fields[len(fields)-1]] {
		return braceScope{}, false
	}
	if strings.HasSuffix(strings.TrimSpace(h), "=>") {
		return braceScope{}, false
	}
	// bare calls with trailing blocks only count at container level
	if before == "" && parent == scopeFunction {
		return braceScope{}, false
	}
	if before == "" && parent == scopeBlock {
		return braceScope{}, false
	}

	qualifier := ""
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		qualifier = strings.ReplaceAll(name[:idx], "::", ".")
		name = name[idx+2:]
	}
	if name == "" {
		return braceScope{}, false
	}
	return braceScope{kind: scopeFunction, name: name, qualifier: qualifier}, true
}

// balancedFrom reports whether the parenthesis at open is closed later in s
func balancedFrom(s string, open int) bool {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

func lastPart(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t\r\n"))
}

// singleQuoteStrings reports whether ' opens a string rather than a char literal
func singleQuoteStrings(filePath string) bool {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".js", ".jsx", ".ts", ".tsx", ".php":
		return true
	}
	return false
}

// charLiteralEnd returns the index of the closing quote of a char literal
// starting at open, or -1 when the quote is something else (a Rust lifetime).
func charLiteralEnd(s []byte, open int) int {
	if open+1 < len(s) && s[open+1] == '\\' {
		for j := open + 2; j < len(s) && j <= open+10; j++ {
			if s[j] == '\'' {
				return j
			}
			if s[j] == '\n' {
				return -1
			}
		}
		return -1
	}
	if open+2 < len(s) && s[open+2] == '\'' && s[open+1] != '\n' {
		return open + 2
	}
	return -1
}

// stripCommentsAndStrings blanks comments, string and char literals and
// preprocessor lines while keeping every newline, so offsets map to the
// source lines.
func stripCommentsAndStrings(src string, singleQuoted bool) string {
	out := []byte(src)
	const (
		stCode = iota
		stLineComment
		stBlockComment
		stString
	)
	state := stCode
	var quote byte
	lineStart := true

	for i := 0; i < len(out); i++ {
		c := out[i]
		switch state {
		case stCode:
			switch {
			case c == '\n':
				lineStart = true
				continue
			case c == ' ' || c == '\t' || c == '\r':
				continue
			case c == '#' && lineStart:
				state = stLineComment
				out[i] = ' '
			case c == '/' && i+1 < len(out) && out[i+1] == '/':
				state = stLineComment
				out[i] = ' '
			case c == '/' && i+1 < len(out) && out[i+1] == '*':
				state = stBlockComment
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '\'' && !singleQuoted:
				if end := charLiteralEnd(out, i); end > 0 {
					for j := i; j <= end; j++ {
						out[j] = ' '
					}
					i = end
				}
			case c == '"' || c == '\'' || c == '`':
				state = stString
				quote = c
				out[i] = ' '
			}
			lineStart = false
		case stLineComment:
			if c == '\n' {
				state = stCode
				lineStart = true
				continue
			}
			out[i] = ' '
		case stBlockComment:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				state = stCode
				continue
			}
			if c != '\n' {
				out[i] = ' '
			}
		case stString:
			switch {
			case c == '\\' && i+1 < len(out):
				out[i] = ' '
				if out[i+1] != '\n' {
					out[i+1] = ' '
				}
				i++
			case c == quote:
				out[i] = ' '
				state = stCode
			case c == '\n' && quote != '`':
				// unterminated literal; resume code on the next line
				state = stCode
				lineStart = true
			case c != '\n':
				out[i] = ' '
			}
		}
	}
	return string(out)
}

// lineIndex maps byte offsets to 1-based line and column numbers
type lineIndex struct {
	starts []int
}

func newLineIndex(s string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (li *lineIndex) position(offset int) (line, col int) {
	idx := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	if idx < 0 {
		idx = 0
	}
	return idx + 1, offset - li.starts[idx] + 1
}

func (li *lineIndex) count() int {
	return len(li.starts)
}
