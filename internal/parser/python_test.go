package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/findgroup/pkg/types"
)

func TestOutlinePython(t *testing.T) {
	src := `import os

class Repo:
    def load(self):
        """Load items.

def not_a_function():
        """
        x = 1

    async def save(self):
        def inner():
            return 2
        return inner()

def main():
    pass
`
	p := New()
	result, err := p.ParseSource("repo.py", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, types.LangPython, result.Language)

	outline := p.Outline("repo.py", result)
	assert.Equal(t, types.NoFunction, outline.FunctionAt(1))
	assert.Equal(t, "Repo.load", outline.FunctionAt(7), "docstring content is not code")
	assert.Equal(t, "Repo.load", outline.FunctionAt(9))
	assert.Equal(t, types.NoFunction, outline.FunctionAt(10))
	assert.Equal(t, "Repo.save.inner", outline.FunctionAt(13))
	assert.Equal(t, "Repo.save", outline.FunctionAt(14))
	assert.Equal(t, "main", outline.FunctionAt(17))

	var save types.Symbol
	for _, sym := range result.Symbols {
		if sym.FullName == "Repo.save" {
			save = sym
		}
	}
	assert.Equal(t, types.KindMethod, save.Kind)
	assert.Equal(t, "Repo", save.Receiver)
	assert.Equal(t, 11, save.Start.Line)
	assert.Equal(t, 14, save.End.Line)
}

func TestIndentWidth(t *testing.T) {
	assert.Equal(t, 0, indentWidth("x"))
	assert.Equal(t, 4, indentWidth("    x"))
	assert.Equal(t, 8, indentWidth("\tx"))
	assert.Equal(t, 8, indentWidth("  \tx"))
}

func TestOutlinePython_ContinuationLines(t *testing.T) {
	src := `class A:
    def m(
        self,
    ):
        hit()

def f():
    x = call(
1)
    hit()

def g():
    y = 1 + \
2
    hit()

def h():
    s = ")" + "(" # (
    hit()
`
	p := New()
	result, err := p.ParseSource("cont.py", []byte(src))
	require.NoError(t, err)

	outline := p.Outline("cont.py", result)
	assert.Equal(t, "A.m", outline.FunctionAt(3))
	assert.Equal(t, "A.m", outline.FunctionAt(5), "dedented closing paren does not end the method")
	assert.Equal(t, "f", outline.FunctionAt(9))
	assert.Equal(t, "f", outline.FunctionAt(10), "bracket continuation at column 0 does not end the function")
	assert.Equal(t, "g", outline.FunctionAt(14))
	assert.Equal(t, "g", outline.FunctionAt(15), "backslash continuation at column 0 does not end the function")
	assert.Equal(t, "h", outline.FunctionAt(19), "brackets inside strings and comments are ignored")
}

func TestScanPyLine(t *testing.T) {
	tests := []struct {
		line      string
		delta     int
		backslash bool
		open      string
	}{
		{line: "x = call(", delta: 1},
		{line: "    ):", delta: -1},
		{line: `s = "(" + '[' # {`, delta: 0},
		{line: `y = 1 + \`, backslash: true},
		{line: `doc = """(`, open: `"""`},
		{line: `doc = '''a''' + f(`, delta: 1},
		{line: `esc = "\"(" + g(`, delta: 1},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			delta, backslash, open := scanPyLine(tt.line)
			assert.Equal(t, tt.delta, delta)
			assert.Equal(t, tt.backslash, backslash)
			assert.Equal(t, tt.open, open)
		})
	}
}
