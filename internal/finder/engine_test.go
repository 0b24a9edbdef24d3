package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/findgroup/pkg/types"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("a.go", []byte("one\ntwo\r\nthree"))
	assert.Equal(t, 3, doc.LineCount())
	assert.Equal(t, "one\n", doc.Line(1))
	assert.Equal(t, "two\r\n", doc.Line(2))
	assert.Equal(t, "three", doc.Line(3))
	assert.Equal(t, "", doc.Line(0))
	assert.Equal(t, "", doc.Line(4))
	assert.Equal(t, types.LangGo, doc.Lang)

	assert.Equal(t, 0, NewDocument("empty.txt", nil).LineCount())
	assert.Equal(t, 1, NewDocument("nl.txt", []byte("\n")).LineCount())
}

func TestOptions_Compile(t *testing.T) {
	_, err := Options{}.compile()
	assert.ErrorIs(t, err, types.ErrEmptyPattern)

	opts := DefaultOptions("a(")
	assert.NoError(t, opts.Validate(), "literal patterns are quoted")

	opts.Regex = true
	assert.ErrorIs(t, opts.Validate(), types.ErrInvalidPattern)
}

func execAll(t *testing.T, e *Engine, max int) []Location {
	t.Helper()
	var locs []Location
	for i := 0; i < max; i++ {
		loc, ok := e.Execute()
		if !ok {
			break
		}
		locs = append(locs, loc)
	}
	return locs
}

func TestEngine_OneHitPerLine(t *testing.T) {
	doc := NewDocument("x.txt", []byte("cache cache\nnone\n  cache\n"))
	opts := DefaultOptions("cache")
	opts.Wrap = false

	e, err := NewEngine(doc, opts)
	require.NoError(t, err)

	locs := execAll(t, e, 10)
	assert.Equal(t, []Location{{Line: 1, Column: 1}, {Line: 3, Column: 3}}, locs)
}

func TestEngine_Wraps(t *testing.T) {
	doc := NewDocument("x.txt", []byte("key\nother\nkey\n"))
	e, err := NewEngine(doc, DefaultOptions("key"))
	require.NoError(t, err)

	locs := execAll(t, e, 3)
	require.Len(t, locs, 3)
	assert.Equal(t, 1, locs[0].Line)
	assert.Equal(t, 3, locs[1].Line)
	assert.Equal(t, 1, locs[2].Line, "search wraps to the top")
}

func TestEngine_NoMatchWithWrap(t *testing.T) {
	doc := NewDocument("x.txt", []byte("alpha\nbeta\n"))
	e, err := NewEngine(doc, DefaultOptions("gamma"))
	require.NoError(t, err)

	_, ok := e.Execute()
	assert.False(t, ok)
}

func TestEngine_MatchingRules(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		mutate  func(*Options)
		pattern string
		want    bool
	}{
		{"case insensitive by default", "Cache.Get()", nil, "cache", true},
		{"match case", "Cache.Get()", func(o *Options) { o.MatchCase = true }, "cache", false},
		{"whole word rejects prefix", "caches", nil, "cache", false},
		{"whole word rejects suffix", "mycache", nil, "cache", false},
		{"whole word allows underscore boundary check", "my_cache", nil, "cache", false},
		{"whole word off", "caches", func(o *Options) { o.WholeWord = false }, "cache", true},
		{"second occurrence is whole", "caches cache", nil, "cache", true},
		{"non-word pattern edges", "call f(x)", nil, "f(", true},
		{"literal metacharacters", "a.b", nil, "a.b", true},
		{"literal dot does not match any char", "axb", nil, "a.b", false},
		{"regex", "value42", func(o *Options) { o.Regex = true; o.WholeWord = false }, `\d+`, true},
		{"unicode word boundary", "größe", nil, "gr", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(tt.pattern)
			if tt.mutate != nil {
				tt.mutate(&opts)
			}
			e, err := NewEngine(NewDocument("x.txt", []byte(tt.text+"\n")), opts)
			require.NoError(t, err)

			_, ok := e.Execute()
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestEngine_OverlappingCandidate(t *testing.T) {
	doc := NewDocument("x.txt", []byte("xa-a-a\nb-b\n"))
	e, err := NewEngine(doc, DefaultOptions("a-a"))
	require.NoError(t, err)

	loc, ok := e.Execute()
	require.True(t, ok, "whole-word hit overlapping a rejected one is found")
	assert.Equal(t, Location{Line: 1, Column: 4}, loc)
}

func TestEngine_Reset(t *testing.T) {
	doc := NewDocument("x.txt", []byte("a\na\n"))
	opts := DefaultOptions("a")
	opts.Wrap = false
	e, err := NewEngine(doc, opts)
	require.NoError(t, err)

	assert.Len(t, execAll(t, e, 5), 2)
	e.Reset()
	assert.Len(t, execAll(t, e, 5), 2)
}

func BenchmarkEngine(b *testing.B) {
	content := make([]byte, 0, 64*1024)
	for i := 0; i < 2000; i++ {
		content = append(content, "func handler() { return cache.Get(key) }\n"...)
	}
	doc := NewDocument("bench.go", content)
	opts := DefaultOptions("cache")
	opts.Wrap = false
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, _ := NewEngine(doc, opts)
		for {
			if _, ok := e.Execute(); !ok {
				break
			}
		}
	}
}
