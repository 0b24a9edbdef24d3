package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/findgroup/internal/collector"
	"github.com/dshills/findgroup/internal/searcher"
	"github.com/dshills/findgroup/pkg/types"
)

func fileResult(path string, matches ...types.Match) searcher.FileResult {
	c := collector.New()
	for _, m := range matches {
		c.RecordMatch(m)
	}
	return searcher.FileResult{
		Path:      path,
		Language:  types.DetectLanguage(path),
		Matches:   matches,
		Collector: c,
	}
}

func sampleFile() searcher.FileResult {
	return fileResult("store.go",
		types.Match{Line: 3, Column: 5, LineText: "var cache = 1\n", FunctionName: types.NoFunction},
		types.Match{Line: 6, Column: 9, LineText: "\treturn cache\n", FunctionName: "store.Get"},
		types.Match{Line: 9, Column: 2, LineText: "\tcache = v\r\n", FunctionName: "store.Put"},
		types.Match{Line: 10, Column: 2, LineText: "\tcache++\n", FunctionName: "store.Get"},
	)
}

func write(t *testing.T, files []searcher.FileResult, opts Options) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Write(&sb, files, opts))
	return sb.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatRegion, false},
		{"region", FormatRegion, false},
		{" Markdown ", FormatMarkdown, false},
		{"JSON", FormatJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Len(t, Formats(), 3)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, nil, Options{Format: "xml"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, sb.String())
}

func TestRegion_SingleFile(t *testing.T) {
	f := sampleFile()
	var want strings.Builder
	require.NoError(t, f.Collector.Render(&want))

	assert.Equal(t, want.String(), write(t, []searcher.FileResult{f}, Options{}))
}

func TestRegion_SingleFileNoResults(t *testing.T) {
	got := write(t, []searcher.FileResult{fileResult("empty.go")}, Options{Format: FormatRegion})
	assert.Equal(t, collector.NoResults, got)
}

func TestRegion_MultipleFiles(t *testing.T) {
	a := fileResult("a.go", types.Match{Line: 1, LineText: "x\n", FunctionName: "a.F"})
	empty := fileResult("b.go")
	c := fileResult("c.txt", types.Match{Line: 2, LineText: "y\n"})

	got := write(t, []searcher.FileResult{a, empty, c}, Options{Format: FormatRegion})
	want := "// a.go\n#region a.F:\nx\n\n#endregion\n" +
		"// c.txt\n#region no function:\ny\n\n#endregion\n"
	assert.Equal(t, want, got)
}

func TestRegion_NoFiles(t *testing.T) {
	assert.Equal(t, collector.NoResults, write(t, nil, Options{}))
	assert.Equal(t, collector.NoResults, write(t, []searcher.FileResult{fileResult("a.go"), fileResult("b.go")}, Options{}))
}

func TestMarkdown(t *testing.T) {
	got := write(t, []searcher.FileResult{sampleFile()}, Options{Format: FormatMarkdown})
	want := "## no function\n\n```go\n3: var cache = 1\n```\n\n" +
		"## store.Get\n\n```go\n6: \treturn cache\n10: \tcache++\n```\n\n" +
		"## store.Put\n\n```go\n9: \tcache = v\n```\n\n"
	assert.Equal(t, want, got)
}

func TestMarkdown_MultipleFilesAndWidth(t *testing.T) {
	a := fileResult("a.py", types.Match{Line: 12, LineText: "value = compute_something_long()\n", FunctionName: "run"})
	b := fileResult("b.md", types.Match{Line: 1, LineText: "表示幅のテスト\n"})

	got := write(t, []searcher.FileResult{a, b}, Options{Format: FormatMarkdown, MaxWidth: 12})
	assert.Contains(t, got, "# a.py\n\n## run\n\n```py\n12: value =…\n```")
	assert.Contains(t, got, "# b.md\n\n## no function\n\n```md\n1: 表示幅の…\n```")
}

func TestMarkdown_NoResults(t *testing.T) {
	assert.Equal(t, collector.NoResults, write(t, []searcher.FileResult{fileResult("a.go")}, Options{Format: FormatMarkdown}))
}

func TestMarkdown_Pretty(t *testing.T) {
	got := write(t, []searcher.FileResult{sampleFile()}, Options{Format: FormatMarkdown, Pretty: true, Style: "notty"})
	assert.Contains(t, got, "store.Get")
	assert.Contains(t, got, "return cache")
}

func TestJSON(t *testing.T) {
	got := write(t, []searcher.FileResult{sampleFile(), fileResult("empty.go")}, Options{Format: FormatJSON})

	var rep JSONReport
	require.NoError(t, json.Unmarshal([]byte(got), &rep))

	assert.Equal(t, 4, rep.TotalMatches)
	require.Len(t, rep.Files, 2)
	assert.Equal(t, "go", rep.Files[0].Language)

	groups := rep.Files[0].Groups
	require.Len(t, groups, 3)
	assert.Equal(t, types.NoFunction, groups[0].Function)
	assert.Equal(t, "store.Get", groups[1].Function)
	assert.Equal(t, []JSONLine{{Line: 6, Column: 9, Text: "\treturn cache"}, {Line: 10, Column: 2, Text: "\tcache++"}}, groups[1].Lines)
	assert.Equal(t, "\tcache = v", groups[2].Lines[0].Text)

	assert.Empty(t, rep.Files[1].Groups)
	assert.Contains(t, got, `"groups": []`)
}

func TestFenceLanguage(t *testing.T) {
	assert.Equal(t, "go", fenceLanguage("dir/a.go"))
	assert.Equal(t, "text", fenceLanguage("dir.v2/Makefile"))
	assert.Equal(t, "text", fenceLanguage("trailing."))
}
