package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/findgroup/internal/collector"
	"github.com/dshills/findgroup/internal/searcher"
)

const ellipsis = "…"

// writeMarkdown prints one heading per function with its lines in a fenced block
func writeMarkdown(w io.StringWriter, files []searcher.FileResult, opts Options) error {
	md := renderMarkdown(files, opts.MaxWidth)

	if opts.Pretty {
		style := opts.Style
		if style == "" {
			style = "dark"
		}
		rendered, err := glamour.Render(md, style)
		if err == nil {
			md = rendered
		}
	}

	_, err := w.WriteString(md)
	return err
}

func renderMarkdown(files []searcher.FileResult, maxWidth int) string {
	var sb strings.Builder
	multi := len(files) > 1

	for _, f := range files {
		groups := groupMatches(f)
		if len(groups) == 0 {
			continue
		}
		if multi {
			fmt.Fprintf(&sb, "# %s\n\n", f.Path)
		}
		for _, g := range groups {
			fmt.Fprintf(&sb, "## %s\n\n```%s\n", g.Function, fenceLanguage(f.Path))
			for _, m := range g.Matches {
				line := fmt.Sprintf("%d: %s", m.Line, lineText(m))
				if maxWidth > 0 {
					line = runewidth.Truncate(line, maxWidth, ellipsis)
				}
				sb.WriteString(line)
				sb.WriteString("\n")
			}
			sb.WriteString("```\n\n")
		}
	}

	if sb.Len() == 0 {
		return collector.NoResults
	}
	return sb.String()
}

// fenceLanguage picks the info string of a fenced code block from the file extension
func fenceLanguage(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 && i < len(path)-1 && !strings.ContainsAny(path[i:], `/\`) {
		return strings.ToLower(path[i+1:])
	}
	return "text"
}
