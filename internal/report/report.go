package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/findgroup/internal/collector"
	"github.com/dshills/findgroup/internal/searcher"
	"github.com/dshills/findgroup/pkg/types"
)

// Format names an output layout
type Format string

const (
	FormatRegion   Format = "region"   // #region blocks, one per function
	FormatMarkdown Format = "markdown" // headings with fenced code blocks
	FormatJSON     Format = "json"     // machine readable groups
)

// ErrUnknownFormat is returned for a format name that is not supported
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatRegion, FormatMarkdown, FormatJSON}
}

// ParseFormat resolves a format name. The empty name selects FormatRegion.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatRegion, nil
	case FormatRegion, FormatMarkdown, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Options controls rendering
type Options struct {
	Format   Format
	MaxWidth int    // truncate matched lines to this many cells in markdown; 0 keeps them whole
	Pretty   bool   // render markdown for a terminal
	Style    string // glamour style used when Pretty is set (default "dark")
}

// Write renders the search results into w
func Write(w io.StringWriter, files []searcher.FileResult, opts Options) error {
	format := opts.Format
	if format == "" {
		format = FormatRegion
	}

	switch format {
	case FormatRegion:
		return writeRegion(w, files)
	case FormatMarkdown:
		return writeMarkdown(w, files, opts)
	case FormatJSON:
		return writeJSON(w, files)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// writeRegion prints each file's collector. With more than one file every
// file that matched is introduced by a "// path" line.
func writeRegion(w io.StringWriter, files []searcher.FileResult) error {
	if len(files) == 1 {
		return files[0].Collector.Render(w)
	}

	wrote := false
	for _, f := range files {
		if f.Collector == nil || f.Collector.Len() == 0 {
			continue
		}
		if _, err := w.WriteString("// " + f.Path + "\n"); err != nil {
			return err
		}
		if err := f.Collector.Render(w); err != nil {
			return err
		}
		wrote = true
	}

	if !wrote {
		_, err := w.WriteString(collector.NoResults)
		return err
	}
	return nil
}

// matchGroup pairs a function with the matches recorded under it
type matchGroup struct {
	Function string
	Matches  []types.Match
}

// groupMatches buckets matches in the order the collector renders its groups
func groupMatches(f searcher.FileResult) []matchGroup {
	byName := make(map[string][]types.Match)
	for _, m := range f.Matches {
		byName[m.Function()] = append(byName[m.Function()], m)
	}

	var groups []matchGroup
	if f.Collector == nil {
		return groups
	}
	for _, g := range f.Collector.Groups() {
		groups = append(groups, matchGroup{Function: g.Name, Matches: byName[g.Name]})
	}
	return groups
}

// lineText strips the line terminator from a matched line
func lineText(m types.Match) string {
	return strings.TrimRight(m.LineText, "\r\n")
}
