package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/findgroup/internal/searcher"
)

// JSONReport is the document written by the json format
type JSONReport struct {
	Files        []JSONFile `json:"files"`
	TotalMatches int        `json:"total_matches"`
}

// JSONFile holds the groups of one file
type JSONFile struct {
	Path     string      `json:"path"`
	Language string      `json:"language"`
	Groups   []JSONGroup `json:"groups"`
}

// JSONGroup holds the lines of one function
type JSONGroup struct {
	Function string     `json:"function"`
	Lines    []JSONLine `json:"lines"`
}

// JSONLine is one matched line
type JSONLine struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

// BuildJSON converts search results into the json report structure
func BuildJSON(files []searcher.FileResult) JSONReport {
	rep := JSONReport{Files: make([]JSONFile, 0, len(files))}

	for _, f := range files {
		jf := JSONFile{
			Path:     f.Path,
			Language: string(f.Language),
			Groups:   make([]JSONGroup, 0),
		}
		for _, g := range groupMatches(f) {
			jg := JSONGroup{Function: g.Function, Lines: make([]JSONLine, 0, len(g.Matches))}
			for _, m := range g.Matches {
				jg.Lines = append(jg.Lines, JSONLine{Line: m.Line, Column: m.Column, Text: lineText(m)})
			}
			rep.TotalMatches += len(jg.Lines)
			jf.Groups = append(jf.Groups, jg)
		}
		rep.Files = append(rep.Files, jf)
	}

	return rep
}

func writeJSON(w io.StringWriter, files []searcher.FileResult) error {
	data, err := json.MarshalIndent(BuildJSON(files), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = w.WriteString(string(data) + "\n")
	return err
}
