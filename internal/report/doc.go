// Package report renders search results into a pane.
//
// The region format is the native one: it is exactly what
// collector.Collector.Render prints, with a "// path" line in front of each
// file when several files were searched. Markdown and JSON are derived from
// the same grouping and add line numbers.
package report
