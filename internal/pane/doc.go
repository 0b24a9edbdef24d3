// Package pane provides the named output sinks that grouped results are
// printed into.
//
// A Pane is anything that accepts strings and can be cleared. Buffer keeps
// text in memory and is what the MCP server reads back; Console writes
// straight to stdout and only clears the screen when stdout is a terminal.
//
// Registry looks panes up by name and creates them on first use, so callers
// can ask for "Matching Lines" without knowing whether it already exists:
//
//	reg := pane.NewRegistry(nil)
//	out := reg.Get(pane.DefaultPaneName)
//	_ = out.Clear()
//	_ = c.Render(out)
package pane
