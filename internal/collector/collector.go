package collector

import (
	"io"

	"github.com/dshills/findgroup/pkg/types"
)

// NoResults is written by Render when nothing was recorded
const NoResults = "No Results\n"

// Group is a snapshot of the lines recorded for one function
type Group struct {
	Name  string
	Lines []string
}

// Collector accumulates matched lines grouped by enclosing function name.
// A Collector is built for one search run and is not safe for concurrent use.
type Collector struct {
	groups map[string][]string
	order  []string // keys in first-encounter order
}

// New creates an empty Collector
func New() *Collector {
	return &Collector{
		groups: make(map[string][]string),
	}
}

// Reset clears the table
func (c *Collector) Reset() {
	c.groups = make(map[string][]string)
	c.order = c.order[:0]
}

// Record appends lineText to the group for functionName, creating the group if absent.
// An empty functionName is recorded under types.NoFunction.
func (c *Collector) Record(functionName, lineText string) {
	if functionName == "" {
		functionName = types.NoFunction
	}
	if _, ok := c.groups[functionName]; !ok {
		c.order = append(c.order, functionName)
	}
	c.groups[functionName] = append(c.groups[functionName], lineText)
}

// RecordMatch records a match under its function name
func (c *Collector) RecordMatch(m types.Match) {
	c.Record(m.Function(), m.LineText)
}

// Len returns the number of distinct groups
func (c *Collector) Len() int {
	return len(c.order)
}

// Count returns the total number of recorded lines
func (c *Collector) Count() int {
	n := 0
	for _, lines := range c.groups {
		n += len(lines)
	}
	return n
}

// Lines returns a copy of the lines recorded for name
func (c *Collector) Lines(name string) []string {
	lines := c.groups[name]
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Groups returns the non-empty groups in render order: the NoFunction group
// first, then the others in first-encounter order. The lines are copies.
func (c *Collector) Groups() []Group {
	groups := c.view()
	for i := range groups {
		groups[i].Lines = append([]string(nil), groups[i].Lines...)
	}
	return groups
}

// view lists the groups in render order sharing the table's slices
func (c *Collector) view() []Group {
	groups := make([]Group, 0, len(c.order))
	if lines := c.groups[types.NoFunction]; len(lines) > 0 {
		groups = append(groups, Group{Name: types.NoFunction, Lines: lines})
	}
	for _, name := range c.order {
		if name == types.NoFunction {
			continue
		}
		lines := c.groups[name]
		if len(lines) == 0 {
			continue
		}
		groups = append(groups, Group{Name: name, Lines: lines})
	}
	return groups
}

// Render writes every group as a #region block. An empty table produces NoResults.
// The table is left untouched so Render can be repeated.
func (c *Collector) Render(w io.StringWriter) error {
	if len(c.order) == 0 {
		_, err := w.WriteString(NoResults)
		return err
	}

	for _, g := range c.view() {
		if err := writeRegion(w, g); err != nil {
			return err
		}
	}
	return nil
}

func writeRegion(w io.StringWriter, g Group) error {
	if _, err := w.WriteString("#region " + g.Name + ":\n"); err != nil {
		return err
	}
	for _, line := range g.Lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\n#endregion\n")
	return err
}
