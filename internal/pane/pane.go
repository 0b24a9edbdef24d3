package pane

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// DefaultPaneName is the pane the find command writes to
const DefaultPaneName = "Matching Lines"

// clearScreen moves the cursor home and erases the display
const clearScreen = "\x1b[H\x1b[2J"

// Pane is a named text sink that results are printed into
type Pane interface {
	io.StringWriter
	Name() string
	Clear() error
}

// Buffer is an in-memory pane
type Buffer struct {
	name string
	mu   sync.Mutex
	sb   strings.Builder
}

// NewBuffer creates an empty in-memory pane
func NewBuffer(name string) *Buffer {
	return &Buffer{name: name}
}

// Name returns the pane name
func (b *Buffer) Name() string {
	return b.name
}

// WriteString appends s to the pane
func (b *Buffer) WriteString(s string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.WriteString(s)
}

// Clear discards the pane contents
func (b *Buffer) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sb.Reset()
	return nil
}

// String returns everything written since the last Clear
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

// Console is a pane backed by a writer such as stdout
type Console struct {
	name string
	w    io.Writer
	tty  bool
}

// NewConsole creates a pane writing to w. Clearing only has an effect when w is a terminal.
func NewConsole(name string, w io.Writer) *Console {
	c := &Console{name: name, w: w}
	if f, ok := w.(*os.File); ok {
		c.tty = term.IsTerminal(int(f.Fd()))
	}
	return c
}

// Name returns the pane name
func (c *Console) Name() string {
	return c.name
}

// WriteString writes s to the underlying writer
func (c *Console) WriteString(s string) (int, error) {
	return io.WriteString(c.w, s)
}

// Clear erases the terminal. On anything other than a terminal it does nothing.
func (c *Console) Clear() error {
	if !c.tty {
		return nil
	}
	if _, err := io.WriteString(c.w, clearScreen); err != nil {
		return fmt.Errorf("failed to clear pane %q: %w", c.name, err)
	}
	return nil
}

// IsTerminal reports whether the console writes to a terminal
func (c *Console) IsTerminal() bool {
	return c.tty
}

// Width returns the terminal width in cells, or 0 when it is unknown
func (c *Console) Width() int {
	f, ok := c.w.(*os.File)
	if !ok || !c.tty {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
