package finder

import (
	"fmt"
	"regexp"

	"github.com/dshills/findgroup/pkg/types"
)

// Options configures a find run. The zero value is not useful; start from DefaultOptions.
type Options struct {
	Pattern   string
	MatchCase bool // case-sensitive comparison
	WholeWord bool // match must not touch word characters on either side
	Regex     bool // Pattern is a regular expression instead of a literal
	Wrap      bool // continue from the top after reaching the end of the document
}

// DefaultOptions returns the settings the find command uses by default:
// case-insensitive literal whole-word search that wraps around.
func DefaultOptions(pattern string) Options {
	return Options{
		Pattern:   pattern,
		MatchCase: false,
		WholeWord: true,
		Regex:     false,
		Wrap:      true,
	}
}

// compile turns the options into a line matcher
func (o Options) compile() (*regexp.Regexp, error) {
	if o.Pattern == "" {
		return nil, types.ErrEmptyPattern
	}

	expr := o.Pattern
	if !o.Regex {
		expr = regexp.QuoteMeta(expr)
	}
	if !o.MatchCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidPattern, err)
	}
	return re, nil
}

// Validate checks that the options describe a usable search
func (o Options) Validate() error {
	_, err := o.compile()
	return err
}
