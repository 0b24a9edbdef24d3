package finder

import (
	"context"

	"github.com/dshills/findgroup/internal/collector"
	"github.com/dshills/findgroup/pkg/types"
)

// Source yields successive matches. It reports false once there are no more.
type Source interface {
	Next(ctx context.Context) (types.Match, bool, error)
}

// FunctionResolver names the function enclosing a 1-based line
type FunctionResolver interface {
	FunctionAt(line int) string
}

// DocumentSource drives an Engine over a document and annotates each hit
// with its enclosing function
type DocumentSource struct {
	doc      *Document
	engine   *Engine
	resolver FunctionResolver
}

// NewDocumentSource creates a source positioned at the start of doc. A nil
// resolver puts every match under types.NoFunction.
func NewDocumentSource(doc *Document, resolver FunctionResolver, opts Options) (*DocumentSource, error) {
	engine, err := NewEngine(doc, opts)
	if err != nil {
		return nil, err
	}
	return &DocumentSource{doc: doc, engine: engine, resolver: resolver}, nil
}

// Next runs one find step
func (s *DocumentSource) Next(ctx context.Context) (types.Match, bool, error) {
	if err := ctx.Err(); err != nil {
		return types.Match{}, false, err
	}

	loc, ok := s.engine.Execute()
	if !ok {
		return types.Match{}, false, nil
	}

	fn := types.NoFunction
	if s.resolver != nil {
		fn = s.resolver.FunctionAt(loc.Line)
	}

	return types.Match{
		Line:         loc.Line,
		Column:       loc.Column,
		LineText:     s.doc.Line(loc.Line),
		FunctionName: fn,
	}, true, nil
}

// Matches pulls matches from src until it is exhausted or a match does not
// land after the previously accepted line, which is how a wrapped-around
// search shows it has come full circle.
func Matches(ctx context.Context, src Source) ([]types.Match, error) {
	var matches []types.Match
	lastLine := 0

	for {
		m, ok, err := src.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok || m.Line <= lastLine {
			break
		}
		matches = append(matches, m)
		lastLine = m.Line
	}

	return matches, nil
}

// Collect runs the search loop over src and groups the accepted matches
// into a new Collector
func Collect(ctx context.Context, src Source) (*collector.Collector, error) {
	matches, err := Matches(ctx, src)
	if err != nil {
		return nil, err
	}
	return CollectMatches(matches), nil
}

// CollectMatches groups already accepted matches into a new Collector
func CollectMatches(matches []types.Match) *collector.Collector {
	c := collector.New()
	for _, m := range matches {
		c.RecordMatch(m)
	}
	return c
}

// FindMatches searches doc and returns every matching line annotated with its enclosing function
func FindMatches(ctx context.Context, doc *Document, resolver FunctionResolver, opts Options) ([]types.Match, error) {
	src, err := NewDocumentSource(doc, resolver, opts)
	if err != nil {
		return nil, err
	}
	return Matches(ctx, src)
}

// FindGrouped searches doc and groups every matching line by enclosing function
func FindGrouped(ctx context.Context, doc *Document, resolver FunctionResolver, opts Options) (*collector.Collector, error) {
	src, err := NewDocumentSource(doc, resolver, opts)
	if err != nil {
		return nil, err
	}
	return Collect(ctx, src)
}
