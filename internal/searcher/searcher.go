package searcher

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/findgroup/internal/collector"
	"github.com/dshills/findgroup/internal/finder"
	"github.com/dshills/findgroup/internal/parser"
	"github.com/dshills/findgroup/pkg/types"
)

// DefaultCacheSize is the number of outlines kept in memory
const DefaultCacheSize = 1000

// ErrNoPaths is returned when a request names nothing to search
var ErrNoPaths = errors.New("at least one path is required")

// Request contains parameters for a search operation
type Request struct {
	Paths         []string       // files and directories, searched in this order
	Find          finder.Options // pattern and matching rules
	IncludeTests  bool           // search test files found while walking directories
	IncludeVendor bool           // descend into vendor directories
	Extensions    []string       // extensions picked up while walking (default: every outlined language)
	Workers       int            // concurrent files (default: runtime.NumCPU())
}

// FileResult is the grouped outcome for one file
type FileResult struct {
	Path      string
	Language  types.Language
	Matches   []types.Match
	Collector *collector.Collector
}

// Statistics describes a search run
type Statistics struct {
	FilesSearched int
	FilesMatched  int
	FilesSkipped  int
	FilesFailed   int
	TotalMatches  int
	CacheHits     int
	Duration      time.Duration
	ErrorMessages []string
}

// Response contains search results and metadata
type Response struct {
	Files      []FileResult
	Statistics Statistics
}

// Option configures a Searcher
type Option func(*Searcher)

// WithCacheSize sets the outline cache capacity
func WithCacheSize(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// WithParser replaces the default outliner
func WithParser(p *parser.Parser) Option {
	return func(s *Searcher) {
		if p != nil {
			s.parser = p
		}
	}
}

// Searcher runs grouped finds over files and directories
type Searcher struct {
	parser    *parser.Parser
	cache     *lru.Cache[[32]byte, *types.Outline]
	cacheSize int
}

// New creates a new Searcher instance
func New(opts ...Option) *Searcher {
	s := &Searcher{
		parser:    parser.New(),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	cache, err := lru.New[[32]byte, *types.Outline](s.cacheSize)
	if err != nil {
		// This should never happen with a positive size
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}
	s.cache = cache

	return s
}

// Search finds the pattern in every requested file. Files that cannot be
// read are reported in Statistics.ErrorMessages and do not fail the run.
func (s *Searcher) Search(ctx context.Context, req Request) (*Response, error) {
	startTime := time.Now()

	if err := s.validateRequest(&req); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	files, skipped, err := discoverFiles(req)
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}

	results := make([]FileResult, len(files))
	failures := make([]error, len(files))
	var cacheHits int32

	semaphore := make(chan struct{}, req.Workers)
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			res, hit, err := s.searchFile(gctx, path, req.Find)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				failures[i] = err
				return nil
			}
			if hit {
				atomic.AddInt32(&cacheHits, 1)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &Response{
		Files: make([]FileResult, 0, len(files)),
		Statistics: Statistics{
			FilesSkipped:  skipped,
			CacheHits:     int(cacheHits),
			ErrorMessages: make([]string, 0),
		},
	}
	for i, res := range results {
		if failures[i] != nil {
			resp.Statistics.FilesFailed++
			resp.Statistics.ErrorMessages = append(resp.Statistics.ErrorMessages,
				fmt.Sprintf("%s: %v", files[i], failures[i]))
			continue
		}
		resp.Statistics.FilesSearched++
		if len(res.Matches) > 0 {
			resp.Statistics.FilesMatched++
			resp.Statistics.TotalMatches += len(res.Matches)
		}
		resp.Files = append(resp.Files, res)
	}

	resp.Statistics.Duration = time.Since(startTime)
	return resp, nil
}

// Outline returns the function spans of a file, from cache when its content is unchanged
func (s *Searcher) Outline(path string) (*types.Outline, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	outline, _, err := s.outline(path, content)
	return outline, err
}

// searchFile runs the find loop over one file
func (s *Searcher) searchFile(ctx context.Context, path string, opts finder.Options) (FileResult, bool, error) {
	doc, content, err := finder.LoadDocument(path)
	if err != nil {
		return FileResult{}, false, err
	}

	outline, hit, err := s.outline(path, content)
	if err != nil {
		return FileResult{}, false, err
	}

	matches, err := finder.FindMatches(ctx, doc, outline, opts)
	if err != nil {
		return FileResult{}, false, err
	}

	c := finder.CollectMatches(matches)

	return FileResult{
		Path:      path,
		Language:  doc.Lang,
		Matches:   matches,
		Collector: c,
	}, hit, nil
}

// outline parses content or returns the cached outline for identical content
// in the same language
func (s *Searcher) outline(path string, content []byte) (*types.Outline, bool, error) {
	key := cacheKey(types.DetectLanguage(path), content)
	if cached, ok := s.cache.Get(key); ok {
		o := *cached
		o.Path = path
		return &o, true, nil
	}

	result, err := s.parser.ParseSource(path, content)
	if err != nil {
		return nil, false, fmt.Errorf("failed to outline file: %w", err)
	}

	outline := s.parser.Outline(path, result)
	s.cache.Add(key, outline)
	return outline, false, nil
}

// validateRequest checks the request and fills in defaults
func (s *Searcher) validateRequest(req *Request) error {
	if len(req.Paths) == 0 {
		return ErrNoPaths
	}
	if err := req.Find.Validate(); err != nil {
		return err
	}
	if req.Workers <= 0 {
		req.Workers = runtime.NumCPU()
	}
	return nil
}

// cacheKey hashes the language and content of a file
func cacheKey(lang types.Language, content []byte) [32]byte {
	h := sha256.New()
	h.Write([]byte(lang))
	h.Write([]byte{0})
	h.Write(content)
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}

// cacheLen reports how many outlines are cached
func (s *Searcher) cacheLen() int {
	return s.cache.Len()
}

