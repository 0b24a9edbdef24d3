// Package searcher runs grouped finds across many files at once.
//
// A Request names files and directories. Directories are walked the usual
// way for source trees: hidden directories are skipped, vendor is skipped
// unless IncludeVendor is set, test files are dropped unless IncludeTests is
// set and only extensions with an outliner are picked up. Files named
// directly are always searched.
//
// # Basic Usage
//
//	s := searcher.New()
//
//	resp, err := s.Search(ctx, searcher.Request{
//	    Paths:        []string{"./internal"},
//	    Find:         finder.DefaultOptions("cache"),
//	    IncludeTests: true,
//	})
//	if err != nil {
//	    return err
//	}
//
//	for _, file := range resp.Files {
//	    fmt.Printf("// %s\n", file.Path)
//	    _ = file.Collector.Render(out)
//	}
//
// # Concurrency
//
// Files are searched by a bounded pool of goroutines (Request.Workers,
// default runtime.NumCPU()) coordinated with errgroup. Each file gets its
// own collector.Collector, and Response.Files keeps the order in which the
// files were discovered regardless of completion order.
//
// # Caching
//
// Outlines are cached in an LRU keyed by the SHA-256 of the file language
// and content, so repeated searches over an unchanged tree parse each file
// once. The cache holds DefaultCacheSize entries unless WithCacheSize says
// otherwise.
//
// # Errors
//
// Invalid requests (no paths, empty or malformed pattern) and paths that do
// not exist fail the whole search. A file that cannot be read once the
// search is running is counted in Statistics.FilesFailed and described in
// Statistics.ErrorMessages; the other files are still searched.
package searcher
