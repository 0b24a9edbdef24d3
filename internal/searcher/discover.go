package searcher

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/findgroup/pkg/types"
)

// sniffLen is how much of a file is inspected to decide whether it is binary
const sniffLen = 8000

// discoverFiles expands the request paths into the files to search. Files
// named directly are always searched; files found while walking a directory
// are filtered by extension, test and vendor rules, and binary files are
// skipped.
func discoverFiles(req Request) ([]string, int, error) {
	exts := extensionSet(req.Extensions)
	seen := make(map[string]bool)
	var (
		files   []string
		skipped int
	)

	add := func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, root := range req.Paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, 0, err
		}
		if !info.IsDir() {
			add(filepath.Clean(root))
			continue
		}

		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path == root {
					return nil
				}
				// Skip vendor unless explicitly included
				if !req.IncludeVendor && info.Name() == "vendor" {
					return filepath.SkipDir
				}
				// Skip hidden directories
				if strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}
			if !exts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			if !req.IncludeTests && isTestFile(path) {
				skipped++
				return nil
			}
			if isBinary(path) {
				skipped++
				return nil
			}

			add(path)
			return nil
		})
		if err != nil {
			return nil, 0, err
		}
	}

	return files, skipped, nil
}

func extensionSet(exts []string) map[string]bool {
	if len(exts) == 0 {
		exts = types.SupportedExtensions()
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

// isTestFile recognises the test file conventions of the outlined languages
func isTestFile(path string) bool {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	lower := strings.ToLower(stem)

	switch strings.ToLower(filepath.Ext(base)) {
	case ".go":
		return strings.HasSuffix(lower, "_test")
	case ".py":
		return strings.HasPrefix(lower, "test_") || strings.HasSuffix(lower, "_test")
	}
	return strings.HasSuffix(lower, ".test") || strings.HasSuffix(lower, ".spec") ||
		strings.HasSuffix(lower, "_test") ||
		strings.HasSuffix(stem, "Test") || strings.HasSuffix(stem, "Tests")
}

// isBinary reports whether the head of the file contains a NUL byte
func isBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}
