// Package types provides shared type definitions for findgroup.
//
// This package defines domain types used across the finder, parser, searcher
// and MCP server: matches, function symbols, outlines and parse results.
//
// # Core Types
//
// Match is one line found by a search step, annotated with the function that
// encloses it:
//
//	m := types.Match{
//	    Line:         42,
//	    LineText:     "\treturn cache.Get(key)\n",
//	    FunctionName: "store.Cache.Lookup",
//	}
//
// Lines outside any function carry the reserved NoFunction name ("no function").
//
// Symbol describes a function, method or container span extracted from source.
// Outline holds the function spans of one file, ordered by start line, and
// answers the enclosing-function query:
//
//	outline := types.NewOutline(path, parseResult)
//	name := outline.FunctionAt(42) // innermost function, or types.NoFunction
//
// # Languages
//
// DetectLanguage picks an outlining strategy by file extension: Go files use
// go/ast, C-family files use brace matching and Python files use indentation.
// Every other file still searches normally; its matches all group under
// NoFunction.
package types
