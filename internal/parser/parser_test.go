package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/findgroup/pkg/types"
)

func TestNew(t *testing.T) {
	p := New()
	assert.NotNil(t, p)
}

func TestParseSource_RepeatedCallsAreIndependent(t *testing.T) {
	first := "package a\n\nfunc One() {\n\tx()\n}\n"
	second := "package b\n\n\n\n\nfunc Two() {\n}\n"

	p := New()
	for i := 0; i < 3; i++ {
		r1, err := p.ParseSource("a.go", []byte(first))
		require.NoError(t, err)
		one := findSymbol(t, r1, "a.One")
		assert.Equal(t, types.Position{Line: 3, Column: 1}, one.Start)
		assert.Equal(t, 5, one.End.Line)

		r2, err := p.ParseSource("a.go", []byte(second))
		require.NoError(t, err)
		two := findSymbol(t, r2, "b.Two")
		assert.Equal(t, types.Position{Line: 6, Column: 1}, two.Start)
		assert.Equal(t, 7, two.End.Line)
	}
}

func findSymbol(t *testing.T, result *types.ParseResult, fullName string) types.Symbol {
	t.Helper()
	for _, sym := range result.Symbols {
		if sym.FullName == fullName {
			return sym
		}
	}
	t.Fatalf("symbol %q not found in %+v", fullName, result.Symbols)
	return types.Symbol{}
}

func TestParseFile_ValidGoFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.go")

	content := `package testpkg

import "strings"

// User represents a user in the system
type User struct {
	Name string
}

// GetName returns the user's name
func (u *User) GetName() string {
	return strings.TrimSpace(u.Name)
}

// NewUser creates a new user
func NewUser(name string) *User {
	clean := func(s string) string {
		return strings.ToLower(s)
	}
	return &User{Name: clean(name)}
}
`

	err := os.WriteFile(testFile, []byte(content), 0644)
	require.NoError(t, err)

	p := New()
	result, err := p.ParseFile(testFile)

	require.NoError(t, err)
	assert.Equal(t, "testpkg", result.PackageName)
	assert.Equal(t, types.LangGo, result.Language)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Symbols, 2, "function literals are not separate symbols")

	getName := findSymbol(t, result, "testpkg.User.GetName")
	assert.Equal(t, types.KindMethod, getName.Kind)
	assert.Equal(t, "User", getName.Receiver)
	assert.Equal(t, 11, getName.Start.Line)
	assert.Equal(t, 13, getName.End.Line)

	newUser := findSymbol(t, result, "testpkg.NewUser")
	assert.Equal(t, types.KindFunction, newUser.Kind)
	assert.Equal(t, types.ScopeExported, newUser.Scope)

	outline := p.Outline(testFile, result)
	assert.Equal(t, types.NoFunction, outline.FunctionAt(7))
	assert.Equal(t, "testpkg.User.GetName", outline.FunctionAt(12))
	assert.Equal(t, "testpkg.NewUser", outline.FunctionAt(18), "literal body resolves to the declaring function")
}

func TestParseSource_GenericReceiver(t *testing.T) {
	content := `package cache

type Cache[K comparable, V any] struct{}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	return zero, false
}

func (p Pair[T]) First() T { return p.a }
`

	p := New()
	result, err := p.ParseSource("cache.go", []byte(content))
	require.NoError(t, err)

	findSymbol(t, result, "cache.Cache.Get")
	findSymbol(t, result, "cache.Pair.First")
}

func TestParseFile_SyntaxError(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "invalid.go")

	content := `package main

func ok() {
	println("fine")
}

func incomplete( {
	// Missing closing parenthesis
}
`

	err := os.WriteFile(testFile, []byte(content), 0644)
	require.NoError(t, err)

	p := New()
	result, err := p.ParseFile(testFile)

	// Parser should not return error, but result should have errors
	require.NoError(t, err)
	assert.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "syntax error")
}

func TestParseFile_NonExistentFile(t *testing.T) {
	p := New()
	_, err := p.ParseFile("/nonexistent/file.go")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParseFile_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "empty.go")

	err := os.WriteFile(testFile, []byte(""), 0644)
	require.NoError(t, err)

	p := New()
	result, err := p.ParseFile(testFile)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Errors) // Empty file is a syntax error
	assert.Empty(t, result.Symbols)
}

func TestParseSource_UnknownLanguage(t *testing.T) {
	p := New()
	result, err := p.ParseSource("notes.txt", []byte("func main() {}\n"))
	require.NoError(t, err)
	assert.Equal(t, types.LangUnknown, result.Language)
	assert.Empty(t, result.Symbols)
}
