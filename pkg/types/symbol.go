package types

import (
	"errors"
	"go/token"
	"strings"
)

// SymbolKind represents the type of source construct an outline tracks
type SymbolKind string

const (
	KindFunction  SymbolKind = "function"
	KindMethod    SymbolKind = "method"
	KindContainer SymbolKind = "container" // class, struct, namespace, impl, module
)

// SymbolScope represents the visibility scope of a symbol
type SymbolScope string

const (
	ScopeExported   SymbolScope = "exported"
	ScopeUnexported SymbolScope = "unexported"
	ScopeUnknown    SymbolScope = "unknown"
)

// Position represents a location in source code
type Position struct {
	Line   int
	Column int
}

// Symbol represents a function-like construct located in a source file
type Symbol struct {
	// Identification
	Name     string
	FullName string // qualified name, e.g. pkg.Type.Method or Namespace.Class.Method
	Kind     SymbolKind
	Package  string

	// Scope
	Scope    SymbolScope
	Receiver string // For methods: receiver or owning type name

	// Location
	Start Position
	End   Position
}

// ValidateKind checks if the symbol kind is valid
func (s *Symbol) ValidateKind() error {
	switch s.Kind {
	case KindFunction, KindMethod, KindContainer:
		return nil
	default:
		return errors.New("invalid symbol kind")
	}
}

// IsFunction reports whether the symbol can enclose a matched line as a function
func (s *Symbol) IsFunction() bool {
	return s.Kind == KindFunction || s.Kind == KindMethod
}

// IsExported returns true if the symbol is exported (visible outside package)
func (s *Symbol) IsExported() bool {
	return s.Scope == ScopeExported && token.IsExported(s.Name)
}

// Contains reports whether line falls inside the symbol's span
func (s *Symbol) Contains(line int) bool {
	return line >= s.Start.Line && line <= s.End.Line
}

// QualifiedName returns FullName, falling back to Name
func (s *Symbol) QualifiedName() string {
	if s.FullName != "" {
		return s.FullName
	}
	return s.Name
}

// Validate performs comprehensive validation of the symbol
func (s *Symbol) Validate() error {
	if s.Name == "" {
		return errors.New("symbol name is required")
	}

	if err := s.ValidateKind(); err != nil {
		return err
	}

	// Methods must have a receiver
	if s.Kind == KindMethod && s.Receiver == "" {
		return errors.New("methods must have a receiver type")
	}

	if s.FullName != "" && !strings.HasSuffix(s.FullName, s.Name) {
		return errors.New("full name must end with the symbol name")
	}

	// Position validation
	if s.Start.Line <= 0 || s.End.Line <= 0 {
		return errors.New("invalid position: line numbers must be positive")
	}

	if s.Start.Line > s.End.Line {
		return errors.New("invalid position: start line must be before or equal to end line")
	}

	return nil
}

// JoinName joins non-empty name parts with a dot
func JoinName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}
