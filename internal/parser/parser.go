package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"

	"github.com/dshills/findgroup/pkg/types"
)

// Parser outlines source files into function spans. It holds no state
// between files and is safe for concurrent use.
type Parser struct{}

// New creates a new Parser instance
func New() *Parser {
	return &Parser{}
}

// ParseFile reads a source file and extracts its function spans
func (p *Parser) ParseFile(filePath string) (*types.ParseResult, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return p.ParseSource(filePath, content)
}

// ParseSource extracts function spans from already loaded content. The outlining
// strategy is chosen from the file extension.
func (p *Parser) ParseSource(filePath string, content []byte) (*types.ParseResult, error) {
	lang := types.DetectLanguage(filePath)
	switch lang {
	case types.LangGo:
		return p.parseGo(filePath, content), nil
	case types.LangBrace:
		return outlineBraces(filePath, content), nil
	case types.LangPython:
		return outlinePython(filePath, content), nil
	default:
		return &types.ParseResult{Language: types.LangUnknown}, nil
	}
}

// Outline builds the enclosing-function lookup for a parse result
func (p *Parser) Outline(filePath string, result *types.ParseResult) *types.Outline {
	return types.NewOutline(filePath, result)
}

// parseGo outlines a Go file using go/ast. Positions are resolved before
// returning, so each call uses its own FileSet.
func (p *Parser) parseGo(filePath string, content []byte) *types.ParseResult {
	result := &types.ParseResult{Language: types.LangGo}
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filePath, content, parser.SkipObjectResolution)
	if err != nil {
		// Syntax errors are non-fatal - record error but continue with partial AST
		result.AddError(filePath, 0, 0, fmt.Sprintf("syntax error: %v", err))
	}

	if file == nil {
		return result
	}

	if file.Name != nil {
		result.PackageName = file.Name.Name
	}

	extractor := &symbolExtractor{
		fset:        fset,
		packageName: result.PackageName,
		symbols:     make([]types.Symbol, 0),
	}

	// Only top-level declarations can be functions; literals belong to their declaring function
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			extractor.extractFunction(fn)
		}
	}
	result.Symbols = extractor.symbols

	return result
}

// symbolExtractor collects function symbols from a Go AST
type symbolExtractor struct {
	fset        *token.FileSet
	packageName string
	symbols     []types.Symbol
}

// extractFunction extracts function and method declarations
func (e *symbolExtractor) extractFunction(funcDecl *ast.FuncDecl) {
	if funcDecl.Name == nil {
		return
	}

	sym := types.Symbol{
		Name:    funcDecl.Name.Name,
		Package: e.packageName,
		Scope:   e.determineScope(funcDecl.Name.Name),
		Start:   e.positionFromToken(funcDecl.Pos()),
		End:     e.positionFromToken(funcDecl.End()),
	}

	// Determine if this is a method or function
	if funcDecl.Recv != nil && len(funcDecl.Recv.List) > 0 {
		sym.Kind = types.KindMethod
		sym.Receiver = e.extractReceiverType(funcDecl.Recv.List[0].Type)
	} else {
		sym.Kind = types.KindFunction
	}

	// A method with an unreadable receiver is still a function for grouping purposes
	if sym.Kind == types.KindMethod && sym.Receiver == "" {
		sym.Kind = types.KindFunction
	}

	sym.FullName = types.JoinName(e.packageName, sym.Receiver, sym.Name)

	e.symbols = append(e.symbols, sym)
}

// extractReceiverType extracts the receiver type name from a method
func (e *symbolExtractor) extractReceiverType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return e.extractReceiverType(t.X)
	case *ast.ParenExpr:
		return e.extractReceiverType(t.X)
	case *ast.IndexExpr:
		// generic receiver: T[K]
		return e.extractReceiverType(t.X)
	case *ast.IndexListExpr:
		// generic receiver: T[K, V]
		return e.extractReceiverType(t.X)
	case *ast.Ident:
		return t.Name
	}
	return ""
}

// determineScope determines if a symbol is exported or unexported
func (e *symbolExtractor) determineScope(name string) types.SymbolScope {
	if token.IsExported(name) {
		return types.ScopeExported
	}
	return types.ScopeUnexported
}

// positionFromToken converts a token position to our Position type
func (e *symbolExtractor) positionFromToken(pos token.Pos) types.Position {
	position := e.fset.Position(pos)
	return types.Position{
		Line:   position.Line,
		Column: position.Column,
	}
}
