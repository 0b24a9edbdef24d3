package types

// ParseResult represents the output of outlining a source file
type ParseResult struct {
	// Extracted data
	Symbols     []Symbol
	PackageName string
	Language    Language

	// Errors encountered during parsing
	Errors []ParseError
}

// ParseError represents an error that occurred during parsing
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
}

// Error implements the error interface
func (pe *ParseError) Error() string {
	return pe.Message
}

// HasErrors returns true if any parsing errors occurred
func (pr *ParseResult) HasErrors() bool {
	return len(pr.Errors) > 0
}

// AddError adds a parsing error to the result
func (pr *ParseResult) AddError(file string, line, col int, msg string) {
	pr.Errors = append(pr.Errors, ParseError{
		File:    file,
		Line:    line,
		Column:  col,
		Message: msg,
	})
}

// Functions returns only the function and method symbols
func (pr *ParseResult) Functions() []Symbol {
	funcs := make([]Symbol, 0, len(pr.Symbols))
	for _, sym := range pr.Symbols {
		if sym.IsFunction() {
			funcs = append(funcs, sym)
		}
	}
	return funcs
}
