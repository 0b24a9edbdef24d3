package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/findgroup/internal/finder"
	"github.com/dshills/findgroup/internal/report"
	"github.com/dshills/findgroup/internal/searcher"
	"github.com/dshills/findgroup/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodePathNotFound  = -32001 // Specified path does not exist
	ErrorCodeEmptyPattern  = -32004 // Pattern parameter is empty
)

// handleFindGrouped handles the find_grouped tool invocation
func (s *Server) handleFindGrouped(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract and validate parameters
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	pattern, ok := args["pattern"].(string)
	if !ok || pattern == "" {
		return nil, newMCPError(ErrorCodeEmptyPattern, "pattern parameter is required and cannot be empty", map[string]interface{}{
			"param":  "pattern",
			"reason": "missing or empty",
		})
	}

	if err := validatePath(path, false); err != nil {
		return nil, pathError(err)
	}

	format, err := report.ParseFormat(getStringDefault(args, "format", s.defaults.Format))
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid format", map[string]interface{}{
			"param":   "format",
			"value":   args["format"],
			"allowed": report.Formats(),
		})
	}

	opts := finder.Options{
		Pattern:   pattern,
		MatchCase: getBoolDefault(args, "match_case", s.defaults.MatchCase),
		WholeWord: getBoolDefault(args, "whole_word", s.defaults.WholeWord),
		Regex:     getBoolDefault(args, "regex", s.defaults.Regex),
		Wrap:      s.defaults.Wrap,
	}
	if err := opts.Validate(); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid pattern", map[string]interface{}{
			"param":  "pattern",
			"reason": err.Error(),
		})
	}

	resp, err := s.searcher.Search(ctx, searcher.Request{
		Paths:         []string{path},
		Find:          opts,
		IncludeTests:  getBoolDefault(args, "include_tests", s.defaults.IncludeTests),
		IncludeVendor: getBoolDefault(args, "include_vendor", s.defaults.IncludeVendor),
		Extensions:    s.defaults.Extensions,
		Workers:       s.defaults.Workers,
	})
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	text, err := s.renderToPane(resp, report.Options{Format: format, MaxWidth: s.defaults.MaxWidth})
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to render results", map[string]interface{}{
			"error": err.Error(),
		})
	}

	result := mcp.NewToolResultText(text)

	if len(resp.Statistics.ErrorMessages) > 0 {
		for _, msg := range resp.Statistics.ErrorMessages {
			log.Printf("find_grouped: %s", msg)
		}
		// Include first few errors
		summary := map[string]interface{}{
			"files_searched": resp.Statistics.FilesSearched,
			"files_failed":   resp.Statistics.FilesFailed,
		}
		errorCount := len(resp.Statistics.ErrorMessages)
		if errorCount > 5 {
			summary["errors"] = resp.Statistics.ErrorMessages[:5]
			summary["error_count"] = errorCount
		} else {
			summary["errors"] = resp.Statistics.ErrorMessages
		}
		result.Content = append(result.Content, mcp.NewTextContent(formatJSON(summary)))
	}

	return result, nil
}

// renderToPane clears the results pane, prints the report into it and reads it back
func (s *Server) renderToPane(resp *searcher.Response, opts report.Options) (string, error) {
	s.paneMu.Lock()
	defer s.paneMu.Unlock()

	p := s.panes.Get(s.defaults.Pane)
	if err := p.Clear(); err != nil {
		return "", err
	}
	if err := report.Write(p, resp.Files, opts); err != nil {
		return "", err
	}

	if str, ok := p.(fmt.Stringer); ok {
		return str.String(), nil
	}
	return "", fmt.Errorf("pane %q cannot be read back", p.Name())
}

// handleListFunctions handles the list_functions tool invocation
func (s *Server) handleListFunctions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract and validate parameters
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	if err := validatePath(path, true); err != nil {
		return nil, pathError(err)
	}

	outline, err := s.searcher.Outline(path)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to outline file", map[string]interface{}{
			"error": err.Error(),
		})
	}

	functions := make([]map[string]interface{}, 0, len(outline.Functions))
	for _, fn := range outline.Functions {
		entry := map[string]interface{}{
			"name":       fn.Name,
			"full_name":  fn.QualifiedName(),
			"kind":       string(fn.Kind),
			"start_line": fn.Start.Line,
			"end_line":   fn.End.Line,
		}
		if fn.Receiver != "" {
			entry["receiver"] = fn.Receiver
		}
		functions = append(functions, entry)
	}

	response := map[string]interface{}{
		"path":      path,
		"language":  string(outline.Language),
		"functions": functions,
		"count":     len(functions),
	}
	if outline.Language == types.LangUnknown {
		response["message"] = "No outliner for this file type; every line belongs to \"" + types.NoFunction + "\"."
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// pathError maps a path validation failure to its MCP error
func pathError(err error) error {
	code := ErrorCodeInvalidParams
	if errors.Is(err, ErrPathNotFound) {
		code = ErrorCodePathNotFound
	}
	return newMCPError(code, "invalid path", map[string]interface{}{
		"param":  "path",
		"reason": err.Error(),
	})
}

// validatePath checks if a path exists and is accessible. With fileOnly set
// the path must name a regular file.
func validatePath(path string, fileOnly bool) error {
	if path == "" {
		return ErrPathRequired
	}

	// Check if path is absolute
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	// Check if path exists
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}

	if fileOnly && !info.Mode().IsRegular() {
		return ErrNotFile
	}

	// Check if path is readable
	f, err := os.Open(path)
	if err != nil {
		return ErrPathNotReadable
	}
	_ = f.Close()

	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrNotFile         = errors.New("path is not a regular file")
)
