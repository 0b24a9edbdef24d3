package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// findGroupedTool returns the tool definition for find_grouped
func findGroupedTool() mcp.Tool {
	return mcp.Tool{
		Name:        "find_grouped",
		Description: "Find every line matching a pattern and group the lines by the function that encloses them",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to a source file or a directory to search",
				},
				"pattern": map[string]interface{}{
					"type":        "string",
					"description": "Text to find (a regular expression when regex is true)",
				},
				"match_case": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, the search is case-sensitive",
					"default":     false,
				},
				"whole_word": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, only matches that are not part of a longer word count",
					"default":     true,
				},
				"regex": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, pattern is a regular expression",
					"default":     false,
				},
				"include_tests": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, search test files found in directories",
					"default":     true,
				},
				"include_vendor": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, search vendor/ directories",
					"default":     false,
				},
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Output layout: region (#region blocks), markdown, or json",
					"enum":        []string{"region", "markdown", "json"},
					"default":     "region",
				},
			},
			Required: []string{"path", "pattern"},
		},
	}
}

// listFunctionsTool returns the tool definition for list_functions
func listFunctionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_functions",
		Description: "List the functions of a source file with their line spans",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to a source file",
				},
			},
			Required: []string{"path"},
		},
	}
}
