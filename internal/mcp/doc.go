// Package mcp implements the Model Context Protocol (MCP) server for findgroup.
//
// The MCP server exposes two tools to AI coding assistants:
//   - find_grouped: Find matching lines and group them by enclosing function
//   - list_functions: List the function spans of a source file
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// # Basic Usage
//
// The MCP server is started via the serve command:
//
//	findgroup serve
//
// It then listens on stdin for MCP protocol messages and writes responses to
// stdout. Diagnostics go to stderr.
//
// # Tool: find_grouped
//
//	Request:
//	{
//	  "path": "/abs/path/to/project",
//	  "pattern": "cache",
//	  "match_case": false,
//	  "whole_word": true,
//	  "format": "region"
//	}
//
//	Response (text of the "Matching Lines" pane):
//	#region no function:
//	var cache = map[string]int{}
//
//	#endregion
//	#region store.Get:
//		return cache[key]
//
//	#endregion
//
// Each call clears the pane before printing, so the response only holds the
// results of that call. When some files could not be read a second text
// item carries a JSON summary of the failures.
//
// # Tool: list_functions
//
//	Request:
//	{"path": "/abs/path/to/store.go"}
//
//	Response:
//	{
//	  "path": "/abs/path/to/store.go",
//	  "language": "go",
//	  "count": 1,
//	  "functions": [
//	    {"name": "Get", "full_name": "store.Get", "kind": "function", "start_line": 5, "end_line": 7}
//	  ]
//	}
//
// # Error Handling
//
// Tool errors are returned as MCPError with JSON-RPC codes:
//   - -32602: Invalid parameters (bad path, format or pattern syntax)
//   - -32603: Internal error (search or rendering failed)
//   - -32001: Path does not exist
//   - -32004: Pattern is empty
package mcp
