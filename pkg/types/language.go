package types

import (
	"path/filepath"
	"strings"
)

// Language identifies the outlining strategy for a file
type Language string

const (
	LangGo      Language = "go"
	LangBrace   Language = "brace" // C-family languages delimited by braces
	LangPython  Language = "python"
	LangUnknown Language = "unknown"
)

var braceExtensions = map[string]bool{
	".c": true, ".h": true, ".cc": true, ".cpp": true, ".cxx": true, ".hpp": true,
	".cs": true, ".java": true, ".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".kt": true, ".swift": true, ".rs": true, ".php": true, ".scala": true,
}

// DetectLanguage maps a file path to a Language by extension
func DetectLanguage(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".go":
		return LangGo
	case ext == ".py":
		return LangPython
	case braceExtensions[ext]:
		return LangBrace
	default:
		return LangUnknown
	}
}

// SupportedExtensions lists every extension with a dedicated outliner
func SupportedExtensions() []string {
	exts := []string{".go", ".py"}
	for ext := range braceExtensions {
		exts = append(exts, ext)
	}
	return exts
}
