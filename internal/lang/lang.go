// Package lang maps file paths to language tags via extension lookup.
package lang

import (
	"path/filepath"
	"strings"
)

// Language is a language tag derived from a file extension.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	React      Language = "react"
	Java       Language = "java"
	Ruby       Language = "ruby"
	Go         Language = "go"
	Rust       Language = "rust"
	PHP        Language = "php"
	CSharp     Language = "csharp"
	CPP        Language = "cpp"
	C          Language = "c"
	Swift      Language = "swift"
	Kotlin     Language = "kotlin"
	Scala      Language = "scala"
	HTML       Language = "html"
	CSS        Language = "css"
	JSON       Language = "json"
	YAML       Language = "yaml"
	TOML       Language = "toml"
	Markdown   Language = "markdown"
	Bash       Language = "bash"
	SQL        Language = "sql"
	Unknown    Language = "unknown"
)

var byExtension = map[string]Language{
	".py":    Python,
	".js":    JavaScript,
	".ts":    TypeScript,
	".jsx":   React,
	".tsx":   React,
	".java":  Java,
	".rb":    Ruby,
	".go":    Go,
	".rs":    Rust,
	".php":   PHP,
	".cs":    CSharp,
	".cpp":   CPP,
	".c":     C,
	".swift": Swift,
	".kt":    Kotlin,
	".scala": Scala,
	".html":  HTML,
	".css":   CSS,
	".json":  JSON,
	".yml":   YAML,
	".yaml":  YAML,
	".toml":  TOML,
	".md":    Markdown,
	".sh":    Bash,
	".sql":   SQL,
}

// FromPath returns the language tag for a file path. Unmapped extensions
// yield Unknown; the lookup never fails.
func FromPath(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if l, ok := byExtension[ext]; ok {
		return l
	}
	return Unknown
}
