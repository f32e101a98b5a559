// Package output renders found anagrams. Every format writes the same,
// sorted list of anagrams; only the encoding differs.
package output

// Supported output formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// Formats lists the supported formats, default first.
func Formats() []string { return []string{FormatText, FormatJSON, FormatJSONL, FormatYAML} }
