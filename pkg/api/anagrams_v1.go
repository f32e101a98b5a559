// Package api holds the stable wire types written by the json, jsonl and
// yaml output formats.
package api

// AnagramV1 is the stable JSON/JSONL/YAML schema for one anagram.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AnagramV1 struct {
	Text  string   `json:"text" yaml:"text"`   // words joined by single spaces
	Words []string `json:"words" yaml:"words"` // in anagram order
	Count int      `json:"word_count" yaml:"word_count"`
}
