// Package writers turns found anagrams into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text lines, JSON/JSONL/YAML).
//   • Engine stays domain-only; Finder/Pipeline stay orchestration-only.
//   • Output files are created exclusively and never overwritten.
package writers
