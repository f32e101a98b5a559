// Package engine contains the anagram search core: dividers, letter-count
// partitions, the word-list reducer, comparable forms and the two
// per-item strategies. It never imports app, writers, cli, finder or
// pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here — use pkg/api
// for stable wire types (JSON/JSONL/YAML v1).
package engine
