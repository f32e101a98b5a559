// Package pipeline fans per-item work out over a bounded worker pool and
// flattens the per-item results.
//
// The only contract is a work function from one item to its matches. Work
// functions only read shared inputs, so any strategy value can be captured
// and used from every worker. Results come back in completion order; callers
// that need a stable order sort afterwards.
package pipeline
