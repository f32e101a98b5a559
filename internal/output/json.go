package output

import (
	"encoding/json"
	"io"

	"anagrams/internal/engine"
	"anagrams/pkg/api"
)

// ToAPI converts a domain sequence to the stable wire schema (v1).
func ToAPI(s engine.Sequence) api.AnagramV1 {
	return api.AnagramV1{
		Text:  s.String(),
		Words: append([]string(nil), s...),
		Count: len(s),
	}
}

func toAPIList(list []engine.Sequence) []api.AnagramV1 {
	out := make([]api.AnagramV1, 0, len(list))
	for _, s := range list {
		out = append(out, ToAPI(s))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 anagrams (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Sequence) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIList(list))
}

// WriteJSONL writes one v1 anagram per line.
func WriteJSONL(w io.Writer, list []engine.Sequence) error {
	enc := json.NewEncoder(w)
	for _, s := range list {
		if err := enc.Encode(ToAPI(s)); err != nil {
			return err
		}
	}
	return nil
}
