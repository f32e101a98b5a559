package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"anagrams/internal/engine"
)

// WriteYAML writes a YAML sequence of v1 anagrams.
func WriteYAML(w io.Writer, list []engine.Sequence) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toAPIList(list)); err != nil {
		return err
	}
	return enc.Close()
}
