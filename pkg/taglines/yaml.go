package taglines

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a tagline list.
type File struct {
	Taglines []string `yaml:"taglines"`
}

// LoadYAML decodes a tagline list file and sanitizes its entries.
func LoadYAML(r io.Reader) (List, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return List{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return Sanitize(f.Taglines), nil
}

// WriteYAML encodes list as a tagline list file.
func WriteYAML(w io.Writer, list List) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Taglines: list.Strings()}); err != nil {
		return err
	}
	return enc.Close()
}
