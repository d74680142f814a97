package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads an optional YAML mapping file (folder: TypeName pairs) and
// returns the built-in registry with those mappings merged over it. Custom
// metadata folders can be added this way without rebuilding the tool.
func Load(path string) (*Registry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMappingNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses mapping entries from raw YAML bytes and merges them
// over the built-in table.
func LoadFromBytes(data []byte) (*Registry, error) {
	var mappings map[string]string
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMapping, err)
	}

	for folder, typeName := range mappings {
		if folder == "" {
			return nil, ErrEmptyFolder
		}
		if typeName == "" {
			return nil, fmt.Errorf("%w: folder %q", ErrEmptyType, folder)
		}
	}

	return New().Merge(mappings), nil
}
