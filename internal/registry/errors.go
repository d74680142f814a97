package registry

import "errors"

// Sentinel errors for the registry package
var (
	// ErrMappingNotFound indicates the mapping file does not exist
	ErrMappingNotFound = errors.New("mapping file not found")

	// ErrInvalidMapping indicates the mapping file is not valid YAML
	ErrInvalidMapping = errors.New("mapping file must be valid YAML")

	// ErrEmptyFolder indicates a mapping entry with an empty folder name
	ErrEmptyFolder = errors.New("mapping folder name cannot be empty")

	// ErrEmptyType indicates a mapping entry with an empty type name
	ErrEmptyType = errors.New("mapping type name cannot be empty")
)
