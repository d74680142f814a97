package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNotFound indicates the scan root (or requested subdirectory) does
	// not exist or is not a directory
	ErrNotFound = errors.New("not found")

	// ErrScanFailed indicates a filesystem error while enumerating entries
	ErrScanFailed = errors.New("scan failed")

	// ErrWriteFailed indicates writing the manifest failed
	ErrWriteFailed = errors.New("write failed")
)

// ScanError represents a failure while enumerating a directory. The whole
// build aborts on the first one; there is no partial manifest.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error for %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match any ScanError against ErrScanFailed.
func (e *ScanError) Is(target error) bool {
	return target == ErrScanFailed
}

// NewScanError creates a new ScanError
func NewScanError(path string, err error) *ScanError {
	return &ScanError{Path: path, Err: err}
}

// WriteError represents a failure while writing the manifest file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error for %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match any WriteError against ErrWriteFailed.
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}
