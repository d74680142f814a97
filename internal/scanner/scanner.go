package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/domain"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/utils"
)

// Scanner enumerates project directories and files. All listings are
// synchronous and run to completion; the first filesystem error aborts the
// operation with no partial result.
type Scanner struct {
	log *utils.Logger
}

// ListOptions controls a Files listing
type ListOptions struct {
	// Exclude holds glob patterns (e.g. "*.txt") matched against entry
	// names; matching entries are skipped.
	Exclude []string

	// Recursive walks the whole subtree instead of one level.
	Recursive bool
}

// New creates a new scanner
func New(log *utils.Logger) *Scanner {
	if log == nil {
		log = utils.NewDefaultLogger()
	}
	return &Scanner{log: log.WithComponent("scanner")}
}

// Subfolders returns the names of the immediate child directories of root,
// hidden directories included, in directory-listing order. It fails with
// domain.ErrNotFound when root does not exist or is not a directory.
func (s *Scanner) Subfolders(root string) ([]string, error) {
	if !utils.IsDir(root) {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrNotFound, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, domain.NewScanError(root, err)
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}

	s.log.Debug().Str("root", root).Int("folders", len(folders)).Msg("listed subfolders")
	return folders, nil
}

// Files returns the base names (extension stripped) of the files in dir,
// applying the exclude patterns from opts. Two files differing only by
// extension collapse to duplicate names; duplicates pass through. Hidden
// files are included. It fails with domain.ErrNotFound when dir does not
// exist or is not a directory, and with a domain.ScanError on any other
// filesystem failure.
func (s *Scanner) Files(dir string, opts ListOptions) ([]string, error) {
	if !utils.IsDir(dir) {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrNotFound, dir)
	}

	excludes, err := compilePatterns(opts.Exclude)
	if err != nil {
		return nil, err
	}

	var names []string
	if opts.Recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return domain.NewScanError(path, err)
			}
			if d.IsDir() || matches(excludes, d.Name()) {
				return nil
			}
			names = append(names, utils.StripExt(d.Name()))
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, readErr := os.ReadDir(dir)
		if readErr != nil {
			return nil, domain.NewScanError(dir, readErr)
		}
		for _, entry := range entries {
			if entry.IsDir() || matches(excludes, entry.Name()) {
				continue
			}
			names = append(names, utils.StripExt(entry.Name()))
		}
	}

	s.log.Debug().Str("dir", dir).Int("files", len(names)).Msg("listed files")
	return names, nil
}

// compilePatterns compiles glob exclude patterns
func compilePatterns(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matches(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
