package manifest

import (
	"path/filepath"

	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/registry"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/scanner"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/utils"
)

// ExcludePatterns are the file patterns skipped while collecting
// members for the full manifest. The single-directory listing mode applies
// no patterns at all; the asymmetry is deliberate and pinned by tests.
var ExcludePatterns = []string{"*.txt", "*.log", "*.xml"}

// Builder assembles a Manifest from a scanned project tree
type Builder struct {
	scan    *scanner.Scanner
	reg     *registry.Registry
	log     *utils.Logger
	version string
	xmlns   string
	exclude []string
}

// BuilderOptions contains options for the builder
type BuilderOptions struct {
	Scanner    *scanner.Scanner
	Registry   *registry.Registry
	APIVersion string
	Xmlns      string

	// Exclude overrides ExcludePatterns when non-nil.
	Exclude []string

	Logger *utils.Logger
}

// NewBuilder creates a new manifest builder
func NewBuilder(opts BuilderOptions) *Builder {
	if opts.Scanner == nil {
		opts.Scanner = scanner.New(opts.Logger)
	}
	if opts.Registry == nil {
		opts.Registry = registry.New()
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewDefaultLogger()
	}
	if opts.Exclude == nil {
		opts.Exclude = ExcludePatterns
	}
	return &Builder{
		scan:    opts.Scanner,
		reg:     opts.Registry,
		log:     opts.Logger.WithComponent("builder"),
		version: opts.APIVersion,
		xmlns:   opts.Xmlns,
		exclude: opts.Exclude,
	}
}

// Build walks the immediate subfolders of root and produces one TypeGroup
// per subfolder, in listing order. Members keep the scanner's order and are
// not deduplicated. Any filesystem error aborts the whole build; no partial
// manifest is returned.
func (b *Builder) Build(root string) (*Manifest, error) {
	folders, err := b.scan.Subfolders(root)
	if err != nil {
		return nil, err
	}

	m := New(b.version, b.xmlns)
	for _, folder := range folders {
		members, err := b.scan.Files(filepath.Join(root, folder), scanner.ListOptions{
			Exclude: b.exclude,
		})
		if err != nil {
			return nil, err
		}

		typeName, mapped := b.reg.Lookup(folder)
		if !mapped {
			// Unmapped folders surface under their raw name instead of
			// being dropped.
			typeName = folder
			b.log.Warn().Str("folder", folder).Msg("folder has no registered metadata type")
		}

		m.Types = append(m.Types, TypeGroup{
			Members: members,
			Name:    typeName,
		})
	}

	b.log.Debug().
		Int("types", len(m.Types)).
		Int("members", m.MemberCount()).
		Msg("manifest assembled")
	return m, nil
}
