package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Config represents the application configuration
type Config struct {
	Project ProjectConfig `mapstructure:"project" yaml:"project"`
	Scan    ScanConfig    `mapstructure:"scan" yaml:"scan"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ProjectConfig contains project and manifest settings
type ProjectConfig struct {
	// Root is the project directory to scan.
	Root string `mapstructure:"root" yaml:"root"`

	// Dir selects single-directory mode when non-empty: only root/dir is
	// listed and no manifest file is written.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// APIVersion is stamped into the manifest's version element.
	APIVersion string `mapstructure:"api_version" yaml:"api_version"`

	// PackageName is the manifest file name written under Root.
	PackageName string `mapstructure:"package_name" yaml:"package_name"`

	// Xmlns is the manifest namespace URL.
	Xmlns string `mapstructure:"xmlns" yaml:"xmlns"`

	// Mappings is an optional YAML file of extra folder-to-type entries.
	Mappings string `mapstructure:"mappings" yaml:"mappings"`
}

// ScanConfig contains file enumeration settings
type ScanConfig struct {
	// Exclude holds the glob patterns skipped in full-manifest mode.
	// Single-directory mode ignores them and applies no filter.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and fills empty values with
// defaults
func (c *Config) Validate() error {
	if c.Project.Root == "" {
		c.Project.Root = DefaultRoot
	}
	if c.Project.APIVersion == "" {
		c.Project.APIVersion = DefaultAPIVersion
	}
	if c.Project.PackageName == "" {
		c.Project.PackageName = DefaultPackageName
	}
	if c.Project.Xmlns == "" {
		c.Project.Xmlns = DefaultXmlns
	}
	if c.Scan.Exclude == nil {
		c.Scan.Exclude = DefaultExcludePatterns()
	}
	for _, pattern := range c.Scan.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("invalid scan.exclude pattern %q: %w", pattern, err)
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
