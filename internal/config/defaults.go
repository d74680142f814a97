package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	DefaultRoot        = "."
	DefaultAPIVersion  = "31.0"
	DefaultPackageName = "package.xml"
	DefaultXmlns       = "http://soap.sforce.com/2006/04/metadata"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// DefaultExcludePatterns returns the file patterns skipped in full-manifest
// mode. A fresh slice is returned so callers can append freely.
func DefaultExcludePatterns() []string {
	return []string{"*.txt", "*.log", "*.xml"}
}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sfpackage"
	}
	return filepath.Join(home, ".sfpackage")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Root:        DefaultRoot,
			APIVersion:  DefaultAPIVersion,
			PackageName: DefaultPackageName,
			Xmlns:       DefaultXmlns,
		},
		Scan: ScanConfig{
			Exclude: DefaultExcludePatterns(),
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
