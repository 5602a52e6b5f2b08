package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = ".ptree.yaml"

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	Style     string
	Depth     string // text so that non-integer input can be reported
	Annotate  bool
	NoColor   bool
	Debug     bool
	RootLabel string

	// Flags to track if they were explicitly set by the user
	StyleSet     bool
	DepthSet     bool
	AnnotateSet  bool
	NoColorSet   bool
	DebugSet     bool
	RootLabelSet bool
}

// FileConfig represents the contents of .ptree.yaml. Pointer fields
// distinguish "absent" from the zero value.
type FileConfig struct {
	Style     string `yaml:"style,omitempty"`
	Depth     string `yaml:"depth,omitempty"`
	Annotate  *bool  `yaml:"annotate,omitempty"`
	NoColor   *bool  `yaml:"no_color,omitempty"`
	Debug     *bool  `yaml:"debug,omitempty"`
	RootLabel string `yaml:"root_label,omitempty"`
}

// LoadFile loads the configuration file found by FindConfigPath. It returns
// an empty config and an empty path when there is none.
func LoadFile() (*FileConfig, string, error) {
	path := FindConfigPath()
	if path == "" {
		return &FileConfig{}, "", nil
	}
	cfg, err := ReadFile(path)
	return cfg, path, err
}

// ReadFile parses the configuration file at path.
func ReadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	cfg.Style = strings.TrimSpace(cfg.Style)
	cfg.Depth = strings.TrimSpace(cfg.Depth)
	return &cfg, nil
}

// FindConfigPath tries to find the .ptree.yaml configuration file.
// It checks the local directory first, then the user config directory.
func FindConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not suitable for path construction.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "ptree", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
