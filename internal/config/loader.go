// Package config loads the optional chairman.toml harness configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bezirg/cardano-node/internal/paths"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "chairman.toml"

// Defaults applied below the config file and flags.
const (
	DefaultBuildTool      = "cabal"
	DefaultTimeoutSeconds = 60
)

// Effective is the fully resolved harness configuration.
// Priority: defaults < chairman.toml < flags.
type Effective struct {
	BaseDir        string
	BuildTool      string
	TimeoutSeconds int
	NoColor        bool
	Verbose        bool
}

// Default returns the built-in configuration. BaseDir honors the
// CARDANO_NODE_SRC environment override.
func Default() Effective {
	return Effective{
		BaseDir:        paths.BaseDir(),
		BuildTool:      DefaultBuildTool,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Apply overlays the set fields of a FileConfig onto the configuration.
func (e *Effective) Apply(f *FileConfig) {
	if f == nil {
		return
	}
	if f.BaseDir != nil {
		e.BaseDir = *f.BaseDir
	}
	if f.BuildTool != nil {
		e.BuildTool = *f.BuildTool
	}
	if f.TimeoutSeconds != nil {
		e.TimeoutSeconds = *f.TimeoutSeconds
	}
	if f.NoColor != nil {
		e.NoColor = *f.NoColor
	}
	if f.Verbose != nil {
		e.Verbose = *f.Verbose
	}
}

// Load reads a chairman.toml file. A missing file is not an error when the
// path was not explicitly requested: the loader returns an empty config.
func Load(path string, explicit bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}
