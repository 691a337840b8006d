package config

// FileConfig represents the raw chairman.toml file contents.
// All fields are pointers to distinguish "not set" from "set to zero/false".
type FileConfig struct {
	// BaseDir is the cabal project root that owns dist-newstyle.
	BaseDir *string `toml:"base_dir"`
	// BuildTool runs package executables when no env override is set.
	BuildTool *string `toml:"build_tool"`
	// TimeoutSeconds bounds how long the runner waits on the chairman.
	TimeoutSeconds *int `toml:"timeout_seconds"`

	// Global output settings
	NoColor *bool `toml:"no_color"`
	Verbose *bool `toml:"verbose"`
}

// IsEmpty returns true if no configuration values are set.
func (f *FileConfig) IsEmpty() bool {
	return f.BaseDir == nil &&
		f.BuildTool == nil &&
		f.TimeoutSeconds == nil &&
		f.NoColor == nil &&
		f.Verbose == nil
}
