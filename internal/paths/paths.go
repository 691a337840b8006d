// Package paths provides centralized path management for the chairman
// test harness.
package paths

import (
	"os"
	"path/filepath"
)

// BaseDirEnv overrides the project base directory (the cabal project root
// that owns dist-newstyle). Defaults to one level above the harness
// working directory.
const (
	BaseDirEnv     = "CARDANO_NODE_SRC"
	DefaultBaseDir = ".."
)

// Build-plan manifest location relative to the project base directory.
const (
	DistDir      = "dist-newstyle"
	PlanCacheDir = "cache"
	PlanFile     = "plan.json"
)

// BaseDir returns the project base directory, honoring BaseDirEnv.
func BaseDir() string {
	if dir := os.Getenv(BaseDirEnv); dir != "" {
		return dir
	}
	return DefaultBaseDir
}

// PlanPath returns the build-plan manifest location under baseDir.
func PlanPath(baseDir string) string {
	return filepath.Join(baseDir, DistDir, PlanCacheDir, PlanFile)
}

// DefaultPlanPath returns the plan location for the default base
// directory. The plan file lives one level above the harness working
// directory in the standard build layout.
func DefaultPlanPath() string {
	return PlanPath(DefaultBaseDir)
}
