package harness

import (
	"os"

	"github.com/bezirg/cardano-node/internal/infrastructure/buildplan"
	"github.com/bezirg/cardano-node/internal/paths"
)

// Environment-variable overrides for the harness binaries. When set
// non-empty, the value is used as the executable path and the build plan
// is never consulted.
const (
	CliEnv      = "CARDANO_CLI"
	NodeEnv     = "CARDANO_NODE"
	ChairmanEnv = "CARDANO_NODE_CHAIRMAN"
)

// Logical cabal package names of the harness binaries.
const (
	CliPackage      = "cardano-cli"
	NodePackage     = "cardano-node"
	ChairmanPackage = "cardano-node-chairman"
)

// Binary is a resolved invocation: an executable path or name plus the
// ordered arguments to pass it.
type Binary struct {
	Path string
	Args []string
}

// sourceKind tags how a binary is located. The source is decided once per
// Resolve call, before any file is touched.
type sourceKind int

const (
	envOverride sourceKind = iota
	planLookup
)

type source struct {
	kind sourceKind
	path string // envOverride: the overriding executable path
	pkg  string // planLookup: the cabal package to look up
}

func resolveSource(pkg, envVar string) source {
	if path := os.Getenv(envVar); path != "" {
		return source{kind: envOverride, path: path}
	}
	return source{kind: planLookup, pkg: pkg}
}

// Resolver locates executables through the build plan.
// The zero value uses the plan file one level above the working directory.
type Resolver struct {
	// PlanPath overrides the build-plan manifest location.
	PlanPath string
}

// DefaultResolver is used by the package-level Resolve helpers.
var DefaultResolver = &Resolver{}

func (r *Resolver) planPath() string {
	if r.PlanPath != "" {
		return r.PlanPath
	}
	return paths.DefaultPlanPath()
}

// Resolve determines the concrete executable for a logical cabal package.
// The env var override wins; otherwise the build plan is consulted. A plan
// decode failure, an unknown package, or a component without a bin-file is
// fatal: those indicate a broken build environment, not a test failure.
func (r *Resolver) Resolve(t T, pkg, envVar string, args []string) Binary {
	t.Helper()

	src := resolveSource(pkg, envVar)
	switch src.kind {
	case envOverride:
		return Binary{Path: src.path, Args: args}
	default:
		plan, err := buildplan.Load(r.planPath())
		if err != nil {
			t.Fatalf("failed to decode build plan: %v", err)
			return Binary{}
		}
		bin, err := plan.BinFile(src.pkg)
		if err != nil {
			t.Fatalf("failed to resolve %s: %v", src.pkg, err)
			return Binary{}
		}
		return Binary{Path: bin, Args: args}
	}
}

// ResolveCli locates the cardano-cli executable.
func ResolveCli(t T, args ...string) Binary {
	t.Helper()
	return DefaultResolver.Resolve(t, CliPackage, CliEnv, args)
}

// ResolveNode locates the cardano-node executable.
func ResolveNode(t T, args ...string) Binary {
	t.Helper()
	return DefaultResolver.Resolve(t, NodePackage, NodeEnv, args)
}

// ResolveChairman locates the cardano-node-chairman executable.
func ResolveChairman(t T, args ...string) Binary {
	t.Helper()
	return DefaultResolver.Resolve(t, ChairmanPackage, ChairmanEnv, args)
}

// ProjectBase returns the cardano-node project base directory, honoring
// the CARDANO_NODE_SRC override. Independent of binary resolution.
func ProjectBase() string {
	return paths.BaseDir()
}
