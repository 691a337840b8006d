// Package buildplan reads the build-plan manifest cabal writes under
// dist-newstyle and resolves executable components to their binary paths.
package buildplan

import (
	"encoding/json"
	"os"
)

// ExePrefix qualifies executable component names in the plan.
const ExePrefix = "exe:"

// Plan is the decoded shape of plan.json. Only the fields the harness
// consumes are mapped; everything else in the manifest is ignored.
type Plan struct {
	InstallPlan []Component `json:"install-plan"`
}

// Component is a single install-plan entry. Both fields are optional in
// the manifest, so they are pointers to distinguish absent from empty.
type Component struct {
	ComponentName *string `json:"component-name"`
	BinFile       *string `json:"bin-file"`
}

// Load reads and decodes a plan.json file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Message: err.Error()}
	}
	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, &DecodeError{Path: path, Message: err.Error()}
	}
	return &plan, nil
}

// BinFile returns the built binary path for the executable component of
// pkg. Matching is exact on the qualified name "exe:<pkg>"; the first
// match wins.
func (p *Plan) BinFile(pkg string) (string, error) {
	want := ExePrefix + pkg
	for _, c := range p.InstallPlan {
		if c.ComponentName == nil || *c.ComponentName != want {
			continue
		}
		if c.BinFile == nil {
			return "", &MalformedComponentError{Component: want}
		}
		return *c.BinFile, nil
	}
	return "", &MissingComponentError{Package: pkg}
}
