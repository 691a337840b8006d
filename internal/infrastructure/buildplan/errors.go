package buildplan

import "fmt"

// DecodeError is returned when the plan file cannot be read or parsed.
type DecodeError struct {
	Path    string
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("build plan %s: %s", e.Path, e.Message)
}

// MissingComponentError is returned when no component matches the
// requested executable package.
type MissingComponentError struct {
	Package string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("build plan does not contain executable for package %s", e.Package)
}

// MalformedComponentError is returned when a matching component has no
// bin-file field.
type MalformedComponentError struct {
	Component string
}

func (e *MalformedComponentError) Error() string {
	return fmt.Sprintf("build plan component %s has no bin-file", e.Component)
}
