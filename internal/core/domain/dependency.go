package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Scope is the declared usage context of a dependency.
type Scope string

const (
	// ScopeCompile is required to compile and run the project. It is the default.
	ScopeCompile Scope = "compile"
	// ScopeRuntime is required at runtime only.
	ScopeRuntime Scope = "runtime"
	// ScopeTest is required to compile and run tests only.
	ScopeTest Scope = "test"
	// ScopeProvided is supplied by the runtime environment.
	ScopeProvided Scope = "provided"
	// ScopeSystem is supplied by an explicit path on the local system.
	ScopeSystem Scope = "system"
)

// Scopes lists every valid scope in declaration order.
var Scopes = []Scope{ScopeCompile, ScopeRuntime, ScopeTest, ScopeProvided, ScopeSystem}

// ParseScope converts a scope name into a Scope. The empty string yields ScopeCompile.
func ParseScope(s string) (Scope, error) {
	if s == "" {
		return ScopeCompile, nil
	}
	scope := Scope(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Scopes, scope) {
		return "", zerr.With(zerr.Wrap(ErrInvalidScope, "unknown scope"), "scope", s)
	}
	return scope, nil
}

// String implements fmt.Stringer.
func (s Scope) String() string {
	if s == "" {
		return string(ScopeCompile)
	}
	return string(s)
}

// Exclusion names a (group, artifact) pair pruned from a dependency's transitive expansion.
type Exclusion struct {
	Group    InternedString
	Artifact InternedString
}

// NewExclusion creates an Exclusion.
func NewExclusion(group, artifact string) Exclusion {
	return Exclusion{
		Group:    NewInternedString(group),
		Artifact: NewInternedString(artifact),
	}
}

// ParseExclusion parses "group:artifact".
func ParseExclusion(s string) (Exclusion, error) {
	parts := strings.Split(strings.TrimSpace(s), coordinateSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Exclusion{}, zerr.With(zerr.Wrap(ErrInvalidCoordinate, "expected group:artifact exclusion"), "input", s)
	}
	return NewExclusion(parts[0], parts[1]), nil
}

// Key returns "group:artifact".
func (e Exclusion) Key() string {
	return e.Group.String() + coordinateSeparator + e.Artifact.String()
}

// Matches reports whether the exclusion applies to c.
func (e Exclusion) Matches(c Coordinate) bool {
	return e.Group == c.Group && e.Artifact == c.Artifact
}

// DependencySpec represents a declared dependency: the unit of intent read from project configuration.
type DependencySpec struct {
	// Coordinate is the requested artifact.
	Coordinate Coordinate

	// Scope is the declared usage context.
	Scope Scope

	// Exclusions prune (group, artifact) pairs from everything reached through this spec.
	Exclusions []Exclusion

	// Optional marks a dependency that consumers of this artifact do not inherit.
	Optional bool
}

// NewDependencySpec creates a compile scoped spec for c.
func NewDependencySpec(c Coordinate) DependencySpec {
	return DependencySpec{
		Coordinate: c,
		Scope:      ScopeCompile,
	}
}

// Key returns the identity key of the requested coordinate.
func (s DependencySpec) Key() string {
	return s.Coordinate.Key()
}

// Validate checks that group, artifact and version are all set.
func (s DependencySpec) Validate() error {
	c := s.Coordinate
	if c.Group.IsZero() || c.Artifact.IsZero() {
		return zerr.With(zerr.Wrap(ErrInvalidCoordinate, "empty group or artifact"), "input", c.Key())
	}
	if !c.HasVersion() {
		return zerr.With(zerr.Wrap(ErrMissingVersion, "dependency is not pinned"), "coordinate", c.Key())
	}
	return nil
}

// Excludes reports whether c is pruned by one of the spec's exclusions.
func (s DependencySpec) Excludes(c Coordinate) bool {
	for _, e := range s.Exclusions {
		if e.Matches(c) {
			return true
		}
	}
	return false
}

// ExclusionKeys returns the sorted, de-duplicated exclusion keys.
func (s DependencySpec) ExclusionKeys() []string {
	keys := make([]string, 0, len(s.Exclusions))
	for _, e := range s.Exclusions {
		keys = append(keys, e.Key())
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}
