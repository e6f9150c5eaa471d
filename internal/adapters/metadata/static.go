// Package metadata implements dependency metadata sources.
package metadata

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Static is an in-memory metadata table. Entries are keyed either by the full coordinate
// key or by "group:artifact", which matches every version.
type Static struct {
	mu            sync.RWMutex
	deps          map[string][]domain.DependencySpec
	versions      map[string][]string
	unknownAsLeaf bool
}

// NewStatic creates an empty table that reports unknown coordinates as not found.
func NewStatic() *Static {
	return &Static{
		deps:     make(map[string][]domain.DependencySpec),
		versions: make(map[string][]string),
	}
}

// Set records the dependencies of key.
func (s *Static) Set(key string, deps ...domain.DependencySpec) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deps[key] = slices.Clone(deps)
	return s
}

// SetVersions records the published versions of group:artifact.
func (s *Static) SetVersions(group, artifact string, versions ...string) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions[group+":"+artifact] = slices.Clone(versions)
	return s
}

// TransitiveOf returns the recorded dependencies of c.
func (s *Static) TransitiveOf(_ context.Context, c domain.Coordinate) ([]domain.DependencySpec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if deps, ok := s.deps[c.Key()]; ok {
		return slices.Clone(deps), nil
	}
	if deps, ok := s.deps[c.ArtifactKey()]; ok {
		return slices.Clone(deps), nil
	}
	if s.unknownAsLeaf {
		return nil, nil
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrDependencyNotFound, "coordinate not in metadata table"), "coordinate", c.Key())
}

// Versions returns the recorded versions of group:artifact.
func (s *Static) Versions(_ context.Context, group, artifact string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions, ok := s.versions[group+":"+artifact]
	if !ok || len(versions) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoVersions, "artifact not in metadata table"), "artifact", group+":"+artifact)
	}
	return slices.Clone(versions), nil
}
