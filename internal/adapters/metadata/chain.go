package metadata

import (
	"context"
	"errors"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/jx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Chain asks each source in turn. A source that does not know a coordinate is skipped;
// any other failure is returned.
type Chain struct {
	sources []ports.MetadataSource
}

// NewChain creates a Chain over sources, asked in order.
func NewChain(sources ...ports.MetadataSource) *Chain {
	return &Chain{sources: sources}
}

// TransitiveOf returns the answer of the first source that knows c.
func (ch *Chain) TransitiveOf(ctx context.Context, c domain.Coordinate) ([]domain.DependencySpec, error) {
	for _, s := range ch.sources {
		deps, err := s.TransitiveOf(ctx, c)
		if err == nil {
			return deps, nil
		}
		if !notFound(err) {
			return nil, err
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrDependencyNotFound, "no repository knows the coordinate"), "coordinate", c.Key())
}

// Versions merges the versions reported by every source that lists versions.
func (ch *Chain) Versions(ctx context.Context, group, artifact string) ([]string, error) {
	var all []string
	for _, s := range ch.sources {
		lister, ok := s.(ports.VersionLister)
		if !ok {
			continue
		}
		versions, err := lister.Versions(ctx, group, artifact)
		if err != nil {
			if notFound(err) || errors.Is(err, domain.ErrNoVersions) {
				continue
			}
			return nil, err
		}
		all = append(all, versions...)
	}
	if len(all) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoVersions, "no repository lists the artifact"), "artifact", group+":"+artifact)
	}
	return domain.SortVersions(all), nil
}

func notFound(err error) bool {
	return errors.Is(err, domain.ErrDependencyNotFound) || errors.Is(err, domain.ErrArtifactNotFound)
}
