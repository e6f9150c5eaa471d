package ports

import (
	"context"

	"go.trai.ch/jx/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks

// MetadataSource answers which dependencies a coordinate declares.
type MetadataSource interface {
	// TransitiveOf returns the direct dependencies declared by c.
	// An empty result is a valid answer meaning c has no dependencies.
	TransitiveOf(ctx context.Context, c domain.Coordinate) ([]domain.DependencySpec, error)
}

// VersionLister lists the published versions of an artifact.
type VersionLister interface {
	// Versions returns every known version of group:artifact in no particular order.
	Versions(ctx context.Context, group, artifact string) ([]string, error)
}
