package ports

import (
	"context"

	"go.trai.ch/jx/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks

// ArtifactFetcher makes artifact files available locally.
type ArtifactFetcher interface {
	// Fetch returns the cached jar of c, downloading it first when necessary.
	Fetch(ctx context.Context, c domain.Coordinate) (domain.FetchedArtifact, error)
}

// Installer copies fetched artifacts into a project library directory.
type Installer interface {
	// Install copies every artifact into libDir, named by its coordinate's file name.
	Install(ctx context.Context, libDir string, artifacts []domain.FetchedArtifact) error
}

// RepositoryFactory builds the repository backed collaborators for a settings value.
type RepositoryFactory interface {
	Metadata(settings domain.Settings) MetadataSource
	Versions(settings domain.Settings) VersionLister
	Fetcher(settings domain.Settings) ArtifactFetcher
}
