// Package fetcher downloads artifacts into the local cache and installs them into projects.
package fetcher

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/jx/internal/adapters/metadata"
	"go.trai.ch/jx/internal/adapters/remote"
	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Repository serves jars from the cache, downloading them from the first repository that has them.
type Repository struct {
	repos    []domain.Repository
	client   *remote.Client
	cacheDir string
	offline  bool
}

// NewRepository creates a Repository over the HTTP repositories in settings.
func NewRepository(settings domain.Settings, client *remote.Client) *Repository {
	repos := make([]domain.Repository, 0, len(settings.Repositories))
	for _, r := range settings.Repositories {
		if metadata.IsHTTPRepository(r) {
			repos = append(repos, r)
		}
	}
	return &Repository{
		repos:    repos,
		client:   client,
		cacheDir: settings.CacheDir,
		offline:  settings.Offline,
	}
}

// Fetch returns the cached jar of c.
func (r *Repository) Fetch(ctx context.Context, c domain.Coordinate) (domain.FetchedArtifact, error) {
	path := domain.CachePath(r.cacheDir, c, c.Filename())
	artifact := domain.FetchedArtifact{Coordinate: c, Path: path}
	rel := c.RepositoryPath("jar")

	if _, err := os.Stat(path); err == nil {
		checksum, size, err := remote.FileChecksum(path)
		if err != nil {
			return domain.FetchedArtifact{}, zerr.With(err, "coordinate", c.Key())
		}
		artifact.Checksum, artifact.Size, artifact.Cached = checksum, size, true
		if len(r.repos) > 0 {
			artifact.SourceURL = remote.URL(r.repos[0].URL, rel)
		}
		return artifact, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return domain.FetchedArtifact{}, zerr.With(zerr.Wrap(err, "failed to stat cached artifact"), "path", path)
	}

	if r.offline {
		return domain.FetchedArtifact{}, zerr.With(
			zerr.Wrap(domain.ErrArtifactNotFound, "artifact not cached and offline"), "coordinate", c.Key())
	}

	for _, repo := range r.repos {
		url := remote.URL(repo.URL, rel)
		checksum, size, err := r.client.Download(ctx, url, path)
		if errors.Is(err, domain.ErrArtifactNotFound) {
			continue
		}
		if err != nil {
			return domain.FetchedArtifact{}, zerr.With(err, "coordinate", c.Key())
		}
		artifact.Checksum, artifact.Size, artifact.SourceURL = checksum, size, url
		return artifact, nil
	}

	return domain.FetchedArtifact{}, zerr.With(
		zerr.Wrap(domain.ErrArtifactNotFound, "artifact not found in any repository"), "coordinate", c.Key())
}
