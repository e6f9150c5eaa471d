package metadata

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/jx/internal/adapters/remote"
	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

const mavenMetadataFile = "maven-metadata.xml"

// Maven reads dependency metadata from POM files in Maven layout repositories.
// Fetched files are kept in the cache directory next to the artifacts; offline,
// only cached files are consulted.
type Maven struct {
	repos    []domain.Repository
	client   *remote.Client
	cacheDir string
	offline  bool
}

// NewMaven creates a Maven source over the HTTP repositories in settings.
func NewMaven(settings domain.Settings, client *remote.Client) *Maven {
	repos := make([]domain.Repository, 0, len(settings.Repositories))
	for _, r := range settings.Repositories {
		if IsHTTPRepository(r) {
			repos = append(repos, r)
		}
	}
	return &Maven{
		repos:    repos,
		client:   client,
		cacheDir: settings.CacheDir,
		offline:  settings.Offline,
	}
}

// IsHTTPRepository reports whether r is served over HTTP(S).
func IsHTTPRepository(r domain.Repository) bool {
	return strings.HasPrefix(r.URL, "http://") || strings.HasPrefix(r.URL, "https://")
}

// TransitiveOf parses the POM of c.
func (m *Maven) TransitiveOf(ctx context.Context, c domain.Coordinate) ([]domain.DependencySpec, error) {
	pomCoord := c.WithClassifier("")
	path := pomCoord.RepositoryPath("pom")
	cached := domain.CachePath(m.cacheDir, pomCoord, filepath.Base(path))

	data, err := m.fetch(ctx, path, cached)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDependencyNotFound, "pom not found"), "coordinate", c.Key())
		}
		return nil, zerr.With(err, "coordinate", c.Key())
	}
	return parsePOM(data, pomCoord)
}

// Versions reads maven-metadata.xml from every repository and merges the versions.
func (m *Maven) Versions(ctx context.Context, group, artifact string) ([]string, error) {
	key := group + ":" + artifact
	path := strings.ReplaceAll(group, ".", "/") + "/" + artifact + "/" + mavenMetadataFile

	var all []string
	if m.offline {
		data, err := readCached(filepath.Join(m.cacheDir, group, artifact, mavenMetadataFile))
		if err == nil {
			if all, err = parseMavenMetadata(data); err != nil {
				return nil, zerr.With(err, "artifact", key)
			}
		}
	} else {
		for _, r := range m.repos {
			data, err := m.client.Get(ctx, remote.URL(r.URL, path))
			if errors.Is(err, domain.ErrArtifactNotFound) {
				continue
			}
			if err != nil {
				return nil, zerr.With(err, "artifact", key)
			}
			versions, err := parseMavenMetadata(data)
			if err != nil {
				return nil, zerr.With(err, "artifact", key)
			}
			all = append(all, versions...)
			if err := remote.WriteFile(filepath.Join(m.cacheDir, group, artifact, mavenMetadataFile), data); err != nil {
				return nil, err
			}
		}
	}

	if len(all) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoVersions, "no versions published"), "artifact", key)
	}
	return domain.SortVersions(all), nil
}

func (m *Maven) fetch(ctx context.Context, path, cached string) ([]byte, error) {
	data, err := readCached(cached)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if m.offline {
		return nil, zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "not cached and offline"), "path", cached)
	}

	for _, r := range m.repos {
		data, err := m.client.Get(ctx, remote.URL(r.URL, path))
		if errors.Is(err, domain.ErrArtifactNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := remote.WriteFile(cached, data); err != nil {
			return nil, err
		}
		return data, nil
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "not found in any repository"), "path", path)
}

func readCached(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // cache paths are derived from coordinates
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache"), "path", path)
	}
	return data, nil
}
