package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jx/internal/adapters/metadata"
	"go.trai.ch/jx/internal/adapters/remote"
	"go.trai.ch/jx/internal/adapters/repository"
	"go.trai.ch/jx/internal/core/domain"
)

func TestFactory_SampleRepository(t *testing.T) {
	settings := domain.DefaultSettings(t.TempDir())
	settings.Repositories = []domain.Repository{{Name: "sample", URL: metadata.SampleRepositoryURL}}
	settings.Offline = true

	f := repository.NewFactory(remote.NewClient())

	deps, err := f.Metadata(settings).TransitiveOf(context.Background(), domain.NewCoordinate("junit", "junit", "4.13.2"))
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "org.hamcrest:hamcrest-core:1.3", deps[0].Key())

	versions, err := f.Versions(settings).Versions(context.Background(), "junit", "junit")
	require.NoError(t, err)
	assert.Equal(t, []string{"4.12", "4.13.2"}, versions)

	_, err = f.Fetcher(settings).Fetch(context.Background(), domain.NewCoordinate("junit", "junit", "4.13.2"))
	require.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestFactory_NoRepositories(t *testing.T) {
	settings := domain.DefaultSettings(t.TempDir())
	settings.Repositories = nil

	_, err := repository.NewFactory(remote.NewClient()).Metadata(settings).
		TransitiveOf(context.Background(), domain.NewCoordinate("g", "a", "1"))
	require.ErrorIs(t, err, domain.ErrDependencyNotFound)
}
