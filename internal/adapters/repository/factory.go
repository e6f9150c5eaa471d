// Package repository builds the repository backed collaborators for a Settings value.
package repository

import (
	"go.trai.ch/jx/internal/adapters/fetcher"
	"go.trai.ch/jx/internal/adapters/metadata"
	"go.trai.ch/jx/internal/adapters/remote"
	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/jx/internal/core/ports"
)

// Factory implements ports.RepositoryFactory.
type Factory struct {
	client *remote.Client
}

// NewFactory creates a Factory sharing client between all collaborators it builds.
func NewFactory(client *remote.Client) *Factory {
	return &Factory{client: client}
}

// Metadata returns a chain with one source per configured repository, in order.
func (f *Factory) Metadata(settings domain.Settings) ports.MetadataSource {
	return f.chain(settings)
}

// Versions returns the version lister over the configured repositories.
func (f *Factory) Versions(settings domain.Settings) ports.VersionLister {
	return f.chain(settings)
}

// Fetcher returns the artifact fetcher over the configured HTTP repositories.
func (f *Factory) Fetcher(settings domain.Settings) ports.ArtifactFetcher {
	return fetcher.NewRepository(settings, f.client)
}

func (f *Factory) chain(settings domain.Settings) *metadata.Chain {
	sources := make([]ports.MetadataSource, 0, len(settings.Repositories))
	for _, r := range settings.Repositories {
		switch {
		case r.URL == metadata.SampleRepositoryURL:
			sources = append(sources, metadata.SampleTable())
		case metadata.IsHTTPRepository(r):
			single := settings
			single.Repositories = []domain.Repository{r}
			sources = append(sources, metadata.NewMaven(single, f.client))
		}
	}
	return metadata.NewChain(sources...)
}
