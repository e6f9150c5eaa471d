package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jx/internal/adapters/fetcher"
	"go.trai.ch/jx/internal/adapters/remote"
	"go.trai.ch/jx/internal/core/domain"
)

func newServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/repo/org/example/lib/1.0/lib-1.0.jar" {
			_, _ = w.Write([]byte("jar-bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func settingsFor(t *testing.T, urls ...string) domain.Settings {
	t.Helper()
	s := domain.DefaultSettings(t.TempDir())
	s.CacheDir = t.TempDir()
	s.Repositories = nil
	for _, u := range urls {
		s.Repositories = append(s.Repositories, domain.Repository{Name: u, URL: u})
	}
	return s
}

func TestRepository_FetchDownloadsThenCaches(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	settings := settingsFor(t, srv.URL+"/other/", srv.URL+"/repo/")
	r := fetcher.NewRepository(settings, remote.NewClient())

	c := domain.NewCoordinate("org.example", "lib", "1.0")
	got, err := r.Fetch(context.Background(), c)
	require.NoError(t, err)
	assert.False(t, got.Cached)
	assert.Equal(t, srv.URL+"/repo/org/example/lib/1.0/lib-1.0.jar", got.SourceURL)
	assert.Equal(t, filepath.Join(settings.CacheDir, "org.example", "lib", "lib-1.0.jar"), got.Path)
	assert.Equal(t, int64(len("jar-bytes")), got.Size)
	assert.Contains(t, got.Checksum, remote.ChecksumPrefix)
	assert.Equal(t, int32(2), hits.Load())

	again, err := r.Fetch(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, got.Checksum, again.Checksum)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRepository_NotFound(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	r := fetcher.NewRepository(settingsFor(t, srv.URL+"/repo/"), remote.NewClient())

	_, err := r.Fetch(context.Background(), domain.NewCoordinate("org.example", "missing", "1.0"))
	require.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestRepository_OfflineCacheMiss(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	settings := settingsFor(t, srv.URL+"/repo/")
	settings.Offline = true

	_, err := fetcher.NewRepository(settings, remote.NewClient()).
		Fetch(context.Background(), domain.NewCoordinate("org.example", "lib", "1.0"))
	require.ErrorIs(t, err, domain.ErrArtifactNotFound)
	assert.Equal(t, int32(0), hits.Load())
}

func TestInstaller_Install(t *testing.T) {
	cache := t.TempDir()
	src := filepath.Join(cache, "lib-1.0.jar")
	require.NoError(t, os.WriteFile(src, []byte("jar"), domain.FilePerm))

	libDir := filepath.Join(t.TempDir(), domain.LibDirName)
	artifacts := []domain.FetchedArtifact{{
		Coordinate: domain.NewCoordinate("org.example", "lib", "1.0"),
		Path:       src,
	}}

	inst := fetcher.NewInstaller()
	require.NoError(t, inst.Install(context.Background(), libDir, artifacts))
	require.NoError(t, inst.Install(context.Background(), libDir, artifacts))

	data, err := os.ReadFile(filepath.Join(libDir, "lib-1.0.jar"))
	require.NoError(t, err)
	assert.Equal(t, "jar", string(data))

	entries, err := os.ReadDir(libDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInstaller_MissingSource(t *testing.T) {
	err := fetcher.NewInstaller().Install(context.Background(), t.TempDir(), []domain.FetchedArtifact{{
		Coordinate: domain.NewCoordinate("g", "a", "1"),
		Path:       filepath.Join(t.TempDir(), "nope.jar"),
	}})
	require.Error(t, err)
}
