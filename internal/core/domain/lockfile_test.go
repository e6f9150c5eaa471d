package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jx/internal/core/domain"
)

func fixedClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[min(i, len(ts)-1)]
		i++
		return t
	}
}

func locked(key string, size int64, deps ...string) domain.ResolvedDependency {
	c, err := domain.ParseKey(key)
	if err != nil {
		panic(err)
	}
	return domain.ResolvedDependency{
		Coordinate:   c,
		Scope:        domain.ScopeCompile,
		Checksum:     "sha256:" + key,
		Size:         size,
		Dependencies: deps,
	}
}

func TestLockfile_New(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := domain.NewLockfile(fixedClock(created))

	assert.Equal(t, domain.LockFormatVersion, l.FormatVersion)
	assert.Empty(t, l.Entries)
	assert.Equal(t, created, l.Metadata.CreatedAt)
	assert.Equal(t, created, l.Metadata.UpdatedAt)
}

func TestLockfile_UpsertRemove(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	l := domain.NewLockfile(fixedClock(created, updated))

	l.Upsert(locked("g:a:1.0", 100, "g:c:1.0", "g:b:1.0", "g:b:1.0"))
	l.Upsert(locked("g:b:1.0", 50))

	dep, ok := l.Get(domain.NewCoordinate("g", "a", "1.0"))
	require.True(t, ok)
	assert.Equal(t, []string{"g:b:1.0", "g:c:1.0"}, dep.Dependencies)
	assert.Equal(t, 2, l.Metadata.TotalDependencies)
	assert.Equal(t, int64(150), l.Metadata.TotalSize)
	assert.Equal(t, created, l.Metadata.CreatedAt)
	assert.Equal(t, updated, l.Metadata.UpdatedAt)

	assert.True(t, l.Remove(domain.NewCoordinate("g", "b", "1.0")))
	assert.False(t, l.Remove(domain.NewCoordinate("g", "b", "1.0")))
	assert.False(t, l.Contains(domain.NewCoordinate("g", "b", "1.0")))
	assert.Equal(t, 1, l.Metadata.TotalDependencies)
	assert.Equal(t, int64(100), l.Metadata.TotalSize)
}

func TestLockfile_UpsertUnchangedKeepsTimestamp(t *testing.T) {
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := first.Add(24 * time.Hour)
	l := domain.NewLockfile(fixedClock(first, first, later))

	l.Upsert(locked("g:a:1.0", 10))
	l.Upsert(locked("g:a:1.0", 10))

	assert.Equal(t, first, l.Metadata.UpdatedAt)
}

func TestLockfile_UpdateChecksum(t *testing.T) {
	l := domain.NewLockfile(nil)
	c := domain.NewCoordinate("g", "a", "1.0")
	l.Upsert(locked("g:a:1.0", 10))

	require.NoError(t, l.UpdateChecksum(c, "sha256:new"))
	require.NoError(t, l.UpdateSourceURL(c, "https://example.test/a.jar"))
	dep, _ := l.Get(c)
	assert.Equal(t, "sha256:new", dep.Checksum)
	assert.Equal(t, "https://example.test/a.jar", dep.SourceURL)

	err := l.UpdateChecksum(domain.NewCoordinate("g", "missing", "1.0"), "x")
	assert.ErrorIs(t, err, domain.ErrDependencyNotFound)
}

func TestLockfile_Validate(t *testing.T) {
	l := domain.NewLockfile(nil)
	l.Upsert(locked("g:a:1.0", 0, "g:b:1.0"))

	err := l.Validate()
	require.ErrorIs(t, err, domain.ErrDanglingEdge)

	l.Upsert(locked("g:b:1.0", 0))
	assert.NoError(t, l.Validate())
}

func TestLockfile_Retain(t *testing.T) {
	l := domain.NewLockfile(nil)
	l.Upsert(locked("g:a:1.0", 1))
	l.Upsert(locked("g:b:1.0", 2))
	l.Upsert(locked("g:c:1.0", 3))

	removed := l.Retain(map[string]struct{}{"g:b:1.0": {}})
	assert.Equal(t, []string{"g:a:1.0", "g:c:1.0"}, removed)
	assert.Equal(t, []string{"g:b:1.0"}, l.Keys())
	assert.Equal(t, int64(2), l.Metadata.TotalSize)
}

func TestLockfile_Classpath(t *testing.T) {
	l := domain.NewLockfile(nil)
	l.Upsert(locked("g:app:1.0", 0, "g:lib:2.0"))
	l.Upsert(locked("g:lib:2.0", 0))

	assert.Equal(t, []string{
		filepath.Join("lib", "lib-2.0.jar"),
		filepath.Join("lib", "app-1.0.jar"),
	}, l.Classpath("lib"))
}

func TestLockfile_DependencyTree(t *testing.T) {
	l := domain.NewLockfile(nil)
	// app -> web -> core, app -> core, log is standalone, x <-> y is a cycle.
	l.Upsert(locked("g:app:1.0", 0, "g:web:1.0", "g:core:1.0"))
	l.Upsert(locked("g:web:1.0", 0, "g:core:1.0", "g:gone:1.0"))
	l.Upsert(locked("g:core:1.0", 0))
	l.Upsert(locked("g:log:1.0", 0))
	l.Upsert(locked("g:x:1.0", 0, "g:y:1.0"))
	l.Upsert(locked("g:y:1.0", 0, "g:x:1.0"))

	roots, warnings := l.DependencyTree()

	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], domain.ErrDanglingEdge)

	keys := make([]string, 0, len(roots))
	for _, r := range roots {
		keys = append(keys, r.Key())
	}
	assert.Equal(t, []string{"g:app:1.0", "g:log:1.0", "g:x:1.0"}, keys)

	app := roots[0]
	require.Len(t, app.Children, 2)
	assert.Equal(t, "g:core:1.0", app.Children[0].Key())
	assert.False(t, app.Children[0].Repeated)

	web := app.Children[1]
	assert.Equal(t, "g:web:1.0", web.Key())
	require.Len(t, web.Children, 1)
	assert.True(t, web.Children[0].Repeated)
	assert.Empty(t, web.Children[0].Children)

	x := roots[2]
	require.Len(t, x.Children, 1)
	y := x.Children[0]
	require.Len(t, y.Children, 1)
	assert.True(t, y.Children[0].Repeated)
}
