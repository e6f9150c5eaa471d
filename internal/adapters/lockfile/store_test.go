package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jx/internal/adapters/lockfile"
	"go.trai.ch/jx/internal/core/domain"
)

var fixed = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func clock() time.Time { return fixed }

func sampleLock(t *testing.T) *domain.Lockfile {
	t.Helper()

	l := domain.NewLockfile(clock)
	app, err := domain.ParseKey("org.example:app:1.0")
	require.NoError(t, err)
	lib, err := domain.ParseKey("org.example:lib:2.0")
	require.NoError(t, err)
	src, err := domain.ParseKey("org.example:lib:2.0:sources")
	require.NoError(t, err)

	l.Upsert(domain.ResolvedDependency{
		Coordinate:   app,
		Scope:        domain.ScopeCompile,
		Checksum:     "sha256:aaaa",
		SourceURL:    "https://repo1.maven.org/maven2/org/example/app/1.0/app-1.0.jar",
		Size:         1234,
		Dependencies: []string{"org.example:lib:2.0:sources", "org.example:lib:2.0"},
	})
	l.Upsert(domain.ResolvedDependency{
		Coordinate: lib,
		Scope:      domain.ScopeRuntime,
		Checksum:   "sha256:bbbb",
		Size:       10,
	})
	l.Upsert(domain.ResolvedDependency{
		Coordinate: src,
		Scope:      domain.ScopeCompile,
		Checksum:   "sha256:cccc",
	})
	l.SetInputsDigest("deadbeef")
	return l
}

func TestStore_RoundTripByteIdentical(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first", domain.LockFileName)
	second := filepath.Join(dir, "second", domain.LockFileName)
	store := lockfile.NewStoreWithClock(clock)

	require.NoError(t, store.Save(sampleLock(t), first))

	loaded, err := store.Load(first)
	require.NoError(t, err)
	require.NoError(t, store.Save(loaded, second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))

	// Re-saving in place is stable as well.
	require.NoError(t, store.Save(loaded, first))
	c, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(c))
}

func TestStore_LoadRestoresEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	store := lockfile.NewStoreWithClock(clock)
	require.NoError(t, store.Save(sampleLock(t), path))

	l, err := store.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"org.example:app:1.0", "org.example:lib:2.0", "org.example:lib:2.0:sources"}, l.Keys())

	app := l.Entries["org.example:app:1.0"]
	assert.Equal(t, domain.ScopeCompile, app.Scope)
	assert.Equal(t, int64(1234), app.Size)
	assert.Equal(t, []string{"org.example:lib:2.0", "org.example:lib:2.0:sources"}, app.Dependencies)

	src := l.Entries["org.example:lib:2.0:sources"]
	assert.Equal(t, "sources", src.Coordinate.Classifier)
	assert.Equal(t, domain.ScopeRuntime, l.Entries["org.example:lib:2.0"].Scope)

	assert.Equal(t, 3, l.Metadata.TotalDependencies)
	assert.Equal(t, int64(1244), l.Metadata.TotalSize)
	assert.Equal(t, "deadbeef", l.Metadata.InputsDigest)
	assert.True(t, fixed.Equal(l.Metadata.CreatedAt))
}

func TestStore_Format(t *testing.T) {
	data, err := lockfile.Encode(sampleLock(t))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `format_version = "1.0"`)
	assert.Contains(t, out, `[dependencies."org.example:app:1.0"]`)
	assert.Contains(t, out, `dependencies = ["org.example:lib:2.0", "org.example:lib:2.0:sources"]`)
	assert.Contains(t, out, `classifier = "sources"`)
	assert.Contains(t, out, `scope = "runtime"`)
	assert.Contains(t, out, `[metadata]`)
	assert.Contains(t, out, `total_dependencies = 3`)
	assert.Contains(t, out, `created_at = 2026-01-01T00:00:00Z`)
}

func TestStore_LoadMissing(t *testing.T) {
	store := lockfile.NewStoreWithClock(clock)

	l, err := store.Load(filepath.Join(t.TempDir(), "missing.lock"))
	require.NoError(t, err)
	assert.Empty(t, l.Entries)
	assert.Equal(t, domain.LockFormatVersion, l.FormatVersion)
}

func TestStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "whitespace only", content: "  \n\t\n"},
		{name: "not toml", content: "this is [not valid toml"},
		{name: "bad key", content: "format_version = \"1.0\"\n[dependencies.\"nope\"]\nscope = \"compile\"\n"},
		{name: "bad scope", content: "format_version = \"1.0\"\n[dependencies.\"g:a:1.0\"]\nscope = \"weird\"\n"},
		{name: "future format", content: "format_version = \"2.0\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), domain.LockFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			l, err := lockfile.NewStore().Load(path)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, domain.ErrCorruptLockfile)
		})
	}
}

func TestStore_SaveRefusesDanglingEdges(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	l := domain.NewLockfile(clock)
	c, err := domain.ParseKey("g:a:1.0")
	require.NoError(t, err)
	l.Upsert(domain.ResolvedDependency{Coordinate: c, Dependencies: []string{"g:missing:1.0"}})

	err = lockfile.NewStore().Save(l, path)
	require.ErrorIs(t, err, domain.ErrDanglingEdge)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.LockFileName)
	require.NoError(t, lockfile.NewStoreWithClock(clock).Save(sampleLock(t), path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.LockFileName, entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}
