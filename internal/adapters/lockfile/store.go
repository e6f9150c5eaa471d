// Package lockfile implements lock file persistence as TOML.
package lockfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.LockStore.
type Store struct {
	now func() time.Time
}

// NewStore creates a Store stamping lock files with time.Now.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates a Store stamping lock files with now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Load reads the lock file at path. A missing file yields a fresh lock file; an
// empty one is corrupt, since Save never writes one.
func (s *Store) Load(path string) (*domain.Lockfile, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewLockfile(s.now), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, corrupt(path, "lock file is empty")
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, corrupt(path, err.Error())
	}

	return s.fromDocument(path, &doc)
}

func (s *Store) fromDocument(path string, doc *document) (*domain.Lockfile, error) {
	if major, _, _ := strings.Cut(doc.FormatVersion, "."); major != "1" {
		return nil, zerr.With(corrupt(path, "unsupported format version"), "format_version", doc.FormatVersion)
	}

	l := domain.NewLockfile(s.now)
	l.FormatVersion = doc.FormatVersion
	for key, e := range doc.Dependencies {
		c, err := domain.ParseKey(key)
		if err != nil {
			return nil, zerr.With(corrupt(path, "invalid dependency key"), "key", key)
		}
		if c.Classifier == "" {
			c.Classifier = e.Classifier
		}
		scope, err := domain.ParseScope(e.Scope)
		if err != nil {
			return nil, zerr.With(corrupt(path, "invalid scope"), "key", key)
		}
		l.Entries[c.Key()] = domain.ResolvedDependency{
			Coordinate:   c,
			Scope:        scope,
			Checksum:     e.Checksum,
			SourceURL:    e.SourceURL,
			Size:         e.Size,
			Dependencies: slices.Compact(slices.Sorted(slices.Values(e.Dependencies))),
		}
	}

	l.Metadata = domain.LockMetadata{
		CreatedAt:         doc.Metadata.CreatedAt,
		UpdatedAt:         doc.Metadata.UpdatedAt,
		TotalDependencies: doc.Metadata.TotalDependencies,
		TotalSize:         doc.Metadata.TotalSize,
		InputsDigest:      doc.Metadata.InputsDigest,
	}
	return l, nil
}

func corrupt(path, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrCorruptLockfile, reason), "path", path)
}

// Save validates l and writes it to path atomically. A lock file with dangling edges is refused.
func (s *Store) Save(l *domain.Lockfile, path string) error {
	if err := l.Validate(); err != nil {
		return zerr.With(err, "path", path)
	}

	data, err := Encode(l)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode lock file"), "path", path)
	}

	return writeAtomic(filepath.Clean(path), data)
}

// Encode renders l as TOML. Keys and edge lists are sorted, so equal lock files encode identically.
func Encode(l *domain.Lockfile) ([]byte, error) {
	doc := document{
		FormatVersion: l.FormatVersion,
		Dependencies:  make(map[string]entry, len(l.Entries)),
		Metadata: metadata{
			CreatedAt:         l.Metadata.CreatedAt.UTC(),
			UpdatedAt:         l.Metadata.UpdatedAt.UTC(),
			TotalDependencies: l.Metadata.TotalDependencies,
			TotalSize:         l.Metadata.TotalSize,
			InputsDigest:      l.Metadata.InputsDigest,
		},
	}
	if doc.FormatVersion == "" {
		doc.FormatVersion = domain.LockFormatVersion
	}

	for key, dep := range l.Entries {
		deps := slices.Compact(slices.Sorted(slices.Values(dep.Dependencies)))
		if deps == nil {
			deps = []string{}
		}
		doc.Dependencies[key] = entry{
			Checksum:     dep.Checksum,
			SourceURL:    dep.SourceURL,
			Scope:        dep.Scope.String(),
			Classifier:   dep.Coordinate.Classifier,
			Size:         dep.Size,
			Dependencies: deps,
		}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for lock file"), "path", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary lock file"), "path", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write lock file"), "path", path)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to sync lock file"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close lock file"), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set lock file permissions"), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace lock file"), "path", path)
	}
	return nil
}
