// Package settings loads tool settings from layered YAML files.
package settings

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader. The user file below home is applied first,
// then the project file.
type Loader struct {
	home string
}

// NewLoader creates a Loader for the given home directory.
func NewLoader(home string) *Loader {
	return &Loader{home: home}
}

// Load returns the defaults overlaid with the user and project settings files.
func (l *Loader) Load(dir string) (domain.Settings, error) {
	s := domain.DefaultSettings(l.home)

	layers := []struct {
		path string
		base string
	}{
		{path: domain.UserSettingsPath(l.home), base: l.home},
		{path: domain.ProjectSettingsPath(dir), base: dir},
	}

	for _, layer := range layers {
		f, err := readFile(layer.path)
		if err != nil {
			return domain.Settings{}, err
		}
		if f == nil {
			continue
		}
		if err := l.apply(&s, f, layer.base); err != nil {
			return domain.Settings{}, zerr.With(err, "path", layer.path)
		}
	}

	return s, nil
}

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from home and project dirs
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, err.Error()), "path", path)
	}
	return &f, nil
}

func (l *Loader) apply(s *domain.Settings, f *File, base string) error {
	if len(f.Repositories) > 0 {
		repos := make([]domain.Repository, 0, len(f.Repositories))
		for i, r := range f.Repositories {
			if r.URL == "" {
				return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "repository without url"), "index", i)
			}
			name := r.Name
			if name == "" {
				name = r.URL
			}
			repos = append(repos, domain.Repository{Name: name, URL: r.URL})
		}
		s.Repositories = repos
	}
	if f.CacheDir != nil {
		s.CacheDir = l.expand(*f.CacheDir, base)
	}
	if f.LibDir != nil {
		s.LibDir = *f.LibDir
	}
	if f.LockFile != nil {
		s.LockFile = *f.LockFile
	}
	if f.LookupTimeout != nil {
		d, err := time.ParseDuration(*f.LookupTimeout)
		if err != nil || d <= 0 {
			return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "lookup_timeout must be a positive duration"), "value", *f.LookupTimeout)
		}
		s.LookupTimeout = d
	}
	if f.Concurrency != nil {
		if *f.Concurrency < 1 {
			return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "concurrency must be at least 1"), "value", *f.Concurrency)
		}
		s.Concurrency = *f.Concurrency
	}
	if f.Offline != nil {
		s.Offline = *f.Offline
	}
	return nil
}

// expand resolves "~/" against home and relative paths against base.
func (l *Loader) expand(path, base string) string {
	if path == "~" {
		return l.home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(l.home, rest)
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
