// Package config implements project configuration adapters for jx.toml, pom.xml and build.gradle.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func readProjectFile(dir, name string) ([]byte, string, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path) //nolint:gosec // path is the project file inside a user supplied dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, path, zerr.With(zerr.Wrap(domain.ErrNoProjectConfig, "project file does not exist"), "path", path)
		}
		return nil, path, zerr.With(zerr.Wrap(err, "failed to read project file"), "path", path)
	}
	return data, path, nil
}

func writeProjectFile(path string, data []byte) error {
	info, err := os.Stat(path)
	mode := os.FileMode(domain.FilePerm)
	if err == nil {
		mode = info.Mode().Perm()
	}
	//nolint:gosec // path is the project file inside a user supplied dir
	if err := os.WriteFile(path, data, mode); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write project file"), "path", path)
	}
	return nil
}

// createProjectFiles writes new files into dir, refusing to replace any existing one.
// files holds alternating name and content entries.
func createProjectFiles(dir string, files ...string) error {
	for i := 0; i < len(files); i += 2 {
		if path := filepath.Join(dir, files[i]); exists(path) {
			return zerr.With(zerr.Wrap(domain.ErrProjectExists, "project file already exists"), "path", path)
		}
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create project directory"), "dir", dir)
	}
	for i := 0; i < len(files); i += 2 {
		path := filepath.Join(dir, files[i])
		//nolint:gosec // path is the project file inside a user supplied dir
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				return zerr.With(zerr.Wrap(domain.ErrProjectExists, "project file already exists"), "path", path)
			}
			return zerr.With(zerr.Wrap(err, "failed to create project file"), "path", path)
		}
		_, err = f.WriteString(files[i+1])
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write project file"), "path", path)
		}
	}
	return nil
}

// parseDeclared parses a coordinate as declared in a build file: "g:a[:v[:classifier]]".
func parseDeclared(s string) (domain.Coordinate, error) {
	if c, err := domain.ParseCoordinate(s); err == nil {
		return c, nil
	}
	return domain.ParseKey(s)
}
