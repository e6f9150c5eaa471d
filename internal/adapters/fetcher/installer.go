package fetcher

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Installer copies cached jars into a project library directory.
type Installer struct{}

// NewInstaller creates an Installer.
func NewInstaller() *Installer {
	return &Installer{}
}

// Install copies each artifact to libDir under its file name, replacing existing files.
func (i *Installer) Install(ctx context.Context, libDir string, artifacts []domain.FetchedArtifact) error {
	if err := os.MkdirAll(libDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create lib directory"), "path", libDir)
	}
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := filepath.Join(libDir, a.Coordinate.Filename())
		if err := copyFile(a.Path, dst); err != nil {
			return zerr.With(err, "coordinate", a.Coordinate.Key())
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // src is a cache path derived from a coordinate
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open cached artifact"), "path", src)
	}
	defer func() { _ = in.Close() }()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp file"), "path", dst)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy artifact"), "path", dst)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temp file"), "path", dst)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", dst)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to install artifact"), "path", dst)
	}
	return nil
}
