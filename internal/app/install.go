package app

import (
	"context"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// InstallOptions configures Install.
type InstallOptions struct {
	ProjectOptions

	// Frozen installs exactly what the lock file holds and fails when the declared
	// dependencies no longer match it.
	Frozen bool

	// Force re-resolves even when the lock file matches the declared dependencies.
	Force bool
}

// InstallReport summarizes an Install run.
type InstallReport struct {
	LockPath string
	LibDir   string

	// UpToDate reports that the lock file already matched the declared dependencies.
	UpToDate bool

	Resolved   int
	Downloaded int
	Added      []string
	Removed    []string
	Conflicts  []domain.VersionConflict
}

// Install resolves the declared dependencies, records them in the lock file and copies
// their jars into the project library directory.
func (a *App) Install(ctx context.Context, opts InstallOptions) (*InstallReport, error) {
	p, err := a.project(opts.ProjectOptions)
	if err != nil {
		return nil, err
	}
	_, specs, err := a.readSpecs(p.dir)
	if err != nil {
		return nil, err
	}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	lock, err := a.loadLock(p)
	if err != nil {
		return nil, err
	}

	report := &InstallReport{LockPath: p.lockPath(), LibDir: p.libPath()}
	digest := domain.SpecsDigest(specs)
	current := lock.Metadata.InputsDigest == digest && lock.Validate() == nil

	switch {
	case opts.Frozen:
		if !current {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrLockfileOutOfDate, "declared dependencies changed since the lock file was written"),
				"path", p.lockPath(),
			)
		}
		report.UpToDate = true
	case current && !opts.Force:
		report.UpToDate = true
	default:
		if err := a.relock(ctx, p, specs, lock, report); err != nil {
			return nil, err
		}
		lock.SetInputsDigest(digest)
	}

	artifacts, downloaded, err := a.fetchLocked(ctx, p, lock)
	if err != nil {
		return nil, err
	}
	report.Downloaded = downloaded
	report.Resolved = len(lock.Entries)

	if !opts.Frozen {
		if err := a.store.Save(lock, p.lockPath()); err != nil {
			return nil, zerr.Wrap(err, "failed to save lock file")
		}
	}

	if err := a.installer.Install(ctx, p.libPath(), artifacts); err != nil {
		return nil, zerr.Wrap(err, "failed to install artifacts")
	}

	a.logger.Info("dependencies installed",
		"resolved", report.Resolved, "downloaded", report.Downloaded, "lib", report.LibDir)
	return report, nil
}

// relock resolves specs and replaces the lock file entries with the result.
func (a *App) relock(
	ctx context.Context,
	p *project,
	specs []domain.DependencySpec,
	lock *domain.Lockfile,
	report *InstallReport,
) error {
	rctx, vertex := a.telemetry.Record(ctx, "resolve")
	resolved, err := p.resolver.Resolve(rctx, specs)
	vertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve dependencies")
	}

	coords := make([]domain.Coordinate, 0, len(resolved))
	keep := make(map[string]struct{}, len(resolved))
	for _, dep := range resolved {
		coords = append(coords, dep.Coordinate)
		keep[dep.Key()] = struct{}{}

		if prev, ok := lock.Get(dep.Coordinate); ok {
			dep.Checksum, dep.SourceURL, dep.Size = prev.Checksum, prev.SourceURL, prev.Size
		} else {
			report.Added = append(report.Added, dep.Key())
		}
		lock.Upsert(dep)
	}
	report.Removed = lock.Retain(keep)

	report.Conflicts = domain.DetectConflicts(coords)
	for _, c := range report.Conflicts {
		a.logger.Warn("version conflict", "artifact", c.ArtifactKey(), "versions", strings.Join(c.Versions, ", "))
	}
	return nil
}

// fetchLocked makes every locked artifact available in the cache, recording checksums of
// new entries and rejecting cached files that differ from a recorded checksum. Artifacts
// are returned in resolution order.
func (a *App) fetchLocked(
	ctx context.Context,
	p *project,
	lock *domain.Lockfile,
) ([]domain.FetchedArtifact, int, error) {
	order, _ := lock.ResolutionOrder()
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		seen[k] = true
	}
	// Members of cycles are not part of the order but still need their jars.
	for _, k := range slices.Sorted(maps.Keys(lock.Entries)) {
		if !seen[k] {
			order = append(order, k)
		}
	}

	fetched := make([]domain.FetchedArtifact, len(order))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.settings.Concurrency, 1))
	for i, key := range order {
		dep := lock.Entries[key]
		g.Go(func() error {
			fctx, vertex := a.telemetry.Record(gctx, "fetch "+key)
			artifact, err := p.fetcher.Fetch(fctx, dep.Coordinate)
			if err != nil {
				vertex.Complete(err)
				return err
			}
			if artifact.Cached {
				vertex.Cached()
			}
			vertex.Complete(nil)
			fetched[i] = artifact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, zerr.Wrap(err, "failed to fetch artifacts")
	}

	downloaded := 0
	for _, artifact := range fetched {
		if !artifact.Cached {
			downloaded++
		}
		key := artifact.Coordinate.Key()
		dep := lock.Entries[key]
		if dep.Checksum != "" && dep.Checksum != artifact.Checksum {
			err := zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "artifact differs from the lock file"), "coordinate", key)
			err = zerr.With(err, "expected", dep.Checksum)
			return nil, 0, zerr.With(err, "actual", artifact.Checksum)
		}
		if dep.Checksum == "" {
			if err := lock.UpdateChecksum(artifact.Coordinate, artifact.Checksum); err != nil {
				return nil, 0, err
			}
		}
		if dep.SourceURL == "" && artifact.SourceURL != "" {
			if err := lock.UpdateSourceURL(artifact.Coordinate, artifact.SourceURL); err != nil {
				return nil, 0, err
			}
		}
		if dep.Size == 0 && artifact.Size > 0 {
			dep, _ = lock.Get(artifact.Coordinate)
			dep.Size = artifact.Size
			lock.Upsert(dep)
		}
	}
	return fetched, downloaded, nil
}
