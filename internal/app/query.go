package app

import (
	"context"
	"errors"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Lockfile returns the current lock file of the project.
func (a *App) Lockfile(_ context.Context, opts ProjectOptions) (*domain.Lockfile, error) {
	p, err := a.project(opts)
	if err != nil {
		return nil, err
	}
	return a.loadLock(p)
}

// Tree returns the dependency forest of the lock file. Dangling edges are returned as warnings.
func (a *App) Tree(ctx context.Context, opts ProjectOptions) ([]*domain.TreeNode, []error, error) {
	lock, err := a.Lockfile(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	roots, warnings := lock.DependencyTree()
	for _, w := range warnings {
		a.logger.Warn("skipping dependency edge", "error", w)
	}
	return roots, warnings, nil
}

// Order resolves the declared dependencies and returns their keys with dependencies first.
// The lock file is not modified.
func (a *App) Order(ctx context.Context, opts ProjectOptions) ([]string, error) {
	p, err := a.project(opts)
	if err != nil {
		return nil, err
	}
	_, specs, err := a.readSpecs(p.dir)
	if err != nil {
		return nil, err
	}

	rctx, vertex := a.telemetry.Record(ctx, "resolve")
	_, err = p.resolver.Resolve(rctx, specs)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve dependencies")
	}

	order, _ := p.resolver.ResolutionOrder()
	return order, nil
}

// Classpath returns the library paths of every locked jar in resolution order.
func (a *App) Classpath(_ context.Context, opts ProjectOptions) ([]string, error) {
	p, err := a.project(opts)
	if err != nil {
		return nil, err
	}
	lock, err := a.loadLock(p)
	if err != nil {
		return nil, err
	}
	return lock.Classpath(p.libPath()), nil
}

// VerifyReport lists the problems found by Verify.
type VerifyReport struct {
	Checked    int
	Missing    []string
	Mismatched []string
	Dangling   []error

	// OutOfDate reports that the declared dependencies changed since the lock file was written.
	OutOfDate bool
}

// OK reports whether no problem was found.
func (r *VerifyReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Mismatched) == 0 && len(r.Dangling) == 0 && !r.OutOfDate
}

// Verify checks the lock file for dangling edges, compares cached jars with their recorded
// checksums and reports whether the declared dependencies still match. Nothing is downloaded.
func (a *App) Verify(ctx context.Context, opts ProjectOptions) (*VerifyReport, error) {
	offline := opts
	offline.Offline = true
	p, err := a.project(offline)
	if err != nil {
		return nil, err
	}
	lock, err := a.loadLock(p)
	if err != nil {
		return nil, err
	}

	report := &VerifyReport{Dangling: lock.DanglingEdges()}

	if _, specs, err := a.readSpecs(p.dir); err == nil {
		report.OutOfDate = lock.Metadata.InputsDigest != domain.SpecsDigest(specs)
	} else if !errors.Is(err, domain.ErrNoProjectConfig) {
		return nil, err
	}

	for _, dep := range lock.Dependencies() {
		report.Checked++
		artifact, err := p.fetcher.Fetch(ctx, dep.Coordinate)
		switch {
		case errors.Is(err, domain.ErrArtifactNotFound):
			report.Missing = append(report.Missing, dep.Key())
		case err != nil:
			return nil, err
		case dep.Checksum != "" && artifact.Checksum != dep.Checksum:
			a.logger.Warn("checksum mismatch", "dependency", dep.Key(),
				"expected", dep.Checksum, "actual", artifact.Checksum)
			report.Mismatched = append(report.Mismatched, dep.Key())
		}
	}
	return report, nil
}
