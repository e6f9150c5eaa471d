package app

import (
	"context"
	"slices"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

// AddOptions configures Add.
type AddOptions struct {
	ProjectOptions

	// Coordinate is "group:artifact[:version]". Without a version the latest release is used.
	Coordinate string

	// Scope defaults to compile.
	Scope string
}

// Add declares a dependency, replacing an existing declaration of the same artifact, and installs.
func (a *App) Add(ctx context.Context, opts AddOptions) (*InstallReport, error) {
	c, err := domain.ParseCoordinate(opts.Coordinate)
	if err != nil {
		return nil, err
	}
	scope, err := domain.ParseScope(opts.Scope)
	if err != nil {
		return nil, err
	}

	p, err := a.project(opts.ProjectOptions)
	if err != nil {
		return nil, err
	}
	if !c.HasVersion() {
		if c, err = a.pinLatest(ctx, p, c); err != nil {
			return nil, err
		}
	}

	adapter, specs, err := a.readSpecs(p.dir)
	if err != nil {
		return nil, err
	}

	spec := domain.NewDependencySpec(c)
	spec.Scope = scope
	if i := slices.IndexFunc(specs, func(s domain.DependencySpec) bool { return declares(s, c) }); i >= 0 {
		spec.Exclusions = specs[i].Exclusions
		spec.Optional = specs[i].Optional
		specs[i] = spec
	} else {
		specs = append(specs, spec)
	}

	if err := adapter.WriteSpecs(p.dir, specs); err != nil {
		return nil, zerr.Wrap(err, "failed to write dependencies")
	}
	a.logger.Info("dependency added", "dependency", c.Key(), "scope", scope.String(), "file", adapter.Name())

	return a.Install(ctx, InstallOptions{ProjectOptions: opts.ProjectOptions})
}

// RemoveOptions configures Remove.
type RemoveOptions struct {
	ProjectOptions

	// Coordinate is "group:artifact[:version]"; without a version every version is removed.
	Coordinate string
}

// Remove drops a declared dependency and installs, pruning entries nothing depends on anymore.
func (a *App) Remove(ctx context.Context, opts RemoveOptions) (*InstallReport, error) {
	c, err := domain.ParseCoordinate(opts.Coordinate)
	if err != nil {
		return nil, err
	}
	p, err := a.project(opts.ProjectOptions)
	if err != nil {
		return nil, err
	}
	adapter, specs, err := a.readSpecs(p.dir)
	if err != nil {
		return nil, err
	}

	kept := slices.DeleteFunc(slices.Clone(specs), func(s domain.DependencySpec) bool {
		return s.Coordinate.SameArtifact(c) && (!c.HasVersion() || s.Coordinate.Version == c.Version)
	})
	if len(kept) == len(specs) {
		return nil, notDeclared(opts.Coordinate, adapter.Name())
	}

	if err := adapter.WriteSpecs(p.dir, kept); err != nil {
		return nil, zerr.Wrap(err, "failed to write dependencies")
	}
	a.logger.Info("dependency removed", "dependency", opts.Coordinate, "file", adapter.Name())

	return a.Install(ctx, InstallOptions{ProjectOptions: opts.ProjectOptions})
}

// UpdateOptions configures Update.
type UpdateOptions struct {
	ProjectOptions

	// Coordinate limits the update to one "group:artifact"; empty updates everything.
	Coordinate string

	// Latest re-pins the selected declarations to their latest release.
	Latest bool
}

// Update forgets cached metadata, optionally re-pins declarations to their latest release,
// and re-resolves the project.
func (a *App) Update(ctx context.Context, opts UpdateOptions) (*InstallReport, error) {
	var only *domain.Coordinate
	if opts.Coordinate != "" {
		c, err := domain.ParseCoordinate(opts.Coordinate)
		if err != nil {
			return nil, err
		}
		only = &c
	}

	p, err := a.project(opts.ProjectOptions)
	if err != nil {
		return nil, err
	}
	p.resolver.Reset()

	adapter, specs, err := a.readSpecs(p.dir)
	if err != nil {
		return nil, err
	}
	if only != nil && !slices.ContainsFunc(specs, func(s domain.DependencySpec) bool { return s.Coordinate.SameArtifact(*only) }) {
		return nil, notDeclared(opts.Coordinate, adapter.Name())
	}

	if opts.Latest {
		changed := false
		for i, s := range specs {
			if only != nil && !s.Coordinate.SameArtifact(*only) {
				continue
			}
			latest, err := a.pinLatest(ctx, p, s.Coordinate)
			if err != nil {
				return nil, err
			}
			if latest.Version != s.Coordinate.Version {
				a.logger.Info("dependency updated", "dependency", s.Coordinate.ArtifactKey(),
					"from", s.Coordinate.Version, "to", latest.Version)
				specs[i].Coordinate = latest
				changed = true
			}
		}
		if changed {
			if err := adapter.WriteSpecs(p.dir, specs); err != nil {
				return nil, zerr.Wrap(err, "failed to write dependencies")
			}
		}
	}

	return a.Install(ctx, InstallOptions{ProjectOptions: opts.ProjectOptions, Force: true})
}

func (a *App) pinLatest(ctx context.Context, p *project, c domain.Coordinate) (domain.Coordinate, error) {
	versions, err := p.versions.Versions(ctx, c.Group.String(), c.Artifact.String())
	if err != nil {
		return domain.Coordinate{}, zerr.With(err, "dependency", c.ArtifactKey())
	}
	latest, err := domain.LatestVersion(versions)
	if err != nil {
		return domain.Coordinate{}, zerr.With(zerr.Wrap(err, "no version to pin"), "dependency", c.ArtifactKey())
	}
	return c.WithVersion(latest), nil
}

func notDeclared(dependency, file string) error {
	err := zerr.With(zerr.Wrap(domain.ErrDependencyNotFound, "dependency is not declared"), "dependency", dependency)
	return zerr.With(err, "file", file)
}

// declares reports whether s declares the artifact of c, classifier included.
func declares(s domain.DependencySpec, c domain.Coordinate) bool {
	return s.Coordinate.SameArtifact(c) && s.Coordinate.Classifier == c.Classifier
}
