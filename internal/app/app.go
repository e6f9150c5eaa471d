// Package app implements the jx use cases on top of the core ports.
package app

import (
	"strconv"
	"sync"
	"time"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/jx/internal/core/ports"
	"go.trai.ch/jx/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// ProjectOptions selects a project and overrides its settings.
type ProjectOptions struct {
	// Dir is the project directory.
	Dir string

	// LockFile overrides the lock file location when set.
	LockFile string

	// Offline restricts metadata and artifacts to the local cache.
	Offline bool
}

// App coordinates config adapters, the resolver, the lock store and the fetcher.
type App struct {
	detector  ports.ConfigDetector
	settings  ports.SettingsLoader
	store     ports.LockStore
	repos     ports.RepositoryFactory
	installer ports.Installer
	resolvers *resolver.Factory
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time

	mu       sync.Mutex
	projects map[string]*project
}

// project is the per directory state kept between operations.
type project struct {
	dir      string
	settings domain.Settings
	resolver *resolver.Resolver
	fetcher  ports.ArtifactFetcher
	versions ports.VersionLister
}

// New creates a new App instance.
func New(
	detector ports.ConfigDetector,
	settings ports.SettingsLoader,
	store ports.LockStore,
	repos ports.RepositoryFactory,
	installer ports.Installer,
	resolvers *resolver.Factory,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		detector:  detector,
		settings:  settings,
		store:     store,
		repos:     repos,
		installer: installer,
		resolvers: resolvers,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
		projects:  make(map[string]*project),
	}
}

// WithClock replaces the clock used for lock file timestamps.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// SetVerbose toggles debug logging.
func (a *App) SetVerbose(verbose bool) {
	a.logger.SetVerbose(verbose)
}

// project returns the cached state for opts, loading settings on first use.
func (a *App) project(opts ProjectOptions) (*project, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	key := dir + "|" + opts.LockFile + "|" + strconv.FormatBool(opts.Offline)

	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.projects[key]; ok {
		return p, nil
	}

	settings, err := a.settings.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}
	if opts.LockFile != "" {
		settings.LockFile = opts.LockFile
	}
	if opts.Offline {
		settings.Offline = true
	}

	p := &project{
		dir:      dir,
		settings: settings,
		resolver: a.resolvers.New(a.repos.Metadata(settings), resolver.ConfigFromSettings(settings)),
		fetcher:  a.repos.Fetcher(settings),
		versions: a.repos.Versions(settings),
	}
	a.projects[key] = p
	a.logger.Debug("project opened", "dir", dir, "lock", settings.LockPath(dir), "offline", settings.Offline)
	return p, nil
}

func (p *project) lockPath() string {
	return p.settings.LockPath(p.dir)
}

func (p *project) libPath() string {
	return p.settings.LibPath(p.dir)
}

func (a *App) loadLock(p *project) (*domain.Lockfile, error) {
	lock, err := a.store.Load(p.lockPath())
	if err != nil {
		return nil, err
	}
	lock.SetClock(a.now)
	return lock, nil
}

func (a *App) readSpecs(dir string) (ports.ConfigAdapter, []domain.DependencySpec, error) {
	adapter, err := a.detector.Detect(dir)
	if err != nil {
		return nil, nil, err
	}
	specs, err := adapter.ReadSpecs(dir)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to read dependencies"), "file", adapter.Name())
	}
	return adapter, specs, nil
}
