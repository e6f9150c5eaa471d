package domain

import (
	"path/filepath"
	"runtime"
	"time"
)

const (
	// MavenCentralURL is the base URL of the default repository.
	MavenCentralURL = "https://repo1.maven.org/maven2/"

	// DefaultLookupTimeout bounds a single metadata lookup.
	DefaultLookupTimeout = 30 * time.Second
)

// Repository is a Maven layout artifact repository.
type Repository struct {
	Name string
	URL  string
}

// Settings configures the resolver pipeline. Everything the pipeline needs from the environment
// is carried here explicitly.
type Settings struct {
	Repositories  []Repository
	CacheDir      string
	LibDir        string
	LockFile      string
	LookupTimeout time.Duration
	Concurrency   int
	Offline       bool
}

// DefaultSettings returns the settings used when no settings file overrides them.
func DefaultSettings(home string) Settings {
	return Settings{
		Repositories:  []Repository{{Name: "central", URL: MavenCentralURL}},
		CacheDir:      DefaultCachePath(home),
		LibDir:        LibDirName,
		LockFile:      LockFileName,
		LookupTimeout: DefaultLookupTimeout,
		Concurrency:   runtime.NumCPU(),
	}
}

// LockPath returns the lock file location for the project in dir.
func (s Settings) LockPath(dir string) string {
	return resolveIn(dir, s.LockFile, LockFileName)
}

// LibPath returns the directory installed jars are copied into for the project in dir.
func (s Settings) LibPath(dir string) string {
	return resolveIn(dir, s.LibDir, LibDirName)
}

func resolveIn(dir, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// CachePath returns the location of file for c inside the artifact cache:
// "<cache>/<group>/<artifact>/<file>".
func CachePath(cacheDir string, c Coordinate, file string) string {
	return filepath.Join(cacheDir, c.Group.String(), c.Artifact.String(), file)
}
