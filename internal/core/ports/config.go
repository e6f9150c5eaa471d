package ports

import "go.trai.ch/jx/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks

// ConfigAdapter reads and writes the declared dependencies of one project file format.
type ConfigAdapter interface {
	// Name returns the configuration file name handled by the adapter (e.g. "pom.xml").
	Name() string

	// Detect reports whether the project in dir uses this format.
	Detect(dir string) bool

	// ReadSpecs returns the dependencies declared by the project in dir.
	ReadSpecs(dir string) ([]domain.DependencySpec, error)

	// WriteSpecs replaces the declared dependencies of the project in dir.
	WriteSpecs(dir string, specs []domain.DependencySpec) error
}

// ConfigDetector selects the ConfigAdapter of a project.
type ConfigDetector interface {
	// Detect returns the adapter for the project in dir, or domain.ErrNoProjectConfig.
	Detect(dir string) (ConfigAdapter, error)

	// Lookup returns the adapter handling the file name, or domain.ErrUnsupportedFormat.
	Lookup(name string) (ConfigAdapter, error)
}

// ProjectCreator is implemented by adapters that can write a new, empty project file.
type ProjectCreator interface {
	// Create writes the project files for a project called name into dir.
	// It fails with domain.ErrProjectExists when one of them already exists.
	Create(dir, name string) error
}

// SettingsLoader loads tool settings for a project.
type SettingsLoader interface {
	// Load returns the settings in effect for the project in dir.
	Load(dir string) (domain.Settings, error)
}
