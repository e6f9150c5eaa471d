package settings

// File represents the structure of a settings.yaml file. Unset fields keep the value of the
// previous layer.
type File struct {
	Repositories  []RepositoryDTO `yaml:"repositories"`
	CacheDir      *string         `yaml:"cache_dir"`
	LibDir        *string         `yaml:"lib_dir"`
	LockFile      *string         `yaml:"lock_file"`
	LookupTimeout *string         `yaml:"lookup_timeout"`
	Concurrency   *int            `yaml:"concurrency"`
	Offline       *bool           `yaml:"offline"`
}

// RepositoryDTO represents a repository entry in the settings file.
type RepositoryDTO struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}
