package lockfile

import "time"

// document is the TOML representation of a lock file.
type document struct {
	FormatVersion string           `toml:"format_version"`
	Dependencies  map[string]entry `toml:"dependencies"`
	Metadata      metadata         `toml:"metadata"`
}

type entry struct {
	Checksum     string   `toml:"checksum"`
	SourceURL    string   `toml:"source_url"`
	Scope        string   `toml:"scope"`
	Classifier   string   `toml:"classifier,omitempty"`
	Size         int64    `toml:"size,omitempty"`
	Dependencies []string `toml:"dependencies"`
}

type metadata struct {
	CreatedAt         time.Time `toml:"created_at"`
	UpdatedAt         time.Time `toml:"updated_at"`
	TotalDependencies int       `toml:"total_dependencies"`
	TotalSize         int64     `toml:"total_size"`
	InputsDigest      string    `toml:"inputs_digest,omitempty"`
}
