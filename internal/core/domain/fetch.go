package domain

// FetchedArtifact describes a jar made available in the local cache.
type FetchedArtifact struct {
	Coordinate Coordinate

	// Path is the location of the jar in the local cache.
	Path string

	// Checksum is "sha256:<hex>" of the file contents.
	Checksum string

	Size      int64
	SourceURL string

	// Cached reports that the file was served from the cache without a download.
	Cached bool
}
