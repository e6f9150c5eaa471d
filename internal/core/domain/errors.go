package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidCoordinate is returned when a dependency string is not group:artifact[:version].
	ErrInvalidCoordinate = zerr.New("invalid coordinate")

	// ErrMissingVersion is returned when a dependency must be pinned but has no version.
	ErrMissingVersion = zerr.New("missing version")

	// ErrInvalidScope is returned when a scope name is not one of compile, runtime, test, provided, system.
	ErrInvalidScope = zerr.New("invalid scope")

	// ErrCycle is returned when transitive expansion revisits a coordinate that is still being expanded.
	ErrCycle = zerr.New("dependency cycle detected")

	// ErrMetadataTimeout is returned when a metadata lookup does not answer within the lookup timeout.
	ErrMetadataTimeout = zerr.New("metadata lookup timed out")

	// ErrCorruptLockfile is returned when an existing lock file cannot be parsed.
	ErrCorruptLockfile = zerr.New("corrupt lock file")

	// ErrDanglingEdge is returned when a lock entry references a coordinate that has no entry.
	ErrDanglingEdge = zerr.New("dangling dependency edge")

	// ErrNoProjectConfig is returned when no supported project configuration file is found.
	ErrNoProjectConfig = zerr.New("no project configuration found")

	// ErrProjectExists is returned by init when the target already holds a project configuration.
	ErrProjectExists = zerr.New("project already exists")

	// ErrUnsupportedFormat is returned when a configuration adapter cannot represent a request.
	ErrUnsupportedFormat = zerr.New("unsupported configuration format")

	// ErrDependencyNotFound is returned when a declared dependency does not exist.
	ErrDependencyNotFound = zerr.New("dependency not found")

	// ErrNoVersions is returned when no version is known for an artifact.
	ErrNoVersions = zerr.New("no versions available")

	// ErrArtifactNotFound is returned when an artifact cannot be located in any repository or cache.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrLockfileOutOfDate is returned in frozen mode when declared dependencies changed since locking.
	ErrLockfileOutOfDate = zerr.New("lock file is out of date")

	// ErrInvalidSettings is returned when a settings file cannot be parsed or holds an invalid value.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrChecksumMismatch is returned when a cached artifact does not match its locked checksum.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrVerificationFailed is returned when verify found problems. They have already been reported.
	ErrVerificationFailed = zerr.New("verification failed")
)
