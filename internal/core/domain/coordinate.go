package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const coordinateSeparator = ":"

// Coordinate identifies one artifact by group, artifact, version and optional classifier.
// It is an immutable, comparable value and may be used as a map key.
type Coordinate struct {
	// Group is the Maven groupId (e.g., "org.springframework").
	Group InternedString

	// Artifact is the Maven artifactId (e.g., "spring-core").
	Artifact InternedString

	// Version is the artifact version. It is empty for an unpinned coordinate such as "g:a".
	Version string

	// Classifier distinguishes secondary artifacts (e.g., "sources"). Usually empty.
	Classifier string
}

// NewCoordinate creates a Coordinate without a classifier.
func NewCoordinate(group, artifact, version string) Coordinate {
	return Coordinate{
		Group:    NewInternedString(group),
		Artifact: NewInternedString(artifact),
		Version:  version,
	}
}

// ParseCoordinate parses a user supplied "group:artifact[:version]" string.
// Exactly two or three non-empty fields are accepted; two fields leave the version unset.
func ParseCoordinate(input string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(input), coordinateSeparator)
	if len(parts) != 2 && len(parts) != 3 {
		return Coordinate{}, invalidCoordinate(input, "expected group:artifact[:version]")
	}
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, invalidCoordinate(input, "empty field")
		}
	}

	c := Coordinate{
		Group:    NewInternedString(parts[0]),
		Artifact: NewInternedString(parts[1]),
	}
	if len(parts) == 3 {
		c.Version = parts[2]
	}
	return c, nil
}

// ParseKey parses a coordinate key as written in lock files: "group:artifact:version[:classifier]".
func ParseKey(key string) (Coordinate, error) {
	parts := strings.Split(key, coordinateSeparator)
	if len(parts) != 3 && len(parts) != 4 {
		return Coordinate{}, invalidCoordinate(key, "expected group:artifact:version[:classifier]")
	}
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, invalidCoordinate(key, "empty field")
		}
	}

	c := NewCoordinate(parts[0], parts[1], parts[2])
	if len(parts) == 4 {
		c.Classifier = parts[3]
	}
	return c, nil
}

func invalidCoordinate(input, reason string) error {
	return zerr.With(zerr.Wrap(ErrInvalidCoordinate, reason), "input", input)
}

// Key returns the identity key "group:artifact:version[:classifier]".
// An unpinned coordinate yields "group:artifact".
func (c Coordinate) Key() string {
	var b strings.Builder
	b.WriteString(c.ArtifactKey())
	if c.Version != "" {
		b.WriteString(coordinateSeparator)
		b.WriteString(c.Version)
	}
	if c.Classifier != "" {
		b.WriteString(coordinateSeparator)
		b.WriteString(c.Classifier)
	}
	return b.String()
}

// ArtifactKey returns "group:artifact", the identity shared by every version of an artifact.
func (c Coordinate) ArtifactKey() string {
	return c.Group.String() + coordinateSeparator + c.Artifact.String()
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return c.Key()
}

// HasVersion reports whether the coordinate is pinned to a version.
func (c Coordinate) HasVersion() bool {
	return c.Version != ""
}

// WithVersion returns a copy of c pinned to version.
func (c Coordinate) WithVersion(version string) Coordinate {
	c.Version = version
	return c
}

// WithClassifier returns a copy of c with the given classifier.
func (c Coordinate) WithClassifier(classifier string) Coordinate {
	c.Classifier = classifier
	return c
}

// SameArtifact reports whether c and other name the same group and artifact.
func (c Coordinate) SameArtifact(other Coordinate) bool {
	return c.Group == other.Group && c.Artifact == other.Artifact
}

// ConflictsWith reports whether c and other are the same artifact at different versions.
func (c Coordinate) ConflictsWith(other Coordinate) bool {
	return c.SameArtifact(other) && c.Version != other.Version
}

// Filename returns the jar file name, e.g. "spring-core-5.3.0.jar" or "guava-32.1.3-jre-sources.jar".
func (c Coordinate) Filename() string {
	return c.fileBase() + ".jar"
}

// RepositoryPath returns the path of the artifact file with the given extension inside a
// Maven repository layout, e.g. "org/springframework/spring-core/5.3.0/spring-core-5.3.0.pom".
func (c Coordinate) RepositoryPath(ext string) string {
	return strings.Join([]string{
		strings.ReplaceAll(c.Group.String(), ".", "/"),
		c.Artifact.String(),
		c.Version,
		c.fileBase() + "." + ext,
	}, "/")
}

func (c Coordinate) fileBase() string {
	name := c.Artifact.String() + "-" + c.Version
	if c.Classifier != "" {
		name += "-" + c.Classifier
	}
	return name
}

// CompareCoordinates orders coordinates by their identity key.
func CompareCoordinates(a, b Coordinate) int {
	return strings.Compare(a.Key(), b.Key())
}
