package domain

import (
	"slices"
	"strings"
)

// VersionConflict reports one artifact resolved at more than one version.
// It is informational: detection never picks a winner.
type VersionConflict struct {
	Group    string
	Artifact string
	Versions []string
}

// ArtifactKey returns "group:artifact".
func (c VersionConflict) ArtifactKey() string {
	return c.Group + coordinateSeparator + c.Artifact
}

// DetectConflicts groups coordinates by (group, artifact) and reports every group holding more
// than one distinct version. Conflicts are sorted by artifact key, versions by CompareVersions.
func DetectConflicts(coords []Coordinate) []VersionConflict {
	type artifactID struct {
		group, artifact InternedString
	}

	versions := make(map[artifactID][]string)
	for _, c := range coords {
		id := artifactID{group: c.Group, artifact: c.Artifact}
		versions[id] = append(versions[id], c.Version)
	}

	var conflicts []VersionConflict
	for id, vs := range versions {
		distinct := SortVersions(vs)
		if len(distinct) < 2 {
			continue
		}
		conflicts = append(conflicts, VersionConflict{
			Group:    id.group.String(),
			Artifact: id.artifact.String(),
			Versions: distinct,
		})
	}

	slices.SortFunc(conflicts, func(a, b VersionConflict) int {
		return strings.Compare(a.ArtifactKey(), b.ArtifactKey())
	})
	return conflicts
}
