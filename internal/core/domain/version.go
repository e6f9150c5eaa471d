package domain

import (
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions orders two version strings. When both parse as semantic versions they are
// compared by precedence; otherwise they are compared lexicographically.
func CompareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		if c := va.Compare(vb); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

// SortVersions returns a sorted, de-duplicated copy of versions.
func SortVersions(versions []string) []string {
	sorted := slices.Clone(versions)
	slices.SortFunc(sorted, CompareVersions)
	return slices.Compact(sorted)
}

// LatestVersion returns the highest release version. Pre-releases and snapshots are only
// considered when no release exists. It returns ErrNoVersions for an empty list.
func LatestVersion(versions []string) (string, error) {
	if len(versions) == 0 {
		return "", ErrNoVersions
	}

	var releases []string
	for _, v := range versions {
		if isRelease(v) {
			releases = append(releases, v)
		}
	}
	if len(releases) == 0 {
		releases = versions
	}

	sorted := SortVersions(releases)
	return sorted[len(sorted)-1], nil
}

func isRelease(v string) bool {
	if strings.HasSuffix(strings.ToUpper(v), "-SNAPSHOT") {
		return false
	}
	sv, err := semver.NewVersion(v)
	if err != nil {
		return true
	}
	return sv.Prerelease() == ""
}
