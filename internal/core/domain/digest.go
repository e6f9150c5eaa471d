package domain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// SpecsDigest fingerprints a declared dependency list. The digest does not depend on the order
// in which the specs or their exclusions were declared.
func SpecsDigest(specs []DependencySpec) string {
	lines := make([]string, 0, len(specs))
	for _, s := range specs {
		lines = append(lines, strings.Join([]string{
			s.Coordinate.Key(),
			s.Scope.String(),
			strconv.FormatBool(s.Optional),
			strings.Join(s.ExclusionKeys(), ","),
		}, "|"))
	}
	slices.Sort(lines)

	h := xxhash.New()
	for _, line := range lines {
		_, _ = h.WriteString(line)
		_, _ = h.WriteString("\n")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
