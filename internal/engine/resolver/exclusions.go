package resolver

import "go.trai.ch/jx/internal/core/domain"

// exclusions is the set of "group:artifact" keys pruned below a node.
type exclusions map[string]struct{}

func newExclusions(list []domain.Exclusion) exclusions {
	return exclusions(nil).with(list)
}

// with returns a new set holding e and every exclusion in list.
func (e exclusions) with(list []domain.Exclusion) exclusions {
	out := make(exclusions, len(e)+len(list))
	for k := range e {
		out[k] = struct{}{}
	}
	for _, x := range list {
		out[x.Key()] = struct{}{}
	}
	return out
}

func (e exclusions) excludes(c domain.Coordinate) bool {
	_, ok := e[c.ArtifactKey()]
	return ok
}

// subsetOf reports whether every key of e is also in other.
func (e exclusions) subsetOf(other exclusions) bool {
	if len(e) > len(other) {
		return false
	}
	for k := range e {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}
