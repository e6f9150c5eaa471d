package domain

import "go.trai.ch/zerr"

// TreeNode is one node of the lock file dependency forest.
type TreeNode struct {
	Dependency ResolvedDependency
	Children   []*TreeNode

	// Repeated marks a node already expanded elsewhere in the forest. It has no children.
	Repeated bool
}

// Key returns the coordinate key of the node.
func (n *TreeNode) Key() string {
	return n.Dependency.Key()
}

// DependencyTree builds the dependency forest of the lock file.
// Roots are the entries no other entry depends on, followed by any entry not reachable from
// them (members of a cycle). Every entry is expanded once; later occurrences are Repeated leaves.
// Edges to missing entries are skipped and returned as ErrDanglingEdge warnings.
func (l *Lockfile) DependencyTree() ([]*TreeNode, []error) {
	keys := l.Keys()

	incoming := make(map[string]bool, len(keys))
	for _, key := range keys {
		for _, dep := range l.Entries[key].Dependencies {
			incoming[dep] = true
		}
	}

	visited := make(map[string]bool, len(keys))
	var warnings []error

	var build func(key string) *TreeNode
	build = func(key string) *TreeNode {
		node := &TreeNode{Dependency: l.Entries[key]}
		if visited[key] {
			node.Repeated = true
			return node
		}
		visited[key] = true

		for _, dep := range node.Dependency.Dependencies {
			if _, ok := l.Entries[dep]; !ok {
				warnings = append(warnings, zerr.With(zerr.With(zerr.Wrap(ErrDanglingEdge, "edge target has no entry"), "from", key), "to", dep))
				continue
			}
			node.Children = append(node.Children, build(dep))
		}
		return node
	}

	var roots []*TreeNode
	for _, key := range keys {
		if !incoming[key] {
			roots = append(roots, build(key))
		}
	}
	for _, key := range keys {
		if !visited[key] {
			roots = append(roots, build(key))
		}
	}

	return roots, warnings
}
