// Package domain contains the core domain models of the dependency resolver and the lock file.
package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is a dependency graph keyed by coordinate key.
// Edges point from a dependent to its dependencies.
type Graph struct {
	edges map[string][]string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		edges: make(map[string][]string),
	}
}

// AddNode adds key with the given outgoing edges.
// Adding an existing key merges the edge sets.
func (g *Graph) AddNode(key string, deps []string) {
	merged := append(slices.Clone(g.edges[key]), deps...)
	slices.Sort(merged)
	g.edges[key] = slices.Compact(merged)
}

// Contains reports whether key is a node of the graph.
func (g *Graph) Contains(key string) bool {
	_, ok := g.edges[key]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.edges)
}

// Dependencies returns the sorted outgoing edges of key.
func (g *Graph) Dependencies(key string) []string {
	return slices.Clone(g.edges[key])
}

// Order returns the nodes in dependency order: every node appears after all of its dependencies.
// Nodes and edges are visited in lexicographic order, so the result is deterministic.
// A back edge closing a cycle is skipped and reported as an ErrCycle warning, and an edge to an
// unknown node is skipped and reported as an ErrDanglingEdge warning. Neither aborts the walk.
func (g *Graph) Order() ([]string, []error) {
	order := make([]string, 0, len(g.edges))
	visited := make(map[string]int, len(g.edges)) // 0: unvisited, 1: visiting, 2: visited
	var path []string
	var warnings []error

	var visit func(u string)
	visit = func(u string) {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.edges[u] {
			if !g.Contains(dep) {
				warnings = append(warnings, zerr.With(zerr.With(zerr.Wrap(ErrDanglingEdge, "edge target has no entry"), "from", u), "to", dep))
				continue
			}
			switch visited[dep] {
			case 1:
				warnings = append(warnings, NewCycleError(path, dep))
			case 0:
				visit(dep)
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		order = append(order, u)
	}

	for _, key := range slices.Sorted(maps.Keys(g.edges)) {
		if visited[key] == 0 {
			visit(key)
		}
	}

	return order, warnings
}

// Walk returns an iterator over the nodes in dependency order, ignoring warnings.
func (g *Graph) Walk() iter.Seq[string] {
	order, _ := g.Order()
	return slices.Values(order)
}

// NewCycleError constructs an ErrCycle error whose "cycle" metadata is the part of path
// starting at dep, closed by dep again (e.g. "a -> b -> a").
func NewCycleError(path []string, dep string) error {
	startIdx := slices.Index(path, dep)
	if startIdx < 0 {
		startIdx = 0
	}
	cycle := append(slices.Clone(path[startIdx:]), dep)
	return zerr.With(zerr.Wrap(ErrCycle, "cycle in dependency graph"), "cycle", strings.Join(cycle, " -> "))
}
