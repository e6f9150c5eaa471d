// Package resolver implements transitive dependency resolution over a MetadataSource.
package resolver

import (
	"context"
	"maps"
	"runtime"
	"slices"
	"sync"
	"time"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/jx/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// State is the resolution state of a coordinate key.
type State int

const (
	// StateUnseen indicates the key has not been reached.
	StateUnseen State = iota
	// StateInProgress indicates the key is being expanded.
	StateInProgress
	// StateResolved indicates the key and its subtree are resolved.
	StateResolved
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "InProgress"
	case StateResolved:
		return "Resolved"
	default:
		return "Unseen"
	}
}

// Config bounds metadata lookups.
type Config struct {
	// LookupTimeout bounds a single metadata lookup. Zero means domain.DefaultLookupTimeout.
	LookupTimeout time.Duration

	// Concurrency bounds parallel metadata prefetches. Zero means runtime.NumCPU().
	Concurrency int
}

// ConfigFromSettings extracts the resolver configuration from tool settings.
func ConfigFromSettings(s domain.Settings) Config {
	return Config{
		LookupTimeout: s.LookupTimeout,
		Concurrency:   s.Concurrency,
	}
}

// Resolver expands declared dependencies into the full transitive set.
// Metadata answers are memoized across Resolve calls until Reset. The node graph is rebuilt
// by every call because its edges and scopes depend on the exclusions and scopes declared
// by that call's specs.
type Resolver struct {
	logger ports.Logger
	cfg    Config
	memo   *metadataMemo

	// runMu serializes Resolve calls.
	runMu sync.Mutex

	mu sync.RWMutex
	// resolved holds the nodes of the last successful Resolve.
	resolved   map[string]*node
	staged     map[string]*node
	inProgress map[string]bool
}

// node is a resolved coordinate with the union of its edges over every exclusion context
// it was walked under in one Resolve call. Edges map to the scope the child was declared with.
type node struct {
	coordinate domain.Coordinate
	scope      domain.Scope
	direct     bool
	edges      map[string]domain.Scope
	contexts   []exclusions
}

// covers reports whether a previous walk pruned no more than excl does, which makes
// walking again under excl redundant.
func (n *node) covers(excl exclusions) bool {
	for _, prev := range n.contexts {
		if prev.subsetOf(excl) {
			return true
		}
	}
	return false
}

func (n *node) resolvedDependency() domain.ResolvedDependency {
	return domain.ResolvedDependency{
		Coordinate:   n.coordinate,
		Scope:        n.scope,
		Dependencies: slices.Sorted(maps.Keys(n.edges)),
	}
}

// New creates a Resolver reading dependency metadata from source.
func New(source ports.MetadataSource, cfg Config, logger ports.Logger) *Resolver {
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = domain.DefaultLookupTimeout
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.NumCPU()
	}
	return &Resolver{
		logger:     logger,
		cfg:        cfg,
		memo:       newMetadataMemo(source, cfg.LookupTimeout),
		resolved:   make(map[string]*node),
		inProgress: make(map[string]bool),
	}
}

// Resolve expands specs into every distinct dependency reachable from them, sorted by key.
// Specs must be pinned. On error the result of the previous call is kept.
func (r *Resolver) Resolve(ctx context.Context, specs []domain.DependencySpec) ([]domain.ResolvedDependency, error) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.staged = make(map[string]*node)
	r.mu.Unlock()
	defer r.discard()

	if err := r.prefetch(ctx, specs); err != nil {
		return nil, err
	}

	var path []string
	for _, s := range specs {
		if err := r.expand(ctx, s.Coordinate, newExclusions(s.Exclusions), &path); err != nil {
			return nil, err
		}
	}

	r.assignScopes(specs)
	r.commit()
	return r.collect(), nil
}

// expand resolves c and its subtree under the exclusion context excl.
func (r *Resolver) expand(
	ctx context.Context,
	c domain.Coordinate,
	excl exclusions,
	path *[]string,
) error {
	key := c.Key()

	r.mu.Lock()
	if r.inProgress[key] {
		r.mu.Unlock()
		return domain.NewCycleError(*path, key)
	}
	n, ok := r.staged[key]
	if !ok {
		n = &node{coordinate: c, edges: make(map[string]domain.Scope)}
		r.staged[key] = n
	}
	r.mu.Unlock()

	if ok && n.covers(excl) {
		return nil
	}
	n.contexts = append(n.contexts, excl)

	r.enter(key, path)
	defer r.leave(key, path)

	declared, err := r.memo.get(ctx, c)
	if err != nil {
		return err
	}

	children := make([]domain.DependencySpec, 0, len(declared))
	for _, child := range declared {
		if child.Optional || excl.excludes(child.Coordinate) {
			continue
		}
		if err := child.Validate(); err != nil {
			return zerr.With(err, "dependent", key)
		}
		children = append(children, child)
	}

	if err := r.prefetch(ctx, children); err != nil {
		return err
	}

	for _, child := range children {
		ck := child.Key()
		if prev, seen := n.edges[ck]; !seen || scopeRank(child.Scope) > scopeRank(prev) {
			n.edges[ck] = child.Scope
		}
		if err := r.expand(ctx, child.Coordinate, excl.with(child.Exclusions), path); err != nil {
			return err
		}
	}
	return nil
}

// assignScopes gives every staged node the widest scope of any path reaching it.
// A directly declared dependency keeps the scope it was declared with.
func (r *Resolver) assignScopes(specs []domain.DependencySpec) {
	var queue []*node
	for _, s := range specs {
		n := r.staged[s.Key()]
		scope := s.Scope
		if scope == "" {
			scope = domain.ScopeCompile
		}
		if !n.direct || scopeRank(scope) > scopeRank(n.scope) {
			n.scope = scope
		}
		n.direct = true
		queue = append(queue, n)
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, ck := range slices.Sorted(maps.Keys(n.edges)) {
			child := r.staged[ck]
			if child.direct {
				continue
			}
			scope := inheritScope(n.scope, n.edges[ck])
			if child.scope == "" || scopeRank(scope) > scopeRank(child.scope) {
				child.scope = scope
				queue = append(queue, child)
			}
		}
	}
}

// inheritScope narrows the scope of a transitive dependency to the scope of its dependent.
func inheritScope(parent, child domain.Scope) domain.Scope {
	switch parent {
	case domain.ScopeTest, domain.ScopeProvided, domain.ScopeSystem:
		return parent
	case domain.ScopeRuntime:
		return domain.ScopeRuntime
	}
	if child == "" {
		return domain.ScopeCompile
	}
	return child
}

// scopeRank orders scopes by how widely the artifact is needed: compile, runtime,
// provided and system, then test.
func scopeRank(s domain.Scope) int {
	switch s {
	case domain.ScopeCompile, "":
		return 4
	case domain.ScopeRuntime:
		return 3
	case domain.ScopeProvided, domain.ScopeSystem:
		return 2
	default:
		return 1
	}
}

// prefetch warms the metadata memo for specs concurrently.
func (r *Resolver) prefetch(ctx context.Context, specs []domain.DependencySpec) error {
	if len(specs) < 2 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for _, s := range specs {
		g.Go(func() error {
			_, err := r.memo.get(gctx, s.Coordinate)
			return err
		})
	}
	return g.Wait()
}

func (r *Resolver) enter(key string, path *[]string) {
	r.mu.Lock()
	r.inProgress[key] = true
	r.mu.Unlock()
	*path = append(*path, key)
}

func (r *Resolver) leave(key string, path *[]string) {
	r.mu.Lock()
	delete(r.inProgress, key)
	r.mu.Unlock()
	*path = (*path)[:len(*path)-1]
}

func (r *Resolver) commit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = r.staged
	r.staged = nil
}

func (r *Resolver) discard() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = nil
	clear(r.inProgress)
}

// collect returns the nodes of the last successful call, sorted by key. Every staged
// node was reached from a spec, so no reachability filter is needed.
func (r *Resolver) collect() []domain.ResolvedDependency {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ResolvedDependency, 0, len(r.resolved))
	for _, key := range slices.Sorted(maps.Keys(r.resolved)) {
		out = append(out, r.resolved[key].resolvedDependency())
	}
	return out
}

// ResolutionOrder returns the keys of the last successful Resolve with dependencies before dependents.
// Cycles are skipped, logged and returned as warnings.
func (r *Resolver) ResolutionOrder() ([]string, []error) {
	order, warnings := r.graph().Order()
	for _, w := range warnings {
		r.logger.Warn("skipping dependency edge", "error", w)
	}
	return order, warnings
}

func (r *Resolver) graph() *domain.Graph {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g := domain.NewGraph()
	for key, n := range r.resolved {
		g.AddNode(key, slices.Collect(maps.Keys(n.edges)))
	}
	return g
}

// DetectConflicts reports every artifact the last successful Resolve reached at more than
// one version. It never picks a winner and never fails.
func (r *Resolver) DetectConflicts() []domain.VersionConflict {
	r.mu.RLock()
	coords := make([]domain.Coordinate, 0, len(r.resolved))
	for _, n := range r.resolved {
		coords = append(coords, n.coordinate)
	}
	r.mu.RUnlock()

	return domain.DetectConflicts(coords)
}

// State returns the resolution state of key in the running or last successful Resolve.
func (r *Resolver) State(key string) State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch {
	case r.inProgress[key]:
		return StateInProgress
	case r.resolved[key] != nil, r.staged[key] != nil:
		return StateResolved
	default:
		return StateUnseen
	}
}

// Reset forgets the last result and every cached metadata answer.
func (r *Resolver) Reset() {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	r.memo.reset()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = make(map[string]*node)
}
