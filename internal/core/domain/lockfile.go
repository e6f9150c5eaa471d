package domain

import (
	"maps"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/zerr"
)

// LockFormatVersion is the lock file schema version written by this module.
const LockFormatVersion = "1.0"

// ResolvedDependency is one locked artifact. Dependencies holds the coordinate keys of its
// direct dependencies, sorted and de-duplicated.
type ResolvedDependency struct {
	Coordinate   Coordinate
	Scope        Scope
	Checksum     string
	SourceURL    string
	Size         int64
	Dependencies []string
}

// Key returns the identity key of the locked coordinate.
func (d ResolvedDependency) Key() string {
	return d.Coordinate.Key()
}

func (d ResolvedDependency) equal(other ResolvedDependency) bool {
	return d.Coordinate == other.Coordinate &&
		d.Scope == other.Scope &&
		d.Checksum == other.Checksum &&
		d.SourceURL == other.SourceURL &&
		d.Size == other.Size &&
		slices.Equal(d.Dependencies, other.Dependencies)
}

// LockMetadata holds bookkeeping values maintained by the Lockfile mutators.
type LockMetadata struct {
	CreatedAt         time.Time
	UpdatedAt         time.Time
	TotalDependencies int
	TotalSize         int64

	// InputsDigest fingerprints the declared dependencies the lock was produced from.
	InputsDigest string
}

// Lockfile is the in-memory lock store: the reproducible record of a resolved graph.
type Lockfile struct {
	FormatVersion string
	Entries       map[string]ResolvedDependency
	Metadata      LockMetadata

	now func() time.Time
}

// NewLockfile creates an empty lock file. A nil clock defaults to time.Now.
func NewLockfile(now func() time.Time) *Lockfile {
	l := &Lockfile{
		FormatVersion: LockFormatVersion,
		Entries:       make(map[string]ResolvedDependency),
	}
	l.SetClock(now)
	ts := l.timestamp()
	l.Metadata.CreatedAt = ts
	l.Metadata.UpdatedAt = ts
	return l
}

// SetClock replaces the clock used to stamp mutations. A nil clock defaults to time.Now.
func (l *Lockfile) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	l.now = now
}

func (l *Lockfile) timestamp() time.Time {
	if l.now == nil {
		l.now = time.Now
	}
	return l.now().UTC().Truncate(time.Second)
}

// Upsert inserts or replaces the entry for dep's coordinate.
func (l *Lockfile) Upsert(dep ResolvedDependency) {
	if l.Entries == nil {
		l.Entries = make(map[string]ResolvedDependency)
	}
	deps := slices.Clone(dep.Dependencies)
	slices.Sort(deps)
	dep.Dependencies = slices.Compact(deps)
	if dep.Scope == "" {
		dep.Scope = ScopeCompile
	}
	if existing, ok := l.Entries[dep.Key()]; ok && existing.equal(dep) {
		return
	}
	l.Entries[dep.Key()] = dep
	l.touch()
}

// Remove deletes the entry for c and reports whether one existed.
func (l *Lockfile) Remove(c Coordinate) bool {
	key := c.Key()
	if _, ok := l.Entries[key]; !ok {
		return false
	}
	delete(l.Entries, key)
	l.touch()
	return true
}

// Retain drops every entry whose key is not in keep and returns the removed keys, sorted.
func (l *Lockfile) Retain(keep map[string]struct{}) []string {
	var removed []string
	for key := range l.Entries {
		if _, ok := keep[key]; !ok {
			removed = append(removed, key)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	for _, key := range removed {
		delete(l.Entries, key)
	}
	l.touch()
	slices.Sort(removed)
	return removed
}

// Get returns the entry for c.
func (l *Lockfile) Get(c Coordinate) (ResolvedDependency, bool) {
	dep, ok := l.Entries[c.Key()]
	return dep, ok
}

// Contains reports whether c is locked.
func (l *Lockfile) Contains(c Coordinate) bool {
	_, ok := l.Entries[c.Key()]
	return ok
}

// Keys returns the sorted coordinate keys of all entries.
func (l *Lockfile) Keys() []string {
	return slices.Sorted(maps.Keys(l.Entries))
}

// Dependencies returns all entries sorted by key.
func (l *Lockfile) Dependencies() []ResolvedDependency {
	out := make([]ResolvedDependency, 0, len(l.Entries))
	for _, key := range l.Keys() {
		out = append(out, l.Entries[key])
	}
	return out
}

// UpdateChecksum sets the checksum of the entry for c.
func (l *Lockfile) UpdateChecksum(c Coordinate, checksum string) error {
	return l.update(c, func(d *ResolvedDependency) { d.Checksum = checksum })
}

// UpdateSourceURL sets the download URL of the entry for c.
func (l *Lockfile) UpdateSourceURL(c Coordinate, url string) error {
	return l.update(c, func(d *ResolvedDependency) { d.SourceURL = url })
}

func (l *Lockfile) update(c Coordinate, fn func(*ResolvedDependency)) error {
	key := c.Key()
	dep, ok := l.Entries[key]
	if !ok {
		return zerr.With(zerr.Wrap(ErrDependencyNotFound, "not in lock file"), "coordinate", key)
	}
	updated := dep
	fn(&updated)
	if updated.equal(dep) {
		return nil
	}
	l.Entries[key] = updated
	l.touch()
	return nil
}

// SetInputsDigest records the fingerprint of the declared dependencies.
func (l *Lockfile) SetInputsDigest(digest string) {
	if l.Metadata.InputsDigest == digest {
		return
	}
	l.Metadata.InputsDigest = digest
	l.touch()
}

// DanglingEdges returns one ErrDanglingEdge error per edge whose target has no entry,
// ordered by source key and target key.
func (l *Lockfile) DanglingEdges() []error {
	var errs []error
	for _, key := range l.Keys() {
		for _, dep := range l.Entries[key].Dependencies {
			if _, ok := l.Entries[dep]; !ok {
				errs = append(errs, zerr.With(zerr.With(zerr.Wrap(ErrDanglingEdge, "edge target has no entry"), "from", key), "to", dep))
			}
		}
	}
	return errs
}

// Validate returns the first dangling edge, or nil when every edge target is locked.
func (l *Lockfile) Validate() error {
	if errs := l.DanglingEdges(); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Graph derives the dependency graph of the locked entries.
func (l *Lockfile) Graph() *Graph {
	g := NewGraph()
	for key, dep := range l.Entries {
		g.AddNode(key, dep.Dependencies)
	}
	return g
}

// ResolutionOrder returns the locked keys with dependencies before dependents.
func (l *Lockfile) ResolutionOrder() ([]string, []error) {
	return l.Graph().Order()
}

// Classpath returns the paths inside libDir of every locked jar, in resolution order.
func (l *Lockfile) Classpath(libDir string) []string {
	order, _ := l.ResolutionOrder()
	paths := make([]string, 0, len(order))
	for _, key := range order {
		paths = append(paths, filepath.Join(libDir, l.Entries[key].Coordinate.Filename()))
	}
	return paths
}

func (l *Lockfile) touch() {
	l.Metadata.UpdatedAt = l.timestamp()
	l.recompute()
}

func (l *Lockfile) recompute() {
	var total int64
	for _, dep := range l.Entries {
		total += dep.Size
	}
	l.Metadata.TotalDependencies = len(l.Entries)
	l.Metadata.TotalSize = total
}

// Recompute refreshes the totals without touching the update timestamp.
func (l *Lockfile) Recompute() {
	l.recompute()
}
