package resolver

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/jx/internal/core/ports"
	"go.trai.ch/zerr"
)

// metadataMemo caches MetadataSource answers by coordinate key.
// Concurrent lookups of the same key share one call to the source.
type metadataMemo struct {
	source  ports.MetadataSource
	timeout time.Duration

	mu      sync.Mutex
	entries map[string]*memoEntry
}

type memoEntry struct {
	done  chan struct{}
	specs []domain.DependencySpec
	err   error
}

func newMetadataMemo(source ports.MetadataSource, timeout time.Duration) *metadataMemo {
	return &metadataMemo{
		source:  source,
		timeout: timeout,
		entries: make(map[string]*memoEntry),
	}
}

// get returns the declared dependencies of c, calling the source at most once per key.
// Failed lookups are not cached.
func (m *metadataMemo) get(ctx context.Context, c domain.Coordinate) ([]domain.DependencySpec, error) {
	key := c.Key()

	m.mu.Lock()
	if e, ok := m.entries[key]; ok {
		m.mu.Unlock()
		select {
		case <-e.done:
			return e.specs, e.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	e := &memoEntry{done: make(chan struct{})}
	m.entries[key] = e
	m.mu.Unlock()

	e.specs, e.err = m.lookup(ctx, c)
	if e.err != nil {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
	}
	close(e.done)

	return e.specs, e.err
}

type lookupResult struct {
	specs []domain.DependencySpec
	err   error
}

func (m *metadataMemo) lookup(ctx context.Context, c domain.Coordinate) ([]domain.DependencySpec, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	// The source may not honor cancellation, so the deadline is enforced here as well.
	resCh := make(chan lookupResult, 1)
	go func() {
		specs, err := m.source.TransitiveOf(lookupCtx, c)
		resCh <- lookupResult{specs: specs, err: err}
	}()

	select {
	case res := <-resCh:
		if res.err == nil {
			return res.specs, nil
		}
		if isTimeout(ctx, lookupCtx) {
			return nil, timeoutError(c)
		}
		return nil, zerr.With(zerr.Wrap(res.err, "metadata lookup failed"), "coordinate", c.Key())
	case <-lookupCtx.Done():
		if isTimeout(ctx, lookupCtx) {
			return nil, timeoutError(c)
		}
		return nil, ctx.Err()
	}
}

func isTimeout(parent, lookupCtx context.Context) bool {
	return parent.Err() == nil && errors.Is(lookupCtx.Err(), context.DeadlineExceeded)
}

func timeoutError(c domain.Coordinate) error {
	return zerr.With(zerr.Wrap(domain.ErrMetadataTimeout, "no answer within lookup timeout"), "coordinate", c.Key())
}

func (m *metadataMemo) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*memoEntry)
}
