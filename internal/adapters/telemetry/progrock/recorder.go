// Package progrock records resolve and fetch progress on a progrock tape.
package progrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/jx/internal/core/ports"
)

// Recorder implements ports.Telemetry over a progrock writer.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu    sync.Mutex
	names map[string]int
}

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:     w,
		rec:   progrock.NewRecorder(w),
		names: make(map[string]int),
	}
}

// Record starts a vertex. Repeated names get distinct vertex digests.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.rec.Vertex(r.digest(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

func (r *Recorder) digest(name string) digest.Digest {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.names[name]
	r.names[name] = n + 1
	if n == 0 {
		return digest.FromString(name)
	}
	return digest.FromString(fmt.Sprintf("%s#%d", name, n))
}

// Close closes the underlying writer when it supports it.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
