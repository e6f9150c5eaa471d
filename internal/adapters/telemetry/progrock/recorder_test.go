package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jx/internal/adapters/telemetry/progrock"
	"go.trai.ch/jx/internal/core/ports"
)

func TestRecorder(t *testing.T) {
	rec := progrock.New()
	ctx := context.Background()

	ctx, resolve := rec.Record(ctx, "resolve")
	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, resolve, got)

	_, err := resolve.Stdout().Write([]byte("3 dependencies\n"))
	require.NoError(t, err)
	resolve.Log("done")
	resolve.Complete(nil)

	_, fetch := rec.Record(ctx, "fetch g:a:1.0")
	fetch.Cached()
	fetch.Complete(nil)

	_, again := rec.Record(ctx, "fetch g:a:1.0")
	again.Complete(assert.AnError)

	assert.NoError(t, rec.Close())
}
