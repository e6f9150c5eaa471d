package domain_test

import (
	"errors"
	"slices"
	"testing"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestGraph_AddNode_MergesEdges(t *testing.T) {
	g := domain.NewGraph()
	g.AddNode("g:a:1.0", []string{"g:c:1.0"})
	g.AddNode("g:a:1.0", []string{"g:b:1.0", "g:c:1.0"})

	deps := g.Dependencies("g:a:1.0")
	if !slices.Equal(deps, []string{"g:b:1.0", "g:c:1.0"}) {
		t.Errorf("unexpected merged edges: %v", deps)
	}
	if g.Len() != 1 {
		t.Errorf("expected 1 node, got %d", g.Len())
	}
}

func TestGraph_Order_Cycle(t *testing.T) {
	g := domain.NewGraph()
	g.AddNode("A", []string{"B"})
	g.AddNode("B", []string{"A"})

	order, warnings := g.Order()
	if len(order) != 2 {
		t.Fatalf("expected both nodes in order despite cycle, got %v", order)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if !errors.Is(warnings[0], domain.ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", warnings[0])
	}

	var zErr *zerr.Error
	if !errors.As(warnings[0], &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", warnings[0])
	}

	meta := zErr.Metadata()
	if cycle, ok := meta["cycle"].(string); !ok || cycle != "A -> B -> A" {
		t.Errorf("expected cycle metadata %q, got %v", "A -> B -> A", meta["cycle"])
	}
}

func TestGraph_Order_DanglingEdge(t *testing.T) {
	g := domain.NewGraph()
	g.AddNode("A", []string{"missing"})

	order, warnings := g.Order()
	if !slices.Equal(order, []string{"A"}) {
		t.Errorf("unexpected order: %v", order)
	}
	if len(warnings) != 1 || !errors.Is(warnings[0], domain.ErrDanglingEdge) {
		t.Errorf("expected one ErrDanglingEdge warning, got %v", warnings)
	}
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	// A -> B -> C
	// Order: C, B, A
	g.AddNode("A", []string{"B"})
	g.AddNode("B", []string{"C"})
	g.AddNode("C", nil)

	walked := make([]string, 0, 3)
	for key := range g.Walk() {
		walked = append(walked, key)
	}

	if !slices.Equal(walked, []string{"C", "B", "A"}) {
		t.Errorf("unexpected walk order: %v", walked)
	}
}

func TestGraph_Order_Deterministic(t *testing.T) {
	g := domain.NewGraph()
	g.AddNode("root", []string{"z", "m", "a"})
	g.AddNode("z", nil)
	g.AddNode("m", []string{"a"})
	g.AddNode("a", nil)
	g.AddNode("other", nil)

	want := []string{"a", "m", "other", "z", "root"}
	for range 10 {
		order, warnings := g.Order()
		if len(warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", warnings)
		}
		if !slices.Equal(order, want) {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}
