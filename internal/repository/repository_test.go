package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ameya/pathserve/internal/domain"
	"github.com/ameya/pathserve/internal/graphdb"
)

func TestRepository_MirrorNode(t *testing.T) {
	mem := graphdb.NewMemoryClient()
	repo := New(mem)

	adj := domain.Adjacency{"B": 1, "C": 4}
	if err := repo.MirrorNode(context.Background(), "A", adj); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Query, "MERGE (n:Node {id: $id})") {
		t.Fatalf("unexpected cypher: %s", calls[0].Query)
	}
	if calls[0].Params["id"] != "A" {
		t.Fatalf("expected node id A, got %v", calls[0].Params["id"])
	}
	edges, ok := calls[0].Params["edges"].([]map[string]any)
	if !ok {
		t.Fatalf("expected edges param, got %T", calls[0].Params["edges"])
	}
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
}

func TestRepository_MirrorNodeWithoutEdges(t *testing.T) {
	mem := graphdb.NewMemoryClient()
	repo := New(mem)

	if err := repo.MirrorNode(context.Background(), "C", domain.Adjacency{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	edges, ok := calls[0].Params["edges"].([]map[string]any)
	if !ok {
		t.Fatalf("expected edges param, got %T", calls[0].Params["edges"])
	}
	if len(edges) != 0 {
		t.Fatalf("expected no edges, got %d", len(edges))
	}
}

func TestRepository_Clear(t *testing.T) {
	mem := graphdb.NewMemoryClient()
	repo := New(mem)

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Query, "DETACH DELETE") {
		t.Fatalf("unexpected cypher: %s", calls[0].Query)
	}
}

func TestRepository_CountNodes(t *testing.T) {
	mem := graphdb.NewMemoryClient()
	mem.PushReadResult(graphdb.Result{
		Records: []graphdb.Record{{"count": int64(3)}},
	})
	repo := New(mem)

	count, err := repo.CountNodes(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}

	calls := mem.ReadCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 read query, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Query, "RETURN count(n)") {
		t.Fatalf("unexpected cypher: %s", calls[0].Query)
	}
}

func TestRepository_CountNodesEmptyResult(t *testing.T) {
	mem := graphdb.NewMemoryClient()
	repo := New(mem)

	count, err := repo.CountNodes(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 0 {
		t.Fatalf("expected count 0, got %d", count)
	}
}

func TestRepository_MirrorNodePropagatesErrors(t *testing.T) {
	boom := errors.New("bolt connection reset")
	mem := graphdb.NewMemoryClient().WithError(boom)
	repo := New(mem)

	err := repo.MirrorNode(context.Background(), "A", domain.Adjacency{"B": 1})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
}
