package graph

import (
	"os"
	"path/filepath"
	"testing"

	"kgraph/pkg/triples"
)

func TestBuildSkipsIncompleteTriples(t *testing.T) {
	set := triples.TripleSet{
		{Subject: "Alice", Predicate: "knows", Object: "Bob"},
		{Subject: "Alice", Predicate: "owns", Object: ""},
		{Subject: "", Predicate: "likes", Object: "Bob"},
	}

	kg, skipped := Build(set)
	if skipped != 2 {
		t.Fatalf("Build() skipped = %d, want 2", skipped)
	}
	if kg.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d, want 2 (only entities from complete triples)", kg.NodeCount())
	}
	if kg.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", kg.EdgeCount())
	}
}

func TestBuildDeduplicatesEntitiesByName(t *testing.T) {
	set := triples.TripleSet{
		{Subject: "Alice", Predicate: "knows", Object: "Bob"},
		{Subject: "Bob", Predicate: "likes", Object: "Carol"},
		{Subject: "Alice", Predicate: "met", Object: "Carol"},
	}

	kg, skipped := Build(set)
	if skipped != 0 {
		t.Fatalf("Build() skipped = %d, want 0", skipped)
	}
	if kg.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d, want 3", kg.NodeCount())
	}
	if kg.EdgeCount() != 3 {
		t.Fatalf("EdgeCount() = %d, want 3", kg.EdgeCount())
	}
}

// Two triples sharing a (subject, object) pair collapse onto one edge and
// the later predicate replaces the earlier one.
func TestBuildEdgeCollisionLastWriteWins(t *testing.T) {
	set := triples.TripleSet{
		{Subject: "A", Predicate: "knows", Object: "B"},
		{Subject: "A", Predicate: "likes", Object: "B"},
	}

	kg, _ := Build(set)
	if kg.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", kg.EdgeCount())
	}
	predicate, ok := kg.Predicate("A", "B")
	if !ok {
		t.Fatal("Predicate() found no edge from A to B")
	}
	if predicate != "likes" {
		t.Fatalf("Predicate() = %q, want %q (last inserted label)", predicate, "likes")
	}
}

func TestBuildOppositeDirectionsKeepBothEdges(t *testing.T) {
	set := triples.TripleSet{
		{Subject: "A", Predicate: "knows", Object: "B"},
		{Subject: "B", Predicate: "knows", Object: "A"},
	}

	kg, _ := Build(set)
	if kg.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", kg.EdgeCount())
	}
}

func TestBuildSkipsSelfReferences(t *testing.T) {
	set := triples.TripleSet{
		{Subject: "Alice", Predicate: "is", Object: "Alice"},
		{Subject: "Alice", Predicate: "knows", Object: "Bob"},
	}

	kg, skipped := Build(set)
	if skipped != 1 {
		t.Fatalf("Build() skipped = %d, want 1", skipped)
	}
	if kg.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", kg.EdgeCount())
	}
}

func TestPredicateMissingEdge(t *testing.T) {
	kg, _ := Build(triples.TripleSet{
		{Subject: "A", Predicate: "knows", Object: "B"},
	})

	if _, ok := kg.Predicate("B", "A"); ok {
		t.Fatal("Predicate() reported an edge in the reverse direction")
	}
	if _, ok := kg.Predicate("A", "C"); ok {
		t.Fatal("Predicate() reported an edge to an unknown entity")
	}
}

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderWritesPNG(t *testing.T) {
	kg, _ := Build(triples.TripleSet{
		{Subject: "Alice", Predicate: "knows", Object: "Bob"},
		{Subject: "Bob", Predicate: "likes", Object: "Carol"},
	})

	path := filepath.Join(t.TempDir(), "graph.png")
	if err := kg.Render(path, RenderOptions{Seed: 1}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read rendered image: %v", err)
	}
	if len(data) <= len(pngMagic) {
		t.Fatalf("rendered image is %d bytes, want more than the PNG header", len(data))
	}
	for i, b := range pngMagic {
		if data[i] != b {
			t.Fatalf("rendered image does not start with the PNG signature")
		}
	}
}

func TestRenderSingleNodePair(t *testing.T) {
	kg, _ := Build(triples.TripleSet{
		{Subject: "A", Predicate: "knows", Object: "B"},
	})

	path := filepath.Join(t.TempDir(), "pair.png")
	if err := kg.Render(path, RenderOptions{Seed: 7, Width: 400, Height: 300}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("rendered image missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("rendered image is empty")
	}
}
