package graph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"kgraph/pkg/triples"
)

// Entity is a graph node identified by its name. Names are deduplicated by
// exact string equality.
type Entity struct {
	id   int64
	Name string
}

// ID implements graph.Node.
func (e Entity) ID() int64 { return e.id }

// Relation is a directed, predicate-labeled edge between two entities.
type Relation struct {
	F, T      graph.Node
	Predicate string
}

// From implements graph.Edge.
func (r Relation) From() graph.Node { return r.F }

// To implements graph.Edge.
func (r Relation) To() graph.Node { return r.T }

// ReversedEdge implements graph.Edge.
func (r Relation) ReversedEdge() graph.Edge {
	r.F, r.T = r.T, r.F
	return r
}

// KnowledgeGraph is a directed graph of entities connected by labeled
// relations, built fresh from a TripleSet for a single request.
//
// The underlying representation holds at most one edge per ordered
// (subject, object) pair: when several triples share the pair, the
// last-inserted predicate wins.
type KnowledgeGraph struct {
	dg  *simple.DirectedGraph
	ids map[string]int64
}

// Build constructs a KnowledgeGraph from the given triples. Triples with
// any empty field are skipped, as are self-referential triples whose
// subject equals their object (the edge representation does not admit
// self-loops). The number of skipped triples is returned alongside the
// graph.
func Build(set triples.TripleSet) (*KnowledgeGraph, int) {
	kg := &KnowledgeGraph{
		dg:  simple.NewDirectedGraph(),
		ids: make(map[string]int64),
	}

	skipped := 0
	for _, t := range set {
		if !t.Complete() || t.Subject == t.Object {
			skipped++
			continue
		}
		kg.dg.SetEdge(Relation{
			F:         kg.entity(t.Subject),
			T:         kg.entity(t.Object),
			Predicate: t.Predicate,
		})
	}

	return kg, skipped
}

func (kg *KnowledgeGraph) entity(name string) graph.Node {
	if id, ok := kg.ids[name]; ok {
		return kg.dg.Node(id)
	}
	e := Entity{id: kg.dg.NewNode().ID(), Name: name}
	kg.dg.AddNode(e)
	kg.ids[name] = e.id
	return e
}

// NodeCount returns the number of distinct entities in the graph.
func (kg *KnowledgeGraph) NodeCount() int {
	return kg.dg.Nodes().Len()
}

// EdgeCount returns the number of relations in the graph.
func (kg *KnowledgeGraph) EdgeCount() int {
	return kg.dg.Edges().Len()
}

// Predicate returns the label of the edge from subject to object, if one
// exists.
func (kg *KnowledgeGraph) Predicate(subject, object string) (string, bool) {
	sid, ok := kg.ids[subject]
	if !ok {
		return "", false
	}
	oid, ok := kg.ids[object]
	if !ok {
		return "", false
	}
	edge := kg.dg.Edge(sid, oid)
	if edge == nil {
		return "", false
	}
	return edge.(Relation).Predicate, true
}

// relations returns all edges with their endpoint entities resolved.
func (kg *KnowledgeGraph) relations() []Relation {
	edges := kg.dg.Edges()
	out := make([]Relation, 0, edges.Len())
	for edges.Next() {
		out = append(out, edges.Edge().(Relation))
	}
	return out
}

// entities returns all nodes of the graph.
func (kg *KnowledgeGraph) entities() []Entity {
	nodes := kg.dg.Nodes()
	out := make([]Entity, 0, nodes.Len())
	for nodes.Next() {
		out = append(out, nodes.Node().(Entity))
	}
	return out
}
