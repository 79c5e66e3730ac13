// Package cir implements the Code Intermediate Representation: a typed,
// directed multigraph of TypeDecl/Field/Method/Parameter nodes connected
// by labelled edges (HAS_FIELD, HAS_METHOD, PARAM_OF, INHERITS,
// IMPLEMENTS, ASSOCIATES, DEPENDS_ON, CALLS).
//
// A Graph is built once by a parse run and never mutated afterwards;
// callers project it through the diagram emitters in package diagram.
package cir

import (
	"encoding/json"
	"sort"
)

// NodeKind identifies the class of a CIR node.
type NodeKind string

const (
	KindTypeDecl  NodeKind = "TypeDecl"
	KindField     NodeKind = "Field"
	KindMethod    NodeKind = "Method"
	KindParameter NodeKind = "Parameter"
)

// EdgeLabel identifies the relationship an Edge records.
type EdgeLabel string

const (
	HasField   EdgeLabel = "HAS_FIELD"
	HasMethod  EdgeLabel = "HAS_METHOD"
	ParamOf    EdgeLabel = "PARAM_OF"
	Inherits   EdgeLabel = "INHERITS"
	Implements EdgeLabel = "IMPLEMENTS"
	Associates EdgeLabel = "ASSOCIATES"
	DependsOn  EdgeLabel = "DEPENDS_ON"
	Calls      EdgeLabel = "CALLS"
)

// Visibility is a member or type visibility modifier.
type Visibility string

const (
	Public    Visibility = "public"
	Private   Visibility = "private"
	Protected Visibility = "protected"
	Package   Visibility = "package"
)

// TypeKind distinguishes the three TypeDecl shapes the spec recognises.
type TypeKind string

const (
	ClassKind     TypeKind = "class"
	InterfaceKind TypeKind = "interface"
	EnumKind      TypeKind = "enum"
)

// Multiplicity is the cardinality tag carried by fields and ASSOCIATES edges.
type Multiplicity string

const (
	One        Multiplicity = "1"
	ZeroOrOne  Multiplicity = "0..1"
	OneOrMany  Multiplicity = "1..*"
	ZeroOrMany Multiplicity = "0..*"
)

// Node is a typed vertex in the CIR. Attrs carries kind-specific
// attributes (see the New*Node constructors) as a plain bag so the
// debug JSON view and the emitters can stay oblivious to Go struct
// shapes, mirroring the teacher's IRNode.Properties approach.
type Node struct {
	ID    string
	Kind  NodeKind
	Attrs map[string]interface{}
}

// Edge is a labelled, directed connection between two node ids. The
// same label may appear more than once between the same endpoints;
// AddEdge never deduplicates, callers that need a set (the diagram
// emitters) collapse duplicates themselves.
type Edge struct {
	Src   string
	Dst   string
	Type  EdgeLabel
	Attrs map[string]interface{}

	seq int // insertion order, used to break ties in stable sorts
}

// Graph is the CIR container: a typed multigraph plus a graph-level
// attribute bag for cross-cutting data such as parse_errors.
type Graph struct {
	Attributes map[string]interface{}

	nodes   map[string]*Node
	order   []string // node ids in insertion order
	edges   []*Edge
	edgeSeq int
}

// NewGraph returns an empty, ready to use Graph.
func NewGraph() *Graph {
	return &Graph{
		Attributes: map[string]interface{}{},
		nodes:      map[string]*Node{},
	}
}

// AddNode adds a node by id with the given kind and attributes. It is
// idempotent on id: a second call with the same id replaces the node's
// kind/attrs in place rather than creating a duplicate (invariant 5).
func (g *Graph) AddNode(id string, kind NodeKind, attrs map[string]interface{}) *Node {
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	if existing, ok := g.nodes[id]; ok {
		existing.Kind = kind
		existing.Attrs = attrs
		return existing
	}
	n := &Node{ID: id, Kind: kind, Attrs: attrs}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

// GetNode looks up a node by id.
func (g *Graph) GetNode(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether a node with the given id has been added.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddEdge appends a labelled edge. Multiple edges with the same label
// between the same endpoints are allowed and preserved in insertion
// order; the emitters are responsible for deduplication.
func (g *Graph) AddEdge(src, dst string, edgeType EdgeLabel, attrs map[string]interface{}) *Edge {
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	e := &Edge{Src: src, Dst: dst, Type: edgeType, Attrs: attrs, seq: g.edgeSeq}
	g.edgeSeq++
	g.edges = append(g.edges, e)
	return e
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodesByKind returns nodes of the given kind in insertion order.
func (g *Graph) NodesByKind(kind NodeKind) []*Node {
	var out []*Node
	for _, id := range g.order {
		n := g.nodes[id]
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgesByType returns every edge with the given label, in insertion order.
func (g *Graph) EdgesByType(t EdgeLabel) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// EdgesFrom returns edges of the given label whose Src matches, in
// insertion order — used to recover e.g. a TypeDecl's HAS_FIELD edges
// in declaration order for the round-trip property in spec §8.
func (g *Graph) EdgesFrom(src string, t EdgeLabel) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Src == src && e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo returns edges of the given label whose Dst matches, in insertion order.
func (g *Graph) EdgesTo(dst string, t EdgeLabel) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Dst == dst && e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// debugNode / debugEdge mirror the wire shape from spec §6:
// {"nodes":[{"id","kind","attrs"}],"edges":[{"src","dst","type","attrs"}]}
type debugNode struct {
	ID    string                 `json:"id"`
	Kind  NodeKind               `json:"kind"`
	Attrs map[string]interface{} `json:"attrs"`
}

type debugEdge struct {
	Src   string                 `json:"src"`
	Dst   string                 `json:"dst"`
	Type  EdgeLabel              `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

type debugGraph struct {
	Nodes       []debugNode            `json:"nodes"`
	Edges       []debugEdge            `json:"edges"`
	ParseErrors interface{}            `json:"parse_errors,omitempty"`
	Attributes  map[string]interface{} `json:"-"`
}

// sortedNodes returns a copy of the node list sorted by id, giving
// DebugJSON and Digest a stable traversal order regardless of the
// order in which files were parsed (spec §5, §8).
func (g *Graph) sortedNodes() []*Node {
	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// sortedEdges returns a copy of the edge list sorted by (src, dst,
// type, insertion order); the insertion-order tiebreak keeps
// same-label parallel edges (e.g. two CALLS edges of distinct order)
// stable without imposing a false ordering on their attributes.
func (g *Graph) sortedEdges() []*Edge {
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Src != b.Src {
			return a.Src < b.Src
		}
		if a.Dst != b.Dst {
			return a.Dst < b.Dst
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.seq < b.seq
	})
	return edges
}

// DebugJSON renders the CIR debug view defined in spec §6. Output is
// deterministic: identical graphs produce byte-identical JSON.
func (g *Graph) DebugJSON() ([]byte, error) {
	dg := debugGraph{}
	for _, n := range g.sortedNodes() {
		dg.Nodes = append(dg.Nodes, debugNode{ID: n.ID, Kind: n.Kind, Attrs: n.Attrs})
	}
	for _, e := range g.sortedEdges() {
		dg.Edges = append(dg.Edges, debugEdge{Src: e.Src, Dst: e.Dst, Type: e.Type, Attrs: e.Attrs})
	}
	if dg.Nodes == nil {
		dg.Nodes = []debugNode{}
	}
	if dg.Edges == nil {
		dg.Edges = []debugEdge{}
	}
	if errs, ok := g.Attributes["parse_errors"]; ok {
		dg.ParseErrors = errs
	}
	return json.Marshal(dg)
}

// Digest returns a stable content hash of the graph's debug JSON,
// grounded on the teacher's inspector/graph/hash.go use of
// highwayhash for deterministic content hashing. Two graphs built
// from identical sources hash identically regardless of file
// processing order.
func (g *Graph) Digest() (uint64, error) {
	data, err := g.DebugJSON()
	if err != nil {
		return 0, err
	}
	return Hash(data)
}
