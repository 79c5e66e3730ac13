package diagram

import (
	"sort"

	"github.com/viant/umlforge/cir"
)

// typeEntry gathers one TypeDecl's own node plus its Field/Method
// member nodes, grounded on uml_rules.py's _extract_types_and_members.
type typeEntry struct {
	Node    *cir.Node
	Fields  []*cir.Node
	Methods []*cir.Node
}

// buildIndex groups every TypeDecl node in g with its HAS_FIELD/
// HAS_METHOD members, keyed by TypeDecl id.
func buildIndex(g *cir.Graph) map[string]*typeEntry {
	out := map[string]*typeEntry{}
	for _, n := range g.NodesByKind(cir.KindTypeDecl) {
		out[n.ID] = &typeEntry{Node: n}
	}
	for _, e := range g.EdgesByType(cir.HasField) {
		t, ok := out[e.Src]
		if !ok {
			continue
		}
		if n, ok := g.GetNode(e.Dst); ok {
			t.Fields = append(t.Fields, n)
		}
	}
	for _, e := range g.EdgesByType(cir.HasMethod) {
		t, ok := out[e.Src]
		if !ok {
			continue
		}
		if n, ok := g.GetNode(e.Dst); ok {
			t.Methods = append(t.Methods, n)
		}
	}
	return out
}

// sortedTypeIDs returns every key of idx sorted, for deterministic
// top-to-bottom emission (spec §4.4 "deterministic for identical CIR").
func sortedTypeIDs(idx map[string]*typeEntry) []string {
	ids := make([]string, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
