// Package resolve implements the cross-file resolver (C3): it turns
// the string references recorded on each adapter.Unit (Extends,
// Implements, Field/Parameter/return type names, CallRefs) into CIR
// graph edges, grounded on the disambiguation-by-package rule and the
// qualifier-kind CALLS resolution table in spec §4.3, mirrored from
// python_adapter.py's _add_relationship_edges / resolve_type.
package resolve

import (
	"sort"
	"strings"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// indices are the three lookup structures the resolver builds once
// over all Units before resolving any reference (spec §4.3).
type indices struct {
	fqnToID   map[string]string   // FQN -> TypeDecl id
	shortToID map[string][]string // short name -> []TypeDecl id
	idToUnit  map[string]*adapter.Unit
}

func buildIndices(units []*adapter.Unit) *indices {
	idx := &indices{
		fqnToID:   map[string]string{},
		shortToID: map[string][]string{},
		idToUnit:  map[string]*adapter.Unit{},
	}
	for _, u := range units {
		idx.fqnToID[u.FQN] = u.TypeID
		idx.shortToID[u.Short] = append(idx.shortToID[u.Short], u.TypeID)
		idx.idToUnit[u.TypeID] = u
	}
	return idx
}

// resolveType resolves a bare or dotted type name recorded against a
// source Unit into a target TypeDecl id, applying the disambiguation
// rule: more than one short-name candidate is restricted to the
// source's package, and anything still ambiguous yields no edge
// (spec §4.3 "Disambiguation rule").
func (idx *indices) resolveType(name string, src *adapter.Unit) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if id, ok := idx.fqnToID[name]; ok {
		return id, true
	}

	candidates := idx.shortToID[name]
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0], true
	}

	var samePkg []string
	for _, c := range candidates {
		if u := idx.idToUnit[c]; u != nil && u.Package == src.Package {
			samePkg = append(samePkg, c)
		}
	}
	if len(samePkg) == 1 {
		return samePkg[0], true
	}
	return "", false
}

// methodIndex maps (type id, method name) -> method id, built once over
// all Units for CALLS target resolution.
func buildMethodIndex(units []*adapter.Unit) map[[2]string]string {
	out := map[[2]string]string{}
	for _, u := range units {
		for _, m := range u.Methods {
			out[[2]string{u.TypeID, m.Name}] = m.ID
		}
	}
	return out
}

// Resolve runs the cross-file resolver over every Unit produced by one
// or more adapter.ParseProject calls, adding INHERITS, IMPLEMENTS,
// ASSOCIATES, DEPENDS_ON and CALLS edges to g. Units from multiple
// languages/files can be mixed in one call (spec §5 "project-wide
// resolution across every parsed file, regardless of source language").
func Resolve(g *cir.Graph, units []*adapter.Unit) {
	idx := buildIndices(units)
	methods := buildMethodIndex(units)

	// Deterministic iteration: Units are resolved in FQN order so that
	// edge emission order (and therefore DebugJSON/Digest) does not
	// depend on file processing order (spec §8).
	sorted := make([]*adapter.Unit, len(units))
	copy(sorted, units)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FQN < sorted[j].FQN })

	for _, u := range sorted {
		resolveInheritance(g, idx, u)
		resolveAssociations(g, idx, u)
		resolveDependencies(g, idx, u)
		resolveCalls(g, idx, methods, u)
	}
}

func resolveInheritance(g *cir.Graph, idx *indices, u *adapter.Unit) {
	for _, base := range u.Extends {
		if target, ok := idx.resolveType(base, u); ok && target != u.TypeID {
			g.AddEdge(u.TypeID, target, cir.Inherits, nil)
		}
	}
	for _, iface := range u.Implements {
		if target, ok := idx.resolveType(iface, u); ok && target != u.TypeID {
			g.AddEdge(u.TypeID, target, cir.Implements, nil)
		}
	}
}

func resolveAssociations(g *cir.Graph, idx *indices, u *adapter.Unit) {
	for _, f := range u.Fields {
		if f.TypeName == "" || adapter.IsPrimitive(f.TypeName) {
			continue
		}
		target, ok := idx.resolveType(f.TypeName, u)
		if !ok || target == u.TypeID {
			continue
		}
		g.AddEdge(u.TypeID, target, cir.Associates, cir.AssociatesAttrs(f.Multiplicity))
	}
}

func resolveDependencies(g *cir.Graph, idx *indices, u *adapter.Unit) {
	for _, m := range u.Methods {
		for _, p := range m.Parameters {
			if p.TypeName == "" || adapter.IsPrimitive(p.TypeName) {
				continue
			}
			if target, ok := idx.resolveType(p.TypeName, u); ok && target != u.TypeID {
				g.AddEdge(u.TypeID, target, cir.DependsOn, nil)
			}
		}
		if m.ReturnType == "" || adapter.IsPrimitive(m.ReturnType) {
			continue
		}
		if target, ok := idx.resolveType(m.ReturnType, u); ok && target != u.TypeID {
			g.AddEdge(u.TypeID, target, cir.DependsOn, nil)
		}
	}
}

func resolveCalls(g *cir.Graph, idx *indices, methods map[[2]string]string, u *adapter.Unit) {
	fieldTypeByName := map[string]string{}
	for _, f := range u.Fields {
		fieldTypeByName[f.Name] = f.TypeName
	}
	paramTypesByMethod := map[string]map[string]string{}
	for _, m := range u.Methods {
		pt := map[string]string{}
		for _, p := range m.Parameters {
			pt[p.Name] = p.TypeName
		}
		paramTypesByMethod[m.ID] = pt
	}

	for _, c := range u.Calls {
		if c.SrcMethodID == "" || c.Member == "" {
			continue
		}

		targetType := u.TypeID

		switch c.Qualifier {
		case adapter.QualSuper:
			if len(u.Extends) > 0 {
				if t, ok := idx.resolveType(u.Extends[0], u); ok {
					targetType = t
				}
			}
		case adapter.QualStatic, adapter.QualNew:
			t, ok := idx.resolveType(c.Qualifiers, u)
			if !ok {
				continue
			}
			targetType = t
		case adapter.QualVar:
			varType := fieldTypeByName[c.Qualifiers]
			if varType == "" {
				varType = paramTypesByMethod[c.SrcMethodID][c.Qualifiers]
			}
			if varType == "" {
				continue
			}
			t, ok := idx.resolveType(varType, u)
			if !ok {
				continue
			}
			targetType = t
		case adapter.QualSelf, adapter.QualCls:
			targetType = u.TypeID
		case adapter.QualNone:
			continue
		default:
			continue
		}

		dstMethodID, ok := methods[[2]string{targetType, c.Member}]
		if !ok {
			continue
		}
		g.AddEdge(c.SrcMethodID, dstMethodID, cir.Calls, cir.CallsAttrs(c.Order))
	}
}
