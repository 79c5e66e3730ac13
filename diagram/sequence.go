package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/umlforge/cir"
)

// entryCandidates is the fallback priority order for picking a starting
// method when no "main" exists (spec §4.4.c).
var entryCandidates = []string{"run", "start", "execute", "process", "handle", "dispatch"}

func isDunder(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// Sequence renders the CIR sequence diagram (spec §4.4.c): a DFS over
// CALLS edges from a heuristically chosen entry method, sorted by each
// edge's order attribute and cycle-safe via a visited set on method ids.
func Sequence(g *cir.Graph) string {
	ownerOf := map[string]string{} // method id -> owning TypeDecl id
	for _, e := range g.EdgesByType(cir.HasMethod) {
		ownerOf[e.Dst] = e.Src
	}

	methodNode := map[string]*cir.Node{}
	for _, n := range g.NodesByKind(cir.KindMethod) {
		methodNode[n.ID] = n
	}

	adjacency := map[string][]*cir.Edge{}
	for _, e := range g.EdgesByType(cir.Calls) {
		dst, ok := methodNode[e.Dst]
		if !ok || (isDunder(dst.Str(cir.AttrName)) && !dst.Bool(cir.AttrIsConstructor)) {
			continue
		}
		adjacency[e.Src] = append(adjacency[e.Src], e)
	}

	entry, ok := pickEntryMethod(methodNode, adjacency)
	if !ok {
		return "@startuml\nnote \"no resolvable CALLS chain\" as N1\n@enduml\n"
	}

	type step struct{ src, dst, label string }
	var steps []step
	visited := map[string]bool{}
	classesSeen := map[string]bool{}

	var walk func(methodID string)
	walk = func(methodID string) {
		if visited[methodID] {
			return
		}
		visited[methodID] = true

		edges := append([]*cir.Edge(nil), adjacency[methodID]...)
		sort.SliceStable(edges, func(i, j int) bool {
			return edges[i].Int(cir.AttrOrder) < edges[j].Int(cir.AttrOrder)
		})

		for _, e := range edges {
			srcOwner, hasSrcOwner := ownerOf[e.Src]
			dstOwner, hasDstOwner := ownerOf[e.Dst]
			if !hasSrcOwner || !hasDstOwner {
				continue
			}
			srcType, hasSrcType := g.GetNode(srcOwner)
			dstType, hasDstType := g.GetNode(dstOwner)
			if !hasSrcType || !hasDstType {
				continue
			}
			dstMethod := methodNode[e.Dst]

			label := dstMethod.Str(cir.AttrName) + "()"
			if dstMethod.Bool(cir.AttrIsConstructor) {
				label = "<<create>>"
			}

			srcName, dstName := srcType.Str(cir.AttrName), dstType.Str(cir.AttrName)
			classesSeen[srcName] = true
			classesSeen[dstName] = true
			steps = append(steps, step{srcName, dstName, label})

			walk(e.Dst)
		}
	}
	walk(entry)

	var classNames []string
	for c := range classesSeen {
		classNames = append(classNames, c)
	}
	sort.Strings(classNames)

	var b strings.Builder
	b.WriteString("@startuml\n")
	for _, c := range classNames {
		fmt.Fprintf(&b, "participant %s\n", c)
	}
	for _, s := range steps {
		fmt.Fprintf(&b, "%s -> %s : %s\n", s.src, s.dst, s.label)
	}
	b.WriteString("@enduml\n")
	return b.String()
}

// pickEntryMethod chooses the sequence diagram's starting method:
// "main" if it has outgoing calls, else the first of entryCandidates
// that does, else any non-dunder method with outgoing calls. Ties
// within a name are broken by the smallest method id for determinism.
func pickEntryMethod(methodNode map[string]*cir.Node, adjacency map[string][]*cir.Edge) (string, bool) {
	hasOutgoing := func(id string) bool { return len(adjacency[id]) > 0 }

	pickByName := func(name string) (string, bool) {
		var candidates []string
		for id, n := range methodNode {
			if n.Str(cir.AttrName) == name && hasOutgoing(id) {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			return "", false
		}
		sort.Strings(candidates)
		return candidates[0], true
	}

	if id, ok := pickByName("main"); ok {
		return id, true
	}
	for _, name := range entryCandidates {
		if id, ok := pickByName(name); ok {
			return id, true
		}
	}

	var any []string
	for id, n := range methodNode {
		if !isDunder(n.Str(cir.AttrName)) && hasOutgoing(id) {
			any = append(any, id)
		}
	}
	if len(any) == 0 {
		return "", false
	}
	sort.Strings(any)
	return any[0], true
}
