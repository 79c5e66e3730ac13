package diagram

import (
	"sort"

	"github.com/viant/umlforge/cir"
)

// relationLines renders deduplicated, sorted relationship lines per
// spec §4.4.a: INHERITS "--|>", IMPLEMENTS "..|>", ASSOCIATES "-->"
// (with a quoted multiplicity label when it isn't "1" or empty),
// DEPENDS_ON "..>". nameOf resolves a TypeDecl id to its display name
// and reports false for ids outside the current diagram's scope.
func relationLines(g *cir.Graph, nameOf func(id string) (string, bool)) []string {
	seen := map[string]bool{}
	var lines []string

	add := func(line string) {
		if seen[line] {
			return
		}
		seen[line] = true
		lines = append(lines, line)
	}

	plain := func(edges []*cir.Edge, arrow string) {
		for _, e := range edges {
			srcName, ok1 := nameOf(e.Src)
			dstName, ok2 := nameOf(e.Dst)
			if !ok1 || !ok2 {
				continue
			}
			add(srcName + " " + arrow + " " + dstName)
		}
	}

	associations := func(edges []*cir.Edge) {
		for _, e := range edges {
			srcName, ok1 := nameOf(e.Src)
			dstName, ok2 := nameOf(e.Dst)
			if !ok1 || !ok2 {
				continue
			}
			mult := e.Str(cir.AttrMultiplicity)
			if mult != "" && mult != "1" {
				add(srcName + ` --> "` + mult + `" ` + dstName)
				continue
			}
			add(srcName + " --> " + dstName)
		}
	}

	plain(g.EdgesByType(cir.Inherits), "--|>")
	plain(g.EdgesByType(cir.Implements), "..|>")
	associations(g.EdgesByType(cir.Associates))
	plain(g.EdgesByType(cir.DependsOn), "..>")

	sort.Strings(lines)
	return lines
}
