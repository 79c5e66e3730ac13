package diagram

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/viant/umlforge/cir"
)

var aliasSanitizer = regexp.MustCompile(`[^A-Za-z0-9_]+`)

func componentAlias(pkg string) string {
	if pkg == "" {
		pkg = defaultPackageLabel
	}
	alias := strings.Trim(aliasSanitizer.ReplaceAllString(pkg, "_"), "_")
	if alias == "" {
		alias = "default"
	}
	return "c_" + alias
}

// Component renders the CIR component diagram (spec §4.4.d): one
// component per package, with dependency lines for any INHERITS,
// IMPLEMENTS, ASSOCIATES or DEPENDS_ON edge that crosses a package
// boundary, deduplicated and sorted.
func Component(g *cir.Graph) string {
	idx := buildIndex(g)

	pkgOf := map[string]string{}
	for id, entry := range idx {
		pkg := entry.Node.Str(cir.AttrPackage)
		if pkg == "" {
			pkg = defaultPackageLabel
		}
		pkgOf[id] = pkg
	}

	seenPkg := map[string]bool{}
	var pkgNames []string
	for _, pkg := range pkgOf {
		if !seenPkg[pkg] {
			seenPkg[pkg] = true
			pkgNames = append(pkgNames, pkg)
		}
	}
	sort.Strings(pkgNames)

	var b strings.Builder
	b.WriteString("@startuml\n")
	for _, pkg := range pkgNames {
		fmt.Fprintf(&b, "component %q as %s\n", pkg, componentAlias(pkg))
	}

	seenLine := map[string]bool{}
	var lines []string
	record := func(edges []*cir.Edge) {
		for _, e := range edges {
			srcPkg, ok1 := pkgOf[e.Src]
			dstPkg, ok2 := pkgOf[e.Dst]
			if !ok1 || !ok2 || srcPkg == dstPkg {
				continue
			}
			line := componentAlias(srcPkg) + " ..> " + componentAlias(dstPkg)
			if seenLine[line] {
				continue
			}
			seenLine[line] = true
			lines = append(lines, line)
		}
	}
	record(g.EdgesByType(cir.Inherits))
	record(g.EdgesByType(cir.Implements))
	record(g.EdgesByType(cir.Associates))
	record(g.EdgesByType(cir.DependsOn))
	sort.Strings(lines)

	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("@enduml\n")
	return b.String()
}
