package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/umlforge/cir"
)

const defaultPackageLabel = "(default)"

// Package renders the CIR package diagram (spec §4.4.b): TypeDecls
// grouped by their package attribute into "package \"name\" { ... }"
// blocks, types with no package falling into an unwrapped default
// group, followed by the same relationship lines as the class diagram.
func Package(g *cir.Graph) string {
	idx := buildIndex(g)
	ids := sortedTypeIDs(idx)

	grouped := map[string][]string{}
	for _, id := range ids {
		pkg := idx[id].Node.Str(cir.AttrPackage)
		if pkg == "" {
			pkg = defaultPackageLabel
		}
		grouped[pkg] = append(grouped[pkg], id)
	}

	var pkgNames []string
	for p := range grouped {
		pkgNames = append(pkgNames, p)
	}
	sort.Strings(pkgNames)

	var b strings.Builder
	b.WriteString("@startuml\n")
	for _, pkg := range pkgNames {
		if pkg == defaultPackageLabel {
			for _, id := range grouped[pkg] {
				renderTypeBlock(&b, g, idx[id], "")
			}
			continue
		}
		fmt.Fprintf(&b, "package %q {\n", pkg)
		for _, id := range grouped[pkg] {
			renderTypeBlock(&b, g, idx[id], "  ")
		}
		b.WriteString("}\n")
	}

	for _, line := range relationLines(g, nameOfFunc(idx)) {
		b.WriteString(line + "\n")
	}
	b.WriteString("@enduml\n")
	return b.String()
}
