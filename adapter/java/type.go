package java

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// typeInfo converts a Java type AST node into (logical, raw,
// multiplicity) per the mapping table in spec §4.2.d.
func typeInfo(node *sitter.Node, src []byte) (logical, raw string, mult cir.Multiplicity) {
	if node == nil {
		return "void", "void", ""
	}
	raw = node.Content(src)

	switch node.Type() {
	case "void_type":
		return "void", raw, ""
	case "array_type":
		elem := node.ChildByFieldName("element")
		if elem == nil {
			logical, _ = adapter.ResolveAnnotation(raw, nil, true)
			return logical, raw, cir.ZeroOrMany
		}
		logical, _ = adapter.ResolveAnnotation(elem.Content(src), nil, true)
		return logical, raw, cir.ZeroOrMany
	case "generic_type":
		nameNode := node.NamedChild(0)
		head := raw
		if nameNode != nil {
			head = nameNode.Content(src)
		}
		var args []string
		for i := 1; i < int(node.NamedChildCount()); i++ {
			argsNode := node.NamedChild(i)
			if argsNode.Type() != "type_arguments" {
				continue
			}
			for j := 0; j < int(argsNode.NamedChildCount()); j++ {
				args = append(args, argsNode.NamedChild(j).Content(src))
			}
		}
		logical, mult = adapter.ResolveAnnotation(head, args, false)
		return logical, raw, mult
	default:
		logical, mult = adapter.ResolveAnnotation(raw, nil, false)
		return logical, raw, mult
	}
}
