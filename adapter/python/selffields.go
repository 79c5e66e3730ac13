package python

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// extractSelfFields walks an __init__ body (anywhere in its subtree,
// not only top-level statements) and synthesises one Field per
// "self.x = ..." / "self.x: Type = ..." assignment, grounded on
// python_adapter.py's _extract_init_self_fields (spec §4.2.b).
func extractSelfFields(funcNode *sitter.Node, src []byte, typeFQN string) []*adapter.FieldUnit {
	body := funcNode.ChildByFieldName("body")
	if body == nil {
		return nil
	}

	seen := map[string]bool{}
	var out []*adapter.FieldUnit

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.Type() == "assignment" {
			if f := selfFieldFromAssignment(n, src, typeFQN); f != nil && !seen[f.Name] {
				seen[f.Name] = true
				out = append(out, f)
			}
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			visit(n.NamedChild(i))
		}
	}
	visit(body)
	return out
}

func selfFieldFromAssignment(n *sitter.Node, src []byte, typeFQN string) *adapter.FieldUnit {
	left := n.ChildByFieldName("left")
	if left == nil || left.Type() != "attribute" {
		return nil
	}
	obj := left.ChildByFieldName("object")
	attr := left.ChildByFieldName("attribute")
	if obj == nil || attr == nil || obj.Type() != "identifier" || obj.Content(src) != "self" {
		return nil
	}
	name := attr.Content(src)

	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		logical, raw, mult := annotationInfo(typeNode.Content(src))
		return &adapter.FieldUnit{
			ID: cir.FieldID(typeFQN, name), Name: name, TypeName: logical, RawType: raw,
			Visibility: adapter.VisibilityFromNameConvention(name), Multiplicity: mult,
		}
	}

	logical, raw, mult := inferRHSType(n.ChildByFieldName("right"), src)
	return &adapter.FieldUnit{
		ID: cir.FieldID(typeFQN, name), Name: name, TypeName: logical, RawType: raw,
		Visibility: adapter.VisibilityFromNameConvention(name), Multiplicity: mult,
	}
}

// inferRHSType is a best-effort type inference for unannotated
// self-assignments, grounded on python_adapter.py's _infer_rhs_type.
func inferRHSType(value *sitter.Node, src []byte) (logical, raw string, mult cir.Multiplicity) {
	if value == nil {
		return "Any", "Any", ""
	}
	switch value.Type() {
	case "string":
		return "str", "str", cir.One
	case "integer":
		return "int", "int", cir.One
	case "float":
		return "float", "float", cir.One
	case "true", "false":
		return "bool", "bool", cir.One
	case "list", "list_comprehension":
		return "list", "list", cir.ZeroOrMany
	case "set", "set_comprehension":
		return "set", "set", cir.ZeroOrMany
	case "dictionary", "dictionary_comprehension":
		return "dict", "dict", cir.ZeroOrMany
	case "none":
		return "None", "None", cir.ZeroOrOne
	case "call":
		if fn := value.ChildByFieldName("function"); fn != nil {
			if name := callableName(fn, src); name != "" {
				return name, name, cir.One
			}
		}
	}
	return "Any", "Any", ""
}
