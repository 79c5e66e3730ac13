package python

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// parseClassBody walks a class body's direct statements: annotated
// class-level attributes (PEP 526) become Fields, function
// definitions become Methods, and __init__'s self-assignments are
// synthesised into additional Fields (spec §4.2.b), grounded on
// python_adapter.py's _process_class.
func parseClassBody(body *sitter.Node, src []byte, u *adapter.Unit) {
	seen := map[string]bool{}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)

		stmt := child
		if stmt.Type() == "expression_statement" && stmt.NamedChildCount() > 0 {
			stmt = stmt.NamedChild(0)
		}
		if stmt.Type() == "assignment" {
			if f := parseClassFieldAssignment(stmt, src, u.FQN); f != nil {
				seen[f.Name] = true
				u.Fields = append(u.Fields, f)
			}
			continue
		}

		def, decorators := unwrapDecorated(child)
		if def == nil || (def.Type() != "function_definition" && def.Type() != "async_function_definition") {
			continue
		}
		m := parseFunctionDefinition(def, decorators, src)
		if m == nil {
			continue
		}
		m.ID = cir.MethodID(u.FQN, m.Name, m.IsConstructor)
		finalizeParamIDs(u.FQN, m)
		u.Methods = append(u.Methods, m)
		u.Calls = append(u.Calls, extractCalls(def, src, m.ID)...)

		if m.IsConstructor {
			for _, f := range extractSelfFields(def, src, u.FQN) {
				if seen[f.Name] {
					continue
				}
				seen[f.Name] = true
				u.Fields = append(u.Fields, f)
			}
		}
	}
}

// parseClassFieldAssignment extracts a class-level annotated attribute
// ("name: Type = value" or "name: Type"); bare "name = value" with no
// annotation is not recorded as a field, matching python_adapter.py's
// AnnAssign-only rule.
func parseClassFieldAssignment(node *sitter.Node, src []byte, typeFQN string) *adapter.FieldUnit {
	left := node.ChildByFieldName("left")
	typeNode := node.ChildByFieldName("type")
	if left == nil || left.Type() != "identifier" || typeNode == nil {
		return nil
	}
	name := left.Content(src)
	logical, raw, mult := annotationInfo(typeNode.Content(src))
	return &adapter.FieldUnit{
		ID:           cir.FieldID(typeFQN, name),
		Name:         name,
		TypeName:     logical,
		RawType:      raw,
		Visibility:   adapter.VisibilityFromNameConvention(name),
		Multiplicity: mult,
	}
}

func parseFunctionDefinition(node *sitter.Node, decorators []*sitter.Node, src []byte) *adapter.MethodUnit {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(src)

	isStatic := hasDecorator(decorators, src, "staticmethod")
	isClassMethod := hasDecorator(decorators, src, "classmethod")
	isAbstract := hasDecorator(decorators, src, "abstractmethod")

	var modifiers []string
	if isStatic {
		modifiers = append(modifiers, "static")
	}
	if isClassMethod {
		modifiers = append(modifiers, "classmethod")
	}
	if isAbstract {
		modifiers = append(modifiers, "abstract")
	}

	logical, raw := "None", "None"
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		logical, raw, _ = annotationInfo(ret.Content(src))
	}

	return &adapter.MethodUnit{
		Name:          name,
		ReturnType:    logical,
		RawReturnType: raw,
		Visibility:    adapter.VisibilityFromNameConvention(name),
		Modifiers:     modifiers,
		IsConstructor: name == "__init__",
		IsStatic:      isStatic,
		IsAbstract:    isAbstract,
		Parameters:    parseParameters(node.ChildByFieldName("parameters"), src),
	}
}

// parseParameters extracts formal parameters, skipping the implicit
// self/cls receiver (spec §4.2.b).
func parseParameters(params *sitter.Node, src []byte) []*adapter.ParamUnit {
	if params == nil {
		return nil
	}
	var out []*adapter.ParamUnit
	for i := 0; i < int(params.NamedChildCount()); i++ {
		name, annotation, ok := paramNameAndType(params.NamedChild(i), src)
		if !ok || name == "self" || name == "cls" {
			continue
		}
		logical, raw := "Any", "Any"
		if annotation != "" {
			logical, raw, _ = annotationInfo(annotation)
		}
		out = append(out, &adapter.ParamUnit{Name: name, TypeName: logical, RawType: raw})
	}
	return out
}

func paramNameAndType(p *sitter.Node, src []byte) (name, annotation string, ok bool) {
	switch p.Type() {
	case "identifier":
		return p.Content(src), "", true
	case "typed_parameter":
		n := p.NamedChild(0)
		if n == nil {
			return "", "", false
		}
		name = n.Content(src)
		if t := p.ChildByFieldName("type"); t != nil {
			annotation = t.Content(src)
		}
		return name, annotation, true
	case "default_parameter":
		if n := p.ChildByFieldName("name"); n != nil {
			return n.Content(src), "", true
		}
	case "typed_default_parameter":
		n := p.ChildByFieldName("name")
		if n == nil {
			return "", "", false
		}
		name = n.Content(src)
		if t := p.ChildByFieldName("type"); t != nil {
			annotation = t.Content(src)
		}
		return name, annotation, true
	}
	return "", "", false
}

func finalizeParamIDs(typeFQN string, m *adapter.MethodUnit) {
	for _, p := range m.Parameters {
		p.ID = cir.ParamID(typeFQN, m.Name, p.Name)
	}
}
