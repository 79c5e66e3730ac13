package python

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

// parseFile extracts the module's top-level class definitions. Nested
// classes are never visited because they only appear as descendants of
// another class_definition's body, not as a direct child of root
// (mirrors python_adapter.py's _is_nested_in_class filter, for free).
func parseFile(root *sitter.Node, src []byte, path string) ([]*adapter.Unit, error) {
	pkg := modulePackage(path)

	var units []*adapter.Unit
	for i := 0; i < int(root.NamedChildCount()); i++ {
		def, decorators := unwrapDecorated(root.NamedChild(i))
		if def == nil || def.Type() != "class_definition" {
			continue
		}
		if u := parseClassDefinition(def, decorators, src, pkg, path); u != nil {
			units = append(units, u)
		}
	}
	return units, nil
}

// modulePackage derives a dotted module path from a file path
// ("shop/order.py" -> "shop.order"), grounded on python_adapter.py's
// _process_module.
func modulePackage(path string) string {
	p := strings.ReplaceAll(path, "\\", "/")
	p = strings.TrimSuffix(p, ".py")
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return strings.ReplaceAll(p, "/", ".")
}

func parseClassDefinition(node *sitter.Node, decorators []*sitter.Node, src []byte, pkg, path string) *adapter.Unit {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(src)
	fqn := cir.FQN(pkg, name)

	var extends, implements []string
	isAbstract := false
	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := 0; i < int(supers.NamedChildCount()); i++ {
			base := adapter.ShortName(supers.NamedChild(i).Content(src))
			if base == "" || base == "object" {
				continue
			}
			if base == "ABC" {
				implements = append(implements, base)
				isAbstract = true
				continue
			}
			extends = append(extends, base)
		}
	}

	var modifiers []string
	if isAbstract {
		modifiers = append(modifiers, "abstract")
	}
	if hasDecorator(decorators, src, "dataclass") {
		modifiers = append(modifiers, "dataclass")
	}

	u := &adapter.Unit{
		TypeID:     cir.TypeID(fqn),
		Short:      name,
		FQN:        fqn,
		Package:    pkg,
		Path:       path,
		Kind:       cir.ClassKind,
		Visibility: cir.Public, // Python classes are always public at module level.
		Modifiers:  modifiers,
		IsAbstract: isAbstract,
		Extends:    extends,
		Implements: implements,
	}

	if body := node.ChildByFieldName("body"); body != nil {
		parseClassBody(body, src, u)
	}

	if isAbcInterface(u) {
		u.Kind = cir.InterfaceKind
	}
	return u
}

// isAbcInterface mirrors python_adapter.py's _is_abc_interface: an ABC
// subclass whose every public method is @abstractmethod is rendered as
// an interface rather than an abstract class.
func isAbcInterface(u *adapter.Unit) bool {
	if !u.IsAbstract {
		return false
	}
	var public []*adapter.MethodUnit
	for _, m := range u.Methods {
		if !strings.HasPrefix(m.Name, "_") {
			public = append(public, m)
		}
	}
	if len(public) == 0 {
		return false
	}
	for _, m := range public {
		if !m.IsAbstract {
			return false
		}
	}
	return true
}
