package python

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// unwrapDecorated splits a decorated_definition into its decorators and
// the wrapped class_definition/function_definition. A plain
// (non-decorated) node passes through unchanged with a nil decorator list.
func unwrapDecorated(node *sitter.Node) (*sitter.Node, []*sitter.Node) {
	if node.Type() != "decorated_definition" {
		return node, nil
	}
	var decorators []*sitter.Node
	var def *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "decorator" {
			decorators = append(decorators, child)
		} else {
			def = child
		}
	}
	return def, decorators
}

// decoratorName extracts the simple name of a decorator, unwrapping
// attribute access (abc.abstractmethod) and call form (@dataclass(...)).
func decoratorName(dec *sitter.Node, src []byte) string {
	if dec.NamedChildCount() == 0 {
		return ""
	}
	return callableName(dec.NamedChild(0), src)
}

func callableName(n *sitter.Node, src []byte) string {
	switch n.Type() {
	case "identifier":
		return n.Content(src)
	case "attribute":
		if attr := n.ChildByFieldName("attribute"); attr != nil {
			return attr.Content(src)
		}
	case "call":
		if fn := n.ChildByFieldName("function"); fn != nil {
			return callableName(fn, src)
		}
	}
	return ""
}

func hasDecorator(decorators []*sitter.Node, src []byte, name string) bool {
	for _, d := range decorators {
		if decoratorName(d, src) == name {
			return true
		}
	}
	return false
}
