package cir

// Attribute keys shared by node constructors and the diagram emitters.
// Keeping them as constants avoids typos between the adapters (which
// write these attrs) and diagram (which reads them).
const (
	AttrName          = "name"
	AttrKind          = "kind"
	AttrVisibility    = "visibility"
	AttrPackage       = "package"
	AttrModifiers     = "modifiers"
	AttrIsAbstract    = "is_abstract"
	AttrIsFinal       = "is_final"
	AttrTypeName      = "type_name"
	AttrRawType       = "raw_type"
	AttrMultiplicity  = "multiplicity"
	AttrReturnType    = "return_type"
	AttrRawReturnType = "raw_return_type"
	AttrIsConstructor = "is_constructor"
	AttrIsStatic      = "is_static"
	AttrOrder         = "order"
)

// NewTypeDeclNode builds the Attrs bag for a TypeDecl node (spec §3).
func NewTypeDeclNode(id, name string, kind TypeKind, visibility Visibility, pkg string, modifiers []string, isAbstract, isFinal bool) (string, NodeKind, map[string]interface{}) {
	return id, KindTypeDecl, map[string]interface{}{
		AttrName:       name,
		AttrKind:       string(kind),
		AttrVisibility: string(visibility),
		AttrPackage:    pkg,
		AttrModifiers:  modifiers,
		AttrIsAbstract: isAbstract,
		AttrIsFinal:    isFinal,
	}
}

// NewFieldNode builds the Attrs bag for a Field node (spec §3).
func NewFieldNode(id, name, typeName, rawType string, visibility Visibility, modifiers []string, mult Multiplicity) (string, NodeKind, map[string]interface{}) {
	return id, KindField, map[string]interface{}{
		AttrName:         name,
		AttrTypeName:     typeName,
		AttrRawType:      rawType,
		AttrVisibility:   string(visibility),
		AttrModifiers:    modifiers,
		AttrMultiplicity: string(mult),
	}
}

// NewMethodNode builds the Attrs bag for a Method node (spec §3).
func NewMethodNode(id, name, returnType, rawReturnType string, visibility Visibility, modifiers []string, isCtor, isStatic, isAbstract, isFinal bool) (string, NodeKind, map[string]interface{}) {
	return id, KindMethod, map[string]interface{}{
		AttrName:          name,
		AttrReturnType:    returnType,
		AttrRawReturnType: rawReturnType,
		AttrVisibility:    string(visibility),
		AttrModifiers:     modifiers,
		AttrIsConstructor: isCtor,
		AttrIsStatic:      isStatic,
		AttrIsAbstract:    isAbstract,
		AttrIsFinal:       isFinal,
	}
}

// NewParameterNode builds the Attrs bag for a Parameter node (spec §3).
func NewParameterNode(id, name, typeName, rawType string) (string, NodeKind, map[string]interface{}) {
	return id, KindParameter, map[string]interface{}{
		AttrName:     name,
		AttrTypeName: typeName,
		AttrRawType:  rawType,
	}
}

// AssociatesAttrs builds the attribute bag for an ASSOCIATES edge.
func AssociatesAttrs(mult Multiplicity) map[string]interface{} {
	return map[string]interface{}{AttrMultiplicity: string(mult)}
}

// CallsAttrs builds the attribute bag for a CALLS edge.
func CallsAttrs(order int) map[string]interface{} {
	return map[string]interface{}{AttrOrder: order}
}

// Str reads a string attribute, returning "" if absent or of the wrong type.
func (n *Node) Str(key string) string {
	if v, ok := n.Attrs[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Bool reads a bool attribute, returning false if absent or of the wrong type.
func (n *Node) Bool(key string) bool {
	if v, ok := n.Attrs[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Strs reads a []string attribute, returning nil if absent or of the wrong type.
func (n *Node) Strs(key string) []string {
	if v, ok := n.Attrs[key]; ok {
		if s, ok := v.([]string); ok {
			return s
		}
	}
	return nil
}

// Int reads an int attribute on an edge's Attrs bag.
func (e *Edge) Int(key string) int {
	if v, ok := e.Attrs[key]; ok {
		if i, ok := v.(int); ok {
			return i
		}
	}
	return 0
}

// Str reads a string attribute on an edge's Attrs bag.
func (e *Edge) Str(key string) string {
	if v, ok := e.Attrs[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
