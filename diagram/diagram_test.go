package diagram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/umlforge/cir"
	"github.com/viant/umlforge/diagram"
)

// buildShopGraph builds a small Animal/Dog + Order/LineItem CIR by
// hand, standing in for a resolved project graph.
func buildShopGraph() *cir.Graph {
	g := cir.NewGraph()

	g.AddNode(cir.NewTypeDeclNode("type:shop.Animal", "Animal", cir.ClassKind, cir.Public, "shop", nil, true, false))
	g.AddNode(cir.NewMethodNode("method:shop.Animal:speak", "speak", "void", "void", cir.Public, nil, false, false, true, false))
	g.AddEdge("type:shop.Animal", "method:shop.Animal:speak", cir.HasMethod, nil)

	g.AddNode(cir.NewTypeDeclNode("type:shop.Dog", "Dog", cir.ClassKind, cir.Public, "shop", nil, false, false))
	g.AddNode(cir.NewFieldNode("field:shop.Dog:order", "order", "Order", "Order", cir.Private, nil, cir.One))
	g.AddEdge("type:shop.Dog", "field:shop.Dog:order", cir.HasField, nil)
	g.AddNode(cir.NewMethodNode("method:shop.Dog:speak", "speak", "void", "void", cir.Public, nil, false, false, false, false))
	g.AddEdge("type:shop.Dog", "method:shop.Dog:speak", cir.HasMethod, nil)
	g.AddNode(cir.NewMethodNode("ctor:shop.Dog:Dog", "Dog", "void", "void", cir.Public, nil, true, false, false, false))
	g.AddEdge("type:shop.Dog", "ctor:shop.Dog:Dog", cir.HasMethod, nil)

	g.AddEdge("type:shop.Dog", "type:shop.Animal", cir.Inherits, nil)

	g.AddNode(cir.NewTypeDeclNode("type:shop.order.Order", "Order", cir.ClassKind, cir.Public, "shop.order", nil, false, false))
	g.AddNode(cir.NewFieldNode("field:shop.order.Order:items", "items", "LineItem", "List[LineItem]", cir.Private, nil, cir.OneOrMany))
	g.AddEdge("type:shop.order.Order", "field:shop.order.Order:items", cir.HasField, nil)
	g.AddNode(cir.NewMethodNode("method:shop.order.Order:total", "total", "float", "float", cir.Public, nil, false, false, false, false))
	g.AddEdge("type:shop.order.Order", "method:shop.order.Order:total", cir.HasMethod, nil)
	g.AddNode(cir.NewParameterNode("param:shop.order.Order:total:scale", "scale", "float", "float"))
	g.AddEdge("param:shop.order.Order:total:scale", "method:shop.order.Order:total", cir.ParamOf, nil)

	g.AddNode(cir.NewTypeDeclNode("type:shop.order.LineItem", "LineItem", cir.ClassKind, cir.Public, "shop.order", nil, false, false))

	g.AddEdge("type:shop.order.Order", "type:shop.order.LineItem", cir.Associates, cir.AssociatesAttrs(cir.OneOrMany))
	g.AddEdge("type:shop.Dog", "type:shop.order.Order", cir.Associates, cir.AssociatesAttrs(cir.One))
	g.AddEdge("type:shop.order.Order", "type:shop.Dog", cir.DependsOn, nil)

	g.AddEdge("method:shop.Dog:speak", "method:shop.order.Order:total", cir.Calls, cir.CallsAttrs(0))

	return g
}

func TestClass_RendersBlocksAndRelationships(t *testing.T) {
	out := diagram.Class(buildShopGraph())

	ok, errs := diagram.Validate(out)
	require.True(t, ok, errs)

	assert.True(t, strings.HasPrefix(out, "@startuml\n"))
	assert.Contains(t, out, "class Dog {")
	assert.Contains(t, out, "- order : Order")
	assert.Contains(t, out, "+ speak() : void")
	assert.NotContains(t, out, "Dog(")
	assert.Contains(t, out, "Dog --|> Animal")
	assert.Contains(t, out, `Order --> "1..*" LineItem`)
	assert.Contains(t, out, "Dog --> Order")
	assert.Contains(t, out, "Order ..> Dog")
}

func TestClass_DeterministicAcrossRepeatedCalls(t *testing.T) {
	g := buildShopGraph()
	first := diagram.Class(g)
	second := diagram.Class(g)
	assert.Equal(t, first, second)
}

func TestPackage_GroupsByPackage(t *testing.T) {
	out := diagram.Package(buildShopGraph())

	ok, errs := diagram.Validate(out)
	require.True(t, ok, errs)

	assert.Contains(t, out, `package "shop.order" {`)
	assert.Contains(t, out, "class Animal {")
	assert.NotContains(t, out, `package "(default)"`)
}

func TestPackage_UntaggedTypeFallsIntoDefaultUnwrapped(t *testing.T) {
	g := cir.NewGraph()
	g.AddNode(cir.NewTypeDeclNode("type:Loose", "Loose", cir.ClassKind, cir.Public, "", nil, false, false))

	out := diagram.Package(g)
	assert.Contains(t, out, "class Loose {")
	assert.NotContains(t, out, "package")
}

func TestComponent_EmitsCrossPackageDependencyOnly(t *testing.T) {
	out := diagram.Component(buildShopGraph())

	ok, errs := diagram.Validate(out)
	require.True(t, ok, errs)

	assert.Contains(t, out, `component "shop" as c_shop`)
	assert.Contains(t, out, `component "shop.order" as c_shop_order`)
	assert.Contains(t, out, "c_shop ..> c_shop_order")
	assert.Contains(t, out, "c_shop_order ..> c_shop")
	// Dog --|> Animal is same-package (shop) and must not produce a line.
	count := strings.Count(out, "c_shop ..> c_shop\n")
	assert.Equal(t, 0, count)
}

func TestSequence_WalksFromEntryMethod(t *testing.T) {
	out := diagram.Sequence(buildShopGraph())

	ok, errs := diagram.Validate(out)
	require.True(t, ok, errs)

	assert.Contains(t, out, "participant Dog")
	assert.Contains(t, out, "participant Order")
	assert.Contains(t, out, "Dog -> Order : total()")
}

func TestSequence_NoCallsEmitsNote(t *testing.T) {
	g := cir.NewGraph()
	g.AddNode(cir.NewTypeDeclNode("type:Empty", "Empty", cir.ClassKind, cir.Public, "", nil, false, false))

	out := diagram.Sequence(g)
	ok, errs := diagram.Validate(out)
	require.True(t, ok, errs)
	assert.Contains(t, out, "note ")
}

func TestSequence_PrefersMainEntryPoint(t *testing.T) {
	g := cir.NewGraph()
	g.AddNode(cir.NewTypeDeclNode("type:App", "App", cir.ClassKind, cir.Public, "", nil, false, false))
	g.AddNode(cir.NewMethodNode("method:App:main", "main", "void", "void", cir.Public, nil, false, true, false, false))
	g.AddEdge("type:App", "method:App:main", cir.HasMethod, nil)
	g.AddNode(cir.NewMethodNode("method:App:run", "run", "void", "void", cir.Public, nil, false, false, false, false))
	g.AddEdge("type:App", "method:App:run", cir.HasMethod, nil)
	g.AddEdge("method:App:main", "method:App:run", cir.Calls, cir.CallsAttrs(0))

	out := diagram.Sequence(g)
	assert.Contains(t, out, "App -> App : run()")
}

func TestSequence_SkipsDunderTargets(t *testing.T) {
	g := cir.NewGraph()
	g.AddNode(cir.NewTypeDeclNode("type:App", "App", cir.ClassKind, cir.Public, "", nil, false, false))
	g.AddNode(cir.NewMethodNode("method:App:run", "run", "void", "void", cir.Public, nil, false, false, false, false))
	g.AddEdge("type:App", "method:App:run", cir.HasMethod, nil)
	g.AddNode(cir.NewMethodNode("method:App:__repr__", "__repr__", "string", "str", cir.Public, nil, false, false, false, false))
	g.AddEdge("type:App", "method:App:__repr__", cir.HasMethod, nil)
	g.AddEdge("method:App:run", "method:App:__repr__", cir.Calls, cir.CallsAttrs(0))

	out := diagram.Sequence(g)
	assert.NotContains(t, out, "__repr__")
}

func TestSequence_ConstructorDunderRendersAsCreate(t *testing.T) {
	g := cir.NewGraph()
	g.AddNode(cir.NewTypeDeclNode("type:App", "App", cir.ClassKind, cir.Public, "", nil, false, false))
	g.AddNode(cir.NewMethodNode("method:App:main", "main", "void", "void", cir.Public, nil, false, true, false, false))
	g.AddEdge("type:App", "method:App:main", cir.HasMethod, nil)

	g.AddNode(cir.NewTypeDeclNode("type:Base", "Base", cir.ClassKind, cir.Public, "", nil, false, false))
	g.AddNode(cir.NewMethodNode("ctor:Base:__init__", "__init__", "void", "None", cir.Public, nil, true, false, false, false))
	g.AddEdge("type:Base", "ctor:Base:__init__", cir.HasMethod, nil)

	// simulates resolve.Resolve wiring a super().__init__() call through
	// to the base class's constructor (seed scenario 5).
	g.AddEdge("method:App:main", "ctor:Base:__init__", cir.Calls, cir.CallsAttrs(0))

	out := diagram.Sequence(g)
	ok, errs := diagram.Validate(out)
	require.True(t, ok, errs)

	assert.Contains(t, out, "App -> Base : <<create>>")
	assert.NotContains(t, out, "__init__")
}

func TestValidate_RejectsDisallowedDirective(t *testing.T) {
	ok, errs := diagram.Validate("@startuml\n!include evil.iuml\n@enduml\n")
	assert.False(t, ok)
	assert.NotEmpty(t, errs)
}

func TestValidate_AcceptsPlainDiagram(t *testing.T) {
	ok, errs := diagram.Validate("@startuml\nclass Foo {\n}\n@enduml\n")
	assert.True(t, ok)
	assert.Empty(t, errs)
}
