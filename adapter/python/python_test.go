package python_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/adapter/python"
	"github.com/viant/umlforge/cir"
)

const orderSource = `
class Order:
    status: str
    items: List[LineItem]

    def __init__(self, customer: Customer, items: List[LineItem]):
        self.customer = customer
        self.items = items
        self.status = "new"

    def total(self) -> float:
        return self._sum()

    def _sum(self) -> float:
        return 0.0

    def place(self):
        self.validate()
        customer = self.customer
        customer.notify()
`

func TestAdapter_ParseFile_Class(t *testing.T) {
	a := python.New()
	units, err := a.ParseFile([]byte(orderSource), "shop/order.py")
	require.NoError(t, err)
	require.Len(t, units, 1)

	u := units[0]
	assert.Equal(t, "Order", u.Short)
	assert.Equal(t, "shop.order.Order", u.FQN)
	assert.Equal(t, cir.ClassKind, u.Kind)
	assert.Equal(t, cir.Public, u.Visibility)

	require.Len(t, u.Fields, 3)
	names := map[string]*adapter.FieldUnit{}
	for _, f := range u.Fields {
		names[f.Name] = f
	}
	require.Contains(t, names, "status")
	require.Contains(t, names, "items")
	require.Contains(t, names, "customer")
	assert.Equal(t, cir.OneOrMany, names["items"].Multiplicity)
	assert.Equal(t, "LineItem", names["items"].TypeName)
	assert.Equal(t, "Any", names["customer"].TypeName)

	var ctor, sum *adapter.MethodUnit
	for _, m := range u.Methods {
		switch m.Name {
		case "__init__":
			ctor = m
		case "_sum":
			sum = m
		}
	}
	require.NotNil(t, ctor)
	assert.True(t, ctor.IsConstructor)
	require.Len(t, ctor.Parameters, 2)
	assert.Equal(t, "customer", ctor.Parameters[0].Name)

	require.NotNil(t, sum)
	assert.Equal(t, cir.Protected, sum.Visibility)
}

func TestAdapter_ParseFile_OrderedCalls(t *testing.T) {
	a := python.New()
	units, err := a.ParseFile([]byte(orderSource), "shop/order.py")
	require.NoError(t, err)
	require.Len(t, units, 1)

	var place *adapter.MethodUnit
	for _, m := range units[0].Methods {
		if m.Name == "place" {
			place = m
		}
	}
	require.NotNil(t, place)

	var calls []*adapter.CallRef
	for _, c := range units[0].Calls {
		if c.SrcMethodID == place.ID {
			calls = append(calls, c)
		}
	}
	require.Len(t, calls, 2)
	assert.Equal(t, adapter.QualSelf, calls[0].Qualifier)
	assert.Equal(t, "validate", calls[0].Member)
	assert.Equal(t, adapter.QualVar, calls[1].Qualifier)
	assert.Equal(t, "customer", calls[1].Qualifiers)
	assert.Equal(t, "notify", calls[1].Member)
	assert.Less(t, calls[0].Order, calls[1].Order)
}

func TestAdapter_ParseFile_AbcInterface(t *testing.T) {
	a := python.New()
	src := `
from abc import ABC, abstractmethod

class Shape(ABC):
    @abstractmethod
    def area(self) -> float:
        ...

    @abstractmethod
    def perimeter(self) -> float:
        ...
`
	units, err := a.ParseFile([]byte(src), "shapes.py")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, cir.InterfaceKind, units[0].Kind)
	assert.True(t, units[0].IsAbstract)
	assert.Equal(t, []string{"ABC"}, units[0].Implements)
	require.Len(t, units[0].Methods, 2)
	for _, m := range units[0].Methods {
		assert.True(t, m.IsAbstract)
	}
}

func TestAdapter_ParseFile_Inheritance(t *testing.T) {
	a := python.New()
	src := `
class Vehicle(Asset, Taxable):
    def move(self):
        pass
`
	units, err := a.ParseFile([]byte(src), "fleet.py")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.ElementsMatch(t, []string{"Asset", "Taxable"}, units[0].Extends)
	assert.Empty(t, units[0].Implements)
}

func TestAdapter_ParseFile_StaticAndClassMethods(t *testing.T) {
	a := python.New()
	src := `
class Registry:
    @staticmethod
    def create():
        return Registry()

    @classmethod
    def from_config(cls, cfg):
        return cls.build(cfg)
`
	units, err := a.ParseFile([]byte(src), "registry.py")
	require.NoError(t, err)
	require.Len(t, units, 1)

	var create, fromConfig *adapter.MethodUnit
	for _, m := range units[0].Methods {
		switch m.Name {
		case "create":
			create = m
		case "from_config":
			fromConfig = m
		}
	}
	require.NotNil(t, create)
	assert.True(t, create.IsStatic)

	require.NotNil(t, fromConfig)
	require.Len(t, fromConfig.Parameters, 1)
	assert.Equal(t, "cfg", fromConfig.Parameters[0].Name)

	var buildCall *adapter.CallRef
	for _, c := range units[0].Calls {
		if c.SrcMethodID == fromConfig.ID && c.Member == "build" {
			buildCall = c
		}
	}
	require.NotNil(t, buildCall)
	assert.Equal(t, adapter.QualCls, buildCall.Qualifier)
}

func TestAdapter_ParseFile_SyntaxError(t *testing.T) {
	a := python.New()
	_, err := a.ParseFile([]byte("def (((:"), "broken.py")
	assert.Error(t, err)
}

func TestAdapter_ParseProject_TolerantOfFileErrors(t *testing.T) {
	a := python.New()
	files := []adapter.SourceFile{
		{Path: "shop/order.py", Code: []byte(orderSource)},
		{Path: "broken.py", Code: []byte("def (((:")},
	}

	g, errs, units := a.ParseProject(files)
	require.Len(t, errs, 1)
	assert.Equal(t, "broken.py", errs[0].Path)
	require.Len(t, units, 1)

	typeNode, ok := g.GetNode("type:shop.order.Order")
	require.True(t, ok)
	assert.Equal(t, cir.KindTypeDecl, typeNode.Kind)
}
