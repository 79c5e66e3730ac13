package java_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/adapter/java"
	"github.com/viant/umlforge/cir"
)

const personSource = `package com.example;

public class Person {
    private String name;
    private int age;
    protected List<Order> orders;

    public Person(String name, int age) {
        this.name = name;
        this.age = age;
    }

    public String getName() {
        return name;
    }

    public void placeOrder(Order order) {
        this.validate(order);
        orders.add(order);
    }

    private void validate(Order order) {
    }
}`

func TestAdapter_ParseFile_Class(t *testing.T) {
	a := java.New()
	units, err := a.ParseFile([]byte(personSource), "Person.java")
	require.NoError(t, err)
	require.Len(t, units, 1)

	u := units[0]
	assert.Equal(t, "Person", u.Short)
	assert.Equal(t, "com.example.Person", u.FQN)
	assert.Equal(t, cir.ClassKind, u.Kind)
	assert.Equal(t, cir.Public, u.Visibility)
	assert.Empty(t, u.Extends)
	assert.Empty(t, u.Implements)

	require.Len(t, u.Fields, 3)
	assert.Equal(t, "name", u.Fields[0].Name)
	assert.Equal(t, "String", u.Fields[0].TypeName)
	assert.Equal(t, cir.Private, u.Fields[0].Visibility)
	assert.Equal(t, cir.One, u.Fields[0].Multiplicity)

	assert.Equal(t, "orders", u.Fields[2].Name)
	assert.Equal(t, "Order", u.Fields[2].TypeName)
	assert.Equal(t, cir.OneOrMany, u.Fields[2].Multiplicity)
	assert.Equal(t, cir.Protected, u.Fields[2].Visibility)

	require.Len(t, u.Methods, 4)
	ctor := u.Methods[0]
	assert.True(t, ctor.IsConstructor)
	assert.Equal(t, "Person", ctor.Name)
	require.Len(t, ctor.Parameters, 2)
	assert.Equal(t, "name", ctor.Parameters[0].Name)
	assert.NotEmpty(t, ctor.Parameters[0].ID)

	getName := u.Methods[1]
	assert.Equal(t, "getName", getName.Name)
	assert.Equal(t, "String", getName.ReturnType)
	assert.Equal(t, cir.Public, getName.Visibility)

	placeOrder := u.Methods[2]
	assert.Equal(t, "placeOrder", placeOrder.Name)
	assert.Equal(t, "void", placeOrder.ReturnType)
}

func TestAdapter_ParseFile_OrderedCalls(t *testing.T) {
	a := java.New()
	units, err := a.ParseFile([]byte(personSource), "Person.java")
	require.NoError(t, err)
	require.Len(t, units, 1)

	u := units[0]
	require.GreaterOrEqual(t, len(u.Calls), 2)

	for i, c := range u.Calls {
		if i == 0 {
			continue
		}
		assert.Greater(t, c.Order, u.Calls[i-1].Order)
	}

	var validateCall, addCall *adapter.CallRef
	for _, c := range u.Calls {
		switch c.Member {
		case "validate":
			validateCall = c
		case "add":
			addCall = c
		}
	}
	require.NotNil(t, validateCall)
	assert.Equal(t, adapter.QualSelf, validateCall.Qualifier)

	require.NotNil(t, addCall)
	assert.Equal(t, adapter.QualVar, addCall.Qualifier)
	assert.Equal(t, "orders", addCall.Qualifiers)
	assert.Less(t, validateCall.Order, addCall.Order)
}

func TestAdapter_ParseFile_InterfaceAndEnum(t *testing.T) {
	a := java.New()

	ifaceSrc := `package com.example;
public interface Shape extends Drawable {
    double area();
}`
	units, err := a.ParseFile([]byte(ifaceSrc), "Shape.java")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, cir.InterfaceKind, units[0].Kind)
	assert.True(t, units[0].IsAbstract)
	assert.Equal(t, []string{"Drawable"}, units[0].Extends)
	require.Len(t, units[0].Methods, 1)
	assert.Equal(t, "area", units[0].Methods[0].Name)

	enumSrc := `package com.example;
public enum Color implements Paintable {
    RED, GREEN, BLUE;

    public String label() {
        return "color";
    }
}`
	units, err = a.ParseFile([]byte(enumSrc), "Color.java")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, cir.EnumKind, units[0].Kind)
	assert.True(t, units[0].IsFinal)
	assert.Equal(t, []string{"Paintable"}, units[0].Implements)
}

func TestAdapter_ParseFile_Inheritance(t *testing.T) {
	a := java.New()
	src := `package com.example;
public abstract class Vehicle extends Asset implements Movable, Taxable {
    public abstract void move();
}`
	units, err := a.ParseFile([]byte(src), "Vehicle.java")
	require.NoError(t, err)
	require.Len(t, units, 1)

	u := units[0]
	assert.True(t, u.IsAbstract)
	assert.Equal(t, []string{"Asset"}, u.Extends)
	assert.Equal(t, []string{"Movable", "Taxable"}, u.Implements)
}

func TestAdapter_ParseFile_SyntaxError(t *testing.T) {
	a := java.New()
	_, err := a.ParseFile([]byte("public class {{{"), "Broken.java")
	assert.Error(t, err)
}

func TestAdapter_ParseProject_TolerantOfFileErrors(t *testing.T) {
	a := java.New()
	files := []adapter.SourceFile{
		{Path: "Person.java", Code: []byte(personSource)},
		{Path: "Broken.java", Code: []byte("class {{{")},
	}

	g, errs, units := a.ParseProject(files)
	require.Len(t, errs, 1)
	assert.Equal(t, "Broken.java", errs[0].Path)
	require.Len(t, units, 1)

	typeNode, ok := g.GetNode("type:com.example.Person")
	require.True(t, ok)
	assert.Equal(t, cir.KindTypeDecl, typeNode.Kind)

	_, hasParseErrors := g.Attributes["parse_errors"]
	assert.True(t, hasParseErrors)
}
