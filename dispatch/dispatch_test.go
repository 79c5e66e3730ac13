package dispatch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
	"github.com/viant/umlforge/dispatch"
)

const javaPerson = `package com.example;
public class Person {
    private String name;
    public String getName() { return name; }
}`

const pythonOrder = `
class Order:
    status: str

    def total(self) -> float:
        return 0.0
`

func TestParseSingle_ExplicitLanguage(t *testing.T) {
	g, err := dispatch.ParseSingle([]byte(javaPerson), "Person.java", "java")
	require.NoError(t, err)

	n, ok := g.GetNode("type:com.example.Person")
	require.True(t, ok)
	assert.Equal(t, cir.KindTypeDecl, n.Kind)
}

func TestParseSingle_DetectsLanguageFromExtension(t *testing.T) {
	g, err := dispatch.ParseSingle([]byte(pythonOrder), "shop/order.py", "")
	require.NoError(t, err)

	_, ok := g.GetNode("type:shop.order.Order")
	assert.True(t, ok)
}

func TestParseSingle_UnsupportedLanguage(t *testing.T) {
	_, err := dispatch.ParseSingle([]byte("<?php ?>"), "index.php", "php")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dispatch.ErrUnsupportedLanguage))
}

func TestParseSingle_SyntaxError(t *testing.T) {
	_, err := dispatch.ParseSingle([]byte("public class {{{"), "Broken.java", "java")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dispatch.ErrSyntax))
}

func TestParseProject_CollectsPerFileErrorsAndResolves(t *testing.T) {
	files := []adapter.SourceFile{
		{Path: "Person.java", Code: []byte(javaPerson)},
		{Path: "Broken.java", Code: []byte("class {{{")},
	}
	g, errs, err := dispatch.ParseProject("java", files)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Broken.java", errs[0].Path)

	_, ok := g.GetNode("type:com.example.Person")
	assert.True(t, ok)
}

func TestParseProject_DetectsLanguageFromFileExtensions(t *testing.T) {
	files := []adapter.SourceFile{
		{Path: "shop/order.py", Code: []byte(pythonOrder)},
	}
	g, _, err := dispatch.ParseProject("", files)
	require.NoError(t, err)

	_, ok := g.GetNode("type:shop.order.Order")
	assert.True(t, ok)
}

func TestDiagram_RendersValidClassDiagram(t *testing.T) {
	g, err := dispatch.ParseSingle([]byte(javaPerson), "Person.java", "java")
	require.NoError(t, err)

	ok, plantuml, validationErrors, err := dispatch.Diagram(g, "class")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, validationErrors)
	assert.Contains(t, plantuml, "class Person {")
}

func TestDiagram_UnsupportedType(t *testing.T) {
	g, err := dispatch.ParseSingle([]byte(javaPerson), "Person.java", "java")
	require.NoError(t, err)

	_, _, _, err = dispatch.Diagram(g, "flowchart")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dispatch.ErrUnsupportedDiagramType))
}
