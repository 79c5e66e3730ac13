package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
)

func TestResolveAnnotation_BareOptionalHasNoArgumentMultiplicity(t *testing.T) {
	logical, mult := adapter.ResolveAnnotation("Optional", nil, false)
	assert.Equal(t, "Optional", logical)
	assert.Equal(t, cir.ZeroOrMany, mult)
}

func TestResolveAnnotation_ParametrizedOptionalUnwrapsArgument(t *testing.T) {
	logical, mult := adapter.ResolveAnnotation("Optional", []string{"str"}, false)
	assert.Equal(t, "str", logical)
	assert.Equal(t, cir.ZeroOrOne, mult)
}

func TestResolveAnnotation_BareListHasZeroOrMany(t *testing.T) {
	logical, mult := adapter.ResolveAnnotation("List", nil, false)
	assert.Equal(t, "List", logical)
	assert.Equal(t, cir.ZeroOrMany, mult)
}
