package jsontree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treely"
)

func TestLabel(t *testing.T) {
	testCases := []struct {
		description string
		value       *Value
		expect      string
	}{
		{description: "keyless object", value: &Value{Kind: KindObject}, expect: "{}"},
		{description: "keyed object", value: &Value{Kind: KindObject, Key: "config"}, expect: "config"},
		{description: "keyless array", value: &Value{Kind: KindArray}, expect: "[]"},
		{description: "keyed string", value: &Value{Kind: KindString, Key: "name", Str: "ann"}, expect: `name: "ann"`},
		{description: "array element number", value: &Value{Kind: KindNumber, Num: 2.5}, expect: "2.5"},
		{description: "keyed bool", value: &Value{Kind: KindBool, Key: "active", Boolean: true}, expect: "active: true"},
		{description: "keyed null", value: &Value{Kind: KindNull, Key: "meta"}, expect: "meta: null"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Label(testCase.value), testCase.description)
	}
}

func TestExpand(t *testing.T) {
	parsed, err := Parse([]byte(`{"a":{"b":1},"c":[true]}`))
	require.NoError(t, err)

	tree := treely.BuildTree(parsed, Expand())
	assert.Equal(t, 5, tree.Count())

	var labels []string
	tree.Walk(func(depth int, node *treely.Node[*Value]) bool {
		labels = append(labels, Label(node.Value))
		return true
	})
	assert.Equal(t, []string{"{}", "a", "b: 1", "c", "true"}, labels)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
