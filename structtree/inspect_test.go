package structtree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
	"github.com/viant/treely"
)

type testAddress struct {
	City string
	Zip  string `tree:"name=postalCode"`
}

type testPerson struct {
	Name    string
	Age     int
	Email   string `tree:"-"`
	Address *testAddress
	Tags    []string
	private string
}

func TestInspector_Build(t *testing.T) {
	person := &testPerson{
		Name:    "Ann",
		Age:     30,
		Email:   "ann@example.com",
		Address: &testAddress{City: "Austin", Zip: "78701"},
		Tags:    []string{"go", "trees"},
		private: "hidden",
	}
	tree := New().Build("person", person)

	var names []string
	tree.Walk(func(depth int, node *treely.Node[Entry]) bool {
		names = append(names, node.Value.Name)
		return true
	})
	assert.Equal(t, []string{"person", "Name", "Age", "Address", "City", "postalCode", "Tags", "[0]", "[1]"}, names)

	assert.Equal(t, "Ann", tree.Children[0].Value.Value)
	assert.Equal(t, 30, tree.Children[1].Value.Value)
	address := tree.Children[2]
	assert.Equal(t, 2, address.Children[0].Value.Depth)
	assert.Equal(t, "78701", address.Children[1].Value.Value)
	assert.True(t, address.Children[1].IsLeaf())
}

func TestInspector_Build_CaseFormat(t *testing.T) {
	inspector := New(WithCaseFormat(text.CaseFormatLowerUnderscore))
	tree := inspector.Build("person", testPerson{Name: "Ann", Address: &testAddress{City: "Austin"}})

	var names []string
	tree.Walk(func(depth int, node *treely.Node[Entry]) bool {
		names = append(names, node.Value.Name)
		return true
	})
	assert.Equal(t, []string{"person", "name", "age", "address", "city", "postalCode", "tags"}, names,
		"field names are reformatted, explicit renames stay verbatim")
}

func TestInspector_Build_TagName(t *testing.T) {
	type row struct {
		ID     int    `x:"name=id"`
		Secret string `x:"-"`
		Note   string `tree:"-"`
	}
	tree := New(WithTagName("x")).Build("row", row{ID: 7, Secret: "s", Note: "n"})

	var names []string
	tree.Walk(func(depth int, node *treely.Node[Entry]) bool {
		names = append(names, node.Value.Name)
		return true
	})
	assert.Equal(t, []string{"row", "id", "Note"}, names, "only the configured tag is consulted")
	assert.Equal(t, 7, tree.Children[0].Value.Value)
}

func TestInspector_Build_MaxDepth(t *testing.T) {
	inspector := New(WithMaxDepth(1))
	tree := inspector.Build("person", testPerson{Address: &testAddress{City: "Austin"}})
	assert.Equal(t, 5, tree.Count())
	assert.True(t, tree.Children[2].IsLeaf(), "capped entries stay leaves")
}

func TestInspector_Build_Map(t *testing.T) {
	value := map[string]interface{}{
		"zeta":  1,
		"alpha": map[string]int{"y": 2, "x": 3},
	}
	tree := New().Build("config", value)

	var names []string
	tree.Walk(func(depth int, node *treely.Node[Entry]) bool {
		names = append(names, node.Value.Name)
		return true
	})
	assert.Equal(t, []string{"config", "alpha", "x", "y", "zeta"}, names, "map entries come out key sorted")
	assert.Equal(t, 3, tree.Children[0].Children[0].Value.Value)
}

func TestInspector_Build_LeafKinds(t *testing.T) {
	type record struct {
		At      time.Time
		Payload []byte
		Next    *record
	}
	tree := New().Build("record", record{At: time.Now(), Payload: []byte("abc")})
	assert.Equal(t, 4, tree.Count())
	for _, child := range tree.Children {
		assert.True(t, child.IsLeaf(), child.Value.Name)
	}
}

func TestInspector_Expand(t *testing.T) {
	leafCount := treely.Build(Entry{Name: "items", Value: []int{1, 2, 3}}, New().Expand(),
		func(entry Entry, children []int) int {
			if len(children) == 0 {
				return 1
			}
			total := 0
			for _, child := range children {
				total += child
			}
			return total
		})
	assert.Equal(t, 3, leafCount)
}
