package jsontree

import (
	"strconv"

	"github.com/viant/treely"
)

type (
	// Kind discriminates JSON value variants.
	Kind int

	// Value is one JSON document node. Key is set for object members,
	// Items holds object members or array elements in wire order.
	Value struct {
		Kind    Kind
		Key     string
		Str     string
		Num     float64
		Boolean bool
		Items   []*Value
	}
)

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Expand returns the expansion over document nodes.
func Expand() treely.Expand[*Value] {
	return func(value *Value) []*Value {
		return value.Items
	}
}

// Label renders a node caption: containers show their key ("{}" or "[]"
// when keyless), scalars show "key: text".
func Label(value *Value) string {
	switch value.Kind {
	case KindObject:
		if value.Key == "" {
			return "{}"
		}
		return value.Key
	case KindArray:
		if value.Key == "" {
			return "[]"
		}
		return value.Key
	}
	text := ""
	switch value.Kind {
	case KindString:
		text = strconv.Quote(value.Str)
	case KindNumber:
		text = strconv.FormatFloat(value.Num, 'g', -1, 64)
	case KindBool:
		text = strconv.FormatBool(value.Boolean)
	case KindNull:
		text = "null"
	}
	if value.Key == "" {
		return text
	}
	return value.Key + ": " + text
}
