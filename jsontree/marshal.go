package jsontree

import (
	"fmt"

	"github.com/francoispqt/gojay"
)

// Marshal encodes a document tree back to JSON, members in stored order;
// it round-trips Parse output.
func Marshal(value *Value) ([]byte, error) {
	if value == nil {
		return nil, fmt.Errorf("value was nil")
	}
	switch value.Kind {
	case KindObject:
		return gojay.MarshalJSONObject(objectMarshaler{value: value})
	case KindArray:
		return gojay.MarshalJSONArray(arrayMarshaler{value: value})
	case KindString:
		return gojay.Marshal(value.Str)
	case KindNumber:
		return gojay.Marshal(value.Num)
	case KindBool:
		return gojay.Marshal(value.Boolean)
	case KindNull:
		return []byte("null"), nil
	}
	return nil, fmt.Errorf("unsupported kind: %v", value.Kind)
}

type objectMarshaler struct {
	value *Value
}

func (m objectMarshaler) MarshalJSONObject(enc *gojay.Encoder) {
	for _, item := range m.value.Items {
		switch item.Kind {
		case KindObject:
			enc.AddObjectKey(item.Key, objectMarshaler{value: item})
		case KindArray:
			enc.AddArrayKey(item.Key, arrayMarshaler{value: item})
		case KindString:
			enc.AddStringKey(item.Key, item.Str)
		case KindNumber:
			enc.AddFloatKey(item.Key, item.Num)
		case KindBool:
			enc.AddBoolKey(item.Key, item.Boolean)
		case KindNull:
			enc.AddNullKey(item.Key)
		}
	}
}

func (m objectMarshaler) IsNil() bool {
	return m.value == nil
}

type arrayMarshaler struct {
	value *Value
}

func (m arrayMarshaler) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range m.value.Items {
		switch item.Kind {
		case KindObject:
			enc.AddObject(objectMarshaler{value: item})
		case KindArray:
			enc.AddArray(arrayMarshaler{value: item})
		case KindString:
			enc.AddString(item.Str)
		case KindNumber:
			enc.AddFloat(item.Num)
		case KindBool:
			enc.AddBool(item.Boolean)
		case KindNull:
			enc.AddNull()
		}
	}
}

func (m arrayMarshaler) IsNil() bool {
	return m.value == nil
}
