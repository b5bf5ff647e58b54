package jsontree

import (
	"bytes"
	"fmt"

	"github.com/francoispqt/gojay"
)

// Parse decodes data into a document tree. Member order is preserved;
// malformed or truncated input fails, never yielding a partial document.
func Parse(data []byte) (*Value, error) {
	return parseValue("", data)
}

func parseValue(key string, data []byte) (*Value, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty json value")
	}
	switch trimmed[0] {
	case '{':
		ret := &Value{Kind: KindObject, Key: key}
		decode := gojay.DecodeObjectFunc(func(dec *gojay.Decoder, memberKey string) error {
			embedded := gojay.EmbeddedJSON{}
			if err := dec.AddEmbeddedJSON(&embedded); err != nil {
				return err
			}
			// a member value is a strict subslice of its document; on a
			// missing value gojay captures the enclosing input itself,
			// error free, which would recurse without progress
			if len(bytes.TrimSpace(embedded)) == 0 || len(embedded) >= len(trimmed) {
				return fmt.Errorf("invalid json value for key %q", memberKey)
			}
			member, err := parseValue(memberKey, embedded)
			if err != nil {
				return err
			}
			ret.Items = append(ret.Items, member)
			return nil
		})
		if err := gojay.UnmarshalJSONObject(trimmed, decode); err != nil {
			return nil, err
		}
		if trimmed[len(trimmed)-1] != '}' {
			return nil, fmt.Errorf("unterminated json object")
		}
		return ret, nil
	case '[':
		ret := &Value{Kind: KindArray, Key: key}
		decode := gojay.DecodeArrayFunc(func(dec *gojay.Decoder) error {
			embedded := gojay.EmbeddedJSON{}
			if err := dec.AddEmbeddedJSON(&embedded); err != nil {
				return err
			}
			if len(bytes.TrimSpace(embedded)) == 0 || len(embedded) >= len(trimmed) {
				return fmt.Errorf("invalid json value at index %d", len(ret.Items))
			}
			element, err := parseValue("", embedded)
			if err != nil {
				return err
			}
			ret.Items = append(ret.Items, element)
			return nil
		})
		if err := gojay.UnmarshalJSONArray(trimmed, decode); err != nil {
			return nil, err
		}
		if trimmed[len(trimmed)-1] != ']' {
			return nil, fmt.Errorf("unterminated json array")
		}
		return ret, nil
	case '"':
		text := ""
		if err := gojay.Unmarshal(trimmed, &text); err != nil {
			return nil, err
		}
		return &Value{Kind: KindString, Key: key, Str: text}, nil
	case 't', 'f':
		truth := false
		if err := gojay.Unmarshal(trimmed, &truth); err != nil {
			return nil, err
		}
		return &Value{Kind: KindBool, Key: key, Boolean: truth}, nil
	case 'n':
		if !bytes.Equal(trimmed, []byte("null")) {
			return nil, fmt.Errorf("invalid json value: %s", trimmed)
		}
		return &Value{Kind: KindNull, Key: key}, nil
	default:
		num := 0.0
		if err := gojay.Unmarshal(trimmed, &num); err != nil {
			return nil, err
		}
		return &Value{Kind: KindNumber, Key: key, Num: num}, nil
	}
}
