package structtree

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// TagName is the default struct tag controlling field inclusion and naming.
const TagName = "tree"

// Tag holds decoded field tag options.
type Tag struct {
	Name string
	Skip bool
}

const (
	whitespaceToken = iota
	comaTerminatorToken
	eqTerminatorToken
	quotedToken
)

var (
	whitespaceMatcher     = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	comaTerminatorMatcher = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))
	eqTerminatorMatcher   = parsly.NewToken(eqTerminatorToken, "eq", matcher.NewTerminator('=', true))
	quotedMatcher         = parsly.NewToken(quotedToken, "' .... '", matcher.NewQuote('\'', '\\'))
)

// ParseTag decodes a tag literal; elements are coma separated, "-"
// excludes the field, "name=X" (or a bare element) renames it.
func ParseTag(literal string) *Tag {
	ret := &Tag{}
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return ret
	}
	if literal == "-" {
		ret.Skip = true
		return ret
	}
	cursor := parsly.NewCursor("", []byte(literal), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		switch key {
		case "":
		case "-":
			ret.Skip = true
		case "name":
			ret.Name = value
		default:
			if value == "" && ret.Name == "" {
				ret.Name = key
			}
		}
	}
	return ret
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	var tokens []*parsly.Token
	eqIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte("="))
	comaIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte(","))
	if eqIndex == -1 {
		tokens = append(tokens, comaTerminatorMatcher)
	} else if comaIndex == -1 || eqIndex < comaIndex {
		tokens = append(tokens, eqTerminatorMatcher)
	} else {
		tokens = append(tokens, comaTerminatorMatcher)
	}

	match := cursor.MatchAfterOptional(whitespaceMatcher, tokens...)
	switch match.Code {
	case comaTerminatorToken:
		key = match.Text(cursor)
		key = key[:len(key)-1] //exclude ,
	case eqTerminatorToken:
		key = match.Text(cursor)
		key = key[:len(key)-1]
		match = cursor.MatchAny(quotedMatcher, comaTerminatorMatcher)
		switch match.Code {
		case quotedToken:
			value = match.Text(cursor)
			value = strings.Trim(value, "'")
			cursor.MatchAny(comaTerminatorMatcher)
		case comaTerminatorToken:
			value = match.Text(cursor)
			value = value[:len(value)-1]
		default:
			if cursor.Pos < len(cursor.Input) {
				value = string(cursor.Input[cursor.Pos:])
				cursor.Pos = len(cursor.Input)
			}
		}
	default:
		if cursor.Pos < len(cursor.Input) {
			key = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	return key, value
}
