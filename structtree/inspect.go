package structtree

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/viant/tagly/format/text"
	"github.com/viant/treely"
	"github.com/viant/xunsafe"
)

type (
	// Entry represents one node of a value tree: a struct field,
	// a map entry or a slice element. Depth starts at zero for the root.
	Entry struct {
		Name  string
		Value interface{}
		Depth int
	}

	// Inspector expands Go values into Entry children; field metadata
	// is resolved once per type and cached.
	Inspector struct {
		tagName    string
		caseFormat text.CaseFormat
		maxDepth   int
		mux        sync.RWMutex
		fields     map[reflect.Type][]*fieldSpec
	}

	// Option customizes an Inspector.
	Option func(i *Inspector)

	fieldSpec struct {
		xField *xunsafe.Field
		name   string
	}
)

// WithTagName overrides the struct tag consulted for field options.
func WithTagName(name string) Option {
	return func(i *Inspector) {
		i.tagName = name
	}
}

// WithCaseFormat reformats names derived from Go field names; explicit
// tag renames are kept verbatim.
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(i *Inspector) {
		i.caseFormat = caseFormat
	}
}

// WithMaxDepth caps expansion; entries at the limit become leaves.
func WithMaxDepth(maxDepth int) Option {
	return func(i *Inspector) {
		i.maxDepth = maxDepth
	}
}

// New creates an inspector
func New(opts ...Option) *Inspector {
	ret := &Inspector{
		tagName: TagName,
		fields:  make(map[reflect.Type][]*fieldSpec),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Expand returns the expansion over entries.
func (i *Inspector) Expand() treely.Expand[Entry] {
	return i.expand
}

// Build expands value into a node tree rooted at an entry named name.
func (i *Inspector) Build(name string, value interface{}) *treely.Node[Entry] {
	return treely.BuildTree(Entry{Name: name, Value: value}, i.expand)
}

func (i *Inspector) expand(entry Entry) []Entry {
	if i.maxDepth > 0 && entry.Depth >= i.maxDepth {
		return nil
	}
	if entry.Value == nil {
		return nil
	}
	rValue := reflect.ValueOf(entry.Value)
	for rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil
		}
		rValue = rValue.Elem()
	}
	if isLeafType(rValue.Type()) {
		return nil
	}
	switch rValue.Kind() {
	case reflect.Struct:
		return i.expandStruct(entry, rValue)
	case reflect.Map:
		return i.expandMap(entry, rValue)
	case reflect.Slice, reflect.Array:
		return i.expandSlice(entry, rValue)
	}
	return nil
}

func (i *Inspector) expandStruct(parent Entry, rValue reflect.Value) []Entry {
	specs := i.lookupFields(rValue.Type())
	if len(specs) == 0 {
		return nil
	}
	rPtr := reflect.New(rValue.Type())
	rPtr.Elem().Set(rValue)
	ptr := xunsafe.AsPointer(rPtr.Interface())
	entries := make([]Entry, 0, len(specs))
	for _, spec := range specs {
		entries = append(entries, Entry{
			Name:  spec.name,
			Value: spec.xField.Value(ptr),
			Depth: parent.Depth + 1,
		})
	}
	return entries
}

func (i *Inspector) expandMap(parent Entry, rValue reflect.Value) []Entry {
	if rValue.Len() == 0 {
		return nil
	}
	entries := make([]Entry, 0, rValue.Len())
	iter := rValue.MapRange()
	for iter.Next() {
		entries = append(entries, Entry{
			Name:  fmt.Sprintf("%v", iter.Key().Interface()),
			Value: iter.Value().Interface(),
			Depth: parent.Depth + 1,
		})
	}
	sort.Slice(entries, func(x, y int) bool {
		return entries[x].Name < entries[y].Name
	})
	return entries
}

func (i *Inspector) expandSlice(parent Entry, rValue reflect.Value) []Entry {
	if rValue.Len() == 0 {
		return nil
	}
	entries := make([]Entry, 0, rValue.Len())
	for index := 0; index < rValue.Len(); index++ {
		entries = append(entries, Entry{
			Name:  "[" + strconv.Itoa(index) + "]",
			Value: rValue.Index(index).Interface(),
			Depth: parent.Depth + 1,
		})
	}
	return entries
}

func (i *Inspector) lookupFields(rType reflect.Type) []*fieldSpec {
	i.mux.RLock()
	specs, ok := i.fields[rType]
	i.mux.RUnlock()
	if ok {
		return specs
	}
	specs = i.resolveFields(rType)
	i.mux.Lock()
	i.fields[rType] = specs
	i.mux.Unlock()
	return specs
}

func (i *Inspector) resolveFields(rType reflect.Type) []*fieldSpec {
	xStruct := xunsafe.NewStruct(rType)
	var specs []*fieldSpec
	for index := range xStruct.Fields {
		xField := &xStruct.Fields[index]
		if !rType.Field(index).IsExported() {
			continue
		}
		name := xField.Name
		renamed := false
		if literal := xField.Tag.Get(i.tagName); literal != "" {
			tag := ParseTag(literal)
			if tag.Skip {
				continue
			}
			if tag.Name != "" {
				name = tag.Name
				renamed = true
			}
		}
		if !renamed && i.caseFormat.IsDefined() {
			src := text.DetectCaseFormat(name)
			if !src.IsDefined() {
				src = text.CaseFormatUpperCamel
			}
			name = src.Format(name, i.caseFormat)
		}
		specs = append(specs, &fieldSpec{xField: xField, name: name})
	}
	return specs
}

var timeType = reflect.TypeOf(time.Time{})

func isLeafType(rType reflect.Type) bool {
	if rType == timeType {
		return true
	}
	return rType.Kind() == reflect.Slice && rType.Elem().Kind() == reflect.Uint8
}
