package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/viant/treely"
)

type (
	// Styles controls branch and label presentation.
	Styles struct {
		Branch lipgloss.Style
		Label  lipgloss.Style
	}

	// Renderer draws node trees; labels come from the supplied label
	// function, children keep their stored order.
	Renderer[V any] struct {
		label     func(value V) string
		styles    Styles
		styleFunc func(value V) lipgloss.Style
		compact   bool
	}

	// Option customizes a Renderer.
	Option[V any] func(r *Renderer[V])
)

const (
	glyphItem   = "├── "
	glyphLast   = "└── "
	glyphBranch = "│   "
	glyphIndent = "    "
)

// DefaultStyles draws branches gray and labels untouched.
func DefaultStyles() Styles {
	return Styles{
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label:  lipgloss.NewStyle(),
	}
}

// WithStyles overrides branch and label styles.
func WithStyles[V any](styles Styles) Option[V] {
	return func(r *Renderer[V]) {
		r.styles = styles
	}
}

// WithStyleFunc picks a label style per value, taking precedence over
// Styles.Label.
func WithStyleFunc[V any](styleFunc func(value V) lipgloss.Style) Option[V] {
	return func(r *Renderer[V]) {
		r.styleFunc = styleFunc
	}
}

// WithCompact drops the trailing newline.
func WithCompact[V any]() Option[V] {
	return func(r *Renderer[V]) {
		r.compact = true
	}
}

// New creates a renderer
func New[V any](label func(value V) string, opts ...Option[V]) *Renderer[V] {
	ret := &Renderer[V]{
		label:  label,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Render draws the tree rooted at node; the root label comes out bare.
func (r *Renderer[V]) Render(node *treely.Node[V]) string {
	if node == nil {
		return ""
	}
	builder := &strings.Builder{}
	builder.WriteString(r.renderLabel(node.Value))
	builder.WriteByte('\n')
	r.renderChildren(builder, node, "")
	out := builder.String()
	if r.compact {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

func (r *Renderer[V]) renderChildren(builder *strings.Builder, node *treely.Node[V], prefix string) {
	for i, child := range node.Children {
		connector, filler := glyphItem, glyphBranch
		if i == len(node.Children)-1 {
			connector, filler = glyphLast, glyphIndent
		}
		builder.WriteString(r.styles.Branch.Render(prefix + connector))
		builder.WriteString(r.renderLabel(child.Value))
		builder.WriteByte('\n')
		r.renderChildren(builder, child, prefix+filler)
	}
}

func (r *Renderer[V]) renderLabel(value V) string {
	text := r.label(value)
	if r.styleFunc != nil {
		return r.styleFunc(value).Render(text)
	}
	return r.styles.Label.Render(text)
}
