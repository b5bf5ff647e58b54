// Package render draws treely node trees with tree(1) style glyphs,
// styled with lipgloss.
package render
