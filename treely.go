// Package treely builds results over recursively expandable values.
// A build is driven by a pair of caller supplied functions: an expansion
// function producing a value's ordered children, and a combine function
// folding a value with its children's already built results. The package
// owns only the traversal order; value semantics, result construction and
// termination stay with the caller.
package treely

import "context"

type (
	// Expand returns a value's ordered children. An empty result marks a
	// leaf. The relation reachable from the build root must be finite and
	// acyclic; the builder performs no cycle detection.
	Expand[V any] func(value V) []V

	// Combine folds a value and its children's already built results into
	// the value's result. Child results arrive in expansion order; a leaf
	// receives an empty result slice.
	Combine[V, R any] func(value V, children []R) R

	// ExpandFunc is the effectful counterpart of Expand. It receives the
	// context passed to BuildContext; any error aborts the whole build.
	ExpandFunc[V any] func(ctx context.Context, value V) ([]V, error)

	// CombineFunc is the effectful counterpart of Combine.
	CombineFunc[V, R any] func(ctx context.Context, value V, children []R) (R, error)
)

// Build produces the result for root by depth first expansion: children are
// built left to right in the order expand returned them, then combine folds
// root with the child results, so every combine runs strictly after the
// combines of its children. Deterministic expand and combine yield a
// deterministic result.
func Build[V, R any](root V, expand Expand[V], combine Combine[V, R]) R {
	children := expand(root)
	if len(children) == 0 {
		return combine(root, nil)
	}
	results := make([]R, len(children))
	for i, child := range children {
		results[i] = Build(child, expand, combine)
	}
	return combine(root, results)
}

// BuildContext is Build for steps that may suspend or fail. Expansion runs
// first; its failure aborts the build before any child is attempted.
// Children are built strictly one after another: a failure at child i leaves
// children i+1..n untouched. Combine runs last, once all child results are
// available. Errors surface unchanged, with no wrapping, retry or partial
// result. ctx is forwarded verbatim to every step; cancellation reaches the
// build only through the supplied functions' errors.
func BuildContext[V, R any](ctx context.Context, root V, expand ExpandFunc[V], combine CombineFunc[V, R]) (R, error) {
	children, err := expand(ctx, root)
	if err != nil {
		var zero R
		return zero, err
	}
	var results []R
	if len(children) > 0 {
		results = make([]R, len(children))
		for i, child := range children {
			if results[i], err = BuildContext(ctx, child, expand, combine); err != nil {
				var zero R
				return zero, err
			}
		}
	}
	return combine(ctx, root, results)
}
