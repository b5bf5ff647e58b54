// Package structtree expands arbitrary Go values into treely trees:
// struct fields, map entries and slice elements become child nodes.
// Field inclusion and naming is controlled with the "tree" struct tag.
package structtree
