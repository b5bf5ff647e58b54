// Package fstree builds treely trees over afero filesystems: a
// directory's children are its entries in name order, subject to
// ignore patterns, depth caps and visibility options.
package fstree
