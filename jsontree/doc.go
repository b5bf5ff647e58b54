// Package jsontree parses JSON documents into an ordered value tree
// that treely can expand: object members and array elements keep their
// wire order, duplicate keys included.
package jsontree
