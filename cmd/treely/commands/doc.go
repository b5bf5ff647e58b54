// Package commands defines the treely CLI and wires shared presentation
// state for subcommands.
//
// Commands
//
//   - fs    Render a directory tree
//   - json  Render a JSON document as a tree
//
// # Implementation
//
// The root command resolves the color policy before any subcommand runs,
// so handlers share one style set; subcommands compose the library
// packages (fstree, jsontree, render) over an OS filesystem.
package commands
