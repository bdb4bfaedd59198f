// Package language turns GraphQL query-language text into a typed,
// position-annotated syntax tree.
//
// Parsing is split in two: a Grammar produces a generic parse tree (by default
// gqlparser's query AST plus its token stream), and Build reshapes that tree
// into the closed set of node types declared here. Neither step keeps state
// between calls, so Parse is safe to call from any number of goroutines.
package language
