// Package render turns a topology and a discovered MST into human-readable
// form: Graphviz DOT for plotting and a plain-text adjacency summary for
// terminals.
//
// Both renderings are deterministic: edges are emitted sorted by (U,V), so
// the same input always produces byte-identical output (the package tests
// rely on this).
//
// Rendering is presentation only; it validates nothing and never fails.
package render
