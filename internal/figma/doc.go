// Package figma models the external design-tool node schema consumed by the
// parser.
//
// The upstream document API produces loosely-typed JSON: any field may be
// missing, and nothing guarantees a field has the expected type. Decode
// turns one JSON-like object into a Node record whose optional fields are
// pointers, so "absent" and "present with a zero value" stay distinguishable
// and every default is applied in one place (the parser).
//
// Decoding never fails. A field holding a value of the wrong type is treated
// as absent. Children are kept undecoded (RawChildren) so the caller controls
// recursion depth.
//
// ClassifyRoot resolves the polymorphic root shapes accepted from upstream
// into one of four Root variants.
package figma
