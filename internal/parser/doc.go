// Package parser maps a loosely-typed design-tool node tree onto the IR.
//
// Parsing is pure: a Parser holds only its options, never mutates its input
// and can be shared between goroutines. Every missing or malformed field
// resolves to a default; the only failures are a non-object root and a tree
// deeper than the configured limit.
//
// Every scalable quantity is stored twice, as the raw source value and as
// round(raw × scaleFactor). Rounding is to the nearest integer with ties
// away from zero (math.Round).
package parser
