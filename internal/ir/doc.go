// Package ir provides the intermediate representation types for F2C.
//
// The package holds two parallel trees:
//   - Document/Node: the IR produced by the parser. Every scalable quantity is
//     carried twice, as the raw design-tool value and as its computed,
//     scale-factor-multiplied counterpart (computedWidth, computedGap, ...).
//   - SerializedDocument/SerializedNode: the compact form produced by the
//     serializer, where each computed value has replaced its raw sibling under
//     the plain name.
//
// All other internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Trees are values: nothing in this package mutates a tree after construction
//   - computed* = round(raw * scaleFactor), fixed once at parse time
//   - All JSON tags use the camelCase names consumed downstream
//   - Slices always encode as [] (never null); a missing border encodes as null
package ir
