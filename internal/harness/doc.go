// Package harness runs conformance cases against the parser and serializer.
//
// # Case Format
//
// Cases are YAML files with the following structure:
//
//	name: button_layout
//	description: "Auto-layout frame scales every box-model value"
//	scale_factor: 4          # optional, default 4.0
//	max_depth: 512           # optional, default 512, 0 disables
//	input:                   # raw node tree, or input_file: tree.json
//	  layoutMode: HORIZONTAL
//	  absoluteBoundingBox: { width: 120, height: 40 }
//	assertions:
//	  - path: nodes.0.layout.width
//	    equals: 480
//	  - path: nodes.0.content
//	    absent: true
//	  - type: no_computed_keys
//	golden: true             # compare canonical output with golden/<name>.golden
//
// A case that expects the parser to fail sets expect_error to a substring
// of the error message instead of assertions.
//
// # Assertion Types
//
//   - equals: the value at path equals the expected value (the default type)
//   - absent: path does not resolve
//   - no_computed_keys: no object key in the output starts with "computed"
//   - node_count: the serialized tree has exactly count nodes
//   - valid_schema: the output satisfies the CUE document contract
//
// Paths are dot separated keys and list indexes into the serialized JSON
// (nodes.0.style.border.width). A leading "ir." resolves against the IR
// document instead, which still carries raw and computed values.
//
// # Usage
//
//	c, err := harness.LoadCase("testdata/cases/button_layout.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(c)
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
