package harness

import "github.com/roach88/f2c/internal/ir"

// Result contains the outcome of running one case.
type Result struct {
	// Pass is true if the case met every expectation.
	Pass bool

	// Errors contains failure messages (empty if Pass is true).
	Errors []string

	// Document is the IR produced by the parser (nil when parsing failed).
	Document *ir.Document

	// Serialized is the compact output (nil when parsing failed).
	Serialized *ir.SerializedDocument

	// Canonical is the RFC 8785 encoding of Serialized, used for goldens.
	Canonical []byte

	// NodeCount is the number of nodes in the serialized tree.
	NodeCount int
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds an error message and marks result as failed.
func (r *Result) AddError(msg string) {
	r.Pass = false
	r.Errors = append(r.Errors, msg)
}
