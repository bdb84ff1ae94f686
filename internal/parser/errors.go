package parser

import (
	"errors"
	"fmt"
)

// ErrNotObject is returned when the root value is not a JSON object.
// It signals caller misuse rather than bad design data.
var ErrNotObject = errors.New("parser: root value must be an object")

// DepthError reports a node nested deeper than the configured limit.
type DepthError struct {
	// Limit is the configured maximum depth.
	Limit int

	// Path locates the first node past the limit, e.g. "nodes[0].children[3]".
	Path string
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("parser: tree exceeds max depth %d at %s", e.Limit, e.Path)
}

// OptionError reports an invalid constructor option.
type OptionError struct {
	Option string
	Value  any
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("parser: invalid %s %v: %s", e.Option, e.Value, e.Reason)
}

// IsDepthError returns true if err is or wraps a *DepthError.
func IsDepthError(err error) bool {
	var de *DepthError
	return errors.As(err, &de)
}
