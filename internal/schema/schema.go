// Package schema checks serialized documents against the downstream
// contract: the closed CUE definition in serialized.cue plus the content
// rules CUE cannot express.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/roach88/f2c/internal/ir"
)

//go:embed serialized.cue
var source string

// Validation error codes.
const (
	ErrInvalidJSON      = "E201" // input is not a single JSON value
	ErrSchemaViolation  = "E204" // value does not unify with #Document
	ErrEmptyContent     = "E206" // content present without text or icon
	ErrOrphanTypography = "E207" // typography present without text
)

// ValidationError is one contract violation.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Path, e.Message)
}

// Source returns the embedded CUE schema text.
func Source() string { return source }

// Validate checks JSON bytes against the serialized document contract.
// It returns every violation found; an empty result means the document
// is valid.
func Validate(data []byte) []ValidationError {
	expr, err := cuejson.Extract("document.json", data)
	if err != nil {
		return []ValidationError{{Message: err.Error(), Code: ErrInvalidJSON}}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(source, cue.Filename("serialized.cue"))
	if err := schema.Err(); err != nil {
		// The schema is embedded; failing to compile it is a build defect.
		panic(fmt.Sprintf("schema: embedded CUE does not compile: %v", err))
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))

	value := ctx.BuildExpr(expr)
	if err := value.Err(); err != nil {
		return []ValidationError{{Message: err.Error(), Code: ErrInvalidJSON}}
	}

	var errs []ValidationError
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		for _, e := range cueerrors.Errors(err) {
			format, args := e.Msg()
			errs = append(errs, ValidationError{
				Path:    strings.Join(e.Path(), "."),
				Message: fmt.Sprintf(format, args...),
				Code:    ErrSchemaViolation,
			})
		}
	}

	var generic struct {
		Nodes any `json:"nodes"`
	}
	if err := json.Unmarshal(data, &generic); err == nil {
		errs = append(errs, checkTree(generic.Nodes, "nodes")...)
	}
	return errs
}

// ValidateDocument marshals doc and validates the result.
func ValidateDocument(doc *ir.SerializedDocument) []ValidationError {
	data, err := json.Marshal(doc)
	if err != nil {
		return []ValidationError{{Message: err.Error(), Code: ErrInvalidJSON}}
	}
	return Validate(data)
}

// Check is Validate reporting only the first violation, as an error.
func Check(data []byte) error {
	errs := Validate(data)
	if len(errs) == 0 {
		return nil
	}
	return &errs[0]
}

// checkTree walks a node list looking for content objects that carry
// neither text nor an icon, and typography without text.
func checkTree(v any, path string) []ValidationError {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var errs []ValidationError
	for i, elem := range list {
		node, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		nodePath := path + "." + strconv.Itoa(i)
		if content, ok := node["content"].(map[string]any); ok {
			errs = append(errs, contentRules(content, nodePath+".content")...)
		}
		errs = append(errs, checkTree(node["children"], nodePath+".children")...)
	}
	return errs
}

func contentRules(content map[string]any, path string) []ValidationError {
	_, hasText := content["text"]
	_, hasIcon := content["icon"]
	_, hasTypography := content["typography"]

	var errs []ValidationError
	if !hasText && !hasIcon {
		errs = append(errs, ValidationError{
			Path:    path,
			Message: "content must carry text or an icon; omit it when empty",
			Code:    ErrEmptyContent,
		})
	}
	if hasTypography && !hasText {
		errs = append(errs, ValidationError{
			Path:    path,
			Message: "typography requires text",
			Code:    ErrOrphanTypography,
		})
	}
	return errs
}
