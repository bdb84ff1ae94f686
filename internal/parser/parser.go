package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/roach88/f2c/internal/figma"
	"github.com/roach88/f2c/internal/ir"
)

const (
	// DefaultScaleFactor converts design-tool logical units to output pixels.
	DefaultScaleFactor = 4.0

	// DefaultMaxDepth bounds recursion on untrusted trees.
	// Root nodes are depth 1.
	DefaultMaxDepth = 512
)

// Parser converts external node trees into IR documents.
// The zero value is not usable; construct with New.
type Parser struct {
	scaleFactor float64
	maxDepth    int
}

// Option configures a Parser.
type Option func(*Parser)

// WithScaleFactor sets the global multiplier for every computed value.
// It must be positive and finite.
//
// Default: 4.0 (DefaultScaleFactor)
func WithScaleFactor(f float64) Option {
	return func(p *Parser) {
		p.scaleFactor = f
	}
}

// WithMaxDepth sets the deepest node level Parse will descend to.
// Zero disables the guard.
//
// Default: 512 (DefaultMaxDepth)
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// New creates a Parser. Invalid options return an *OptionError.
func New(opts ...Option) (*Parser, error) {
	p := &Parser{
		scaleFactor: DefaultScaleFactor,
		maxDepth:    DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}

	if math.IsNaN(p.scaleFactor) || math.IsInf(p.scaleFactor, 0) || p.scaleFactor <= 0 {
		return nil, &OptionError{Option: "scale factor", Value: p.scaleFactor, Reason: "must be a positive finite number"}
	}
	if p.maxDepth < 0 {
		return nil, &OptionError{Option: "max depth", Value: p.maxDepth, Reason: "must be zero (unlimited) or positive"}
	}
	return p, nil
}

// ScaleFactor returns the configured scale factor.
func (p *Parser) ScaleFactor() float64 { return p.scaleFactor }

// MaxDepth returns the configured depth limit (0 means unlimited).
func (p *Parser) MaxDepth() int { return p.maxDepth }

// Parse converts one JSON-like value into an IR document.
//
// The root may be a file response ({document: {children}}), a single node
// ({id, type, ...}), a node list ({nodes: [...]}) or any other object, which
// is treated as one node. A non-object root returns ErrNotObject.
func (p *Parser) Parse(v any) (*ir.Document, error) {
	obj, ok := figma.Object(v)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", ErrNotObject, kindOf(v))
	}

	root := figma.ClassifyRoot(obj)

	raw := root.Nodes()
	nodes := make([]ir.Node, 0, len(raw))
	for i, child := range raw {
		n, err := p.parseNode(child, 1, rootPath(root, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	return &ir.Document{
		Metadata: ir.Metadata{
			Version:     ir.Version,
			ScaleFactor: p.scaleFactor,
			Unit:        ir.UnitPx,
		},
		Nodes: nodes,
	}, nil
}

// ParseJSON decodes data and parses the result. Numbers are kept exact
// until they are converted to float64 field by field.
func (p *Parser) ParseJSON(data []byte) (*ir.Document, error) {
	v, err := figma.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parser: decode input: %w", err)
	}
	return p.Parse(v)
}

func (p *Parser) parseNode(raw any, depth int, path string) (ir.Node, error) {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return ir.Node{}, &DepthError{Limit: p.maxDepth, Path: path}
	}

	src := figma.Decode(raw)

	children := make([]ir.Node, 0, len(src.RawChildren))
	for i, child := range src.RawChildren {
		n, err := p.parseNode(child, depth+1, path+".children["+strconv.Itoa(i)+"]")
		if err != nil {
			return ir.Node{}, err
		}
		children = append(children, n)
	}

	return ir.Node{
		Identity: ir.Identity{
			ID:   stringOr(src.ID, ""),
			Name: stringOr(src.Name, ""),
			Type: stringOr(src.Type, "FRAME"),
		},
		Layout:   p.layout(src),
		Style:    p.style(src),
		Content:  p.content(src),
		Children: children,
	}, nil
}

// compute scales a raw value. Negative zero is folded to zero so it never
// reaches the JSON output as "-0".
func (p *Parser) compute(v float64) float64 {
	r := math.Round(v * p.scaleFactor)
	if r == 0 {
		return 0
	}
	return r
}

// rootPath names the i-th root node the way it appears in the input.
func rootPath(r figma.Root, i int) string {
	switch r.(type) {
	case figma.DocumentRoot:
		return "document.children[" + strconv.Itoa(i) + "]"
	case figma.NodeListRoot:
		return "nodes[" + strconv.Itoa(i) + "]"
	default:
		return "root"
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	if _, ok := figma.Number(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// scalable drops a raw value whose scaled product overflows float64, so
// the field takes its default like an absent one.
func (p *Parser) scalable(f *float64) *float64 {
	if f == nil || math.IsInf(*f*p.scaleFactor, 0) {
		return nil
	}
	return f
}

func numberOr(f *float64, def float64) float64 {
	if f == nil {
		return def
	}
	return *f
}
