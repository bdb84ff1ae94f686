package figma

// RootKind names the recognized root shapes, in dispatch priority order.
type RootKind string

const (
	KindDocument   RootKind = "document"    // file response: {document: {children: [...]}}
	KindSingleNode RootKind = "single_node" // a bare node: {id, type, ...}
	KindNodeList   RootKind = "node_list"   // {nodes: [...]}
	KindFallback   RootKind = "fallback"    // anything else, treated as one node
)

// Root is a classified root value. Only the variants in this package
// implement it.
type Root interface {
	// Kind identifies the variant.
	Kind() RootKind

	// Nodes returns the undecoded root nodes in source order.
	Nodes() []any

	rootVariant()
}

// DocumentRoot is a file response whose document children are the roots.
type DocumentRoot struct {
	Children []any
}

func (DocumentRoot) Kind() RootKind { return KindDocument }
func (r DocumentRoot) Nodes() []any { return r.Children }
func (DocumentRoot) rootVariant()   {}

// SingleNodeRoot is a bare node carrying both id and type.
type SingleNodeRoot struct {
	Node map[string]any
}

func (SingleNodeRoot) Kind() RootKind { return KindSingleNode }
func (r SingleNodeRoot) Nodes() []any { return []any{r.Node} }
func (SingleNodeRoot) rootVariant()   {}

// NodeListRoot wraps an explicit list of root nodes.
type NodeListRoot struct {
	List []any
}

func (NodeListRoot) Kind() RootKind { return KindNodeList }
func (r NodeListRoot) Nodes() []any { return r.List }
func (NodeListRoot) rootVariant()   {}

// FallbackRoot treats an unrecognized object as a single node.
type FallbackRoot struct {
	Node map[string]any
}

func (FallbackRoot) Kind() RootKind { return KindFallback }
func (r FallbackRoot) Nodes() []any { return []any{r.Node} }
func (FallbackRoot) rootVariant()   {}

// ClassifyRoot applies the root dispatch rules in priority order:
//  1. a truthy "document" field: its children (empty if absent) are the roots
//  2. truthy "id" and "type" fields: the object itself is the single root
//  3. an array-valued "nodes" field: that array is the root list
//  4. otherwise the object itself is the single root
func ClassifyRoot(obj map[string]any) Root {
	if Truthy(obj["document"]) {
		var children []any
		if doc, ok := Object(obj["document"]); ok {
			children, _ = Array(doc["children"])
		}
		if children == nil {
			children = []any{}
		}
		return DocumentRoot{Children: children}
	}
	if Truthy(obj["id"]) && Truthy(obj["type"]) {
		return SingleNodeRoot{Node: obj}
	}
	if list, ok := Array(obj["nodes"]); ok {
		return NodeListRoot{List: list}
	}
	return FallbackRoot{Node: obj}
}
