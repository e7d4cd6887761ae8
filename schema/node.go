package schema

// Package schema defines the intermediate representation both conversion
// directions pass through. Nodes are built fresh by the extractor or the
// document reader, traversed by the generators, and never mutated after
// construction.

// Kind identifies a node's shape. The set is closed; anything the converters
// cannot classify maps to Any rather than failing.
type Kind string

const (
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindNull      Kind = "null"
	KindUndefined Kind = "undefined"
	KindBigInt    Kind = "bigint"
	KindDate      Kind = "date"
	KindLiteral   Kind = "literal"
	KindEnum      Kind = "enum"
	KindArray     Kind = "array"
	KindObject    Kind = "object"
	KindUnion     Kind = "union"
	KindAny       Kind = "any"
)

// KindFromString maps a document "type" value to a Kind. Unknown values map
// to KindAny so that readers stay total over arbitrary documents.
func KindFromString(s string) Kind {
	switch Kind(s) {
	case KindString, KindNumber, KindBoolean, KindNull, KindUndefined,
		KindBigInt, KindDate, KindLiteral, KindEnum, KindArray,
		KindObject, KindUnion, KindAny:
		return Kind(s)
	}
	return KindAny
}

// Property is one named member of an object node. Order is significant and
// preserved through every conversion, which is why properties are a slice and
// not a map.
type Property struct {
	Name string
	Node *Node
}

// Node is a single schema tree node. Exactly one of the auxiliary fields
// (Properties/Items/Enum/Members/Literal) is populated, matching Kind.
// Nullable and Optional are independent flags and never change the kind.
// Numeric values held in Enum or Literal are json.Number.
type Node struct {
	Kind        Kind
	Description string
	Nullable    bool
	Optional    bool

	Properties []Property // KindObject
	Items      *Node      // KindArray
	Enum       []any      // KindEnum: string | json.Number
	Members    []*Node    // KindUnion
	Literal    any        // KindLiteral: string | json.Number | bool
}

// Property returns the child node for name, or nil when absent.
func (n *Node) Property(name string) *Node {
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Node
		}
	}
	return nil
}
