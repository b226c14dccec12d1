package proptree

// Kind identifies the value shape of an attribute. It selects the
// built-in holder implementation used when a definition carries no
// custom factory, and tells surfaces how to parse and render values.
type Kind string

const (
	KindString     Kind = "string"
	KindInt        Kind = "int"
	KindFloat      Kind = "float"
	KindBool       Kind = "bool"
	KindDate       Kind = "date"
	KindDuration   Kind = "duration"
	KindStringList Kind = "stringlist"
	KindReference  Kind = "reference"
)

// ValidKinds is the canonical set of accepted attribute kind strings.
var ValidKinds = map[string]bool{
	"string": true, "int": true, "float": true, "bool": true,
	"date": true, "duration": true, "stringlist": true,
	"reference": true,
}

// ValueFactory builds a value holder for def, bound to node n. Custom
// holder types may use the node to reach the owning set or project.
type ValueFactory func(def *AttributeDef, n *Node) AttributeValue

// AttributeDef describes one attribute type of a property set: its
// identity, value shape and how it behaves during inheritance.
//
// ScenarioSpecific definitions get one holder per scenario on every
// node; plain definitions get a single holder. Inheritable controls
// whether the structural inheritance pass copies the attribute from a
// node's parent.
type AttributeDef struct {
	ID               string
	Name             string
	Kind             Kind
	ScenarioSpecific bool
	Inheritable      bool
	Default          any
	Factory          ValueFactory
}

// newValue builds a holder for the definition, preferring the custom
// factory over the kind's built-in holder type.
func (d *AttributeDef) newValue(n *Node) AttributeValue {
	if d.Factory != nil {
		return d.Factory(d, n)
	}
	switch d.Kind {
	case KindStringList:
		return newListValue(d)
	case KindReference:
		return newReferenceValue(d)
	default:
		return newScalarValue(d)
	}
}
