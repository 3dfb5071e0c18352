// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

// ScalarKind names the value type of a scalar schema node.
type ScalarKind string

// Scalar kinds understood by example synthesis.
const (
	KindString   ScalarKind = "string"
	KindBoolean  ScalarKind = "boolean"
	KindInteger  ScalarKind = "integer"
	KindLong     ScalarKind = "long"
	KindFloat    ScalarKind = "float"
	KindDouble   ScalarKind = "double"
	KindDecimal  ScalarKind = "decimal"
	KindDate     ScalarKind = "date"
	KindDateTime ScalarKind = "datetime"
	KindUUID     ScalarKind = "uuid"
	KindPassword ScalarKind = "password"
	KindFile     ScalarKind = "file"
	KindObject   ScalarKind = "object"
)

// IsNumeric reports whether kind is drawn from the random source.
func (kind ScalarKind) IsNumeric() bool {
	switch kind {
	case KindInteger, KindLong, KindFloat, KindDouble, KindDecimal:
		return true
	default:
		return false
	}
}

// SchemaNode is one typed unit of the schema graph.
//
// The set of implementations is closed: *Scalar, *Array, *MapType and *Reference.
type SchemaNode interface {
	// ExplicitExample returns the example declared on the node, or nil.
	ExplicitExample() Value

	schemaNode()
}

// Scalar is a leaf schema node.
type Scalar struct {
	Kind    ScalarKind
	Example Value
	Default Value
	Enum    []Value
	Format  string
	Minimum *float64
	Maximum *float64
}

// Array is a list schema node.
type Array struct {
	Items    SchemaNode
	MaxItems *int
	Example  Value
}

// MapType is a string-keyed dictionary schema node.
type MapType struct {
	ValueType SchemaNode
	Example   Value
}

// Reference points to a model by name.
type Reference struct {
	ModelName string
	Example   Value
}

// ExplicitExample implements SchemaNode.
func (node *Scalar) ExplicitExample() Value { return node.Example }

// ExplicitExample implements SchemaNode.
func (node *Array) ExplicitExample() Value { return node.Example }

// ExplicitExample implements SchemaNode.
func (node *MapType) ExplicitExample() Value { return node.Example }

// ExplicitExample implements SchemaNode.
func (node *Reference) ExplicitExample() Value { return node.Example }

func (*Scalar) schemaNode()    {}
func (*Array) schemaNode()     {}
func (*MapType) schemaNode()   {}
func (*Reference) schemaNode() {}

// Property is one named member of a model.
type Property struct {
	Name        string
	Schema      SchemaNode
	Description string
	Required    bool
}

// Model is a named, ordered collection of properties.
type Model struct {
	Name        string
	Description string
	Properties  []Property
	Example     Value
}

// Registry resolves model names to model definitions.
type Registry interface {
	Model(name string) (*Model, bool)
}

// Definitions is an insertion-ordered Registry.
type Definitions struct {
	models map[string]*Model
	order  []string
}

// NewDefinitions returns registry populated with models in the given order.
func NewDefinitions(models ...*Model) *Definitions {
	defs := &Definitions{models: make(map[string]*Model, len(models))}
	for _, model := range models {
		defs.Add(model)
	}

	return defs
}

// Add registers model, replacing a previous model with the same name in place.
func (defs *Definitions) Add(model *Model) {
	if model == nil {
		return
	}

	if defs.models == nil {
		defs.models = make(map[string]*Model)
	}

	if _, exists := defs.models[model.Name]; !exists {
		defs.order = append(defs.order, model.Name)
	}

	defs.models[model.Name] = model
}

// Model implements Registry.
func (defs *Definitions) Model(name string) (*Model, bool) {
	if defs == nil {
		return nil, false
	}

	model, ok := defs.models[name]
	return model, ok
}

// Names returns model names in registration order.
func (defs *Definitions) Names() []string {
	if defs == nil {
		return nil
	}

	out := make([]string, len(defs.order))
	copy(out, defs.order)
	return out
}

// Len returns number of registered models.
func (defs *Definitions) Len() int {
	if defs == nil {
		return 0
	}

	return len(defs.order)
}
