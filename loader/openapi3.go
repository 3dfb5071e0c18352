// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package loader

import (
	"fmt"
	"slices"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/woozymasta/apiexample"
)

// FromOpenAPI3 converts component schemas of a parsed kin-openapi document.
//
// kin-openapi keeps schemas in Go maps, so models and properties are ordered by name.
func FromOpenAPI3(doc *openapi3.T) (*apiexample.Definitions, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil openapi document", ErrUnknownDocument)
	}

	defs := apiexample.NewDefinitions()
	if doc.Components == nil {
		return defs, nil
	}

	for _, name := range sortedKeys(doc.Components.Schemas) {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}

		defs.Add(modelFromSchema(name, ref.Value))
	}

	return defs, nil
}

// modelFromSchema converts kin-openapi object schema into a model.
func modelFromSchema(name string, schema *openapi3.Schema) *apiexample.Model {
	model := &apiexample.Model{
		Name:        name,
		Description: schema.Description,
		Example:     apiexample.ValueOf(schema.Example),
	}

	seen := make(map[string]struct{})
	appendSchemaProperties(model, schema, seen)
	return model
}

// appendSchemaProperties adds properties of schema and its allOf members.
func appendSchemaProperties(model *apiexample.Model, schema *openapi3.Schema, seen map[string]struct{}) {
	for _, member := range schema.AllOf {
		if member != nil && member.Value != nil {
			appendSchemaProperties(model, member.Value, seen)
		}
	}

	for _, key := range sortedKeys(schema.Properties) {
		if _, exists := seen[key]; exists {
			continue
		}

		seen[key] = struct{}{}
		ref := schema.Properties[key]

		property := apiexample.Property{
			Name:     key,
			Schema:   nodeFromSchemaRef(ref),
			Required: slices.Contains(schema.Required, key),
		}

		if ref != nil && ref.Value != nil {
			property.Description = ref.Value.Description
		}

		model.Properties = append(model.Properties, property)
	}
}

// nodeFromSchemaRef converts kin-openapi schema reference into a schema node.
func nodeFromSchemaRef(ref *openapi3.SchemaRef) apiexample.SchemaNode {
	if ref == nil {
		return nil
	}

	if ref.Ref != "" {
		node := &apiexample.Reference{ModelName: refName(ref.Ref)}
		if ref.Value != nil {
			node.Example = apiexample.ValueOf(ref.Value.Example)
		}

		return node
	}

	schema := ref.Value
	if schema == nil {
		return nil
	}

	example := apiexample.ValueOf(schema.Example)

	switch {
	case schema.Type.Is(openapi3.TypeArray) || schema.Items != nil:
		array := &apiexample.Array{Items: nodeFromSchemaRef(schema.Items), Example: example}
		if schema.MaxItems != nil {
			maxItems := int(min(*schema.MaxItems, uint64(1<<31-1)))
			array.MaxItems = &maxItems
		}

		return array
	case schema.AdditionalProperties.Schema != nil:
		return &apiexample.MapType{ValueType: nodeFromSchemaRef(schema.AdditionalProperties.Schema), Example: example}
	case schema.AdditionalProperties.Has != nil && *schema.AdditionalProperties.Has:
		return &apiexample.MapType{Example: example}
	case schema.Type.Is(openapi3.TypeString):
		return scalarFromSchema(schema, stringKind(schema.Format), example)
	case schema.Type.Is(openapi3.TypeInteger):
		kind := apiexample.KindInteger
		if schema.Format == "int64" {
			kind = apiexample.KindLong
		}

		return scalarFromSchema(schema, kind, example)
	case schema.Type.Is(openapi3.TypeNumber):
		return scalarFromSchema(schema, numberKind(schema.Format), example)
	case schema.Type.Is(openapi3.TypeBoolean):
		return scalarFromSchema(schema, apiexample.KindBoolean, example)
	default:
		return scalarFromSchema(schema, apiexample.KindObject, example)
	}
}

// scalarFromSchema builds scalar node carrying declared constraints.
func scalarFromSchema(schema *openapi3.Schema, kind apiexample.ScalarKind, example apiexample.Value) *apiexample.Scalar {
	scalar := &apiexample.Scalar{
		Kind:    kind,
		Example: example,
		Default: apiexample.ValueOf(schema.Default),
		Format:  schema.Format,
		Minimum: schema.Min,
		Maximum: schema.Max,
	}

	for _, item := range schema.Enum {
		scalar.Enum = append(scalar.Enum, apiexample.ValueOf(item))
	}

	return scalar
}

// sortedKeys returns map keys in lexical order.
func sortedKeys[V any](values map[string]V) []string {
	out := make([]string, 0, len(values))
	for key := range values {
		out = append(out, key)
	}

	sort.Strings(out)
	return out
}
