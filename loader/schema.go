// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package loader

import (
	"log/slog"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/apiexample"
)

// converter maps document schema nodes to example schema nodes.
type converter struct {
	logger  *slog.Logger
	schemas *yaml.Node
}

// model converts one named schema definition into a model.
func (conv *converter) model(name string, node *yaml.Node) *apiexample.Model {
	model := &apiexample.Model{
		Name:        name,
		Description: scalarText(mappingValue(node, "description")),
		Example:     nodeValue(mappingValue(node, "example")),
	}

	seen := make(map[string]struct{})
	conv.collectProperties(model, node, seen, map[string]struct{}{name: {}})
	return model
}

// collectProperties appends properties of node, flattening allOf members.
func (conv *converter) collectProperties(model *apiexample.Model, node *yaml.Node, seen, visiting map[string]struct{}) {
	if allOf := mappingValue(node, "allOf"); allOf != nil && allOf.Kind == yaml.SequenceNode {
		for _, member := range allOf.Content {
			member = resolveAlias(member)
			ref := scalarText(mappingValue(member, "$ref"))
			if ref == "" {
				conv.collectProperties(model, member, seen, visiting)
				continue
			}

			target := refName(ref)
			if _, cyclic := visiting[target]; cyclic {
				continue
			}

			definition := mappingValue(conv.schemas, target)
			if definition == nil {
				conv.logger.Warn("allOf reference to unknown schema", "model", model.Name, "ref", ref)
				continue
			}

			visiting[target] = struct{}{}
			conv.collectProperties(model, definition, seen, visiting)
			delete(visiting, target)
		}
	}

	required := stringList(mappingValue(node, "required"))
	forEachPair(mappingValue(node, "properties"), func(key string, value *yaml.Node) {
		if _, exists := seen[key]; exists {
			return
		}

		seen[key] = struct{}{}
		model.Properties = append(model.Properties, apiexample.Property{
			Name:        key,
			Schema:      conv.schema(model.Name+"."+key, value),
			Description: scalarText(mappingValue(value, "description")),
			Required:    slices.Contains(required, key),
		})
	})
}

// schema converts one property schema node.
func (conv *converter) schema(path string, node *yaml.Node) apiexample.SchemaNode {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	example := nodeValue(mappingValue(node, "example"))
	if example == nil {
		if examples := mappingValue(node, "examples"); examples != nil && examples.Kind == yaml.SequenceNode && len(examples.Content) > 0 {
			example = nodeValue(examples.Content[0])
		}
	}

	if ref := scalarText(mappingValue(node, "$ref")); ref != "" {
		return &apiexample.Reference{ModelName: refName(ref), Example: example}
	}

	switch schemaType(node) {
	case "array":
		array := &apiexample.Array{
			Items:   conv.schema(path+"[]", mappingValue(node, "items")),
			Example: example,
		}

		if value, ok := floatValue(mappingValue(node, "maxItems")); ok {
			maxItems := int(*value)
			array.MaxItems = &maxItems
		}

		return array
	case "object":
		if additional := mappingValue(node, "additionalProperties"); additional != nil {
			switch additional.Kind {
			case yaml.MappingNode:
				return &apiexample.MapType{ValueType: conv.schema(path+"{}", additional), Example: example}
			case yaml.ScalarNode:
				if additional.Value == "true" {
					return &apiexample.MapType{Example: example}
				}
			}
		}

		return conv.scalar(node, apiexample.KindObject, example)
	case "string":
		return conv.scalar(node, stringKind(scalarText(mappingValue(node, "format"))), example)
	case "integer":
		kind := apiexample.KindInteger
		if scalarText(mappingValue(node, "format")) == "int64" {
			kind = apiexample.KindLong
		}

		return conv.scalar(node, kind, example)
	case "number":
		return conv.scalar(node, numberKind(scalarText(mappingValue(node, "format"))), example)
	case "boolean":
		return conv.scalar(node, apiexample.KindBoolean, example)
	case "file":
		return conv.scalar(node, apiexample.KindFile, example)
	default:
		conv.logger.Debug("schema without supported type", "property", path, "type", schemaType(node))
		return conv.scalar(node, apiexample.KindObject, example)
	}
}

// scalar builds scalar node carrying declared constraints.
func (conv *converter) scalar(node *yaml.Node, kind apiexample.ScalarKind, example apiexample.Value) *apiexample.Scalar {
	scalar := &apiexample.Scalar{
		Kind:    kind,
		Example: example,
		Default: nodeValue(mappingValue(node, "default")),
		Format:  scalarText(mappingValue(node, "format")),
	}

	if enum := mappingValue(node, "enum"); enum != nil && enum.Kind == yaml.SequenceNode {
		for _, item := range enum.Content {
			scalar.Enum = append(scalar.Enum, nodeValue(item))
		}
	}

	if value, ok := floatValue(mappingValue(node, "minimum")); ok {
		scalar.Minimum = value
	}

	if value, ok := floatValue(mappingValue(node, "maximum")); ok {
		scalar.Maximum = value
	}

	return scalar
}

// schemaType returns declared type, inferring it from structure when absent.
func schemaType(node *yaml.Node) string {
	typeNode := mappingValue(node, "type")
	if typeNode != nil && typeNode.Kind == yaml.SequenceNode {
		for _, name := range stringList(typeNode) {
			if name != "null" {
				return name
			}
		}
	}

	if name := scalarText(typeNode); name != "" {
		return name
	}

	switch {
	case mappingValue(node, "items") != nil:
		return "array"
	case mappingValue(node, "properties") != nil, mappingValue(node, "additionalProperties") != nil:
		return "object"
	default:
		return ""
	}
}

// stringKind maps string format to scalar kind.
func stringKind(format string) apiexample.ScalarKind {
	switch format {
	case "date":
		return apiexample.KindDate
	case "date-time":
		return apiexample.KindDateTime
	case "uuid":
		return apiexample.KindUUID
	case "password":
		return apiexample.KindPassword
	case "binary":
		return apiexample.KindFile
	default:
		return apiexample.KindString
	}
}

// numberKind maps number format to scalar kind.
func numberKind(format string) apiexample.ScalarKind {
	switch format {
	case "float":
		return apiexample.KindFloat
	case "double":
		return apiexample.KindDouble
	default:
		return apiexample.KindDecimal
	}
}

// refName returns last path segment of JSON reference.
func refName(ref string) string {
	ref = strings.TrimSpace(ref)
	if index := strings.LastIndex(ref, "/"); index >= 0 {
		return ref[index+1:]
	}

	return ref
}
