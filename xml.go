// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/beevik/etree"
)

// xmlBuilder walks the schema graph into an XML element tree.
//
// Scalars become attributes of the current element, references become child elements
// and arrays are flattened into their item type.
type xmlBuilder struct {
	registry Registry
	logger   *slog.Logger
	maxDepth int
}

// modelToXML renders model rooted at an element named after the model.
func (builder *xmlBuilder) modelToXML(name string, model *Model) (string, error) {
	if !isXMLName(name) {
		return "", &XMLWriteError{Name: name, Text: modelPlaceholder(name)}
	}

	doc := etree.NewDocument()
	root := doc.CreateElement(name)
	if err := builder.writeModel(root, name, model, 0); err != nil {
		return "", err
	}

	return serializeXML(doc)
}

// propertyToXML renders property rooted at an element named after the property.
func (builder *xmlBuilder) propertyToXML(name string, node SchemaNode) (string, error) {
	if !isXMLName(name) {
		return "", &XMLWriteError{Name: name, Text: builder.text(name, node)}
	}

	doc := etree.NewDocument()
	root := doc.CreateElement(name)
	if err := builder.writeProperty(root, name, node, 0); err != nil {
		return "", err
	}

	return serializeXML(doc)
}

// writeModel appends model properties to target or a placeholder at depth limit.
func (builder *xmlBuilder) writeModel(target *etree.Element, name string, model *Model, depth int) error {
	if model == nil {
		return nil
	}

	if depth >= builder.maxDepth {
		target.CreateText(modelPlaceholder(name))
		return nil
	}

	for _, property := range model.Properties {
		if err := builder.writeProperty(target, property.Name, property.Schema, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// writeProperty writes one property into parent element.
func (builder *xmlBuilder) writeProperty(parent *etree.Element, name string, node SchemaNode, depth int) error {
	switch typed := node.(type) {
	case nil:
		return nil
	case *Array:
		if typed == nil {
			return nil
		}

		return builder.writeProperty(parent, name, typed.Items, depth+1)
	case *Reference:
		if typed == nil {
			return nil
		}

		if !isXMLName(name) {
			return &XMLWriteError{Name: name}
		}

		child := parent.CreateElement(name)
		model, ok := builder.registry.Model(typed.ModelName)
		if !ok {
			builder.logger.Warn("reference to unknown model",
				"property", name,
				"model", typed.ModelName,
			)

			return nil
		}

		return builder.writeModel(child, typed.ModelName, model, depth+1)
	default:
		return builder.writeAttribute(parent, name, node)
	}
}

// writeAttribute sets scalar example text as attribute named after property.
func (builder *xmlBuilder) writeAttribute(parent *etree.Element, name string, node SchemaNode) error {
	attributeName := strings.ReplaceAll(name, "$", "")
	text := builder.text(name, node)
	if !isXMLName(attributeName) || !isXMLText(text) {
		return &XMLWriteError{Name: name, Text: text}
	}

	parent.CreateAttr(attributeName, text)
	return nil
}

// text returns attribute text for node, logging kinds without a rule.
func (builder *xmlBuilder) text(name string, node SchemaNode) string {
	if node == nil {
		return ""
	}

	text, ok := scalarText(node)
	if !ok {
		builder.logger.Warn("default example value not implemented",
			"property", name,
			"node", describeNode(node),
		)
	}

	return text
}

// describeNode returns short node description for log records.
func describeNode(node SchemaNode) string {
	switch typed := node.(type) {
	case *Scalar:
		return "scalar " + string(typed.Kind)
	case *Array:
		return "array"
	case *MapType:
		return "map"
	case *Reference:
		return "reference " + typed.ModelName
	default:
		return fmt.Sprintf("%T", node)
	}
}

// serializeXML writes document without declaration using two-space indent.
func serializeXML(doc *etree.Document) (string, error) {
	doc.Indent(2)

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeExampleXML, err)
	}

	return strings.TrimRight(out, "\n"), nil
}
