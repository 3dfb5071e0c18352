// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"encoding/json"
	"strconv"
	"strings"
)

// schemaAttributes renders flat attribute list for one property schema.
func schemaAttributes(node SchemaNode) []attributeView {
	out := make([]attributeView, 0, 8)

	switch typed := node.(type) {
	case *Scalar:
		if typed.Format != "" {
			out = append(out, attributeView{Name: "Format", Value: inlineCode(typed.Format)})
		}

		if typed.Default != nil {
			out = append(out, attributeView{Name: "Default", Value: inlineValue(typed.Default)})
		}

		if len(typed.Enum) > 0 {
			out = append(out, attributeView{Name: "Enum", Value: valueList(typed.Enum)})
		}

		if typed.Minimum != nil {
			out = append(out, attributeView{Name: "Minimum", Value: inlineCode(formatBound(*typed.Minimum))})
		}

		if typed.Maximum != nil {
			out = append(out, attributeView{Name: "Maximum", Value: inlineCode(formatBound(*typed.Maximum))})
		}
	case *Array:
		if typed.MaxItems != nil {
			out = append(out, attributeView{Name: "Max items", Value: inlineCode(strconv.Itoa(*typed.MaxItems))})
		}
	}

	if node != nil {
		if example := node.ExplicitExample(); example != nil {
			out = append(out, attributeView{Name: "Example", Value: inlineValue(example)})
		}
	}

	return out
}

// attributeText joins attributes into one table cell.
func attributeText(attributes []attributeView) string {
	parts := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		parts = append(parts, attribute.Name+": "+attribute.Value)
	}

	return strings.Join(parts, "; ")
}

// inlineValue renders value as single-line JSON inline code.
func inlineValue(value Value) string {
	data, err := json.Marshal(value)
	if err != nil {
		return inlineCode(ValueText(value))
	}

	return inlineCode(string(data))
}

// valueList renders values as comma separated inline code items.
func valueList(values []Value) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, inlineValue(value))
	}

	return strings.Join(parts, ", ")
}

// inlineCode wraps text into markdown inline code.
func inlineCode(text string) string {
	return "`" + escapeInline(text) + "`"
}

// formatBound renders numeric bound without trailing zeros.
func formatBound(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
