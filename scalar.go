// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

const (
	// exampleURI is used for uri/url formatted strings without default or enum.
	exampleURI = "http://example.com/aeiou"
	// exampleDate is a fixed calendar date example.
	exampleDate = "2000-01-23"
	// exampleDateTime is a fixed timestamp example for JSON payloads.
	exampleDateTime = "2000-01-23T04:56:07.000+00:00"
	// exampleXMLDateTime is a fixed timestamp example for XML payloads.
	exampleXMLDateTime = "2000-01-23T04:56:07.000Z"
	// xmlMapText stands in for dictionaries flattened into XML attributes.
	xmlMapText = "Map{}"
)

// exampleUUID is the fixed identifier used for uuid scalars.
var exampleUUID = uuid.MustParse("046b6c7f-0b8a-43b9-b35d-6489e6daee91")

// xmlScalarText holds fixed attribute text per scalar kind.
var xmlScalarText = map[ScalarKind]string{
	KindDateTime: exampleXMLDateTime,
	KindDate:     exampleDate,
	KindBoolean:  "true",
	KindLong:     "123456789",
	KindDouble:   "3.149",
	KindDecimal:  "1.3579",
	KindPassword: "********",
	KindUUID:     exampleUUID.String(),
	KindString:   "string",
	KindInteger:  "123",
	KindFloat:    "1.23",
}

// scalarExample synthesizes JSON example for one scalar node.
func (res *resolution) scalarExample(propertyName string, node *Scalar) Value {
	switch node.Kind {
	case KindString, KindPassword:
		if value, ok := preferredValue(node); ok {
			return value
		}

		if isURIFormat(node.Format) {
			return String(exampleURI)
		}

		return String(propertyName)
	case KindBoolean:
		if value, ok := preferredValue(node); ok {
			return value
		}

		return Bool(true)
	case KindDate:
		return String(exampleDate)
	case KindDateTime:
		return String(exampleDateTime)
	case KindInteger, KindLong, KindFloat, KindDouble, KindDecimal:
		if value, ok := preferredValue(node); ok {
			return value
		}

		return drawNumber(node.Kind, res.random.Between(node.Minimum, node.Maximum))
	case KindFile:
		return String("")
	case KindUUID:
		return String(exampleUUID.String())
	case KindObject:
		return NewMap()
	default:
		res.logger.Warn("example value not implemented for scalar kind",
			"property", propertyName,
			"kind", string(node.Kind),
		)

		return String("")
	}
}

// preferredValue returns declared default, then first enum entry.
func preferredValue(node *Scalar) (Value, bool) {
	if node.Default != nil {
		if text, isString := node.Default.(String); !isString || text != "" {
			return node.Default, true
		}
	}

	if len(node.Enum) > 0 && node.Enum[0] != nil {
		return node.Enum[0], true
	}

	return nil, false
}

// isURIFormat reports whether string format describes a link.
func isURIFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "uri", "url":
		return true
	default:
		return false
	}
}

// drawNumber casts random draw to the precision of numeric kind.
func drawNumber(kind ScalarKind, draw float64) Number {
	switch kind {
	case KindInteger:
		return Number{Kind: kind, Value: math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Trunc(draw)))}
	case KindLong:
		return Number{Kind: kind, Value: float64(saturateInt64(math.Trunc(draw)))}
	case KindFloat:
		return Number{Kind: kind, Value: float64(float32(draw))}
	default:
		return Number{Kind: kind, Value: draw}
	}
}

// scalarText returns XML attribute text for node; ok is false when no rule matches.
func scalarText(node SchemaNode) (string, bool) {
	if example := node.ExplicitExample(); example != nil {
		if text := ValueText(example); text != "" {
			return text, true
		}
	}

	switch typed := node.(type) {
	case *Scalar:
		text, ok := xmlScalarText[typed.Kind]
		return text, ok
	case *MapType:
		return xmlMapText, true
	default:
		return "", false
	}
}
