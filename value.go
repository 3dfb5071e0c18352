// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Value is a synthesized or declared example value.
//
// The set of implementations is closed: String, Bool, Number, List, *Map and Placeholder.
// A nil Value means "no example".
type Value interface {
	json.Marshaler

	exampleValue()
}

// String is a text example.
type String string

// Bool is a boolean example.
type Bool bool

// Number is a numeric example tagged with the scalar kind it was drawn for.
type Number struct {
	Kind  ScalarKind
	Value float64
}

// List is an ordered list example.
type List []Value

// Placeholder is a cross-reference marker emitted when depth runs out.
type Placeholder string

// Map is an insertion-ordered string-keyed example.
type Map struct {
	values map[string]Value
	keys   []string
}

func (String) exampleValue()      {}
func (Bool) exampleValue()        {}
func (Number) exampleValue()      {}
func (List) exampleValue()        {}
func (Placeholder) exampleValue() {}
func (*Map) exampleValue()        {}

// NewMap returns an empty ordered map example.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Set stores value under key; existing keys keep their position.
func (m *Map) Set(key string, value Value) {
	if m.values == nil {
		m.values = make(map[string]Value)
	}

	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}

	value, ok := m.values[key]
	return value, ok
}

// Keys returns keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// MarshalJSON implements json.Marshaler.
func (value String) MarshalJSON() ([]byte, error) {
	return encodeJSONString(string(value))
}

// MarshalJSON implements json.Marshaler.
func (value Placeholder) MarshalJSON() ([]byte, error) {
	return encodeJSONString(string(value))
}

// MarshalJSON implements json.Marshaler.
func (value Bool) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatBool(bool(value))), nil
}

// MarshalJSON implements json.Marshaler.
func (value Number) MarshalJSON() ([]byte, error) {
	if math.IsNaN(value.Value) || math.IsInf(value.Value, 0) {
		return nil, fmt.Errorf("unsupported number %v", value.Value)
	}

	return []byte(formatNumber(value)), nil
}

// MarshalJSON implements json.Marshaler.
func (value List) MarshalJSON() ([]byte, error) {
	if len(value) == 0 {
		return []byte("[]"), nil
	}

	var out bytes.Buffer
	out.WriteByte('[')
	for index, item := range value {
		if index > 0 {
			out.WriteByte(',')
		}

		data, err := marshalValue(item)
		if err != nil {
			return nil, err
		}

		out.Write(data)
	}

	out.WriteByte(']')
	return out.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m.Len() == 0 {
		return []byte("{}"), nil
	}

	var out bytes.Buffer
	out.WriteByte('{')
	for index, key := range m.keys {
		if index > 0 {
			out.WriteByte(',')
		}

		keyData, err := encodeJSONString(key)
		if err != nil {
			return nil, err
		}

		valueData, err := marshalValue(m.values[key])
		if err != nil {
			return nil, err
		}

		out.Write(keyData)
		out.WriteByte(':')
		out.Write(valueData)
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// marshalValue encodes nested value and maps nil to JSON null.
func marshalValue(value Value) ([]byte, error) {
	if value == nil {
		return []byte("null"), nil
	}

	return value.MarshalJSON()
}

// encodeJSONString encodes text as JSON string without HTML escaping.
func encodeJSONString(text string) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(text); err != nil {
		return nil, err
	}

	return bytes.TrimRight(out.Bytes(), "\n"), nil
}

// formatNumber renders number with the precision of its declared kind.
func formatNumber(value Number) string {
	switch value.Kind {
	case KindInteger, KindLong:
		return strconv.FormatInt(saturateInt64(value.Value), 10)
	case KindFloat:
		return formatFloat(value.Value, 32)
	case KindDecimal:
		return strconv.FormatFloat(value.Value, 'f', -1, 64)
	default:
		return formatFloat(value.Value, 64)
	}
}

// saturateInt64 converts value to int64, clamping it to the int64 range.
func saturateInt64(value float64) int64 {
	switch {
	case math.IsNaN(value):
		return 0
	case value >= math.MaxInt64:
		return math.MaxInt64
	case value <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(value)
	}
}

// formatFloat mirrors encoding/json float formatting.
func formatFloat(value float64, bits int) string {
	abs := math.Abs(value)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	text := strconv.FormatFloat(value, format, -1, bits)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(text)
		if n >= 4 && text[n-4] == 'e' && text[n-3] == '-' && text[n-2] == '0' {
			text = text[:n-2] + text[n-1:]
		}
	}

	return text
}

// ValueText renders value as plain text, used for XML attribute values.
func ValueText(value Value) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case String:
		return string(typed)
	case Placeholder:
		return string(typed)
	case Bool:
		return strconv.FormatBool(bool(typed))
	case Number:
		return formatNumber(typed)
	default:
		data, err := typed.MarshalJSON()
		if err != nil {
			return ""
		}

		return string(data)
	}
}

// ValueOf converts decoded JSON-like data into an example value.
//
// Keys of plain Go maps are sorted because their iteration order is undefined.
func ValueOf(raw any) Value {
	switch typed := raw.(type) {
	case nil:
		return nil
	case Value:
		return typed
	case string:
		return String(typed)
	case bool:
		return Bool(typed)
	case int:
		return Number{Kind: KindLong, Value: float64(typed)}
	case int32:
		return Number{Kind: KindInteger, Value: float64(typed)}
	case int64:
		return Number{Kind: KindLong, Value: float64(typed)}
	case uint64:
		return Number{Kind: KindLong, Value: float64(typed)}
	case float32:
		return Number{Kind: KindFloat, Value: float64(typed)}
	case float64:
		return Number{Kind: KindDouble, Value: typed}
	case json.Number:
		if integer, err := typed.Int64(); err == nil {
			return Number{Kind: KindLong, Value: float64(integer)}
		}

		float, err := typed.Float64()
		if err != nil {
			return String(typed.String())
		}

		return Number{Kind: KindDouble, Value: float}
	case []any:
		out := make(List, 0, len(typed))
		for _, item := range typed {
			out = append(out, ValueOf(item))
		}

		return out
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)
		out := NewMap()
		for _, key := range keys {
			out.Set(key, ValueOf(typed[key]))
		}

		return out
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return String(fmt.Sprintf("%v", typed))
		}

		decoder := json.NewDecoder(strings.NewReader(string(data)))
		decoder.UseNumber()

		var normalized any
		if err := decoder.Decode(&normalized); err != nil {
			return String(string(data))
		}

		return ValueOf(normalized)
	}
}
