// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Set("zulu", String("z"))
	m.Set("alpha", Bool(false))
	m.Set("mike", Number{Kind: KindInteger, Value: 3})
	m.Set("zulu", String("replaced"))

	assert.Equal(t, []string{"zulu", "alpha", "mike"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	value, ok := m.Get("zulu")
	require.True(t, ok)
	assert.Equal(t, String("replaced"), value)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zulu":"replaced","alpha":false,"mike":3}`, string(data))
}

func TestNilMapIsEmpty(t *testing.T) {
	t.Parallel()

	var m *Map
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Keys())

	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestNumberFormatting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value Number
		want  string
	}{
		{name: "integer", value: Number{Kind: KindInteger, Value: 3}, want: "3"},
		{name: "negative long", value: Number{Kind: KindLong, Value: -42}, want: "-42"},
		{name: "float keeps single precision", value: Number{Kind: KindFloat, Value: float64(float32(1.1))}, want: "1.1"},
		{name: "double", value: Number{Kind: KindDouble, Value: 3.5}, want: "3.5"},
		{name: "double large", value: Number{Kind: KindDouble, Value: 1e21}, want: "1e+21"},
		{name: "double small", value: Number{Kind: KindDouble, Value: 1e-9}, want: "1e-9"},
		{name: "decimal never exponent", value: Number{Kind: KindDecimal, Value: 0.0000001}, want: "0.0000001"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data, err := tc.value.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(data))
		})
	}
}

func TestNumberRejectsNaN(t *testing.T) {
	t.Parallel()

	_, err := MarshalExampleJSON(List{Number{Kind: KindDouble, Value: math.NaN()}})
	require.ErrorIs(t, err, ErrEncodeExampleJSON)
}

func TestStringDoesNotEscapeHTML(t *testing.T) {
	t.Parallel()

	text, err := MarshalExampleJSON(String("<a href=\"x\">&</a>"))
	require.NoError(t, err)
	assert.Equal(t, `"<a href=\"x\">&</a>"`, text)
}

func TestMarshalExampleJSONIndentsNestedValues(t *testing.T) {
	t.Parallel()

	inner := NewMap()
	inner.Set("id", Number{Kind: KindLong, Value: 1})

	outer := NewMap()
	outer.Set("items", List{inner})
	outer.Set("empty", List{})
	outer.Set("missing", nil)

	text, err := MarshalExampleJSON(outer)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"items\": [\n    {\n      \"id\": 1\n    }\n  ],\n  \"empty\": [],\n  \"missing\": null\n}", text)
}

func TestValueText(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Set("a", Number{Kind: KindInteger, Value: 1})

	assert.Empty(t, ValueText(nil))
	assert.Equal(t, "plain", ValueText(String("plain")))
	assert.Equal(t, "true", ValueText(Bool(true)))
	assert.Equal(t, "1.5", ValueText(Number{Kind: KindDouble, Value: 1.5}))
	assert.Equal(t, `{"a":1}`, ValueText(m))
	assert.Equal(t, `["x","y"]`, ValueText(List{String("x"), String("y")}))
}

func TestValueOf(t *testing.T) {
	t.Parallel()

	value := ValueOf(map[string]any{
		"zeta":  "z",
		"alpha": []any{true, float64(2.5), int64(7)},
		"mid":   json.Number("12"),
		"nil":   nil,
	})

	m, ok := value.(*Map)
	require.True(t, ok, "map input must become *Map, got %T", value)
	assert.Equal(t, []string{"alpha", "mid", "nil", "zeta"}, m.Keys())

	text, err := MarshalExampleJSON(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alpha":[true,2.5,7],"mid":12,"nil":null,"zeta":"z"}`, text)

	type sample struct {
		Name string `json:"name"`
	}

	structValue := ValueOf(sample{Name: "x"})
	assert.Equal(t, `{"name":"x"}`, ValueText(structValue))
	assert.Equal(t, String("kept"), ValueOf(String("kept")))
}
