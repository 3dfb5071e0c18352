// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSuppliedExamplesBypassSynthesis(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, NewDefinitions(), Options{})
	got := generator.GenerateForModel([]SuppliedExample{{
		MediaType: MediaTypeJSON,
		Value:     map[string]any{"id": 1},
	}}, []string{MediaTypeJSON, MediaTypeXML}, "Unregistered")

	want := []Example{{ContentType: MediaTypeJSON, Example: "{\n  \"id\": 1\n}"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("supplied examples mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, generator.cache.entries, "synthesis must not run for supplied examples")
}

func TestGenerateSuppliedEmptyIsNone(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, NewDefinitions(), Options{})
	got := generator.GenerateForProperty([]SuppliedExample{}, nil, "name", &Scalar{Kind: KindString})
	require.Len(t, got, 1)
	assert.True(t, got[0].IsNone())
}

func TestGenerateInvalidXMLNameDropsMediaType(t *testing.T) {
	t.Parallel()

	logger, logs := newCaptureLogger()
	registry := NewDefinitions(&Model{Name: "Pet", Properties: []Property{
		{Name: "bad name", Schema: &Scalar{Kind: KindString}},
	}})

	generator := newTestGenerator(t, registry, Options{Logger: logger})
	got := generator.GenerateForModel(nil, []string{MediaTypeXML, MediaTypeJSON}, "Pet")

	want := []Example{{ContentType: MediaTypeJSON, Example: "{\n  \"bad name\": \"bad name\"\n}"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("generate mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "skip xml example")
}

func TestGenerateDefaultsToJSON(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, NewDefinitions(), Options{})
	got := generator.GenerateForProperty(nil, nil, "status", &Scalar{Kind: KindString, Enum: []Value{String("on")}})

	want := []Example{{ContentType: MediaTypeJSON, Example: `"on"`}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateJSONAndXMLForModel(t *testing.T) {
	t.Parallel()

	registry := NewDefinitions(&Model{Name: "Tag", Properties: []Property{
		{Name: "id", Schema: &Scalar{Kind: KindLong, Default: Number{Kind: KindLong, Value: 3}}},
		{Name: "name", Schema: &Scalar{Kind: KindString}},
	}})

	generator := newTestGenerator(t, registry, Options{})
	got := generator.GenerateForModel(nil, []string{"application/json; charset=utf-8", "application/xml"}, "Tag")

	want := []Example{
		{ContentType: "application/json; charset=utf-8", Example: "{\n  \"id\": 3,\n  \"name\": \"name\"\n}"},
		{ContentType: "application/xml", Example: `<Tag id="123456789" name="string"/>`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateNoneSentinel(t *testing.T) {
	t.Parallel()

	registry := NewDefinitions()
	cases := []struct {
		name     string
		generate func(*Generator) []Example
	}{
		{
			name: "unknown model",
			generate: func(g *Generator) []Example {
				return g.GenerateForModel(nil, nil, "Missing")
			},
		},
		{
			name: "unsupported media type",
			generate: func(g *Generator) []Example {
				return g.GenerateForProperty(nil, []string{"text/plain"}, "name", &Scalar{Kind: KindString})
			},
		},
		{
			name: "unresolvable reference",
			generate: func(g *Generator) []Example {
				return g.GenerateForProperty(nil, nil, "owner", &Reference{ModelName: "Owner"})
			},
		},
		{
			name: "empty media types",
			generate: func(g *Generator) []Example {
				return g.GenerateForProperty(nil, []string{}, "name", &Scalar{Kind: KindString})
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tc.generate(newTestGenerator(t, registry, Options{}))
			require.Len(t, got, 1)
			assert.True(t, got[0].IsNone())

			data, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, `[{"output":"none"}]`, string(data))
		})
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := New(NewDefinitions(), Options{MaxDepth: -1})
	require.ErrorIs(t, err, ErrInvalidOptions)

	generator, err := New(nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxDepth, generator.opt.MaxDepth)
	assert.Equal(t, DefaultMaxXMLDepth, generator.opt.MaxXMLDepth)
	assert.Equal(t, DefaultMaxArrayItems, generator.opt.MaxArrayItems)
	assert.Equal(t, DefaultSeed, generator.opt.Seed)
	assert.NotNil(t, generator.logger)
}

func TestGenerateHonorsCustomDepth(t *testing.T) {
	t.Parallel()

	registry := NewDefinitions(&Model{Name: "Node", Properties: []Property{
		{Name: "next", Schema: &Reference{ModelName: "Node"}},
	}})

	generator := newTestGenerator(t, registry, Options{MaxDepth: 3, MaxXMLDepth: 1})
	got := generator.GenerateForModel(nil, []string{MediaTypeJSON, MediaTypeXML}, "Node")

	want := []Example{
		{ContentType: MediaTypeJSON, Example: "{\n  \"next\": \"[[[Node...|node.md]]]\"\n}"},
		{ContentType: MediaTypeXML, Example: "<Node>\n  <next>[[[Node...|node.md]]]</next>\n</Node>"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("generate mismatch (-want +got):\n%s", diff)
	}
}
