// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderListTemplate(t *testing.T) {
	t.Parallel()

	got, err := Render(petstoreFixture(), RenderOptions{Title: "Petstore"})
	require.NoError(t, err)

	want := "# Petstore\n" +
		"\n" +
		"## Pet\n" +
		"\n" +
		"A pet in the store.\n" +
		"\n" +
		"### Properties\n" +
		"\n" +
		"* `id` (`long`): Unique identifier.\n" +
		"  * Default: `7`\n" +
		"* `category` ([`Category`](#category))\n" +
		"* `tags` (list of `string`)\n" +
		"  * Max items: `2`\n" +
		"* `status` (`string`)\n" +
		"  * Enum: `\"available\"`, `\"sold\"`\n" +
		"\n" +
		"### Example application/json\n" +
		"\n" +
		"```json\n" +
		"{\n" +
		"  \"id\": 7,\n" +
		"  \"category\": {\n" +
		"    \"name\": \"name\"\n" +
		"  },\n" +
		"  \"tags\": [\n" +
		"    \"tags\",\n" +
		"    \"tags\"\n" +
		"  ],\n" +
		"  \"status\": \"available\"\n" +
		"}\n" +
		"```\n" +
		"\n" +
		"## Category\n" +
		"\n" +
		"Group of pets.\n" +
		"\n" +
		"### Properties\n" +
		"\n" +
		"* `name` (`string`, required): Category name.\n" +
		"\n" +
		"### Example application/json\n" +
		"\n" +
		"```json\n" +
		"{\n" +
		"  \"name\": \"name\"\n" +
		"}\n" +
		"```\n"

	assert.Equal(t, want, got)
}

func TestRenderTableTemplate(t *testing.T) {
	t.Parallel()

	got, err := Render(petstoreFixture(), RenderOptions{
		TemplateName: "TABLE",
		MediaTypes:   []string{MediaTypeXML},
		Models:       []string{"Category"},
	})
	require.NoError(t, err)

	assertContains(t, got, "# API models\n")
	assertContains(t, got, "| Name | Type | Required | Description | Attributes |\n| --- | --- | --- | --- | --- |\n")
	assertContains(t, got, "| `name` | `string` | yes | Category name. |  |\n")
	assertContains(t, got, "### Example application/xml\n\n```xml\n<Category name=\"string\"/>\n```\n")

	if strings.Contains(got, "## Pet") {
		t.Fatalf("model selection ignored:\n%s", got)
	}
}

func TestRenderModelLinksToPageFiles(t *testing.T) {
	t.Parallel()

	got, err := RenderModel(petstoreFixture(), "Pet", RenderOptions{ListMarker: "-"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "# Pet\n\nA pet in the store.\n\n## Properties\n"), got)
	assertContains(t, got, "- `category` ([`Category`](category.md))\n")
	assertContains(t, got, "## Example application/json\n")
}

func TestRenderNoExampleAvailable(t *testing.T) {
	t.Parallel()

	got, err := Render(petstoreFixture(), RenderOptions{
		Models:     []string{"Category"},
		MediaTypes: []string{"text/csv"},
	})
	require.NoError(t, err)
	assertContains(t, got, "\nNo example available.\n")
}

func TestRenderCustomTemplate(t *testing.T) {
	t.Parallel()

	got, err := Render(petstoreFixture(), RenderOptions{
		TemplateText: `{{ range .Models }}{{ .Name }}={{ .FileName }}#{{ headingAnchor .Name }};{{ end }}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pet=pet.md#pet;Category=category.md#category;\n", got)
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	catalog := petstoreFixture()

	_, err := Render(catalog, RenderOptions{TemplateName: "cards"})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Render(catalog, RenderOptions{ListMarker: "+"})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Render(catalog, RenderOptions{TemplateText: "{{ .Broken "})
	require.ErrorIs(t, err, ErrParseCustomTemplate)

	_, err = Render(catalog, RenderOptions{TemplateText: "{{ .Missing }}"})
	require.ErrorIs(t, err, ErrExecuteMarkdownTemplate)

	_, err = Render(catalog, RenderOptions{Models: []string{"Ghost"}})
	require.ErrorIs(t, err, ErrUnknownModel)

	_, err = Render(NewDefinitions(), RenderOptions{})
	require.ErrorIs(t, err, ErrNoModels)

	_, err = RenderModel(catalog, "Ghost", RenderOptions{})
	require.ErrorIs(t, err, ErrUnknownModel)
}

func TestBuiltinTemplates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"list", "table"}, BuiltinTemplateNames())

	for _, name := range BuiltinTemplateNames() {
		text, err := BuiltinTemplate(name)
		require.NoError(t, err, name)
		assert.Contains(t, text, "{{- range .Models }}")
	}

	_, err := BuiltinTemplate("cards")
	require.ErrorIs(t, err, ErrUnknownBuiltinTemplate)
}

func TestModelFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "petOwner.md", ModelFileName("PetOwner"))
	assert.Equal(t, "apiResponse.md", ModelFileName("api_response"))
}

func TestFormatDescriptionMarkdown(t *testing.T) {
	t.Parallel()

	input := "First line of a long paragraph\r\nthat keeps going.\n\n" +
		"- item one\n" +
		"- item two\n\n" +
		"```\ncode   stays\n```"

	got := formatDescriptionMarkdown(input, 20)
	want := "First line of a long\n" +
		"paragraph that keeps\n" +
		"going.\n" +
		"\n" +
		"- item one\n" +
		"- item two\n" +
		"\n" +
		"```\n" +
		"code   stays\n" +
		"```"

	assert.Equal(t, want, got)
	assert.Empty(t, formatDescriptionMarkdown("  \n ", 20))
}

func TestMarkdownHeadingAnchor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Pet":            "pet",
		"Api_Response":   "api-response",
		" Order Item  ":  "order-item",
		"Model.V2 (old)": "modelv2-old",
		"":               "",
	}

	for input, want := range cases {
		assert.Equal(t, want, markdownHeadingAnchor(input), input)
	}
}

// petstoreFixture returns small deterministic catalog.
func petstoreFixture() *Definitions {
	return NewDefinitions(
		&Model{
			Name:        "Pet",
			Description: "A pet in the store.",
			Properties: []Property{
				{
					Name:        "id",
					Description: "Unique identifier.",
					Schema:      &Scalar{Kind: KindLong, Default: Number{Kind: KindLong, Value: 7}},
				},
				{Name: "category", Schema: &Reference{ModelName: "Category"}},
				{Name: "tags", Schema: &Array{Items: &Scalar{Kind: KindString}, MaxItems: intPtr(2)}},
				{Name: "status", Schema: &Scalar{Kind: KindString, Enum: []Value{String("available"), String("sold")}}},
			},
		},
		&Model{
			Name:        "Category",
			Description: "Group of pets.",
			Properties: []Property{
				{Name: "name", Description: "Category name.", Schema: &Scalar{Kind: KindString}, Required: true},
			},
		},
	)
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()

	if !strings.Contains(got, want) {
		t.Fatalf("output does not contain %q\n--- output ---\n%s", want, got)
	}
}
