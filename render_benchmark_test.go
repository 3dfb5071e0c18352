// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"testing"
)

// BenchmarkGenerateForModel measures JSON and XML synthesis for a recursive model.
func BenchmarkGenerateForModel(b *testing.B) {
	registry := benchmarkCatalog()
	mediaTypes := []string{MediaTypeJSON, MediaTypeXML}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		generator, err := New(registry, Options{})
		if err != nil {
			b.Fatalf("New: %v", err)
		}

		if out := generator.GenerateForModel(nil, mediaTypes, "Node"); len(out) != 2 {
			b.Fatalf("GenerateForModel returned %d examples", len(out))
		}
	}
}

// BenchmarkRenderListTemplate measures full in-memory render flow for list template.
func BenchmarkRenderListTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "list")
}

// BenchmarkRenderTableTemplate measures full in-memory render flow for table template.
func BenchmarkRenderTableTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "table")
}

// benchmarkRenderTemplate runs shared render benchmark body for one template.
func benchmarkRenderTemplate(b *testing.B, templateName string) {
	b.Helper()

	catalog := benchmarkCatalog()
	opt := RenderOptions{
		TemplateName: templateName,
		MediaTypes:   []string{MediaTypeJSON, MediaTypeXML},
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Render(catalog, opt); err != nil {
			b.Fatalf("Render(%s): %v", templateName, err)
		}
	}
}

// benchmarkCatalog returns catalog with self and mutual references.
func benchmarkCatalog() *Definitions {
	return NewDefinitions(
		&Model{Name: "Node", Description: "Tree node.", Properties: []Property{
			{Name: "id", Schema: &Scalar{Kind: KindLong}},
			{Name: "weight", Schema: &Scalar{Kind: KindDouble, Minimum: float64Ptr(0), Maximum: float64Ptr(1)}},
			{Name: "children", Schema: &Array{Items: &Reference{ModelName: "Node"}, MaxItems: intPtr(3)}},
			{Name: "owner", Schema: &Reference{ModelName: "Owner"}},
			{Name: "labels", Schema: &MapType{ValueType: &Scalar{Kind: KindString}}},
		}},
		&Model{Name: "Owner", Properties: []Property{
			{Name: "name", Schema: &Scalar{Kind: KindString}},
			{Name: "nodes", Schema: &Array{Items: &Reference{ModelName: "Node"}}},
		}},
	)
}
