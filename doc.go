// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

/*
Package apiexample synthesizes deterministic JSON and XML example payloads for
API model definitions and renders them into markdown reference pages.

Examples are built from a registry of models. Explicit examples, defaults and
enum values are preferred; everything else is synthesized from fixed literals
and a seeded random source, so two runs with the same seed produce the same
output. Self-referencing models are cut off at a depth limit and replaced with
a "[[[Name...|name.md]]]" cross-reference placeholder.

Generate examples for a model:

	defs := apiexample.NewDefinitions(&apiexample.Model{
		Name: "Pet",
		Properties: []apiexample.Property{
			{Name: "id", Schema: &apiexample.Scalar{Kind: apiexample.KindLong}},
			{Name: "name", Schema: &apiexample.Scalar{Kind: apiexample.KindString}},
		},
	})

	generator, err := apiexample.New(defs, apiexample.Options{})
	if err != nil {
		return err
	}

	for _, example := range generator.GenerateForModel(nil, []string{
		apiexample.MediaTypeJSON,
		apiexample.MediaTypeXML,
	}, "Pet") {
		if example.IsNone() {
			continue
		}

		fmt.Printf("%s\n%s\n", example.ContentType, example.Example)
	}

Load models from a Swagger or OpenAPI document with the loader package:

	defs, err := loader.LoadFile("petstore.yaml", loader.Options{})
	if err != nil {
		return err
	}

Render markdown documentation:

	md, err := apiexample.Render(defs, apiexample.RenderOptions{
		Title:        "Petstore models",
		TemplateName: "table",
		MediaTypes:   []string{apiexample.MediaTypeJSON},
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Render one page per model; page names match placeholder links:

	for _, name := range defs.Names() {
		page, err := apiexample.RenderModel(defs, name, apiexample.RenderOptions{})
		if err != nil {
			return err
		}

		_ = os.WriteFile(apiexample.ModelFileName(name), []byte(page), 0o600)
	}
*/
package apiexample
