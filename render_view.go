// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"fmt"
	"strings"
)

// renderView is the root view model passed to markdown templates.
type renderView struct {
	Title      string
	ListMarker string
	Models     []modelView
	Single     bool
}

// modelView represents one model section in markdown output.
type modelView struct {
	Name          string
	Anchor        string
	FileName      string
	Description   string
	Properties    []propertyView
	Examples      []exampleView
	HasProperties bool
}

// propertyView represents one property row or item inside a model.
type propertyView struct {
	Name        string
	Type        string
	Description string
	Attributes  []attributeView
	Required    bool
}

// exampleView is one rendered example block.
type exampleView struct {
	ContentType string
	Language    string
	Text        string
	None        bool
}

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// linkFunc returns markdown link target for referenced model.
type linkFunc func(name string) string

// anchorLink links to model heading in the same document.
func anchorLink(name string) string {
	return "#" + markdownHeadingAnchor(name)
}

// fileLink links to a sibling model page.
func fileLink(name string) string {
	return ModelFileName(name)
}

// buildRenderView prepares data for markdown template rendering.
func buildRenderView(registry Registry, generator *Generator, names []string, opt RenderOptions, link linkFunc) (renderView, error) {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = defaultTitle
	}

	wrapWidth := normalizeWrapWidth(opt.WrapWidth)
	listMarker := normalizeListMarker(opt.ListMarker)

	if len(names) == 0 {
		return renderView{}, ErrNoModels
	}

	view := renderView{
		Title:      sanitizeText(title),
		ListMarker: listMarker,
		Models:     make([]modelView, 0, len(names)),
	}

	for _, name := range names {
		model, ok := registry.Model(name)
		if !ok || model == nil {
			return renderView{}, fmt.Errorf("%w %q", ErrUnknownModel, name)
		}

		section := modelView{
			Name:        escapeInline(name),
			Anchor:      markdownHeadingAnchor(name),
			FileName:    ModelFileName(name),
			Description: formatDescriptionMarkdown(model.Description, wrapWidth),
			Properties:  make([]propertyView, 0, len(model.Properties)),
		}

		for _, property := range model.Properties {
			section.Properties = append(section.Properties, propertyView{
				Name:        escapeInline(property.Name),
				Type:        typeMarkdown(property.Schema, link),
				Description: sanitizeText(property.Description),
				Attributes:  schemaAttributes(property.Schema),
				Required:    property.Required,
			})
		}

		section.HasProperties = len(section.Properties) > 0
		section.Examples = exampleViews(generator.GenerateForModel(nil, opt.MediaTypes, name))
		view.Models = append(view.Models, section)
	}

	return view, nil
}

// exampleViews converts generated examples into template blocks.
func exampleViews(examples []Example) []exampleView {
	out := make([]exampleView, 0, len(examples))
	for _, example := range examples {
		if example.IsNone() {
			out = append(out, exampleView{None: true})
			continue
		}

		out = append(out, exampleView{
			ContentType: example.ContentType,
			Language:    fenceLanguage(example.ContentType),
			Text:        example.Example,
		})
	}

	return out
}

// fenceLanguage selects code fence info string for content type.
func fenceLanguage(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, MediaTypeJSON):
		return "json"
	case strings.HasPrefix(contentType, MediaTypeXML):
		return "xml"
	default:
		return ""
	}
}

// typeMarkdown renders node type label with links to referenced models.
func typeMarkdown(node SchemaNode, link linkFunc) string {
	switch typed := node.(type) {
	case *Scalar:
		return "`" + escapeInline(string(typed.Kind)) + "`"
	case *Array:
		return "list of " + typeMarkdown(typed.Items, link)
	case *MapType:
		return "map of " + typeMarkdown(typed.ValueType, link)
	case *Reference:
		return fmt.Sprintf("[`%s`](%s)", escapeInline(typed.ModelName), link(typed.ModelName))
	default:
		return "`any`"
	}
}
