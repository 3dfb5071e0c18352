// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// defaultTitle is used when caller does not provide custom title.
	defaultTitle = "API models"
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = "list"
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
)

const (
	templateListName  = "list"
	templateTableName = "table"
)

// Catalog is a Registry that can enumerate its models.
type Catalog interface {
	Registry
	Names() []string
}

// RenderOptions configures markdown documentation output.
type RenderOptions struct {
	// Title is the document heading for multi-model output.
	Title string
	// TemplateName selects built-in template; empty selects "list".
	TemplateName string
	// TemplateText overrides built-in template when not empty.
	TemplateText string
	// ListMarker is "*" or "-".
	ListMarker string
	// MediaTypes lists example content types; nil selects application/json.
	MediaTypes []string
	// Models restricts output to these model names in given order; nil renders all.
	Models []string
	// Generator configures example synthesis.
	Generator Options
	// WrapWidth wraps description paragraphs; zero selects default.
	WrapWidth int
}

// Validate checks render option values.
func (opt RenderOptions) Validate() error {
	err := validation.ValidateStruct(&opt,
		validation.Field(&opt.TemplateName,
			validation.When(strings.TrimSpace(opt.TemplateText) == "", validation.By(isBuiltinTemplate)),
		),
		validation.Field(&opt.ListMarker, validation.In("*", "-")),
		validation.Field(&opt.WrapWidth, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return opt.Generator.Validate()
}

// Render converts every selected model of catalog into one markdown document.
//
// References between models link to heading anchors inside the document.
func Render(catalog Catalog, opt RenderOptions) (string, error) {
	if err := opt.Validate(); err != nil {
		return "", err
	}

	names := opt.Models
	if names == nil {
		names = catalog.Names()
	}

	generator, err := New(catalog, opt.Generator)
	if err != nil {
		return "", err
	}

	view, err := buildRenderView(catalog, generator, names, opt, anchorLink)
	if err != nil {
		return "", err
	}

	return executeTemplate(view, opt)
}

// RenderModel renders one model page whose references link to sibling page files.
func RenderModel(registry Registry, name string, opt RenderOptions) (string, error) {
	if err := opt.Validate(); err != nil {
		return "", err
	}

	generator, err := New(registry, opt.Generator)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(opt.Title) == "" {
		opt.Title = name
	}

	view, err := buildRenderView(registry, generator, []string{name}, opt, fileLink)
	if err != nil {
		return "", err
	}

	view.Single = true
	return executeTemplate(view, opt)
}

// ModelFileName returns page file name for model, matching placeholder links.
func ModelFileName(name string) string {
	return camelizeName(name) + ".md"
}

// executeTemplate runs resolved template over view and normalizes output.
func executeTemplate(view renderView, opt RenderOptions) (string, error) {
	markdownTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// isBuiltinTemplate is a validation rule accepting empty or known template names.
func isBuiltinTemplate(value any) error {
	name, _ := value.(string)
	name = normalizeTemplateName(name)
	if name == "" {
		return nil
	}

	if _, ok := builtInTemplateFiles[name]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	return nil
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
