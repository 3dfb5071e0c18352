// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	// MediaTypeJSON selects the JSON example path.
	MediaTypeJSON = "application/json"
	// MediaTypeXML selects the XML example path.
	MediaTypeXML = "application/xml"
	// OutputNone marks the "no example available" result.
	OutputNone = "none"
)

// Example is one rendered example block for a content type.
//
// A result with Output set to OutputNone signals that nothing could be produced.
type Example struct {
	ContentType string `json:"contentType,omitempty"`
	Example     string `json:"example,omitempty"`
	Output      string `json:"output,omitempty"`
}

// IsNone reports whether example is the "no example available" sentinel.
func (example Example) IsNone() bool {
	return example.Output == OutputNone
}

// SuppliedExample is an example declared by the API document for one media type.
type SuppliedExample struct {
	MediaType string
	Value     any
}

// Generator synthesizes examples for one generation pass.
//
// A Generator owns its random source and model cache and must not be shared between
// goroutines.
type Generator struct {
	registry Registry
	random   *RandomSource
	logger   *slog.Logger
	cache    *modelCache
	opt      Options
}

// exampleTarget is the schema a generate call is rooted at.
type exampleTarget struct {
	name  string
	node  SchemaNode
	model *Model
}

// New returns generator reading models from registry.
func New(registry Registry, opt Options) (*Generator, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	if registry == nil {
		registry = NewDefinitions()
	}

	opt = opt.normalized()
	return &Generator{
		registry: registry,
		random:   NewRandomSource(opt.Seed),
		logger:   opt.Logger,
		cache:    newModelCache(),
		opt:      opt,
	}, nil
}

// ResolveProperty resolves node into an example value for mediaType.
//
// The second result is false when node produces nothing.
func (g *Generator) ResolveProperty(name, mediaType string, node SchemaNode) (Value, bool) {
	return g.newResolution().resolveProperty(name, mediaType, node, 0)
}

// ResolveModel resolves registered model into an example value for mediaType.
func (g *Generator) ResolveModel(name, mediaType string) (Value, error) {
	model, ok := g.registry.Model(name)
	if !ok || model == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownModel, name)
	}

	return g.newResolution().resolveModel(name, mediaType, model, 0), nil
}

// GenerateForProperty renders examples for a property schema in each media type.
//
// Non-nil supplied examples are rendered as-is and synthesis is skipped. Nil mediaTypes
// selects application/json.
func (g *Generator) GenerateForProperty(supplied []SuppliedExample, mediaTypes []string, name string, node SchemaNode) []Example {
	return g.generate(supplied, mediaTypes, exampleTarget{name: name, node: node})
}

// GenerateForModel renders examples for a registered model in each media type.
//
// Unknown models produce the "no example available" sentinel.
func (g *Generator) GenerateForModel(supplied []SuppliedExample, mediaTypes []string, modelName string) []Example {
	target := exampleTarget{name: modelName}
	if model, ok := g.registry.Model(modelName); ok {
		target.model = model
	}

	return g.generate(supplied, mediaTypes, target)
}

// generate renders examples for target in requested media types.
func (g *Generator) generate(supplied []SuppliedExample, mediaTypes []string, target exampleTarget) []Example {
	var output []Example
	if supplied != nil {
		output = g.renderSupplied(supplied)
	} else {
		if mediaTypes == nil {
			mediaTypes = []string{MediaTypeJSON}
		}

		for _, mediaType := range mediaTypes {
			text, ok := g.renderMediaType(mediaType, target)
			if !ok {
				continue
			}

			output = append(output, Example{ContentType: mediaType, Example: text})
		}
	}

	if len(output) == 0 {
		return []Example{{Output: OutputNone}}
	}

	return output
}

// renderSupplied pretty-prints caller provided examples in their given order.
func (g *Generator) renderSupplied(supplied []SuppliedExample) []Example {
	output := make([]Example, 0, len(supplied))
	for _, item := range supplied {
		text, err := MarshalExampleJSON(item.Value)
		if err != nil {
			g.logger.Warn("skip supplied example", "contentType", item.MediaType, "error", err)
			continue
		}

		output = append(output, Example{ContentType: item.MediaType, Example: text})
	}

	return output
}

// renderMediaType renders target for one media type; ok is false when nothing was produced.
func (g *Generator) renderMediaType(mediaType string, target exampleTarget) (string, bool) {
	if target.node == nil && target.model == nil {
		g.logger.Debug("no schema for example target", "target", target.name, "contentType", mediaType)
		return "", false
	}

	switch {
	case strings.HasPrefix(mediaType, MediaTypeJSON):
		return g.renderJSON(mediaType, target)
	case strings.HasPrefix(mediaType, MediaTypeXML):
		return g.renderXML(mediaType, target)
	default:
		g.logger.Debug("unsupported example media type", "contentType", mediaType)
		return "", false
	}
}

// renderJSON runs the JSON path for target.
func (g *Generator) renderJSON(mediaType string, target exampleTarget) (string, bool) {
	res := g.newResolution()

	var value Value
	if target.model != nil {
		value = res.resolveModel(target.name, mediaType, target.model, 0)
	} else {
		resolved, ok := res.resolveProperty(target.name, mediaType, target.node, 0)
		if !ok {
			return "", false
		}

		value = resolved
	}

	text, err := MarshalExampleJSON(value)
	if err != nil {
		g.logger.Warn("skip json example", "target", target.name, "error", err)
		return "", false
	}

	return text, true
}

// renderXML runs the XML path for target; serialization errors drop the media type.
func (g *Generator) renderXML(mediaType string, target exampleTarget) (string, bool) {
	builder := xmlBuilder{
		registry: g.registry,
		logger:   g.logger,
		maxDepth: g.opt.MaxXMLDepth,
	}

	var (
		text string
		err  error
	)

	if target.model != nil {
		text, err = builder.modelToXML(target.name, target.model)
	} else {
		text, err = builder.propertyToXML(target.name, target.node)
	}

	if err != nil {
		g.logger.Warn("skip xml example",
			"target", target.name,
			"contentType", mediaType,
			"error", err,
		)

		return "", false
	}

	return text, true
}

// newResolution starts per-call resolution state sharing generator cache.
func (g *Generator) newResolution() *resolution {
	return &resolution{
		registry:      g.registry,
		random:        g.random,
		logger:        g.logger,
		cache:         g.cache,
		activeModels:  make(map[string]int),
		maxDepth:      g.opt.MaxDepth,
		maxArrayItems: g.opt.MaxArrayItems,
	}
}
