// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

// resolution holds state for one top-level example request.
type resolution struct {
	registry      Registry
	random        *RandomSource
	logger        *slog.Logger
	cache         *modelCache
	activeModels  map[string]int
	maxDepth      int
	maxArrayItems int
}

// modelCache memoizes synthesized model examples per media type.
type modelCache struct {
	entries map[string]Value
}

// newModelCache returns empty model example cache.
func newModelCache() *modelCache {
	return &modelCache{entries: make(map[string]Value)}
}

// lookup returns cached example for model under media type.
func (cache *modelCache) lookup(mediaType, name string) Value {
	return cache.entries[modelCacheKey(mediaType, name)]
}

// store remembers synthesized example for model under media type.
func (cache *modelCache) store(mediaType, name string, value Value) {
	cache.entries[modelCacheKey(mediaType, name)] = value
}

// modelCacheKey joins media type and model name into one cache key.
func modelCacheKey(mediaType, name string) string {
	return mediaType + "\x00" + name
}

// resolveProperty resolves one schema node into an example value.
//
// The second result is false when node contributes nothing, for example a reference
// to a model missing from the registry.
func (res *resolution) resolveProperty(propertyName, mediaType string, node SchemaNode, depth int) (Value, bool) {
	if node == nil {
		return nil, false
	}

	if example := node.ExplicitExample(); example != nil {
		return example, true
	}

	switch typed := node.(type) {
	case *Scalar:
		return res.scalarExample(propertyName, typed), true
	case *Array:
		return res.arrayExample(propertyName, mediaType, typed, depth)
	case *MapType:
		return res.mapExample(propertyName, mediaType, typed, depth)
	case *Reference:
		model, ok := res.registry.Model(typed.ModelName)
		if !ok || model == nil {
			res.logger.Warn("reference to unknown model",
				"property", propertyName,
				"model", typed.ModelName,
			)

			return nil, false
		}

		return res.resolveModel(typed.ModelName, mediaType, model, depth+2), true
	default:
		res.logger.Warn("example value not implemented for schema node",
			"property", propertyName,
			"node", fmt.Sprintf("%T", node),
		)

		return String(""), true
	}
}

// arrayExample repeats one resolved item example up to the configured length.
func (res *resolution) arrayExample(propertyName, mediaType string, node *Array, depth int) (Value, bool) {
	if node.Items == nil {
		res.logger.Warn("array without item schema", "property", propertyName)
		return String(""), true
	}

	length := 1
	if node.MaxItems != nil {
		length = max(*node.MaxItems, 0)
	}

	if length > res.maxArrayItems {
		res.logger.Warn("limiting array example length",
			"property", propertyName,
			"maxItems", length,
			"limit", res.maxArrayItems,
		)

		length = res.maxArrayItems
	}

	item, ok := res.resolveProperty(propertyName, mediaType, node.Items, depth+1)
	if !ok {
		return nil, false
	}

	out := make(List, length)
	for index := range out {
		out[index] = item
	}

	return out, true
}

// mapExample builds single-entry dictionary keyed by property name.
func (res *resolution) mapExample(propertyName, mediaType string, node *MapType, depth int) (Value, bool) {
	out := NewMap()
	if node.ValueType == nil {
		return out, true
	}

	value, ok := res.resolveProperty(propertyName, mediaType, node.ValueType, depth+1)
	if !ok {
		return nil, false
	}

	key := propertyName
	if strings.TrimSpace(key) == "" {
		key = "key"
	}

	out.Set(key, value)
	return out, true
}

// resolveModel resolves model properties into an ordered map example.
func (res *resolution) resolveModel(name, mediaType string, model *Model, depth int) Value {
	if depth >= res.maxDepth {
		return Placeholder(modelPlaceholder(name))
	}

	known := model.Example
	if known == nil {
		known = res.cache.lookup(mediaType, name)
	}

	if res.activeModels[name] > 0 && known != nil {
		return known
	}

	release := res.enterModel(name)
	defer release()

	if known != nil {
		return known
	}

	res.logger.Debug("resolving model example", "model", name, "depth", depth)

	values := NewMap()
	for _, property := range model.Properties {
		value, ok := res.resolveProperty(property.Name, mediaType, property.Schema, depth+1)
		if !ok {
			continue
		}

		values.Set(property.Name, value)
	}

	res.cache.store(mediaType, name, values)
	return values
}

// enterModel marks model as visited on the current branch and returns release callback.
func (res *resolution) enterModel(name string) func() {
	res.activeModels[name]++
	return func() {
		res.activeModels[name]--
		if res.activeModels[name] <= 0 {
			delete(res.activeModels, name)
		}
	}
}

// modelPlaceholder builds cross-reference marker for truncated model.
func modelPlaceholder(name string) string {
	return fmt.Sprintf("[[[%s...|%s.md]]]", name, camelizeName(name))
}

// camelizeName converts model name to lower camel case used in page file names.
func camelizeName(name string) string {
	camel := inflect.Camelize(strings.TrimSpace(name))
	if camel == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(camel)
	return string(unicode.ToLower(first)) + camel[size:]
}
