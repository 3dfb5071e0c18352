// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package loader

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/apiexample"
)

// mappingValue returns value node stored under key in mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for index := 0; index+1 < len(node.Content); index += 2 {
		if node.Content[index].Value == key {
			return resolveAlias(node.Content[index+1])
		}
	}

	return nil
}

// forEachPair visits mapping entries in declaration order.
func forEachPair(node *yaml.Node, visit func(key string, value *yaml.Node)) {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}

	for index := 0; index+1 < len(node.Content); index += 2 {
		visit(node.Content[index].Value, resolveAlias(node.Content[index+1]))
	}
}

// resolveAlias follows YAML alias nodes to their anchors.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for depth := 0; node != nil && node.Kind == yaml.AliasNode && depth < 32; depth++ {
		node = node.Alias
	}

	return node
}

// scalarText returns trimmed scalar node text or empty string.
func scalarText(node *yaml.Node) string {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}

	return strings.TrimSpace(node.Value)
}

// stringList returns scalar items of sequence node.
func stringList(node *yaml.Node) []string {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}

	out := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if text := scalarText(item); text != "" {
			out = append(out, text)
		}
	}

	return out
}

// floatValue parses numeric scalar node.
func floatValue(node *yaml.Node) (*float64, bool) {
	text := scalarText(node)
	if text == "" {
		return nil, false
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}

	return &value, true
}

// nodeValue converts YAML node into example value keeping mapping order.
func nodeValue(node *yaml.Node) apiexample.Value {
	node = resolveAlias(node)
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		out := apiexample.NewMap()
		forEachPair(node, func(key string, value *yaml.Node) {
			out.Set(key, nodeValue(value))
		})

		return out
	case yaml.SequenceNode:
		out := make(apiexample.List, 0, len(node.Content))
		for _, item := range node.Content {
			out = append(out, nodeValue(item))
		}

		return out
	case yaml.ScalarNode:
		return scalarValue(node)
	default:
		return nil
	}
}

// scalarValue converts tagged YAML scalar into example value.
func scalarValue(node *yaml.Node) apiexample.Value {
	switch node.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var value bool
		if err := node.Decode(&value); err == nil {
			return apiexample.Bool(value)
		}
	case "!!int":
		var value int64
		if err := node.Decode(&value); err == nil {
			return apiexample.Number{Kind: apiexample.KindLong, Value: float64(value)}
		}
	case "!!float":
		var value float64
		if err := node.Decode(&value); err == nil {
			return apiexample.Number{Kind: apiexample.KindDouble, Value: value}
		}
	}

	return apiexample.String(node.Value)
}

// jsonCompatible rewrites YAML-decoded data so encoding/json accepts it.
func jsonCompatible(raw any) any {
	switch typed := raw.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = jsonCompatible(value)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprint(key)] = jsonCompatible(value)
		}

		return out
	case []any:
		for index, value := range typed {
			typed[index] = jsonCompatible(value)
		}

		return typed
	default:
		return raw
	}
}
