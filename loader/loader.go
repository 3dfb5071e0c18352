// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

// Package loader builds example model registries from Swagger 2.0 and OpenAPI 3.x documents.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/apiexample"
	"github.com/woozymasta/apiexample/internal/logging"
)

// Options configures document loading.
type Options struct {
	// Logger receives records about skipped or simplified schemas.
	Logger *slog.Logger
	// Validate checks document structure with kin-openapi before conversion.
	Validate bool
}

// documentKind is the detected API description format.
type documentKind int

const (
	kindSwagger2 documentKind = iota + 1
	kindOpenAPI3
)

// String implements fmt.Stringer.
func (kind documentKind) String() string {
	switch kind {
	case kindSwagger2:
		return "swagger 2.0"
	case kindOpenAPI3:
		return "openapi 3"
	default:
		return "unknown"
	}
}

// LoadFile reads document from path and converts its schema definitions.
func LoadFile(path string, opt Options) (*apiexample.Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	return Load(data, opt)
}

// Load converts schema definitions of JSON or YAML document bytes.
func Load(data []byte, opt Options) (*apiexample.Definitions, error) {
	return LoadContext(context.Background(), data, opt)
}

// LoadContext is Load with caller context used by document validation.
//
// Model and property declaration order of the document is preserved.
func LoadContext(ctx context.Context, data []byte, opt Options) (*apiexample.Definitions, error) {
	logger := logging.OrNop(opt.Logger)

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDocument, err)
	}

	doc := documentNode(&root)
	if doc == nil || doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document root is not an object", ErrDecodeDocument)
	}

	kind, schemas := detectDocument(doc)
	if kind == 0 {
		return nil, ErrUnknownDocument
	}

	if opt.Validate {
		if err := validateDocument(ctx, kind, doc, data); err != nil {
			return nil, err
		}
	}

	conv := &converter{logger: logger, schemas: schemas}
	defs := apiexample.NewDefinitions()
	forEachPair(schemas, func(name string, value *yaml.Node) {
		defs.Add(conv.model(name, value))
	})

	logger.Debug("loaded api models", "format", kind.String(), "models", defs.Len())
	return defs, nil
}

// detectDocument returns document kind and its schema definitions mapping.
func detectDocument(doc *yaml.Node) (documentKind, *yaml.Node) {
	if version := scalarText(mappingValue(doc, "swagger")); strings.HasPrefix(version, "2.") {
		return kindSwagger2, mappingValue(doc, "definitions")
	}

	if version := scalarText(mappingValue(doc, "openapi")); strings.HasPrefix(version, "3.") {
		return kindOpenAPI3, mappingValue(mappingValue(doc, "components"), "schemas")
	}

	return 0, nil
}

// documentNode unwraps document node into its root content.
func documentNode(root *yaml.Node) *yaml.Node {
	if root == nil {
		return nil
	}

	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}

		return resolveAlias(root.Content[0])
	}

	return resolveAlias(root)
}
