// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package loader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// validateDocument checks document structure with kin-openapi.
//
// Swagger 2.0 documents are converted to OpenAPI 3 before validation.
func validateDocument(ctx context.Context, kind documentKind, doc *yaml.Node, data []byte) error {
	var (
		parsed *openapi3.T
		err    error
	)

	switch kind {
	case kindOpenAPI3:
		parsed, err = openapi3.NewLoader().LoadFromData(data)
	case kindSwagger2:
		parsed, err = convertSwagger2(doc)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownDocument, kind)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidateDocument, err)
	}

	if err := parsed.Validate(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrValidateDocument, err)
	}

	return nil
}

// convertSwagger2 decodes Swagger 2.0 node tree and converts it to OpenAPI 3.
func convertSwagger2(doc *yaml.Node) (*openapi3.T, error) {
	var raw any
	if err := doc.Decode(&raw); err != nil {
		return nil, err
	}

	data, err := json.Marshal(jsonCompatible(raw))
	if err != nil {
		return nil, err
	}

	var swagger openapi2.T
	if err := json.Unmarshal(data, &swagger); err != nil {
		return nil, err
	}

	return openapi2conv.ToV3(&swagger)
}
