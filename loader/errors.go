// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package loader

import "errors"

var (
	// ErrReadDocument is returned when document file cannot be read.
	ErrReadDocument = errors.New("read api document")
	// ErrDecodeDocument is returned when document bytes are not valid JSON or YAML.
	ErrDecodeDocument = errors.New("decode api document")
	// ErrUnknownDocument is returned when document is neither Swagger 2.0 nor OpenAPI 3.x.
	ErrUnknownDocument = errors.New("unknown api document version")
	// ErrValidateDocument is returned when optional document validation fails.
	ErrValidateDocument = errors.New("validate api document")
)
