// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions is returned when generator or render options fail validation.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrInvalidXML is returned when property name or example text cannot be written as XML.
	ErrInvalidXML = errors.New("invalid xml character")
	// ErrEncodeExampleJSON is returned when example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleXML is returned when example XML serialization fails.
	ErrEncodeExampleXML = errors.New("encode example xml")
	// ErrUnknownModel is returned when requested model is not registered.
	ErrUnknownModel = errors.New("unknown model")
	// ErrNoModels is returned when render selection is empty.
	ErrNoModels = errors.New("no models to render")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrParseCustomTemplate is returned when caller template text does not parse.
	ErrParseCustomTemplate = errors.New("parse custom template")
)

// XMLWriteError describes an attribute or element that could not be written.
type XMLWriteError struct {
	// Name is the offending property name.
	Name string
	// Text is the example text that was being written.
	Text string
}

// Error implements error.
func (err *XMLWriteError) Error() string {
	return fmt.Sprintf("%s: name %q, example string %q", ErrInvalidXML, err.Name, err.Text)
}

// Unwrap returns ErrInvalidXML.
func (err *XMLWriteError) Unwrap() error {
	return ErrInvalidXML
}
