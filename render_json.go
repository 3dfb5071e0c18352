// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalExampleJSON serializes example value as pretty JSON with two-space indent.
//
// Value trees keep insertion order; other values follow encoding/json rules.
func MarshalExampleJSON(value any) (string, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	return string(bytes.TrimRight(out.Bytes(), "\n")), nil
}
