// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/woozymasta/apiexample/internal/logging"
)

const (
	// DefaultMaxDepth bounds reference expansion in JSON examples.
	DefaultMaxDepth = 9
	// DefaultMaxXMLDepth bounds reference expansion in XML examples.
	DefaultMaxXMLDepth = 3
	// DefaultMaxArrayItems caps repeated items in array examples.
	DefaultMaxArrayItems = 10
)

// Options configures example generation. Zero values select defaults.
type Options struct {
	// Logger receives warnings about degraded examples. Nil discards records.
	Logger *slog.Logger
	// Seed initializes the random source; zero selects DefaultSeed.
	Seed int64
	// MaxDepth bounds JSON reference expansion; zero selects DefaultMaxDepth.
	MaxDepth int
	// MaxXMLDepth bounds XML reference expansion; zero selects DefaultMaxXMLDepth.
	MaxXMLDepth int
	// MaxArrayItems caps array example length; zero selects DefaultMaxArrayItems.
	MaxArrayItems int
}

// Validate checks option ranges.
func (opt Options) Validate() error {
	err := validation.ValidateStruct(&opt,
		validation.Field(&opt.MaxDepth, validation.Min(0)),
		validation.Field(&opt.MaxXMLDepth, validation.Min(0)),
		validation.Field(&opt.MaxArrayItems, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

// normalized returns copy of options with defaults applied.
func (opt Options) normalized() Options {
	if opt.Seed == 0 {
		opt.Seed = DefaultSeed
	}

	if opt.MaxDepth == 0 {
		opt.MaxDepth = DefaultMaxDepth
	}

	if opt.MaxXMLDepth == 0 {
		opt.MaxXMLDepth = DefaultMaxXMLDepth
	}

	if opt.MaxArrayItems == 0 {
		opt.MaxArrayItems = DefaultMaxArrayItems
	}

	opt.Logger = logging.OrNop(opt.Logger)
	return opt
}
