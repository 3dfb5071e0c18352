// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSourceReproducible(t *testing.T) {
	t.Parallel()

	first := NewRandomSource(DefaultSeed)
	second := NewRandomSource(DefaultSeed)
	for range 32 {
		assert.Equal(t, first.Float64(), second.Float64())
	}
}

func TestRandomSourceBetweenRanges(t *testing.T) {
	t.Parallel()

	source := NewRandomSource(1)
	for range 500 {
		value := source.Between(float64Ptr(-2), float64Ptr(2))
		assert.GreaterOrEqual(t, value, -2.0)
		assert.Less(t, value, 2.0)

		value = source.Between(float64Ptr(7), nil)
		assert.GreaterOrEqual(t, value, 7.0)
		assert.Less(t, value, 8.0)

		value = source.Between(nil, float64Ptr(3))
		assert.GreaterOrEqual(t, value, 0.0)
		assert.Less(t, value, 3.0)

		value = source.Between(nil, nil)
		assert.GreaterOrEqual(t, value, 0.0)
		assert.Less(t, value, 10.0)
	}

	assert.Equal(t, 5.0, source.Between(float64Ptr(5), float64Ptr(5)))
}
