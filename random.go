// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import "math/rand/v2"

// DefaultSeed keeps generated numbers stable between runs when no seed is configured.
const DefaultSeed int64 = 632808617

// RandomSource draws reproducible pseudo-random numbers for numeric examples.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns random source seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	state := uint64(seed)
	return &RandomSource{
		rng: rand.New(rand.NewPCG(state, state^0x9e3779b97f4a7c15)),
	}
}

// Float64 returns next number in [0, 1).
func (source *RandomSource) Float64() float64 {
	return source.rng.Float64()
}

// Between draws a number honoring optional bounds.
//
// Both bounds give [min, max), only minimum gives [min, min+1), only maximum gives
// [0, max) and no bounds give [0, 10).
func (source *RandomSource) Between(minimum, maximum *float64) float64 {
	draw := source.Float64()

	switch {
	case minimum != nil && maximum != nil:
		return draw*(*maximum-*minimum) + *minimum
	case minimum != nil:
		return draw + *minimum
	case maximum != nil:
		return draw * *maximum
	default:
		return draw * 10
	}
}
