// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng provides random sources for the ndchain factory functions,
// backed by math/rand.
package rng

import (
	"fmt"
	"math/rand"

	"github.com/nlpodyssey/ndchain/dtype"
	"github.com/nlpodyssey/ndchain/float16"
)

// Source is a deterministic pseudo-random source.
// It is not safe for concurrent use.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded with the given value.
func New(seed int64) *Source {
	return NewFromRand(rand.New(rand.NewSource(seed)))
}

// NewFromRand returns a Source drawing from r.
func NewFromRand(r *rand.Rand) *Source {
	return &Source{r: r}
}

// IntRange returns a uniformly distributed integer in [low, high).
// It panics if low >= high.
func (s *Source) IntRange(low, high int32) int32 {
	if low >= high {
		panic(fmt.Errorf("invalid range [%d, %d)", low, high))
	}
	return low + int32(s.r.Int63n(int64(high)-int64(low)))
}

// Generator produces random values of type E from a Source.
type Generator[E dtype.Element] struct {
	r    *rand.Rand
	next func(*rand.Rand) E
}

// Values returns a Generator of values of type E drawing from s:
//   - floating point values are uniform in [0, 1); F16 and BF16 values
//     are converted from a float32 in that range, and F16 values that
//     round up to 1 are drawn again
//   - integer values are uniform over the whole range of the type
//   - bool values are true or false with equal probability
func Values[E dtype.Element](s *Source) *Generator[E] {
	var f any
	switch dtype.Of[E]() {
	case dtype.Bool:
		f = func(r *rand.Rand) bool { return r.Int63()&1 == 1 }
	case dtype.U8:
		f = func(r *rand.Rand) uint8 { return uint8(r.Uint32()) }
	case dtype.I8:
		f = func(r *rand.Rand) int8 { return int8(r.Uint32()) }
	case dtype.U16:
		f = func(r *rand.Rand) uint16 { return uint16(r.Uint32()) }
	case dtype.I16:
		f = func(r *rand.Rand) int16 { return int16(r.Uint32()) }
	case dtype.F16:
		f = func(r *rand.Rand) float16.F16 {
			for {
				if h := float16.F16FromFloat32(r.Float32()); h.Float32() < 1 {
					return h
				}
			}
		}
	case dtype.BF16:
		f = func(r *rand.Rand) float16.BF16 { return float16.BF16FromFloat32(r.Float32()) }
	case dtype.U32:
		f = func(r *rand.Rand) uint32 { return r.Uint32() }
	case dtype.I32:
		f = func(r *rand.Rand) int32 { return int32(r.Uint32()) }
	case dtype.F32:
		f = func(r *rand.Rand) float32 { return r.Float32() }
	case dtype.U64:
		f = func(r *rand.Rand) uint64 { return r.Uint64() }
	case dtype.I64:
		f = func(r *rand.Rand) int64 { return int64(r.Uint64()) }
	case dtype.F64:
		f = func(r *rand.Rand) float64 { return r.Float64() }
	}
	return &Generator[E]{r: s.r, next: f.(func(*rand.Rand) E)}
}

// Next returns the next random value.
func (g *Generator[E]) Next() E {
	return g.next(g.r)
}
