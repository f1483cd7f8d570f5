// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ndchain

import "github.com/nlpodyssey/ndchain/dtype"

// ValueSource produces random values of type E, uniformly distributed over
// the natural range of the type.
//
// See package rng for a math/rand based implementation.
type ValueSource[E dtype.Element] interface {
	Next() E
}

// IntRangeSource produces random integers in the half-open range [low, high).
// The behavior when low >= high is defined by the implementation.
type IntRangeSource interface {
	IntRange(low, high int32) int32
}

// ValueSourceFunc adapts a function to the ValueSource interface.
type ValueSourceFunc[E dtype.Element] func() E

// Next calls f().
func (f ValueSourceFunc[E]) Next() E { return f() }

// IntRangeSourceFunc adapts a function to the IntRangeSource interface.
type IntRangeSourceFunc func(low, high int32) int32

// IntRange calls f(low, high).
func (f IntRangeSourceFunc) IntRange(low, high int32) int32 { return f(low, high) }
