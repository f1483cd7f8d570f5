// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ndchain

import (
	"fmt"

	"github.com/nlpodyssey/ndchain/dims"
	"github.com/nlpodyssey/ndchain/dtype"
)

// Zeros returns a Collective with shape.TotalElementCount() elements, all
// set to dtype.Zero[E]().
//
// If the shape has no elements, the result has no data and its shape is
// dims.Empty(). If the element count overflows, Zeros panics with the error
// reported by shape.CheckedTotalElementCount. The same rules apply to every
// other factory function.
func Zeros[E dtype.Element](shape dims.Shape) Collective[E] {
	return filled(shape, dtype.Zero[E]())
}

// Ones returns a Collective with shape.TotalElementCount() elements, all
// set to dtype.One[E]().
func Ones[E dtype.Element](shape dims.Shape) Collective[E] {
	return filled(shape, dtype.One[E]())
}

// Randn returns a Collective with shape.TotalElementCount() elements, each
// drawn from src.
func Randn[E dtype.Element](shape dims.Shape, src ValueSource[E]) Collective[E] {
	return generated(shape, func() E { return src.Next() })
}

// Randint returns a Collective with shape.TotalElementCount() elements, each
// drawn from src in the range [low, high).
//
// The caller must ensure low < high; otherwise the outcome depends on src.
func Randint(low, high int32, shape dims.Shape, src IntRangeSource) Collective[int32] {
	return generated(shape, func() int32 {
		return src.IntRange(low, high)
	})
}

func filled[E dtype.Element](shape dims.Shape, v E) Collective[E] {
	return generated(shape, func() E { return v })
}

func generated[E dtype.Element](shape dims.Shape, next func() E) Collective[E] {
	n, err := elementCount(shape)
	if err != nil {
		panic(fmt.Errorf("cannot allocate %s: %w", shape, err))
	}
	if n == 0 {
		return Collective[E]{shape: dims.Empty()}
	}
	data := make([]E, n)
	for i := range data {
		data[i] = next()
	}
	return Collective[E]{data: data, shape: shape}
}
