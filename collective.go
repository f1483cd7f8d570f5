// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ndchain provides a minimal N-dimensional array: a flat buffer of
// elements paired with a dimension chain (see package dims) describing its
// shape.
package ndchain

import (
	"fmt"
	"math"

	"github.com/nlpodyssey/ndchain/dims"
	"github.com/nlpodyssey/ndchain/dtype"
)

// A Collective is a tensor buffer: an optional flat data buffer and an
// optional shape.
//
// Both parts may be left unset and assigned later, so a Collective is in one
// of four states: no data and no shape, data only, shape only, or fully
// realized. The zero value has neither data nor shape.
//
// The number of elements is always derived from the shape and never stored.
// A Collective is meant to have a single owner: copying the struct value
// shares the underlying data.
type Collective[E dtype.Element] struct {
	data  []E
	shape dims.Shape
}

// New returns a Collective with the given data and shape, as they are.
// A nil data slice means unset data, and a zero dims.Shape means unset shape.
//
// No validation is performed: in particular, the length of data is not
// checked against the shape.
func New[E dtype.Element](data []E, shape dims.Shape) Collective[E] {
	return Collective[E]{data: data, shape: shape}
}

// FromShape allocates a buffer of shape.TotalElementCount() zero values
// and returns it paired with shape.
//
// An error is returned only if the element count overflows.
func FromShape[E dtype.Element](shape dims.Shape) (Collective[E], error) {
	n, err := elementCount(shape)
	if err != nil {
		return Collective[E]{}, err
	}
	return Collective[E]{
		data:  make([]E, n),
		shape: shape,
	}, nil
}

// elementCount returns shape.CheckedTotalElementCount() as an int.
func elementCount(shape dims.Shape) (int, error) {
	n, err := shape.CheckedTotalElementCount()
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("total element count is too large for int type: %d", n)
	}
	return int(n), nil
}

// DType returns the data type of the elements.
func (c Collective[E]) DType() dtype.DType {
	return dtype.Of[E]()
}

// The Data of the Collective. It is nil if the data is not allocated.
//
// The value returned is NOT a copy: any change to its content will
// affect the Collective too.
func (c Collective[E]) Data() []E {
	return c.data
}

// The Shape of the Collective. It is the zero dims.Shape if unset.
func (c Collective[E]) Shape() dims.Shape {
	return c.shape
}

// HasData reports whether the data is allocated.
func (c Collective[E]) HasData() bool {
	return c.data != nil
}

// HasShape reports whether the shape is set.
func (c Collective[E]) HasShape() bool {
	return !c.shape.IsZero()
}

// Len returns the length of the data, or 0 if it is not allocated.
func (c Collective[E]) Len() int {
	return len(c.data)
}

// ByteSize returns the size in bytes of the allocated data, that is
// Len() multiplied by the size of one element.
func (c Collective[E]) ByteSize() int {
	return len(c.data) * c.DType().Size()
}

// SetData assigns the data buffer. A nil value unsets it.
func (c *Collective[E]) SetData(data []E) {
	c.data = data
}

// SetShape assigns the shape. A zero dims.Shape unsets it.
func (c *Collective[E]) SetShape(shape dims.Shape) {
	c.shape = shape
}

// At returns the element at the flat offset i.
func (c Collective[E]) At(i int) (E, error) {
	if err := c.checkIndex(i); err != nil {
		var zero E
		return zero, fmt.Errorf("failed to read element: %w", err)
	}
	return c.data[i], nil
}

// Set assigns v to the element at the flat offset i.
func (c *Collective[E]) Set(i int, v E) error {
	if err := c.checkIndex(i); err != nil {
		return fmt.Errorf("failed to write element: %w", err)
	}
	c.data[i] = v
	return nil
}

func (c Collective[E]) checkIndex(i int) error {
	if c.data == nil {
		return ErrUnallocatedAccess
	}
	if i < 0 || i >= len(c.data) {
		return fmt.Errorf("index %d out of bounds [0, %d): %w", i, len(c.data), ErrRangeViolation)
	}
	return nil
}

// Slice returns a new Collective with a copy of the elements in the
// half-open range [start, end), paired with the given shape.
//
// Only AxisNone is supported: the data is handled as a flat sequence.
// AxisRows and AxisColumns report ErrUnsupportedAxis, any other value
// ErrInvalidAxis. If c has no data, the result is an empty Collective
// without data and shape.
func (c Collective[E]) Slice(start, end int, shape dims.Shape, axis Axis) (Collective[E], error) {
	switch axis {
	case AxisNone:
	case AxisRows, AxisColumns:
		return Collective[E]{}, fmt.Errorf("slice along %s: %w", axis, ErrUnsupportedAxis)
	default:
		return Collective[E]{}, fmt.Errorf("slice along %s: %w", axis, ErrInvalidAxis)
	}

	if c.data == nil {
		return Collective[E]{}, nil
	}
	if start < 0 || start > end || end > len(c.data) {
		return Collective[E]{}, fmt.Errorf("slice indices out of bounds: start %d, end %d, len %d: %w",
			start, end, len(c.data), ErrRangeViolation)
	}

	data := make([]E, end-start)
	copy(data, c.data[start:end])
	return Collective[E]{data: data, shape: shape}, nil
}

// String returns a short description of the Collective, such as
// "Collective[F32](2 → 3 × 4, len=24)".
func (c Collective[E]) String() string {
	shape := "no shape"
	if c.HasShape() {
		shape = c.shape.String()
	}
	if c.data == nil {
		return fmt.Sprintf("Collective[%s](%s, unallocated)", c.DType(), shape)
	}
	return fmt.Sprintf("Collective[%s](%s, len=%d)", c.DType(), shape, len(c.data))
}
