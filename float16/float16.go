// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"math"

	"github.com/x448/float16"
)

// F16 is a 16-bit half-precision floating-point value (IEEE 754 binary16),
// represented as raw bits (uint16).
type F16 uint16

// BF16 is a 16-bit brain floating-point value, represented as raw bits
// (uint16). It holds the upper half of a float32.
type BF16 uint16

// F16FromFloat32 converts a float32 to the nearest F16, rounding to even.
func F16FromFloat32(f float32) F16 {
	return F16(float16.Fromfloat32(f).Bits())
}

// Float32 returns the F16 value widened to float32. The conversion is exact.
func (h F16) Float32() float32 {
	return float16.Frombits(uint16(h)).Float32()
}

// BF16FromFloat32 converts a float32 to BF16 by truncating the lower
// 16 bits of its representation.
func BF16FromFloat32(f float32) BF16 {
	return BF16(math.Float32bits(f) >> 16)
}

// Float32 returns the BF16 value widened to float32. The conversion is exact.
func (b BF16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}
