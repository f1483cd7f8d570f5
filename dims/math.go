// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dims

import (
	"fmt"
	"math/bits"
)

// checkedMul multiplies a and b and checks for overflow.
func checkedMul(a, b uint) (uint, error) {
	hi, c := bits.Mul(a, b)
	if hi != 0 {
		return c, fmt.Errorf("multiplication overflow: %d * %d", a, b)
	}
	return c, nil
}
