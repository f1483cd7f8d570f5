// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ndchain

import "errors"

// Errors returned by Collective operations are wrapped around one of these
// values; use errors.Is to tell them apart.
var (
	// ErrUnallocatedAccess is reported when reading or writing an element
	// of a Collective whose data is not allocated.
	ErrUnallocatedAccess = errors.New("collective data is not allocated")
	// ErrRangeViolation is reported for an index or a slice range outside
	// the data bounds, or a slice range with start > end.
	ErrRangeViolation = errors.New("range violation")
	// ErrUnsupportedAxis is reported by operations that do not support
	// the requested (valid) Axis yet.
	ErrUnsupportedAxis = errors.New("axis not supported")
	// ErrInvalidAxis is reported when an Axis value is not one of
	// AxisRows, AxisColumns or AxisNone.
	ErrInvalidAxis = errors.New("invalid axis")
)
