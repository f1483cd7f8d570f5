// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ndchain

import "fmt"

// Axis selects the dimension along which an operation is performed.
type Axis uint8

const (
	// AxisRows operates along the rows (vertical operations).
	AxisRows Axis = iota
	// AxisColumns operates along the columns (horizontal operations),
	// that is the last axis.
	AxisColumns
	// AxisNone ignores the dimensions, treating the data as a flat sequence.
	AxisNone
)

var axisToString = [...]string{
	AxisRows:    "Rows",
	AxisColumns: "Columns",
	AxisNone:    "None",
}

// Validate returns an error if the Axis is not valid, otherwise nil.
func (a Axis) Validate() error {
	if a > AxisNone {
		return fmt.Errorf("invalid Axis(%d)", a)
	}
	return nil
}

// String returns a string representation of an Axis.
func (a Axis) String() string {
	if err := a.Validate(); err != nil {
		return err.Error()
	}
	return axisToString[a]
}
