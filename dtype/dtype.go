// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"fmt"

	"github.com/nlpodyssey/ndchain/float16"
)

// DType identifies the element type of a tensor buffer.
type DType uint8

const (
	// Bool represents an 8-bit boolean data type.
	Bool DType = iota + 1
	// U8 represents an 8-bit unsigned integer data type.
	U8
	// I8 represents an 8-bit signed integer data type.
	I8
	// U16 represents a 16-bit unsigned integer data type.
	U16
	// I16 represents a 16-bit signed integer data type.
	I16
	// F16 represents a 16-bit half-precision floating point data type.
	F16
	// BF16 represents a 16-bit brain floating point data type.
	BF16
	// U32 represents a 32-bit unsigned integer data type.
	U32
	// I32 represents a 32-bit signed integer data type.
	I32
	// F32 represents a 32-bit floating point data type.
	F32
	// U64 represents a 64-bit unsigned integer data type.
	U64
	// I64 represents a 64-bit signed integer data type.
	I64
	// F64 represents a 64-bit floating point data type.
	F64
)

// Element is the closed set of Go types a tensor buffer can hold.
// Each type corresponds to exactly one DType, as reported by Of.
//
//	DType | Go type
//	------+---------------
//	Bool  | bool
//	U8    | uint8
//	I8    | int8
//	U16   | uint16
//	I16   | int16
//	F16   | float16.F16
//	BF16  | float16.BF16
//	U32   | uint32
//	I32   | int32
//	F32   | float32
//	U64   | uint64
//	I64   | int64
//	F64   | float64
type Element interface {
	bool | uint8 | int8 | uint16 | int16 | float16.F16 | float16.BF16 |
		uint32 | int32 | float32 | uint64 | int64 | float64
}

var (
	dTypeToString = [...]string{
		Bool: "BOOL",
		U8:   "U8",
		I8:   "I8",
		U16:  "U16",
		I16:  "I16",
		F16:  "F16",
		BF16: "BF16",
		U32:  "U32",
		I32:  "I32",
		F32:  "F32",
		U64:  "U64",
		I64:  "I64",
		F64:  "F64",
	}
	dTypeToSize = [...]int{
		Bool: 1,
		U8:   1,
		I8:   1,
		U16:  2,
		I16:  2,
		F16:  2,
		BF16: 2,
		U32:  4,
		I32:  4,
		F32:  4,
		U64:  8,
		I64:  8,
		F64:  8,
	}
)

// Validate returns an error if the DType is not valid, otherwise nil.
func (dt DType) Validate() error {
	if dt == 0 || dt > F64 {
		return fmt.Errorf("invalid DType(%d)", dt)
	}
	return nil
}

// String returns a string representation of a DType.
func (dt DType) String() string {
	if err := dt.Validate(); err != nil {
		return err.Error()
	}
	return dTypeToString[dt]
}

// Size returns the size in bytes of one element of this data type,
// or -1 if the DType value is invalid.
func (dt DType) Size() int {
	if err := dt.Validate(); err != nil {
		return -1
	}
	return dTypeToSize[dt]
}

// Of returns the DType matching the Go type E.
func Of[E Element]() DType {
	var v E
	switch any(v).(type) {
	case bool:
		return Bool
	case uint8:
		return U8
	case int8:
		return I8
	case uint16:
		return U16
	case int16:
		return I16
	case float16.F16:
		return F16
	case float16.BF16:
		return BF16
	case uint32:
		return U32
	case int32:
		return I32
	case float32:
		return F32
	case uint64:
		return U64
	case int64:
		return I64
	case float64:
		return F64
	}
	panic(fmt.Errorf("unsupported element type %T", v))
}

// Zero returns the additive identity of E.
func Zero[E Element]() E {
	var v E
	return v
}

// One returns the multiplicative identity of E. For bool it is true;
// for the 16-bit float types it is the bit pattern encoding 1.0.
func One[E Element]() E {
	var v E
	var one any
	switch any(v).(type) {
	case bool:
		one = true
	case uint8:
		one = uint8(1)
	case int8:
		one = int8(1)
	case uint16:
		one = uint16(1)
	case int16:
		one = int16(1)
	case float16.F16:
		one = float16.F16FromFloat32(1)
	case float16.BF16:
		one = float16.BF16FromFloat32(1)
	case uint32:
		one = uint32(1)
	case int32:
		one = int32(1)
	case float32:
		one = float32(1)
	case uint64:
		one = uint64(1)
	case int64:
		one = int64(1)
	case float64:
		one = float64(1)
	default:
		panic(fmt.Errorf("unsupported element type %T", v))
	}
	return one.(E)
}
