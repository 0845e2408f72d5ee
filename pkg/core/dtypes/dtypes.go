// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes includes the DType enum for the tensor element types of ONNX.
//
// The enum values are the ones of ONNX's TensorProto.DataType, so a DType can be written as is in
// a serialized type descriptor or tensor. It includes converters to/from Go native types (and reflect.Type),
// and the generic constraint Supported of the Go types that have a corresponding DType.
package dtypes

import (
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters don't follow the specifications.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

func init() {
	if strconv.IntSize != 32 && strconv.IntSize != 64 {
		panicf("cannot use int of %d bits -- only platforms with int32 or int64 are supported", strconv.IntSize)
	}
	for dtype := InvalidDType; dtype <= maxEnum; dtype++ {
		for _, name := range []string{onnxNames[dtype], goNames[dtype]} {
			MapOfNames[name] = dtype
		}
	}
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if _, found := MapOfNames[lowerKey]; !found {
			MapOfNames[lowerKey] = MapOfNames[key]
		}
	}
}

// IsValid returns whether dtype is a known element type, other than InvalidDType.
func (dtype DType) IsValid() bool {
	return dtype > InvalidDType && dtype <= maxEnum
}

// String returns the Go-style name of the dtype (e.g.: "Float32").
func (dtype DType) String() string {
	if dtype < InvalidDType || dtype > maxEnum {
		return "DType(" + strconv.Itoa(int(dtype)) + ")"
	}
	return goNames[dtype]
}

// ONNXName returns the name of the ONNX TensorProto.DataType enum (e.g.: "FLOAT").
func (dtype DType) ONNXName() string {
	if dtype < InvalidDType || dtype > maxEnum {
		return strconv.Itoa(int(dtype))
	}
	return onnxNames[dtype]
}

// TensorTypeString renders the dtype the way ONNX prints tensor types, e.g.: "tensor(float)".
func (dtype DType) TensorTypeString() string {
	return "tensor(" + strings.ToLower(dtype.ONNXName()) + ")"
}

// FromName parses a dtype by its ONNX name, Go name or short alias. Case is ignored.
func FromName(name string) (DType, error) {
	if dtype, found := MapOfNames[name]; found {
		return dtype, nil
	}
	if dtype, found := MapOfNames[strings.ToLower(name)]; found {
		return dtype, nil
	}
	return InvalidDType, errors.Errorf("unknown dtype %q", name)
}

// Supported lists the Go types that have a corresponding DType.
type Supported interface {
	bool | float16.Float16 | bfloat16.BFloat16 | float32 | float64 | int | int32 | int64 | uint8 | uint32 | uint64 |
		int8 | int16 | uint16 | complex64 | complex128
}

// FromGenericsType returns the DType enum for the given type that this package knows about.
func FromGenericsType[T Supported]() DType {
	var t T
	return FromAny(t)
}

var (
	float16Type  = reflect.TypeOf(float16.Float16(0))
	bfloat16Type = reflect.TypeOf(bfloat16.BFloat16(0))
)

// FromGoType returns the DType for the given reflect.Type.
// It returns InvalidDType for types without a corresponding DType.
func FromGoType(t reflect.Type) DType {
	switch t {
	case float16Type:
		return Float16
	case bfloat16Type:
		return BFloat16
	}
	switch t.Kind() {
	case reflect.Int:
		if strconv.IntSize == 32 {
			return Int32
		}
		return Int64
	case reflect.Int64:
		return Int64
	case reflect.Int32:
		return Int32
	case reflect.Int16:
		return Int16
	case reflect.Int8:
		return Int8
	case reflect.Uint64:
		return Uint64
	case reflect.Uint32:
		return Uint32
	case reflect.Uint16:
		return Uint16
	case reflect.Uint8:
		return Uint8
	case reflect.Bool:
		return Bool
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Complex64:
		return Complex64
	case reflect.Complex128:
		return Complex128
	case reflect.String:
		return String
	default:
		return InvalidDType
	}
}

// FromAny introspects the underlying type of any and returns the corresponding DType.
// Non-scalar types, or not supported types return InvalidDType.
func FromAny(value any) DType {
	if value == nil {
		return InvalidDType
	}
	return FromGoType(reflect.TypeOf(value))
}

// Size returns the number of bytes for the given DType, or 0 if the dtype has no fixed size of at
// least one byte (String and the 4 bits types).
func (dtype DType) Size() int {
	switch dtype {
	case Bool, Int8, Uint8, F8E4M3FN, F8E4M3FNUZ, F8E5M2, F8E5M2FNUZ:
		return 1
	case Int16, Uint16, Float16, BFloat16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// IsFloat returns whether dtype is a supported float -- float types not yet supported will return false.
// It returns false for complex numbers.
func (dtype DType) IsFloat() bool {
	switch dtype {
	case Float32, Float64, Float16, BFloat16, F8E4M3FN, F8E4M3FNUZ, F8E5M2, F8E5M2FNUZ, F4E2M1:
		return true
	}
	return false
}

// IsComplex returns whether dtype is a supported complex number type.
func (dtype DType) IsComplex() bool {
	return dtype == Complex64 || dtype == Complex128
}

// IsInt returns whether dtype is a supported integer type -- float types not yet supported will return false.
func (dtype DType) IsInt() bool {
	switch dtype {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Int4, Uint4:
		return true
	}
	return false
}

// IsUnsigned returns whether dtype is one of the unsigned (only int for now) types.
func (dtype DType) IsUnsigned() bool {
	switch dtype {
	case Uint8, Uint16, Uint32, Uint64, Uint4:
		return true
	}
	return false
}
