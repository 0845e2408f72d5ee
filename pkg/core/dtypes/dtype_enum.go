// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

// DType is an enum of the tensor element types, with the same values as ONNX's TensorProto.DataType,
// so it can be written directly into TypeProto.Tensor.elem_type and TensorProto.data_type.
type DType int32

const (
	// InvalidDType is ONNX's UNDEFINED.
	InvalidDType DType = 0

	// Float32 is ONNX's FLOAT.
	Float32 DType = 1

	Uint8  DType = 2
	Int8   DType = 3
	Uint16 DType = 4
	Int16  DType = 5
	Int32  DType = 6
	Int64  DType = 7

	// String is a variable length UTF-8 string. It has no fixed Size.
	String DType = 8

	Bool DType = 9

	// Float16 is the IEEE 754 half-precision float.
	Float16 DType = 10

	// Float64 is ONNX's DOUBLE.
	Float64 DType = 11

	Uint32 DType = 12
	Uint64 DType = 13

	// Complex64 is paired float32 (real, imag).
	Complex64 DType = 14

	// Complex128 is paired float64 (real, imag).
	Complex128 DType = 15

	// BFloat16 is the truncated 16 bits float: 1 bit sign, 8 bits exponent, 7 bits mantissa.
	BFloat16 DType = 16

	// 8 bits floating-point formats.
	F8E4M3FN   DType = 17
	F8E4M3FNUZ DType = 18
	F8E5M2     DType = 19
	F8E5M2FNUZ DType = 20

	// 4 bits formats.
	Uint4  DType = 21
	Int4   DType = 22
	F4E2M1 DType = 23
)

const maxEnum = F4E2M1

// Short aliases, in the style of XLA names.
const (
	F16  = Float16
	F32  = Float32
	F64  = Float64
	BF16 = BFloat16
	S8   = Int8
	S16  = Int16
	S32  = Int32
	S64  = Int64
	U8   = Uint8
	U16  = Uint16
	U32  = Uint32
	U64  = Uint64
	C64  = Complex64
	C128 = Complex128
)

// onnxNames are the ONNX enum names (TensorProto.DataType), indexed by DType.
var onnxNames = [...]string{
	InvalidDType: "UNDEFINED",
	Float32:      "FLOAT",
	Uint8:        "UINT8",
	Int8:         "INT8",
	Uint16:       "UINT16",
	Int16:        "INT16",
	Int32:        "INT32",
	Int64:        "INT64",
	String:       "STRING",
	Bool:         "BOOL",
	Float16:      "FLOAT16",
	Float64:      "DOUBLE",
	Uint32:       "UINT32",
	Uint64:       "UINT64",
	Complex64:    "COMPLEX64",
	Complex128:   "COMPLEX128",
	BFloat16:     "BFLOAT16",
	F8E4M3FN:     "FLOAT8E4M3FN",
	F8E4M3FNUZ:   "FLOAT8E4M3FNUZ",
	F8E5M2:       "FLOAT8E5M2",
	F8E5M2FNUZ:   "FLOAT8E5M2FNUZ",
	Uint4:        "UINT4",
	Int4:         "INT4",
	F4E2M1:       "FLOAT4E2M1",
}

// goNames are the Go-style names, indexed by DType.
var goNames = [...]string{
	InvalidDType: "InvalidDType",
	Float32:      "Float32",
	Uint8:        "Uint8",
	Int8:         "Int8",
	Uint16:       "Uint16",
	Int16:        "Int16",
	Int32:        "Int32",
	Int64:        "Int64",
	String:       "String",
	Bool:         "Bool",
	Float16:      "Float16",
	Float64:      "Float64",
	Uint32:       "Uint32",
	Uint64:       "Uint64",
	Complex64:    "Complex64",
	Complex128:   "Complex128",
	BFloat16:     "BFloat16",
	F8E4M3FN:     "F8E4M3FN",
	F8E4M3FNUZ:   "F8E4M3FNUZ",
	F8E5M2:       "F8E5M2",
	F8E5M2FNUZ:   "F8E5M2FNUZ",
	Uint4:        "Uint4",
	Int4:         "Int4",
	F4E2M1:       "F4E2M1",
}

// MapOfNames maps the ONNX names, the Go names, the short aliases and their lower-case versions to the DType.
var MapOfNames = map[string]DType{
	"F16":  F16,
	"F32":  F32,
	"F64":  F64,
	"BF16": BF16,
	"S8":   S8,
	"S16":  S16,
	"S32":  S32,
	"S64":  S64,
	"U8":   U8,
	"U16":  U16,
	"U32":  U32,
	"U64":  U64,
	"C64":  C64,
	"C128": C128,
}
