// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import (
	"reflect"
	"testing"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestONNXValues(t *testing.T) {
	// Values must match onnx.proto TensorProto.DataType.
	assert.Equal(t, DType(1), Float32)
	assert.Equal(t, DType(7), Int64)
	assert.Equal(t, DType(9), Bool)
	assert.Equal(t, DType(10), Float16)
	assert.Equal(t, DType(11), Float64)
	assert.Equal(t, DType(16), BFloat16)
	assert.Equal(t, "FLOAT", Float32.ONNXName())
	assert.Equal(t, "DOUBLE", Float64.ONNXName())
	assert.Equal(t, "tensor(float)", Float32.TensorTypeString())
	assert.Equal(t, "tensor(int64)", Int64.TensorTypeString())
}

func TestFromGenericsType(t *testing.T) {
	assert.Equal(t, Float32, FromGenericsType[float32]())
	assert.Equal(t, Float64, FromGenericsType[float64]())
	assert.Equal(t, Float16, FromGenericsType[float16.Float16]())
	assert.Equal(t, BFloat16, FromGenericsType[bfloat16.BFloat16]())
	assert.Equal(t, Int64, FromGenericsType[int64]())
	assert.Equal(t, Uint8, FromGenericsType[uint8]())
	assert.Equal(t, Bool, FromGenericsType[bool]())
	assert.Equal(t, Complex128, FromGenericsType[complex128]())
}

func TestFromGoType(t *testing.T) {
	assert.Equal(t, String, FromGoType(reflect.TypeOf("")))
	assert.Equal(t, InvalidDType, FromGoType(reflect.TypeOf([]float32{})))
	assert.Equal(t, InvalidDType, FromAny(nil))
	assert.Equal(t, Int32, FromAny(int32(3)))
}

func TestFromName(t *testing.T) {
	for name, want := range map[string]DType{
		"FLOAT":    Float32,
		"float":    Float32,
		"Float32":  Float32,
		"f32":      Float32,
		"DOUBLE":   Float64,
		"bfloat16": BFloat16,
		"BF16":     BFloat16,
		"int64":    Int64,
	} {
		got, err := FromName(name)
		require.NoError(t, err, "name=%q", name)
		assert.Equal(t, want, got, "name=%q", name)
	}
	_, err := FromName("float128")
	require.Error(t, err)
}

func TestSize(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 2, BFloat16.Size())
	assert.Equal(t, 16, Complex128.Size())
	assert.Equal(t, 0, String.Size())
	assert.True(t, Float16.IsFloat())
	assert.False(t, Complex64.IsFloat())
	assert.True(t, Uint4.IsUnsigned())
	assert.False(t, InvalidDType.IsValid())
	assert.Equal(t, "DType(99)", DType(99).String())
}
