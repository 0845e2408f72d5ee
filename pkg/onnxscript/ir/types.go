// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/onnxscript/pkg/core/dtypes"
	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/support/xslices"
)

// TypeLike is anything that can produce an ONNX type descriptor.
//
// It's a closed set: UntypedType, TensorType and ShapedTensorType.
type TypeLike interface {
	// ToTypeProto returns a newly allocated type descriptor.
	ToTypeProto() *protos.TypeProto

	fmt.Stringer

	typeLike()
}

// UntypedType is a placeholder type: it produces the default (empty) type descriptor.
type UntypedType struct{}

var _ TypeLike = UntypedType{}

// ToTypeProto implements TypeLike.
func (UntypedType) ToTypeProto() *protos.TypeProto { return &protos.TypeProto{} }

// String implements TypeLike.
func (UntypedType) String() string { return "?" }

func (UntypedType) typeLike() {}

// TensorType is a tensor of the given element type and unknown shape.
type TensorType struct {
	ElemType dtypes.DType
}

var _ TypeLike = TensorType{}

// NewTensorType returns the type of a tensor with elements of dtype.
func NewTensorType(dtype dtypes.DType) TensorType {
	return TensorType{ElemType: dtype}
}

// ToTypeProto implements TypeLike.
func (t TensorType) ToTypeProto() *protos.TypeProto {
	return helper.MakeTensorTypeProto(t.ElemType, nil)
}

// String implements TypeLike. E.g.: "FLOAT".
func (t TensorType) String() string { return t.ElemType.ONNXName() }

func (TensorType) typeLike() {}

// ShapedTensorType is a tensor with known rank.
//
// Each dimension is either static (an int), symbolic (a string) or unknown (nil), see
// helper.MakeTensorTypeProto.
type ShapedTensorType struct {
	ElemType dtypes.DType
	Shape    []any
}

var _ TypeLike = ShapedTensorType{}

// NewShapedTensorType returns the type of a tensor with elements of dtype and the given dimensions.
func NewShapedTensorType(dtype dtypes.DType, dims ...any) ShapedTensorType {
	if dims == nil {
		dims = []any{}
	}
	return ShapedTensorType{ElemType: dtype, Shape: dims}
}

// ToTypeProto implements TypeLike.
func (t ShapedTensorType) ToTypeProto() *protos.TypeProto {
	shape := t.Shape
	if shape == nil {
		shape = []any{}
	}
	return helper.MakeTensorTypeProto(t.ElemType, shape)
}

// String implements TypeLike. E.g.: "FLOAT[N,3]", "FLOAT[?]" or "INT64[]" for a scalar.
func (t ShapedTensorType) String() string {
	dims := xslices.Map(t.Shape, func(dim any) string {
		switch v := dim.(type) {
		case nil:
			return "?"
		case string:
			return v
		case int:
			return strconv.Itoa(v)
		default:
			return fmt.Sprint(v)
		}
	})
	return fmt.Sprintf("%s[%s]", t.ElemType.ONNXName(), strings.Join(dims, ","))
}

func (ShapedTensorType) typeLike() {}
