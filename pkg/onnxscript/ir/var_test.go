// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"testing"

	"github.com/gomlx/onnxscript/pkg/core/dtypes"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestTypes(t *testing.T) {
	assert.True(t, proto.Equal(&protos.TypeProto{}, UntypedType{}.ToTypeProto()))
	assert.Equal(t, "?", UntypedType{}.String())

	tt := NewTensorType(dtypes.Float32)
	tp := tt.ToTypeProto()
	require.NotNil(t, tp.GetTensorType())
	assert.Equal(t, int32(dtypes.Float32), tp.GetTensorType().GetElemType())
	assert.Nil(t, tp.GetTensorType().GetShape())
	assert.Equal(t, "FLOAT", tt.String())

	st := NewShapedTensorType(dtypes.Float32, "N", 3, nil)
	assert.Equal(t, "FLOAT[N,3,?]", st.String())
	tp = st.ToTypeProto()
	require.NotNil(t, tp.GetTensorType().GetShape())
	dims := tp.GetTensorType().GetShape().GetDim()
	require.Len(t, dims, 3)
	assert.Equal(t, "N", dims[0].GetDimParam())
	assert.Equal(t, int64(3), dims[1].GetDimValue())
	assert.Nil(t, dims[2].GetValue())

	scalar := NewShapedTensorType(dtypes.Int64)
	assert.Equal(t, "INT64[]", scalar.String())
	tp = scalar.ToTypeProto()
	require.NotNil(t, tp.GetTensorType().GetShape())
	assert.Empty(t, tp.GetTensorType().GetShape().GetDim())

	// Each call returns a new descriptor.
	assert.NotSame(t, tt.ToTypeProto(), tt.ToTypeProto())
}

func TestVar(t *testing.T) {
	_, err := NewVar("", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidName))

	info := &SourceInfo{File: "model.py", Line: 7, Function: "MySelu"}
	_, err = NewVar("", nil, info)
	require.ErrorIs(t, err, ErrInvalidName)
	assert.Contains(t, err.Error(), "model.py:7")

	x := must.M1(NewVar("x", nil, nil))
	assert.Equal(t, "x", x.String())
	assert.Equal(t, "x", x.TypedString())

	vi := must.M1(x.ToValueInfo(true))
	assert.Equal(t, "x", vi.Name)
	require.NotNil(t, vi.Type)
	assert.Nil(t, vi.Type.GetValue())

	vi = must.M1(x.ToValueInfo(false))
	assert.Equal(t, "x", vi.Name)
	assert.Nil(t, vi.Type)

	y := must.M1(NewVar("y", NewTensorType(dtypes.Int64), info))
	assert.Equal(t, "y : INT64", y.TypedString())
	for _, useDefaultType := range []bool{true, false} {
		vi = must.M1(y.ToValueInfo(useDefaultType))
		require.NotNil(t, vi.Type)
		assert.Equal(t, int32(dtypes.Int64), vi.Type.GetTensorType().GetElemType())
	}

	// Variables created without NewVar may have no name.
	_, err = (&Var{Info: info}).ToValueInfo(true)
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestSourceInfo(t *testing.T) {
	var info *SourceInfo
	assert.Equal(t, "<unknown location>", info.String())
	assert.Equal(t, "oops", info.Msg("oops"))
	info = &SourceInfo{File: "f.py", Line: 3, Function: "g"}
	assert.Equal(t, "f.py:3 (function g): oops", info.Msg("oops"))
}

func TestAttributeValues(t *testing.T) {
	alpha := must.M1(NewConcreteAttr("alpha", 1.0))
	assert.Equal(t, "alpha", alpha.Name())
	assert.Equal(t, protos.AttributeProto_FLOAT, alpha.Type())
	assert.Equal(t, "alpha = 1.0", alpha.String())
	assert.Equal(t, float32(1), alpha.ToAttributeProto().F)

	ref := NewRefAttr("alpha", "beta", protos.AttributeProto_FLOAT)
	assert.Equal(t, "alpha", ref.Name())
	assert.Equal(t, "alpha = @beta", ref.String())
	refProto := ref.ToAttributeProto()
	assert.Equal(t, "beta", refProto.RefAttrName)
	assert.Equal(t, protos.AttributeProto_FLOAT, refProto.Type)
	assert.Zero(t, refProto.F)

	_, err := NewConcreteAttr("alpha", struct{}{})
	require.ErrorIs(t, err, ErrInvalidAttribute)

	wrapped := ConcreteAttrFromProto(&protos.AttributeProto{Name: "axes", Type: protos.AttributeProto_INTS, Ints: []int64{0, 1}})
	assert.Equal(t, "axes = [0, 1]", wrapped.String())
}

func TestConcreteAttrOwnsItsValue(t *testing.T) {
	alpha := must.M1(NewConcreteAttr("alpha", 1.0))
	a1 := alpha.ToAttributeProto()
	a1.F = 5
	a2 := alpha.ToAttributeProto()
	assert.NotSame(t, a1, a2)
	assert.Equal(t, float32(1), a2.F)
	assert.Equal(t, "alpha = 1.0", alpha.String())

	// Changing the values given to the constructors doesn't change the attribute.
	ints := []int64{0, 1}
	axes := must.M1(NewConcreteAttr("axes", ints))
	ints[0] = 7
	assert.Equal(t, []int64{0, 1}, axes.ToAttributeProto().Ints)

	source := &protos.AttributeProto{Name: "beta", Type: protos.AttributeProto_FLOAT, F: 2}
	beta := ConcreteAttrFromProto(source)
	source.F = 3
	assert.Equal(t, float32(2), beta.ToAttributeProto().F)
}
