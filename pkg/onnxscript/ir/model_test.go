// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"testing"

	"github.com/gomlx/onnxscript/pkg/core/dtypes"
	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/onnxscript/values"
	"github.com/gomlx/onnxscript/pkg/support/ordered"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

// buildAddFunction builds z = Add(x, y) with the given inputs, only x typed (as INT64).
func buildAddFunction(t *testing.T, inputs ...string) *Function {
	b := NewBuilder()
	fn := must.M1(b.NewFunction("add", "", false))
	for ii, name := range inputs {
		var typ TypeLike
		if ii == 0 {
			typ = NewTensorType(dtypes.Int64)
		}
		require.NoError(t, b.AddInput(fn, name, typ, nil))
	}
	require.NoError(t, b.AddStmt(fn, []string{"z"}, values.Opset15.Op("Sum"), inputs, nil, nil))
	require.NoError(t, b.AddOutput(fn, "z", nil, nil))
	return fn
}

func elemType(vi *protos.ValueInfoProto) dtypes.DType {
	if vi.Type.GetTensorType() == nil {
		return dtypes.InvalidDType
	}
	return dtypes.DType(vi.Type.GetTensorType().GetElemType())
}

func TestModelDefaults(t *testing.T) {
	fn := buildAddFunction(t, "x", "y")
	model := must.M1(fn.ToModelProto())
	assert.Equal(t, int64(8), model.IrVersion)
	assert.Equal(t, []string{":15"}, opsetStrings(model.OpsetImport))
	assert.Empty(t, model.Functions)
	require.Len(t, model.Graph.Input, 2)
	assert.Equal(t, dtypes.Int64, elemType(model.Graph.Input[0]))
	// No default type in models.
	assert.Nil(t, model.Graph.Input[1].Type)
	assert.Nil(t, model.Graph.Output[0].Type)
	assert.Equal(t, "add", model.Graph.Name)
}

func TestModelIOTypesPrecedence(t *testing.T) {
	fn := buildAddFunction(t, "x", "y")
	model := must.M1(fn.Model().WithIOTypes(NewTensorType(dtypes.Float32)).Done())
	assert.Equal(t, dtypes.Int64, elemType(model.Graph.Input[0]))
	assert.Equal(t, dtypes.Float32, elemType(model.Graph.Input[1]))
	assert.Equal(t, dtypes.Float32, elemType(model.Graph.Output[0]))

	// The function itself is not changed.
	assert.Nil(t, fn.Inputs()[1].Type)
}

func TestModelInputTypesTruncation(t *testing.T) {
	fn := buildAddFunction(t, "a", "b", "c")
	model := must.M1(fn.Model().
		WithInputTypes(NewTensorType(dtypes.Float32), NewTensorType(dtypes.Float64)).
		Done())
	require.Len(t, model.Graph.Input, 3)
	// Positional types replace existing types.
	assert.Equal(t, dtypes.Float32, elemType(model.Graph.Input[0]))
	assert.Equal(t, dtypes.Float64, elemType(model.Graph.Input[1]))
	// The third input is left untouched.
	assert.Nil(t, model.Graph.Input[2].Type)

	// Extra types are ignored.
	model = must.M1(fn.Model().
		WithOutputTypes(NewTensorType(dtypes.Int32), NewTensorType(dtypes.Int8)).
		WithIOTypes(NewTensorType(dtypes.Bool)).
		Done())
	require.Len(t, model.Graph.Output, 1)
	assert.Equal(t, dtypes.Int32, elemType(model.Graph.Output[0]))
	assert.Equal(t, dtypes.Bool, elemType(model.Graph.Input[2]))
}

func TestModelOpsets(t *testing.T) {
	b := NewBuilder()
	fn := must.M1(b.NewFunction("main", "", false))
	this := values.CustomOpset("this", 2)
	sub := ordered.Make[string, *protos.FunctionProto]()
	sub.Set("F", &protos.FunctionProto{Name: "F", Domain: "this"})
	sub.Set("G", &protos.FunctionProto{Name: "G", Domain: "lib"})
	require.NoError(t, b.AddStmt(fn, []string{"y"}, this.Op("F"), []string{"x"}, nil, sub))
	require.NoError(t, b.AddInput(fn, "x", nil, nil))
	require.NoError(t, b.AddOutput(fn, "y", nil, nil))

	model := must.M1(fn.ToModelProto())
	// Statement domains first, then the default domain, then the function domains.
	assert.Equal(t, []string{"this:2", fmt.Sprintf(":%d", helper.MaxOpsetVersion), "lib:1"},
		opsetStrings(model.OpsetImport))
	assert.Equal(t, helper.IRVersion, model.IrVersion)
	require.Len(t, model.Functions, 2)
	assert.Equal(t, "F", model.Functions[0].Name)

	// Only the listed functions are included.
	h := &protos.FunctionProto{Name: "H", Domain: "other"}
	model = must.M1(fn.Model().WithFunctionProtos(h).WithIRVersion(9).Done())
	require.Len(t, model.Functions, 1)
	assert.NotSame(t, h, model.Functions[0])
	assert.True(t, proto.Equal(h, model.Functions[0]))
	assert.Equal(t, "other", model.OpsetImport[2].Domain)
	assert.Equal(t, int64(9), model.IrVersion)

	model = must.M1(fn.Model().WithFunctions().Done())
	assert.Empty(t, model.Functions)
	assert.Len(t, model.OpsetImport, 2)
}

func TestModelTargetOpset(t *testing.T) {
	b := NewBuilder().WithTarget(TargetForOpset(13))
	fn := must.M1(b.NewFunction("main", "", false))
	require.NoError(t, b.AddStmt(fn, []string{"y"}, values.CustomOpset("this", 1).Op("F"), []string{"x"}, nil, nil))
	model := must.M1(fn.ToModelProto())
	assert.Equal(t, []string{"this:1", ":13"}, opsetStrings(model.OpsetImport))
	assert.Equal(t, int64(7), model.IrVersion)
}

func TestModelWithCallables(t *testing.T) {
	fn := buildAddFunction(t, "x", "y")
	sub := buildAttrFunction(t, DefaultTarget())
	model := must.M1(fn.Model().
		WithFunctions(sub).
		WithFunctionProtos(&protos.FunctionProto{Name: "P", Domain: "p"}).
		WithProducer("onnxir", "0.1.0").
		WithDocString("adds").
		WithModelVersion(3).
		WithDomain("org.gomlx").
		WithMetadata("author", "me").
		WithMetadata("license", "apache").
		WithMetadata("author", "us").
		Done())
	require.Len(t, model.Functions, 2)
	assert.Equal(t, "Scale", model.Functions[0].Name)
	assert.Equal(t, "P", model.Functions[1].Name)
	assert.Equal(t, []string{"", "this", "p"}, []string{
		model.OpsetImport[0].Domain, model.OpsetImport[1].Domain, model.OpsetImport[2].Domain})
	assert.Equal(t, "onnxir", model.ProducerName)
	assert.Equal(t, "0.1.0", model.ProducerVersion)
	assert.Equal(t, "adds", model.DocString)
	assert.Equal(t, int64(3), model.ModelVersion)
	assert.Equal(t, "org.gomlx", model.Domain)
	require.Len(t, model.MetadataProps, 2)
	assert.True(t, proto.Equal(&protos.StringStringEntryProto{Key: "author", Value: "us"}, model.MetadataProps[0]))
	assert.True(t, proto.Equal(&protos.StringStringEntryProto{Key: "license", Value: "apache"}, model.MetadataProps[1]))

	_, err := fn.Model().WithFunctions(&fakeUnit{name: "Bad", err: errors.New("broken")}).Done()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestModelRoundTrip(t *testing.T) {
	fn := buildAttrFunction(t, DefaultTarget())
	model := must.M1(fn.Model().WithFunctions(fn).Done())
	decoded := &protos.ModelProto{}
	require.NoError(t, proto.Unmarshal(must.M1(proto.Marshal(model)), decoded))
	assert.True(t, proto.Equal(model, decoded))
	assert.Equal(t, model.IrVersion, decoded.IrVersion)
	assert.Equal(t, opsetStrings(model.OpsetImport), opsetStrings(decoded.OpsetImport))
	require.Len(t, decoded.Functions, 1)
	assert.Equal(t, []string{"beta"}, decoded.Functions[0].Attribute)
	assert.Equal(t, "alpha", decoded.Functions[0].AttributeProto[0].Name)
	require.Len(t, decoded.Graph.Node, 2)
	assert.Equal(t, "beta", decoded.Graph.Node[1].Attribute[0].RefAttrName)
}

func TestModelsDoNotShareFunctions(t *testing.T) {
	fn := buildEluFunction(t)
	m1 := must.M1(fn.ToModelProto())
	m2 := must.M1(fn.ToModelProto())
	require.Len(t, m1.Functions, 1)
	require.Len(t, m2.Functions, 1)
	assert.NotSame(t, m1.Functions[0], m2.Functions[0])
	m1.Functions[0].Node[0].Attribute[0].F = 5
	m1.Graph.Node[0].Attribute[0].F = 5
	assert.Equal(t, float32(2), m2.Functions[0].Node[0].Attribute[0].F)
	assert.Equal(t, float32(1), m2.Graph.Node[0].Attribute[0].F)
	stored, _ := fn.CalledFunctions().Get("MySelu")
	assert.Equal(t, float32(2), stored.Node[0].Attribute[0].F)

	// Functions given explicitly are copied as well.
	h := &protos.FunctionProto{Name: "H", Domain: "other", DocString: "h"}
	m3 := must.M1(fn.Model().WithFunctionProtos(h).Done())
	m3.Functions[0].DocString = "changed"
	assert.Equal(t, "h", h.DocString)
}

func TestModelInvalidFunctions(t *testing.T) {
	fn := buildAddFunction(t, "x", "y")
	_, err := fn.Model().WithFunctionProtos(&protos.FunctionProto{Name: "P"}, nil).Done()
	require.ErrorIs(t, err, ErrSerialization)
	assert.Contains(t, err.Error(), "#1")

	_, err = fn.Model().WithFunctions(nil).Done()
	require.ErrorIs(t, err, ErrSerialization)
	assert.Contains(t, err.Error(), "invalid type")
}
