// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package onnxscript

import (
	"testing"

	"github.com/gomlx/onnxscript/pkg/core/dtypes"
	"github.com/gomlx/onnxscript/pkg/onnxscript/ir"
	"github.com/gomlx/onnxscript/pkg/onnxscript/values"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var this = values.CustomOpset("this", 1)

func buildRelu(t *testing.T, b *ir.Builder) *OnnxFunction {
	of, err := Script(b, this, "MyRelu", func(fn *ir.Function) error {
		if err := b.AddInput(fn, "X", ir.NewTensorType(dtypes.Float32), nil); err != nil {
			return err
		}
		if err := b.AddStmt(fn, []string{"Y"}, values.Opset18.Op("Relu"), []string{"X"}, nil, nil); err != nil {
			return err
		}
		return b.AddOutput(fn, "Y", ir.NewTensorType(dtypes.Float32), nil)
	})
	require.NoError(t, err)
	return of
}

func TestOnnxFunction(t *testing.T) {
	b := ir.NewBuilder()
	relu := buildRelu(t, b)
	assert.Equal(t, "MyRelu", relu.Name())
	assert.Same(t, this, relu.Opset())
	assert.Equal(t, "this.MyRelu", relu.Op().String())
	assert.Same(t, relu.Function(), b.Lookup("this", "MyRelu"))

	f := must.M1(relu.ToFunctionProto())
	assert.Equal(t, "this", f.Domain)
	assert.Equal(t, "MyRelu", f.Name)

	model := must.M1(relu.ToModelProto())
	assert.Equal(t, int64(8), model.IrVersion)
	model = must.M1(relu.Model().WithProducer("test", "1").Done())
	assert.Equal(t, "test", model.ProducerName)
	assert.Contains(t, relu.String(), "Y = Relu (X)")
}

func TestCall(t *testing.T) {
	b := ir.NewBuilder()
	relu := buildRelu(t, b)
	outer, err := Script(b, this, "Twice", func(fn *ir.Function) error {
		if err := relu.Call(b, fn, []string{"T"}, []string{"X"}); err != nil {
			return err
		}
		return relu.Call(b, fn, []string{"Y"}, []string{"T"})
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"MyRelu"}, outer.CalledFunctions().Keys())
	assert.Equal(t, []string{"T", "Y"}, outer.Function().AssignedNames())

	model := must.M1(outer.ToModelProto())
	require.Len(t, model.Functions, 1)
	assert.Equal(t, "MyRelu", model.Functions[0].Name)
	assert.Equal(t, "this", model.Graph.Node[0].Domain)
}

func TestScriptErrors(t *testing.T) {
	b := ir.NewBuilder()
	buildRelu(t, b)
	_, err := Script(b, this, "MyRelu", func(fn *ir.Function) error { return nil })
	require.ErrorIs(t, err, ir.ErrAlreadyExists)

	_, err = Script(b, this, "Broken", func(fn *ir.Function) error { return errors.New("no body") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no body")

	_, err = New(this, ir.NewFunction("f", "other"))
	require.Error(t, err)
	_, err = New(nil, nil)
	require.Error(t, err)
}
