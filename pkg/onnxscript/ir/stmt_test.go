// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"testing"

	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/onnxscript/values"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStmtInvalidCallee(t *testing.T) {
	for _, callee := range []*values.Op{nil, {Name: "Relu"}, values.Opset15.Op("")} {
		_, err := NewStmt([]string{"y"}, callee, []string{"x"}, nil, nil)
		require.ErrorIs(t, err, ErrInvalidCallee, "callee=%#v", callee)
	}
}

func TestStmtToNodeProto(t *testing.T) {
	this := values.CustomOpset("this", 1)
	attrs := []AttributeValue{
		must.M1(NewConcreteAttr("alpha", 1.0)),
		NewRefAttr("gamma", "g", protos.AttributeProto_FLOAT),
	}
	s := must.M1(NewStmt([]string{"y", ""}, this.Op("F"), []string{"a", "", "c"}, attrs, nil))
	node := s.ToNodeProto("n3")
	assert.Equal(t, "n3", node.Name)
	assert.Equal(t, "F", node.OpType)
	assert.Equal(t, "this", node.Domain)
	assert.Equal(t, []string{"a", "", "c"}, node.Input)
	assert.Equal(t, []string{"y", ""}, node.Output)
	require.Len(t, node.Attribute, 2)
	assert.Equal(t, "alpha", node.Attribute[0].Name)
	assert.Equal(t, "g", node.Attribute[1].RefAttrName)

	assert.Equal(t, []string{"y", ""}, s.OutputNames())
	assert.Equal(t, "y,  = this.F <alpha = 1.0, gamma = @g>(a, , c)", s.String())
	assert.NotNil(t, s.Functions)
	assert.Equal(t, 0, s.Functions.Len())

	relu := must.M1(NewStmt([]string{"y"}, values.Opset15.Op("Relu"), []string{"x"}, nil, nil))
	assert.Equal(t, "y = Relu (x)", relu.String())
	assert.Equal(t, "", relu.ToNodeProto("n0").Domain)
}

func TestStmtDoesNotAlias(t *testing.T) {
	args := []string{"a", "b"}
	s := must.M1(NewStmt([]string{"y"}, values.Opset15.Op("Add"), args, nil, nil))
	args[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, s.Args)

	names := s.OutputNames()
	names[0] = "changed"
	assert.Equal(t, []string{"y"}, s.OutputNames())

	// Nodes hold copies of the attributes.
	elu := must.M1(NewStmt([]string{"y"}, values.Opset15.Op("Elu"), []string{"x"},
		[]AttributeValue{must.M1(NewConcreteAttr("alpha", 1.0))}, nil))
	n1 := elu.ToNodeProto("n0")
	n1.Attribute[0].F = 5
	n1.Input[0] = "changed"
	n2 := elu.ToNodeProto("n0")
	assert.Equal(t, float32(1), n2.Attribute[0].F)
	assert.Equal(t, []string{"x"}, n2.Input)
	assert.Equal(t, "y = Elu <alpha = 1.0>(x)", elu.String())
}
