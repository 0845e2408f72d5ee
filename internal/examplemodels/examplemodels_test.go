// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package examplemodels

import (
	"fmt"
	"testing"

	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/onnxscript/ir"
	"github.com/gomlx/onnxscript/pkg/support/xslices"
	"github.com/janpfeifer/must"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// opsetStrings renders opset imports as "domain:version".
func opsetStrings(opsets []*protos.OperatorSetIdProto) []string {
	return xslices.Map(opsets, func(o *protos.OperatorSetIdProto) string {
		return fmt.Sprintf("%s:%d", o.Domain, o.Version)
	})
}

func TestFunctionStrings(t *testing.T) {
	models := must.M1(Build(ir.NewBuilder()))
	g := newGoldie(t)
	for _, name := range []string{"MySelu", "MyEluD", "IfMyEluD"} {
		g.Assert(t, name, []byte(models.Lookup(name).String()))
	}
}

func TestIfMyEluDGraph(t *testing.T) {
	models := must.M1(Build(ir.NewBuilder()))
	model := must.M1(models.IfMyEluD.ToModelProto())
	newGoldie(t).Assert(t, "IfMyEluD_graph", []byte(helper.PrintableGraph(model.Graph, "")+"\n"))
}

func TestCalledFunctions(t *testing.T) {
	models := must.M1(Build(ir.NewBuilder()))
	assert.Equal(t, 0, models.MySelu.CalledFunctions().Len())
	assert.Equal(t, []string{"MySelu"}, models.MyElu.CalledFunctions().Keys())
	assert.Equal(t, []string{"MySelu", "MyEluC"}, models.MyEluD.CalledFunctions().Keys())
	assert.Equal(t, []string{"MySelu", "MyEluB", "MyEluC"}, models.IfMyEluD.CalledFunctions().Keys())
	assert.Equal(t, []string{"thenGraph", "elseGraph"}, models.IfMyEluD.Function().NestedFunctions().Keys())
}

func TestModels(t *testing.T) {
	models := must.M1(Build(ir.NewBuilder()))

	model := must.M1(models.MyEluD.ToModelProto())
	assert.Equal(t, []string{"this:1", ":15"}, opsetStrings(model.OpsetImport))
	assert.Equal(t, int64(8), model.IrVersion)
	require.Len(t, model.Functions, 2)
	assert.Equal(t, "MySelu", model.Functions[0].Name)
	assert.Equal(t, "MyEluC", model.Functions[1].Name)

	model = must.M1(models.IfMyEluD.ToModelProto())
	assert.Equal(t, []string{":15", "this:1"}, opsetStrings(model.OpsetImport))
	require.Len(t, model.Functions, 3)
	ifNode := model.Graph.Node[2]
	assert.Equal(t, "If", ifNode.OpType)
	assert.Equal(t, "n2", ifNode.Name)
	require.Len(t, ifNode.Attribute, 2)
	assert.Equal(t, "thenGraph", ifNode.Attribute[0].G.Name)

	selu := must.M1(models.MySelu.ToFunctionProto())
	assert.Equal(t, Domain, selu.Domain)
	assert.Equal(t, []string{"X", "alpha", "gamma"}, selu.Input)
	assert.Equal(t, []string{":15"}, opsetStrings(selu.OpsetImport))
	assert.Len(t, selu.Node, 8)

	elu := must.M1(models.MyElu.ToFunctionProto())
	assert.Equal(t, []string{":15", "this:1"}, opsetStrings(elu.OpsetImport))

	decoded := &protos.ModelProto{}
	require.NoError(t, proto.Unmarshal(must.M1(proto.Marshal(model)), decoded))
	assert.True(t, proto.Equal(model, decoded))
	assert.Equal(t, helper.PrintableGraph(model.Graph, ""), helper.PrintableGraph(decoded.Graph, ""))
	assert.Len(t, decoded.Functions, 3)
}

func TestBuildTwice(t *testing.T) {
	b := ir.NewBuilder()
	_ = must.M1(Build(b))
	_, err := Build(b)
	require.ErrorIs(t, err, ir.ErrAlreadyExists)
	assert.NotNil(t, b.Lookup(Domain, "MySelu"))
}
