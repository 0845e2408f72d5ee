// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"path/filepath"
	"testing"

	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMinimalUniquePaths(t *testing.T) {
	assert.Equal(t, []string{"model.onnx"}, MinimalUniquePaths("/tmp/a/model.onnx"))
	assert.Equal(t, []string{"a", "b"}, MinimalUniquePaths("/tmp/a/model.onnx", "/tmp/b/model.onnx"))
	assert.Equal(t, []string{"x.onnx", "y.onnx"}, MinimalUniquePaths("/tmp/x.onnx", "/tmp/y.onnx"))
	assert.Equal(t, []string{"a...x.onnx", "b...y.onnx"}, MinimalUniquePaths("/a/x.onnx", "/b/y.onnx"))
}

func TestWriteExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.onnx")
	require.NoError(t, writeExample(path, "MyEluD", false))
	require.Error(t, writeExample(path, "MyEluD", false))
	require.NoError(t, writeExample(path, "MyEluD", true))
	model := must.M1(protos.ReadModelFile(path))
	assert.Equal(t, exampleProducer, model.ProducerName)
	assert.Equal(t, "MyEluD", model.Graph.Name)

	s := Summarize("example", 123, model)
	assert.Equal(t, int64(8), s.IRVersion)
	assert.Equal(t, 2, s.NumNodes)
	assert.Equal(t, []string{"this", ""}, s.opsetDomains)
	assert.Equal(t, int64(15), s.Opsets[""])
	require.Len(t, s.Functions, 2)
	assert.Equal(t, "MySelu", s.Functions[0].Name)
	assert.Equal(t, []string{"X", "alpha", "gamma"}, s.Functions[0].Inputs)

	data := must.M1(SummariesYAML([]*ModelSummary{s}))
	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "MyEluD", decoded[0]["graph"])
	assert.Equal(t, 8, decoded[0]["ir_version"])

	require.Error(t, writeExample(path, "NoSuchExample", true))
}

func TestAttributeValueString(t *testing.T) {
	a := &protos.AttributeProto{Name: "alpha", Type: protos.AttributeProto_FLOAT, F: 0.5}
	assert.Equal(t, "0.5", attributeValueString(a))
	assert.Equal(t, "a, <omitted>, c", nodeInputs([]string{"a", "", "c"}))
}

func TestAttributeValueStringWholeFloat(t *testing.T) {
	a := &protos.AttributeProto{Name: "alpha", Type: protos.AttributeProto_FLOAT, F: 1}
	assert.Equal(t, "1.0", attributeValueString(a))
	a = &protos.AttributeProto{Name: "scales", Type: protos.AttributeProto_FLOATS, Floats: []float32{2, 0.5}}
	assert.Equal(t, "[2.0, 0.5]", attributeValueString(a))
}
