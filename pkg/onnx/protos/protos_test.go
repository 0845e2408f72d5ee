// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package protos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gomlx/onnxscript/pkg/core/dtypes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func TestEncodeNode(t *testing.T) {
	n := &NodeProto{
		Input:  []string{"a", "", "c"},
		Output: []string{"y"},
		Name:   "n0",
		OpType: "Add",
	}
	want := []byte{
		0x0a, 0x01, 'a', // input "a"
		0x0a, 0x00, // omitted optional input keeps its slot.
		0x0a, 0x01, 'c', // input "c"
		0x12, 0x01, 'y', // output
		0x1a, 0x02, 'n', '0', // name
		0x22, 0x03, 'A', 'd', 'd', // op_type
	}
	assert.Equal(t, want, must.M1(proto.Marshal(n)))
}

func tensorType(elemType dtypes.DType, dims ...*TensorShapeProto_Dimension) *TypeProto {
	return &TypeProto{Value: &TypeProto_TensorType{TensorType: &TypeProto_Tensor{
		ElemType: int32(elemType),
		Shape:    &TensorShapeProto{Dim: dims},
	}}}
}

func buildTestModel() *ModelProto {
	floatType := tensorType(dtypes.Float32,
		&TensorShapeProto_Dimension{Value: &TensorShapeProto_Dimension_DimParam{DimParam: "N"}},
		&TensorShapeProto_Dimension{Value: &TensorShapeProto_Dimension_DimValue{DimValue: 3}},
		&TensorShapeProto_Dimension{},
	)
	body := &GraphProto{
		Name:   "square",
		Node:   []*NodeProto{{Input: []string{"y", "y"}, Output: []string{"z"}, Name: "n0", OpType: "Mul"}},
		Input:  []*ValueInfoProto{{Name: "y", Type: &TypeProto{}}},
		Output: []*ValueInfoProto{{Name: "z"}},
	}
	return &ModelProto{
		IrVersion:       8,
		ProducerName:    "onnxscript",
		ProducerVersion: "0.1",
		ModelVersion:    3,
		DocString:       "test model",
		OpsetImport: []*OperatorSetIdProto{
			{Domain: "", Version: 15},
			{Domain: "this", Version: 1},
		},
		MetadataProps: []*StringStringEntryProto{{Key: "author", Value: "me"}},
		Graph: &GraphProto{
			Name: "main",
			Node: []*NodeProto{
				{
					Input:  []string{"X", "", "alpha"},
					Output: []string{"Y"},
					Name:   "n0",
					OpType: "MySelu",
					Domain: "this",
					Attribute: []*AttributeProto{
						{Name: "f", Type: AttributeProto_FLOAT, F: 1.5},
						{Name: "i", Type: AttributeProto_INT, I: -7},
						{Name: "s", Type: AttributeProto_STRING, S: []byte("abc")},
						{Name: "floats", Type: AttributeProto_FLOATS, Floats: []float32{1, 2.5}},
						{Name: "ints", Type: AttributeProto_INTS, Ints: []int64{1, -2, 3}},
						{Name: "strings", Type: AttributeProto_STRINGS, Strings: [][]byte{[]byte("a"), []byte("bc")}},
						{Name: "body", Type: AttributeProto_GRAPH, G: body},
						{Name: "tp", Type: AttributeProto_TYPE_PROTO, Tp: floatType},
						{Name: "t", Type: AttributeProto_TENSOR, T: &TensorProto{
							Dims:      []int64{2},
							DataType:  int32(dtypes.Float32),
							FloatData: []float32{0.5, -1},
						}},
					},
				},
				{
					Input:  []string{"Y"},
					Output: []string{"Z"},
					Name:   "n1",
					OpType: "Identity",
				},
			},
			Initializer: []*TensorProto{
				{Name: "w", Dims: []int64{2, 1}, DataType: int32(dtypes.Int64), Int64Data: []int64{-1, 5}},
				{Name: "r", Dims: []int64{1}, DataType: int32(dtypes.Float16), RawData: []byte{0x00, 0x3c}},
				{Name: "i32", Dims: []int64{2}, DataType: int32(dtypes.Int32), Int32Data: []int32{-3, 4}},
				{Name: "d", DataType: int32(dtypes.Float64), DoubleData: []float64{3.25}},
				{Name: "u", DataType: int32(dtypes.Uint64), Uint64Data: []uint64{1 << 40}},
				{Name: "str", DataType: int32(dtypes.String), StringData: [][]byte{[]byte("x")}},
			},
			Input: []*ValueInfoProto{
				{Name: "X", Type: floatType},
				{Name: "alpha", Type: &TypeProto{}},
			},
			Output: []*ValueInfoProto{{Name: "Z"}},
		},
		Functions: []*FunctionProto{
			{
				Name:      "MySelu",
				Domain:    "this",
				Input:     []string{"X", "alpha"},
				Output:    []string{"Y"},
				Attribute: []string{"gamma"},
				AttributeProto: []*AttributeProto{
					{Name: "beta", Type: AttributeProto_FLOAT, F: 2},
				},
				Node: []*NodeProto{{
					Input: []string{"X"}, Output: []string{"Y"}, Name: "n0", OpType: "Elu",
					Attribute: []*AttributeProto{{Name: "alpha", RefAttrName: "beta", Type: AttributeProto_FLOAT}},
				}},
				OpsetImport: []*OperatorSetIdProto{{Domain: "", Version: 15}},
				DocString:   "selu",
			},
		},
	}
}

func TestModelRoundTrip(t *testing.T) {
	model := buildTestModel()
	data := must.M1(proto.Marshal(model))
	got := &ModelProto{}
	require.NoError(t, proto.Unmarshal(data, got))
	assert.True(t, proto.Equal(model, got))

	// Presence of message fields is kept: an empty type differs from no type.
	require.NotNil(t, got.Graph.Input[1].Type)
	assert.Nil(t, got.Graph.Input[1].Type.GetValue())
	assert.Nil(t, got.Graph.Output[0].Type)

	// Dimensions keep which of value or parameter they hold, if any.
	dims := got.Graph.Input[0].Type.GetTensorType().GetShape().GetDim()
	require.Len(t, dims, 3)
	assert.Equal(t, "N", dims[0].GetDimParam())
	assert.Equal(t, int64(3), dims[1].GetDimValue())
	assert.Nil(t, dims[2].GetValue())

	// The omitted input keeps its slot.
	assert.Equal(t, []string{"X", "", "alpha"}, got.Graph.Node[0].Input)

	// Re-encoding is stable.
	assert.Equal(t, data, must.M1(proto.Marshal(got)))
}

func TestUnknownFieldsArePreserved(t *testing.T) {
	data := must.M1(proto.Marshal(&FunctionProto{Name: "f", Domain: "d"}))
	var extra []byte
	extra = protowire.AppendTag(extra, 99, protowire.VarintType)
	extra = protowire.AppendVarint(extra, 1234)
	data = append(data, extra...)

	f := &FunctionProto{}
	require.NoError(t, proto.Unmarshal(data, f))
	assert.Equal(t, "f", f.Name)
	assert.Equal(t, "d", f.Domain)
	assert.Equal(t, extra, []byte(f.ProtoReflect().GetUnknown()))
	assert.Equal(t, data, must.M1(proto.Marshal(f)))

	// Truncated data is an error.
	require.Error(t, proto.Unmarshal([]byte{0x3a, 0x05, 0x01}, &ModelProto{}))
}

func TestModelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.onnx")
	model := buildTestModel()
	require.NoError(t, WriteModelFile(path, model))
	got := must.M1(ReadModelFile(path))
	assert.True(t, proto.Equal(model, got))

	_, err := ReadModelFile(filepath.Join(t.TempDir(), "missing.onnx"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.onnx")
	require.NoError(t, os.WriteFile(bad, []byte{0x3a, 0x05, 0x01}, 0o644))
	_, err = ReadModelFile(bad)
	require.Error(t, err)
}

func TestModelFileKeepsAllFields(t *testing.T) {
	model := buildTestModel()
	model.Graph.ValueInfo = []*ValueInfoProto{{Name: "Y", Type: tensorType(dtypes.Float32)}}
	model.Graph.SparseInitializer = []*SparseTensorProto{{
		Dims:    []int64{4},
		Values:  &TensorProto{Name: "sp", Dims: []int64{1}, DataType: int32(dtypes.Float32), FloatData: []float32{2}},
		Indices: &TensorProto{Dims: []int64{1}, DataType: int32(dtypes.Int64), Int64Data: []int64{3}},
	}}
	model.Graph.QuantizationAnnotation = []*TensorAnnotation{{
		TensorName:                "X",
		QuantParameterTensorNames: []*StringStringEntryProto{{Key: "SCALE_TENSOR", Value: "s"}},
	}}
	model.Graph.Initializer = append(model.Graph.Initializer, &TensorProto{
		Name:         "big",
		Dims:         []int64{1024},
		DataType:     int32(dtypes.Float32),
		DataLocation: TensorProto_EXTERNAL,
		ExternalData: []*StringStringEntryProto{{Key: "location", Value: "weights.bin"}, {Key: "offset", Value: "0"}},
	})
	model.TrainingInfo = []*TrainingInfoProto{{
		Algorithm:     &GraphProto{Name: "update"},
		UpdateBinding: []*StringStringEntryProto{{Key: "w", Value: "w_new"}},
	}}
	data := must.M1(proto.Marshal(model))
	var extra []byte
	extra = protowire.AppendTag(extra, 99, protowire.BytesType)
	extra = protowire.AppendString(extra, "future field")
	data = append(data, extra...)

	dir := t.TempDir()
	src, dst := filepath.Join(dir, "src.onnx"), filepath.Join(dir, "dst.onnx")
	require.NoError(t, os.WriteFile(src, data, 0o644))
	got := must.M1(ReadModelFile(src))
	assert.False(t, proto.Equal(model, got), "the decoded model keeps the unknown field")
	require.NoError(t, WriteModelFile(dst, got))
	assert.Equal(t, data, must.M1(os.ReadFile(dst)))

	got.ProtoReflect().SetUnknown(nil)
	assert.True(t, proto.Equal(model, got))
	assert.Equal(t, TensorProto_EXTERNAL, got.Graph.Initializer[len(got.Graph.Initializer)-1].DataLocation)
	assert.Equal(t, "w_new", got.TrainingInfo[0].UpdateBinding[0].Value)
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "FLOATS", AttributeProto_FLOATS.String())
	assert.Equal(t, "99", AttributeProto_AttributeType(99).String())
	assert.Equal(t, "EXTERNAL", TensorProto_EXTERNAL.String())

	// dtypes.DType uses the values of TensorProto.DataType.
	for value := range TensorProto_DataType_name {
		assert.Equal(t, TensorProto_DataType(value).String(), dtypes.DType(value).ONNXName())
	}
}
