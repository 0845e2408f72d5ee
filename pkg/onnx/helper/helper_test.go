// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package helper

import (
	"reflect"
	"testing"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/onnxscript/pkg/core/dtypes"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
	"google.golang.org/protobuf/proto"
)

func TestSelectIRVersion(t *testing.T) {
	assert.Equal(t, int64(3), SelectIRVersion(1, ""))
	assert.Equal(t, int64(7), SelectIRVersion(13, ""))
	assert.Equal(t, int64(7), SelectIRVersion(13, "ai.onnx"))
	assert.Equal(t, int64(8), SelectIRVersion(15, ""))
	assert.Equal(t, int64(8), SelectIRVersion(18, ""))
	assert.Equal(t, int64(9), SelectIRVersion(19, ""))
	// First release wins for ai.onnx.ml version 1.
	assert.Equal(t, int64(3), SelectIRVersion(1, "ai.onnx.ml"))
	assert.Equal(t, int64(7), SelectIRVersion(1, "ai.onnx.preview.training"))

	// Unknown versions use the highest IR version of the default domain.
	assert.Equal(t, IRVersion, SelectIRVersion(1000, ""))
	assert.Equal(t, IRVersion, SelectIRVersion(1, "com.microsoft"))

	assert.Equal(t, int64(23), MaxOpsetVersion)
	assert.Equal(t, int64(11), IRVersion)
}

func TestMakeAttribute(t *testing.T) {
	testCases := []struct {
		value any
		want  *protos.AttributeProto
	}{
		{1.5, &protos.AttributeProto{Name: "a", Type: protos.AttributeProto_FLOAT, F: 1.5}},
		{float32(2), &protos.AttributeProto{Name: "a", Type: protos.AttributeProto_FLOAT, F: 2}},
		{7, &protos.AttributeProto{Name: "a", Type: protos.AttributeProto_INT, I: 7}},
		{true, &protos.AttributeProto{Name: "a", Type: protos.AttributeProto_INT, I: 1}},
		{"x", &protos.AttributeProto{Name: "a", Type: protos.AttributeProto_STRING, S: []byte("x")}},
		{[]float64{1, 2}, &protos.AttributeProto{Name: "a", Type: protos.AttributeProto_FLOATS, Floats: []float32{1, 2}}},
		{[]int{1, 2}, &protos.AttributeProto{Name: "a", Type: protos.AttributeProto_INTS, Ints: []int64{1, 2}}},
		{[]string{"u", "v"}, &protos.AttributeProto{Name: "a", Type: protos.AttributeProto_STRINGS,
			Strings: [][]byte{[]byte("u"), []byte("v")}}},
	}
	for _, tc := range testCases {
		got, err := MakeAttribute("a", tc.value)
		require.NoError(t, err, "value=%#v", tc.value)
		assert.True(t, proto.Equal(tc.want, got), "value=%#v: got %v", tc.value, got)
	}

	g := &protos.GraphProto{Name: "body"}
	got := must.M1(MakeAttribute("body", g))
	assert.Equal(t, protos.AttributeProto_GRAPH, got.Type)
	assert.Same(t, g, got.G)

	_, err := MakeAttribute("a", map[string]int{})
	require.Error(t, err)
	_, err = MakeAttribute("a", []bool{true})
	require.Error(t, err)
}

func TestAttributeTypeOf(t *testing.T) {
	for value, want := range map[any]AttributeType{
		float32(0): protos.AttributeProto_FLOAT,
		0:          protos.AttributeProto_INT,
		false:      protos.AttributeProto_INT,
		"":         protos.AttributeProto_STRING,
	} {
		got, ok := AttributeTypeOf(reflect.TypeOf(value))
		require.True(t, ok)
		assert.Equal(t, want, got, "value=%#v", value)
	}
	for _, tc := range []struct {
		t    reflect.Type
		want AttributeType
	}{
		{reflect.TypeOf([]float64{}), protos.AttributeProto_FLOATS},
		{reflect.TypeOf([]int64{}), protos.AttributeProto_INTS},
		{reflect.TypeOf([]string{}), protos.AttributeProto_STRINGS},
		{reflect.TypeOf([]byte{}), protos.AttributeProto_STRING},
		{reflect.TypeOf(&protos.TensorProto{}), protos.AttributeProto_TENSOR},
		{reflect.TypeOf([]*protos.GraphProto{}), protos.AttributeProto_GRAPHS},
	} {
		got, ok := AttributeTypeOf(tc.t)
		require.True(t, ok, "type=%s", tc.t)
		assert.Equal(t, tc.want, got, "type=%s", tc.t)
	}
	_, ok := AttributeTypeOf(reflect.TypeOf(struct{}{}))
	assert.False(t, ok)
	_, ok = AttributeTypeOf(reflect.TypeOf([]bool{}))
	assert.False(t, ok)
}

func TestMakeTensor(t *testing.T) {
	tf := MakeTensor("w", []int64{2, 2}, []float32{1, 2, 3, 4})
	assert.Equal(t, int32(dtypes.Float32), tf.DataType)
	assert.Equal(t, []float32{1, 2, 3, 4}, tf.FloatData)

	ti := MakeTensor("i", []int64{2}, []int{3, -1})
	assert.Equal(t, int32(dtypes.Int64), ti.DataType)
	assert.Equal(t, []int64{3, -1}, ti.Int64Data)

	tb := MakeTensor("b", []int64{3}, []bool{true, false, true})
	assert.Equal(t, int32(dtypes.Bool), tb.DataType)
	assert.Equal(t, []int32{1, 0, 1}, tb.Int32Data)

	tu8 := MakeTensor("u8", []int64{2}, []uint8{200, 1})
	assert.Equal(t, []int32{200, 1}, tu8.Int32Data)

	th := MakeTensor("h", []int64{1}, []float16.Float16{float16.Fromfloat32(1)})
	assert.Equal(t, int32(dtypes.Float16), th.DataType)
	assert.Equal(t, []byte{0x00, 0x3c}, th.RawData)

	tbf := MakeTensor("bf", []int64{1}, []bfloat16.BFloat16{bfloat16.FromFloat32(1)})
	assert.Equal(t, int32(dtypes.BFloat16), tbf.DataType)
	assert.Equal(t, []byte{0x80, 0x3f}, tbf.RawData)

	ts := MakeScalarTensor("s", 3.0)
	assert.Empty(t, ts.Dims)
	assert.Equal(t, []float64{3}, ts.DoubleData)

	assert.Panics(t, func() { MakeTensor("x", []int64{3}, []float32{1}) })
}

func TestMakeTensorTypeProto(t *testing.T) {
	tp := MakeTensorTypeProto(dtypes.Float32, []any{"N", 3, nil})
	assert.Equal(t, "FLOAT, Nx3x?", PrintableType(tp))
	assert.Equal(t, "FLOAT", PrintableType(MakeTensorTypeProto(dtypes.Float32, nil)))
	assert.Equal(t, "INT64, scalar", PrintableType(MakeTensorTypeProto(dtypes.Int64, []any{})))
	assert.Equal(t, "", PrintableType(&protos.TypeProto{}))
	assert.Equal(t, "seq(FLOAT)", PrintableType(MakeSequenceTypeProto(MakeTensorTypeProto(dtypes.Float32, nil))))
	assert.Panics(t, func() { MakeTensorTypeProto(dtypes.Float32, []any{1.5}) })

	// Unknown dimensions carry neither a value nor a parameter.
	dims := tp.GetTensorType().GetShape().GetDim()
	require.Len(t, dims, 3)
	assert.Equal(t, "N", dims[0].GetDimParam())
	assert.Equal(t, int64(3), dims[1].GetDimValue())
	assert.Nil(t, dims[2].GetValue())
}

func TestPrintableAttribute(t *testing.T) {
	for _, tc := range []struct {
		value any
		want  string
	}{
		{1.0, "alpha = 1.0"},
		{float32(-2), "alpha = -2.0"},
		{float32(0.5), "alpha = 0.5"},
		{float32(1e6), "alpha = 1000000.0"},
		{3, "alpha = 3"},
		{"relu", "alpha = 'relu'"},
		{[]int64{1, 2}, "alpha = [1, 2]"},
		{[]float32{1, 2.5}, "alpha = [1.0, 2.5]"},
		{[]string{"a", "b"}, "alpha = ['a', 'b']"},
		{MakeTensor("t", []int64{1}, []float32{1}), "alpha = <Tensor>"},
		{&protos.GraphProto{Name: "g"}, "alpha = <graph g>"},
	} {
		a := must.M1(MakeAttribute("alpha", tc.value))
		assert.Equal(t, tc.want, PrintableAttribute(a))
	}
	ref := &protos.AttributeProto{Name: "alpha", RefAttrName: "beta", Type: protos.AttributeProto_FLOAT}
	assert.Equal(t, "alpha = @beta", PrintableAttribute(ref))
}

func TestPrintableGraph(t *testing.T) {
	body := MakeGraph(
		[]*protos.NodeProto{MakeNode("Mul", []string{"y", "y"}, []string{"z"}, "n0", "")},
		"square",
		[]*protos.ValueInfoProto{MakeValueInfo("y", nil)},
		[]*protos.ValueInfoProto{MakeValueInfo("z", nil)},
	)
	g := MakeGraph(
		[]*protos.NodeProto{
			MakeNode("SequenceMap", []string{"seq"}, []string{"out"}, "n0", "", must.M1(MakeAttribute("body", body))),
			MakeNode("Identity", []string{"out"}, []string{"res"}, "n1", "this"),
		},
		"seq_map",
		[]*protos.ValueInfoProto{MakeValueInfo("seq", MakeTensorTypeProto(dtypes.Float32, []any{"N"}))},
		[]*protos.ValueInfoProto{MakeValueInfo("res", nil)},
	)
	want := "graph seq_map (\n" +
		"  %seq[FLOAT, N]\n" +
		") {\n" +
		"  %out = SequenceMap[body = <graph square>](%seq)\n" +
		"  %res = this.Identity(%out)\n" +
		"  return %res\n" +
		"}\n" +
		"\n" +
		"graph square (\n" +
		"  %y\n" +
		") {\n" +
		"  %z = Mul(%y, %y)\n" +
		"  return %z\n" +
		"}"
	assert.Equal(t, want, PrintableGraph(g, ""))
}
