// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package helper provides constructors for the ONNX protocol-buffer messages, the table of ONNX releases used
// to select IR versions, and human-readable renderings of graphs and attributes.
//
// The constructors mirror the reference toolkit (onnx.helper): they are pure, in-memory, and never fail
// except for attribute values that can't be represented.
package helper

import (
	"encoding/binary"
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/onnxscript/pkg/core/dtypes"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// AttributeType is the enum AttributeProto.AttributeType.
type AttributeType = protos.AttributeProto_AttributeType

// MakeOpsetID returns an opset identifier.
func MakeOpsetID(domain string, version int64) *protos.OperatorSetIdProto {
	return &protos.OperatorSetIdProto{Domain: domain, Version: version}
}

// MakeNode returns a node calling opType of domain.
func MakeNode(opType string, inputs, outputs []string, name, domain string, attrs ...*protos.AttributeProto) *protos.NodeProto {
	return &protos.NodeProto{
		OpType:    opType,
		Input:     inputs,
		Output:    outputs,
		Name:      name,
		Domain:    domain,
		Attribute: attrs,
	}
}

// MakeGraph returns a graph with the given nodes, in order.
func MakeGraph(nodes []*protos.NodeProto, name string, inputs, outputs []*protos.ValueInfoProto) *protos.GraphProto {
	return &protos.GraphProto{
		Node:   nodes,
		Name:   name,
		Input:  inputs,
		Output: outputs,
	}
}

// MakeFunction returns a function proto. Attributes are the attribute parameters without default values.
func MakeFunction(domain, name string, inputs, outputs []string, nodes []*protos.NodeProto,
	opsetImports []*protos.OperatorSetIdProto, attributes []string, docString string) *protos.FunctionProto {
	return &protos.FunctionProto{
		Domain:      domain,
		Name:        name,
		Input:       inputs,
		Output:      outputs,
		Node:        nodes,
		OpsetImport: opsetImports,
		Attribute:   attributes,
		DocString:   docString,
	}
}

// MakeModel returns a model for the graph, with the IR version set to the latest known (IRVersion).
// Callers overwrite the other fields as needed.
func MakeModel(graph *protos.GraphProto, opsetImports []*protos.OperatorSetIdProto, functions []*protos.FunctionProto) *protos.ModelProto {
	return &protos.ModelProto{
		IrVersion:   IRVersion,
		Graph:       graph,
		OpsetImport: opsetImports,
		Functions:   functions,
	}
}

// MakeValueInfo returns a value description. typ may be nil, in which case no type is set.
func MakeValueInfo(name string, typ *protos.TypeProto) *protos.ValueInfoProto {
	return &protos.ValueInfoProto{Name: name, Type: typ}
}

// MakeTensorTypeProto returns the type of tensor of elemType.
//
// A nil shape means the rank is unknown (no shape is set), an empty non-nil shape is a scalar.
// Each dimension of the shape can be an integer (static dimension), a string (symbolic dimension) or nil (unknown).
func MakeTensorTypeProto(elemType dtypes.DType, shape []any) *protos.TypeProto {
	tensorType := &protos.TypeProto_Tensor{ElemType: int32(elemType)}
	if shape != nil {
		tensorType.Shape = &protos.TensorShapeProto{Dim: make([]*protos.TensorShapeProto_Dimension, 0, len(shape))}
		for axis, dim := range shape {
			d := &protos.TensorShapeProto_Dimension{}
			switch v := dim.(type) {
			case nil:
			case string:
				d.Value = &protos.TensorShapeProto_Dimension_DimParam{DimParam: v}
			case int:
				d.Value = &protos.TensorShapeProto_Dimension_DimValue{DimValue: int64(v)}
			case int32:
				d.Value = &protos.TensorShapeProto_Dimension_DimValue{DimValue: int64(v)}
			case int64:
				d.Value = &protos.TensorShapeProto_Dimension_DimValue{DimValue: v}
			default:
				exceptions.Panicf("MakeTensorTypeProto: invalid dimension type %T for axis #%d", dim, axis)
			}
			tensorType.Shape.Dim = append(tensorType.Shape.Dim, d)
		}
	}
	return &protos.TypeProto{Value: &protos.TypeProto_TensorType{TensorType: tensorType}}
}

// MakeSequenceTypeProto returns the type of sequence of elemType values.
func MakeSequenceTypeProto(elemType *protos.TypeProto) *protos.TypeProto {
	return &protos.TypeProto{Value: &protos.TypeProto_SequenceType{
		SequenceType: &protos.TypeProto_Sequence{ElemType: elemType},
	}}
}

// MakeOptionalTypeProto returns the type of optional elemType value.
func MakeOptionalTypeProto(elemType *protos.TypeProto) *protos.TypeProto {
	return &protos.TypeProto{Value: &protos.TypeProto_OptionalType{
		OptionalType: &protos.TypeProto_Optional{ElemType: elemType},
	}}
}

// MakeTensor returns a tensor with the given dims and values, stored in the typed data field ONNX uses for T,
// or in the raw data for the 16 bits floats and the types without a typed field.
//
// It panics if the number of values doesn't match the dimensions.
func MakeTensor[T dtypes.Supported](name string, dims []int64, values []T) *protos.TensorProto {
	size := int64(1)
	for _, dim := range dims {
		size *= dim
	}
	if size != int64(len(values)) {
		exceptions.Panicf("MakeTensor(%q): dims %v require %d values, got %d", name, dims, size, len(values))
	}
	t := &protos.TensorProto{
		Name:     name,
		Dims:     dims,
		DataType: int32(dtypes.FromGenericsType[T]()),
	}
	switch vs := any(values).(type) {
	case []float32:
		t.FloatData = vs
	case []float64:
		t.DoubleData = vs
	case []int32:
		t.Int32Data = vs
	case []int64:
		t.Int64Data = vs
	case []int:
		t.Int64Data = make([]int64, len(vs))
		for ii, v := range vs {
			t.Int64Data[ii] = int64(v)
		}
		t.DataType = int32(dtypes.Int64)
	case []uint64:
		t.Uint64Data = vs
	case []uint32:
		t.Uint64Data = make([]uint64, len(vs))
		for ii, v := range vs {
			t.Uint64Data[ii] = uint64(v)
		}
	case []bool:
		t.Int32Data = make([]int32, len(vs))
		for ii, v := range vs {
			if v {
				t.Int32Data[ii] = 1
			}
		}
	case []int8, []int16, []uint8, []uint16:
		// Small integer types are stored widened in int32_data.
		rv := reflect.ValueOf(vs)
		t.Int32Data = make([]int32, rv.Len())
		for ii := range t.Int32Data {
			if rv.Index(ii).CanInt() {
				t.Int32Data[ii] = int32(rv.Index(ii).Int())
			} else {
				t.Int32Data[ii] = int32(rv.Index(ii).Uint())
			}
		}
	case []float16.Float16:
		t.RawData = make([]byte, 2*len(vs))
		for ii, v := range vs {
			binary.LittleEndian.PutUint16(t.RawData[2*ii:], v.Bits())
		}
	case []bfloat16.BFloat16:
		t.RawData = make([]byte, 2*len(vs))
		for ii, v := range vs {
			binary.LittleEndian.PutUint16(t.RawData[2*ii:], uint16(v))
		}
	case []complex64:
		t.FloatData = make([]float32, 0, 2*len(vs))
		for _, v := range vs {
			t.FloatData = append(t.FloatData, real(v), imag(v))
		}
	case []complex128:
		t.DoubleData = make([]float64, 0, 2*len(vs))
		for _, v := range vs {
			t.DoubleData = append(t.DoubleData, real(v), imag(v))
		}
	}
	return t
}

// MakeScalarTensor returns a 0-dimensional tensor holding value.
func MakeScalarTensor[T dtypes.Supported](name string, value T) *protos.TensorProto {
	return MakeTensor(name, nil, []T{value})
}

// MakeAttribute returns an attribute with the given name and value, inferring the attribute type from the Go
// type of value:
//
//   - float32, float64: FLOAT
//   - int, int32, int64, bool: INT
//   - string, []byte: STRING
//   - *protos.TensorProto, *protos.GraphProto, *protos.TypeProto: TENSOR, GRAPH, TYPE_PROTO
//   - slices of the above: FLOATS, INTS, STRINGS, TENSORS, GRAPHS, TYPE_PROTOS
func MakeAttribute(name string, value any) (*protos.AttributeProto, error) {
	a := &protos.AttributeProto{Name: name}
	switch v := value.(type) {
	case float32:
		a.Type, a.F = protos.AttributeProto_FLOAT, v
	case float64:
		a.Type, a.F = protos.AttributeProto_FLOAT, float32(v)
	case int:
		a.Type, a.I = protos.AttributeProto_INT, int64(v)
	case int32:
		a.Type, a.I = protos.AttributeProto_INT, int64(v)
	case int64:
		a.Type, a.I = protos.AttributeProto_INT, v
	case bool:
		a.Type = protos.AttributeProto_INT
		if v {
			a.I = 1
		}
	case string:
		a.Type, a.S = protos.AttributeProto_STRING, []byte(v)
	case []byte:
		a.Type, a.S = protos.AttributeProto_STRING, v
	case *protos.TensorProto:
		a.Type, a.T = protos.AttributeProto_TENSOR, v
	case *protos.GraphProto:
		a.Type, a.G = protos.AttributeProto_GRAPH, v
	case *protos.TypeProto:
		a.Type, a.Tp = protos.AttributeProto_TYPE_PROTO, v
	case []float32:
		a.Type, a.Floats = protos.AttributeProto_FLOATS, v
	case []float64:
		a.Type = protos.AttributeProto_FLOATS
		a.Floats = make([]float32, len(v))
		for ii, f := range v {
			a.Floats[ii] = float32(f)
		}
	case []int:
		a.Type = protos.AttributeProto_INTS
		a.Ints = make([]int64, len(v))
		for ii, i := range v {
			a.Ints[ii] = int64(i)
		}
	case []int32:
		a.Type = protos.AttributeProto_INTS
		a.Ints = make([]int64, len(v))
		for ii, i := range v {
			a.Ints[ii] = int64(i)
		}
	case []int64:
		a.Type, a.Ints = protos.AttributeProto_INTS, v
	case []string:
		a.Type = protos.AttributeProto_STRINGS
		a.Strings = make([][]byte, len(v))
		for ii, s := range v {
			a.Strings[ii] = []byte(s)
		}
	case [][]byte:
		a.Type, a.Strings = protos.AttributeProto_STRINGS, v
	case []*protos.TensorProto:
		a.Type, a.Tensors = protos.AttributeProto_TENSORS, v
	case []*protos.GraphProto:
		a.Type, a.Graphs = protos.AttributeProto_GRAPHS, v
	case []*protos.TypeProto:
		a.Type, a.TypeProtos = protos.AttributeProto_TYPE_PROTOS, v
	default:
		return nil, errors.Errorf("attribute %q: values of type %T can't be converted to an ONNX attribute", name, value)
	}
	return a, nil
}

var (
	tensorProtoType = reflect.TypeOf((*protos.TensorProto)(nil))
	graphProtoType  = reflect.TypeOf((*protos.GraphProto)(nil))
	typeProtoType   = reflect.TypeOf((*protos.TypeProto)(nil))
)

// AttributeTypeOf returns the attribute type that MakeAttribute would use for values of the Go type t.
// It returns false if values of t can't be attributes.
func AttributeTypeOf(t reflect.Type) (AttributeType, bool) {
	switch t {
	case tensorProtoType:
		return protos.AttributeProto_TENSOR, true
	case graphProtoType:
		return protos.AttributeProto_GRAPH, true
	case typeProtoType:
		return protos.AttributeProto_TYPE_PROTO, true
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return protos.AttributeProto_FLOAT, true
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Bool:
		return protos.AttributeProto_INT, true
	case reflect.String:
		return protos.AttributeProto_STRING, true
	case reflect.Slice:
		elem := t.Elem()
		if elem.Kind() == reflect.Uint8 {
			return protos.AttributeProto_STRING, true
		}
		elemType, ok := AttributeTypeOf(elem)
		if !ok {
			return protos.AttributeProto_UNDEFINED, false
		}
		switch elemType {
		case protos.AttributeProto_FLOAT:
			return protos.AttributeProto_FLOATS, true
		case protos.AttributeProto_INT:
			if elem.Kind() == reflect.Bool {
				return protos.AttributeProto_UNDEFINED, false
			}
			return protos.AttributeProto_INTS, true
		case protos.AttributeProto_STRING:
			return protos.AttributeProto_STRINGS, true
		case protos.AttributeProto_TENSOR:
			return protos.AttributeProto_TENSORS, true
		case protos.AttributeProto_GRAPH:
			return protos.AttributeProto_GRAPHS, true
		case protos.AttributeProto_TYPE_PROTO:
			return protos.AttributeProto_TYPE_PROTOS, true
		}
	}
	return protos.AttributeProto_UNDEFINED, false
}
