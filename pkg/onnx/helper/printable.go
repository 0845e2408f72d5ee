// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package helper

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/onnxscript/pkg/core/dtypes"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/support/sets"
	"github.com/gomlx/onnxscript/pkg/support/xslices"
)

// printableFloat renders whole numbers with a trailing ".0", e.g. "1.0".
func printableFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', 15, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

func quoted(s []byte) string {
	return "'" + string(s) + "'"
}

// PrintableAttribute renders an attribute as "name = value".
// Attributes referring to an attribute parameter of the enclosing function are rendered as "name = @ref".
func PrintableAttribute(a *protos.AttributeProto) string {
	s, _ := printableAttribute(a)
	return s
}

// printableAttribute also returns the graphs held by the attribute, so they can be printed afterwards.
func printableAttribute(a *protos.AttributeProto) (string, []*protos.GraphProto) {
	if a.RefAttrName != "" {
		return fmt.Sprintf("%s = @%s", a.Name, a.RefAttrName), nil
	}
	var (
		value  string
		graphs []*protos.GraphProto
	)
	switch {
	case a.Type == protos.AttributeProto_FLOAT:
		value = printableFloat(a.F)
	case a.Type == protos.AttributeProto_INT:
		value = strconv.FormatInt(a.I, 10)
	case a.Type == protos.AttributeProto_STRING:
		value = quoted(a.S)
	case a.Type == protos.AttributeProto_TENSOR && a.T != nil:
		if len(a.T.Dims) > 0 {
			value = "<Tensor>"
		} else {
			value = "<Scalar Tensor>"
		}
	case a.Type == protos.AttributeProto_GRAPH && a.G != nil:
		value = fmt.Sprintf("<graph %s>", a.G.Name)
		graphs = append(graphs, a.G)
	case a.Type == protos.AttributeProto_TYPE_PROTO && a.Tp != nil:
		value = fmt.Sprintf("<Type Proto %s>", PrintableType(a.Tp))
	case len(a.Floats) > 0:
		value = "[" + strings.Join(xslices.Map(a.Floats, printableFloat), ", ") + "]"
	case len(a.Ints) > 0:
		value = "[" + strings.Join(xslices.Map(a.Ints, func(i int64) string { return strconv.FormatInt(i, 10) }), ", ") + "]"
	case len(a.Strings) > 0:
		value = "[" + strings.Join(xslices.Map(a.Strings, quoted), ", ") + "]"
	case len(a.Tensors) > 0:
		value = "[<Tensor>, ...]"
	case len(a.Graphs) > 0:
		value = "[" + strings.Join(xslices.Map(a.Graphs, func(g *protos.GraphProto) string {
			return fmt.Sprintf("<graph %s>", g.Name)
		}), ", ") + "]"
		graphs = append(graphs, a.Graphs...)
	default:
		value = "<Unknown>"
	}
	return fmt.Sprintf("%s = %s", a.Name, value), graphs
}

func printableDim(d *protos.TensorShapeProto_Dimension) string {
	switch v := d.GetValue().(type) {
	case *protos.TensorShapeProto_Dimension_DimParam:
		return v.DimParam
	case *protos.TensorShapeProto_Dimension_DimValue:
		return strconv.FormatInt(v.DimValue, 10)
	default:
		return "?"
	}
}

func elemTypeName(elemType int32) string {
	return dtypes.DType(elemType).ONNXName()
}

// PrintableType renders a type, e.g.: "FLOAT, Nx3" for a tensor, "" for the default (empty) type.
func PrintableType(t *protos.TypeProto) string {
	switch v := t.GetValue().(type) {
	case *protos.TypeProto_TensorType:
		s := elemTypeName(v.TensorType.GetElemType())
		if shape := v.TensorType.GetShape(); shape != nil {
			if len(shape.Dim) > 0 {
				s += ", " + strings.Join(xslices.Map(shape.Dim, printableDim), "x")
			} else {
				s += ", scalar"
			}
		}
		return s
	case *protos.TypeProto_SequenceType:
		return "seq(" + PrintableType(v.SequenceType.GetElemType()) + ")"
	case *protos.TypeProto_OptionalType:
		return "optional(" + PrintableType(v.OptionalType.GetElemType()) + ")"
	case *protos.TypeProto_MapType:
		return "map(" + elemTypeName(v.MapType.GetKeyType()) + ", " + PrintableType(v.MapType.GetValueType()) + ")"
	}
	return ""
}

// PrintableValueInfo renders a value description as "%name[type]".
func PrintableValueInfo(vi *protos.ValueInfoProto) string {
	s := "%" + vi.Name
	if vi.Type != nil {
		s = fmt.Sprintf("%s[%s]", s, PrintableType(vi.Type))
	}
	return s
}

func printableNames(names []string) string {
	return strings.Join(xslices.Map(names, func(name string) string { return "%" + name }), ", ")
}

// PrintableNode renders a node as "%out = OpType[attrs](%in1, %in2)", with attributes sorted.
func PrintableNode(n *protos.NodeProto, prefix string) string {
	s, _ := printableNode(n, prefix)
	return s
}

func printableNode(n *protos.NodeProto, prefix string) (string, []*protos.GraphProto) {
	var content []string
	if len(n.Output) > 0 {
		content = append(content, printableNames(n.Output), "=")
	}
	var (
		attrs  []string
		graphs []*protos.GraphProto
	)
	for _, a := range n.Attribute {
		s, subGraphs := printableAttribute(a)
		attrs = append(attrs, s)
		graphs = append(graphs, subGraphs...)
	}
	slices.Sort(attrs)
	opType := n.OpType
	if n.Domain != "" {
		opType = n.Domain + "." + opType
	}
	if len(attrs) > 0 {
		content = append(content, fmt.Sprintf("%s[%s](%s)", opType, strings.Join(attrs, ", "), printableNames(n.Input)))
	} else {
		content = append(content, fmt.Sprintf("%s(%s)", opType, printableNames(n.Input)))
	}
	return prefix + strings.Join(content, " "), graphs
}

// PrintableGraph renders a graph and, after it, every sub-graph held by the attributes of its nodes.
func PrintableGraph(g *protos.GraphProto, prefix string) string {
	var content []string
	indent := prefix + "  "
	header := []string{"graph", g.Name}
	initializers := sets.Make[string](len(g.Initializer))
	for _, t := range g.Initializer {
		initializers.Insert(t.Name)
	}
	if len(g.Input) > 0 {
		header = append(header, "(")
		var inputs, initialized []string
		for _, vi := range g.Input {
			if initializers.Has(vi.Name) {
				initialized = append(initialized, PrintableValueInfo(vi))
			} else {
				inputs = append(inputs, PrintableValueInfo(vi))
			}
		}
		if len(inputs) > 0 {
			content = append(content, prefix+strings.Join(header, " "))
			header = nil
			for _, line := range inputs {
				content = append(content, indent+line)
			}
		}
		header = append(header, ")")
		if len(initialized) > 0 {
			header = append(header, "initializers", "(")
			content = append(content, prefix+strings.Join(header, " "))
			header = nil
			for _, line := range initialized {
				content = append(content, indent+line)
			}
			header = append(header, ")")
		}
	}
	header = append(header, "{")
	content = append(content, prefix+strings.Join(header, " "))
	var graphs []*protos.GraphProto
	for _, n := range g.Node {
		s, subGraphs := printableNode(n, indent)
		content = append(content, s)
		graphs = append(graphs, subGraphs...)
	}
	tail := []string{"return"}
	if len(g.Output) > 0 {
		tail = append(tail, printableNames(xslices.Map(g.Output, func(vi *protos.ValueInfoProto) string { return vi.Name })))
	}
	content = append(content, indent+strings.Join(tail, " "), prefix+"}")
	for _, sub := range graphs {
		content = append(content, "\n"+PrintableGraph(sub, ""))
	}
	return strings.Join(content, "\n")
}
