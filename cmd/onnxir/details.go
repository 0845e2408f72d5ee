// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/support/xslices"
)

func attributeValueString(a *protos.AttributeProto) string {
	s := helper.PrintableAttribute(a)
	return strings.TrimPrefix(s, a.Name+" = ")
}

func nodeInputs(names []string) string {
	return strings.Join(xslices.Map(names, func(name string) string {
		if name == "" {
			return "<omitted>"
		}
		return name
	}), ", ")
}

// Nodes prints a table with the nodes of the graph.
func Nodes(modelName string, g *protos.GraphProto) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Nodes of %s", modelName)))
	if g == nil {
		fmt.Println("  no graph")
		return
	}
	table := newPlainTable()
	table.Headers("Name", "Operator", "Inputs", "Outputs", "Attributes")
	for _, n := range g.Node {
		op := n.OpType
		if n.Domain != "" {
			op = n.Domain + "." + op
		}
		attrs := xslices.Map(n.Attribute, helper.PrintableAttribute)
		table.Row(n.Name, op, nodeInputs(n.Input), strings.Join(n.Output, ", "), strings.Join(attrs, "\n"))
	}
	fmt.Println(table.Render())
}

// Functions prints a table with the model-local functions.
func Functions(modelName string, functions []*protos.FunctionProto) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Functions of %s", modelName)))
	if len(functions) == 0 {
		fmt.Println("  no functions")
		return
	}
	table := newPlainTable()
	table.Headers("Domain", "Name", "Inputs", "Outputs", "Attributes", "Opsets", "# Nodes")
	for _, f := range functions {
		attrs := append([]string(nil), f.Attribute...)
		for _, a := range f.AttributeProto {
			attrs = append(attrs, helper.PrintableAttribute(a))
		}
		opsets := xslices.Map(f.OpsetImport, func(o *protos.OperatorSetIdProto) string {
			return fmt.Sprintf("%s:%d", displayDomain(o.Domain), o.Version)
		})
		table.Row(displayDomain(f.Domain), f.Name, strings.Join(f.Input, ", "), strings.Join(f.Output, ", "),
			strings.Join(attrs, "\n"), strings.Join(opsets, "\n"), fmt.Sprint(len(f.Node)))
	}
	fmt.Println(table.Render())
}

// Graph prints the graph, and its sub-graphs, in text form.
func Graph(modelName string, g *protos.GraphProto) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Graph of %s", modelName)))
	if g == nil {
		fmt.Println("  no graph")
		return
	}
	fmt.Println(helper.PrintableGraph(g, ""))
}
