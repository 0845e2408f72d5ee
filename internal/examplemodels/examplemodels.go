// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package examplemodels builds a family of small functions calling each other (a SELU activation, ELU
// variants on top of it, and a conditional one), used by tests and by the onnxir tool.
package examplemodels

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxscript/pkg/core/dtypes"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/onnxscript"
	"github.com/gomlx/onnxscript/pkg/onnxscript/ir"
	"github.com/gomlx/onnxscript/pkg/onnxscript/values"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
)

// Domain of the example functions.
const Domain = "this"

// Opset of the example functions.
var Opset = values.CustomOpset(Domain, 1)

var op = values.Opset15

// Models holds the example functions.
type Models struct {
	MySelu, MyElu, MyEluB, MyEluC, MyEluD, IfMyEluD *onnxscript.OnnxFunction
}

// All returns the functions in the order they are built.
func (m *Models) All() []*onnxscript.OnnxFunction {
	return []*onnxscript.OnnxFunction{m.MySelu, m.MyElu, m.MyEluB, m.MyEluC, m.MyEluD, m.IfMyEluD}
}

// Lookup returns the function with the given name, or nil.
func (m *Models) Lookup(name string) *onnxscript.OnnxFunction {
	for _, f := range m.All() {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

var (
	vector = ir.NewShapedTensorType(dtypes.Float32, nil)
	scalar = ir.NewShapedTensorType(dtypes.Float32, 1)
)

// script records the statements of one function, panicking on errors.
type script struct {
	b  *ir.Builder
	fn *ir.Function
}

func (s script) input(name string, typ ir.TypeLike) {
	must.M(s.b.AddInput(s.fn, name, typ, nil))
}

func (s script) output(name string, typ ir.TypeLike) {
	must.M(s.b.AddOutput(s.fn, name, typ, nil))
}

func (s script) stmt(result string, callee *values.Op, args ...string) {
	must.M(s.b.AddStmt(s.fn, []string{result}, callee, args, nil, nil))
}

func (s script) call(result string, callee *onnxscript.OnnxFunction, args ...string) {
	must.M(callee.Call(s.b, s.fn, []string{result}, args))
}

func (s script) constant(result string, value float32) {
	attr := must.M1(s.b.MakeAttr("value_float", value))
	must.M(s.b.AddStmt(s.fn, []string{result}, op.Op("Constant"), nil, []ir.AttributeValue{attr}, nil))
}

func define(b *ir.Builder, name string, body func(s script)) *onnxscript.OnnxFunction {
	return must.M1(onnxscript.Script(b, Opset, name, func(fn *ir.Function) error {
		return exceptions.TryCatch[error](func() { body(script{b: b, fn: fn}) })
	}))
}

// Build registers the example functions in b.
func Build(b *ir.Builder) (models *Models, err error) {
	err = exceptions.TryCatch[error](func() {
		models = build(b)
	})
	if err != nil {
		return nil, errors.WithMessage(err, "building example models")
	}
	return
}

func build(b *ir.Builder) *Models {
	m := &Models{}
	m.MySelu = define(b, "MySelu", func(s script) {
		s.input("X", vector)
		s.input("alpha", scalar)
		s.input("gamma", scalar)
		s.constant("zero", 1)
		s.stmt("tmp", op.Op("Exp"), "X")
		s.stmt("tmp_0", op.Op("Mul"), "alpha", "tmp")
		s.stmt("tmp_1", op.Op("Sub"), "tmp_0", "alpha")
		s.stmt("neg", op.Op("Mul"), "gamma", "tmp_1")
		s.stmt("pos", op.Op("Mul"), "gamma", "X")
		s.stmt("tmp_2", op.Op("LessOrEqual"), "X", "zero")
		s.stmt("return_val", op.Op("Where"), "tmp_2", "neg", "pos")
		s.output("return_val", vector)
	})
	m.MyElu = define(b, "MyElu", func(s script) {
		s.input("X", vector)
		s.input("beta", scalar)
		s.constant("alpha", 1)
		s.call("return_val", m.MySelu, "X", "alpha", "beta")
		s.output("return_val", vector)
	})
	m.MyEluB = define(b, "MyEluB", func(s script) {
		s.input("X", vector)
		s.input("beta", scalar)
		s.constant("alpha", 1)
		s.call("res", m.MySelu, "X", "alpha", "beta")
		s.output("res", vector)
	})
	m.MyEluC = define(b, "MyEluC", func(s script) {
		s.input("X", vector)
		s.input("beta", scalar)
		s.constant("alpha", 1)
		s.call("tmp", m.MySelu, "X", "alpha", "beta")
		s.stmt("res", op.Op("Identity"), "tmp")
		s.output("res", vector)
	})
	m.MyEluD = define(b, "MyEluD", func(s script) {
		s.input("X", vector)
		s.input("beta", scalar)
		s.call("tmp", m.MyEluC, "X", "beta")
		s.stmt("res", op.Op("Identity"), "tmp")
		s.output("res", vector)
	})
	m.IfMyEluD = define(b, "IfMyEluD", func(s script) {
		s.input("X", vector)
		s.input("beta", scalar)
		s.constant("zero", 1)
		s.stmt("tmp", op.Op("Greater"), "beta", "zero")
		thenGraph := s.branch("thenGraph", m.MyEluB)
		elseGraph := s.branch("elseGraph", m.MyEluC)
		attrs := []ir.AttributeValue{
			must.M1(b.MakeAttr("then_branch", thenGraph)),
			must.M1(b.MakeAttr("else_branch", elseGraph)),
		}
		must.M(b.AddStmt(s.fn, []string{"result"}, op.Op("If"), []string{"tmp"}, attrs, nil))
		s.output("result", vector)
	})
	return m
}

// branch builds a sub-graph without inputs computing "result" = callee(X, beta), where X and beta come from
// the enclosing function. It's registered as a nested function of s.fn, and callee as a called function.
func (s script) branch(name string, callee *onnxscript.OnnxFunction) *protos.GraphProto {
	branch := must.M1(s.b.NewFunction(name, "", false))
	body := script{b: s.b, fn: branch}
	body.stmt("result", callee.Op(), "X", "beta")
	body.output("result", nil)
	s.fn.AddNestedFunction(branch)
	must.M(s.fn.AddCalledFunction(callee))
	return must.M1(branch.ToGraphProto(false))
}
