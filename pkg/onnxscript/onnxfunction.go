// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package onnxscript binds IR functions to the opset they are defined in, so they can be called by other
// functions and exported as standalone ONNX models.
//
// The IR itself lives in package ir, and operator references in package values.
package onnxscript

import (
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/onnxscript/ir"
	"github.com/gomlx/onnxscript/pkg/onnxscript/values"
	"github.com/pkg/errors"
)

// OnnxFunction is a built function of an opset: it can be called as an operator of the opset (Op), and it
// is included, along with the functions it calls, in the models of the functions that call it.
type OnnxFunction struct {
	opset *values.Opset
	fn    *ir.Function
}

var _ ir.Callable = (*OnnxFunction)(nil)

// New binds fn to opset. It fails if the domain of fn is not the one of the opset.
func New(opset *values.Opset, fn *ir.Function) (*OnnxFunction, error) {
	if opset == nil || fn == nil {
		return nil, errors.New("onnxscript.New requires an opset and a function")
	}
	if fn.Domain() != opset.Domain {
		return nil, errors.Errorf("function %q has domain %q, but it is bound to opset %s",
			fn.Name(), fn.Domain(), opset)
	}
	return &OnnxFunction{opset: opset, fn: fn}, nil
}

// Script creates and registers in b a function of opset, populates it with build, and binds it to the opset.
func Script(b *ir.Builder, opset *values.Opset, name string, build func(fn *ir.Function) error) (*OnnxFunction, error) {
	fn, err := b.NewFunction(name, opset.Domain, true)
	if err != nil {
		return nil, err
	}
	if err = build(fn); err != nil {
		return nil, errors.WithMessagef(err, "building function %q", name)
	}
	return New(opset, fn)
}

// Name of the function.
func (of *OnnxFunction) Name() string { return of.fn.Name() }

// Opset the function belongs to.
func (of *OnnxFunction) Opset() *values.Opset { return of.opset }

// Function returns the underlying IR.
func (of *OnnxFunction) Function() *ir.Function { return of.fn }

// Op returns the operator reference used to call the function.
func (of *OnnxFunction) Op() *values.Op {
	return of.opset.Op(of.fn.Name())
}

// CalledFunctions implements ir.Callable.
func (of *OnnxFunction) CalledFunctions() *ir.FunctionMap {
	return of.fn.CalledFunctions()
}

// ToFunctionProto implements ir.Callable.
func (of *OnnxFunction) ToFunctionProto() (*protos.FunctionProto, error) {
	return of.fn.ToFunctionProto()
}

// Model returns the configuration to convert the function to a model, see ir.Model.
func (of *OnnxFunction) Model() *ir.Model {
	return of.fn.Model()
}

// ToModelProto converts the function to a model with the default options.
func (of *OnnxFunction) ToModelProto() (*protos.ModelProto, error) {
	return of.fn.ToModelProto()
}

// String returns the textual form of the function IR.
func (of *OnnxFunction) String() string {
	return of.fn.String()
}

// Call appends to caller the statement results = of<attrs>(args), and adds of to the functions called by
// caller.
func (of *OnnxFunction) Call(b *ir.Builder, caller *ir.Function, results []string, args []string, attrs ...ir.AttributeValue) error {
	if err := b.AddStmt(caller, results, of.Op(), args, attrs, nil); err != nil {
		return err
	}
	return caller.AddCalledFunction(of)
}
