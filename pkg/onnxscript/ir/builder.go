// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"reflect"

	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/onnxscript/values"
	"github.com/gomlx/onnxscript/pkg/support/sets"
	"github.com/pkg/errors"
)

// functionKey identifies a registered function.
type functionKey struct {
	domain, name string
}

// Builder creates functions and records their contents.
//
// It keeps a registry of the functions created with register=true, and refuses to register two functions
// with the same (domain, name).
type Builder struct {
	target    Target
	functions map[functionKey]*Function
}

// NewBuilder returns a new Builder with an empty registry, for the DefaultTarget.
func NewBuilder() *Builder {
	return &Builder{
		target:    DefaultTarget(),
		functions: make(map[functionKey]*Function),
	}
}

// WithTarget sets the target of the functions created afterwards. It returns the Builder itself, so calls
// can be cascaded.
func (b *Builder) WithTarget(target Target) *Builder {
	b.target = target
	return b
}

// Target returns the current target of the builder.
func (b *Builder) Target() Target {
	return b.target
}

// NewFunction creates an empty function.
//
// If register is true the function is registered under (domain, name), and it fails with ErrAlreadyExists
// if another function is already registered there. Nothing is changed on failure.
func (b *Builder) NewFunction(name, domain string, register bool) (*Function, error) {
	key := functionKey{domain: domain, name: name}
	if register {
		if _, found := b.functions[key]; found {
			return nil, errors.Wrapf(ErrAlreadyExists, "function %q in domain %q", name, domain)
		}
	}
	fn := newFunction(name, domain, b.target)
	if register {
		b.functions[key] = fn
	}
	return fn, nil
}

// Lookup returns the function registered under (domain, name), or nil.
func (b *Builder) Lookup(domain, name string) *Function {
	return b.functions[functionKey{domain: domain, name: name}]
}

// AddDocstring appends to the docstring of fn.
func (b *Builder) AddDocstring(fn *Function, docstring string) {
	fn.AppendDocstring(docstring)
}

// AddStmt appends to fn the statement results = callee<attrs>(args).
//
// An empty name in args marks an omitted optional input, and an empty name in results an unused output.
// subFunctions, which can be nil, are the functions the callee depends on.
func (b *Builder) AddStmt(fn *Function, results []string, callee *values.Op, args []string, attrs []AttributeValue, subFunctions *FunctionMap) error {
	s, err := NewStmt(results, callee, args, attrs, subFunctions)
	if err != nil {
		return errors.WithMessagef(err, "in function %q", fn.name)
	}
	fn.AppendStmt(s)
	return nil
}

// AddInput appends an input to fn. typ may be nil if the type is not known, and info may be nil.
// It fails if name is empty or already used by another input.
func (b *Builder) AddInput(fn *Function, name string, typ TypeLike, info *SourceInfo) error {
	v, err := newUniqueVar(fn.inputs, name, typ, info)
	if err != nil {
		return errors.WithMessagef(err, "input of function %q", fn.name)
	}
	fn.AppendInput(v)
	return nil
}

// AddOutput appends an output to fn. typ may be nil if the type is not known, and info may be nil.
// It fails if name is empty or already used by another output.
func (b *Builder) AddOutput(fn *Function, name string, typ TypeLike, info *SourceInfo) error {
	v, err := newUniqueVar(fn.outputs, name, typ, info)
	if err != nil {
		return errors.WithMessagef(err, "output of function %q", fn.name)
	}
	fn.AppendOutput(v)
	return nil
}

// newUniqueVar creates a variable whose name is not used by any of the existing vars.
func newUniqueVar(existing []*Var, name string, typ TypeLike, info *SourceInfo) (*Var, error) {
	v, err := NewVar(name, typ, info)
	if err != nil {
		return nil, err
	}
	used := sets.Make[string](len(existing))
	for _, other := range existing {
		used.Insert(other.Name)
	}
	if used.Has(name) {
		return nil, errors.Wrap(ErrInvalidName, info.Msg(fmt.Sprintf("name %q is already in use", name)))
	}
	return v, nil
}

// AddAttrParameter declares an attribute parameter of fn.
// If defaultValue is not nil, it is converted with MakeAttr and becomes the parameter's default value.
func (b *Builder) AddAttrParameter(fn *Function, name string, defaultValue any) error {
	if defaultValue == nil {
		fn.AddAttrParameter(name, nil)
		return nil
	}
	a, err := b.MakeAttr(name, defaultValue)
	if err != nil {
		return errors.WithMessagef(err, "default value of attribute parameter of function %q", fn.name)
	}
	fn.AddAttrParameter(name, a)
	return nil
}

// MakeAttr returns an attribute with a concrete value. See helper.MakeAttribute for the accepted types.
func (b *Builder) MakeAttr(name string, value any) (*ConcreteAttr, error) {
	return NewConcreteAttr(name, value)
}

// MakeAttrRef returns an attribute whose value is the one of the enclosing function's attribute parameter ref.
//
// The expected type is either a protos.AttributeProto_AttributeType or a reflect.Type of the Go values of the
// attribute (see helper.AttributeTypeOf).
func (b *Builder) MakeAttrRef(name, ref string, expectedType any) (*RefAttr, error) {
	var typ protos.AttributeProto_AttributeType
	switch t := expectedType.(type) {
	case protos.AttributeProto_AttributeType:
		typ = t
	case reflect.Type:
		var ok bool
		typ, ok = helper.AttributeTypeOf(t)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidAttribute, "attribute %q: values of type %s can't be attributes", name, t)
		}
	default:
		return nil, errors.Wrapf(ErrInvalidAttribute, "attribute %q: invalid expected type %T", name, expectedType)
	}
	if typ == protos.AttributeProto_UNDEFINED {
		return nil, errors.Wrapf(ErrInvalidAttribute, "attribute %q: expected type is undefined", name)
	}
	return NewRefAttr(name, ref, typ), nil
}
