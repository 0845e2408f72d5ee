// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/pkg/errors"
)

// Var is a named and optionally typed variable: an input or output of a Function.
type Var struct {
	Name string

	// Type is nil if the type is not known.
	Type TypeLike

	// Info is where the variable was declared, it may be nil.
	Info *SourceInfo
}

// NewVar returns a new variable. It fails if name is empty.
func NewVar(name string, typ TypeLike, info *SourceInfo) (*Var, error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidName, info.Msg("variable name must be non-empty"))
	}
	return &Var{Name: name, Type: typ, Info: info}, nil
}

// String returns the variable name.
func (v *Var) String() string {
	return v.Name
}

// TypedString returns "name : type", or just the name if the variable has no type.
func (v *Var) TypedString() string {
	if v.Type == nil {
		return v.Name
	}
	return v.Name + " : " + v.Type.String()
}

// ToValueInfo converts the variable to a value description.
//
// If the variable has no type, useDefaultType selects between setting the default (empty) type descriptor
// or leaving the type unset.
func (v *Var) ToValueInfo(useDefaultType bool) (*protos.ValueInfoProto, error) {
	if v.Name == "" {
		return nil, errors.Wrap(ErrInvalidName, v.Info.Msg("variable name cannot be empty"))
	}
	var typ *protos.TypeProto
	if v.Type != nil {
		typ = v.Type.ToTypeProto()
	} else if useDefaultType {
		typ = UntypedType{}.ToTypeProto()
	}
	return helper.MakeValueInfo(v.Name, typ), nil
}
