// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"

	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// AttributeValue is the value of an operator attribute: either a ConcreteAttr or a RefAttr.
type AttributeValue interface {
	// Name of the attribute.
	Name() string

	// ToAttributeProto returns the serialized attribute. It is a fresh copy, owned by the caller.
	ToAttributeProto() *protos.AttributeProto

	// String returns "name = value" or, for references, "name = @ref".
	String() string

	attributeValue()
}

// ConcreteAttr is an attribute with a value fixed when the function is built.
type ConcreteAttr struct {
	value *protos.AttributeProto
}

var _ AttributeValue = (*ConcreteAttr)(nil)

// NewConcreteAttr returns an attribute with the given value. See helper.MakeAttribute for the accepted
// Go types.
func NewConcreteAttr(name string, value any) (*ConcreteAttr, error) {
	attr, err := helper.MakeAttribute(name, value)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidAttribute, err.Error())
	}
	// The attribute may share slices or messages with value.
	return &ConcreteAttr{value: proto.CloneOf(attr)}, nil
}

// ConcreteAttrFromProto wraps a copy of an already serialized attribute.
func ConcreteAttrFromProto(attr *protos.AttributeProto) *ConcreteAttr {
	return &ConcreteAttr{value: proto.CloneOf(attr)}
}

// Name implements AttributeValue.
func (a *ConcreteAttr) Name() string { return a.value.Name }

// ToAttributeProto implements AttributeValue.
func (a *ConcreteAttr) ToAttributeProto() *protos.AttributeProto { return proto.CloneOf(a.value) }

// Type of the attribute value.
func (a *ConcreteAttr) Type() protos.AttributeProto_AttributeType { return a.value.Type }

// String implements AttributeValue.
func (a *ConcreteAttr) String() string { return helper.PrintableAttribute(a.value) }

func (a *ConcreteAttr) attributeValue() {}

// RefAttr is a late-bound attribute: its value is the one given to the attribute parameter Ref of the
// enclosing function, when the function is called.
type RefAttr struct {
	AttrName string
	Ref      string

	// Type the referenced attribute parameter is expected to have.
	Type protos.AttributeProto_AttributeType
}

var _ AttributeValue = (*RefAttr)(nil)

// NewRefAttr returns an attribute name taking the value of the enclosing function's attribute parameter ref.
func NewRefAttr(name, ref string, typ protos.AttributeProto_AttributeType) *RefAttr {
	return &RefAttr{AttrName: name, Ref: ref, Type: typ}
}

// Name implements AttributeValue.
func (a *RefAttr) Name() string { return a.AttrName }

// ToAttributeProto implements AttributeValue.
func (a *RefAttr) ToAttributeProto() *protos.AttributeProto {
	return &protos.AttributeProto{Name: a.AttrName, RefAttrName: a.Ref, Type: a.Type}
}

// String implements AttributeValue.
func (a *RefAttr) String() string { return fmt.Sprintf("%s = @%s", a.AttrName, a.Ref) }

func (a *RefAttr) attributeValue() {}
