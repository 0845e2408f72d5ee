// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package values identifies the operators a statement can call: an Opset is a versioned operator domain and
// an Op is an operator name within an Opset.
package values

import "fmt"

// Opset is a versioned operator set. The empty Domain is the default ONNX domain.
type Opset struct {
	Domain  string
	Version int64
}

// NewOpset returns the opset of domain at version.
func NewOpset(domain string, version int64) *Opset {
	return &Opset{Domain: domain, Version: version}
}

// CustomOpset returns an opset for user-defined functions.
// It is a plain Opset, the name only documents intent.
func CustomOpset(domain string, version int64) *Opset {
	return NewOpset(domain, version)
}

// Op returns a reference to the operator name of the opset.
func (o *Opset) Op(name string) *Op {
	return &Op{Opset: o, Name: name}
}

// String implements fmt.Stringer.
func (o *Opset) String() string {
	return fmt.Sprintf("%s@%d", o.Domain, o.Version)
}

// Predefined opsets of the default ONNX domain.
var (
	Opset13 = NewOpset("", 13)
	Opset15 = NewOpset("", 15)
	Opset17 = NewOpset("", 17)
	Opset18 = NewOpset("", 18)
	Opset19 = NewOpset("", 19)
	Opset20 = NewOpset("", 20)
	Opset21 = NewOpset("", 21)
	Opset22 = NewOpset("", 22)
	Opset23 = NewOpset("", 23)

	// OpsetML3 is the ONNX-ML domain at version 3.
	OpsetML3 = NewOpset("ai.onnx.ml", 3)
)

// Op is a reference to an operator: the opset it belongs to and its name.
type Op struct {
	Opset *Opset
	Name  string
}

// Domain returns the domain of the operator's opset.
func (op *Op) Domain() string {
	return op.Opset.Domain
}

// Version returns the version of the operator's opset.
func (op *Op) Version() int64 {
	return op.Opset.Version
}

// String returns "domain.Name", or just the name for the default domain.
func (op *Op) String() string {
	if op.Opset.Domain == "" {
		return op.Name
	}
	return op.Opset.Domain + "." + op.Name
}
