// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/onnxscript/values"
	"github.com/gomlx/onnxscript/pkg/support/ordered"
	"github.com/gomlx/onnxscript/pkg/support/xslices"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// FunctionMap maps function names to their serialized form, in insertion order.
type FunctionMap = ordered.Map[string, *protos.FunctionProto]

// Stmt is one operator call: Results = Callee<Attrs>(Args).
type Stmt struct {
	// Results are the names of the outputs. An empty name marks an unused output.
	Results []string

	Callee *values.Op

	// Args are the names of the inputs. An empty name marks an omitted optional input.
	Args []string

	Attrs []AttributeValue

	// Functions the callee depends on, indexed by name. It may be nil.
	Functions *FunctionMap
}

// NewStmt returns a new statement. It fails if callee is not a valid operator reference.
func NewStmt(results []string, callee *values.Op, args []string, attrs []AttributeValue, subFunctions *FunctionMap) (*Stmt, error) {
	if callee == nil || callee.Opset == nil || callee.Name == "" {
		var name string
		if callee != nil {
			name = callee.Name
		}
		return nil, errors.Wrapf(ErrInvalidCallee, "callee %q of statement producing %q is not an operator reference", name, results)
	}
	if subFunctions == nil {
		subFunctions = ordered.Make[string, *protos.FunctionProto]()
	}
	return &Stmt{
		Results:   slices.Clone(results),
		Callee:    callee,
		Args:      slices.Clone(args),
		Attrs:     slices.Clone(attrs),
		Functions: subFunctions,
	}, nil
}

// OutputNames returns the names assigned by the statement.
func (s *Stmt) OutputNames() []string {
	return slices.Clone(s.Results)
}

// ToNodeProto converts the statement to a node named nodeName.
func (s *Stmt) ToNodeProto(nodeName string) *protos.NodeProto {
	return helper.MakeNode(s.Callee.Name, slices.Clone(s.Args), slices.Clone(s.Results), nodeName, s.Callee.Domain(),
		xslices.Map(s.Attrs, AttributeValue.ToAttributeProto)...)
}

// String returns the statement as "outputs = domain.Op <attrs>(args)".
func (s *Stmt) String() string {
	var attrs string
	if len(s.Attrs) > 0 {
		attrs = "<" + strings.Join(xslices.Map(s.Attrs, AttributeValue.String), ", ") + ">"
	}
	return fmt.Sprintf("%s = %s %s(%s)", strings.Join(s.Results, ", "), s.Callee, attrs, strings.Join(s.Args, ", "))
}

// DebugPrint logs the statement, if verbose logging (level 2) is enabled.
func (s *Stmt) DebugPrint() {
	if klog.V(2).Enabled() {
		klog.Infof("%T: %s", s, s)
	}
}
