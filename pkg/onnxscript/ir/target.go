// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import "github.com/gomlx/onnxscript/pkg/onnx/helper"

// Target describes the ONNX version the functions are serialized for.
// It is resolved once, when configuring the Builder, and carried by every Function it creates.
type Target struct {
	// MaxOpsetVersion is the opset version of the default domain used by models that don't call
	// any operator of the default domain.
	MaxOpsetVersion int64

	// FunctionAttributeDefaults tells whether FunctionProto.attribute_proto is supported: if true, attribute
	// parameters with a default value are serialized with their default; otherwise they are serialized as
	// plain attribute names and the defaults are dropped.
	FunctionAttributeDefaults bool
}

// FunctionAttributeDefaultsMinOpset is the first opset of the default domain whose release supports
// default values for function attributes.
const FunctionAttributeDefaultsMinOpset = 18

// DefaultTarget returns the target of the latest ONNX version known.
func DefaultTarget() Target {
	return TargetForOpset(helper.MaxOpsetVersion)
}

// TargetForOpset returns the target for the ONNX release introducing the given opset version of the default
// domain.
func TargetForOpset(version int64) Target {
	return Target{
		MaxOpsetVersion:           version,
		FunctionAttributeDefaults: version >= FunctionAttributeDefaultsMinOpset,
	}
}
