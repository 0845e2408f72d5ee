// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ir is the intermediate representation of an ONNX function before serialization.
//
// A Function is a straight-line list of statements (Stmt), each one an operator call with named inputs and
// outputs, plus the function's declared inputs, outputs and attribute parameters. Functions are created and
// populated through a Builder, and then converted to a GraphProto (Function.ToGraphProto), a FunctionProto
// (Function.ToFunctionProto) or a complete ModelProto (Function.Model).
//
// Statements refer to variables only by name: nothing is validated until serialization, and names that
// don't resolve within the function are left for the consumer of the proto to resolve (e.g.: outer scope
// variables of a sub-graph).
//
// Nothing in this package is safe for concurrent use: each concurrent construction must use its own Builder.
package ir
