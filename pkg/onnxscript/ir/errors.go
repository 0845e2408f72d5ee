// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import "github.com/pkg/errors"

// Errors returned by the package wrap one of these, test them with errors.Is.
var (
	// ErrInvalidName is returned when a variable has no name.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidCallee is returned when a statement is created without a valid operator reference.
	ErrInvalidCallee = errors.New("invalid callee")

	// ErrAlreadyExists is returned when registering a function with a (domain, name) already registered.
	ErrAlreadyExists = errors.New("already exists")

	// ErrSerialization is returned when a callable unit fails to convert itself to a FunctionProto.
	ErrSerialization = errors.New("serialization failed")

	// ErrInvalidAttribute is returned for attribute values that can't be represented in ONNX.
	ErrInvalidAttribute = errors.New("invalid attribute")
)
