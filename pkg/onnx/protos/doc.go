// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package protos holds the ONNX protocol-buffer messages, generated from onnx.proto, and helpers to read and
// write .onnx model files.
//
// Serialization is done with google.golang.org/protobuf: use proto.Marshal, proto.Unmarshal and
// proto.Clone on these messages. Fields not modeled by onnx.proto are kept as unknown fields and written back.
package protos

//go:generate protoc --go_out=. --go_opt=paths=source_relative onnx.proto
