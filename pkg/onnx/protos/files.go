// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package protos

import (
	"os"

	"github.com/gomlx/onnxscript/pkg/support/fsutil"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// ReadModelFile reads and decodes an .onnx model file. A leading "~" in path is expanded to the home directory.
func ReadModelFile(path string) (*ModelProto, error) {
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ONNX model from %q", path)
	}
	m := &ModelProto{}
	if err := proto.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode ONNX model in %q", path)
	}
	return m, nil
}

// WriteModelFile encodes the model and writes it to path. A leading "~" in path is expanded to the home
// directory.
func WriteModelFile(path string, m *ModelProto) error {
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return err
	}
	data, err := proto.Marshal(m)
	if err != nil {
		return errors.Wrapf(err, "failed to encode ONNX model for %q", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write ONNX model to %q", path)
	}
	return nil
}
