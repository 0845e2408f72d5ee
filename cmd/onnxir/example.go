// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/gomlx/onnxscript/internal/examplemodels"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/onnxscript/ir"
	"github.com/gomlx/onnxscript/pkg/support/fsutil"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// exampleProducer is the producer name set in the example models.
const exampleProducer = "onnxir"

// buildExample builds the model of the example function name.
func buildExample(name string) (*protos.ModelProto, error) {
	models, err := examplemodels.Build(ir.NewBuilder())
	if err != nil {
		return nil, err
	}
	f := models.Lookup(name)
	if f == nil {
		var names []string
		for _, f := range models.All() {
			names = append(names, f.Name())
		}
		return nil, errors.Errorf("unknown example %q, valid examples are %q", name, names)
	}
	return f.Model().
		WithProducer(exampleProducer, "").
		WithDocString(f.Function().Docstring()).
		WithMetadata("example", name).
		Done()
}

// writeExample writes the model of the example function name to path.
// An existing file is only replaced if overwrite is true.
func writeExample(path, name string, overwrite bool) error {
	exists, err := fsutil.FileExists(path)
	if err != nil {
		return err
	}
	if exists && !overwrite {
		return errors.Errorf("%q already exists, use -overwrite to replace it", path)
	}
	model, err := buildExample(name)
	if err != nil {
		return err
	}
	if err = protos.WriteModelFile(path, model); err != nil {
		return err
	}
	klog.V(1).Infof("Wrote example %q to %q", name, path)
	return nil
}
