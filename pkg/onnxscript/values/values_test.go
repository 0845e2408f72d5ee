// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOp(t *testing.T) {
	relu := Opset15.Op("Relu")
	assert.Equal(t, "", relu.Domain())
	assert.Equal(t, int64(15), relu.Version())
	assert.Equal(t, "Relu", relu.String())
	assert.Same(t, Opset15, relu.Opset)

	this := CustomOpset("this", 1)
	selu := this.Op("MySelu")
	assert.Equal(t, "this.MySelu", selu.String())
	assert.Equal(t, "this@1", this.String())
	assert.Equal(t, "ai.onnx.ml@3", OpsetML3.String())
}
