// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fsutil

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.onnx")
	assert.False(t, must.M1(FileExists(path)))
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
	assert.True(t, must.M1(FileExists(path)))
	assert.True(t, must.M1(FileExists(dir)))
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/tmp/x.onnx", must.M1(ExpandHome("/tmp/x.onnx")))
	assert.Equal(t, "x.onnx", must.M1(ExpandHome("x.onnx")))

	usr, err := user.Current()
	if err != nil {
		t.Skipf("no current user: %v", err)
	}
	assert.Equal(t, filepath.Join(usr.HomeDir, "models/x.onnx"), must.M1(ExpandHome("~/models/x.onnx")))
	assert.Equal(t, filepath.Clean(usr.HomeDir), must.M1(ExpandHome("~")))
	if usr.Username != "" {
		assert.Equal(t, filepath.Join(usr.HomeDir, "x.onnx"), must.M1(ExpandHome("~"+usr.Username+"/x.onnx")))
	}
	_, err = ExpandHome("~no_such_user_for_sure/x.onnx")
	require.Error(t, err)
}
