// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"path/filepath"
	"slices"
	"strings"
)

// MinimalUniquePaths returns, for each path, the shortest identifier that distinguishes it from the other
// paths: the base name if there is only one path, or the path components that differ from the other paths.
func MinimalUniquePaths(paths ...string) []string {
	if len(paths) == 1 {
		return []string{filepath.Base(paths[0])}
	}
	parts := make([][]string, len(paths))
	for ii, path := range paths {
		parts[ii] = strings.Split(filepath.Clean(path), string(filepath.Separator))
	}
	result := make([]string, len(paths))
	for ii, components := range parts {
		// Positions where this path differs from any other path, in increasing order.
		var diffs []int
		for jj, other := range parts {
			if ii == jj {
				continue
			}
			for kk := range min(len(components), len(other)) {
				if components[kk] != other[kk] && !slices.Contains(diffs, kk) {
					diffs = append(diffs, kk)
				}
			}
		}
		slices.Sort(diffs)
		switch len(diffs) {
		case 0:
			result[ii] = components[len(components)-1]
		case 1:
			result[ii] = components[diffs[0]]
		default:
			result[ii] = components[diffs[0]] + "..." + components[diffs[len(diffs)-1]]
		}
	}
	return result
}
