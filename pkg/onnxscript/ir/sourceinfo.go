// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import "fmt"

// SourceInfo is the location in the user's source code a variable was declared at.
// It is only used to give context to error messages, and may be nil.
type SourceInfo struct {
	// Function where the variable was declared.
	Function string

	// File and Line of the declaration. Line is 1-based, 0 if unknown.
	File string
	Line int
}

// String implements fmt.Stringer.
func (info *SourceInfo) String() string {
	if info == nil {
		return "<unknown location>"
	}
	s := info.File
	if s == "" {
		s = "<unknown file>"
	}
	if info.Line > 0 {
		s = fmt.Sprintf("%s:%d", s, info.Line)
	}
	if info.Function != "" {
		s = fmt.Sprintf("%s (function %s)", s, info.Function)
	}
	return s
}

// Msg prefixes msg with the location, if known.
func (info *SourceInfo) Msg(msg string) string {
	if info == nil {
		return msg
	}
	return fmt.Sprintf("%s: %s", info, msg)
}
