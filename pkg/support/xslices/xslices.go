// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provide missing functionality to the slices package.
package xslices

// Copy creates a new (shallow) copy of T. A short cut to a call to `make` and then `copy`.
func Copy[T any](slice []T) []T {
	if len(slice) == 0 {
		return nil
	}
	slice2 := make([]T, len(slice))
	copy(slice2, slice)
	return slice2
}

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// MapErr is like Map, but fn may fail, in which case the first error is returned.
func MapErr[In, Out any](in []In, fn func(e In) (Out, error)) (out []Out, err error) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii], err = fn(e)
		if err != nil {
			return nil, err
		}
	}
	return
}
