// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package to complements the SDK's pointer helpers with dereferencing ones,
// for reading optional fields off resource manager responses.
package to

// ValOrZero returns the value of the pointer, or the zero value of the type
// if the pointer is nil.
func ValOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// Vals dereferences a slice of pointers, dropping nil entries.
func Vals[T any](vs []*T) []T {
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		if v == nil {
			continue
		}
		out = append(out, *v)
	}
	return out
}
