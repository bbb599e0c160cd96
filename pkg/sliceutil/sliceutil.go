// Package sliceutil provides basic generic functions for operating over slices
package sliceutil

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Uniq returns the distinct values of input in order of first appearance.
func Uniq[T comparable](input []T) []T {
	if len(input) == 0 {
		return nil
	}

	found := make(map[T]struct{}, len(input))
	output := make([]T, 0, len(input))

	for _, value := range input {
		if _, seen := found[value]; seen {
			continue
		}

		found[value] = struct{}{}
		output = append(output, value)
	}

	return output
}

// FirstPositive returns the first positive value in the slice.
func FirstPositive[T Number](numbers ...T) T { //nolint:ireturn
	for _, curValue := range numbers {
		if curValue > 0 {
			return curValue
		}
	}

	return 0
}
