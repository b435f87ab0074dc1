package util

import (
	"github.com/rjNemo/underscore"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Keep the first element for each distinct selected key, preserving order.
func UniqueBy[T any, V comparable](ls []T, selector func(v T) V) []T {
	res := []T{}
	seen := []V{}
	for _, e := range ls {
		s := selector(e)
		if !underscore.Contains(seen, s) {
			seen = append(seen, s)
			res = append(res, e)
		}
	}
	return res
}

// The keys of a map in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
