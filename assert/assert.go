// Package assert provides the assertion primitives for harness test cases.
//
// Every assertion is a thin named wrapper around harness.Evaluate with a
// fixed predicate; on an unmet condition it raises a *harness.Failure whose
// message names the condition and, for the comparison assertions, dumps the
// operand values.
package assert

import (
	"cmp"

	"github.com/roach88/attest/harness"
)

// Equal asserts actual == expected.
func Equal[T comparable](actual, expected T) {
	harness.Evaluate("assertEqual", func(v ...T) bool { return v[0] == v[1] }, true, actual, expected)
}

// NotEqual asserts actual != expected.
func NotEqual[T comparable](actual, expected T) {
	harness.Evaluate("assertNotEqual", func(v ...T) bool { return v[0] != v[1] }, true, actual, expected)
}

// True asserts that value is true.
func True(value bool) {
	harness.Evaluate("assertTrue", func(v ...bool) bool { return v[0] }, true, value)
}

// False asserts that value is false.
func False(value bool) {
	harness.Evaluate("assertFalse", func(v ...bool) bool { return !v[0] }, true, value)
}

// Lt asserts lhs < rhs.
func Lt[T cmp.Ordered](lhs, rhs T) {
	harness.Evaluate("assertLt", func(v ...T) bool { return v[0] < v[1] }, true, lhs, rhs)
}

// Lte asserts lhs <= rhs.
func Lte[T cmp.Ordered](lhs, rhs T) {
	harness.Evaluate("assertLte", func(v ...T) bool { return v[0] <= v[1] }, true, lhs, rhs)
}

// Gt asserts lhs > rhs.
func Gt[T cmp.Ordered](lhs, rhs T) {
	harness.Evaluate("assertGt", func(v ...T) bool { return v[0] > v[1] }, true, lhs, rhs)
}

// Gte asserts lhs >= rhs.
func Gte[T cmp.Ordered](lhs, rhs T) {
	harness.Evaluate("assertGte", func(v ...T) bool { return v[0] >= v[1] }, true, lhs, rhs)
}
