// Package testutil provides small helpers shared by the test suites.
package testutil

import (
	"math"
	"testing"
)

// AssertClose fails the test when got differs from want by more than the
// given relative tolerance. Absolute comparison is used near zero where a
// relative bound degenerates.
func AssertClose(t *testing.T, name string, got, want, relTol float64) {
	t.Helper()
	scale := math.Abs(want)
	if scale < 1.0 {
		scale = 1.0
	}
	if math.Abs(got-want) > relTol*scale {
		t.Errorf("%s = %v, expected %v (relative tolerance %v)", name, got, want, relTol)
	}
}

// AssertWithin fails the test when got differs from want by more than the
// given absolute tolerance.
func AssertWithin(t *testing.T, name string, got, want, absTol float64) {
	t.Helper()
	if math.Abs(got-want) > absTol {
		t.Errorf("%s = %v, expected %v (absolute tolerance %v)", name, got, want, absTol)
	}
}
