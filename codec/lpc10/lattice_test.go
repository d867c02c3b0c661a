/*
NAME
  lattice_test.go

DESCRIPTION
  lattice_test.go tests the 10-stage fixed-point lattice synthesis filter.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package lpc10

import "testing"

// TestSynthesizeClamps checks that synthesize's output is always clamped
// to the 15-bit signed range [-16384, 16383], regardless of input scale.
func TestSynthesizeClamps(t *testing.T) {
	k := [10]int16{500, -500, 500, -500, 500, -500, 500, -500, 500, -500}
	var x [11]int16
	for i := 0; i < 1000; i++ {
		out := synthesize(&k, &x, 32000)
		if out < -16384 || out > 16383 {
			t.Fatalf("iteration %d: synthesize() = %d, outside clamp range", i, out)
		}
	}
}

// TestSynthesizeZeroExcitationZeroCoeffs checks that all-zero reflection
// coefficients and zero excitation produce silence, and leave state at 0.
func TestSynthesizeZeroExcitationZeroCoeffs(t *testing.T) {
	var k [10]int16
	var x [11]int16
	for i := 0; i < 10; i++ {
		out := synthesize(&k, &x, 0)
		if out != 0 {
			t.Errorf("iteration %d: synthesize() = %d, want 0", i, out)
		}
	}
}

// TestSynthesizeUpdatesState checks that the lattice state vector x is
// shifted: x[0] always ends up equal to the function's return value.
func TestSynthesizeUpdatesState(t *testing.T) {
	k := [10]int16{100, -50, 25, 10, 5, 0, 0, 0, 0, 0}
	var x [11]int16
	out := synthesize(&k, &x, 5000)
	if x[0] != out {
		t.Errorf("x[0] = %d, want %d (return value)", x[0], out)
	}
}
