/*
NAME
  params_test.go

DESCRIPTION
  params_test.go tests the frame grammar reader and subframe interpolator.

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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParamsReadSilence checks that a zero energy index produces a zeroed,
// non-stop Params with nothing further consumed.
func TestParamsReadSilence(t *testing.T) {
	var out Output
	out.pack(0, 4)

	bs := NewBitStream(out.Bytes())
	var p Params
	p.read(bs)

	if p.Energy != 0 || p.IsStop {
		t.Errorf("got Energy=%d IsStop=%v, want Energy=0 IsStop=false", p.Energy, p.IsStop)
	}
	if got, want := bs.BitAddr(), 4; got != want {
		t.Errorf("BitAddr() = %d, want %d", got, want)
	}
}

// TestParamsReadStop checks that the 0xF energy index sets IsStop and
// zeroes K.
func TestParamsReadStop(t *testing.T) {
	var out Output
	out.stop()

	bs := NewBitStream(out.Bytes())
	var p Params
	p.read(bs)

	if !p.IsStop {
		t.Error("IsStop = false, want true")
	}
	if !cmp.Equal(p.K, [10]int16{}) {
		t.Errorf("K = %v, want zeroed", p.K)
	}
}

// TestParamsReadVoicedFrame round-trips a full voiced frame through
// Output.frame and Params.read.
func TestParamsReadVoicedFrame(t *testing.T) {
	k := [10]float64{-0.1, 0.2, -0.3, 0.1, 0.05, -0.2, 0.15, -0.05, 0.2, -0.1}
	const period = 50.0
	const energy = 1000.0

	var out Output
	out.frame(energy, period, k)

	bs := NewBitStream(out.Bytes())
	var p Params
	p.read(bs)

	if !p.isVoiced() {
		t.Fatal("expected voiced frame")
	}
	if p.Energy == 0 {
		t.Error("expected nonzero energy")
	}
	for i, kv := range p.K {
		if kv == 0 && i < 4 {
			t.Errorf("K[%d] unexpectedly zero for a voiced frame", i)
		}
	}
}

// TestParamsReadUnvoicedFrame checks K[4:10] are left zero for an unvoiced
// frame (period == 0).
func TestParamsReadUnvoicedFrame(t *testing.T) {
	k := [10]float64{-0.1, 0.2, -0.3, 0.1, 0, 0, 0, 0, 0, 0}
	var out Output
	out.frame(500, 0, k)

	bs := NewBitStream(out.Bytes())
	var p Params
	p.read(bs)

	if p.isVoiced() {
		t.Fatal("expected unvoiced frame")
	}
	for i := 4; i < 10; i++ {
		if p.K[i] != 0 {
			t.Errorf("K[%d] = %d, want 0 for unvoiced frame", i, p.K[i])
		}
	}
}

// TestInterpolate checks the lerp-based subframe interpolation's endpoints
// (t=0 gives last, t=8 gives next).
func TestInterpolate(t *testing.T) {
	last := Params{Energy: 100, Period: 40, K: [10]int16{100, 200, 300, 400, 500, 600, 700, 10, 20, 30}}
	next := Params{Energy: 200, Period: 80, K: [10]int16{200, 300, 400, 500, 600, 700, 800, 20, 30, 40}}

	got0 := last.interpolate(&next, 0)
	want0 := Params{Energy: last.Energy, Period: last.Period, K: last.K}
	if diff := cmp.Diff(want0, got0); diff != "" {
		t.Errorf("interpolate(t=0) mismatch (-want +got):\n%s", diff)
	}

	got8 := last.interpolate(&next, 8)
	want8 := Params{Energy: next.Energy, Period: next.Period, K: next.K}
	if diff := cmp.Diff(want8, got8); diff != "" {
		t.Errorf("interpolate(t=8) mismatch (-want +got):\n%s", diff)
	}
}

// TestInhibitInterp checks the three inhibit conditions of §4.3.
func TestInhibitInterp(t *testing.T) {
	tests := []struct {
		name     string
		last, new Params
		want     bool
	}{
		{"voicing flip", Params{Period: 40}, Params{Period: 0, Energy: 1}, true},
		{"onset after silence", Params{Energy: 0}, Params{Energy: 100}, true},
		{"silence after unvoiced", Params{Period: 0, Energy: 50}, Params{Energy: 0}, true},
		{"steady voiced", Params{Period: 40, Energy: 100}, Params{Period: 42, Energy: 110}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.last.inhibitInterp(&tt.new); got != tt.want {
				t.Errorf("inhibitInterp() = %v, want %v", got, tt.want)
			}
		})
	}
}
