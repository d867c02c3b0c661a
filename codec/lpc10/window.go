/*
NAME
  window.go

DESCRIPTION
  window.go provides the fixed-length Hamming analysis window and simple
  difference filters (first-order pre-emphasis, and a pitch-period
  difference in inverseChirpDeconvolve) used to
  condition a frame of samples before pitch estimation and reflection
  analysis, per §4/§9.

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

import "github.com/mjibson/go-dsp/window"

// analysisWindowSamples is the length of the Hamming window applied before
// pitch estimation and reflection analysis (§4, §9).
const analysisWindowSamples = 300

// hammingWindow returns the analysisWindowSamples-long Hamming window,
// reusing the same window-generation library the lowpass FIR design in
// lowpass.go draws from.
func hammingWindow() []float64 {
	return window.Hamming(analysisWindowSamples)
}

// applyWindow multiplies buf (padded with zeros if shorter than the
// window) by the Hamming window and returns the result.
func applyWindow(buf []float64, hw []float64) []float64 {
	out := make([]float64, len(hw))
	for i := range out {
		var s float64
		if i < len(buf) {
			s = buf[i]
		}
		out[i] = s * hw[i]
	}
	return out
}

// preEmphasize applies a first-order pre-emphasis filter y[i] = x[i] -
// a*x[i-1], used to condition unvoiced frames before reflection analysis.
func preEmphasize(buf []float64, a float64) []float64 {
	out := make([]float64, len(buf))
	var prev float64
	for i, x := range buf {
		out[i] = x - a*prev
		prev = x
	}
	return out
}

// inverseChirpDeconvolve conditions voiced frames before reflection
// analysis by subtracting from each sample the sample one pitch period
// earlier: out[i] = buf[i] - buf[i-period], with samples before the start
// of buf taken as zero. It does not use the chirp table and does not
// invert the chirp's impulse response.
func inverseChirpDeconvolve(buf []float64, period int) []float64 {
	if period <= 0 {
		return append([]float64(nil), buf...)
	}
	out := make([]float64, len(buf))
	for i, x := range buf {
		var prev float64
		if i >= period {
			prev = buf[i-period]
		}
		out[i] = x - prev
	}
	return out
}
