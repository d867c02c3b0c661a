/*
NAME
  encoder.go

DESCRIPTION
  encoder.go implements Encoder, the single-pass LPC-10 analysis pipeline:
  it lowpass-filters and windows each 300-sample frame, estimates pitch and
  voicing, derives reflection coefficients via the Leroux-Gueguen
  recursion, and quantizes the result into the packed frame format, per §4
  and §9's canonical design.

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
	"math"
)

// voicingConfidenceThreshold is the minimum pitch-lag plausibility (in
// [0,1]) below which a frame is forced unvoiced, per §4.7.
const voicingConfidenceThreshold = 0.25

// lowpassCutoff and lowpassTaps parameterize the encoder's pitch-work
// lowpass conditioning filter (§2 step 1: 5th-order-equivalent Butterworth
// at 800Hz; here realized as a windowed-sinc FIR of comparable rolloff,
// since no Butterworth/IIR design library exists in the example pack —
// see DESIGN.md).
const (
	lowpassCutoff = 800.0
	lowpassTaps   = 100
)

// Encoder converts 8kHz mono 16-bit PCM into a packed LPC-10 bitstream.
// An Encoder is single-pass: construct one, call Encode once.
type Encoder struct {
	lp *lowpassFilter
}

// NewEncoder returns an Encoder ready to process 8kHz mono PCM.
func NewEncoder() (*Encoder, error) {
	lp, err := newLowpassFilter(lowpassCutoff, lowpassTaps)
	if err != nil {
		return nil, err
	}
	return &Encoder{lp: lp}, nil
}

// SampleRate is the fixed sample rate this codec operates at (§6).
const SampleRate = 8000

// Encode analyzes samples (8kHz mono, FrameSamples per frame, zero-padded
// for a final partial frame) and returns the packed LPC-10 bitstream,
// terminated with a stop frame.
func (e *Encoder) Encode(samples []int16) ([]byte, error) {
	buf := make([]float64, len(samples))
	for i, s := range samples {
		buf[i] = float64(s)
	}

	filtered, err := e.lp.apply(buf)
	if err != nil {
		return nil, err
	}

	hw := hammingWindow()
	var out Output
	nFrames := (len(samples) + FrameSamples - 1) / FrameSamples
	for i := 0; i < nFrames; i++ {
		base := i * FrameSamples
		windowed := applyWindow(sliceAt(buf, base, analysisWindowSamples), hw)
		filteredWindow := applyWindow(sliceAt(filtered, base, analysisWindowSamples), hw)

		rms := rmsOf(windowed)

		period := estimatePitch(filteredWindow)
		if period != 0 && !e.isPlausiblyVoiced(windowed, period) {
			period = 0
		}

		var conditioned []float64
		if period != 0 {
			conditioned = inverseChirpDeconvolve(windowed, int(period+0.5))
		} else {
			conditioned = preEmphasize(windowed, 0.9375)
		}
		refl := NewReflector(conditioned)

		out.frame(0.01*rms, period, refl.K())
	}
	out.stop()
	return out.Bytes(), nil
}

// isPlausiblyVoiced implements §4.7's voicing gate: a reflector fit at the
// candidate period over the windowed frame yields a confidence in [0,1];
// frames below voicingConfidenceThreshold are forced unvoiced.
func (e *Encoder) isPlausiblyVoiced(windowed []float64, period float64) bool {
	conditioned := inverseChirpDeconvolve(windowed, int(period+0.5))
	refl := NewReflector(conditioned)
	confidence := math.Abs(refl.k[1])
	return confidence >= voicingConfidenceThreshold
}

// sliceAt returns a copy of n samples of buf starting at base, zero-padding
// past the end of buf.
func sliceAt(buf []float64, base, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if base+i < len(buf) {
			out[i] = buf[base+i]
		}
	}
	return out
}

// rmsOf returns the root-sum-square of buf, matching the original
// encoder's energy normalization (§9 design notes).
func rmsOf(buf []float64) float64 {
	var sum float64
	for _, x := range buf {
		sum += x * x
	}
	return math.Sqrt(sum)
}
