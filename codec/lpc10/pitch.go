/*
NAME
  pitch.go

DESCRIPTION
  pitch.go estimates the pitch period of a windowed, lowpass-filtered
  frame via normalized autocorrelation, parabolic interpolation around the
  best integer lag, and a sub-multiple rescue pass that corrects pitch
  halving/doubling errors, per §4.6.

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

	"gonum.org/v1/gonum/floats"
)

const (
	minPeriod = 16
	maxPeriod = 160
)

// pitchEstimator holds the normalized autocorrelation coefficients for
// lags in [minPeriod-1, maxPeriod+1], indexed directly by lag.
type pitchEstimator struct {
	coeffs               []float64 // coeffs[lag], lag in [minPeriod-1, maxPeriod+1]
	minPeriod, maxPeriod int
}

// newPitchEstimator computes normalized autocorrelation
//
//	c[L] = sum(buf[i]*buf[i+L]) / sqrt(sum(buf[i]^2) * sum(buf[i+L]^2))
//
// for L in [lo, hi] over buf.
func newPitchEstimator(buf []float64, minP, maxP int) *pitchEstimator {
	lo, hi := minP-1, maxP+1
	coeffs := make([]float64, hi+1)
	for lag := lo; lag <= hi; lag++ {
		if lag >= len(buf) {
			continue
		}
		a := buf[:len(buf)-lag]
		b := buf[lag:]
		sosBeg := floats.Dot(a, a)
		sosEnd := floats.Dot(b, b)
		sum := floats.Dot(a, b)
		denom := math.Sqrt(sosBeg * sosEnd)
		if denom != 0 {
			coeffs[lag] = sum / denom
		}
	}
	return &pitchEstimator{coeffs: coeffs, minPeriod: minP, maxPeriod: maxP}
}

// bestPeriod finds the integer lag in [minPeriod, maxPeriod) maximizing
// the normalized autocorrelation.
func (pe *pitchEstimator) bestPeriod() int {
	best := pe.minPeriod
	for p := best + 1; p < pe.maxPeriod; p++ {
		if pe.coeffs[p] > pe.coeffs[best] {
			best = p
		}
	}
	return best
}

// interpolated refines best via parabolic interpolation of its immediate
// neighbors; if the refinement would move less than half a sample, the
// refined estimate is used, else the integer best is kept.
func (pe *pitchEstimator) interpolated(best int) float64 {
	mid := pe.coeffs[best]
	left := pe.coeffs[best-1]
	right := pe.coeffs[best+1]
	dd := 2*mid - left - right
	if dd == 0 {
		return float64(best)
	}
	delta := 0.5 * (right - left) / dd
	if math.Abs(delta) < 0.5 {
		return float64(best) + delta
	}
	return float64(best)
}

// estimate returns the estimated pitch period, or 0 if no plausible pitch
// was found (best lag is not a strict local maximum of the correlation).
func (pe *pitchEstimator) estimate() float64 {
	best := pe.bestPeriod()
	bestVal := pe.coeffs[best]
	if bestVal <= 0 || bestVal <= pe.coeffs[best-1] || bestVal <= pe.coeffs[best+1] {
		return 0
	}

	maxMultiple := best / pe.minPeriod
	estimate := pe.interpolated(best)
	const subMultipleThreshold = 0.9
	thresh := subMultipleThreshold * pe.coeffs[best]

	for m := maxMultiple; m >= 1; m-- {
		candidate := estimate / float64(m)
		strong := true
		for i := 0; i < m; i++ {
			lag := int(math.Round(float64(i+1) * candidate))
			if lag < 0 || lag >= len(pe.coeffs) {
				strong = false
				break
			}
			if pe.coeffs[lag] != 0 && pe.coeffs[lag] < thresh {
				strong = false
				break
			}
		}
		if strong {
			return candidate
		}
	}
	return estimate
}

// estimatePitch runs the full pitch-estimation pipeline over a windowed,
// lowpass-filtered frame and returns the estimated period in samples, or 0
// for an unvoiced/pitchless frame.
func estimatePitch(buf []float64) float64 {
	pe := newPitchEstimator(buf, minPeriod, maxPeriod)
	return pe.estimate()
}
