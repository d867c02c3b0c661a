/*
NAME
  reflector.go

DESCRIPTION
  reflector.go computes LPC-10 reflection coefficients from a windowed
  frame of samples using the Leroux-Gueguen recursion (a numerically
  stable alternative to Levinson-Durbin), per §4.8.

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

import "gonum.org/v1/gonum/floats"

// Reflector holds the ten reflection coefficients (as reals, roughly in
// (-1,1)) and the residual RMS energy derived from a windowed frame.
type Reflector struct {
	k   [11]float64 // k[1..10] populated; k[0] unused, mirroring the recursion's 1-based indexing.
	rms float64
}

// correlations returns the first 11 autocorrelation lags (0..10) of buf.
func correlations(buf []float64) [11]float64 {
	var out [11]float64
	for lag := range out {
		out[lag] = floats.Dot(buf[:len(buf)-lag], buf[lag:])
	}
	return out
}

// NewReflector derives reflection coefficients and residual energy from a
// windowed frame buf via the Leroux-Gueguen recursion.
func NewReflector(buf []float64) *Reflector {
	r := &Reflector{}
	r.translate(correlations(buf), len(buf))
	return r
}

// translate runs the Leroux-Gueguen recursion over autocorrelations c to
// populate r.k[1..10] and r.rms, per §4.8:
//
//	k[1] = -c[1]/c[0]
//	d[1] = c[1], d[2] = c[0] + k[1]*c[1]
//	for i = 2..10:
//	  y = c[i]; b[1] = y
//	  for j = 1..i-1:
//	    b[j+1] = d[j] + k[j]*y
//	    y     += k[j]*d[j]
//	    d[j]   = b[j]
//	  k[i] = -y/d[i]
//	  d[i+1] = d[i] + k[i]*y
//	  d[i]   = b[i]
//	rms = d[11]/n * 32768
func (r *Reflector) translate(c [11]float64, n int) {
	if c[0] == 0 {
		return
	}

	var b [11]float64
	var d [12]float64

	r.k[1] = -c[1] / c[0]
	d[1] = c[1]
	d[2] = c[0] + r.k[1]*c[1]

	for i := 2; i <= 10; i++ {
		y := c[i]
		b[1] = y
		for j := 1; j < i; j++ {
			b[j+1] = d[j] + r.k[j]*y
			y += r.k[j] * d[j]
			d[j] = b[j]
		}
		r.k[i] = -y / d[i]
		d[i+1] = d[i] + r.k[i]*y
		d[i] = b[i]
	}
	r.rms = d[11] / float64(n) * 32768
}

// K returns the ten reflection coefficients k[1]..k[10], in order.
func (r *Reflector) K() [10]float64 {
	var out [10]float64
	copy(out[:], r.k[1:])
	return out
}

// RMS returns the residual-energy proxy used to derive the encoder's
// energy parameter.
func (r *Reflector) RMS() float64 {
	return r.rms
}

// IsUnvoiced is the legacy k1>0.3 voicing fallback mentioned in §9. It is
// kept for experimentation but is not on the canonical voicing-decision
// path (see encoder.go's confidence-based gate).
func (r *Reflector) IsUnvoiced() bool {
	const unvoicedThreshold = 0.3
	return r.k[1] > unvoicedThreshold
}
