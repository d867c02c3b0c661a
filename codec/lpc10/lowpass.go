/*
NAME
  lowpass.go

DESCRIPTION
  lowpass.go designs and applies the windowed-sinc FIR lowpass filter the
  encoder runs once over its whole input before pitch estimation (§2 step
  1), via FFT convolution.

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

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"github.com/pkg/errors"
)

// lowpassFilter holds the coefficients of a windowed-sinc FIR lowpass
// filter designed for SampleRate-Hz audio.
type lowpassFilter struct {
	coeffs []float64
}

// newLowpassFilter designs a lowpass filter cutting off at fc Hz with the
// given number of FIR taps, for audio sampled at SampleRate.
func newLowpassFilter(fc float64, taps int) (*lowpassFilter, error) {
	if fc <= 0 || fc >= float64(SampleRate)/2 {
		return nil, errors.Errorf("cutoff frequency %v out of bounds for %dHz audio", fc, SampleRate)
	}
	if taps <= 0 {
		return nil, errors.New("cannot design a filter with taps <= 0")
	}

	fd := fc / float64(SampleRate)
	size := taps + 1
	coeffs := make([]float64, size)
	b := 2 * math.Pi * fd
	winData := window.FlatTop(size)
	for n := 0; n < taps/2; n++ {
		c := float64(n) - float64(taps)/2
		y := math.Sin(c*b) / (math.Pi * c)
		coeffs[n] = y * winData[n]
		coeffs[size-1-n] = coeffs[n]
	}
	coeffs[taps/2] = 2 * fd * winData[taps/2]

	return &lowpassFilter{coeffs: coeffs}, nil
}

// apply convolves buf with the filter's impulse response.
func (f *lowpassFilter) apply(buf []float64) ([]float64, error) {
	out, err := fastConvolve(buf, f.coeffs)
	if err != nil {
		return nil, errors.Wrap(err, "lowpass convolution failed")
	}
	return out, nil
}

// fastConvolve convolves x and h in O(n log n) via zero-padded FFTs.
func fastConvolve(x, h []float64) ([]float64, error) {
	if len(x) == 0 || len(h) == 0 {
		return nil, errors.New("convolution requires slices of length > 0")
	}

	convLen := len(x) + len(h) - 1
	padLen := int(math.Pow(2, math.Ceil(math.Log2(float64(convLen)))))

	xPadded := make([]float64, padLen)
	copy(xPadded, x)
	hPadded := make([]float64, padLen)
	copy(hPadded, h)

	xFFT, hFFT := fft.FFTReal(xPadded), fft.FFTReal(hPadded)

	yFFT := make([]complex128, padLen)
	for i := range xFFT {
		yFFT[i] = xFFT[i] * hFFT[i]
	}

	iy := fft.IFFT(yFFT)
	y := make([]float64, convLen)
	for i := range y {
		y[i] = real(iy[i])
	}
	return y, nil
}
