/*
NAME
  lattice.go

DESCRIPTION
  lattice.go implements the 10-stage inverse-lattice synthesis filter that
  turns an excitation sample into a synthesized PCM sample, per §4.5. All
  arithmetic is fixed-point: reflection coefficients are Q9, multiplies are
  done in 32-bit signed and narrowed back to 16-bit with an arithmetic
  shift, exactly matching the reference hardware.

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

// synthesize runs one step of the 10-stage lattice filter: it consumes an
// excitation sample u10, updates the delay line x in place, and returns
// the synthesized output sample (also stored into x[0] for the next call).
func synthesize(k *[10]int16, x *[11]int16, u10 int16) int16 {
	u := u10
	for i := 9; i >= 0; i-- {
		u -= int16((int32(k[i]) * int32(x[i])) >> 9)
		x[i+1] = x[i] + int16((int32(k[i])*int32(u))>>9)
	}
	out := u
	switch {
	case out < -16384:
		out = -16384
	case out > 16383:
		out = 16383
	}
	x[0] = out
	return out
}
