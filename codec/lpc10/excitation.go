/*
NAME
  excitation.go

DESCRIPTION
  excitation.go generates the per-sample excitation signal that drives the
  synthesis lattice: a table-driven chirp repeated every pitch period for
  voiced speech, or a gated 16-bit LFSR for unvoiced speech, per §4.4.

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

// nextVoiced returns the next voiced-excitation sample and advances the
// chirp phase counter, wrapping it to 0 every period samples.
func nextVoiced(params *Params, periodCounter *uint8) int16 {
	var c int8
	if int(*periodCounter) < len(chirp) {
		c = chirp[*periodCounter]
	}
	u10 := int16((int32(c) * int32(params.Energy)) >> 6)
	*periodCounter++
	if *periodCounter >= params.Period {
		*periodCounter = 0
	}
	return u10
}

// nextUnvoiced advances the 16-bit Galois LFSR (tap mask 0xB800, seeded
// non-zero) and returns ±energy selected by the new low bit.
func nextUnvoiced(params *Params, rand *uint16) int16 {
	if *rand&1 != 0 {
		*rand = (*rand >> 1) ^ 0xB800
	} else {
		*rand = *rand >> 1
	}
	if *rand&1 != 0 {
		return int16(params.Energy)
	}
	return -int16(params.Energy)
}
