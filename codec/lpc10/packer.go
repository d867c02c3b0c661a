/*
NAME
  packer.go

DESCRIPTION
  packer.go accumulates quantized frame fields into the LPC-10 bitstream:
  each field is packed MSB-first, but bits are written into the output
  byte LSB-first-within-byte, which is the exact inverse of BitStream's
  bit-reversed read path (see bitstream.go), so the round-trip property of
  §8.1 holds bit-for-bit.

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

import "math"

// Output accumulates a packed LPC-10 bitstream. The zero value is ready
// to use.
type Output struct {
	buf    []byte
	bitPos int
}

// bit appends a single 0/1 bit to the output, starting a new byte whenever
// the previous one filled up.
func (o *Output) bit(b uint) {
	if o.bitPos == 0 {
		o.buf = append(o.buf, 0)
	}
	o.buf[len(o.buf)-1] |= byte(b&1) << uint(o.bitPos)
	o.bitPos = (o.bitPos + 1) % 8
}

// pack appends the low len bits of val, most-significant bit first.
func (o *Output) pack(val uint, len int) {
	for i := 0; i < len; i++ {
		o.bit((val >> uint(len-1-i)) & 1)
	}
}

// packQuantized quantizes x against table and packs the resulting index
// using the minimal fixed width for table's size.
func packQuantized[T ~int16 | ~uint16 | ~uint8](o *Output, table []T, x T) {
	o.pack(quantize(table, x), tableBits(len(table)))
}

// Bytes returns the accumulated bitstream, padding the final partial byte
// with zero bits (already done implicitly: unset bits default to 0).
func (o *Output) Bytes() []byte {
	return o.buf
}

// frame quantizes and packs one encoded speech frame: energy (capped at
// 5514, the table's top entry below the stop code, per §4.9), a repeat flag (always 0 — this
// encoder never emits repeat frames), period, k[0:4], and, if voiced,
// k[4:10].
func (o *Output) frame(energy, period float64, k [10]float64) {
	const maxEnergy = 5514
	e := energy
	if e > maxEnergy {
		e = maxEnergy
	}
	energyCode := quantize(energyTable[:], uint16(math.Round(e)))
	o.pack(energyCode, 4)
	if energyCode == 0 {
		return
	}

	o.pack(0, 1) // repeat flag.
	packQuantized(o, periodTable[:], uint8(math.Round(period)))
	n := 4
	if period != 0 {
		n = 10
	}
	for i := 0; i < n; i++ {
		packQuantized(o, kTables[i], q9(k[i]))
	}
}

// stop emits the stream terminator: energy index 0xF followed by 7 zero
// padding bits, per §4.9. These 11 bits do not by themselves end on a byte
// boundary; any unused tail of the final byte is left zero (see Bytes).
func (o *Output) stop() {
	o.pack(0xF, 4)
	o.pack(0, 7)
}

// q9 converts a real reflection coefficient (roughly in (-1,1)) to its
// rounded Q9 fixed-point representation (real * 512).
func q9(k float64) int16 {
	return int16(math.Round(k * 512))
}

