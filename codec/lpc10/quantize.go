/*
NAME
  quantize.go

DESCRIPTION
  quantize.go implements nearest-neighbor quantization against a fixed
  codebook table, per §4.9/§8.6: ties break toward the lower index.

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

// quantize returns the index into table whose value minimizes |table[i]-x|,
// picking the lower index on a tie.
func quantize[T ~int16 | ~uint16 | ~uint8](table []T, x T) uint {
	best := 0
	bestErr := int64(-1)
	for i, v := range table {
		d := int64(v) - int64(x)
		err := d * d
		if bestErr < 0 || err < bestErr {
			bestErr = err
			best = i
		}
	}
	return uint(best)
}

// tableBits returns the number of bits needed to index a table of the
// given length (the tables here are all powers of two in size).
func tableBits(n int) int {
	bits := 0
	for 1<<bits < n {
		bits++
	}
	return bits
}
