/*
NAME
  tables.go

DESCRIPTION
  tables.go contains the fixed codebooks that make up the LPC-10 wire
  format: the energy and period dequantization tables, the ten
  reflection-coefficient tables, and the voiced-excitation chirp. These
  values are part of the bitstream grammar (see package doc) and must be
  embedded verbatim; encoder and decoder both index into the same tables.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package lpc10 implements an LPC-10-style speech codec: an encoder that
// converts 8kHz mono 16-bit PCM into a compact bitstream of quantized
// speech frames, and a decoder that synthesizes PCM from that bitstream
// using bit-exact, fixed-point integer arithmetic.
package lpc10

// energyTable dequantizes the 4-bit energy index into an unsigned
// amplitude scale. Index 0 means silence.
var energyTable = [0x10]uint16{
	0, 52, 87, 123, 174, 246, 348, 491, 694, 981, 1385, 1957, 2764, 3904, 5514, 7789,
}

// periodTable dequantizes the 6-bit period index into a pitch period in
// samples. Index 0 means unvoiced.
var periodTable = [0x40]uint8{
	0, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37,
	38, 39, 40, 41, 42, 44, 46, 48, 50, 52, 53, 56, 58, 60, 62, 65, 68, 70, 72, 76, 78, 80, 84, 86,
	91, 94, 98, 101, 105, 109, 114, 118, 122, 127, 132, 137, 142, 148, 153, 159,
}

// k1Table through k10Table dequantize reflection coefficient indices into
// signed Q9 fixed-point values (integer / 512 is the real coefficient).
var (
	k1Table = [0x20]int16{
		-501, -498, -497, -495, -493, -491, -488, -482, -478, -474, -469, -464, -459, -452, -445, -437,
		-412, -380, -339, -288, -227, -158, -81, -1, 80, 157, 226, 287, 337, 379, 411, 436,
	}
	k2Table = [0x20]int16{
		-328, -303, -274, -244, -211, -175, -138, -99, -59, -18, 24, 64, 105, 143, 180, 215, 248, 278,
		306, 331, 354, 374, 392, 408, 422, 435, 445, 455, 463, 470, 476, 506,
	}
	k3Table = [0x10]int16{
		-441, -387, -333, -279, -225, -171, -117, -63, -9, 45, 98, 152, 206, 260, 314, 368,
	}
	k4Table = [0x10]int16{
		-328, -273, -217, -161, -106, -50, 5, 61, 116, 172, 228, 283, 339, 394, 450, 506,
	}
	k5Table = [0x10]int16{
		-328, -282, -235, -189, -142, -96, -50, -3, 43, 90, 136, 182, 229, 275, 322, 368,
	}
	k6Table = [0x10]int16{
		-256, -212, -168, -123, -79, -35, 10, 54, 98, 143, 187, 232, 276, 320, 365, 409,
	}
	k7Table = [0x10]int16{
		-308, -260, -212, -164, -117, -69, -21, 27, 75, 122, 170, 218, 266, 314, 361, 409,
	}
	k8Table  = [0x08]int16{-256, -161, -66, 29, 124, 219, 314, 409}
	k9Table  = [0x08]int16{-256, -176, -96, -15, 65, 146, 226, 307}
	k10Table = [0x08]int16{-205, -132, -59, 14, 87, 160, 234, 307}
)

// kTables indexes k1Table..k10Table by coefficient number (0-9), letting
// the frame reader and packer loop over all ten fields instead of
// repeating per-coefficient code.
var kTables = [10][]int16{
	k1Table[:], k2Table[:], k3Table[:], k4Table[:],
	k5Table[:], k6Table[:], k7Table[:], k8Table[:], k9Table[:], k10Table[:],
}

// kBits gives the index width in bits for each of the 10 reflection
// coefficients, per the frame grammar in §6.
var kBits = [10]int{5, 5, 4, 4, 4, 4, 4, 3, 3, 3}

// chirp is the fixed impulse response used as voiced excitation; all of its
// nonzero entries lie within the first 21. Values are read as signed bytes.
var chirp = [52]int8{
	0x00, 0x03, 0x0f, 0x28, 0x4c, 0x6c, 0x71, 0x50, 0x25, 0x26, 0x4c, 0x44, 0x1a, 0x32, 0x3b, 0x13,
	0x37, 0x1a, 0x25, 0x1f, 0x1d, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}
