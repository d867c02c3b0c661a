/*
NAME
  bitstream_test.go

DESCRIPTION
  bitstream_test.go tests BitStream against Output, the packing path it
  must invert bit-for-bit.

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

import "testing"

// TestBitStreamRoundTrip packs a sequence of arbitrary-width fields with
// Output and checks that BitStream reads back the same values in order.
func TestBitStreamRoundTrip(t *testing.T) {
	fields := []struct {
		val uint
		len int
	}{
		{0x5, 4}, {0x1, 1}, {0x3F, 6}, {0x17, 5}, {0x0, 5}, {0x3, 4},
		{0xF, 4}, {0x1, 1}, {0x2A, 6},
	}

	var out Output
	for _, f := range fields {
		out.pack(f.val, f.len)
	}

	bs := NewBitStream(out.Bytes())
	for i, f := range fields {
		got := bs.GetBits(f.len)
		if got != f.val {
			t.Errorf("field %d: GetBits(%d) = %#x, want %#x", i, f.len, got, f.val)
		}
	}
}

// TestBitStreamBitAddr checks that BitAddr tracks total bits consumed.
func TestBitStreamBitAddr(t *testing.T) {
	bs := NewBitStream([]byte{0xFF, 0xFF})
	bs.GetBits(3)
	bs.GetBits(5)
	bs.GetBits(4)
	if got, want := bs.BitAddr(), 12; got != want {
		t.Errorf("BitAddr() = %d, want %d", got, want)
	}
}

// TestReverseByte checks the bit-reversal helper against known values.
func TestReverseByte(t *testing.T) {
	tests := []struct{ in, want byte }{
		{0x00, 0x00},
		{0xFF, 0xFF},
		{0x01, 0x80},
		{0x80, 0x01},
		{0x0F, 0xF0},
		{0b00010110, 0b01101000},
	}
	for _, tt := range tests {
		if got := reverseByte(tt.in); got != tt.want {
			t.Errorf("reverseByte(%#08b) = %#08b, want %#08b", tt.in, got, tt.want)
		}
	}
}

// TestNewBitStreamNamedType exercises NewBitStream's generic constructor
// with a named []byte type, confirming polymorphism over byte buffers.
func TestNewBitStreamNamedType(t *testing.T) {
	type rawFrame []byte
	bs := NewBitStream(rawFrame{0xAA, 0x55})
	if bs.GetBits(8) != uint(reverseByte(0xAA)) {
		t.Error("NewBitStream over named []byte type did not read expected value")
	}
}
