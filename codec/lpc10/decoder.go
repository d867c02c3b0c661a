/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements Decoder, the LPC-10 synthesis engine: it consumes
  one frame of parameters every 200 samples and produces one synthesized
  PCM sample per call to GetSample. All decoder state is fixed-size; no
  heap allocation occurs in the synthesis path (§9).

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

// FrameSamples is the number of PCM samples synthesized per frame (25ms at
// 8kHz). SubframeSamples is the interpolation granularity within a frame.
const (
	FrameSamples      = 200
	SubframeSamples   = 25
	subframesPerFrame = int32(FrameSamples / SubframeSamples)
)

// Decoder synthesizes 8kHz mono 16-bit PCM from an LPC-10 bitstream. The
// caller must invoke ProcessFrame exactly once per FrameSamples samples
// produced by GetSample; a Decoder is single-pass and becomes terminal
// once ProcessFrame reports a stop frame.
type Decoder struct {
	lastParams, newParams Params
	params                Params
	interpMajor           int32
	interpMinor           int
	periodCounter         uint8
	rand                  uint16
	x                     [11]int16
}

// NewDecoder returns a new Decoder with LFSR state seeded to 1, the only
// valid non-zero seed (§7).
func NewDecoder() *Decoder {
	return &Decoder{rand: 1}
}

// ProcessFrame reads one frame of parameters from bs, applying the
// interpolation-inhibit rule of §4.3, and resets the subframe counters.
// It returns true once the stream's stop frame (energy index 0xF) has been
// observed; no further frames or samples need to be produced after that.
func (d *Decoder) ProcessFrame(bs *BitStream) bool {
	d.lastParams = d.newParams
	d.newParams = Params{}
	d.newParams.read(bs)
	if d.lastParams.inhibitInterp(&d.newParams) {
		d.lastParams = d.newParams
	}
	d.interpMajor = 0
	d.interpMinor = 0
	return d.newParams.IsStop
}

// GetSample returns the next synthesized PCM sample. It must be called
// FrameSamples times between successive calls to ProcessFrame.
func (d *Decoder) GetSample() int16 {
	if d.interpMinor == 0 {
		if d.interpMajor < subframesPerFrame {
			d.interpMajor++
		}
		d.params = d.lastParams.interpolate(&d.newParams, d.interpMajor)
	}
	d.interpMinor++
	if d.interpMinor == SubframeSamples {
		d.interpMinor = 0
	}

	var u10 int16
	if d.params.isVoiced() {
		u10 = nextVoiced(&d.params, &d.periodCounter)
	} else {
		u10 = nextUnvoiced(&d.params, &d.rand)
	}
	return synthesize(&d.params.K, &d.x, u10)
}
