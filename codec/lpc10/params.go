/*
NAME
  params.go

DESCRIPTION
  params.go defines Params, one speech frame's worth of decoded LPC-10
  parameters, and the frame-grammar reader and subframe interpolator that
  operate on it.

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

// Params holds one speech frame's worth of decoded parameters: amplitude
// (energy), pitch period, the ten lattice reflection coefficients (in Q9
// fixed-point, i.e. real value = k/512), and the stream-terminal flag.
//
// If Energy == 0 the K values are meaningless and were not transmitted. If
// Period == 0 (unvoiced) only K[0:4] were transmitted; K[4:10] are zero.
type Params struct {
	Energy uint16
	Period uint8
	K      [10]int16
	IsStop bool
}

// isVoiced reports whether p represents a voiced frame.
func (p *Params) isVoiced() bool {
	return p.Period != 0
}

// read decodes one variable-length frame from bs into p, per the frame
// grammar in §6:
//
//	energy(4)
//	if energy == 0:    silence frame, done
//	if energy == 0xF:  stop frame, done
//	else:
//	  repeat(1) period(6)
//	  if repeat == 0:
//	    k1(5) k2(5) k3(4) k4(4)
//	    if period != 0: k5(4) k6(4) k7(4) k8(3) k9(3) k10(3)
func (p *Params) read(bs *BitStream) {
	energy := bs.GetBits(4)
	switch energy {
	case 0:
		p.Energy = 0
	case 0xF:
		p.Energy = 0
		p.IsStop = true
		p.K = [10]int16{}
	default:
		p.Energy = energyTable[energy]
		repeat := bs.GetBits(1)
		p.Period = periodTable[bs.GetBits(6)]
		if repeat == 0 {
			n := 4
			if p.Period != 0 {
				n = 10
			}
			for i := 0; i < n; i++ {
				p.K[i] = kTables[i][bs.GetBits(kBits[i])]
			}
			for i := n; i < 10; i++ {
				p.K[i] = 0
			}
		}
	}
}

// lerp computes the hardware-matching rounding form (x0*8 + (x1-x0)*t) / 8
// used to interpolate every scalar component of Params.
func lerp(x0, x1, t int32) int32 {
	return (x0*8 + (x1-x0)*t) / 8
}

// interpolate blends last (self) towards new linearly over 8 subframes
// (t=0..8) using the hardware's fixed-point rounding form. IsStop is never
// interpolated; the result always reports IsStop == false.
func (p *Params) interpolate(new *Params, t int32) Params {
	var out Params
	out.Energy = uint16(lerp(int32(p.Energy), int32(new.Energy), t))
	out.Period = uint8(lerp(int32(p.Period), int32(new.Period), t))
	for i := range out.K {
		out.K[i] = int16(lerp(int32(p.K[i]), int32(new.K[i]), t))
	}
	return out
}

// inhibitInterp reports whether interpolation from p to new should be
// skipped for this frame, per §4.3: voicing flips, speech onset after
// silence, or silence onset after unvoiced speech all cause the active
// params to jump straight to new for the whole frame.
func (p *Params) inhibitInterp(new *Params) bool {
	return p.isVoiced() != new.isVoiced() ||
		(p.Energy == 0 && new.Energy != 0) ||
		(!p.isVoiced() && new.Energy == 0)
}
