// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package swar

// This file provides lane-wise arithmetic. Each lane is an independent uint8;
// bit 7 of every lane is handled separately so that no carry or borrow ever
// crosses into the next lane.

// Add adds corresponding lanes modulo 256.
//
// The low seven bits of each lane are summed with bit 7 cleared in both
// operands, so the carry out of bit 6 lands in bit 7 of the same lane. Bit 7
// of the result is then the XOR of that carry and both operands' bit 7.
func (v U8x8) Add(o U8x8) U8x8 {
	low := (v.n & lowBits) + (o.n & lowBits)
	return U8x8{n: low ^ ((v.n ^ o.n) & highBits)}
}

// SaturatingAdd adds corresponding lanes, clamping at 255.
// For example 250 + 10 = 255 (not 4).
func (v U8x8) SaturatingAdd(o U8x8) U8x8 {
	sum := v.Add(o).n
	return U8x8{n: sum | fill(carryOut(v.n, o.n, sum))}
}

// Sub subtracts corresponding lanes modulo 256.
//
// Bit 7 of the minuend is forced on and cleared in the subtrahend, so the
// borrow out of bit 6 is absorbed within the lane. Bit 7 of the result is
// then corrected from both operands' original bit 7.
func (v U8x8) Sub(o U8x8) U8x8 {
	diff := (v.n | highBits) - (o.n & lowBits)
	return U8x8{n: diff ^ ((v.n ^ ^o.n) & highBits)}
}

// SaturatingSub subtracts corresponding lanes, clamping at 0.
// For example 10 - 20 = 0 (not 246).
func (v U8x8) SaturatingSub(o U8x8) U8x8 {
	diff := v.Sub(o).n
	return U8x8{n: diff &^ fill(borrowOut(v.n, o.n, diff))}
}

// AbsDiff computes |v - o| for corresponding lanes.
func (v U8x8) AbsDiff(o U8x8) U8x8 {
	// One of the two saturating differences is always zero.
	return U8x8{n: v.SaturatingSub(o).n | o.SaturatingSub(v).n}
}

// Mean computes floor((v + o) / 2) for corresponding lanes without overflow.
func (v U8x8) Mean(o U8x8) U8x8 {
	shared := v.n & o.n
	half := ((v.n ^ o.n) &^ allOnes) >> 1
	return U8x8{n: shared + half}
}

// AverageRound computes (v + o + 1) / 2 for corresponding lanes without
// overflow.
func (v U8x8) AverageRound(o U8x8) U8x8 {
	either := v.n | o.n
	half := ((v.n ^ o.n) &^ allOnes) >> 1
	return U8x8{n: either - half}
}

// PopCount counts the set bits in each lane.
func (v U8x8) PopCount() U8x8 {
	x := v.n - ((v.n >> 1) & evenNibbles)
	x = (x & evenPairs) + ((x >> 2) & evenPairs)
	return U8x8{n: (x + (x >> 4)) & lowNibbles}
}

// ShiftLeft shifts every lane left by k bits, discarding bits shifted out of
// the lane. Shifts of 8 or more produce zero lanes.
func (v U8x8) ShiftLeft(k uint) U8x8 {
	if k >= 8 {
		return U8x8{}
	}
	keep := Splat(byte(0xff << k)).n
	return U8x8{n: (v.n << k) & keep}
}

// ShiftRight shifts every lane right by k bits, filling with zeros.
// Shifts of 8 or more produce zero lanes.
func (v U8x8) ShiftRight(k uint) U8x8 {
	if k >= 8 {
		return U8x8{}
	}
	keep := Splat(byte(0xff >> k)).n
	return U8x8{n: (v.n >> k) & keep}
}

// carryOut returns 0x80 in each lane where a + b overflowed, given the
// lane-isolated wrapping sum.
func carryOut(a, b, sum uint64) uint64 {
	return ((a & b) | ((a | b) &^ sum)) & highBits
}

// borrowOut returns 0x80 in each lane where a < b, given the lane-isolated
// wrapping difference a - b.
func borrowOut(a, b, diff uint64) uint64 {
	return ((^a & b) | ((^a | b) & diff)) & highBits
}
