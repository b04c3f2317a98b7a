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

// Package swar provides eight-lane byte vectors packed into a single uint64.
//
// Every operation is plain integer arithmetic on the packed word ("SIMD
// Within A Register"), so it runs on any target without vector instructions.
// Carries and borrows are isolated per lane: overflow in one lane never
// changes a neighboring lane.
//
// Basic usage:
//
//	import "github.com/ajroetker/eightbytes/swar"
//
//	a := swar.FromArray([8]byte{0, 10, 250, 255, 1, 2, 3, 4})
//	b := swar.Splat(5)
//
//	sum := a.SaturatingAdd(b)       // lane-wise, clamped at 255
//	big := a.GreaterThan(b)         // Mask8x8
//	out := swar.Select(big, a, sum) // pick a where a > 5
//
// Lane i of a vector occupies bits [8*i, 8*i+8) of the word. FromArray, Load
// and Store map array index i to lane i on every host, which is the
// little-endian byte order of the word.
package swar

import "errors"

// Lanes is the number of 8-bit lanes in a U8x8 or Mask8x8.
const Lanes = 8

// U8x8 is a vector of eight uint8 lanes held in one uint64.
//
// Every bit pattern is a valid U8x8. Values are immutable: all operations
// return a new vector.
type U8x8 struct {
	n uint64
}

// Mask8x8 is a vector of eight boolean lanes held in one uint64.
//
// Each lane byte is exactly 0x00 (false) or 0xFF (true), so a mask can be
// used directly as a bitwise select operand. The zero value is all false.
//
// Mask8x8 values cannot be built from arbitrary words; use the comparison
// methods on U8x8, MaskFromBools, MaskFromBitmaskLE, MaskFromBitmaskBE,
// FirstN, or the validating MaskFromUint64.
type Mask8x8 struct {
	n uint64
}

// ErrInvalidMask is returned by MaskFromUint64 when a lane byte is neither
// 0x00 nor 0xFF.
var ErrInvalidMask = errors.New("swar: mask lane is not 0x00 or 0xFF")

const (
	// allOnes has 0x01 in every lane. Multiplying a byte by it broadcasts
	// the byte to all lanes.
	allOnes = 0x0101010101010101

	// lowBits has 0x7f in every lane. Masking both operands with it leaves
	// room in bit 7 for the carry so it cannot reach the next lane.
	lowBits = 0x7f7f7f7f7f7f7f7f

	// highBits has 0x80 in every lane: the bits lowBits removes.
	highBits = 0x8080808080808080

	// evenNibbles, evenPairs and lowNibbles are the per-lane popcount masks.
	evenNibbles = 0x5555555555555555
	evenPairs   = 0x3333333333333333
	lowNibbles  = 0x0f0f0f0f0f0f0f0f

	// lowHalves keeps the low byte of every 16-bit pair of lanes.
	lowHalves = 0x00ff00ff00ff00ff
)

// fill turns a word whose lanes hold only 0x00 or 0x80 into one whose lanes
// hold 0x00 or 0xFF.
func fill(msbs uint64) uint64 {
	return (msbs >> 7) * 0xff
}
