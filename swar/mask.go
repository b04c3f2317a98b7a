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

import (
	"fmt"
	"math/bits"
)

var (
	// AllFalse is a mask with every lane false.
	AllFalse = Mask8x8{}

	// AllTrue is a mask with every lane true.
	AllTrue = Mask8x8{n: ^uint64(0)}
)

// MaskFromBools builds a mask where lane i is a[i].
func MaskFromBools(a [8]bool) Mask8x8 {
	var n uint64
	for i, b := range a {
		if b {
			n |= 0xff << (8 * uint(i))
		}
	}
	return Mask8x8{n: n}
}

// MaskFromBitmaskLE builds a mask from a bitmask whose least significant bit
// is lane 0.
func MaskFromBitmaskLE(b uint8) Mask8x8 {
	// Multiplying by 1 + 2^7 + 2^14 + ... moves bit i to bit 8*i. Even and odd
	// bits are spread separately so the partial products never overlap.
	const spread = 0x0002040810204081
	raw := uint64(b)
	n := ((raw&0x55)*spread | (raw&0xaa)*spread) & allOnes
	return Mask8x8{n: n * 0xff}
}

// MaskFromBitmaskBE builds a mask from a bitmask whose most significant bit
// is lane 0.
func MaskFromBitmaskBE(b uint8) Mask8x8 {
	return MaskFromBitmaskLE(bits.Reverse8(b))
}

// FirstN returns a mask with the first count lanes true.
// count is clamped to [0, 8].
func FirstN(count int) Mask8x8 {
	switch {
	case count <= 0:
		return AllFalse
	case count >= Lanes:
		return AllTrue
	}
	return Mask8x8{n: 1<<(8*uint(count)) - 1}
}

// MaskFromUint64 validates a raw word as a mask. Every lane byte must be
// 0x00 or 0xFF; otherwise the error wraps ErrInvalidMask.
func MaskFromUint64(n uint64) (Mask8x8, error) {
	want := fill(n & highBits)
	if bad := want ^ n; bad != 0 {
		lane := bits.TrailingZeros64(bad) / 8
		return Mask8x8{}, fmt.Errorf("%w: lane %d is %#x", ErrInvalidMask, lane, byte(n>>(8*uint(lane))))
	}
	return Mask8x8{n: n}, nil
}

// Uint64 returns the packed mask word.
func (m Mask8x8) Uint64() uint64 {
	return m.n
}

// Lane reports whether lane i is true. It panics if i is outside [0, 8).
func (m Mask8x8) Lane(i int) bool {
	checkLane(i)
	return m.n>>(8*uint(i))&1 != 0
}

// ToArray unpacks the mask; lane i becomes element i.
func (m Mask8x8) ToArray() [8]bool {
	var a [8]bool
	for i := range a {
		a[i] = m.n>>(8*uint(i))&1 != 0
	}
	return a
}

// ToBitmaskLE packs the mask into a bitmask with lane 0 in the least
// significant bit.
func (m Mask8x8) ToBitmaskLE() uint8 {
	// Multiplying the 0x01 lane bits by this constant gathers lane i into
	// bit 56+i without any overlapping partial products.
	const gather = 0x0102040810204080
	return uint8(((m.n & allOnes) * gather) >> 56)
}

// ToBitmaskBE packs the mask into a bitmask with lane 0 in the most
// significant bit.
func (m Mask8x8) ToBitmaskBE() uint8 {
	return bits.Reverse8(m.ToBitmaskLE())
}

// ToU8x8 returns the mask as a vector with 0xFF in true lanes and 0x00 in
// false lanes.
func (m Mask8x8) ToU8x8() U8x8 {
	return U8x8{n: m.n}
}

// ToU8x8With returns a vector with v in true lanes and 0 in false lanes.
func (m Mask8x8) ToU8x8With(v byte) U8x8 {
	return U8x8{n: m.n & Splat(v).n}
}

// Select returns onTrue in lanes where m is true and onFalse elsewhere.
// This is the method form of the swar.Select function.
func (m Mask8x8) Select(onTrue, onFalse U8x8) U8x8 {
	return Select(m, onTrue, onFalse)
}

// SelectBytes returns t in lanes where m is true and f elsewhere.
//
// This expands a one-bit-per-pixel bitmap into palette indices:
//
//	px := swar.MaskFromBitmaskBE(0b10101100).SelectBytes(0xff, 0x01)
//	// px lanes: ff 01 ff 01 ff ff 01 01
func (m Mask8x8) SelectBytes(t, f byte) U8x8 {
	return Select(m, Splat(t), Splat(f))
}

// Not inverts every lane.
func (m Mask8x8) Not() Mask8x8 {
	return Mask8x8{n: ^m.n}
}

// And returns the lane-wise logical AND of two masks.
func (m Mask8x8) And(o Mask8x8) Mask8x8 {
	return Mask8x8{n: m.n & o.n}
}

// Or returns the lane-wise logical OR of two masks.
func (m Mask8x8) Or(o Mask8x8) Mask8x8 {
	return Mask8x8{n: m.n | o.n}
}

// Xor returns the lane-wise logical XOR of two masks.
func (m Mask8x8) Xor(o Mask8x8) Mask8x8 {
	return Mask8x8{n: m.n ^ o.n}
}

// AndNot returns m AND NOT o, lane-wise.
func (m Mask8x8) AndNot(o Mask8x8) Mask8x8 {
	return Mask8x8{n: m.n &^ o.n}
}

// AnyTrue reports whether at least one lane is true.
func (m Mask8x8) AnyTrue() bool {
	return m.n != 0
}

// AllTrue reports whether every lane is true.
func (m Mask8x8) AllTrue() bool {
	return m.n == ^uint64(0)
}

// CountTrue returns the number of true lanes.
func (m Mask8x8) CountTrue() int {
	return bits.OnesCount64(m.n) / 8
}

// CountFalse returns the number of false lanes.
func (m Mask8x8) CountFalse() int {
	return Lanes - m.CountTrue()
}

// FindFirstTrue returns the index of the first true lane, or -1 if none.
func (m Mask8x8) FindFirstTrue() int {
	if m.n == 0 {
		return -1
	}
	return bits.TrailingZeros64(m.n) / 8
}

// FindLastTrue returns the index of the last true lane, or -1 if none.
func (m Mask8x8) FindLastTrue() int {
	if m.n == 0 {
		return -1
	}
	return Lanes - 1 - bits.LeadingZeros64(m.n)/8
}

// String formats the mask as mask8x8[b0 b1 ... b7].
func (m Mask8x8) String() string {
	return fmt.Sprintf("mask8x8%v", m.ToArray())
}
