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

// This file provides unsigned lane comparisons and the operations composed
// from them. Every comparison yields a Mask8x8 whose lanes are full 0x00 or
// 0xFF bytes, so masks combine with plain word NOT/AND/OR.

// Equal returns a mask that is true in lanes where v == o.
func (v U8x8) Equal(o U8x8) Mask8x8 {
	return Mask8x8{n: fill(zeroLanes(v.n ^ o.n))}
}

// NotEqual returns a mask that is true in lanes where v != o.
func (v U8x8) NotEqual(o U8x8) Mask8x8 {
	return v.Equal(o).Not()
}

// LessThan returns a mask that is true in lanes where v < o.
//
// A lane of v is below o exactly when the lane-isolated subtraction v - o
// borrows out of bit 7.
func (v U8x8) LessThan(o U8x8) Mask8x8 {
	diff := v.Sub(o).n
	return Mask8x8{n: fill(borrowOut(v.n, o.n, diff))}
}

// LessEqual returns a mask that is true in lanes where v <= o.
func (v U8x8) LessEqual(o U8x8) Mask8x8 {
	return o.LessThan(v).Not()
}

// GreaterThan returns a mask that is true in lanes where v > o.
func (v U8x8) GreaterThan(o U8x8) Mask8x8 {
	return o.LessThan(v)
}

// GreaterEqual returns a mask that is true in lanes where v >= o.
func (v U8x8) GreaterEqual(o U8x8) Mask8x8 {
	return v.LessThan(o).Not()
}

// Select returns onTrue in lanes where m is true and onFalse elsewhere.
func Select(m Mask8x8, onTrue, onFalse U8x8) U8x8 {
	return U8x8{n: (onTrue.n & m.n) | (onFalse.n &^ m.n)}
}

// Min returns the smaller of corresponding lanes.
func (v U8x8) Min(o U8x8) U8x8 {
	return Select(v.LessThan(o), v, o)
}

// Max returns the larger of corresponding lanes.
func (v U8x8) Max(o U8x8) U8x8 {
	return Select(v.LessThan(o), o, v)
}

// Clamp limits each lane of v to [lo, hi].
// Lanes where lo > hi come out as hi.
func (v U8x8) Clamp(lo, hi U8x8) U8x8 {
	return v.Max(lo).Min(hi)
}

// zeroLanes returns 0x80 in each lane of x that is zero.
//
// Adding 0x7f to the low seven bits sets bit 7 unless they were all zero;
// OR-ing x back in accounts for bit 7 itself.
func zeroLanes(x uint64) uint64 {
	nonzero := ((x & lowBits) + lowBits) | x
	return ^nonzero & highBits
}
