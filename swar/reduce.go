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

// This file provides horizontal reductions across the lanes of a U8x8.

// ReduceSum returns the exact sum of all lanes (at most 8*255).
func (v U8x8) ReduceSum() uint {
	// Sum adjacent lanes into four 16-bit fields (each <= 510), then gather
	// the fields into the top 16 bits with one multiply. No field can carry.
	pairs := (v.n & lowHalves) + ((v.n >> 8) & lowHalves)
	return uint((pairs * 0x0001000100010001) >> 48)
}

// WrappingSum returns the sum of all lanes modulo 256.
func (v U8x8) WrappingSum() uint8 {
	return uint8(v.ReduceSum())
}

// SaturatingSum returns the sum of all lanes, clamped at 255.
func (v U8x8) SaturatingSum() uint8 {
	return uint8(min(v.ReduceSum(), 0xff))
}

// ReduceMax returns the largest lane.
func (v U8x8) ReduceMax() byte {
	v = v.Max(U8x8{n: v.n >> 32})
	v = v.Max(U8x8{n: v.n >> 16})
	v = v.Max(U8x8{n: v.n >> 8})
	return byte(v.n)
}

// ReduceMin returns the smallest lane.
func (v U8x8) ReduceMin() byte {
	// Lanes shifted in from above are zero, but only lane 0 is read and it
	// only ever meets real lanes.
	v = v.Min(U8x8{n: v.n >> 32})
	v = v.Min(U8x8{n: v.n >> 16})
	v = v.Min(U8x8{n: v.n >> 8})
	return byte(v.n)
}
