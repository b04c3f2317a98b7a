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
	"encoding/binary"
	"fmt"
)

// This file provides construction, lane access and bitwise logic for U8x8.
// Logic operations need no carry handling: they are already lane-independent.

// FromArray packs a into a vector; a[i] becomes lane i.
func FromArray(a [8]byte) U8x8 {
	return U8x8{n: binary.LittleEndian.Uint64(a[:])}
}

// FromUint64 reinterprets a raw word as a vector.
func FromUint64(n uint64) U8x8 {
	return U8x8{n: n}
}

// Splat returns a vector with v in all eight lanes.
func Splat(v byte) U8x8 {
	return U8x8{n: uint64(v) * allOnes}
}

// Zero returns a vector with all lanes set to zero.
func Zero() U8x8 {
	return U8x8{}
}

// Load packs the first eight bytes of src; src[i] becomes lane i.
// It panics if len(src) < 8.
func Load(src []byte) U8x8 {
	return U8x8{n: binary.LittleEndian.Uint64(src)}
}

// LoadPartial packs up to eight bytes of src. Lanes past len(src) are zero.
func LoadPartial(src []byte) U8x8 {
	if len(src) >= Lanes {
		return Load(src)
	}
	var buf [8]byte
	copy(buf[:], src)
	return FromArray(buf)
}

// ToArray unpacks the vector; lane i becomes element i.
func (v U8x8) ToArray() [8]byte {
	var a [8]byte
	binary.LittleEndian.PutUint64(a[:], v.n)
	return a
}

// Uint64 returns the packed word.
func (v U8x8) Uint64() uint64 {
	return v.n
}

// Store writes the vector's lanes to dst, lane i to dst[i].
// Only min(len(dst), 8) lanes are written.
func (v U8x8) Store(dst []byte) {
	if len(dst) >= Lanes {
		binary.LittleEndian.PutUint64(dst, v.n)
		return
	}
	a := v.ToArray()
	copy(dst, a[:])
}

// Lane returns lane i. It panics if i is outside [0, 8).
func (v U8x8) Lane(i int) byte {
	checkLane(i)
	return byte(v.n >> (8 * uint(i)))
}

// WithLane returns a copy of v with lane i replaced by b.
// It panics if i is outside [0, 8).
func (v U8x8) WithLane(i int, b byte) U8x8 {
	checkLane(i)
	shift := 8 * uint(i)
	return U8x8{n: v.n&^(0xff<<shift) | uint64(b)<<shift}
}

// String formats the vector as u8x8[l0 l1 ... l7].
func (v U8x8) String() string {
	return fmt.Sprintf("u8x8%v", v.ToArray())
}

// Not computes the bitwise complement of every lane.
func (v U8x8) Not() U8x8 {
	return U8x8{n: ^v.n}
}

// And computes the bitwise AND of corresponding lanes.
func (v U8x8) And(o U8x8) U8x8 {
	return U8x8{n: v.n & o.n}
}

// Or computes the bitwise OR of corresponding lanes.
func (v U8x8) Or(o U8x8) U8x8 {
	return U8x8{n: v.n | o.n}
}

// Xor computes the bitwise XOR of corresponding lanes.
func (v U8x8) Xor(o U8x8) U8x8 {
	return U8x8{n: v.n ^ o.n}
}

// AndNot computes v AND NOT o for corresponding lanes.
func (v U8x8) AndNot(o U8x8) U8x8 {
	return U8x8{n: v.n &^ o.n}
}

func checkLane(i int) {
	if uint(i) >= Lanes {
		panic(fmt.Sprintf("swar: lane index %d out of range [0, %d)", i, Lanes))
	}
}
