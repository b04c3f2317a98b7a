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

package bytescan

import "github.com/ajroetker/eightbytes/swar"

// Predicate tests bytes one at a time or eight at a time.
type Predicate interface {
	// Test reports whether a single byte matches. Used for unaligned heads
	// and tails.
	Test(b byte) bool

	// Apply returns a mask of the matching lanes of v.
	Apply(v swar.U8x8) swar.Mask8x8
}

// Equal matches bytes equal to a value.
type Equal struct {
	value byte
	vec   swar.U8x8
}

// EqualTo returns a predicate matching c.
func EqualTo(c byte) Equal {
	return Equal{value: c, vec: swar.Splat(c)}
}

func (p Equal) Test(b byte) bool { return b == p.value }

func (p Equal) Apply(v swar.U8x8) swar.Mask8x8 { return v.Equal(p.vec) }

// NotEqual matches bytes different from a value.
type NotEqual struct {
	value byte
	vec   swar.U8x8
}

// NotEqualTo returns a predicate matching every byte except c.
func NotEqualTo(c byte) NotEqual {
	return NotEqual{value: c, vec: swar.Splat(c)}
}

func (p NotEqual) Test(b byte) bool { return b != p.value }

func (p NotEqual) Apply(v swar.U8x8) swar.Mask8x8 { return v.NotEqual(p.vec) }

// Range matches bytes in the closed interval [lo, hi].
type Range struct {
	lo, hi       byte
	loVec, hiVec swar.U8x8
}

// InRange returns a predicate matching lo <= b <= hi. If lo > hi nothing
// matches.
func InRange(lo, hi byte) Range {
	return Range{lo: lo, hi: hi, loVec: swar.Splat(lo), hiVec: swar.Splat(hi)}
}

func (p Range) Test(b byte) bool { return b >= p.lo && b <= p.hi }

func (p Range) Apply(v swar.U8x8) swar.Mask8x8 {
	return v.GreaterEqual(p.loVec).And(v.LessEqual(p.hiVec))
}

// Below matches bytes strictly less than a threshold.
type Below struct {
	threshold byte
	vec       swar.U8x8
}

// LessThan returns a predicate matching b < threshold.
func LessThan(threshold byte) Below {
	return Below{threshold: threshold, vec: swar.Splat(threshold)}
}

func (p Below) Test(b byte) bool { return b < p.threshold }

func (p Below) Apply(v swar.U8x8) swar.Mask8x8 { return v.LessThan(p.vec) }

// Above matches bytes strictly greater than a threshold.
type Above struct {
	threshold byte
	vec       swar.U8x8
}

// GreaterThan returns a predicate matching b > threshold.
func GreaterThan(threshold byte) Above {
	return Above{threshold: threshold, vec: swar.Splat(threshold)}
}

func (p Above) Test(b byte) bool { return b > p.threshold }

func (p Above) Apply(v swar.U8x8) swar.Mask8x8 { return v.GreaterThan(p.vec) }
