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

package pixel

import "github.com/ajroetker/eightbytes/swar"

// AddSaturate sets dst[i] = min(a[i]+b[i], 255) and returns the number of
// pixels written.
func AddSaturate(dst, a, b []byte) int {
	return binaryOp(dst, a, b, swar.U8x8.SaturatingAdd)
}

// SubSaturate sets dst[i] = max(a[i]-b[i], 0).
func SubSaturate(dst, a, b []byte) int {
	return binaryOp(dst, a, b, swar.U8x8.SaturatingSub)
}

// AbsDiff sets dst[i] = |a[i]-b[i]|.
func AbsDiff(dst, a, b []byte) int {
	return binaryOp(dst, a, b, swar.U8x8.AbsDiff)
}

// Average sets dst[i] = (a[i]+b[i]+1)/2, an even blend of two rows.
func Average(dst, a, b []byte) int {
	return binaryOp(dst, a, b, swar.U8x8.AverageRound)
}

// Brighten adds delta to every pixel, saturating at 255.
func Brighten(dst, src []byte, delta byte) int {
	d := swar.Splat(delta)
	return unaryOp(dst, src, func(v swar.U8x8) swar.U8x8 { return v.SaturatingAdd(d) })
}

// Darken subtracts delta from every pixel, saturating at 0.
func Darken(dst, src []byte, delta byte) int {
	d := swar.Splat(delta)
	return unaryOp(dst, src, func(v swar.U8x8) swar.U8x8 { return v.SaturatingSub(d) })
}

// Invert sets dst[i] = 255 - src[i].
func Invert(dst, src []byte) int {
	return unaryOp(dst, src, swar.U8x8.Not)
}

// Threshold sets dst[i] to above where src[i] > t and to below elsewhere.
func Threshold(dst, src []byte, t, above, below byte) int {
	tv := swar.Splat(t)
	return unaryOp(dst, src, func(v swar.U8x8) swar.U8x8 {
		return v.GreaterThan(tv).SelectBytes(above, below)
	})
}

// Clamp limits every pixel to [lo, hi].
func Clamp(dst, src []byte, lo, hi byte) int {
	lv, hv := swar.Splat(lo), swar.Splat(hi)
	return unaryOp(dst, src, func(v swar.U8x8) swar.U8x8 { return v.Clamp(lv, hv) })
}

// ExpandBitmap expands a 1-bit-per-pixel bitmap into palette bytes: each set
// bit becomes fg and each clear bit bg, most significant bit first. It writes
// min(len(dst), 8*len(bits)) pixels and returns that count.
func ExpandBitmap(dst, bits []byte, fg, bg byte) int {
	n := min(len(dst), len(bits)*swar.Lanes)
	for i := 0; i < n; i += swar.Lanes {
		m := swar.MaskFromBitmaskBE(bits[i/swar.Lanes])
		m.SelectBytes(fg, bg).Store(dst[i:n])
	}
	return n
}

// SumAbsDiff returns the sum of |a[i]-b[i]| over min(len(a), len(b)) pixels.
func SumAbsDiff(a, b []byte) int {
	n := min(len(a), len(b))
	total := 0
	i := 0
	for ; i+swar.Lanes <= n; i += swar.Lanes {
		total += int(swar.Load(a[i:]).AbsDiff(swar.Load(b[i:])).ReduceSum())
	}
	if i < n {
		total += int(swar.LoadPartial(a[i:n]).AbsDiff(swar.LoadPartial(b[i:n])).ReduceSum())
	}
	return total
}

// binaryOp applies op to eight pixels at a time. The final partial block is
// zero-padded on load and truncated on store.
func binaryOp(dst, a, b []byte, op func(x, y swar.U8x8) swar.U8x8) int {
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+swar.Lanes <= n; i += swar.Lanes {
		op(swar.Load(a[i:]), swar.Load(b[i:])).Store(dst[i:])
	}
	if i < n {
		op(swar.LoadPartial(a[i:n]), swar.LoadPartial(b[i:n])).Store(dst[i:n])
	}
	return n
}

func unaryOp(dst, src []byte, op func(v swar.U8x8) swar.U8x8) int {
	n := min(len(dst), len(src))
	i := 0
	for ; i+swar.Lanes <= n; i += swar.Lanes {
		op(swar.Load(src[i:])).Store(dst[i:])
	}
	if i < n {
		op(swar.LoadPartial(src[i:n])).Store(dst[i:n])
	}
	return n
}
