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

// ASCII case differs by this bit.
const caseBit = 0x20

var (
	upperA, upperZ = swar.Splat('A'), swar.Splat('Z')
	lowerA, lowerZ = swar.Splat('a'), swar.Splat('z')
	caseVec        = swar.Splat(caseBit)
)

// ReplaceByte copies src to dst, replacing every occurrence of old with new.
// It processes min(len(dst), len(src)) bytes and returns that count.
// dst and src may be the same slice.
func ReplaceByte(dst, src []byte, old, new byte) int {
	oldVec, newVec := swar.Splat(old), swar.Splat(new)
	return transform(dst, src,
		func(v swar.U8x8) swar.U8x8 {
			return swar.Select(v.Equal(oldVec), newVec, v)
		},
		func(b byte) byte {
			if b == old {
				return new
			}
			return b
		})
}

// ToUpperASCII copies src to dst with ASCII letters a-z mapped to A-Z. Other
// bytes, including UTF-8 continuation bytes, are copied unchanged.
// It returns the number of bytes written, min(len(dst), len(src)).
func ToUpperASCII(dst, src []byte) int {
	return transform(dst, src,
		func(v swar.U8x8) swar.U8x8 {
			lower := v.GreaterEqual(lowerA).And(v.LessEqual(lowerZ))
			return swar.Select(lower, v.Sub(caseVec), v)
		},
		func(b byte) byte {
			if 'a' <= b && b <= 'z' {
				return b - caseBit
			}
			return b
		})
}

// ToLowerASCII copies src to dst with ASCII letters A-Z mapped to a-z.
// It returns the number of bytes written, min(len(dst), len(src)).
func ToLowerASCII(dst, src []byte) int {
	return transform(dst, src,
		func(v swar.U8x8) swar.U8x8 {
			upper := v.GreaterEqual(upperA).And(v.LessEqual(upperZ))
			return swar.Select(upper, v.Add(caseVec), v)
		},
		func(b byte) byte {
			if 'A' <= b && b <= 'Z' {
				return b + caseBit
			}
			return b
		})
}

// transform applies vec to each full eight-byte block and one to the
// remaining bytes. Blocks are loaded and stored unaligned, so dst and src
// need not share an alignment.
func transform(dst, src []byte, vec func(swar.U8x8) swar.U8x8, one func(byte) byte) int {
	n := min(len(dst), len(src))
	i := 0
	for ; i+swar.Lanes <= n; i += swar.Lanes {
		vec(swar.Load(src[i:])).Store(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = one(src[i])
	}
	return n
}
