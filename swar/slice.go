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
	"unsafe"

	"golang.org/x/sys/cpu"
)

// wordAlign is the alignment of U8x8 in memory.
const wordAlign = unsafe.Alignof(U8x8{})

// FromByteSlice splits s into a leading run of fewer than eight bytes, a run
// of whole U8x8 words starting at an aligned address, and a trailing run of
// fewer than eight bytes. Concatenating head, the stored words and tail
// yields s.
//
// On little-endian hosts body aliases the memory of s and nothing is copied;
// writes to s are visible through body. On big-endian hosts body is a decoded
// copy, so lane i is always the i-th byte of the word either way. Callers must
// treat body as read-only.
//
// A typical scan handles head and tail byte by byte and body eight bytes at a
// time:
//
//	head, body, tail := swar.FromByteSlice(input)
//	space := swar.Splat(' ')
//	n := 0
//	for _, v := range body {
//	    n += v.Equal(space).CountFalse()
//	}
func FromByteSlice(s []byte) (head []byte, body []U8x8, tail []byte) {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	lead := int((wordAlign - addr%wordAlign) % wordAlign)
	lead = min(lead, len(s))

	head, rest := s[:lead], s[lead:]
	words := len(rest) / Lanes
	tail = rest[words*Lanes:]
	if words == 0 {
		return head, nil, tail
	}

	if cpu.IsBigEndian {
		body = make([]U8x8, words)
		for i := range body {
			body[i] = Load(rest[i*Lanes:])
		}
		return head, body, tail
	}
	body = unsafe.Slice((*U8x8)(unsafe.Pointer(unsafe.SliceData(rest))), words)
	return head, body, tail
}
