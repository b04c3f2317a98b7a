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

// Package bytescan searches and counts bytes in slices eight bytes at a time
// using the swar package.
//
// Each function splits its input with swar.FromByteSlice: the unaligned head
// and tail are tested byte by byte and the aligned middle is tested one U8x8
// word at a time.
//
//	n := bytescan.Count(data, '\n')
//	i := bytescan.IndexIf(data, bytescan.InRange('0', '9'))
package bytescan

import (
	"github.com/ajroetker/eightbytes/swar"
	"github.com/ajroetker/eightbytes/swar/contrib/workerpool"
)

// maxLaneCount is how many words can be counted into a U8x8 accumulator
// before a lane could wrap.
const maxLaneCount = 255

// Count returns the number of bytes in s equal to c.
func Count(s []byte, c byte) int {
	return CountIf(s, EqualTo(c))
}

// CountIf returns the number of bytes in s matching pred.
func CountIf(s []byte, pred Predicate) int {
	head, body, tail := swar.FromByteSlice(s)
	return countScalar(head, pred) + countWords(body, pred) + countScalar(tail, pred)
}

// Index returns the index of the first byte in s equal to c, or -1.
func Index(s []byte, c byte) int {
	return IndexIf(s, EqualTo(c))
}

// IndexIf returns the index of the first byte in s matching pred, or -1.
func IndexIf(s []byte, pred Predicate) int {
	head, body, tail := swar.FromByteSlice(s)
	for i, b := range head {
		if pred.Test(b) {
			return i
		}
	}
	for w, v := range body {
		if lane := pred.Apply(v).FindFirstTrue(); lane >= 0 {
			return len(head) + w*swar.Lanes + lane
		}
	}
	base := len(s) - len(tail)
	for i, b := range tail {
		if pred.Test(b) {
			return base + i
		}
	}
	return -1
}

// LastIndex returns the index of the last byte in s equal to c, or -1.
func LastIndex(s []byte, c byte) int {
	return LastIndexIf(s, EqualTo(c))
}

// LastIndexIf returns the index of the last byte in s matching pred, or -1.
func LastIndexIf(s []byte, pred Predicate) int {
	head, body, tail := swar.FromByteSlice(s)
	base := len(s) - len(tail)
	for i := len(tail) - 1; i >= 0; i-- {
		if pred.Test(tail[i]) {
			return base + i
		}
	}
	for w := len(body) - 1; w >= 0; w-- {
		if lane := pred.Apply(body[w]).FindLastTrue(); lane >= 0 {
			return len(head) + w*swar.Lanes + lane
		}
	}
	for i := len(head) - 1; i >= 0; i-- {
		if pred.Test(head[i]) {
			return i
		}
	}
	return -1
}

// Contains reports whether c occurs in s.
func Contains(s []byte, c byte) bool {
	return Index(s, c) >= 0
}

// Any reports whether any byte of s matches pred.
func Any(s []byte, pred Predicate) bool {
	return IndexIf(s, pred) >= 0
}

// All reports whether every byte of s matches pred. It is true for an empty
// slice.
func All(s []byte, pred Predicate) bool {
	head, body, tail := swar.FromByteSlice(s)
	for _, b := range head {
		if !pred.Test(b) {
			return false
		}
	}
	for _, v := range body {
		if !pred.Apply(v).AllTrue() {
			return false
		}
	}
	for _, b := range tail {
		if !pred.Test(b) {
			return false
		}
	}
	return true
}

// ParallelCount is Count split across the workers of p. Inputs shorter than
// workerpool.ParallelMinBytes, or a nil pool, are counted sequentially.
func ParallelCount(p *workerpool.Pool, s []byte, c byte) int {
	return ParallelCountIf(p, s, EqualTo(c))
}

// ParallelCountIf is CountIf split across the workers of p.
func ParallelCountIf(p *workerpool.Pool, s []byte, pred Predicate) int {
	if p == nil || len(s) < workerpool.ParallelMinBytes() {
		return CountIf(s, pred)
	}
	return p.ParallelSum(len(s), func(start, end int) int {
		return CountIf(s[start:end], pred)
	})
}

func countScalar(s []byte, pred Predicate) int {
	n := 0
	for _, b := range s {
		if pred.Test(b) {
			n++
		}
	}
	return n
}

// countWords counts matches per lane in a U8x8 accumulator and folds it into
// the total before any lane can wrap.
func countWords(body []swar.U8x8, pred Predicate) int {
	total := 0
	for len(body) > 0 {
		n := min(len(body), maxLaneCount)
		acc := swar.Zero()
		for _, v := range body[:n] {
			// A true mask lane is 0xFF, which is -1 modulo 256.
			acc = acc.Sub(pred.Apply(v).ToU8x8())
		}
		total += int(acc.ReduceSum())
		body = body[n:]
	}
	return total
}
