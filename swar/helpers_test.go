package swar

import (
	"math/rand/v2"
	"testing"
)

// lanePairs returns vector pairs that together place every (a, b) byte pair
// in some lane, followed by random vectors. The sweep is repeated with the
// pairs rotated so that every lane position sees varied neighbors.
func lanePairs() [][2][8]byte {
	var out [][2][8]byte
	for rot := 0; rot < 2; rot++ {
		for w := 0; w < 65536/Lanes; w++ {
			var a, b [8]byte
			for i := range Lanes {
				p := w*Lanes + i
				lane := (i + rot*3) % Lanes
				a[lane] = byte(p >> 8)
				b[lane] = byte(p)
			}
			out = append(out, [2][8]byte{a, b})
		}
	}
	r := rand.New(rand.NewPCG(1, 2))
	for range 4096 {
		var a, b [8]byte
		for i := range Lanes {
			a[i] = byte(r.Uint32())
			b[i] = byte(r.Uint32())
		}
		out = append(out, [2][8]byte{a, b})
	}
	return out
}

// checkBinary compares a lane-wise vector operation with its scalar reference
// over lanePairs.
func checkBinary(t *testing.T, name string, op func(a, b U8x8) U8x8, ref func(a, b byte) byte) {
	t.Helper()
	failures := 0
	for _, p := range lanePairs() {
		got := op(FromArray(p[0]), FromArray(p[1])).ToArray()
		for i := range Lanes {
			want := ref(p[0][i], p[1][i])
			if got[i] != want {
				t.Errorf("%s(%v, %v): lane %d: got %d, want %d", name, p[0], p[1], i, got[i], want)
				failures++
			}
		}
		if failures > 10 {
			t.Fatalf("%s: too many failures", name)
		}
	}
}

// checkCompare compares a lane-wise comparison with its scalar reference over
// lanePairs and verifies every mask lane is a full 0x00 or 0xFF byte.
func checkCompare(t *testing.T, name string, op func(a, b U8x8) Mask8x8, ref func(a, b byte) bool) {
	t.Helper()
	failures := 0
	for _, p := range lanePairs() {
		m := op(FromArray(p[0]), FromArray(p[1]))
		raw := m.ToU8x8().ToArray()
		for i := range Lanes {
			var want byte
			if ref(p[0][i], p[1][i]) {
				want = 0xff
			}
			if raw[i] != want {
				t.Errorf("%s(%v, %v): lane %d: got %#x, want %#x", name, p[0], p[1], i, raw[i], want)
				failures++
			}
		}
		if failures > 10 {
			t.Fatalf("%s: too many failures", name)
		}
	}
}
