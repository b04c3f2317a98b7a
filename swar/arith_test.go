package swar

import (
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdd(t *testing.T) {
	a := FromArray([8]byte{1, 2, 3, 4, 255, 254, 0, 0})
	b := FromArray([8]byte{5, 6, 7, 8, 2, 2, 5, 2})
	want := [8]byte{6, 8, 10, 12, 1, 0, 5, 2}
	if diff := cmp.Diff(want, a.Add(b).ToArray()); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
}

func TestAddExample(t *testing.T) {
	a := FromArray([8]byte{0, 10, 250, 255, 1, 2, 3, 4})
	b := FromArray([8]byte{5, 5, 10, 1, 1, 0, 0, 0})

	if diff := cmp.Diff([8]byte{5, 15, 4, 0, 2, 2, 3, 4}, a.Add(b).ToArray()); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([8]byte{5, 15, 255, 255, 2, 2, 3, 4}, a.SaturatingAdd(b).ToArray()); diff != "" {
		t.Errorf("SaturatingAdd mismatch (-want +got):\n%s", diff)
	}
}

func TestAddAllLanes(t *testing.T) {
	checkBinary(t, "Add", U8x8.Add, func(a, b byte) byte { return a + b })
}

func TestSaturatingAdd(t *testing.T) {
	a := FromArray([8]byte{1, 2, 3, 4, 255, 254, 0, 0})
	b := FromArray([8]byte{5, 6, 7, 8, 2, 2, 5, 2})
	want := [8]byte{6, 8, 10, 12, 255, 255, 5, 2}
	if diff := cmp.Diff(want, a.SaturatingAdd(b).ToArray()); diff != "" {
		t.Errorf("SaturatingAdd mismatch (-want +got):\n%s", diff)
	}
}

func TestSaturatingAddAllLanes(t *testing.T) {
	checkBinary(t, "SaturatingAdd", U8x8.SaturatingAdd, func(a, b byte) byte {
		return byte(min(int(a)+int(b), 255))
	})
}

func TestSub(t *testing.T) {
	a := FromArray([8]byte{6, 8, 10, 12, 1, 0, 5, 2})
	b := FromArray([8]byte{1, 2, 3, 4, 255, 254, 0, 0})
	want := [8]byte{5, 6, 7, 8, 2, 2, 5, 2}
	if diff := cmp.Diff(want, a.Sub(b).ToArray()); diff != "" {
		t.Errorf("Sub mismatch (-want +got):\n%s", diff)
	}
}

func TestSubAllLanes(t *testing.T) {
	checkBinary(t, "Sub", U8x8.Sub, func(a, b byte) byte { return a - b })
}

func TestSaturatingSub(t *testing.T) {
	a := FromArray([8]byte{6, 8, 10, 12, 1, 0, 5, 2})
	b := FromArray([8]byte{1, 2, 3, 4, 255, 254, 0, 0})
	want := [8]byte{5, 6, 7, 8, 0, 0, 5, 2}
	if diff := cmp.Diff(want, a.SaturatingSub(b).ToArray()); diff != "" {
		t.Errorf("SaturatingSub mismatch (-want +got):\n%s", diff)
	}
}

func TestSaturatingSubAllLanes(t *testing.T) {
	checkBinary(t, "SaturatingSub", U8x8.SaturatingSub, func(a, b byte) byte {
		return byte(max(int(a)-int(b), 0))
	})
}

// A carry or borrow out of one lane must never reach its neighbors.
func TestNoCrossLaneCarry(t *testing.T) {
	for top := 0; top < 256; top++ {
		for other := 0; other < 256; other++ {
			a := FromArray([8]byte{0, 1, 2, 3, 4, 5, 6, byte(top)})
			b := FromArray([8]byte{7, 6, 5, 4, 3, 2, 1, byte(other)})

			sum := a.Add(b).ToArray()
			for i := 0; i < 7; i++ {
				if sum[i] != 7 {
					t.Fatalf("Add lane 7 = %d + %d: lane %d: got %d, want 7", top, other, i, sum[i])
				}
			}
			if want := byte(top) + byte(other); sum[7] != want {
				t.Fatalf("Add lane 7 = %d + %d: got %d, want %d", top, other, sum[7], want)
			}

			diff := b.Sub(a).ToArray()
			for i := 0; i < 7; i++ {
				if want := byte(7 - 2*i); diff[i] != want {
					t.Fatalf("Sub lane 7 = %d - %d: lane %d: got %d, want %d", other, top, i, diff[i], want)
				}
			}
		}
	}
}

func TestAbsDiff(t *testing.T) {
	a := FromArray([8]byte{6, 8, 10, 12, 1, 0, 5, 2})
	b := FromArray([8]byte{1, 2, 3, 4, 255, 254, 0, 0})
	want := [8]byte{5, 6, 7, 8, 254, 254, 5, 2}
	if diff := cmp.Diff(want, a.AbsDiff(b).ToArray()); diff != "" {
		t.Errorf("AbsDiff mismatch (-want +got):\n%s", diff)
	}
	if a.AbsDiff(b) != b.AbsDiff(a) {
		t.Errorf("AbsDiff is not symmetric: %v vs %v", a.AbsDiff(b), b.AbsDiff(a))
	}
}

func TestAbsDiffAllLanes(t *testing.T) {
	checkBinary(t, "AbsDiff", U8x8.AbsDiff, func(a, b byte) byte {
		if a > b {
			return a - b
		}
		return b - a
	})
}

func TestMean(t *testing.T) {
	a := FromArray([8]byte{0, 1, 2, 3, 127, 128, 254, 255})
	b := FromArray([8]byte{255, 255, 254, 3, 255, 0, 64, 0})
	want := [8]byte{127, 128, 128, 3, 191, 64, 159, 127}
	if diff := cmp.Diff(want, a.Mean(b).ToArray()); diff != "" {
		t.Errorf("Mean mismatch (-want +got):\n%s", diff)
	}
}

func TestMeanAllLanes(t *testing.T) {
	checkBinary(t, "Mean", U8x8.Mean, func(a, b byte) byte {
		return byte((int(a) + int(b)) / 2)
	})
}

func TestAverageRoundAllLanes(t *testing.T) {
	checkBinary(t, "AverageRound", U8x8.AverageRound, func(a, b byte) byte {
		return byte((int(a) + int(b) + 1) / 2)
	})
}

func TestPopCount(t *testing.T) {
	a := FromArray([8]byte{0x00, 0x01, 0x10, 0x03, 0x0f, 0xf0, 0xff, 0xfe})
	want := [8]byte{0, 1, 1, 2, 4, 4, 8, 7}
	if diff := cmp.Diff(want, a.PopCount().ToArray()); diff != "" {
		t.Errorf("PopCount mismatch (-want +got):\n%s", diff)
	}
}

func TestPopCountAllLanes(t *testing.T) {
	checkBinary(t, "PopCount", func(a, _ U8x8) U8x8 { return a.PopCount() }, func(a, _ byte) byte {
		return byte(bits.OnesCount8(a))
	})
}

func TestShift(t *testing.T) {
	v := FromArray([8]byte{0x01, 0x80, 0xff, 0x0f, 0xf0, 0x55, 0xaa, 0x00})
	for k := uint(0); k <= 9; k++ {
		left := v.ShiftLeft(k).ToArray()
		right := v.ShiftRight(k).ToArray()
		for i, x := range v.ToArray() {
			var wantL, wantR byte
			if k < 8 {
				wantL, wantR = x<<k, x>>k
			}
			if left[i] != wantL {
				t.Errorf("ShiftLeft(%d): lane %d: got %#x, want %#x", k, i, left[i], wantL)
			}
			if right[i] != wantR {
				t.Errorf("ShiftRight(%d): lane %d: got %#x, want %#x", k, i, right[i], wantR)
			}
		}
	}
}
