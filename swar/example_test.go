package swar_test

import (
	"fmt"

	"github.com/ajroetker/eightbytes/swar"
)

func ExampleU8x8_Add() {
	a := swar.FromArray([8]byte{0, 10, 250, 255, 1, 2, 3, 4})
	b := swar.FromArray([8]byte{5, 5, 10, 1, 1, 0, 0, 0})
	fmt.Println(a.Add(b))
	fmt.Println(a.SaturatingAdd(b))
	// Output:
	// u8x8[5 15 4 0 2 2 3 4]
	// u8x8[5 15 255 255 2 2 3 4]
}

func ExampleSelect() {
	a := swar.FromArray([8]byte{1, 2, 3, 4, 5, 6, 7, 8})
	b := swar.FromArray([8]byte{0, 9, 0, 0, 0, 0, 0, 0})
	mask := a.LessThan(b)
	fmt.Println(mask)
	fmt.Println(swar.Select(mask, a, b))
	// Output:
	// mask8x8[false true false false false false false false]
	// u8x8[0 2 0 0 0 0 0 0]
}

func ExampleMask8x8_SelectBytes() {
	mask := swar.MaskFromBitmaskBE(0b10101100)
	fmt.Printf("% x\n", mask.SelectBytes(0xff, 0x01).ToArray())
	// Output:
	// ff 01 ff 01 ff ff 01 01
}
