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

// Package pixel provides 8-bit grayscale point operations built on swar.
//
// Row functions take plain byte slices and process min(len) pixels, eight at
// a time, with the last partial block padded in registers. Gray is an image
// whose rows start on 8-byte boundaries, and Processor applies the row
// functions to whole images, optionally spread over a worker pool.
//
//	img := pixel.NewGray(640, 480)
//	proc := pixel.NewProcessor(pool)
//	if err := proc.Brighten(img, img, 40); err != nil {
//	    return err
//	}
package pixel

import "github.com/ajroetker/eightbytes/swar"

// Gray is a single-channel 8-bit image. Each row is padded to a multiple of
// eight bytes.
type Gray struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewGray creates a zeroed image. Non-positive dimensions give an empty image.
func NewGray(width, height int) *Gray {
	if width <= 0 || height <= 0 {
		return &Gray{}
	}
	stride := (width + swar.Lanes - 1) / swar.Lanes * swar.Lanes
	return &Gray{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// Width returns the image width in pixels.
func (g *Gray) Width() int {
	return g.width
}

// Height returns the image height in pixels.
func (g *Gray) Height() int {
	return g.height
}

// Stride returns the number of bytes per row, including padding.
func (g *Gray) Stride() int {
	return g.stride
}

// Row returns row y including its padding, or nil if y is out of range.
func (g *Gray) Row(y int) []byte {
	if y < 0 || y >= g.height {
		return nil
	}
	start := y * g.stride
	return g.data[start : start+g.stride]
}

// Pixels returns the width pixels of row y, or nil if y is out of range.
func (g *Gray) Pixels(y int) []byte {
	if y < 0 || y >= g.height {
		return nil
	}
	start := y * g.stride
	return g.data[start : start+g.width]
}

// At returns the pixel at (x, y), or 0 outside the image.
func (g *Gray) At(x, y int) byte {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.data[y*g.stride+x]
}

// Set sets the pixel at (x, y). Writes outside the image are ignored.
func (g *Gray) Set(x, y int, v byte) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.data[y*g.stride+x] = v
}

// Fill sets every pixel, padding included, to v.
func (g *Gray) Fill(v byte) {
	word := swar.Splat(v)
	for i := 0; i < len(g.data); i += swar.Lanes {
		word.Store(g.data[i:])
	}
}

// SameSize reports whether both images have the same dimensions.
func SameSize(a, b *Gray) bool {
	return a.width == b.width && a.height == b.height
}
