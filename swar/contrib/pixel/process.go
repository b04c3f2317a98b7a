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

import (
	"errors"
	"fmt"

	"github.com/ajroetker/eightbytes/swar/contrib/workerpool"
)

// ErrSizeMismatch is returned when images passed to one Processor call have
// different dimensions.
var ErrSizeMismatch = errors.New("pixel: image sizes differ")

// Processor applies row operations to whole images. Rows are split across
// the workers of its pool; a Processor with a nil pool runs on the caller's
// goroutine.
type Processor struct {
	pool *workerpool.Pool
}

// NewProcessor returns a Processor using pool, which may be nil.
func NewProcessor(pool *workerpool.Pool) *Processor {
	return &Processor{pool: pool}
}

// Brighten sets dst to src with delta added to every pixel, saturating.
func (p *Processor) Brighten(dst, src *Gray, delta byte) error {
	if err := checkSize(dst, src); err != nil {
		return err
	}
	p.rows(dst.height, func(y int) {
		Brighten(dst.Pixels(y), src.Pixels(y), delta)
	})
	return nil
}

// Darken sets dst to src with delta subtracted from every pixel, saturating.
func (p *Processor) Darken(dst, src *Gray, delta byte) error {
	if err := checkSize(dst, src); err != nil {
		return err
	}
	p.rows(dst.height, func(y int) {
		Darken(dst.Pixels(y), src.Pixels(y), delta)
	})
	return nil
}

// Blend sets dst to the rounded average of a and b.
func (p *Processor) Blend(dst, a, b *Gray) error {
	if err := checkSize(dst, a, b); err != nil {
		return err
	}
	p.rows(dst.height, func(y int) {
		Average(dst.Pixels(y), a.Pixels(y), b.Pixels(y))
	})
	return nil
}

// Difference sets dst to the per-pixel absolute difference of a and b.
func (p *Processor) Difference(dst, a, b *Gray) error {
	if err := checkSize(dst, a, b); err != nil {
		return err
	}
	p.rows(dst.height, func(y int) {
		AbsDiff(dst.Pixels(y), a.Pixels(y), b.Pixels(y))
	})
	return nil
}

// Threshold sets dst pixels to above where src > t and to below elsewhere.
func (p *Processor) Threshold(dst, src *Gray, t, above, below byte) error {
	if err := checkSize(dst, src); err != nil {
		return err
	}
	p.rows(dst.height, func(y int) {
		Threshold(dst.Pixels(y), src.Pixels(y), t, above, below)
	})
	return nil
}

// SumAbsDiff returns the sum of absolute pixel differences between a and b.
func (p *Processor) SumAbsDiff(a, b *Gray) (int, error) {
	if err := checkSize(a, b); err != nil {
		return 0, err
	}
	sum := func(start, end int) int {
		total := 0
		for y := start; y < end; y++ {
			total += SumAbsDiff(a.Pixels(y), b.Pixels(y))
		}
		return total
	}
	if p.pool == nil {
		return sum(0, a.height), nil
	}
	return p.pool.ParallelSum(a.height, sum), nil
}

func (p *Processor) rows(height int, fn func(y int)) {
	each := func(start, end int) {
		for y := start; y < end; y++ {
			fn(y)
		}
	}
	if p.pool == nil {
		each(0, height)
		return
	}
	p.pool.ParallelFor(height, each)
}

func checkSize(first *Gray, rest ...*Gray) error {
	for _, g := range rest {
		if !SameSize(first, g) {
			return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, first.width, first.height, g.width, g.height)
		}
	}
	return nil
}
