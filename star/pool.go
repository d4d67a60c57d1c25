// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package star implements a persistent pool of point stars in
// structure-of-arrays layout, with batch kernels that generate the stars
// once and refresh their twinkle, sparkle and visibility every frame.
package star

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/akhenakh/starfield/bitmask"
	"github.com/akhenakh/starfield/rng"
	"github.com/akhenakh/starfield/trig"
)

// Pool owns every per-star buffer. Buffers are allocated once per build
// with length Capacity and never move until the next Rebuild or Close.
//
// A Pool is not safe for concurrent use. Hosts read the buffers through
// Views between calls, never during one.
type Pool struct {
	id       uuid.UUID
	opts     PoolOptions
	tab      *trig.Table
	src      rng.Source
	count    int
	capacity int

	x, y, z          []float32
	r, g, b          []float32
	size             []float32
	twinkle, sparkle []float32

	visibility *bitmask.Mask
	visBytes   []uint8

	// Coherence state, allocated only when CoherenceThreshold > 0.
	changed     *bitmask.Mask
	prevTwinkle []float32
	prevSparkle []float32

	// Lane-sized buffers shared by the kernels.
	scratch []float32

	stats Stats
	times updateTimes
}

// NewPool builds a pool of count stars. A nil opts means NewPoolOptions().
func NewPool(count int, opts *PoolOptions) (*Pool, error) {
	o := NewPoolOptions()
	if opts != nil {
		o = opts.withDefaults()
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	tab := trig.Default()
	if o.TableSize != trig.DefaultSize {
		t, err := trig.NewTable(o.TableSize)
		if err != nil {
			return nil, fmt.Errorf("star: %w", err)
		}
		tab = t
	}

	p := &Pool{
		opts: o,
		tab:  tab,
		src:  rng.New(tab),
	}
	if err := p.build(count); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pool) build(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	capacity := roundUp(count, p.opts.LaneWidth)
	lanes := hwy.Zero[float32]().NumLanes()

	p.id = uuid.New()
	p.count = count
	p.capacity = capacity
	p.stats = Stats{}
	p.times = updateTimes{}

	p.x = make([]float32, capacity)
	p.y = make([]float32, capacity)
	p.z = make([]float32, capacity)
	p.r = make([]float32, capacity)
	p.g = make([]float32, capacity)
	p.b = make([]float32, capacity)
	p.size = make([]float32, capacity)
	p.twinkle = make([]float32, capacity)
	p.sparkle = make([]float32, capacity)
	p.scratch = make([]float32, generateScratchVectors*lanes)

	p.visibility = bitmask.New(capacity)
	p.visibility.SetAll(true)
	p.visBytes = nil
	if p.opts.ByteMask {
		p.visBytes = make([]uint8, capacity)
		p.visibility.Expand(p.visBytes)
	}

	p.changed = nil
	p.prevTwinkle, p.prevSparkle = nil, nil
	if p.opts.CoherenceThreshold > 0 {
		p.changed = bitmask.New(capacity)
		p.prevTwinkle = make([]float32, capacity)
		p.prevSparkle = make([]float32, capacity)
	}

	// Padding slots get real stars too; the host ignores them.
	BaseGeneratePositions(p.src, p.x, p.y, p.z, p.scratch, p.opts.MinRadius, p.opts.MaxRadius)
	BaseGenerateColors(p.src, p.r, p.g, p.b, p.scratch)
	BaseGenerateSizes(p.src, p.size, p.scratch, p.opts.SizeMultiplier)

	// Twinkle holds a resting value until the first frame.
	p.src.Fill(twinkleSeed, p.twinkle)
	for i, u := range p.twinkle {
		p.twinkle[i] = InitialTwinkleMin + float32(u*InitialTwinkleRange)
	}

	Logger().Debug("star pool built",
		"id", p.id,
		"count", count,
		"capacity", capacity,
		"lanes", lanes,
		"table", p.tab.Size())
	return nil
}

// Rebuild replaces every buffer with a freshly generated pool of count
// stars using the same options. Views taken before the call are retired.
func (p *Pool) Rebuild(count int) error {
	old := p.id
	if err := p.build(count); err != nil {
		return err
	}
	Logger().Debug("star pool rebuilt", "old", old, "id", p.id)
	return nil
}

// Close releases the buffers. A closed pool reports zero stars and its
// frame updates are no-ops; Rebuild brings it back.
func (p *Pool) Close() {
	Logger().Debug("star pool closed", "id", p.id)
	*p = Pool{opts: p.opts, tab: p.tab, src: p.src}
}

// ID identifies the current build of the pool. It is uuid.Nil once closed.
func (p *Pool) ID() uuid.UUID { return p.id }

// Count returns the number of real stars.
func (p *Pool) Count() int { return p.count }

// Capacity returns the number of slots in every buffer.
func (p *Pool) Capacity() int { return p.capacity }

// Options returns the options the pool was built with.
func (p *Pool) Options() PoolOptions { return p.opts }

// Table returns the sine table the pool generates and animates with.
func (p *Pool) Table() *trig.Table { return p.tab }

// Visibility returns the live visibility mask.
func (p *Pool) Visibility() *bitmask.Mask { return p.visibility }

// Bounds returns the axis-aligned box around the real stars.
func (p *Pool) Bounds() (lo, hi mgl32.Vec3) {
	n := p.count
	return BaseBounds(p.x[:n], p.y[:n], p.z[:n])
}
