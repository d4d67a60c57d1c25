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

package star

import (
	"errors"
	"fmt"

	"github.com/akhenakh/starfield/trig"
)

var (
	// ErrNegativeCount is returned for a negative star count.
	ErrNegativeCount = errors.New("star: negative count")
	// ErrRadiusRange is returned when the shell radii are negative or reversed.
	ErrRadiusRange = errors.New("star: invalid radius range")
	// ErrLaneWidth is returned when the lane width is not a power of two.
	ErrLaneWidth = errors.New("star: lane width must be a positive power of two")
)

// Defaults used by NewPoolOptions.
const (
	DefaultMinRadius      = 20
	DefaultMaxRadius      = 150
	DefaultSizeMultiplier = 1
	DefaultLaneWidth      = 16
)

// PoolOptions configures a Pool. All fields are read once at build time.
// A zero LaneWidth or TableSize takes the default, so a literal that only
// sets the radii is valid.
type PoolOptions struct {
	// MinRadius and MaxRadius bound the spherical shell stars are placed on.
	MinRadius, MaxRadius float32
	// SizeMultiplier scales every generated size.
	SizeMultiplier float32
	// LaneWidth is the capacity alignment. Capacity is the star count
	// rounded up to a multiple of it.
	LaneWidth int
	// TableSize is the number of entries of the sine table.
	TableSize int
	// Quality is the effect quality used when LOD is off.
	Quality Quality
	// CoherenceThreshold enables change tracking when positive: after each
	// frame the Changed mask flags stars whose twinkle or sparkle moved by
	// more than the threshold.
	CoherenceThreshold float32
	// ByteMask additionally keeps a one-byte-per-star copy of the
	// visibility mask.
	ByteMask bool
	// LOD splits the pool into near, medium and far bands whose quality is
	// picked by Tier.
	LOD  bool
	Tier Tier
}

// NewPoolOptions returns default options.
func NewPoolOptions() PoolOptions {
	return PoolOptions{
		MinRadius:      DefaultMinRadius,
		MaxRadius:      DefaultMaxRadius,
		SizeMultiplier: DefaultSizeMultiplier,
		LaneWidth:      DefaultLaneWidth,
		TableSize:      trig.DefaultSize,
		Quality:        QualityFull,
		Tier:           TierBalanced,
	}
}

// withDefaults fills the zero sizing fields.
func (o PoolOptions) withDefaults() PoolOptions {
	if o.LaneWidth == 0 {
		o.LaneWidth = DefaultLaneWidth
	}
	if o.TableSize == 0 {
		o.TableSize = trig.DefaultSize
	}
	return o
}

func (o PoolOptions) validate() error {
	if o.MinRadius < 0 || o.MinRadius > o.MaxRadius {
		return fmt.Errorf("%w: min %v, max %v", ErrRadiusRange, o.MinRadius, o.MaxRadius)
	}
	if o.LaneWidth < 1 || o.LaneWidth&(o.LaneWidth-1) != 0 {
		return fmt.Errorf("%w: %d", ErrLaneWidth, o.LaneWidth)
	}
	return nil
}

// roundUp rounds n up to a multiple of width, a power of two.
func roundUp(n, width int) int {
	return (n + width - 1) &^ (width - 1)
}
