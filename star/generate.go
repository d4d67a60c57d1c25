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
	"math"

	"github.com/akhenakh/starfield/rng"
)

// Seed offsets. Each attribute draws from its own index run so the draws
// for one star are uncorrelated.
const (
	radiusSeed    = 0
	azimuthSeed   = 1000
	polarSeed     = 2000
	colorSeed     = 3000
	sizeSeed      = 4000
	smallSizeSeed = 5000
	largeSizeSeed = 6000
	twinkleSeed   = 7000
)

const twoPi = float32(2 * math.Pi)

// Color is a linear RGB triple.
type Color struct {
	R, G, B float32
}

// Star colors. Palette lists them in bucket order.
var (
	White  = Color{1.0, 1.0, 1.0}
	Blue   = Color{0.6, 0.8, 1.0}
	Yellow = Color{1.0, 0.8, 0.4}
	Purple = Color{0.8, 0.6, 1.0}

	Palette = [4]Color{White, Blue, Yellow, Purple}
)

// Upper bounds of the white, blue and yellow buckets; purple takes the rest.
const (
	whiteCut  = 0.5
	blueCut   = 0.7
	yellowCut = 0.85
)

// Size distribution: SmallStarShare of the stars are small.
const (
	SmallStarShare = 0.7
	SmallSizeMin   = 1.0
	SmallSizeRange = 1.5
	LargeSizeMin   = 2.5
	LargeSizeRange = 2.0
)

// Initial twinkle before the first frame: InitialTwinkleMin + u*InitialTwinkleRange.
const (
	InitialTwinkleMin   = 0.8
	InitialTwinkleRange = 0.2
)

func acos32(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

// positionAt places star i on a spherical shell. The polar angle comes from
// acos(2u-1) so stars spread evenly instead of bunching at the poles.
func positionAt(src rng.Source, i int32, minRadius, span float32) (x, y, z float32) {
	tab := src.Table()

	radius := minRadius + float32(src.Float(i+radiusSeed)*span)
	theta := float32(src.Float(i+azimuthSeed) * twoPi)
	phi := acos32(float32(2*src.Float(i+polarSeed)) - 1)

	sinPhi := tab.Sin(phi)
	cosPhi := tab.Cos(phi)
	sinTheta := tab.Sin(theta)
	cosTheta := tab.Cos(theta)

	rs := float32(radius * sinPhi)
	return float32(rs * cosTheta), float32(rs * sinTheta), float32(radius * cosPhi)
}

func colorAt(src rng.Source, i int32) Color {
	u := src.Float(i + colorSeed)
	switch {
	case u < whiteCut:
		return White
	case u < blueCut:
		return Blue
	case u < yellowCut:
		return Yellow
	}
	return Purple
}

func sizeAt(src rng.Source, i int32, multiplier float32) float32 {
	small := SmallSizeMin + float32(src.Float(i+smallSizeSeed)*SmallSizeRange)
	large := LargeSizeMin + float32(src.Float(i+largeSizeSeed)*LargeSizeRange)
	base := large
	if src.Float(i+sizeSeed) < SmallStarShare {
		base = small
	}
	return float32(base * multiplier)
}

// GeneratePositions returns the positions of stars [start, start+count) on
// a shell between minRadius and maxRadius, using the default table.
func GeneratePositions(start, count int, minRadius, maxRadius float32) (xs, ys, zs []float32) {
	src := rng.New(nil)
	xs = make([]float32, count)
	ys = make([]float32, count)
	zs = make([]float32, count)
	for k := 0; k < count; k++ {
		xs[k], ys[k], zs[k] = positionAt(src, int32(start+k), minRadius, maxRadius-minRadius)
	}
	return xs, ys, zs
}

// GenerateColors returns the colors of stars [start, start+count).
func GenerateColors(start, count int) (rs, gs, bs []float32) {
	src := rng.New(nil)
	rs = make([]float32, count)
	gs = make([]float32, count)
	bs = make([]float32, count)
	for k := 0; k < count; k++ {
		c := colorAt(src, int32(start+k))
		rs[k], gs[k], bs[k] = c.R, c.G, c.B
	}
	return rs, gs, bs
}

// GenerateSizes returns the sizes of stars [start, start+count).
func GenerateSizes(start, count int, multiplier float32) []float32 {
	src := rng.New(nil)
	sizes := make([]float32, count)
	for k := 0; k < count; k++ {
		sizes[k] = sizeAt(src, int32(start+k), multiplier)
	}
	return sizes
}
