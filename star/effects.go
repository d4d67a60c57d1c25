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

import "github.com/akhenakh/starfield/trig"

// Quality selects how much of the per-frame effect is evaluated.
type Quality uint8

const (
	// QualitySimple evaluates a slower, shallower twinkle and no sparkle.
	QualitySimple Quality = iota
	// QualityMedium evaluates the full twinkle and no sparkle.
	QualityMedium
	// QualityFull evaluates twinkle and sparkle.
	QualityFull
)

func (q Quality) String() string {
	switch q {
	case QualitySimple:
		return "simple"
	case QualityMedium:
		return "medium"
	case QualityFull:
		return "full"
	}
	return "unknown"
}

// Effect constants. They are tuned by eye.
const (
	TwinkleTimeFactor     = 3.0
	TwinklePositionFactor = 10.0
	TwinkleScale          = 0.3
	TwinkleOffset         = 0.7

	SparkleTimeFactor = 15.0
	SparkleXFactor    = 20.0
	SparkleYFactor    = 30.0
	SparkleThreshold  = 0.98
	SparkleScale      = 50.0 // 1 / (1 - SparkleThreshold)

	SimpleTimeFactor     = 2.0
	SimplePositionFactor = 5.0
	SimpleScale          = 0.2
	SimpleOffset         = 0.8
)

// wave is base = sin(t*time + x*px + y*py) * scale + offset.
type wave struct {
	time, px, py, scale, offset float32
}

var (
	fullWave   = wave{TwinkleTimeFactor, TwinklePositionFactor, TwinklePositionFactor, TwinkleScale, TwinkleOffset}
	simpleWave = wave{SimpleTimeFactor, SimplePositionFactor, SimplePositionFactor, SimpleScale, SimpleOffset}
)

func (q Quality) wave() wave {
	if q == QualitySimple {
		return simpleWave
	}
	return fullWave
}

// Effect returns the twinkle and sparkle of a star at (x, y) at time t.
// The returned twinkle already includes the sparkle boost.
func Effect(tab *trig.Table, x, y, t float32, q Quality) (twinkle, sparkle float32) {
	return effectAt(tab, x, y, float32(t*q.wave().time), float32(t*SparkleTimeFactor), q)
}

// effectAt takes the time terms precomputed by the caller. Each product is
// rounded to float32 on its own, matching the lane arithmetic.
func effectAt(tab *trig.Table, x, y, tw, ts float32, q Quality) (twinkle, sparkle float32) {
	w := q.wave()
	arg := tw + (float32(x*w.px) + float32(y*w.py))
	base := float32(tab.Sin(arg)*w.scale) + w.offset
	if q != QualityFull {
		return base, 0
	}

	phase := tab.Sin(ts + (float32(x*SparkleXFactor) + float32(y*SparkleYFactor)))
	// NaN phases take this branch, as they do in the lane compare.
	if !(SparkleThreshold >= phase) {
		sparkle = float32(phase-SparkleThreshold) * SparkleScale
	}
	return base + sparkle, sparkle
}
