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

// Tier is the detail level used when LOD is on.
type Tier uint8

const (
	TierPerformance Tier = iota
	TierBalanced
	TierUltra
)

func (t Tier) String() string {
	switch t {
	case TierPerformance:
		return "performance"
	case TierBalanced:
		return "balanced"
	case TierUltra:
		return "ultra"
	}
	return "unknown"
}

// shares returns the near and medium fractions of the pool; far gets the
// rest. Unknown tiers behave like TierUltra.
func (t Tier) shares() (near, medium float32) {
	switch t {
	case TierPerformance:
		return 0.1, 0.3
	case TierBalanced:
		return 0.15, 0.35
	}
	return 0.2, 0.4
}

// Qualities returns the effect quality of the near, medium and far bands.
func (t Tier) Qualities() [3]Quality {
	switch t {
	case TierPerformance:
		return [3]Quality{QualitySimple, QualitySimple, QualitySimple}
	case TierBalanced:
		return [3]Quality{QualityFull, QualitySimple, QualitySimple}
	}
	return [3]Quality{QualityFull, QualityFull, QualitySimple}
}

// LODDistribution splits total stars into near, medium and far bands.
// Near and medium are rounded down, so far absorbs the remainder.
func LODDistribution(total int, tier Tier) (near, medium, far int) {
	if total <= 0 {
		return 0, 0, 0
	}
	nr, mr := tier.shares()
	near = int(float32(total) * nr)
	medium = int(float32(total) * mr)
	return near, medium, total - near - medium
}

// updateBands runs the effect kernel over consecutive index bands, each
// with the quality its tier assigns. Stars are placed at random, so an
// index band is a random sample of the field.
func (p *Pool) updateBands(t float32) {
	near, medium, _ := LODDistribution(p.capacity, p.opts.Tier)
	q := p.opts.Tier.Qualities()
	bounds := [4]int{0, near, near + medium, p.capacity}
	for band := 0; band < 3; band++ {
		lo, hi := bounds[band], bounds[band+1]
		if lo == hi {
			continue
		}
		BaseStarEffects(p.tab, p.x[lo:hi], p.y[lo:hi], p.twinkle[lo:hi], p.sparkle[lo:hi], p.scratch, t, q[band])
	}
}
