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
	"github.com/akhenakh/starfield/bitmask"
	"github.com/akhenakh/starfield/trig"
)

func abs32(d float32) float32 { return max(d, -d) }

// moved reports whether a star's twinkle or sparkle changed by more than
// threshold between two frames.
func moved(prevTwinkle, prevSparkle, twinkle, sparkle, threshold float32) bool {
	diff := max(abs32(twinkle-prevTwinkle), abs32(sparkle-prevSparkle))
	return !(threshold >= diff)
}

// StarsNeedingUpdate evaluates the effect of every star at time t and
// returns the indices whose twinkle or sparkle differs from the previous
// frame by more than threshold. It uses the same formula as the frame
// update, so it agrees with the pool's Changed mask.
func StarsNeedingUpdate(
	tab *trig.Table,
	xs, ys []float32,
	prevTwinkle, prevSparkle []float32,
	t, threshold float32,
	q Quality,
) []uint32 {
	n := min(len(xs), len(ys), len(prevTwinkle), len(prevSparkle))
	var out []uint32
	for i := 0; i < n; i++ {
		tw, sp := Effect(tab, xs[i], ys[i], t, q)
		if moved(prevTwinkle[i], prevSparkle[i], tw, sp, threshold) {
			out = append(out, uint32(i))
		}
	}
	return out
}

// Changed returns the coherence mask of the last frame, or nil when
// coherence tracking is off.
func (p *Pool) Changed() *bitmask.Mask { return p.changed }

// trackCoherence snapshots the current effect buffers before a frame.
func (p *Pool) trackCoherence() bool {
	if p.changed == nil {
		return false
	}
	copy(p.prevTwinkle, p.twinkle)
	copy(p.prevSparkle, p.sparkle)
	return true
}

// flagChanges fills the Changed mask after a frame and returns its count.
func (p *Pool) flagChanges() int {
	n := p.count
	return BaseCoherenceFlags(p.prevTwinkle[:n], p.prevSparkle[:n], p.twinkle[:n], p.sparkle[:n],
		p.opts.CoherenceThreshold, p.changed, p.scratch)
}
