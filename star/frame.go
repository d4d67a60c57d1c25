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
	"time"

	"github.com/google/uuid"
)

// DirtyFlags tells the host which buffers a frame update touched.
type DirtyFlags uint8

const (
	// DirtyPositions is set on the first frame after a build, when
	// positions, colors and sizes are new to the host.
	DirtyPositions DirtyFlags = 1 << iota
	// DirtyEffects is set whenever twinkle and sparkle were recomputed.
	DirtyEffects
	// DirtyVisibility is set when the frame ran frustum culling.
	DirtyVisibility
	// DirtyCoherence is set when the Changed mask was refreshed.
	DirtyCoherence
)

// Has reports whether every flag in f is set.
func (d DirtyFlags) Has(f DirtyFlags) bool { return d&f == f }

// FrameInput is what the host knows at the start of a frame. Times are in
// seconds.
type FrameInput struct {
	Time      float32
	DeltaTime float32

	// Moving and ClickTime drive the speed multiplier. SpeedMultiplier is
	// the value returned by the previous frame, 1 on the first.
	Moving          bool
	ClickTime       float64
	SpeedMultiplier float32

	// BaseRotation is the rotation speed per axis before the multiplier.
	BaseRotation [2]float32

	// ViewProjection, when non-nil, is culled against with Margin.
	ViewProjection []float32
	Margin         float32
}

// FrameResult is the small status a frame update returns. Bulk data stays
// in the pool's buffers.
type FrameResult struct {
	VisibleCount    int
	Changed         int
	SpeedMultiplier float32
	RotationDelta   [2]float32
	Dirty           DirtyFlags
}

// UpdateEffects recomputes twinkle and sparkle for every slot at time t.
// It does not allocate.
func (p *Pool) UpdateEffects(t float32) {
	if p.capacity == 0 {
		return
	}
	if p.opts.LOD {
		p.updateBands(t)
		return
	}
	BaseStarEffects(p.tab, p.x, p.y, p.twinkle, p.sparkle, p.scratch, t, p.opts.Quality)
}

// UpdateFrame runs one frame: speed easing, effects, optional coherence
// tracking and optional culling. A closed pool returns a zero result.
func (p *Pool) UpdateFrame(in FrameInput) FrameResult {
	if p.id == uuid.Nil {
		return FrameResult{}
	}
	start := time.Now()

	var res FrameResult
	if p.stats.Frames == 0 {
		res.Dirty |= DirtyPositions
	}

	res.SpeedMultiplier = SpeedMultiplier(in.Moving, in.ClickTime, float64(in.Time), in.SpeedMultiplier)
	res.RotationDelta = RotationDelta(in.BaseRotation[0], in.BaseRotation[1], res.SpeedMultiplier, in.DeltaTime)

	tracking := p.trackCoherence()
	p.UpdateEffects(in.Time)
	res.Dirty |= DirtyEffects
	if tracking {
		res.Changed = p.flagChanges()
		res.Dirty |= DirtyCoherence
	}

	if in.ViewProjection != nil {
		_, res.VisibleCount = p.CullByFrustum(in.ViewProjection, in.Margin)
		res.Dirty |= DirtyVisibility
	} else {
		res.VisibleCount = p.visibility.CountRange(0, p.count)
	}

	p.record(time.Since(start), res.VisibleCount)
	return res
}
