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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The frame path around the kernels must not allocate. An empty pool runs
// every step of UpdateFrame except the per-star kernels themselves.
func TestUpdateFrameBookkeepingAllocs(t *testing.T) {
	vp := lookDownZ(1000)
	inputs := map[string]FrameInput{
		"nil matrix":        {DeltaTime: 0.016, SpeedMultiplier: 1, Moving: true},
		"valid matrix":      {DeltaTime: 0.016, SpeedMultiplier: 1, ViewProjection: vp, Margin: 2},
		"degenerate matrix": {DeltaTime: 0.016, SpeedMultiplier: 1, ViewProjection: vp[:15]},
	}

	for _, lod := range []bool{false, true} {
		o := NewPoolOptions()
		o.LOD = lod
		o.ByteMask = true
		p, err := NewPool(0, &o)
		require.NoError(t, err)

		for name, in := range inputs {
			allocs := testing.AllocsPerRun(100, func() {
				in.Time += in.DeltaTime
				p.UpdateFrame(in)
			})
			assert.Zero(t, allocs, "lod=%v %s", lod, name)
		}

		allocs := testing.AllocsPerRun(100, func() { p.UpdateEffects(3) })
		assert.Zero(t, allocs, "lod=%v UpdateEffects", lod)
	}
}

func TestClosedPoolFrameAllocs(t *testing.T) {
	p, err := NewPool(100, nil)
	require.NoError(t, err)
	p.Close()

	in := FrameInput{Time: 1, ViewProjection: lookDownZ(10)}
	allocs := testing.AllocsPerRun(100, func() {
		p.UpdateFrame(in)
	})
	assert.Zero(t, allocs)
}

func TestDegenerateCullAllocs(t *testing.T) {
	o := NewPoolOptions()
	o.ByteMask = true
	p, err := NewPool(1000, &o)
	require.NoError(t, err)

	bad := make([]float32, 9)
	allocs := testing.AllocsPerRun(100, func() {
		if _, visible := p.CullByFrustum(bad, 0); visible != 1000 {
			t.Fatalf("visible = %d, want 1000", visible)
		}
	})
	assert.Zero(t, allocs)
}

func TestFrameHelpersAllocs(t *testing.T) {
	p, err := NewPool(500, nil)
	require.NoError(t, err)
	dst := make([]uint32, 0, p.Count())

	allocs := testing.AllocsPerRun(100, func() {
		dst = p.VisibleIndices(dst[:0])
		m := SpeedMultiplier(true, 1, 1.5, 1)
		_ = RotationDelta(0.1, 0.2, m, 0.016)
		_ = p.Stats()
	})
	assert.Zero(t, allocs)
	assert.Len(t, dst, 500)
}
