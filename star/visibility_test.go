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

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/starfield/bitmask"
	"github.com/akhenakh/starfield/frustum"
)

func lookDownZ(far float32) []float32 {
	proj := mgl32.Perspective(mgl32.DegToRad(90), 1, 1, far)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	vp := proj.Mul4(view)
	return vp[:]
}

func TestCullMatchesScalarReference(t *testing.T) {
	for _, count := range []int{1, 17, 1000, 4099} {
		p, err := NewPool(count, nil)
		require.NoError(t, err)

		vp := lookDownZ(1000)
		planes, ok := frustum.FromSlice(vp)
		require.True(t, ok)

		for _, margin := range []float32{0, 5} {
			mask, visible := p.CullByFrustum(vp, margin)
			v := p.Views()

			want := 0
			for i := 0; i < count; i++ {
				in := planes.Contains(v.X.At(i), v.Y.At(i), v.Z.At(i), margin)
				if in {
					want++
				}
				require.Equal(t, in, mask.Get(i), "count %d star %d margin %v", count, i, margin)
			}
			assert.Equal(t, want, visible)
			assert.Less(t, visible, count+1)

			// Padding slots stay visible.
			for i := count; i < p.Capacity(); i++ {
				assert.True(t, mask.Get(i))
			}
		}
	}
}

func TestCullFraction(t *testing.T) {
	p, err := NewPool(20000, nil)
	require.NoError(t, err)

	// A 90° square frustum sees a sixth of the sky.
	_, visible := p.CullByFrustum(lookDownZ(1000), 0)
	frac := float64(visible) / 20000
	assert.InDelta(t, 1.0/6, frac, 0.04)
}

func TestCullDegenerateMatrix(t *testing.T) {
	p, err := NewPool(100, nil)
	require.NoError(t, err)

	_, visible := p.CullByFrustum(lookDownZ(1000), 0)
	require.Less(t, visible, 100)

	for _, vp := range [][]float32{nil, make([]float32, 15), make([]float32, 17)} {
		mask, visible := p.CullByFrustum(vp, 0)
		assert.Equal(t, 100, visible)
		assert.Equal(t, p.Capacity(), mask.Count())
	}
}

func TestBaseCullFrustum(t *testing.T) {
	planes, ok := frustum.FromSlice(lookDownZ(100))
	require.True(t, ok)

	points := []struct {
		pos  mgl32.Vec3
		want bool
	}{
		{mgl32.Vec3{0, 0, -50}, true},
		{mgl32.Vec3{0, 0, 500}, false},
		{mgl32.Vec3{0, 0, -5000}, false},
		{mgl32.Vec3{1e6, 0, -50}, false},
		{mgl32.Vec3{0, -1e6, -50}, false},
		{mgl32.Vec3{10, 10, -20}, true},
	}

	// Repeat the points so they land in both full batches and the tail.
	const n = 6 * 7
	xs, ys, zs := make([]float32, n), make([]float32, n), make([]float32, n)
	for i := 0; i < n; i++ {
		pt := points[i%len(points)].pos
		xs[i], ys[i], zs[i] = pt[0], pt[1], pt[2]
	}
	mask := bitmask.New(n)
	BaseCullFrustum(&planes, xs, ys, zs, 0, mask, newScratch())
	for i := 0; i < n; i++ {
		assert.Equal(t, points[i%len(points)].want, mask.Get(i), "point %d %v", i, points[i%len(points)].pos)
	}
}

func TestVisibleIndices(t *testing.T) {
	p, err := NewPool(500, nil)
	require.NoError(t, err)
	mask, visible := p.CullByFrustum(lookDownZ(1000), 0)

	got := p.VisibleIndices(nil)
	require.Len(t, got, visible)
	var want []uint32
	for i := 0; i < p.Count(); i++ {
		if mask.Get(i) {
			want = append(want, uint32(i))
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("VisibleIndices mismatch (-want +got):\n%s", diff)
	}
}

func TestByteMaskFollowsCull(t *testing.T) {
	o := NewPoolOptions()
	o.ByteMask = true
	p, err := NewPool(300, &o)
	require.NoError(t, err)

	mask, _ := p.CullByFrustum(lookDownZ(1000), 0)
	bytes := p.Views().VisibilityBytes
	for i := 0; i < p.Capacity(); i++ {
		want := uint8(0)
		if mask.Get(i) {
			want = 1
		}
		require.Equal(t, want, bytes.At(i), "star %d", i)
	}
}
