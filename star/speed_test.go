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
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestSpeedMultiplier(t *testing.T) {
	const never = -1e9
	tests := []struct {
		name      string
		moving    bool
		clickTime float64
		now       float64
		current   float32
		want      float32
	}{
		{"idle", false, never, 10, 1, 1},
		{"moving", true, never, 10, 1, 1 + (MovingBoost-1)*SpeedEasing},
		{"click now", false, 10, 10, 1, 1 + ClickBoost*SpeedEasing},
		{"click in the future", false, 12, 10, 1, 1 + ClickBoost*SpeedEasing},
		{"half decayed", false, 10, 10.6, 1, 1 + ClickBoost/2*SpeedEasing},
		{"fully decayed", false, 10, 11.2, 1, 1},
		{"moving and click", true, 10, 10, 1, 1 + (MaxSpeedMultiplier-1)*SpeedEasing},
		{"easing down", false, never, 10, 5, 5 + (1-5)*SpeedEasing},
		{"settled at max", true, 10, 10, MaxSpeedMultiplier, MaxSpeedMultiplier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpeedMultiplier(tt.moving, tt.clickTime, tt.now, tt.current)
			assert.InDelta(t, tt.want, got, 1e-4)
		})
	}
}

func TestSpeedMultiplierConverges(t *testing.T) {
	m := float32(1)
	for i := 0; i < 100; i++ {
		m = SpeedMultiplier(true, -1e9, float64(i), m)
	}
	assert.InDelta(t, MovingBoost, m, 1e-3)
}

func TestLerpClamp(t *testing.T) {
	assert.Equal(t, float32(2), Lerp(2, 10, 0))
	assert.Equal(t, float32(10), Lerp(2, 10, 1))
	assert.Equal(t, float32(6), Lerp(2, 10, 0.5))

	assert.Equal(t, float32(1), Clamp(-3, 1, 5))
	assert.Equal(t, float32(5), Clamp(9, 1, 5))
	assert.Equal(t, float32(2.5), Clamp(2.5, 1, 5))
}

func TestDistanceAndAngles(t *testing.T) {
	assert.InDelta(t, 5, Distance(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 4, 0}), 1e-6)
	assert.InDelta(t, 13, Distance(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 13, 6}), 1e-5)
	assert.Zero(t, Distance(mgl32.Vec3{7, 8, 9}, mgl32.Vec3{7, 8, 9}))

	assert.InDelta(t, math.Pi, DegToRad(180), 1e-6)
	assert.InDelta(t, math.Pi/2, DegToRad(90), 1e-6)
}

func TestRotationDelta(t *testing.T) {
	got := RotationDelta(0.1, -0.2, 2, 0.5)
	assert.InDelta(t, 0.1, got[0], 1e-6)
	assert.InDelta(t, -0.2, got[1], 1e-6)

	assert.Equal(t, [2]float32{0, 0}, RotationDelta(1, 1, 3, 0))
}

func TestRotatePositions(t *testing.T) {
	xs, ys, zs := GeneratePositions(0, 37, 20, 150)
	dx, dy, dz := make([]float32, 37), make([]float32, 37), make([]float32, 37)

	RotatePositions(mgl32.Ident3(), xs, ys, zs, dx, dy, dz)
	for i := range xs {
		assert.Equal(t, []float32{xs[i], ys[i], zs[i]}, []float32{dx[i], dy[i], dz[i]})
	}

	m := mgl32.Rotate3DY(mgl32.DegToRad(33)).Mul3(mgl32.Rotate3DX(mgl32.DegToRad(-71)))
	RotatePositions(m, xs, ys, zs, dx, dy, dz)
	want := make([]mgl32.Vec3, len(xs))
	got := make([]mgl32.Vec3, len(xs))
	for i := range xs {
		want[i] = m.Mul3x1(mgl32.Vec3{xs[i], ys[i], zs[i]})
		got[i] = mgl32.Vec3{dx[i], dy[i], dz[i]}
		// Rotation keeps the distance to the origin.
		assert.InDelta(t, want[i].Len(), got[i].Len(), 1e-3)
	}
	// The batch path fuses multiply-adds, mgl32 does not.
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("rotated positions mismatch (-mgl32 +batch):\n%s", diff)
	}
}
