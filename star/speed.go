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
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

// Speed multiplier tuning. Times are in seconds.
const (
	MovingBoost = 4.5
	ClickBoost  = 4.3
	ClickWindow = 1.2
	SpeedEasing = 0.2

	// MaxSpeedMultiplier is the moving boost times the full click boost.
	MaxSpeedMultiplier = MovingBoost * (1 + ClickBoost)
)

// SpeedMultiplier eases current toward the animation speed implied by the
// host's state: x4.5 while moving, times a click boost that starts at
// 1+4.3 and falls linearly to 1 over ClickWindow seconds after clickTime.
// A click in the future counts as just happened.
func SpeedMultiplier(moving bool, clickTime, now float64, current float32) float32 {
	target := float32(1)
	if moving {
		target *= MovingBoost
	}

	elapsed := max(now-clickTime, 0)
	if elapsed < ClickWindow {
		target *= ease.Linear(float32(elapsed), 1+ClickBoost, -ClickBoost, ClickWindow)
	}

	target = Clamp(target, 1, MaxSpeedMultiplier)
	return Lerp(current, target, SpeedEasing)
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return mgl32.DegToRad(deg)
}

// RotationDelta scales a base rotation speed (radians per second, per
// axis) by the speed multiplier and the frame's delta time.
func RotationDelta(baseX, baseY, multiplier, dt float32) [2]float32 {
	return [2]float32{
		baseX * multiplier * dt,
		baseY * multiplier * dt,
	}
}
