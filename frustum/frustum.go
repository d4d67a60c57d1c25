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

// Package frustum extracts the six clip planes of a view-projection matrix
// and classifies points against them.
package frustum

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane order returned by FromMat4.
const (
	Left = iota
	Right
	Bottom
	Top
	Near
	Far
)

// Planes holds six planes (a, b, c, d) with ax + by + cz + d = 0. The
// normal (a, b, c) points into the frustum and is unit length unless the
// plane was degenerate.
type Planes [6]mgl32.Vec4

// FromMat4 extracts the planes of vp (OpenGL clip space, z in [-1, 1]).
func FromMat4(vp mgl32.Mat4) Planes {
	var p Planes

	// Left: row 3 + row 0
	p[Left] = combine(vp, 0, 1)
	// Right: row 3 - row 0
	p[Right] = combine(vp, 0, -1)
	// Bottom: row 3 + row 1
	p[Bottom] = combine(vp, 1, 1)
	// Top: row 3 - row 1
	p[Top] = combine(vp, 1, -1)
	// Near: row 3 + row 2
	p[Near] = combine(vp, 2, 1)
	// Far: row 3 - row 2
	p[Far] = combine(vp, 2, -1)

	for i := range p {
		length := float32(math.Sqrt(float64(p[i][0]*p[i][0] + p[i][1]*p[i][1] + p[i][2]*p[i][2])))
		if length > 0 {
			p[i] = p[i].Mul(1.0 / length)
		}
	}
	return p
}

func combine(vp mgl32.Mat4, row int, sign float32) mgl32.Vec4 {
	return mgl32.Vec4{
		vp.At(3, 0) + sign*vp.At(row, 0),
		vp.At(3, 1) + sign*vp.At(row, 1),
		vp.At(3, 2) + sign*vp.At(row, 2),
		vp.At(3, 3) + sign*vp.At(row, 3),
	}
}

// FromSlice reads a column-major 4x4 matrix, the layout of mgl32.Mat4 and
// of WebGL uniforms. ok is false unless m has exactly 16 elements.
func FromSlice(m []float32) (p Planes, ok bool) {
	if len(m) != 16 {
		return p, false
	}
	var vp mgl32.Mat4
	copy(vp[:], m)
	return FromMat4(vp), true
}

// Distance returns the signed distance from (x, y, z) to plane i.
func (p *Planes) Distance(i int, x, y, z float32) float32 {
	pl := p[i]
	return float32(pl[0]*x) + float32(pl[1]*y) + float32(pl[2]*z) + pl[3]
}

// Contains reports whether (x, y, z) is no further than margin behind any
// plane. A NaN distance counts as outside.
func (p *Planes) Contains(x, y, z, margin float32) bool {
	for i := range p {
		if !(p.Distance(i, x, y, z) >= -margin) {
			return false
		}
	}
	return true
}
