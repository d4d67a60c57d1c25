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
	"github.com/akhenakh/starfield/frustum"
)

// CullByFrustum marks the stars inside the frustum of vp, a column-major
// 4x4 view-projection matrix, and returns the live mask with the number of
// visible real stars. Stars up to margin behind a plane still count as
// inside.
//
// A matrix that is not exactly 16 floats marks every star visible.
// Padding slots are never culled.
func (p *Pool) CullByFrustum(vp []float32, margin float32) (*bitmask.Mask, int) {
	if p.visibility == nil {
		return bitmask.New(0), 0
	}

	planes, ok := frustum.FromSlice(vp)
	if !ok {
		if debugEnabled() {
			Logger().Debug("star: degenerate view-projection, culling skipped", "len", len(vp))
		}
		p.visibility.SetAll(true)
		p.syncByteMask()
		return p.visibility, p.count
	}

	if p.count > 0 {
		BaseCullFrustum(&planes, p.x[:p.count], p.y[:p.count], p.z[:p.count], margin, p.visibility, p.scratch)
	}
	p.visibility.SetRange(p.count, p.capacity, true)
	p.syncByteMask()
	return p.visibility, p.visibility.CountRange(0, p.count)
}

func (p *Pool) syncByteMask() {
	if p.visBytes != nil {
		p.visibility.Expand(p.visBytes)
	}
}

// VisibleIndices appends the indices of the visible real stars to dst.
func (p *Pool) VisibleIndices(dst []uint32) []uint32 {
	if p.visibility == nil {
		return dst
	}
	return p.visibility.AppendSet(dst, p.count)
}
