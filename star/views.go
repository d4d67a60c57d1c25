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
	"unsafe"

	"github.com/google/uuid"
)

// View is a borrowed, read-only handle on one pool buffer. It stays valid
// until the owning pool is rebuilt or closed; Pool.Owns tells whether it
// still is. Writing through Slice is a contract violation.
type View[T float32 | uint64 | uint8] struct {
	data []T
}

// Addr returns the address of the first element, or 0 for an empty view.
func (v View[T]) Addr() uintptr {
	if len(v.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(v.data)))
}

// Len returns the number of elements.
func (v View[T]) Len() int { return len(v.data) }

// At returns element i. It panics if i is out of range.
func (v View[T]) At(i int) T { return v.data[i] }

// Slice returns the underlying buffer without copying.
func (v View[T]) Slice() []T { return v.data }

// CopyTo copies the view into dst and returns the number of elements copied.
func (v View[T]) CopyTo(dst []T) int { return copy(dst, v.data) }

// Views is the set of buffers a host reads from. Positions, colors and
// sizes are fixed after a build; Twinkle, Sparkle, Visibility,
// VisibilityBytes and Changed change on every frame update.
type Views struct {
	PoolID   uuid.UUID
	Count    int
	Capacity int

	X, Y, Z          View[float32]
	R, G, B          View[float32]
	Size             View[float32]
	Twinkle, Sparkle View[float32]

	// Visibility is bitpacked: star k is bit k%64 of word k/64.
	Visibility View[uint64]
	// VisibilityBytes holds one 0/1 byte per star. Empty unless ByteMask is set.
	VisibilityBytes View[uint8]
	// Changed uses the same packing as Visibility. Empty unless coherence
	// tracking is on.
	Changed View[uint64]
}

// Views returns borrowed handles on every buffer of the current build.
func (p *Pool) Views() Views {
	v := Views{
		PoolID:          p.id,
		Count:           p.count,
		Capacity:        p.capacity,
		X:               View[float32]{p.x},
		Y:               View[float32]{p.y},
		Z:               View[float32]{p.z},
		R:               View[float32]{p.r},
		G:               View[float32]{p.g},
		B:               View[float32]{p.b},
		Size:            View[float32]{p.size},
		Twinkle:         View[float32]{p.twinkle},
		Sparkle:         View[float32]{p.sparkle},
		VisibilityBytes: View[uint8]{p.visBytes},
	}
	if p.visibility != nil {
		v.Visibility = View[uint64]{p.visibility.Words()}
	}
	if p.changed != nil {
		v.Changed = View[uint64]{p.changed.Words()}
	}
	return v
}

// Owns reports whether v was taken from the current build of p.
func (p *Pool) Owns(v Views) bool {
	return p.id != uuid.Nil && v.PoolID == p.id
}
