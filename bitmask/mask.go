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

// Package bitmask implements a boolean array packed one bit per element
// into 64-bit words. Element k lives in word k/64 at bit k%64.
package bitmask

import "math/bits"

// WordBits is the number of elements stored per word.
const WordBits = 64

// Mask is a fixed-length bitpacked boolean array.
type Mask struct {
	words []uint64
	n     int
}

// New returns a mask of n elements, all false.
func New(n int) *Mask {
	if n < 0 {
		n = 0
	}
	return &Mask{
		words: make([]uint64, (n+WordBits-1)/WordBits),
		n:     n,
	}
}

// Len returns the number of elements.
func (m *Mask) Len() int { return m.n }

// Words returns the backing words. Bits past Len are always zero.
func (m *Mask) Words() []uint64 { return m.words }

// Get reports element k. Out of range indices read as false.
func (m *Mask) Get(k int) bool {
	if k < 0 || k >= m.n {
		return false
	}
	return m.words[k/WordBits]&(1<<(uint(k)%WordBits)) != 0
}

// Set assigns element k. Out of range indices are ignored.
func (m *Mask) Set(k int, v bool) {
	if k < 0 || k >= m.n {
		return
	}
	bit := uint64(1) << (uint(k) % WordBits)
	if v {
		m.words[k/WordBits] |= bit
	} else {
		m.words[k/WordBits] &^= bit
	}
}

// SetAll assigns every element.
func (m *Mask) SetAll(v bool) {
	var fill uint64
	if v {
		fill = ^uint64(0)
	}
	for i := range m.words {
		m.words[i] = fill
	}
	m.clearTail()
}

// SetRange assigns elements [lo, hi).
func (m *Mask) SetRange(lo, hi int, v bool) {
	lo = max(lo, 0)
	hi = min(hi, m.n)
	for k := lo; k < hi; k++ {
		m.Set(k, v)
	}
}

// clearTail zeroes the bits past Len in the last word.
func (m *Mask) clearTail() {
	if r := m.n % WordBits; r != 0 && len(m.words) > 0 {
		m.words[len(m.words)-1] &= (uint64(1) << uint(r)) - 1
	}
}

// Count returns the number of true elements.
func (m *Mask) Count() int {
	c := 0
	for _, w := range m.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// CountRange returns the number of true elements in [lo, hi).
func (m *Mask) CountRange(lo, hi int) int {
	lo = max(lo, 0)
	hi = min(hi, m.n)
	c := 0
	for ; lo < hi && lo%WordBits != 0; lo++ {
		if m.Get(lo) {
			c++
		}
	}
	for ; lo+WordBits <= hi; lo += WordBits {
		c += bits.OnesCount64(m.words[lo/WordBits])
	}
	for ; lo < hi; lo++ {
		if m.Get(lo) {
			c++
		}
	}
	return c
}

// Expand writes one byte per element to dst: 1 for true, 0 for false.
// It writes min(len(dst), Len()) bytes.
func (m *Mask) Expand(dst []uint8) {
	n := min(len(dst), m.n)
	for k := 0; k < n; k++ {
		if m.words[k/WordBits]&(1<<(uint(k)%WordBits)) != 0 {
			dst[k] = 1
		} else {
			dst[k] = 0
		}
	}
}

// AppendSet appends the indices of true elements below limit to dst.
func (m *Mask) AppendSet(dst []uint32, limit int) []uint32 {
	limit = min(limit, m.n)
	for wi, w := range m.words {
		for w != 0 {
			k := wi*WordBits + bits.TrailingZeros64(w)
			if k >= limit {
				return dst
			}
			dst = append(dst, uint32(k))
			w &= w - 1
		}
	}
	return dst
}
