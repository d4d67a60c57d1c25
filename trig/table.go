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

// Package trig provides a fixed-size sine lookup table that serves every
// angular evaluation in the star pipeline. A lookup costs one modulo, one
// multiply and one array read, and the error is bounded by the table step.
package trig

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/ajroetker/go-highway/hwy"
)

// DefaultSize is the number of entries of the default table. One entry
// covers 2π/1024 radians.
const DefaultSize = 1024

const (
	twoPi  = float32(2 * math.Pi)
	halfPi = float32(math.Pi / 2)
)

// ErrTableSize is returned by NewTable when the size is not a power of two.
var ErrTableSize = errors.New("trig: table size must be a power of two >= 2")

// Table holds sin(x) sampled over one full turn [0, 2π).
type Table struct {
	values []float32
	scale  float32 // len(values) / 2π
}

// NewTable builds a table with size entries spanning [0, 2π).
func NewTable(size int) (*Table, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrTableSize, size)
	}
	t := &Table{
		values: make([]float32, size),
		scale:  float32(size) / twoPi,
	}
	for i := range t.values {
		t.values[i] = float32(math.Sin(2 * math.Pi * float64(i) / float64(size)))
	}
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the shared 1024-entry table. It is built on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable, _ = NewTable(DefaultSize)
	})
	return defaultTable
}

// Size returns the number of entries.
func (t *Table) Size() int { return len(t.values) }

// Index returns the table slot used for angle x, or -1 when x is not finite.
func (t *Table) Index(x float32) int {
	if x != x || math.IsInf(float64(x), 0) {
		return -1
	}
	n := float32(math.Mod(float64(x), float64(twoPi)))
	n = float32(math.Mod(float64(n+twoPi), float64(twoPi)))
	idx := int(n * t.scale)
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.values)-1 {
		idx = len(t.values) - 1
	}
	return idx
}

// Sin returns the tabulated sine of x. Non-finite input yields NaN.
func (t *Table) Sin(x float32) float32 {
	idx := t.Index(x)
	if idx < 0 {
		return float32(math.NaN())
	}
	return t.values[idx]
}

// Cos returns the tabulated cosine of x, read a quarter turn ahead.
func (t *Table) Cos(x float32) float32 {
	return t.Sin(x + halfPi)
}

// SinVec performs one table read per lane of v. The results are written to
// buf, which must hold at least v.NumLanes() values, and returned as a vector.
func (t *Table) SinVec(v hwy.Vec[float32], buf []float32) hwy.Vec[float32] {
	data := v.Data()
	n := v.NumLanes()
	buf = buf[:n]
	for i := range buf {
		buf[i] = t.Sin(data[i])
	}
	return hwy.Load(buf)
}

// CosVec is SinVec shifted by a quarter turn.
func (t *Table) CosVec(v hwy.Vec[float32], buf []float32) hwy.Vec[float32] {
	return t.SinVec(hwy.Add(v, hwy.Set(halfPi)), buf)
}

// SinBatch writes the tabulated sine of every src value to dst.
func (t *Table) SinBatch(src, dst []float32) {
	n := min(len(src), len(dst))
	for i := 0; i < n; i++ {
		dst[i] = t.Sin(src[i])
	}
}

// CosBatch writes the tabulated cosine of every src value to dst.
func (t *Table) CosBatch(src, dst []float32) {
	n := min(len(src), len(dst))
	for i := 0; i < n; i++ {
		dst[i] = t.Cos(src[i])
	}
}
