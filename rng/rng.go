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

// Package rng maps integer indices to reproducible pseudo-random values in
// [0, 1). It is stateless: the same index always gives the same value, so a
// star regenerated from its id looks identical every time.
package rng

import (
	"math"

	"github.com/akhenakh/starfield/trig"
)

// Hash constants of frac(sin(i*A + B) * C). They are chosen for visual
// spread only and carry no security meaning.
const (
	HashA = 12.9898
	HashB = 78.233
	HashC = 43758.547
)

// Source draws values through a specific lookup table. Scalar and batch
// calls on the same Source agree bit for bit.
type Source struct {
	tab *trig.Table
}

// New returns a Source reading sines from tab. A nil tab means trig.Default().
func New(tab *trig.Table) Source {
	if tab == nil {
		tab = trig.Default()
	}
	return Source{tab: tab}
}

// Table returns the lookup table backing s.
func (s Source) Table() *trig.Table { return s.tab }

// Float returns the value for index i.
func (s Source) Float(i int32) float32 {
	return frac(s.scaled(i))
}

// scaled is sin(i*A + B) * C before the fractional part is taken. Each
// operation is rounded to float32 on its own so the result matches the
// lane-wise batch path.
func (s Source) scaled(i int32) float32 {
	arg := float32(float32(i)*HashA) + HashB
	return float32(s.tab.Sin(arg) * HashC)
}

// frac returns x - floor(x), folding a rounded-up 1.0 back to 0.
func frac(x float32) float32 {
	f := x - float32(math.Floor(float64(x)))
	if f >= 1 {
		return 0
	}
	return f
}

var defaultSource = New(nil)

// Seed returns the value for index i using the default table.
func Seed(i int32) float32 {
	return defaultSource.Float(i)
}
