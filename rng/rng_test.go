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

package rng

import (
	"testing"

	"github.com/akhenakh/starfield/trig"
	"github.com/google/go-cmp/cmp"
)

func TestSeedIsDeterministic(t *testing.T) {
	for i := int32(-50); i < 5000; i += 7 {
		if a, b := Seed(i), Seed(i); a != b {
			t.Fatalf("Seed(%d) = %v then %v", i, a, b)
		}
	}
}

func TestSeedRange(t *testing.T) {
	for i := int32(-1000); i < 20000; i++ {
		v := Seed(i)
		if v < 0 || v >= 1 {
			t.Fatalf("Seed(%d) = %v, want in [0, 1)", i, v)
		}
	}
}

func TestSeedSpread(t *testing.T) {
	// Coarse histogram: every decile must be hit by a long run of indices.
	var buckets [10]int
	const n = 20000
	for i := int32(0); i < n; i++ {
		buckets[int(Seed(i)*10)]++
	}
	for b, c := range buckets {
		if c < n/40 {
			t.Errorf("decile %d got %d of %d draws", b, c, n)
		}
	}
}

func TestFillMatchesFloat(t *testing.T) {
	src := New(nil)
	// Lengths around common lane counts so both the full and tail paths run.
	for _, n := range []int{0, 1, 3, 4, 7, 8, 15, 16, 17, 31, 33, 100, 1023} {
		for _, start := range []int32{0, 1000, 4999, -17} {
			got := make([]float32, n)
			src.Fill(start, got)
			want := make([]float32, n)
			for k := range want {
				want[k] = src.Float(start + int32(k))
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Fill(%d, len %d) mismatch (-want +got):\n%s", start, n, diff)
			}
		}
	}
}

func TestVecMatchesFloat(t *testing.T) {
	src := New(nil)
	buf := make([]float32, 64)
	v := src.Vec(3000, buf)
	data := v.Data()
	for k := 0; k < v.NumLanes(); k++ {
		if want := src.Float(3000 + int32(k)); data[k] != want {
			t.Errorf("lane %d = %v, want %v", k, data[k], want)
		}
	}
}

func TestSourceUsesItsTable(t *testing.T) {
	small, err := trig.NewTable(16)
	if err != nil {
		t.Fatal(err)
	}
	coarse := New(small)
	if coarse.Table() != small {
		t.Fatal("Table() did not return the table passed to New")
	}
	got := make([]float32, 40)
	coarse.Fill(0, got)
	for k := range got {
		if want := coarse.Float(int32(k)); got[k] != want {
			t.Errorf("coarse Fill[%d] = %v, want %v", k, got[k], want)
		}
	}
}
