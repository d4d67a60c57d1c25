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

	"github.com/google/go-cmp/cmp"
)

func TestLODDistribution(t *testing.T) {
	tests := []struct {
		total             int
		tier              Tier
		near, medium, far int
	}{
		{1000, TierPerformance, 100, 300, 600},
		{1000, TierBalanced, 150, 350, 500},
		{1000, TierUltra, 200, 400, 400},
		{7, TierBalanced, 1, 2, 4},
		{1, TierUltra, 0, 0, 1},
		{0, TierBalanced, 0, 0, 0},
		{-5, TierBalanced, 0, 0, 0},
		{1000, Tier(42), 200, 400, 400},
	}
	for _, tt := range tests {
		near, medium, far := LODDistribution(tt.total, tt.tier)
		if near != tt.near || medium != tt.medium || far != tt.far {
			t.Errorf("LODDistribution(%d, %v) = %d, %d, %d, want %d, %d, %d",
				tt.total, tt.tier, near, medium, far, tt.near, tt.medium, tt.far)
		}
	}
}

func TestTierString(t *testing.T) {
	for tier, want := range map[Tier]string{
		TierPerformance: "performance",
		TierBalanced:    "balanced",
		TierUltra:       "ultra",
		Tier(9):         "unknown",
	} {
		if got := tier.String(); got != want {
			t.Errorf("Tier(%d).String() = %q, want %q", tier, got, want)
		}
	}
}

func TestLODBands(t *testing.T) {
	for _, tier := range []Tier{TierPerformance, TierBalanced, TierUltra} {
		t.Run(tier.String(), func(t *testing.T) {
			o := NewPoolOptions()
			o.LOD = true
			o.Tier = tier
			p, err := NewPool(1000, &o)
			if err != nil {
				t.Fatal(err)
			}
			const tm = 7.5
			p.UpdateEffects(tm)

			near, medium, _ := LODDistribution(p.Capacity(), tier)
			q := tier.Qualities()
			v := p.Views()
			wantT := make([]float32, p.Capacity())
			wantS := make([]float32, p.Capacity())
			for i := range wantT {
				band := 2
				switch {
				case i < near:
					band = 0
				case i < near+medium:
					band = 1
				}
				wantT[i], wantS[i] = Effect(p.Table(), v.X.At(i), v.Y.At(i), tm, q[band])
			}
			if diff := cmp.Diff(wantT, v.Twinkle.Slice()); diff != "" {
				t.Errorf("twinkle (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantS, v.Sparkle.Slice()); diff != "" {
				t.Errorf("sparkle (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPerformanceTierNeverSparkles(t *testing.T) {
	o := NewPoolOptions()
	o.LOD = true
	o.Tier = TierPerformance
	p, err := NewPool(500, &o)
	if err != nil {
		t.Fatal(err)
	}
	for step := 0; step < 30; step++ {
		p.UpdateEffects(float32(step) * 0.37)
		for i, s := range p.Views().Sparkle.Slice() {
			if s != 0 {
				t.Fatalf("step %d star %d sparkles (%v) at the performance tier", step, i, s)
			}
		}
	}
}
