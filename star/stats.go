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

import "time"

const statsWindow = 60

// updateTimes keeps the durations of the last statsWindow frame updates.
type updateTimes struct {
	data [statsWindow]time.Duration
	head int
	n    int
}

func (r *updateTimes) push(d time.Duration) {
	r.data[r.head] = d
	r.head = (r.head + 1) % statsWindow
	if r.n < statsWindow {
		r.n++
	}
}

func (r *updateTimes) average() time.Duration {
	if r.n == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range r.data[:r.n] {
		sum += d
	}
	return sum / time.Duration(r.n)
}

// Stats describes the frame updates of the current build.
type Stats struct {
	Frames uint64
	// LastUpdate is the duration of the most recent UpdateFrame call.
	LastUpdate time.Duration
	// AverageUpdate averages the last 60 UpdateFrame calls.
	AverageUpdate time.Duration
	// PeakVisible is the highest visible count reported so far.
	PeakVisible int
}

// Stats returns the frame statistics since the last build.
func (p *Pool) Stats() Stats {
	s := p.stats
	s.AverageUpdate = p.times.average()
	return s
}

func (p *Pool) record(elapsed time.Duration, visible int) {
	p.times.push(elapsed)
	p.stats.Frames++
	p.stats.LastUpdate = elapsed
	p.stats.PeakVisible = max(p.stats.PeakVisible, visible)
}
