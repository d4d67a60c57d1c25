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

// Command starfield renders a rotating star field in the terminal.
//
// Space gives the field a click boost, m toggles the moving boost, and
// Esc, q or Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/akhenakh/starfield/star"
)

// Base rotation in radians per second around the camera's Y and X axes.
var baseRotation = [2]float32{0.05, 0.02}

type demo struct {
	screen        tcell.Screen
	width, height int

	pool *star.Pool
	fov  float32

	start     time.Time
	last      time.Time
	yaw       float32
	pitch     float32
	speed     float32
	moving    bool
	clickTime float64

	// Star positions in camera space, refreshed every frame.
	cx, cy, cz []float32
	visible    []uint32
	result     star.FrameResult
}

func newDemo(pool *star.Pool, fov float32) (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	n := pool.Capacity()
	d := &demo{
		screen:    screen,
		pool:      pool,
		fov:       fov,
		start:     time.Now(),
		last:      time.Now(),
		speed:     1,
		clickTime: -1e9,
		cx:        make([]float32, n),
		cy:        make([]float32, n),
		cz:        make([]float32, n),
		visible:   make([]uint32, 0, n),
	}
	d.width, d.height = screen.Size()
	return d, nil
}

func (d *demo) now() float64 {
	return time.Since(d.start).Seconds()
}

// camera returns the view rotation and the view-projection matrix.
func (d *demo) camera() (mgl32.Mat3, mgl32.Mat4) {
	rot := mgl32.Rotate3DX(d.pitch).Mul3(mgl32.Rotate3DY(d.yaw))
	// Terminal cells are about twice as tall as wide.
	aspect := float32(d.width) / float32(2*max(d.height, 1))
	proj := mgl32.Perspective(d.fov, aspect, 0.5, 1000)
	return rot, proj.Mul4(rot.Mat4())
}

func (d *demo) step() {
	now := time.Now()
	dt := float32(now.Sub(d.last).Seconds())
	d.last = now

	rot, vp := d.camera()
	d.result = d.pool.UpdateFrame(star.FrameInput{
		Time:            float32(d.now()),
		DeltaTime:       dt,
		Moving:          d.moving,
		ClickTime:       d.clickTime,
		SpeedMultiplier: d.speed,
		BaseRotation:    baseRotation,
		ViewProjection:  vp[:],
		Margin:          2,
	})
	d.speed = d.result.SpeedMultiplier
	d.yaw += d.result.RotationDelta[0]
	d.pitch += d.result.RotationDelta[1]

	v := d.pool.Views()
	star.RotatePositions(rot, v.X.Slice(), v.Y.Slice(), v.Z.Slice(), d.cx, d.cy, d.cz)
	d.visible = d.pool.VisibleIndices(d.visible[:0])
}

func (d *demo) draw() {
	d.screen.Clear()

	focal := float32(1 / math.Tan(float64(d.fov/2)))
	aspect := float32(d.width) / float32(2*max(d.height, 1))

	v := d.pool.Views()
	for _, i := range d.visible {
		z := -d.cz[i]
		if z <= 0 {
			continue
		}
		ndcX := d.cx[i] * focal / (aspect * z)
		ndcY := d.cy[i] * focal / z
		col := int((ndcX + 1) / 2 * float32(d.width))
		row := int((1 - ndcY) / 2 * float32(d.height))
		if col < 0 || col >= d.width || row < 0 || row >= d.height-1 {
			continue
		}

		d.screen.SetContent(col, row, glyph(v.Size.At(int(i)), v.Sparkle.At(int(i))), nil,
			tcell.StyleDefault.Foreground(shade(v, int(i))))
	}

	stats := d.pool.Stats()
	status := fmt.Sprintf(" %d/%d visible  speed x%.2f  update %v  [space] boost  [m] moving=%v  [q] quit",
		d.result.VisibleCount, d.pool.Count(), d.speed, stats.AverageUpdate.Round(time.Microsecond), d.moving)
	for x, r := range status {
		if x >= d.width {
			break
		}
		d.screen.SetContent(x, d.height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}

	d.screen.Show()
}

func glyph(size, sparkle float32) rune {
	switch {
	case sparkle > 0.3:
		return '*'
	case size >= star.LargeSizeMin:
		return '+'
	case size >= 2:
		return '·'
	}
	return '.'
}

// shade scales the star's color by its twinkle.
func shade(v star.Views, i int) tcell.Color {
	k := 0.6 * v.Twinkle.At(i)
	channel := func(c float32) int32 {
		return int32(mgl32.Clamp(c*k, 0, 1) * 255)
	}
	return tcell.NewRGBColor(channel(v.R.At(i)), channel(v.G.At(i)), channel(v.B.At(i)))
}

func (d *demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				d.clickTime = d.now()
			case 'm':
				d.moving = !d.moving
			}
		}

	case *tcell.EventResize:
		d.width, d.height = d.screen.Size()
		d.screen.Sync()
	}
	return true
}

func (d *demo) run(fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !d.handleInput(ev) {
				return
			}
		case <-ticker.C:
			d.step()
			d.draw()
		}
	}
}

func main() {
	var (
		count   = flag.Int("stars", 3000, "number of stars")
		fps     = flag.Int("fps", 30, "frames per second")
		fov     = flag.Float64("fov", 75, "vertical field of view in degrees")
		lod     = flag.Bool("lod", false, "split stars into detail bands")
		tier    = flag.Int("tier", int(star.TierBalanced), "detail tier with -lod: 0 performance, 1 balanced, 2 ultra")
		logPath = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		star.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := star.NewPoolOptions()
	opts.LOD = *lod
	opts.Tier = star.Tier(*tier)
	pool, err := star.NewPool(*count, &opts)
	if err != nil {
		log.Fatalf("Failed to build star pool: %v", err)
	}
	defer pool.Close()

	d, err := newDemo(pool, star.DegToRad(float32(*fov)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer d.screen.Fini()

	d.run(*fps)
}
