package star

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/akhenakh/starfield/trig"
)

// BaseStarEffects recomputes twinkle and sparkle for every star from its x
// and y at time t (SoA layout). scratch must hold two vectors' worth of
// lanes; it receives the per-lane table reads.
// base    = sin(t*3 + x*10 + y*10) * 0.3 + 0.7
// phase   = sin(t*15 + x*20 + y*30)
// sparkle = phase > 0.98 ? (phase - 0.98) * 50 : 0
// twinkle = base + sparkle
func BaseStarEffects(
	tab *trig.Table,
	xs, ys []float32,
	twinkle, sparkle []float32,
	scratch []float32,
	t float32,
	q Quality,
) {
	size := min(len(xs), len(ys), len(twinkle), len(sparkle))
	lanes := hwy.Zero[float32]().NumLanes()
	bufA := scratch[:lanes]
	bufB := scratch[lanes : 2*lanes]

	w := q.wave()
	tw := float32(t * w.time)
	ts := float32(t * SparkleTimeFactor)

	vTw := hwy.Set(tw)
	vPx := hwy.Set(w.px)
	vPy := hwy.Set(w.py)
	vScale := hwy.Set(w.scale)
	vOffset := hwy.Set(w.offset)

	vTs := hwy.Set(ts)
	vSx := hwy.Set(float32(SparkleXFactor))
	vSy := hwy.Set(float32(SparkleYFactor))
	vThreshold := hwy.Set(float32(SparkleThreshold))
	vSparkleScale := hwy.Set(float32(SparkleScale))
	vZero := hwy.Zero[float32]()

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			// Contiguous lane loads, the reason positions are SoA
			x := hwy.Load(xs[offset:])
			y := hwy.Load(ys[offset:])

			// Twinkle base
			arg := hwy.Add(vTw, hwy.Add(hwy.Mul(x, vPx), hwy.Mul(y, vPy)))
			base := hwy.Add(hwy.Mul(tab.SinVec(arg, bufA), vScale), vOffset)

			if q != QualityFull {
				hwy.Store(base, twinkle[offset:])
				hwy.Store(vZero, sparkle[offset:])
				return
			}

			// Sparkle: only the top of the wave flashes
			phaseArg := hwy.Add(vTs, hwy.Add(hwy.Mul(x, vSx), hwy.Mul(y, vSy)))
			phase := tab.SinVec(phaseArg, bufB)
			quiet := hwy.GreaterEqual(vThreshold, phase)
			flash := hwy.IfThenElse(quiet, vZero, hwy.Mul(hwy.Sub(phase, vThreshold), vSparkleScale))

			hwy.Store(hwy.Add(base, flash), twinkle[offset:])
			hwy.Store(flash, sparkle[offset:])
		},
		func(offset, count int) {
			// Scalar tail
			for i := offset; i < offset+count; i++ {
				twinkle[i], sparkle[i] = effectAt(tab, xs[i], ys[i], tw, ts, q)
			}
		},
	)
}
