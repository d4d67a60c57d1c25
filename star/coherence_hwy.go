package star

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/akhenakh/starfield/bitmask"
)

// BaseCoherenceFlags compares two frames of twinkle and sparkle and sets
// bit i of changed when either value of star i moved by more than
// threshold. It returns the number of flagged stars. scratch must hold one
// vector.
// changed = max(|t1 - t0|, |s1 - s0|) > threshold
func BaseCoherenceFlags(
	prevTwinkle, prevSparkle []float32,
	twinkle, sparkle []float32,
	threshold float32,
	changed *bitmask.Mask,
	scratch []float32,
) int {
	size := min(len(prevTwinkle), len(prevSparkle), len(twinkle), len(sparkle))
	lanes := hwy.Zero[float32]().NumLanes()
	buf := scratch[:lanes]

	vThreshold := hwy.Set(threshold)
	vOne := hwy.Set(float32(1))
	vZero := hwy.Zero[float32]()
	flagged := 0

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			dT := hwy.Sub(hwy.Load(twinkle[offset:]), hwy.Load(prevTwinkle[offset:]))
			dS := hwy.Sub(hwy.Load(sparkle[offset:]), hwy.Load(prevSparkle[offset:]))

			// |d| = max(d, -d)
			diff := hwy.Max(hwy.Max(dT, hwy.Neg(dT)), hwy.Max(dS, hwy.Neg(dS)))
			still := hwy.GreaterEqual(vThreshold, diff)
			hwy.Store(hwy.IfThenElse(still, vZero, vOne), buf)

			for k, v := range buf {
				changed.Set(offset+k, v != 0)
				if v != 0 {
					flagged++
				}
			}
		},
		func(offset, count int) {
			// Scalar tail
			for i := offset; i < offset+count; i++ {
				c := moved(prevTwinkle[i], prevSparkle[i], twinkle[i], sparkle[i], threshold)
				changed.Set(i, c)
				if c {
					flagged++
				}
			}
		},
	)
	return flagged
}
