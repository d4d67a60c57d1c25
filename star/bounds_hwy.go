package star

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/go-gl/mathgl/mgl32"
)

// BaseBounds returns the axis-aligned box around a set of positions (SoA)
// in one pass over the three coordinate buffers. Empty input reports a
// zero box.
func BaseBounds(xs, ys, zs []float32) (lo, hi mgl32.Vec3) {
	size := min(len(xs), len(ys), len(zs))
	if size == 0 {
		return lo, hi
	}

	// Seeded from the first star, so no sentinel infinities are needed
	lo = mgl32.Vec3{xs[0], ys[0], zs[0]}
	hi = lo
	vLoX, vHiX := hwy.Set(lo[0]), hwy.Set(lo[0])
	vLoY, vHiY := hwy.Set(lo[1]), hwy.Set(lo[1])
	vLoZ, vHiZ := hwy.Set(lo[2]), hwy.Set(lo[2])

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			x := hwy.Load(xs[offset:])
			y := hwy.Load(ys[offset:])
			z := hwy.Load(zs[offset:])

			vLoX, vHiX = hwy.Min(vLoX, x), hwy.Max(vHiX, x)
			vLoY, vHiY = hwy.Min(vLoY, y), hwy.Max(vHiY, y)
			vLoZ, vHiZ = hwy.Min(vLoZ, z), hwy.Max(vHiZ, z)
		},
		func(offset, count int) {
			// Tail stars fold straight into the scalar box
			for i := offset; i < offset+count; i++ {
				lo = mgl32.Vec3{min(lo[0], xs[i]), min(lo[1], ys[i]), min(lo[2], zs[i])}
				hi = mgl32.Vec3{max(hi[0], xs[i]), max(hi[1], ys[i]), max(hi[2], zs[i])}
			}
		},
	)

	lo = mgl32.Vec3{
		min(lo[0], hwy.ReduceMin(vLoX)),
		min(lo[1], hwy.ReduceMin(vLoY)),
		min(lo[2], hwy.ReduceMin(vLoZ)),
	}
	hi = mgl32.Vec3{
		max(hi[0], hwy.ReduceMax(vHiX)),
		max(hi[1], hwy.ReduceMax(vHiY)),
		max(hi[2], hwy.ReduceMax(vHiZ)),
	}
	return lo, hi
}
