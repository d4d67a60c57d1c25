package star

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/akhenakh/starfield/bitmask"
	"github.com/akhenakh/starfield/frustum"
)

// BaseCullFrustum classifies stars [0, len(xs)) against six planes and
// writes one bit per star into mask. A star is inside when its signed
// distance to every plane is >= -margin. scratch must hold one vector.
// d = a*x + b*y + c*z + w
func BaseCullFrustum(
	planes *frustum.Planes,
	xs, ys, zs []float32,
	margin float32,
	mask *bitmask.Mask,
	scratch []float32,
) {
	size := min(len(xs), len(ys), len(zs))
	lanes := hwy.Zero[float32]().NumLanes()
	buf := scratch[:lanes]

	var vPlane [6][4]hwy.Vec[float32]
	for i, pl := range planes {
		for c := range pl {
			vPlane[i][c] = hwy.Set(pl[c])
		}
	}
	vNegMargin := hwy.Set(-margin)
	vOne := hwy.Set(float32(1))
	vZero := hwy.Zero[float32]()

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			x := hwy.Load(xs[offset:])
			y := hwy.Load(ys[offset:])
			z := hwy.Load(zs[offset:])

			// One plane at a time, AND-ed into inside
			inside := vOne
			for i := range vPlane {
				pl := &vPlane[i]
				d := hwy.Add(hwy.Add(hwy.Add(hwy.Mul(x, pl[0]), hwy.Mul(y, pl[1])), hwy.Mul(z, pl[2])), pl[3])
				inside = hwy.IfThenElse(hwy.GreaterEqual(d, vNegMargin), inside, vZero)
			}

			// Pack lanes into mask bits
			hwy.Store(inside, buf)
			for k, v := range buf {
				mask.Set(offset+k, v != 0)
			}
		},
		func(offset, count int) {
			// Scalar tail
			for i := offset; i < offset+count; i++ {
				mask.Set(i, planes.Contains(xs[i], ys[i], zs[i], margin))
			}
		},
	)
}
