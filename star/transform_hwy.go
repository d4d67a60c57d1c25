package star

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/go-gl/mathgl/mgl32"
)

// RotatePositions writes m applied to every (xs, ys, zs) into (dx, dy, dz).
// The pool's positions are fixed, so hosts that spin the field rotate a
// copy, typically once per frame with the accumulated RotationDelta.
func RotatePositions(m mgl32.Mat3, xs, ys, zs, dx, dy, dz []float32) {
	BaseRotatePositions(m, xs, ys, zs, dx, dy, dz)
}

// BaseRotatePositions applies a 3x3 matrix to a set of positions (SoA).
// mgl32.Mat3 is column-major: m.At(row, col).
// D = M * S
func BaseRotatePositions(m mgl32.Mat3, xs, ys, zs, dx, dy, dz []float32) {
	size := min(len(xs), len(ys), len(zs), len(dx), len(dy), len(dz))

	var vM [3][3]hwy.Vec[float32]
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			vM[row][col] = hwy.Set(m.At(row, col))
		}
	}

	rotate := func(x, y, z hwy.Vec[float32]) (rx, ry, rz hwy.Vec[float32]) {
		// Row r: x*m[r][0] + y*m[r][1] + z*m[r][2]
		rx = hwy.FMA(z, vM[0][2], hwy.FMA(y, vM[0][1], hwy.Mul(x, vM[0][0])))
		ry = hwy.FMA(z, vM[1][2], hwy.FMA(y, vM[1][1], hwy.Mul(x, vM[1][0])))
		rz = hwy.FMA(z, vM[2][2], hwy.FMA(y, vM[2][1], hwy.Mul(x, vM[2][0])))
		return rx, ry, rz
	}

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			rx, ry, rz := rotate(
				hwy.Load(xs[offset:]),
				hwy.Load(ys[offset:]),
				hwy.Load(zs[offset:]),
			)
			hwy.Store(rx, dx[offset:])
			hwy.Store(ry, dy[offset:])
			hwy.Store(rz, dz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float32](count)
			rx, ry, rz := rotate(
				hwy.MaskLoad(mask, xs[offset:]),
				hwy.MaskLoad(mask, ys[offset:]),
				hwy.MaskLoad(mask, zs[offset:]),
			)
			hwy.MaskStore(mask, rx, dx[offset:])
			hwy.MaskStore(mask, ry, dy[offset:])
			hwy.MaskStore(mask, rz, dz[offset:])
		},
	)
}
