package star

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/akhenakh/starfield/rng"
)

// generateScratchVectors is the number of lane buffers the generation
// kernels need in scratch.
const generateScratchVectors = 8

// BaseGeneratePositions fills xs, ys, zs with stars placed on a spherical
// shell (SoA layout). scratch must hold generateScratchVectors vectors.
// r = min + u0 * (max - min)
// θ = u1 * 2π
// φ = acos(2*u2 - 1)
// x = r * sinφ * cosθ, y = r * sinφ * sinθ, z = r * cosφ
func BaseGeneratePositions(
	src rng.Source,
	xs, ys, zs []float32,
	scratch []float32,
	minRadius, maxRadius float32,
) {
	size := min(len(xs), len(ys), len(zs))
	tab := src.Table()
	lanes := hwy.Zero[float32]().NumLanes()
	buf := splitScratch(scratch, lanes, generateScratchVectors)

	span := maxRadius - minRadius
	vMin := hwy.Set(minRadius)
	vSpan := hwy.Set(span)
	vTwoPi := hwy.Set(twoPi)
	vTwo := hwy.Set(float32(2))
	vOne := hwy.Set(float32(1))

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			i := int32(offset)

			// Three independent draws per star
			uR := src.Vec(i+radiusSeed, buf[0])
			uT := src.Vec(i+azimuthSeed, buf[1])
			uP := src.Vec(i+polarSeed, buf[2])

			radius := hwy.Add(vMin, hwy.Mul(uR, vSpan))
			theta := hwy.Mul(uT, vTwoPi)

			// φ = acos(2u - 1), one lane at a time
			hwy.Store(hwy.Sub(hwy.Mul(vTwo, uP), vOne), buf[3])
			for k := range buf[3] {
				buf[3][k] = acos32(buf[3][k])
			}
			phi := hwy.Load(buf[3])

			sinPhi := tab.SinVec(phi, buf[4])
			cosPhi := tab.CosVec(phi, buf[5])
			sinTheta := tab.SinVec(theta, buf[6])
			cosTheta := tab.CosVec(theta, buf[7])

			rs := hwy.Mul(radius, sinPhi)
			hwy.Store(hwy.Mul(rs, cosTheta), xs[offset:])
			hwy.Store(hwy.Mul(rs, sinTheta), ys[offset:])
			hwy.Store(hwy.Mul(radius, cosPhi), zs[offset:])
		},
		func(offset, count int) {
			// Scalar tail
			for i := offset; i < offset+count; i++ {
				xs[i], ys[i], zs[i] = positionAt(src, int32(i), minRadius, span)
			}
		},
	)
}

// BaseGenerateColors fills rs, gs, bs from the four-color palette.
// u < 0.5 white, u < 0.7 blue, u < 0.85 yellow, else purple.
func BaseGenerateColors(src rng.Source, rs, gs, bs []float32, scratch []float32) {
	size := min(len(rs), len(gs), len(bs))
	lanes := hwy.Zero[float32]().NumLanes()
	buf := splitScratch(scratch, lanes, 1)

	vWhiteCut := hwy.Set(float32(whiteCut))
	vBlueCut := hwy.Set(float32(blueCut))
	vYellowCut := hwy.Set(float32(yellowCut))

	channels := [3][]float32{rs, gs, bs}
	var presets [4][3]hwy.Vec[float32]
	for c, col := range Palette {
		presets[c] = [3]hwy.Vec[float32]{hwy.Set(col.R), hwy.Set(col.G), hwy.Set(col.B)}
	}

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			u := src.Vec(int32(offset)+colorSeed, buf[0])

			isPurple := hwy.GreaterEqual(u, vYellowCut)
			pastBlue := hwy.GreaterEqual(u, vBlueCut)
			pastWhite := hwy.GreaterEqual(u, vWhiteCut)

			// Select from the top bucket down
			for ch := range channels {
				res := hwy.IfThenElse(isPurple, presets[3][ch], presets[2][ch])
				res = hwy.IfThenElse(pastBlue, res, presets[1][ch])
				res = hwy.IfThenElse(pastWhite, res, presets[0][ch])
				hwy.Store(res, channels[ch][offset:])
			}
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				c := colorAt(src, int32(i))
				rs[i], gs[i], bs[i] = c.R, c.G, c.B
			}
		},
	)
}

// BaseGenerateSizes fills sizes with a two-band distribution.
// small = 1 + u5 * 1.5, large = 2.5 + u6 * 2
// size  = (u4 < 0.7 ? small : large) * multiplier
func BaseGenerateSizes(src rng.Source, sizes []float32, scratch []float32, multiplier float32) {
	size := len(sizes)
	lanes := hwy.Zero[float32]().NumLanes()
	buf := splitScratch(scratch, lanes, 3)

	vShare := hwy.Set(float32(SmallStarShare))
	vSmallMin := hwy.Set(float32(SmallSizeMin))
	vSmallRange := hwy.Set(float32(SmallSizeRange))
	vLargeMin := hwy.Set(float32(LargeSizeMin))
	vLargeRange := hwy.Set(float32(LargeSizeRange))
	vMultiplier := hwy.Set(multiplier)

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			i := int32(offset)
			uPick := src.Vec(i+sizeSeed, buf[0])
			uSmall := src.Vec(i+smallSizeSeed, buf[1])
			uLarge := src.Vec(i+largeSizeSeed, buf[2])

			small := hwy.Add(vSmallMin, hwy.Mul(uSmall, vSmallRange))
			large := hwy.Add(vLargeMin, hwy.Mul(uLarge, vLargeRange))
			isLarge := hwy.GreaterEqual(uPick, vShare)

			base := hwy.IfThenElse(isLarge, large, small)
			hwy.Store(hwy.Mul(base, vMultiplier), sizes[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				sizes[i] = sizeAt(src, int32(i), multiplier)
			}
		},
	)
}

// splitScratch cuts n lane-sized buffers out of scratch.
func splitScratch(scratch []float32, lanes, n int) [][]float32 {
	var bufs [generateScratchVectors][]float32
	for k := 0; k < n; k++ {
		bufs[k] = scratch[k*lanes : (k+1)*lanes]
	}
	return bufs[:n]
}
