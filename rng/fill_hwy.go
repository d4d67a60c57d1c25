package rng

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Fill writes Float(start+k) to dst[k] for every k.
func (s Source) Fill(start int32, dst []float32) {
	BaseSeedFill(s, start, dst)
}

// Vec fills buf with one value per lane starting at index start and returns
// the lanes as a vector. buf must hold at least one vector's worth of lanes.
func (s Source) Vec(start int32, buf []float32) hwy.Vec[float32] {
	n := hwy.Zero[float32]().NumLanes()
	BaseSeedFill(s, start, buf[:n])
	return hwy.Load(buf[:n])
}

// BaseSeedFill computes frac(sin(i*A + B) * C) for a contiguous run of
// indices. The multiply/add and the scale run lane-wide; the sine is one
// table read per lane; frac is applied in a final pass.
func BaseSeedFill(s Source, start int32, dst []float32) {
	size := len(dst)

	// Index ramp
	for k := range dst {
		dst[k] = float32(start + int32(k))
	}

	vA := hwy.Set(float32(HashA))
	vB := hwy.Set(float32(HashB))
	vC := hwy.Set(float32(HashC))

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			idx := hwy.Load(dst[offset:])

			// arg = i*A + B
			arg := hwy.Add(hwy.Mul(idx, vA), vB)

			// sin(arg), one table read per lane
			sin := s.tab.SinVec(arg, dst[offset:])

			hwy.Store(hwy.Mul(sin, vC), dst[offset:])
		},
		func(offset, count int) {
			// Scalar tail
			for i := offset; i < offset+count; i++ {
				dst[i] = s.scaled(start + int32(i))
			}
		},
	)

	for k := range dst {
		dst[k] = frac(dst[k])
	}
}
