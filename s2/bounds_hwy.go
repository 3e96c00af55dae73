package s2

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseBatchMinMax returns the smallest and largest values in data, or zeros
// if data is empty. Polyhedron.EdgeLengthRange feeds it the edge lengths.
func BaseBatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seeding with a real element keeps padded lanes out of the result.
	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			// Lanes outside the mask take the running min/max instead of the
			// zero padding MaskLoad leaves there.
			vMin = hwy.Min(vMin, hwy.IfThenElse(mask, v, vMin))
			vMax = hwy.Max(vMax, hwy.IfThenElse(mask, v, vMax))
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}
