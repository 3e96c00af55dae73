package s2

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseSumPoints returns the vector sum of a loop of vertices given as separate
// X, Y and Z slices. Polygons use it for their centroid, which is what the
// group closure compares first when looking for a face it already has.
func BaseSumPoints[T hwy.Floats](xs, ys, zs []T) (sumX, sumY, sumZ T) {
	size := min(len(xs), len(ys), len(zs))

	vSumX := hwy.Zero[T]()
	vSumY := hwy.Zero[T]()
	vSumZ := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vSumX = hwy.Add(vSumX, hwy.Load(xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.Load(ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.Load(zs[offset:]))
		},
		func(offset, count int) {
			// Masked-off lanes load as zero and leave the sums alone.
			mask := hwy.TailMask[T](count)
			vSumX = hwy.Add(vSumX, hwy.MaskLoad(mask, xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.MaskLoad(mask, ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.MaskLoad(mask, zs[offset:]))
		},
	)

	return hwy.ReduceSum(vSumX), hwy.ReduceSum(vSumY), hwy.ReduceSum(vSumZ)
}
