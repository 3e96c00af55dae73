package s2

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseMaxCoordDistanceBatch writes, for every vector b[i] of a set in SoA
// layout, the largest of the absolute coordinate differences between b[i]
// and a:
//
//	dst[i] = max(|bx[i]-ax|, |by[i]-ay|, |bz[i]-az|)
//
// Two vectors coincide within a tolerance exactly when this distance is at
// most the tolerance, so the vertex table of a polyhedron and the face list of
// a closure find matches by scanning dst alone.
func BaseMaxCoordDistanceBatch[T hwy.Floats](
	ax, ay, az T,
	bx, by, bz []T,
	dst []T,
) {
	size := min(len(bx), len(by), len(bz), len(dst))

	vAx := hwy.Set(ax)
	vAy := hwy.Set(ay)
	vAz := hwy.Set(az)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			dx := hwy.Sub(hwy.Load(bx[offset:]), vAx)
			dy := hwy.Sub(hwy.Load(by[offset:]), vAy)
			dz := hwy.Sub(hwy.Load(bz[offset:]), vAz)

			d := hwy.Max(dx, hwy.Neg(dx))
			d = hwy.Max(d, hwy.Max(dy, hwy.Neg(dy)))
			d = hwy.Max(d, hwy.Max(dz, hwy.Neg(dz)))

			hwy.Store(d, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			dx := hwy.Sub(hwy.MaskLoad(mask, bx[offset:]), vAx)
			dy := hwy.Sub(hwy.MaskLoad(mask, by[offset:]), vAy)
			dz := hwy.Sub(hwy.MaskLoad(mask, bz[offset:]), vAz)

			d := hwy.Max(dx, hwy.Neg(dx))
			d = hwy.Max(d, hwy.Max(dy, hwy.Neg(dy)))
			d = hwy.Max(d, hwy.Max(dz, hwy.Neg(dz)))

			hwy.MaskStore(mask, d, dst[offset:])
		},
	)
}
