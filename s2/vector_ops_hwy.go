package s2

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseBatchCrossProduct computes c[i] = a[i] × b[i] for vectors in SoA
// layout. Crossing each polygon vertex with its successor gives the terms of
// the polygon's vector area, whose direction tells the winding.
// cx = ay*bz - az*by
// cy = az*bx - ax*bz
// cz = ax*by - ay*bx
func BaseBatchCrossProduct[T hwy.Floats](
	ax, ay, az []T,
	bx, by, bz []T,
	cx, cy, cz []T,
) {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vAz := hwy.Load(az[offset:])
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])
			vBz := hwy.Load(bz[offset:])

			hwy.Store(hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy)), cx[offset:])
			hwy.Store(hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz)), cy[offset:])
			hwy.Store(hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx)), cz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vAz := hwy.MaskLoad(mask, az[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])
			vBz := hwy.MaskLoad(mask, bz[offset:])

			hwy.MaskStore(mask, hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy)), cx[offset:])
			hwy.MaskStore(mask, hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz)), cy[offset:])
			hwy.MaskStore(mask, hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx)), cz[offset:])
		},
	)
}
