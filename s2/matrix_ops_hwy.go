package s2

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseMatrixMulBatch applies a 3x3 matrix to a set of 3D vectors (SoA).
// DST = M * SRC
//
// Every isometry used on polygons (rotation about a vertex of the Schwarz
// triangle, reflection in one of its sides, inversion) is a 3x3 orthogonal
// matrix, so transforming a face is one pass over its vertex coordinates.
func BaseMatrixMulBatch[T hwy.Floats](
	m00, m01, m02 T,
	m10, m11, m12 T,
	m20, m21, m22 T,
	srcX, srcY, srcZ []T,
	dstX, dstY, dstZ []T,
) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	vM00, vM01, vM02 := hwy.Set(m00), hwy.Set(m01), hwy.Set(m02)
	vM10, vM11, vM12 := hwy.Set(m10), hwy.Set(m11), hwy.Set(m12)
	vM20, vM21, vM22 := hwy.Set(m20), hwy.Set(m21), hwy.Set(m22)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])

			resX := hwy.FMA(z, vM02, hwy.FMA(y, vM01, hwy.Mul(x, vM00)))
			resY := hwy.FMA(z, vM12, hwy.FMA(y, vM11, hwy.Mul(x, vM10)))
			resZ := hwy.FMA(z, vM22, hwy.FMA(y, vM21, hwy.Mul(x, vM20)))

			hwy.Store(resX, dstX[offset:])
			hwy.Store(resY, dstY[offset:])
			hwy.Store(resZ, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])

			resX := hwy.FMA(z, vM02, hwy.FMA(y, vM01, hwy.Mul(x, vM00)))
			resY := hwy.FMA(z, vM12, hwy.FMA(y, vM11, hwy.Mul(x, vM10)))
			resZ := hwy.FMA(z, vM22, hwy.FMA(y, vM21, hwy.Mul(x, vM20)))

			hwy.MaskStore(mask, resX, dstX[offset:])
			hwy.MaskStore(mask, resY, dstY[offset:])
			hwy.MaskStore(mask, resZ, dstZ[offset:])
		},
	)
}
