// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package s2

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// matrix3x3 is a row major 3x3 matrix used for the isometries of the sphere.
type matrix3x3 [3][3]float64

// rotationMatrix returns the matrix rotating anticlockwise by angle about
// axis, when viewed from outside the sphere looking down on axis.
func rotationMatrix(axis Point, angle s1.Angle) matrix3x3 {
	u := axis.Vector
	s, c := math.Sincos(angle.Radians())
	t := 1 - c
	return matrix3x3{
		{t*u.X*u.X + c, t*u.X*u.Y - s*u.Z, t*u.X*u.Z + s*u.Y},
		{t*u.X*u.Y + s*u.Z, t*u.Y*u.Y + c, t*u.Y*u.Z - s*u.X},
		{t*u.X*u.Z - s*u.Y, t*u.Y*u.Z + s*u.X, t*u.Z*u.Z + c},
	}
}

// reflectionMatrix returns the matrix reflecting in the plane of the great
// circle with the given pole.
func reflectionMatrix(pole Point) matrix3x3 {
	n := pole.Vector
	return matrix3x3{
		{1 - 2*n.X*n.X, -2 * n.X * n.Y, -2 * n.X * n.Z},
		{-2 * n.Y * n.X, 1 - 2*n.Y*n.Y, -2 * n.Y * n.Z},
		{-2 * n.Z * n.X, -2 * n.Z * n.Y, 1 - 2*n.Z*n.Z},
	}
}

// inversionMatrix maps every point to its antipode.
func inversionMatrix() matrix3x3 {
	return matrix3x3{
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, -1},
	}
}

// mul returns the product m * v.
func (m matrix3x3) mul(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// transform applies m to p and snaps the result back onto the sphere.
func (m matrix3x3) transform(p Point) Point {
	return Point{m.mul(p.Vector).Normalize()}
}

// transformBatch applies m to every point, going through the SoA kernel.
func (m matrix3x3) transformBatch(points []Point) []Point {
	n := len(points)
	xs, ys, zs := make([]float64, n), make([]float64, n), make([]float64, n)
	for i, p := range points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	ox, oy, oz := make([]float64, n), make([]float64, n), make([]float64, n)
	BaseMatrixMulBatch(
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
		xs, ys, zs,
		ox, oy, oz,
	)
	out := make([]Point, n)
	for i := range out {
		out[i] = Point{r3.Vector{X: ox[i], Y: oy[i], Z: oz[i]}.Normalize()}
	}
	return out
}
