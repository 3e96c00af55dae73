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
	"fmt"
	"math"

	"github.com/akhenakh/wythoff/epsilon"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Point represents a point on the unit sphere as a normalized 3D vector.
//
// Fields should be treated as read-only. Use one of the factory methods for creation.
type Point struct {
	r3.Vector
}

// NewPoint returns the point in the direction of (x, y, z). The zero vector
// has no direction and fails with ErrZeroVector.
func NewPoint(x, y, z float64) (Point, error) {
	v := r3.Vector{X: x, Y: y, Z: z}
	if v.Norm2() == 0 || !finite(v) {
		return Point{}, fmt.Errorf("%w: %v", ErrZeroVector, v)
	}
	return Point{v.Normalize()}, nil
}

// PointFromCoords is like NewPoint but panics on a degenerate vector. It is
// intended for constants and tests.
func PointFromCoords(x, y, z float64) Point {
	p, err := NewPoint(x, y, z)
	if err != nil {
		panic(err)
	}
	return p
}

// NorthPole is the point (0, 0, 1).
func NorthPole() Point {
	return Point{r3.Vector{X: 0, Y: 0, Z: 1}}
}

func (p Point) String() string {
	return fmt.Sprintf("[%0.12f, %0.12f, %0.12f]", p.X, p.Y, p.Z)
}

// Identical reports whether p and op are equal within epsilon in every coordinate.
func (p Point) Identical(op Point) bool {
	return vectorsEqual(p.Vector, op.Vector)
}

// Antipodal reports whether op is within epsilon of the antipode of p.
func (p Point) Antipodal(op Point) bool {
	return vectorsEqual(p.Vector, op.Vector.Mul(-1))
}

func vectorsEqual(a, b r3.Vector) bool {
	return epsilon.Equal(a.X, b.X) && epsilon.Equal(a.Y, b.Y) && epsilon.Equal(a.Z, b.Z)
}

func anglesEqual(a, b s1.Angle) bool {
	return epsilon.Equal(a.Radians(), b.Radians())
}

// positive returns the angle equivalent to a in [0, 2π).
func positive(a s1.Angle) s1.Angle {
	rad := math.Mod(a.Radians(), 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return s1.Angle(rad)
}

// Antipode returns the point diametrically opposite p.
func (p Point) Antipode() Point {
	return Point{p.Vector.Mul(-1)}
}

// Invert maps p through the centre of the sphere. On the sphere point
// inversion and the antipodal map coincide.
func (p Point) Invert() Point {
	return inversionMatrix().transform(p)
}

// EuclideanDistance returns the chord length between p and op.
func (p Point) EuclideanDistance(op Point) float64 {
	return p.Vector.Distance(op.Vector)
}

// MinorDistance returns the length of the shortest great circle path between
// p and op.
func (p Point) MinorDistance(op Point) s1.Angle {
	return s1.Angle(math.Acos(epsilon.Clamp(p.Dot(op.Vector), -1, 1)))
}

// Distance returns the minor distance between p and op, or the length of the
// complementary major path if minor is false.
func (p Point) Distance(op Point, minor bool) s1.Angle {
	d := p.MinorDistance(op)
	if minor {
		return d
	}
	return 2*math.Pi*s1.Radian - d
}

// Midpoint returns the midpoint of the minor (or major) arc from p to op.
//
// The minor midpoint of antipodal points is undefined, as is the major
// midpoint of identical points.
func (p Point) Midpoint(op Point, minor bool) (Point, error) {
	if p.Antipodal(op) {
		return Point{}, fmt.Errorf("%w: midpoint of %v and %v", ErrAntipodalPoints, p, op)
	}
	if p.Identical(op) {
		if minor {
			return p, nil
		}
		return Point{}, fmt.Errorf("%w: major midpoint of %v", ErrPointArc, p)
	}
	m := Point{p.Add(op.Vector).Normalize()}
	if minor {
		return m, nil
	}
	return m.Antipode(), nil
}

// Rotate returns p rotated anticlockwise by angle about axis, as seen from
// outside the sphere looking down on axis.
func (p Point) Rotate(axis Point, angle s1.Angle) Point {
	return rotationMatrix(axis, angle).transform(p)
}

// Reflect returns the mirror image of p in the plane of the great circle g.
func (p Point) Reflect(g GreatCircle) Point {
	return reflectionMatrix(g.Pole).transform(p)
}

// tangent returns the unit vector at p pointing along the great circle
// towards op. The result is zero if op is identical or antipodal to p.
func (p Point) tangent(op Point) r3.Vector {
	return op.Sub(p.Mul(p.Dot(op.Vector))).Normalize()
}

// signedAngle returns the anticlockwise angle at p, in (-π, π], turning from
// the direction of a to the direction of b.
func (p Point) signedAngle(a, b Point) s1.Angle {
	ta, tb := p.tangent(a), p.tangent(b)
	return s1.Angle(math.Atan2(ta.Cross(tb).Dot(p.Vector), ta.Dot(tb)))
}

// checkDistinct returns an error if op is identical or antipodal to p.
func (p Point) checkDistinct(op Point) error {
	if p.Identical(op) {
		return fmt.Errorf("%w: %v", ErrIdenticalPoints, p)
	}
	if p.Antipodal(op) {
		return fmt.Errorf("%w: %v and %v", ErrAntipodalPoints, p, op)
	}
	return nil
}

// BisectingGreatCircle returns the great circle through p that bisects the
// angle a-p-b. The arc towards a is turned by half the signed angle to the
// arc towards b, so the result runs inside the angle.
func (p Point) BisectingGreatCircle(a, b Point) (GreatCircle, error) {
	if err := p.checkDistinct(a); err != nil {
		return GreatCircle{}, err
	}
	if err := p.checkDistinct(b); err != nil {
		return GreatCircle{}, err
	}
	half := p.signedAngle(a, b) / 2
	return GreatCircleFromPoints(p, a.Rotate(p, half))
}

// Incenter returns the intersection of the bisectors of the angles at a and
// b of the triangle abc. It is the point equidistant from the three sides.
func Incenter(a, b, c Point) (Point, error) {
	ga, err := a.BisectingGreatCircle(c, b)
	if err != nil {
		return Point{}, err
	}
	gb, err := b.BisectingGreatCircle(a, c)
	if err != nil {
		return Point{}, err
	}
	xs, err := ga.Intersect(gb)
	if err != nil {
		return Point{}, err
	}
	return insideTriangle(a, b, c, xs), nil
}

// insideTriangle picks from a pair of antipodal candidates the one on the
// same side of ab as c.
func insideTriangle(a, b, c Point, xs [2]Point) Point {
	n := a.Cross(b.Vector)
	if math.Signbit(n.Dot(xs[0].Vector)) == math.Signbit(n.Dot(c.Vector)) {
		return xs[0]
	}
	return xs[1]
}
