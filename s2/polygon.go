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
	"strings"
	"sync"

	"github.com/akhenakh/wythoff/epsilon"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Polygon is a closed loop of at least two points on the sphere. Its sides
// are the minor arcs between consecutive vertices, the last vertex joining
// back to the first.
//
// A Polygon is immutable once built. Vertex angles, regularity and the
// centroid are computed on first use and then kept.
type Polygon struct {
	vertices []Point

	anglesOnce sync.Once
	angles     []s1.Angle

	equilateralOnce sync.Once
	equilateral     bool

	equiangularOnce sync.Once
	equiangular     bool

	centroidOnce sync.Once
	centroid     r3.Vector
}

// PolygonFromPoints returns the polygon with the given vertices in order.
//
// At least two vertices are needed. Consecutive vertices may be identical
// (the side is then a point arc) but may not be antipodal, since the minor
// arc between them would be undefined.
func PolygonFromPoints(points ...Point) (*Polygon, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %d vertices", ErrInvalidPolygon, len(points))
	}
	for i, p := range points {
		q := points[(i+1)%len(points)]
		if p.Antipodal(q) {
			return nil, fmt.Errorf("%w: side %d", ErrAntipodalPoints, i)
		}
	}
	return newPolygon(append([]Point(nil), points...)), nil
}

// newPolygon takes ownership of vertices without checking them.
func newPolygon(vertices []Point) *Polygon {
	return &Polygon{vertices: vertices}
}

func (p *Polygon) String() string {
	var b strings.Builder
	b.WriteString("Polygon{")
	for i, v := range p.vertices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteString("}")
	return b.String()
}

// NumVertices returns the number of vertices.
func (p *Polygon) NumVertices() int { return len(p.vertices) }

// Vertex returns vertex i, wrapping around in both directions.
func (p *Polygon) Vertex(i int) Point {
	n := len(p.vertices)
	return p.vertices[((i%n)+n)%n]
}

// Vertices returns a copy of the vertex loop.
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.vertices...)
}

// Side returns the minor arc from vertex i to vertex i+1.
func (p *Polygon) Side(i int) Arc {
	return minorArc(p.Vertex(i), p.Vertex(i+1))
}

// Sides returns every side in order.
func (p *Polygon) Sides() []Arc {
	sides := make([]Arc, len(p.vertices))
	for i := range sides {
		sides[i] = p.Side(i)
	}
	return sides
}

// SideLength returns the length of side i.
func (p *Polygon) SideLength(i int) s1.Angle {
	return p.Vertex(i).MinorDistance(p.Vertex(i + 1))
}

// VertexAngle returns the interior angle at vertex i: the anticlockwise
// angle, in [0, 2π), from the outgoing side to the reversed incoming side.
// It is zero where either neighbouring side is a point arc.
func (p *Polygon) VertexAngle(i int) s1.Angle {
	p.anglesOnce.Do(func() {
		p.angles = make([]s1.Angle, len(p.vertices))
		for j := range p.vertices {
			p.angles[j] = vertexAngle(p.Vertex(j-1), p.Vertex(j), p.Vertex(j+1))
		}
	})
	n := len(p.vertices)
	return p.angles[((i%n)+n)%n]
}

func vertexAngle(prev, v, next Point) s1.Angle {
	if v.Identical(prev) || v.Identical(next) {
		return 0
	}
	return positive(v.signedAngle(next, prev))
}

// IsEquilateral reports whether all sides have the same length.
func (p *Polygon) IsEquilateral() bool {
	p.equilateralOnce.Do(func() {
		first := p.SideLength(0)
		p.equilateral = true
		for i := 1; i < len(p.vertices); i++ {
			if !anglesEqual(p.SideLength(i), first) {
				p.equilateral = false
				return
			}
		}
	})
	return p.equilateral
}

// IsEquiangular reports whether all vertex angles are equal.
func (p *Polygon) IsEquiangular() bool {
	p.equiangularOnce.Do(func() {
		first := p.VertexAngle(0)
		p.equiangular = true
		for i := 1; i < len(p.vertices); i++ {
			if !anglesEqual(p.VertexAngle(i), first) {
				p.equiangular = false
				return
			}
		}
	})
	return p.equiangular
}

// IsRegular reports whether p is both equilateral and equiangular.
func (p *Polygon) IsRegular() bool {
	return p.IsEquilateral() && p.IsEquiangular()
}

// Validate checks that p has at least two vertices and no side of zero length.
func (p *Polygon) Validate() error {
	if len(p.vertices) < 2 {
		return fmt.Errorf("%w: %d vertices", ErrInvalidPolygon, len(p.vertices))
	}
	for i := range p.vertices {
		if p.Vertex(i).Identical(p.Vertex(i + 1)) {
			return fmt.Errorf("%w: vertex %d repeats vertex %d", ErrInvalidPolygon, i+1, i)
		}
	}
	return nil
}

// Centroid returns the unnormalized sum of the vertices.
func (p *Polygon) Centroid() r3.Vector {
	p.centroidOnce.Do(func() {
		n := len(p.vertices)
		xs, ys, zs := make([]float64, n), make([]float64, n), make([]float64, n)
		for i, v := range p.vertices {
			xs[i], ys[i], zs[i] = v.X, v.Y, v.Z
		}
		x, y, z := BaseSumPoints(xs, ys, zs)
		p.centroid = r3.Vector{X: x, Y: y, Z: z}
	})
	return p.centroid
}

// Normal returns the vector area of p, the sum of the cross products of
// consecutive vertices. It points out of the sphere through the polygon when
// the vertices run anticlockwise around it.
func (p *Polygon) Normal() r3.Vector {
	n := len(p.vertices)
	ax, ay, az := make([]float64, n), make([]float64, n), make([]float64, n)
	bx, by, bz := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range p.vertices {
		a, b := p.vertices[i], p.Vertex(i+1)
		ax[i], ay[i], az[i] = a.X, a.Y, a.Z
		bx[i], by[i], bz[i] = b.X, b.Y, b.Z
	}
	cx, cy, cz := make([]float64, n), make([]float64, n), make([]float64, n)
	BaseBatchCrossProduct(ax, ay, az, bx, by, bz, cx, cy, cz)
	x, y, z := BaseSumPoints(cx, cy, cz)
	return r3.Vector{X: x, Y: y, Z: z}
}

// IsAnticlockwise reports whether the vertices of p wind anticlockwise about
// its centroid as seen from outside the sphere.
func (p *Polygon) IsAnticlockwise() bool {
	return p.Normal().Dot(p.Centroid()) > 0
}

// Reverse returns the polygon with its vertex order reversed.
func (p *Polygon) Reverse() *Polygon {
	n := len(p.vertices)
	out := make([]Point, n)
	for i, v := range p.vertices {
		out[n-1-i] = v
	}
	return newPolygon(out)
}

// Rotate returns p rotated anticlockwise by angle about axis.
func (p *Polygon) Rotate(axis Point, angle s1.Angle) *Polygon {
	return newPolygon(rotationMatrix(axis, angle).transformBatch(p.vertices))
}

// Reflect returns the mirror image of p in the plane of g. The vertex order
// is kept, so the image winds the opposite way.
func (p *Polygon) Reflect(g GreatCircle) *Polygon {
	return newPolygon(reflectionMatrix(g.Pole).transformBatch(p.vertices))
}

// Invert returns the image of p under the antipodal map.
func (p *Polygon) Invert() *Polygon {
	return newPolygon(inversionMatrix().transformBatch(p.vertices))
}

// Identical reports whether op has the same vertices as p in the same
// cyclic order, starting anywhere.
func (p *Polygon) Identical(op *Polygon) bool {
	return p.matches(op, false)
}

// Opposite reports whether op has the same vertices as p in reversed cyclic order.
func (p *Polygon) Opposite(op *Polygon) bool {
	return p.matches(op, true)
}

// IdenticalOrOpposite reports whether p and op bound the same region,
// irrespective of winding.
func (p *Polygon) IdenticalOrOpposite(op *Polygon) bool {
	return p.matches(op, false) || p.matches(op, true)
}

func (p *Polygon) matches(op *Polygon, reversed bool) bool {
	n := len(p.vertices)
	if n != len(op.vertices) {
		return false
	}
	for shift := 0; shift < n; shift++ {
		if !p.vertices[0].Identical(op.vertices[shift]) {
			continue
		}
		ok := true
		for i := 1; i < n && ok; i++ {
			j := shift + i
			if reversed {
				j = shift - i
			}
			ok = p.vertices[i].Identical(op.Vertex(j))
		}
		if ok {
			return true
		}
	}
	return false
}

// Triangle returns the spherical triangle ABC with the given vertex angles.
// A is the north pole, B lies on the meridian through (1, 0, 0) and C is
// placed so that A, B, C run anticlockwise.
//
// Each angle must lie in (0, π), their sum in (π, 3π), and no pair may
// exceed the third angle by π or more.
func Triangle(a, b, c s1.Angle) (*Polygon, error) {
	for _, x := range []s1.Angle{a, b, c} {
		if x <= 0 || x >= math.Pi {
			return nil, fmt.Errorf("%w: angle %v outside (0, π)", ErrInvalidTriangle, x)
		}
	}
	if sum := a + b + c; sum <= math.Pi || sum >= 3*math.Pi {
		return nil, fmt.Errorf("%w: angle sum %v outside (π, 3π)", ErrInvalidTriangle, sum)
	}
	for _, x := range [][3]s1.Angle{{a, b, c}, {b, c, a}, {c, a, b}} {
		if x[1]+x[2]-x[0] >= math.Pi {
			return nil, fmt.Errorf("%w: %v + %v - %v is at least π", ErrInvalidTriangle, x[1], x[2], x[0])
		}
	}

	sa, ca := math.Sincos(a.Radians())
	sb, cb := math.Sincos(b.Radians())
	sc, cc := math.Sincos(c.Radians())
	// Polar law of cosines for the sides AB (opposite C) and AC (opposite B).
	ab := math.Acos(epsilon.Clamp((cc+ca*cb)/(sa*sb), -1, 1))
	ac := math.Acos(epsilon.Clamp((cb+ca*cc)/(sa*sc), -1, 1))

	pa := NorthPole()
	pb := PointFromCoords(math.Sin(ab), 0, math.Cos(ab))
	pc := PointFromCoords(math.Sin(ac), 0, math.Cos(ac)).Rotate(pa, a)
	return newPolygon([]Point{pa, pb, pc}), nil
}
