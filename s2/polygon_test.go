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
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/google/go-cmp/cmp"
)

func mustPolygon(t *testing.T, points ...Point) *Polygon {
	t.Helper()
	p, err := PolygonFromPoints(points...)
	if err != nil {
		t.Fatalf("PolygonFromPoints(%v) failed: %v", points, err)
	}
	return p
}

func TestPolygonFromPointsErrors(t *testing.T) {
	if _, err := PolygonFromPoints(px); !errors.Is(err, ErrInvalidPolygon) {
		t.Errorf("one vertex error = %v, want ErrInvalidPolygon", err)
	}
	if _, err := PolygonFromPoints(px, py, py.Antipode()); !errors.Is(err, ErrAntipodalPoints) {
		t.Errorf("antipodal side error = %v, want ErrAntipodalPoints", err)
	}
}

func TestPolygonOctant(t *testing.T) {
	p := mustPolygon(t, pz, px, py)
	for i := 0; i < 3; i++ {
		if got := p.VertexAngle(i); !anglesEqual(got, math.Pi/2) {
			t.Errorf("VertexAngle(%d) = %v, want 90°", i, got)
		}
		if got := p.SideLength(i); !anglesEqual(got, math.Pi/2) {
			t.Errorf("SideLength(%d) = %v, want 90°", i, got)
		}
	}
	if !p.IsRegular() {
		t.Errorf("%v is not regular", p)
	}
	if diff := cmp.Diff(r3.Vector{X: 1, Y: 1, Z: 1}, p.Centroid()); diff != "" {
		t.Errorf("Centroid() mismatch (-want +got):\n%s", diff)
	}
	if !p.IsAnticlockwise() || p.Reverse().IsAnticlockwise() {
		t.Errorf("octant winding: %v anticlockwise = %v, reversed = %v", p, p.IsAnticlockwise(), p.Reverse().IsAnticlockwise())
	}
	if got := p.Vertex(-1); !got.Identical(py) {
		t.Errorf("Vertex(-1) = %v, want %v", got, py)
	}
	if got := len(p.Sides()); got != 3 {
		t.Errorf("len(Sides()) = %d, want 3", got)
	}
}

func TestPolygonIrregular(t *testing.T) {
	// A rectangle on the sphere has equal angles but unequal sides.
	rect := mustPolygon(t,
		PointFromCoords(1, 2, 1), PointFromCoords(-1, 2, 1),
		PointFromCoords(-1, -2, 1), PointFromCoords(1, -2, 1))
	if !rect.IsEquiangular() {
		t.Errorf("%v should be equiangular", rect)
	}
	if rect.IsEquilateral() || rect.IsRegular() {
		t.Errorf("%v should not be equilateral", rect)
	}

	// A rhombus has equal sides but unequal angles.
	rhombus := mustPolygon(t,
		PointFromCoords(2, 0, 1), PointFromCoords(0, 1, 1),
		PointFromCoords(-2, 0, 1), PointFromCoords(0, -1, 1))
	if !rhombus.IsEquilateral() || rhombus.IsEquiangular() {
		t.Errorf("%v: equilateral = %v, equiangular = %v, want true, false",
			rhombus, rhombus.IsEquilateral(), rhombus.IsEquiangular())
	}
}

func TestPolygonMemoizedQueries(t *testing.T) {
	p, err := Triangle(math.Pi/2, math.Pi/3, math.Pi/5)
	if err != nil {
		t.Fatal(err)
	}
	before := p.Vertices()
	for i := 0; i < 3; i++ {
		if a, b := p.VertexAngle(i), p.VertexAngle(i); a != b {
			t.Errorf("VertexAngle(%d) changed between calls: %v, %v", i, a, b)
		}
	}
	if a, b := p.IsRegular(), p.IsRegular(); a != b {
		t.Errorf("IsRegular changed between calls: %v, %v", a, b)
	}
	if a, b := p.Centroid(), p.Centroid(); a != b {
		t.Errorf("Centroid changed between calls: %v, %v", a, b)
	}
	if diff := cmp.Diff(before, p.Vertices()); diff != "" {
		t.Errorf("vertices changed by queries (-before +after):\n%s", diff)
	}
}

func TestTriangle(t *testing.T) {
	tests := []struct {
		a, b, c s1.Angle
	}{
		{math.Pi / 2, math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, math.Pi / 3, math.Pi / 3},
		{math.Pi / 2, math.Pi / 3, math.Pi / 4},
		{math.Pi / 2, math.Pi / 3, math.Pi / 5},
		{math.Pi / 3, math.Pi / 2, 2 * math.Pi / 5},
		{2 * math.Pi / 3, 2 * math.Pi / 3, 2 * math.Pi / 3},
	}
	for _, test := range tests {
		p, err := Triangle(test.a, test.b, test.c)
		if err != nil {
			t.Errorf("Triangle(%v, %v, %v) failed: %v", test.a, test.b, test.c, err)
			continue
		}
		if !p.Vertex(0).Identical(NorthPole()) {
			t.Errorf("Triangle(%v, %v, %v) starts at %v, want the north pole", test.a, test.b, test.c, p.Vertex(0))
		}
		for i, want := range []s1.Angle{test.a, test.b, test.c} {
			if got := p.VertexAngle(i); !anglesEqual(got, want) {
				t.Errorf("Triangle(%v, %v, %v).VertexAngle(%d) = %v, want %v", test.a, test.b, test.c, i, got, want)
			}
		}
		if !p.IsAnticlockwise() {
			t.Errorf("Triangle(%v, %v, %v) winds clockwise", test.a, test.b, test.c)
		}
	}
}

func TestTriangleInvalid(t *testing.T) {
	tests := []struct {
		a, b, c s1.Angle
	}{
		{0, math.Pi / 2, math.Pi / 2},
		{math.Pi, math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, math.Pi / 4, math.Pi / 4},
		{math.Pi / 4, math.Pi / 4, math.Pi / 4},
		{0.9 * math.Pi, 0.9 * math.Pi, 0.1 * math.Pi},
	}
	for _, test := range tests {
		if _, err := Triangle(test.a, test.b, test.c); !errors.Is(err, ErrInvalidTriangle) {
			t.Errorf("Triangle(%v, %v, %v) error = %v, want ErrInvalidTriangle", test.a, test.b, test.c, err)
		}
	}
}

func TestPolygonComparisons(t *testing.T) {
	p := mustPolygon(t, pz, px, py)
	tests := []struct {
		q                   *Polygon
		identical, opposite bool
	}{
		{mustPolygon(t, pz, px, py), true, false},
		{mustPolygon(t, px, py, pz), true, false},
		{mustPolygon(t, py, px, pz), false, true},
		{mustPolygon(t, pz, py, px), false, true},
		{mustPolygon(t, pz, px, py.Antipode()), false, false},
		{mustPolygon(t, pz, px), false, false},
	}
	for _, test := range tests {
		if got := p.Identical(test.q); got != test.identical {
			t.Errorf("%v.Identical(%v) = %v, want %v", p, test.q, got, test.identical)
		}
		if got := p.Opposite(test.q); got != test.opposite {
			t.Errorf("%v.Opposite(%v) = %v, want %v", p, test.q, got, test.opposite)
		}
		if got := p.IdenticalOrOpposite(test.q); got != (test.identical || test.opposite) {
			t.Errorf("%v.IdenticalOrOpposite(%v) = %v", p, test.q, got)
		}
	}
	if !p.Reverse().Opposite(p) {
		t.Errorf("%v.Reverse() is not opposite to it", p)
	}
}

func TestPolygonTransforms(t *testing.T) {
	p := mustPolygon(t, pz, px, py)
	if got, want := p.Rotate(pz, math.Pi/2), mustPolygon(t, pz, py, px.Antipode()); !got.Identical(want) {
		t.Errorf("%v rotated a quarter turn = %v, want %v", p, got, want)
	}
	reflected := p.Reflect(GreatCircleFromPole(px))
	if want := mustPolygon(t, pz, px.Antipode(), py); !reflected.Identical(want) {
		t.Errorf("%v reflected = %v, want %v", p, reflected, want)
	}
	if reflected.IsAnticlockwise() {
		t.Errorf("reflection of %v should wind clockwise", p)
	}
	if got, want := p.Invert(), mustPolygon(t, pz.Antipode(), px.Antipode(), py.Antipode()); !got.Identical(want) {
		t.Errorf("%v.Invert() = %v, want %v", p, got, want)
	}
}

func TestPolygonValidate(t *testing.T) {
	if err := mustPolygon(t, pz, px, py).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := mustPolygon(t, pz, px, px, py).Validate(); !errors.Is(err, ErrInvalidPolygon) {
		t.Errorf("repeated vertex Validate() = %v, want ErrInvalidPolygon", err)
	}
	if err := mustPolygon(t, px, px).Validate(); !errors.Is(err, ErrInvalidPolygon) {
		t.Errorf("point arc Validate() = %v, want ErrInvalidPolygon", err)
	}
}
