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

	"github.com/golang/geo/s1"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	px = PointFromCoords(1, 0, 0)
	py = PointFromCoords(0, 1, 0)
	pz = PointFromCoords(0, 0, 1)
)

// testPoints is a spread of points, none of them on a coordinate plane
// except the axes themselves.
var testPoints = []Point{
	px, py, pz,
	PointFromCoords(1, 1, 1),
	PointFromCoords(-1, 2, 0.5),
	PointFromCoords(0.3, -0.7, -0.2),
	PointFromCoords(-4, -1, 9),
	PointFromCoords(0.00456762077230, 0.99947476613078, 0.03208315302933),
}

func TestPointAntipodeRoundTrip(t *testing.T) {
	for _, p := range testPoints {
		if got := p.Antipode().Antipode(); !got.Identical(p) {
			t.Errorf("%v.Antipode().Antipode() = %v, want %v", p, got, p)
		}
		if !p.Antipodal(p.Antipode()) {
			t.Errorf("%v is not antipodal to its antipode", p)
		}
		if !p.Invert().Identical(p.Antipode()) {
			t.Errorf("%v.Invert() = %v, want the antipode", p, p.Invert())
		}
	}
}

func TestPointRotateRoundTrip(t *testing.T) {
	angles := []s1.Angle{0, 0.1, math.Pi / 5, 2, math.Pi, -3}
	for _, p := range testPoints {
		for _, axis := range testPoints {
			for _, a := range angles {
				if got := p.Rotate(axis, a).Rotate(axis, -a); !got.Identical(p) {
					t.Errorf("%v rotated by %v and back about %v = %v", p, a, axis, got)
				}
			}
		}
	}
}

func TestPointRotate(t *testing.T) {
	tests := []struct {
		p, axis Point
		angle   s1.Angle
		want    Point
	}{
		{px, pz, math.Pi / 2, py},
		{py, pz, math.Pi / 2, px.Antipode()},
		{pz, px, math.Pi / 2, py.Antipode()},
		{px, px, 1, px},
		{PointFromCoords(1, 1, 0), pz, math.Pi, PointFromCoords(-1, -1, 0)},
	}
	for _, test := range tests {
		if got := test.p.Rotate(test.axis, test.angle); !got.Identical(test.want) {
			t.Errorf("%v.Rotate(%v, %v) = %v, want %v", test.p, test.axis, test.angle, got, test.want)
		}
	}
}

func TestPointDistance(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)
	tests := []struct {
		a, b       Point
		minor, maj float64
	}{
		{px, py, math.Pi / 2, 3 * math.Pi / 2},
		{px, px, 0, 2 * math.Pi},
		{px, px.Antipode(), math.Pi, math.Pi},
		{px, PointFromCoords(1, 1, 0), math.Pi / 4, 7 * math.Pi / 4},
	}
	for _, test := range tests {
		if got := test.a.MinorDistance(test.b).Radians(); !cmp.Equal(got, test.minor, opt) {
			t.Errorf("%v.MinorDistance(%v) = %v, want %v", test.a, test.b, got, test.minor)
		}
		if got := test.a.Distance(test.b, false).Radians(); !cmp.Equal(got, test.maj, opt) {
			t.Errorf("%v.Distance(%v, major) = %v, want %v", test.a, test.b, got, test.maj)
		}
	}
	if got, want := px.EuclideanDistance(py), math.Sqrt2; !cmp.Equal(got, want, opt) {
		t.Errorf("%v.EuclideanDistance(%v) = %v, want %v", px, py, got, want)
	}
}

func TestPointMidpoint(t *testing.T) {
	m, err := px.Midpoint(py, true)
	if err != nil {
		t.Fatalf("minor midpoint failed: %v", err)
	}
	if want := PointFromCoords(1, 1, 0); !m.Identical(want) {
		t.Errorf("minor midpoint = %v, want %v", m, want)
	}
	m, err = px.Midpoint(py, false)
	if err != nil {
		t.Fatalf("major midpoint failed: %v", err)
	}
	if want := PointFromCoords(-1, -1, 0); !m.Identical(want) {
		t.Errorf("major midpoint = %v, want %v", m, want)
	}
	if m, err := px.Midpoint(px, true); err != nil || !m.Identical(px) {
		t.Errorf("minor midpoint of a point = %v, %v, want %v", m, err, px)
	}
	if _, err := px.Midpoint(px, false); !errors.Is(err, ErrPointArc) {
		t.Errorf("major midpoint of a point error = %v, want ErrPointArc", err)
	}
	if _, err := px.Midpoint(px.Antipode(), true); !errors.Is(err, ErrAntipodalPoints) {
		t.Errorf("midpoint of antipodal points error = %v, want ErrAntipodalPoints", err)
	}
}

func TestPointReflect(t *testing.T) {
	yz := GreatCircleFromPole(px)
	tests := []struct {
		p, want Point
	}{
		{PointFromCoords(1, 1, 0), PointFromCoords(-1, 1, 0)},
		{py, py},
		{px, px.Antipode()},
		{PointFromCoords(2, -1, 3), PointFromCoords(-2, -1, 3)},
	}
	for _, test := range tests {
		if got := test.p.Reflect(yz); !got.Identical(test.want) {
			t.Errorf("%v.Reflect(%v) = %v, want %v", test.p, yz, got, test.want)
		}
		if got := test.p.Reflect(yz).Reflect(yz); !got.Identical(test.p) {
			t.Errorf("%v reflected twice = %v", test.p, got)
		}
	}
}

func TestPointBisectingGreatCircle(t *testing.T) {
	g, err := pz.BisectingGreatCircle(px, py)
	if err != nil {
		t.Fatalf("BisectingGreatCircle failed: %v", err)
	}
	for _, p := range []Point{pz, PointFromCoords(1, 1, 0), PointFromCoords(1, 1, 5)} {
		if !g.Contains(p) {
			t.Errorf("bisector %v does not contain %v", g, p)
		}
	}
	if _, err := pz.BisectingGreatCircle(pz, py); !errors.Is(err, ErrIdenticalPoints) {
		t.Errorf("bisector with a repeated point error = %v, want ErrIdenticalPoints", err)
	}
	if _, err := pz.BisectingGreatCircle(px, pz.Antipode()); !errors.Is(err, ErrAntipodalPoints) {
		t.Errorf("bisector towards the antipode error = %v, want ErrAntipodalPoints", err)
	}
}

func TestIncenter(t *testing.T) {
	got, err := Incenter(px, py, pz)
	if err != nil {
		t.Fatalf("Incenter failed: %v", err)
	}
	if want := PointFromCoords(1, 1, 1); !got.Identical(want) {
		t.Errorf("Incenter of the octant = %v, want %v", got, want)
	}

	// The incenter is equidistant from the three sides.
	tri, err := Triangle(math.Pi/2, math.Pi/3, math.Pi/5)
	if err != nil {
		t.Fatal(err)
	}
	in, err := Incenter(tri.Vertex(0), tri.Vertex(1), tri.Vertex(2))
	if err != nil {
		t.Fatalf("Incenter failed: %v", err)
	}
	var dists []float64
	for i := 0; i < 3; i++ {
		g, err := GreatCircleFromPoints(tri.Vertex(i), tri.Vertex(i+1))
		if err != nil {
			t.Fatal(err)
		}
		dists = append(dists, math.Abs(g.Pole.Dot(in.Vector)))
	}
	if !cmp.Equal(dists[0], dists[1], cmpopts.EquateApprox(0, 1e-10)) ||
		!cmp.Equal(dists[1], dists[2], cmpopts.EquateApprox(0, 1e-10)) {
		t.Errorf("incenter side distances = %v, want all equal", dists)
	}
}

func TestNewPoint(t *testing.T) {
	p, err := NewPoint(0, 3, 4)
	if err != nil {
		t.Fatalf("NewPoint(0, 3, 4) failed: %v", err)
	}
	if want := PointFromCoords(0, 0.6, 0.8); !p.Identical(want) {
		t.Errorf("NewPoint(0, 3, 4) = %v, want %v", p, want)
	}
	for _, v := range [][3]float64{{0, 0, 0}, {math.NaN(), 1, 0}, {math.Inf(1), 0, 0}} {
		if _, err := NewPoint(v[0], v[1], v[2]); !errors.Is(err, ErrZeroVector) {
			t.Errorf("NewPoint(%v) error = %v, want ErrZeroVector", v, err)
		}
	}
}

func TestPointIdenticalTolerance(t *testing.T) {
	p := PointFromCoords(1, 2, 3)
	near := Point{p.Vector}
	near.Z += 5e-11
	far := Point{p.Vector}
	far.Z += 1e-9

	if !p.Identical(near) || !p.Antipodal(near.Antipode()) {
		t.Errorf("%v and %v, 5e-11 apart, are not identical", p, near)
	}
	if p.Identical(far) || p.Antipodal(far.Antipode()) {
		t.Errorf("%v and %v, 1e-9 apart, are identical", p, far)
	}
	if !anglesEqual(math.Pi/3, math.Pi/3+5e-11) || anglesEqual(math.Pi/3, math.Pi/3+1e-9) {
		t.Errorf("anglesEqual does not use a 1e-10 tolerance")
	}
	if got := positive(-math.Pi / 2); !anglesEqual(got, 3*math.Pi/2) {
		t.Errorf("positive(-π/2) = %v, want 3π/2", got)
	}
}
