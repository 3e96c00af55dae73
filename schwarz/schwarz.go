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

// Package schwarz classifies Schwarz triangles, the spherical triangles with
// angles π/p, π/q and π/r whose reflections cover the sphere a whole number
// of times.
package schwarz

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/akhenakh/wythoff/rational"
	"github.com/akhenakh/wythoff/s2"
	"github.com/golang/geo/s1"
)

var (
	// ErrInvalidTriangle is returned when p, q and r break one of the rules
	// for a Schwarz triangle.
	ErrInvalidTriangle = errors.New("schwarz: invalid Schwarz triangle")

	// ErrInconsistentTriangle is returned when the density is not a whole
	// number or the tiling does not match the symmetry group.
	ErrInconsistentTriangle = errors.New("schwarz: inconsistent Schwarz triangle")

	// ErrDoesNotTileSphere is returned when reflecting the triangle in its
	// sides produces more than MaxTiles distinct copies.
	ErrDoesNotTileSphere = errors.New("schwarz: triangle does not tile the sphere")
)

// MaxTiles is the order of the largest finite reflection group on the
// sphere, and so the largest number of tiles a Schwarz triangle can have.
const MaxTiles = 120

// Group is the point symmetry group generated by reflections in the sides of
// a Schwarz triangle.
type Group int

const (
	Dihedral Group = iota
	Tetrahedral
	Octahedral
	Icosahedral
)

func (g Group) String() string {
	switch g {
	case Dihedral:
		return "dihedral"
	case Tetrahedral:
		return "tetrahedral"
	case Octahedral:
		return "octahedral"
	case Icosahedral:
		return "icosahedral"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// Triangle is a validated Schwarz triangle. Its vertex angles are π/p, π/q
// and π/r, in that order, and everything derived from them is computed when
// the triangle is built.
type Triangle struct {
	params  [3]rational.Rat
	group   Group
	order   int
	density int
	polygon *s2.Polygon
	tiles   []*s2.Polygon
}

// New returns the Schwarz triangle (p q r), keeping the order given.
func New(p, q, r rational.Rat) (*Triangle, error) {
	t := &Triangle{params: [3]rational.Rat{p, q, r}}
	if err := t.validate(); err != nil {
		return nil, err
	}
	if err := t.classify(); err != nil {
		return nil, err
	}

	poly, err := s2.Triangle(t.VertexAngle(0), t.VertexAngle(1), t.VertexAngle(2))
	if err != nil {
		return nil, fmt.Errorf("%w %v: %w", ErrInvalidTriangle, t, err)
	}
	t.polygon = poly

	tiles, err := FindTiling(poly)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", t, err)
	}
	if len(tiles) != t.order {
		return nil, fmt.Errorf("%w %v: %d tiles for a group of order %d", ErrInconsistentTriangle, t, len(tiles), t.order)
	}
	t.tiles = tiles
	return t, nil
}

// Must is like New but panics on error. It is intended for tests and
// package level variables.
func Must(p, q, r rational.Rat) *Triangle {
	t, err := New(p, q, r)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Triangle) validate() error {
	var has4, has5 bool
	for _, x := range t.params {
		if !x.Greater(rational.One) {
			return fmt.Errorf("%w %v: %v is not greater than 1", ErrInvalidTriangle, t, x)
		}
		switch x.Num() {
		case 4:
			has4 = true
		case 5:
			has5 = true
		}
	}
	if !t.AngleSum().Greater(rational.One) {
		return fmt.Errorf("%w %v: angle sum %v is not greater than 1", ErrInvalidTriangle, t, t.AngleSum())
	}
	if has4 && has5 {
		return fmt.Errorf("%w %v: mixes octahedral and icosahedral angles", ErrInvalidTriangle, t)
	}
	if t.isDihedral() {
		return nil
	}
	for _, x := range t.params {
		if x.Num() > 5 {
			return fmt.Errorf("%w %v: numerator of %v exceeds 5", ErrInvalidTriangle, t, x)
		}
	}
	return nil
}

// dihedralAxis reports whether two of the parameters are exactly 2, and if
// so the index of the remaining one.
func (t *Triangle) dihedralAxis() (int, bool) {
	var twos, other int
	other = -1
	for i, x := range t.params {
		if x == rational.Two {
			twos++
		} else {
			other = i
		}
	}
	if twos < 2 {
		return 0, false
	}
	if other < 0 {
		other = 2
	}
	return other, true
}

func (t *Triangle) isDihedral() bool {
	_, ok := t.dihedralAxis()
	return ok
}

func (t *Triangle) classify() error {
	if i, ok := t.dihedralAxis(); ok {
		t.group = Dihedral
		t.order = 4 * int(t.params[i].Num())
		t.density = int(t.params[i].Den())
		return nil
	}

	var maxNum int64
	for _, x := range t.params {
		maxNum = max(maxNum, x.Num())
	}
	switch maxNum {
	case 3:
		t.group, t.order = Tetrahedral, 24
	case 4:
		t.group, t.order = Octahedral, 48
	case 5:
		t.group, t.order = Icosahedral, 120
	default:
		return fmt.Errorf("%w %v: no symmetry group for numerator %d", ErrInvalidTriangle, t, maxNum)
	}

	// The triangle's area is π times the excess over one, and order copies
	// of it cover the sphere's 4π density times.
	d := t.AngleSum().Sub(rational.One).Mul(rational.Int(int64(t.order))).Mul(rational.Must(1, 4))
	if !d.IsInt() {
		return fmt.Errorf("%w %v: density %v is not a whole number", ErrInconsistentTriangle, t, d)
	}
	t.density = int(d.Num())
	return nil
}

// FindTiling reflects tri in its three sides, and the copies in the same
// three mirrors, until no new copy appears. Copies are told apart by their
// vertices in order, so a copy that covers tri with its vertices permuted
// counts as new.
//
// ErrDoesNotTileSphere is returned if there are more than MaxTiles copies.
func FindTiling(tri *s2.Polygon) ([]*s2.Polygon, error) {
	if tri.NumVertices() != 3 {
		return nil, fmt.Errorf("%w: %d vertices", ErrInvalidTriangle, tri.NumVertices())
	}
	mirrors, err := sideMirrors(tri)
	if err != nil {
		return nil, err
	}

	tiles := []*s2.Polygon{tri}
	for next := 0; next < len(tiles); next++ {
		for _, m := range mirrors {
			image := tiles[next].Reflect(m)
			if slices.ContainsFunc(tiles, func(t *s2.Polygon) bool { return sameTile(t, image) }) {
				continue
			}
			tiles = append(tiles, image)
			if len(tiles) > MaxTiles {
				return nil, fmt.Errorf("%w: more than %d tiles", ErrDoesNotTileSphere, MaxTiles)
			}
		}
	}
	return tiles, nil
}

func sideMirrors(tri *s2.Polygon) ([3]s2.GreatCircle, error) {
	var mirrors [3]s2.GreatCircle
	for i := range mirrors {
		g, err := s2.GreatCircleFromPoints(tri.Vertex(i), tri.Vertex(i+1))
		if err != nil {
			return mirrors, fmt.Errorf("%w: side %d: %w", ErrInvalidTriangle, i, err)
		}
		mirrors[i] = g
	}
	return mirrors, nil
}

func sameTile(a, b *s2.Polygon) bool {
	for i := 0; i < 3; i++ {
		if !a.Vertex(i).Identical(b.Vertex(i)) {
			return false
		}
	}
	return true
}

func (t *Triangle) String() string {
	return fmt.Sprintf("(%v %v %v)", t.params[0], t.params[1], t.params[2])
}

// Params returns p, q and r.
func (t *Triangle) Params() [3]rational.Rat { return t.params }

// Param returns parameter i: p, q or r for i = 0, 1, 2.
func (t *Triangle) Param(i int) rational.Rat { return t.params[i] }

// VertexAngle returns the angle π/p, π/q or π/r at vertex i.
func (t *Triangle) VertexAngle(i int) s1.Angle {
	x := t.params[i]
	return s1.Angle(math.Pi * float64(x.Den()) / float64(x.Num()))
}

// AngleSum returns 1/p + 1/q + 1/r, the sum of the vertex angles in units of π.
func (t *Triangle) AngleSum() rational.Rat {
	sum := rational.Zero
	for _, x := range t.params {
		// Parameters are never zero.
		inv, err := x.Reciprocal()
		if err != nil {
			panic(fmt.Sprintf("schwarz: reciprocal of %v: %v", x, err))
		}
		sum = sum.Add(inv)
	}
	return sum
}

// Group returns the symmetry group generated by the triangle.
func (t *Triangle) Group() Group { return t.group }

// Order returns the number of elements of the symmetry group, including
// reflections.
func (t *Triangle) Order() int { return t.order }

// Density returns how many times the tiles cover the sphere.
func (t *Triangle) Density() int { return t.density }

// Size returns the number of tiles.
func (t *Triangle) Size() int { return len(t.tiles) }

// Polygon returns the triangle realized on the sphere, vertex 0 at the north
// pole and the vertices running anticlockwise.
func (t *Triangle) Polygon() *s2.Polygon { return t.polygon }

// Vertex returns vertex i of the realized triangle.
func (t *Triangle) Vertex(i int) s2.Point { return t.polygon.Vertex(i) }

// Mirrors returns the great circles of the sides, mirror i running from
// vertex i to vertex i+1.
func (t *Triangle) Mirrors() [3]s2.GreatCircle {
	m, err := sideMirrors(t.polygon)
	if err != nil {
		panic(fmt.Sprintf("schwarz: sides of %v: %v", t, err))
	}
	return m
}

// Tiles returns the copies of the triangle that make up the tiling, the
// triangle itself first.
func (t *Triangle) Tiles() []*s2.Polygon { return slices.Clone(t.tiles) }

// Equal reports whether t and o have the same parameters in the same order.
func (t *Triangle) Equal(o *Triangle) bool {
	return t.params == o.params
}

// candidates are the parameters from which every Schwarz triangle is made.
var candidates = []rational.Rat{
	rational.Must(5, 4),
	rational.Must(4, 3),
	rational.Must(3, 2),
	rational.Must(5, 3),
	rational.Two,
	rational.Must(5, 2),
	rational.Int(3),
	rational.Int(4),
	rational.Int(5),
}

// Candidates returns the admissible parameter values in increasing order.
func Candidates() []rational.Rat { return slices.Clone(candidates) }

var all = sync.OnceValue(func() []*Triangle {
	var out []*Triangle
	for i, p := range candidates {
		for j := i; j < len(candidates); j++ {
			for k := j; k < len(candidates); k++ {
				if t, err := New(p, candidates[j], candidates[k]); err == nil {
					out = append(out, t)
				}
			}
		}
	}
	return out
})

// All returns every Schwarz triangle (p q r) with p ≤ q ≤ r drawn from
// Candidates. The list is computed on first use.
func All() []*Triangle { return slices.Clone(all()) }
