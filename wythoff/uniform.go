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

package wythoff

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"

	"github.com/akhenakh/wythoff/s2"
)

var (
	// ErrNoSeed is returned when the seed point of a construction cannot be found.
	ErrNoSeed = errors.New("wythoff: cannot place seed vertex")

	// ErrTooManyFaces is returned when closing the faces under the symmetry
	// group produces more faces than the group can account for.
	ErrTooManyFaces = errors.New("wythoff: face closure does not terminate")
)

// Options controls UniformPolyhedronWithOptions.
type Options struct {
	// Fermat is used to find the seed of snub polyhedra.
	Fermat s2.FermatOptions
	// MaxFaces bounds the group closure. Zero means the group order times
	// the number of initial faces.
	MaxFaces int
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{Fermat: s2.DefaultFermatOptions()}
}

// UniformPolyhedron builds the uniform polyhedron named by s.
func (s *Symbol) UniformPolyhedron() (*s2.Polyhedron, error) {
	return s.UniformPolyhedronWithOptions(DefaultOptions())
}

// UniformPolyhedronWithOptions is UniformPolyhedron with explicit options.
func (s *Symbol) UniformPolyhedronWithOptions(opts Options) (*s2.Polyhedron, error) {
	k := newKaleidoscope(s)
	v, err := k.variant(s.typ)
	if err != nil {
		return nil, err
	}

	var (
		initial []*s2.Polygon
		images  func(*s2.Polygon) [3]*s2.Polygon
	)
	switch v := v.(type) {
	case vertexSeed:
		initial, err = k.facesAt(v.seed, []int{1, 2})
		images = k.reflections
	case edgeSeed:
		initial, err = k.facesAt(v.seed, []int{0, 1, 2})
		images = k.reflections
	case interiorSeed:
		initial, err = k.facesAt(v.seed, v.vertices)
		images = k.reflections
	case snubSeed:
		var seed s2.Point
		seed, err = s2.FermatPointWithOptions(k.vertices[0], k.vertices[1], k.vertices[2], opts.Fermat)
		if err == nil {
			initial, err = k.snubFaces(seed)
		}
		images = k.rotations
	default:
		panic(fmt.Sprintf("wythoff: unhandled construction %T", v))
	}
	if err != nil {
		return nil, fmt.Errorf("%v: %w", s, err)
	}

	limit := opts.MaxFaces
	if limit <= 0 {
		limit = s.triangle.Order() * max(len(initial), 1)
	}
	faces, err := closure(initial, images, limit)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", s, err)
	}
	p, err := s2.PolyhedronFromFaces(faces...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", s, err)
	}
	return p, nil
}

// variant is the construction for one Type, carrying what that Type needs.
// It is one of vertexSeed, edgeSeed, interiorSeed or snubSeed.
type variant interface {
	isVariant()
}

// vertexSeed starts at vertex P and surrounds Q and R with faces.
type vertexSeed struct{ seed s2.Point }

// edgeSeed starts on side PQ and surrounds all three vertices.
type edgeSeed struct{ seed s2.Point }

// interiorSeed starts at the incenter and surrounds the listed vertices.
type interiorSeed struct {
	seed     s2.Point
	vertices []int
}

// snubSeed starts at the Fermat point, found when faces are built.
type snubSeed struct{}

func (vertexSeed) isVariant()   {}
func (edgeSeed) isVariant()     {}
func (interiorSeed) isVariant() {}
func (snubSeed) isVariant()     {}

// kaleidoscope is a Schwarz triangle PQR realized on the sphere with its
// mirrors. mirrors[i] runs from vertex i to vertex i+1. turns[i] is the
// rotation about vertex i that is the product of the two mirrors there, and
// sides[i] is the number of times it must be applied to come back round.
type kaleidoscope struct {
	vertices [3]s2.Point
	mirrors  [3]s2.GreatCircle
	turns    [3]s1.Angle
	sides    [3]int
	denoms   [3]int
}

func newKaleidoscope(s *Symbol) *kaleidoscope {
	t := s.triangle
	k := &kaleidoscope{mirrors: t.Mirrors()}
	for i := range k.vertices {
		k.vertices[i] = t.Vertex(i)
		p := t.Param(i)
		k.turns[i] = s1.Angle(2 * math.Pi * float64(p.Den()) / float64(p.Num()))
		k.sides[i] = int(p.Num())
		k.denoms[i] = int(p.Den())
	}
	return k
}

// variant places the seed for typ.
func (k *kaleidoscope) variant(typ Type) (variant, error) {
	p, q, r := k.vertices[0], k.vertices[1], k.vertices[2]
	switch typ {
	case One:
		return vertexSeed{p}, nil
	case Two:
		bisector, err := r.BisectingGreatCircle(p, q)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoSeed, err)
		}
		pq, err := s2.MinorArcBetween(p, q)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoSeed, err)
		}
		xs, err := bisector.Intersections(pq)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoSeed, err)
		}
		if len(xs) != 1 {
			return nil, fmt.Errorf("%w: bisector at R meets PQ %d times", ErrNoSeed, len(xs))
		}
		return edgeSeed{xs[0]}, nil
	case Three:
		in, err := s2.Incenter(p, q, r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoSeed, err)
		}
		return interiorSeed{seed: in, vertices: k.interiorFaces()}, nil
	case Snub:
		return snubSeed{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidType, int(typ))
}

// interiorFaces decides which vertices of the triangle get a face when the
// seed is the incenter. Vertices whose angle has an even denominator are left
// out when there are any, since their faces would pass through the centre
// and cover other faces twice.
func (k *kaleidoscope) interiorFaces() []int {
	var odd []int
	for i, d := range k.denoms {
		if d%2 != 0 {
			odd = append(odd, i)
		}
	}
	if len(odd) == 0 {
		return []int{0, 1, 2}
	}
	return odd
}

// facesAt builds the face around each listed vertex that has seed as a corner.
func (k *kaleidoscope) facesAt(seed s2.Point, vertices []int) ([]*s2.Polygon, error) {
	var faces []*s2.Polygon
	for _, i := range vertices {
		f, err := k.faceAt(i, seed)
		if err != nil {
			return nil, err
		}
		if f != nil {
			faces = append(faces, f)
		}
	}
	return faces, nil
}

// faceAt returns the face around vertex i with a corner at seed, or nil if
// there is none: when seed is the vertex itself, or when the face would be a
// digon.
//
// If seed lies on one of the two mirrors through the vertex the face is the
// orbit of seed under turns[i]. Otherwise seed and its image in the second
// mirror are two corners of a face with twice as many sides.
func (k *kaleidoscope) faceAt(i int, seed s2.Point) (*s2.Polygon, error) {
	v := k.vertices[i]
	if seed.Identical(v) {
		return nil, nil
	}
	first, second := k.mirrors[i], k.mirrors[(i+2)%3]

	var base []s2.Point
	if first.Contains(seed) || second.Contains(seed) {
		if k.sides[i] == 2 {
			return nil, nil
		}
		base = []s2.Point{seed, seed.Rotate(v, k.turns[i])}
	} else {
		base = []s2.Point{seed, seed.Reflect(second), seed.Rotate(v, k.turns[i])}
	}
	return k.sweep(i, base)
}

// sweep turns the chain of edges through base about vertex i, once for each
// side of the angle there, and traces the result into a polygon.
func (k *kaleidoscope) sweep(i int, base []s2.Point) (*s2.Polygon, error) {
	var chain []s2.Arc
	for j := 0; j+1 < len(base); j++ {
		e, err := s2.MinorArcBetween(base[j], base[j+1])
		if err != nil {
			return nil, err
		}
		chain = append(chain, e)
	}
	edges := make([]s2.Arc, 0, len(chain)*k.sides[i])
	for n := 0; n < k.sides[i]; n++ {
		angle := s1.Angle(n) * k.turns[i]
		for _, e := range chain {
			edges = append(edges, e.Rotate(k.vertices[i], angle))
		}
	}
	f, err := s2.PolygonFromEdges(edges)
	if err != nil {
		return nil, err
	}
	if f.NumVertices() < 3 {
		return nil, nil
	}
	return f, nil
}

// snubFaces builds the triangle joining the images of seed in the three
// mirrors, and the face around each vertex through two of those images.
func (k *kaleidoscope) snubFaces(seed s2.Point) ([]*s2.Polygon, error) {
	var images [3]s2.Point
	for i, m := range k.mirrors {
		images[i] = seed.Reflect(m)
	}
	central, err := s2.PolygonFromPoints(images[1], images[2], images[0])
	if err != nil {
		return nil, err
	}
	faces := []*s2.Polygon{central}
	for i := range k.vertices {
		if k.sides[i] == 2 {
			continue
		}
		f, err := k.sweep(i, []s2.Point{images[i], images[i].Rotate(k.vertices[i], k.turns[i])})
		if err != nil {
			return nil, err
		}
		if f != nil {
			faces = append(faces, f)
		}
	}
	return faces, nil
}

// reflections returns f reflected in each mirror, reversed so that it keeps
// facing outwards.
func (k *kaleidoscope) reflections(f *s2.Polygon) [3]*s2.Polygon {
	var out [3]*s2.Polygon
	for i, m := range k.mirrors {
		out[i] = f.Reflect(m).Reverse()
	}
	return out
}

// rotations returns f turned about each vertex by the angle there.
func (k *kaleidoscope) rotations(f *s2.Polygon) [3]*s2.Polygon {
	var out [3]*s2.Polygon
	for i, v := range k.vertices {
		out[i] = f.Rotate(v, k.turns[i])
	}
	return out
}

// centroidTolerance is how far apart, coordinate by coordinate, the vertex
// sums of two copies of the same face can drift.
const centroidTolerance = 1e-9

// faceSet is a list of faces with their vertex sums kept alongside in SoA
// form for s2.BaseMaxCoordDistanceBatch.
type faceSet struct {
	faces      []*s2.Polygon
	xs, ys, zs []float64
	dist       []float64
}

func (fs *faceSet) add(f *s2.Polygon) {
	c := f.Centroid()
	fs.faces = append(fs.faces, f)
	fs.xs, fs.ys, fs.zs = append(fs.xs, c.X), append(fs.ys, c.Y), append(fs.zs, c.Z)
}

// contains reports whether a face identical or opposite to f is in the set.
// Only faces whose vertex sum matches that of f are compared vertex by vertex.
func (fs *faceSet) contains(f *s2.Polygon) bool {
	n := len(fs.faces)
	if len(fs.dist) < n {
		fs.dist = make([]float64, 2*n)
	}
	c := f.Centroid()
	s2.BaseMaxCoordDistanceBatch(c.X, c.Y, c.Z, fs.xs, fs.ys, fs.zs, fs.dist[:n])
	for i, d := range fs.dist[:n] {
		if d <= centroidTolerance && fs.faces[i].IdenticalOrOpposite(f) {
			return true
		}
	}
	return false
}

// closure applies images to every face, including the ones it adds, until no
// new face appears. A face is new unless it is identical or opposite to one
// already present.
func closure(initial []*s2.Polygon, images func(*s2.Polygon) [3]*s2.Polygon, limit int) ([]*s2.Polygon, error) {
	var fs faceSet
	for _, f := range initial {
		fs.add(f)
	}
	for next := 0; next < len(fs.faces); next++ {
		for _, img := range images(fs.faces[next]) {
			if fs.contains(img) {
				continue
			}
			fs.add(img)
			if len(fs.faces) > limit {
				return nil, fmt.Errorf("%w: more than %d faces", ErrTooManyFaces, limit)
			}
		}
	}
	return fs.faces, nil
}
