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

	"github.com/akhenakh/wythoff/epsilon"
	"github.com/golang/geo/s1"
)

// ArcType distinguishes the three kinds of geodesic arc between two points.
type ArcType int

const (
	// MinorArc is the shortest path between its endpoints.
	MinorArc ArcType = iota
	// MajorArc is the long way round the same great circle.
	MajorArc
	// MeridianArc joins antipodal endpoints; its midpoint picks the great circle.
	MeridianArc
)

func (t ArcType) String() string {
	switch t {
	case MinorArc:
		return "minor"
	case MajorArc:
		return "major"
	case MeridianArc:
		return "meridian"
	}
	return fmt.Sprintf("ArcType(%d)", int(t))
}

// Arc is a directed geodesic arc. The midpoint is stored explicitly, since
// the endpoints alone do not determine the arc when they are antipodal, nor
// whether the long or short way round is meant.
type Arc struct {
	Start, End, Mid Point
}

// MinorArcBetween returns the shortest arc from a to b. If a and b are
// identical the result is a point arc.
func MinorArcBetween(a, b Point) (Arc, error) {
	m, err := a.Midpoint(b, true)
	if err != nil {
		return Arc{}, err
	}
	return Arc{a, b, m}, nil
}

// MajorArcBetween returns the long arc from a to b.
func MajorArcBetween(a, b Point) (Arc, error) {
	m, err := a.Midpoint(b, false)
	if err != nil {
		return Arc{}, err
	}
	return Arc{a, b, m}, nil
}

// MeridianArcBetween returns the half great circle from a to its antipode b
// passing through mid.
func MeridianArcBetween(a, b, mid Point) (Arc, error) {
	if !a.Antipodal(b) {
		return Arc{}, fmt.Errorf("%w: meridian endpoints %v and %v are not antipodal", ErrInvalidArc, a, b)
	}
	if !epsilon.Zero(a.Dot(mid.Vector)) || !epsilon.Zero(b.Dot(mid.Vector)) {
		return Arc{}, fmt.Errorf("%w: meridian midpoint %v is not a quarter turn from %v", ErrInvalidArc, mid, a)
	}
	return Arc{a, b, mid}, nil
}

// minorArc is MinorArcBetween for callers that have already excluded
// antipodal endpoints.
func minorArc(a, b Point) Arc {
	arc, err := MinorArcBetween(a, b)
	if err != nil {
		panic(fmt.Sprintf("s2: minor arc between checked points: %v", err))
	}
	return arc
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc(%v -> %v via %v)", a.Start, a.End, a.Mid)
}

// Type reports which kind of arc a is.
func (a Arc) Type() ArcType {
	if a.Start.Antipodal(a.End) {
		return MeridianArc
	}
	if a.IsPoint() || a.Mid.Dot(a.Start.Add(a.End.Vector)) > 0 {
		return MinorArc
	}
	return MajorArc
}

// IsPoint reports whether a has zero length.
func (a Arc) IsPoint() bool {
	return a.Start.Identical(a.End) && a.Start.Identical(a.Mid)
}

// Length returns the length of a.
func (a Arc) Length() s1.Angle {
	return 2 * a.Start.MinorDistance(a.Mid)
}

// GreatCircle returns the great circle a runs along, oriented in the
// direction of travel.
func (a Arc) GreatCircle() (GreatCircle, error) {
	if a.IsPoint() {
		return GreatCircle{}, fmt.Errorf("%w: %v has no great circle", ErrPointArc, a)
	}
	return GreatCircleFromPoints(a.Start, a.Mid)
}

// Contains reports whether p lies on a, endpoints included.
func (a Arc) Contains(p Point) bool {
	if a.IsPoint() {
		return a.Start.Identical(p)
	}
	g, err := a.GreatCircle()
	if err != nil {
		return false
	}
	if !g.Contains(p) {
		return false
	}
	half := a.Mid.MinorDistance(a.Start)
	return epsilon.LessOrEqual(a.Mid.MinorDistance(p).Radians(), half.Radians())
}

// Intersections returns the points common to a and oa.
//
// Point arcs are handled by containment. Two proper arcs on the same great
// circle are reported as ErrOverlappingArcs rather than resolved.
func (a Arc) Intersections(oa Arc) ([]Point, error) {
	switch {
	case a.IsPoint():
		if oa.Contains(a.Start) {
			return []Point{a.Start}, nil
		}
		return nil, nil
	case oa.IsPoint():
		if a.Contains(oa.Start) {
			return []Point{oa.Start}, nil
		}
		return nil, nil
	}
	g, err := a.GreatCircle()
	if err != nil {
		return nil, err
	}
	og, err := oa.GreatCircle()
	if err != nil {
		return nil, err
	}
	if g.Same(og) {
		return nil, fmt.Errorf("%w: %v and %v", ErrOverlappingArcs, a, oa)
	}
	xs, err := g.Intersect(og)
	if err != nil {
		return nil, err
	}
	var out []Point
	for _, x := range xs {
		if a.Contains(x) && oa.Contains(x) {
			out = append(out, x)
		}
	}
	return out, nil
}

// Angle returns the anticlockwise angle, in [0, 2π), from the initial
// direction of a to the initial direction of oa. Both arcs must start at
// the same point.
func (a Arc) Angle(oa Arc) (s1.Angle, error) {
	if !a.Start.Identical(oa.Start) {
		return 0, fmt.Errorf("%w: arcs start at %v and %v", ErrInvalidArc, a.Start, oa.Start)
	}
	if a.IsPoint() || oa.IsPoint() {
		return 0, fmt.Errorf("%w: angle with a point arc", ErrPointArc)
	}
	return positive(a.Start.signedAngle(a.Mid, oa.Mid)), nil
}

// Reverse returns the same arc traversed the other way.
func (a Arc) Reverse() Arc {
	return Arc{a.End, a.Start, a.Mid}
}

// Identical reports whether a and oa have the same endpoints and midpoint.
func (a Arc) Identical(oa Arc) bool {
	return a.Start.Identical(oa.Start) && a.End.Identical(oa.End) && a.Mid.Identical(oa.Mid)
}

// Opposite reports whether oa is a traversed backwards.
func (a Arc) Opposite(oa Arc) bool {
	return a.Identical(oa.Reverse())
}

// IdenticalOrOpposite reports whether a and oa cover the same points.
func (a Arc) IdenticalOrOpposite(oa Arc) bool {
	return a.Identical(oa) || a.Opposite(oa)
}

// Rotate returns a rotated anticlockwise by angle about axis.
func (a Arc) Rotate(axis Point, angle s1.Angle) Arc {
	m := rotationMatrix(axis, angle)
	return Arc{m.transform(a.Start), m.transform(a.End), m.transform(a.Mid)}
}

// Reflect returns the mirror image of a in the plane of g.
func (a Arc) Reflect(g GreatCircle) Arc {
	m := reflectionMatrix(g.Pole)
	return Arc{m.transform(a.Start), m.transform(a.End), m.transform(a.Mid)}
}
