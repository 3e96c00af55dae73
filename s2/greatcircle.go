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

// GreatCircle is the intersection of the sphere with a plane through its
// centre, represented by the pole normal to that plane. The circle is
// oriented: it runs anticlockwise when viewed from outside looking down on
// its pole.
type GreatCircle struct {
	Pole Point
}

// GreatCircleFromPoints returns the great circle through a and b, oriented
// so that the minor arc from a to b runs forwards along it.
func GreatCircleFromPoints(a, b Point) (GreatCircle, error) {
	if err := a.checkDistinct(b); err != nil {
		return GreatCircle{}, err
	}
	return GreatCircle{Point{a.Cross(b.Vector).Normalize()}}, nil
}

// GreatCircleFromPole returns the great circle with the given pole.
func GreatCircleFromPole(pole Point) GreatCircle {
	return GreatCircle{pole}
}

func (g GreatCircle) String() string {
	return fmt.Sprintf("GreatCircle(pole=%v)", g.Pole)
}

// Contains reports whether p lies on g.
func (g GreatCircle) Contains(p Point) bool {
	return epsilon.Zero(g.Pole.Dot(p.Vector))
}

// Same reports whether g and og are the same circle, in either orientation.
func (g GreatCircle) Same(og GreatCircle) bool {
	return g.Pole.Identical(og.Pole) || g.Pole.Antipodal(og.Pole)
}

// Reverse returns the same circle with the opposite orientation.
func (g GreatCircle) Reverse() GreatCircle {
	return GreatCircle{g.Pole.Antipode()}
}

// Angle returns the dihedral angle between the planes of g and og, in [0, π].
func (g GreatCircle) Angle(og GreatCircle) s1.Angle {
	return g.Pole.MinorDistance(og.Pole)
}

// Intersect returns the two antipodal points where g and og cross.
func (g GreatCircle) Intersect(og GreatCircle) ([2]Point, error) {
	if g.Same(og) {
		return [2]Point{}, fmt.Errorf("%w: %v", ErrSameGreatCircle, g)
	}
	x := Point{g.Pole.Cross(og.Pole.Vector).Normalize()}
	return [2]Point{x, x.Antipode()}, nil
}

// Intersections returns the points of a that lie on g.
//
// A point arc is returned whole if it lies on g. A proper arc lying on g has
// infinitely many common points and is reported as ErrGreatCircleContainsArc.
func (g GreatCircle) Intersections(a Arc) ([]Point, error) {
	if a.IsPoint() {
		if g.Contains(a.Start) {
			return []Point{a.Start}, nil
		}
		return nil, nil
	}
	ag, err := a.GreatCircle()
	if err != nil {
		return nil, err
	}
	if g.Same(ag) {
		return nil, fmt.Errorf("%w: %v on %v", ErrGreatCircleContainsArc, a, g)
	}
	xs, err := g.Intersect(ag)
	if err != nil {
		return nil, err
	}
	var out []Point
	for _, x := range xs {
		if a.Contains(x) {
			out = append(out, x)
		}
	}
	return out, nil
}

// Rotate returns g rotated anticlockwise by angle about axis.
func (g GreatCircle) Rotate(axis Point, angle s1.Angle) GreatCircle {
	return GreatCircle{g.Pole.Rotate(axis, angle)}
}

// Reflect returns the mirror image of g in the plane of m. Reflection
// reverses orientation, so the image pole is negated.
func (g GreatCircle) Reflect(m GreatCircle) GreatCircle {
	return GreatCircle{g.Pole.Reflect(m).Antipode()}
}
