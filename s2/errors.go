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
	"fmt"
)

// Geometric degeneracies.
var (
	// ErrIdenticalPoints is returned when a construction needs two distinct points.
	ErrIdenticalPoints = errors.New("s2: identical spherical points")

	// ErrAntipodalPoints is returned when a construction needs two points that
	// are not antipodal, e.g. a minor arc or a great circle through them.
	ErrAntipodalPoints = errors.New("s2: antipodal points")

	// ErrPointArc is returned when a zero length arc is used where a proper arc is needed.
	ErrPointArc = errors.New("s2: point arc")

	// ErrInvalidArc is returned when a meridian arc is requested for points that
	// are not antipodal, or with a midpoint that is not a quarter turn from both ends.
	ErrInvalidArc = errors.New("s2: invalid arc")

	// ErrOverlappingArcs is returned when two proper arcs lie on the same great
	// circle. Their intersection is not resolved to a finite point set.
	ErrOverlappingArcs = errors.New("s2: overlapping arcs")

	// ErrGreatCircleContainsArc is returned when an arc lies entirely on the
	// great circle it is being intersected with.
	ErrGreatCircleContainsArc = errors.New("s2: great circle contains arc")

	// ErrSameGreatCircle is returned when intersecting a great circle with itself.
	ErrSameGreatCircle = errors.New("s2: same great circle")
)

// Input validation.
var (
	// ErrZeroVector is returned when a point is built from a vector with no direction.
	ErrZeroVector = errors.New("s2: zero vector has no direction")

	// ErrInvalidTriangle is returned when three angles do not describe a spherical triangle.
	ErrInvalidTriangle = errors.New("s2: invalid triangle angles")

	// ErrInvalidPolygon is returned for polygons with too few or repeated vertices.
	ErrInvalidPolygon = errors.New("s2: invalid spherical polygon")

	// ErrOpenTrace is returned when a set of edges does not close into a polygon.
	ErrOpenTrace = errors.New("s2: edges do not form a closed polygon")

	// ErrNotEnoughFaces is returned when a polyhedron would have fewer than two faces.
	ErrNotEnoughFaces = errors.New("s2: not enough spherical faces")
)

// Non-convergence.
var (
	// ErrCannotFindFermatPoint is returned when the Fermat point relaxation did
	// not converge from any seed.
	ErrCannotFindFermatPoint = errors.New("s2: cannot find Fermat point")
)

// Topological inconsistency.
var (
	// ErrInvalidVertex is wrapped by VertexDegreeError.
	ErrInvalidVertex = errors.New("s2: invalid spherical vertex")

	// ErrInvalidEdge is wrapped by EdgeDegreeError.
	ErrInvalidEdge = errors.New("s2: invalid edge")
)

// VertexDegreeError reports a polyhedron vertex that borders too few faces.
type VertexDegreeError struct {
	Vertex Point
	Degree int
}

func (e *VertexDegreeError) Error() string {
	return fmt.Sprintf("%v: vertex %v borders %d faces, want at least 2", ErrInvalidVertex, e.Vertex, e.Degree)
}

func (e *VertexDegreeError) Unwrap() error { return ErrInvalidVertex }

// EdgeDegreeError reports a polyhedron edge that does not border exactly two faces.
type EdgeDegreeError struct {
	Edge   Arc
	Degree int
}

func (e *EdgeDegreeError) Error() string {
	return fmt.Sprintf("%v: edge %v borders %d faces, want 2", ErrInvalidEdge, e.Edge, e.Degree)
}

func (e *EdgeDegreeError) Unwrap() error { return ErrInvalidEdge }
