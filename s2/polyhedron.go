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
	"slices"
	"strconv"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"github.com/akhenakh/wythoff/epsilon"
)

// Incidence names one corner or one side of one face of a polyhedron.
type Incidence struct {
	Face  int // index into Polyhedron.Faces
	Index int // vertex or side index within that face
}

// Vertex is a distinct point of a polyhedron together with every face corner
// found at it.
type Vertex struct {
	Point
	Incidences []Incidence
}

// Degree returns the number of face corners at v.
func (v Vertex) Degree() int { return len(v.Incidences) }

// Edge is a distinct side of a polyhedron together with every face side
// running along it, in either direction. The arc follows the first face side
// that was seen.
type Edge struct {
	Arc
	Incidences []Incidence
}

// Degree returns the number of face sides on e.
func (e Edge) Degree() int { return len(e.Incidences) }

// Polyhedron is a set of spherical polygons. Vertices, edges, adjacency and
// orientation are derived from the faces by coincidence of points the first
// time any of them is asked for.
type Polyhedron struct {
	faces []*Polygon

	topologyOnce sync.Once
	vertices     []Vertex
	edges        []Edge
	adjacency    map[Incidence][]Incidence
	oriented     bool
}

// PolyhedronFromFaces returns the polyhedron with the given faces. At least
// two faces are needed.
func PolyhedronFromFaces(faces ...*Polygon) (*Polyhedron, error) {
	if len(faces) < 2 {
		return nil, fmt.Errorf("%w: %d faces", ErrNotEnoughFaces, len(faces))
	}
	return &Polyhedron{faces: slices.Clone(faces)}, nil
}

func (p *Polyhedron) String() string {
	return fmt.Sprintf("Polyhedron{faces: %d, vertices: %d, edges: %d}", p.NumFaces(), p.NumVertices(), p.NumEdges())
}

// NumFaces returns the number of faces.
func (p *Polyhedron) NumFaces() int { return len(p.faces) }

// Face returns face i.
func (p *Polyhedron) Face(i int) *Polygon { return p.faces[i] }

// Faces returns the faces in construction order.
func (p *Polyhedron) Faces() []*Polygon { return slices.Clone(p.faces) }

// NumVertices returns the number of distinct vertices.
func (p *Polyhedron) NumVertices() int {
	p.topology()
	return len(p.vertices)
}

// Vertices returns the distinct vertices in order of first appearance.
func (p *Polyhedron) Vertices() []Vertex {
	p.topology()
	out := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = Vertex{v.Point, slices.Clone(v.Incidences)}
	}
	return out
}

// NumEdges returns the number of distinct edges.
func (p *Polyhedron) NumEdges() int {
	p.topology()
	return len(p.edges)
}

// Edges returns the distinct edges in order of first appearance.
func (p *Polyhedron) Edges() []Edge {
	p.topology()
	out := make([]Edge, len(p.edges))
	for i, e := range p.edges {
		out[i] = Edge{e.Arc, slices.Clone(e.Incidences)}
	}
	return out
}

// Oriented reports whether every edge shared by two face sides is traversed
// in opposite directions by them, as on a consistently wound surface.
func (p *Polyhedron) Oriented() bool {
	p.topology()
	return p.oriented
}

// Adjacent returns the other face sides lying on the same edge as side
// `side` of face `face`. It is empty for a side bordering no other face.
func (p *Polyhedron) Adjacent(face, side int) []Incidence {
	p.topology()
	return slices.Clone(p.adjacency[Incidence{face, side}])
}

// EulerCharacteristic returns V - E + F.
func (p *Polyhedron) EulerCharacteristic() int {
	return p.NumVertices() - p.NumEdges() + p.NumFaces()
}

// EdgeLengthRange returns the shortest and longest edge lengths. Every edge
// of a uniform polyhedron has the same length.
func (p *Polyhedron) EdgeLengthRange() (lo, hi s1.Angle) {
	p.topology()
	lengths := make([]float64, len(p.edges))
	for i, e := range p.edges {
		lengths[i] = e.Length().Radians()
	}
	minLen, maxLen := BaseBatchMinMax(lengths)
	return s1.Angle(minLen), s1.Angle(maxLen)
}

// Validate checks that every face is a valid polygon, every vertex is a
// corner of at least two faces and every edge borders exactly two faces.
func (p *Polyhedron) Validate() error {
	for i, f := range p.faces {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}
	}
	p.topology()
	for _, v := range p.vertices {
		if v.Degree() < 2 {
			return &VertexDegreeError{Vertex: v.Point, Degree: v.Degree()}
		}
	}
	for _, e := range p.edges {
		if e.Degree() != 2 {
			return &EdgeDegreeError{Edge: e.Arc, Degree: e.Degree()}
		}
	}
	return nil
}

// Split separates p into its connected components, two faces being connected
// when they share an edge. Components are returned in order of their lowest
// face index, each keeping the relative order of its faces.
func (p *Polyhedron) Split() ([]*Polyhedron, error) {
	p.topology()

	g := core.NewGraph()
	for i := range p.faces {
		if err := g.AddVertex(faceID(i)); err != nil {
			return nil, err
		}
	}
	for _, e := range p.edges {
		for i, a := range e.Incidences {
			for _, b := range e.Incidences[i+1:] {
				from, to := faceID(a.Face), faceID(b.Face)
				if a.Face == b.Face || g.HasEdge(from, to) {
					continue
				}
				if _, err := g.AddEdge(from, to, 0); err != nil {
					return nil, err
				}
			}
		}
	}

	visited := make([]bool, len(p.faces))
	var parts []*Polyhedron
	for start := range p.faces {
		if visited[start] {
			continue
		}
		res, err := bfs.BFS(g, faceID(start))
		if err != nil {
			return nil, err
		}
		members := make([]int, 0, len(res.Order))
		for _, id := range res.Order {
			i, err := strconv.Atoi(id)
			if err != nil {
				return nil, err
			}
			visited[i] = true
			members = append(members, i)
		}
		slices.Sort(members)
		faces := make([]*Polygon, len(members))
		for k, i := range members {
			faces[k] = p.faces[i]
		}
		part, err := PolyhedronFromFaces(faces...)
		if err != nil {
			return nil, fmt.Errorf("component of face %d: %w", start, err)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func faceID(i int) string { return strconv.Itoa(i) }

// firstCoincident returns the index of the first vector of xs, ys, zs whose
// coordinates are all within tol of v, or -1. dist is scratch space of the
// same length.
func firstCoincident(v r3.Vector, xs, ys, zs, dist []float64, tol float64) int {
	BaseMaxCoordDistanceBatch(v.X, v.Y, v.Z, xs, ys, zs, dist)
	for i, d := range dist {
		if d <= tol {
			return i
		}
	}
	return -1
}

// topology derives the vertex, edge and adjacency tables.
func (p *Polyhedron) topology() {
	p.topologyOnce.Do(func() {
		var (
			xs, ys, zs, dist []float64
			corner           = make([][]int, len(p.faces))
		)
		for fi, f := range p.faces {
			corner[fi] = make([]int, f.NumVertices())
			for vi, v := range f.vertices {
				if len(dist) < len(xs) {
					dist = make([]float64, 2*len(xs))
				}
				idx := firstCoincident(v.Vector, xs, ys, zs, dist[:len(xs)], epsilon.Epsilon)
				if idx < 0 {
					idx = len(p.vertices)
					p.vertices = append(p.vertices, Vertex{Point: v})
					xs, ys, zs = append(xs, v.X), append(ys, v.Y), append(zs, v.Z)
				}
				p.vertices[idx].Incidences = append(p.vertices[idx].Incidences, Incidence{fi, vi})
				corner[fi][vi] = idx
			}
		}

		// Edges are keyed by their endpoint vertices, lower index first.
		type edgeKey [2]int
		p.oriented = true
		index := make(map[edgeKey]int)
		starts := make(map[edgeKey][]int)
		for fi, f := range p.faces {
			n := f.NumVertices()
			for si := 0; si < n; si++ {
				a, b := corner[fi][si], corner[fi][(si+1)%n]
				key := edgeKey{min(a, b), max(a, b)}
				ei, ok := index[key]
				if !ok {
					ei = len(p.edges)
					index[key] = ei
					p.edges = append(p.edges, Edge{Arc: f.Side(si)})
				}
				if slices.Contains(starts[key], a) {
					p.oriented = false
				}
				starts[key] = append(starts[key], a)
				p.edges[ei].Incidences = append(p.edges[ei].Incidences, Incidence{fi, si})
			}
		}

		p.adjacency = make(map[Incidence][]Incidence)
		for _, e := range p.edges {
			if len(e.Incidences) < 2 {
				continue
			}
			for _, in := range e.Incidences {
				for _, other := range e.Incidences {
					if other != in {
						p.adjacency[in] = append(p.adjacency[in], other)
					}
				}
			}
		}
	})
}
