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

import "fmt"

// PolygonFromEdges traces an unordered set of edges into a polygon.
//
// The trace starts with edges[0] in its own direction and repeatedly follows
// the next unused edge having an endpoint identical to the current point,
// until it arrives back at the start. Edges may be given in either direction.
// Edges not reached by the trace are ignored.
func PolygonFromEdges(edges []Arc) (*Polygon, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: no edges", ErrOpenTrace)
	}
	used := make([]bool, len(edges))
	used[0] = true
	start := edges[0].Start
	vertices := []Point{start}
	current := edges[0].End

	for !current.Identical(start) {
		next, ok := Point{}, false
		for i, e := range edges {
			if used[i] {
				continue
			}
			switch {
			case e.Start.Identical(current):
				next, ok = e.End, true
			case e.End.Identical(current):
				next, ok = e.Start, true
			}
			if ok {
				used[i] = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("%w: dead end at %v after %d vertices", ErrOpenTrace, current, len(vertices))
		}
		vertices = append(vertices, current)
		current = next
	}
	return newPolygon(vertices), nil
}
