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

/*
Package s2 is a library for constructing polyhedra on the unit sphere.

Points are unit vectors; great circles are held by their poles; arcs carry an
explicit midpoint so minor, major and meridian arcs between the same endpoints
can be told apart. Polygons are loops of points whose sides are minor arcs, and
a Polyhedron is an unordered set of such polygons from which vertices, edges
and face adjacency are recovered purely by coincidence of points.

Every geometric predicate in this package is decided with the absolute
tolerance epsilon.Epsilon.
*/
package s2
