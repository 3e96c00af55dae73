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

func TestFermatPointOctant(t *testing.T) {
	got, err := FermatPoint(px, py, pz)
	if err != nil {
		t.Fatalf("FermatPoint failed: %v", err)
	}
	if want := PointFromCoords(1, 1, 1); !got.Identical(want) {
		t.Errorf("FermatPoint of the octant = %v, want %v", got, want)
	}
}

func TestFermatPointBalances(t *testing.T) {
	tests := []struct {
		a, b, c s1.Angle
	}{
		{math.Pi / 2, math.Pi / 3, math.Pi / 3},
		{math.Pi / 2, math.Pi / 3, math.Pi / 4},
		{math.Pi / 2, math.Pi / 3, math.Pi / 5},
		{math.Pi / 2, math.Pi / 2, math.Pi / 5},
		{math.Pi / 2, math.Pi / 2, math.Pi / 3},
	}
	opt := cmpopts.EquateApprox(0, 1e-9)
	for _, test := range tests {
		tri, err := Triangle(test.a, test.b, test.c)
		if err != nil {
			t.Fatal(err)
		}
		x, err := FermatPoint(tri.Vertex(0), tri.Vertex(1), tri.Vertex(2))
		if err != nil {
			t.Errorf("FermatPoint of triangle (%v, %v, %v) failed: %v", test.a, test.b, test.c, err)
			continue
		}

		// The reflections of x in the three sides are equally far apart.
		var images []Point
		for i := 0; i < 3; i++ {
			g, err := GreatCircleFromPoints(tri.Vertex(i), tri.Vertex(i+1))
			if err != nil {
				t.Fatal(err)
			}
			images = append(images, x.Reflect(g))
		}
		d01 := images[0].MinorDistance(images[1]).Radians()
		d12 := images[1].MinorDistance(images[2]).Radians()
		d20 := images[2].MinorDistance(images[0]).Radians()
		if !cmp.Equal(d01, d12, opt) || !cmp.Equal(d12, d20, opt) {
			t.Errorf("triangle (%v, %v, %v): image distances %v, %v, %v, want all equal",
				test.a, test.b, test.c, d01, d12, d20)
		}
	}
}

func TestFermatPointErrors(t *testing.T) {
	if _, err := FermatPoint(px, px, py); !errors.Is(err, ErrIdenticalPoints) {
		t.Errorf("repeated vertex error = %v, want ErrIdenticalPoints", err)
	}
	if _, err := FermatPoint(px, py, PointFromCoords(1, 1, 0)); !errors.Is(err, ErrCannotFindFermatPoint) {
		t.Errorf("collinear vertices error = %v, want ErrCannotFindFermatPoint", err)
	}
}

func TestDefaultFermatOptions(t *testing.T) {
	opts := DefaultFermatOptions()
	if opts.MaxIterations != 10000 || opts.RandomSeeds != 1000 || opts.Damping != 0.67 {
		t.Errorf("DefaultFermatOptions() = %+v", opts)
	}
	if !(opts.Tolerance < opts.FallbackTolerance) {
		t.Errorf("Tolerance %v should be tighter than FallbackTolerance %v", opts.Tolerance, opts.FallbackTolerance)
	}
}
