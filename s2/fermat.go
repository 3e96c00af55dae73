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
	"math"
	"math/rand"

	"github.com/akhenakh/wythoff/epsilon"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// FermatOptions controls the relaxation used by FermatPointWithOptions.
type FermatOptions struct {
	// MaxIterations bounds the number of relaxation sweeps from one seed.
	MaxIterations int
	// Damping scales every correction step.
	Damping float64
	// Tolerance is the discrepancy below which a point is accepted at once.
	Tolerance float64
	// FallbackTolerance is accepted once MaxIterations sweeps have run.
	FallbackTolerance float64
	// RandomSeeds is the number of random starting points tried after the
	// incenter and its reflection have failed.
	RandomSeeds int
	// Seed seeds the random number generator for the random starting points.
	Seed int64
}

// DefaultFermatOptions returns default options.
func DefaultFermatOptions() FermatOptions {
	return FermatOptions{
		MaxIterations:     10000,
		Damping:           0.67,
		Tolerance:         epsilon.Epsilon / 1e6,
		FallbackTolerance: epsilon.Epsilon / 1e3,
		RandomSeeds:       1000,
		Seed:              1,
	}
}

const (
	// maxFermatStep caps a single correction so that a seed near a vertex at
	// a quarter turn cannot be thrown across the sphere.
	maxFermatStep = 0.1
	minDamping    = 0.01
)

var errDegenerateSeed = errors.New("degenerate seed")

// FermatPoint returns the point X at which the triangle abc balances:
// sin(d(X, v)) * sin(angle at v) is the same for all three vertices v. For a
// Schwarz triangle this is the point whose reflections in the three sides
// are at equal distances from each other and from their rotations about the
// vertices, which makes it the seed of a snub polyhedron.
func FermatPoint(a, b, c Point) (Point, error) {
	return FermatPointWithOptions(a, b, c, DefaultFermatOptions())
}

// FermatPointWithOptions is FermatPoint with explicit options.
//
// The relaxation is started from the incenter, then from the incenter
// reflected in ab, then from up to opts.RandomSeeds random points inside the
// triangle. ErrCannotFindFermatPoint is returned if none converges.
func FermatPointWithOptions(a, b, c Point, opts FermatOptions) (Point, error) {
	f := fermatSolver{vertices: [3]Point{a, b, c}, opts: opts}
	for i := range f.vertices {
		prev, v, next := f.vertices[(i+2)%3], f.vertices[i], f.vertices[(i+1)%3]
		if err := v.checkDistinct(next); err != nil {
			return Point{}, err
		}
		f.weights[i] = math.Abs(math.Sin(vertexAngle(prev, v, next).Radians()))
		if epsilon.Zero(f.weights[i]) {
			return Point{}, fmt.Errorf("%w: degenerate triangle at %v", ErrCannotFindFermatPoint, v)
		}
	}

	var seeds []Point
	if in, err := Incenter(a, b, c); err == nil {
		seeds = append(seeds, in)
		if ab, err := GreatCircleFromPoints(a, b); err == nil {
			seeds = append(seeds, in.Reflect(ab))
		}
	}
	for _, seed := range seeds {
		if x, err := f.relax(seed); err == nil {
			return x, nil
		}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	for i := 0; i < opts.RandomSeeds; i++ {
		seed := Point{a.Mul(rng.Float64()).Add(b.Mul(rng.Float64())).Add(c.Mul(rng.Float64())).Normalize()}
		if x, err := f.relax(seed); err == nil {
			return x, nil
		}
	}
	return Point{}, fmt.Errorf("%w: triangle %v, %v, %v", ErrCannotFindFermatPoint, a, b, c)
}

type fermatSolver struct {
	vertices [3]Point
	weights  [3]float64
	opts     FermatOptions
}

// discrepancy returns how far the ratio of the balance terms at vertices i
// and j is from one.
func (f *fermatSolver) discrepancy(x Point, i, j int) (float64, error) {
	si := math.Sin(x.MinorDistance(f.vertices[i]).Radians()) * f.weights[i]
	sj := math.Sin(x.MinorDistance(f.vertices[j]).Radians()) * f.weights[j]
	if epsilon.Zero(si) || epsilon.Zero(sj) {
		return 0, errDegenerateSeed
	}
	return si/sj - 1, nil
}

func (f *fermatSolver) maxDiscrepancy(x Point) (float64, error) {
	worst := 0.0
	for i := range f.vertices {
		d, err := f.discrepancy(x, i, (i+1)%3)
		if err != nil {
			return 0, err
		}
		worst = math.Max(worst, math.Abs(d))
	}
	return worst, nil
}

// relax moves x, one vertex pair at a time, towards the vertex whose balance
// term is too large (or away from it, past a quarter turn) until the
// discrepancy vanishes. The damping is halved whenever a sweep makes things
// worse.
func (f *fermatSolver) relax(x Point) (Point, error) {
	damping := f.opts.Damping
	prev := math.Inf(1)
	for iter := 0; iter < f.opts.MaxIterations; iter++ {
		for i := range f.vertices {
			d, err := f.discrepancy(x, i, (i+1)%3)
			if err != nil {
				return Point{}, err
			}
			v := f.vertices[i]
			axis := x.Cross(v.Vector)
			if axis.Norm2() == 0 {
				return Point{}, errDegenerateSeed
			}
			// tan(dist) turns the relative error in sin(dist) into a change of
			// dist. The step is not a fixed 0.67 of the discrepancy: it is
			// clamped to maxFermatStep and its damping shrinks whenever a
			// sweep makes the balance worse.
			dist := x.MinorDistance(v).Radians()
			step := epsilon.Clamp(damping*d*math.Tan(dist), -maxFermatStep, maxFermatStep)
			x = x.Rotate(Point{axis.Normalize()}, s1.Angle(step))
		}
		if !finite(x.Vector) {
			return Point{}, errDegenerateSeed
		}
		worst, err := f.maxDiscrepancy(x)
		if err != nil {
			return Point{}, err
		}
		if worst < f.opts.Tolerance {
			return x, nil
		}
		if worst > prev {
			damping = math.Max(damping/2, minDamping)
		}
		prev = worst
	}
	if worst, err := f.maxDiscrepancy(x); err == nil && worst < f.opts.FallbackTolerance {
		return x, nil
	}
	return Point{}, errDegenerateSeed
}

func finite(v r3.Vector) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
