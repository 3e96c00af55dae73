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

// Package wythoff builds uniform polyhedra on the sphere from Wythoff
// symbols.
//
// A symbol such as "3|2 4" names a Schwarz triangle (here with angles π/3,
// π/2, π/4) and, by the position of the bar, where in that triangle the first
// vertex of the polyhedron is put. The faces around that vertex are traced
// out and then copied over the whole sphere by the triangle's symmetry group.
//
//	p|q r   the seed is vertex P
//	p q|r   the seed is on side PQ, on the bisector of the angle at R
//	p q r|  the seed is the incenter
//	|p q r  the seed is the Fermat point, and only rotations are used
package wythoff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akhenakh/wythoff/rational"
	"github.com/akhenakh/wythoff/schwarz"
)

var (
	// ErrInvalidWythoffSymbol is returned for text that is not a Wythoff symbol.
	ErrInvalidWythoffSymbol = errors.New("wythoff: invalid Wythoff symbol")

	// ErrInvalidType is returned for a Type outside One, Two, Three and Snub.
	ErrInvalidType = errors.New("wythoff: invalid construction type")
)

// Type is the position of the bar in a Wythoff symbol.
type Type int

const (
	// One is p|q r.
	One Type = iota + 1
	// Two is p q|r.
	Two
	// Three is p q r|.
	Three
	// Snub is |p q r.
	Snub
)

func (t Type) String() string {
	switch t {
	case One:
		return "p|q r"
	case Two:
		return "p q|r"
	case Three:
		return "p q r|"
	case Snub:
		return "|p q r"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Symbol is a Wythoff symbol: a Schwarz triangle and a construction type.
type Symbol struct {
	triangle *schwarz.Triangle
	typ      Type
}

// New returns the symbol for triangle t and construction type typ.
func New(t *schwarz.Triangle, typ Type) (*Symbol, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: no Schwarz triangle", ErrInvalidWythoffSymbol)
	}
	if typ < One || typ > Snub {
		return nil, fmt.Errorf("%w: %d", ErrInvalidType, int(typ))
	}
	return &Symbol{triangle: t, typ: typ}, nil
}

// Parse reads a symbol in bar notation, e.g. "5|2 3", "3 4|2", "2 3 4|" or
// "|2 3 5". Parameters are integers or fractions like 5/2, separated by
// white space.
func Parse(s string) (*Symbol, error) {
	if strings.Count(s, "|") != 1 {
		return nil, fmt.Errorf("%w: %q needs exactly one bar", ErrInvalidWythoffSymbol, s)
	}
	before, after, _ := strings.Cut(s, "|")
	left, right := strings.Fields(before), strings.Fields(after)

	var typ Type
	switch {
	case len(left) == 1 && len(right) == 2:
		typ = One
	case len(left) == 2 && len(right) == 1:
		typ = Two
	case len(left) == 3 && len(right) == 0:
		typ = Three
	case len(left) == 0 && len(right) == 3:
		typ = Snub
	default:
		return nil, fmt.Errorf("%w: %q has %d parameters before the bar and %d after",
			ErrInvalidWythoffSymbol, s, len(left), len(right))
	}

	var params [3]rational.Rat
	for i, f := range append(left, right...) {
		r, err := rational.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidWythoffSymbol, s, err)
		}
		params[i] = r
	}
	t, err := schwarz.New(params[0], params[1], params[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidWythoffSymbol, s, err)
	}
	return &Symbol{triangle: t, typ: typ}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Symbol {
	sym, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sym
}

// Triangle returns the Schwarz triangle.
func (s *Symbol) Triangle() *schwarz.Triangle { return s.triangle }

// Type returns the construction type.
func (s *Symbol) Type() Type { return s.typ }

// String renders s in the bar notation Parse reads.
func (s *Symbol) String() string {
	p := s.triangle.Params()
	switch s.typ {
	case One:
		return fmt.Sprintf("%v|%v %v", p[0], p[1], p[2])
	case Two:
		return fmt.Sprintf("%v %v|%v", p[0], p[1], p[2])
	case Three:
		return fmt.Sprintf("%v %v %v|", p[0], p[1], p[2])
	case Snub:
		return fmt.Sprintf("|%v %v %v", p[0], p[1], p[2])
	}
	panic(fmt.Sprintf("wythoff: symbol with %v", s.typ))
}

// Equal reports whether s and o have the same triangle and type.
func (s *Symbol) Equal(o *Symbol) bool {
	return s.typ == o.typ && s.triangle.Equal(o.triangle)
}
