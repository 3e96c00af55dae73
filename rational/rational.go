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

// Package rational implements exact fractions of machine integers.
//
// A Rat is always held in lowest terms with a positive denominator, so two
// Rats are equal exactly when their fields are equal and the type can be
// compared with == and used as a map key. The zero value is 0.
package rational

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrZeroDenominator is returned when a fraction would have a zero denominator.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrInvalidRational is returned when a string is not a well formed fraction.
	ErrInvalidRational = errors.New("rational: invalid rational")
)

// Rat is an exact fraction.
type Rat struct {
	num int64
	// dm is the denominator minus one, so that the zero value reads as 0/1.
	dm int64
}

var (
	Zero = Rat{}
	One  = Int(1)
	Two  = Int(2)
)

// New returns the fraction n/d reduced to lowest terms.
func New(n, d int64) (Rat, error) {
	if d == 0 {
		return Rat{}, fmt.Errorf("%w: %d/%d", ErrZeroDenominator, n, d)
	}
	return reduce(n, d), nil
}

// Int returns the integer n as a fraction.
func Int(n int64) Rat {
	return Rat{num: n}
}

// Must is like New but panics on a zero denominator. It is intended for
// constants and tests.
func Must(n, d int64) Rat {
	r, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse reads a fraction written as "n" or "n/d".
func Parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	ns, ds, hasDen := strings.Cut(s, "/")
	n, err := strconv.ParseInt(strings.TrimSpace(ns), 10, 64)
	if err != nil {
		return Rat{}, fmt.Errorf("%w: %q", ErrInvalidRational, s)
	}
	if !hasDen {
		return Int(n), nil
	}
	d, err := strconv.ParseInt(strings.TrimSpace(ds), 10, 64)
	if err != nil {
		return Rat{}, fmt.Errorf("%w: %q", ErrInvalidRational, s)
	}
	return New(n, d)
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduce assumes d != 0.
func reduce(n, d int64) Rat {
	if d < 0 {
		n, d = -n, -d
	}
	if g := gcd(n, d); g > 1 {
		n, d = n/g, d/g
	}
	return Rat{num: n, dm: d - 1}
}

// Num returns the numerator in lowest terms.
func (r Rat) Num() int64 { return r.num }

// Den returns the denominator in lowest terms; it is always positive.
func (r Rat) Den() int64 { return r.dm + 1 }

// Add returns r + o.
func (r Rat) Add(o Rat) Rat {
	return reduce(r.num*o.Den()+o.num*r.Den(), r.Den()*o.Den())
}

// Sub returns r - o.
func (r Rat) Sub(o Rat) Rat {
	return reduce(r.num*o.Den()-o.num*r.Den(), r.Den()*o.Den())
}

// Mul returns r * o.
func (r Rat) Mul(o Rat) Rat {
	return reduce(r.num*o.num, r.Den()*o.Den())
}

// Div returns r / o. It fails if o is zero.
func (r Rat) Div(o Rat) (Rat, error) {
	return New(r.num*o.Den(), r.Den()*o.num)
}

// Reciprocal returns 1/r. It fails if r is zero.
func (r Rat) Reciprocal() (Rat, error) {
	return New(r.Den(), r.num)
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{num: -r.num, dm: r.dm}
}

// Cmp returns -1, 0 or +1 depending on whether r is less than, equal to or
// greater than o.
func (r Rat) Cmp(o Rat) int {
	a, b := r.num*o.Den(), o.num*r.Den()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports whether r and o are the same fraction.
func (r Rat) Equal(o Rat) bool { return r.Cmp(o) == 0 }

// Less reports whether r < o.
func (r Rat) Less(o Rat) bool { return r.Cmp(o) < 0 }

// Greater reports whether r > o.
func (r Rat) Greater(o Rat) bool { return r.Cmp(o) > 0 }

// IsInt reports whether r has denominator 1.
func (r Rat) IsInt() bool { return r.Den() == 1 }

// Float64 returns the nearest float64 value of r.
func (r Rat) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String returns "n" for integers and "n/d" otherwise, the form Parse reads.
func (r Rat) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}
