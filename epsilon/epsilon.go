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

// Package epsilon holds the tolerant floating point comparisons shared by the
// spherical kernel. A single absolute tolerance decides every "is this
// degenerate" question in the module.
package epsilon

import "math"

// Epsilon is the absolute tolerance applied to coordinates, dot products and
// derived trigonometric values.
const Epsilon = 1e-10

// Zero reports whether x is within Epsilon of zero.
func Zero(x float64) bool {
	return math.Abs(x) <= Epsilon
}

// Equal reports whether a and b are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Compare returns 0 if a and b are Equal, otherwise -1 or +1 as a < b or a > b.
func Compare(a, b float64) int {
	switch {
	case Equal(a, b):
		return 0
	case a < b:
		return -1
	}
	return 1
}

// Less reports whether a is smaller than b by more than Epsilon.
func Less(a, b float64) bool { return Compare(a, b) < 0 }

// LessOrEqual reports whether a is smaller than or Equal to b.
func LessOrEqual(a, b float64) bool { return Compare(a, b) <= 0 }

// Greater reports whether a is larger than b by more than Epsilon.
func Greater(a, b float64) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports whether a is larger than or Equal to b.
func GreaterOrEqual(a, b float64) bool { return Compare(a, b) >= 0 }

// Sign returns -1, 0 or +1, treating values within Epsilon of zero as zero.
func Sign(x float64) int {
	return Compare(x, 0)
}

// Clamp limits x to [lo, hi]. It is used to absorb rounding before calling
// functions such as math.Acos whose domain is closed.
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
