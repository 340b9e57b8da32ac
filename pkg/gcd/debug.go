// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gcd

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// assertDivides panics if a nonzero g does not divide both a and b.
// A failure is a bug in this package, never a caller error.
func assertDivides[T constraints.Unsigned](a, b, g T) {
	if g == 0 {
		return
	}
	if a%g != 0 || b%g != 0 {
		panic(fmt.Sprintf("gcd: internal error: %d does not divide both %d and %d", g, a, b))
	}
}
