// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gcd

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Fold returns the greatest common divisor of all values using their Gcd method.
func Fold[T Gcd[T]](first T, rest ...T) T {
	g := first
	for _, v := range rest {
		g = g.Gcd(v)
	}
	return g
}

// Lcm returns the least common multiple of a and b.
// ok is false if the result does not fit in T. Lcm(0, b) and Lcm(a, 0) are 0.
func Lcm[T constraints.Unsigned](a, b T) (lcm T, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	q := a / Of(a, b)
	hi, lo := bits.Mul64(uint64(q), uint64(b))
	if hi != 0 || lo > uint64(^T(0)) {
		return 0, false
	}
	return T(lo), true
}

// Reduce divides num and den by their greatest common divisor.
// (0, 0) is returned unchanged.
func Reduce[T constraints.Unsigned](num, den T) (T, T) {
	g := Of(num, den)
	if g == 0 {
		return num, den
	}
	return num / g, den / g
}
