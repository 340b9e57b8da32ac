// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gcd

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Gcd is the capability shared by all supported unsigned types.
type Gcd[T any] interface {
	// Gcd returns the greatest common divisor using GcdBinary.
	Gcd(other T) T
	// GcdBinary uses the binary (Stein's) algorithm.
	GcdBinary(other T) T
	// GcdEuclid uses the Euclidean algorithm.
	GcdEuclid(other T) T
}

// Of returns the greatest common divisor of a and b using Binary.
func Of[T constraints.Unsigned](a, b T) T {
	return Binary(a, b)
}

// Binary returns the greatest common divisor of u and v using the binary GCD algorithm.
//
// Only shifts, comparisons and subtractions are used.
func Binary[T constraints.Unsigned](u, v T) T {
	if u == 0 {
		return v
	}
	if v == 0 {
		return u
	}
	return stein(u, v)
}

// stein runs the binary algorithm on two nonzero values.
func stein[T constraints.Unsigned](u, v T) T {
	shift := trailingZeros(u | v)
	u >>= shift
	v >>= shift
	u >>= trailingZeros(u)
	v >>= trailingZeros(v)
	for u != v {
		if u > v {
			u, v = v, u
		}
		v -= u // both odd, so v is now even and nonzero
		v >>= trailingZeros(v)
	}
	return u << shift
}

// Euclid returns the greatest common divisor of a and b using the Euclidean algorithm.
func Euclid[T constraints.Unsigned](a, b T) T {
	hi, lo := a, b
	if b > a {
		hi, lo = b, a
	}
	for lo != 0 {
		hi, lo = lo, hi%lo
	}
	if debugChecks {
		assertDivides(a, b, hi)
	}
	return hi
}

// trailingZeros counts trailing zero bits of a nonzero x.
// Widening to 64 bits keeps the count for every narrower width.
func trailingZeros[T constraints.Unsigned](x T) uint {
	return uint(bits.TrailingZeros64(uint64(x)))
}
