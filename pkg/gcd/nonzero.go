// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gcd

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NonZero is an unsigned value that is never zero.
//
// The zero value of NonZero is not valid. Use NewNonZero or MustNonZero.
// The GCD of two nonzero values is at least 1, so the operations return NonZero as well.
type NonZero[T constraints.Unsigned] struct {
	n T
}

var _ Gcd[NonZero[uint8]] = NonZero[uint8]{}

// NewNonZero returns n as a NonZero and true, or false if n is zero.
func NewNonZero[T constraints.Unsigned](n T) (NonZero[T], bool) {
	if n == 0 {
		return NonZero[T]{}, false
	}
	return NonZero[T]{n: n}, true
}

// MustNonZero is like NewNonZero but panics if n is zero.
func MustNonZero[T constraints.Unsigned](n T) NonZero[T] {
	nz, ok := NewNonZero(n)
	if !ok {
		panic(fmt.Sprintf("gcd: MustNonZero called with zero %T", n))
	}
	return nz
}

// Get returns the underlying value.
func (a NonZero[T]) Get() T {
	return a.n
}

func (a NonZero[T]) String() string {
	return fmt.Sprintf("%d", a.n)
}

func (a NonZero[T]) Gcd(b NonZero[T]) NonZero[T] {
	return a.GcdBinary(b)
}

// GcdBinary enters the binary algorithm directly since neither operand can be zero.
// It panics if either operand is the zero value of NonZero.
func (a NonZero[T]) GcdBinary(b NonZero[T]) NonZero[T] {
	mustBeSet(a.n == 0 || b.n == 0, a.n)
	return NonZero[T]{n: stein(a.n, b.n)}
}

func (a NonZero[T]) GcdEuclid(b NonZero[T]) NonZero[T] {
	mustBeSet(a.n == 0 || b.n == 0, a.n)
	return NonZero[T]{n: Euclid(a.n, b.n)}
}

// mustBeSet panics on an uninitialized refinement. The binary loop never
// terminates on a zero operand.
func mustBeSet(zero bool, typ any) {
	if zero {
		panic(fmt.Sprintf("gcd: uninitialized NonZero value (%T)", typ))
	}
}
