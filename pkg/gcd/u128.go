// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gcd

import (
	"fmt"

	"lukechampine.com/uint128"
)

// U128 is a 128-bit unsigned integer with Gcd methods.
type U128 struct {
	uint128.Uint128
}

var (
	_ Gcd[U128]       = U128{}
	_ Gcd[NonZero128] = NonZero128{}
)

// NewU128 returns the value hi<<64 | lo.
func NewU128(lo, hi uint64) U128 {
	return U128{uint128.New(lo, hi)}
}

// U128From64 returns v as a U128.
func U128From64(v uint64) U128 {
	return U128{uint128.From64(v)}
}

// ParseU128 parses a base 10 string into a U128.
func ParseU128(s string) (U128, error) {
	u, err := uint128.FromString(s)
	if err != nil {
		return U128{}, fmt.Errorf("parse %q as 128-bit: %w", s, err)
	}
	return U128{u}, nil
}

func (a U128) Gcd(b U128) U128 {
	return a.GcdBinary(b)
}

func (a U128) GcdBinary(b U128) U128 {
	return U128{binary128(a.Uint128, b.Uint128)}
}

func (a U128) GcdEuclid(b U128) U128 {
	return U128{euclid128(a.Uint128, b.Uint128)}
}

// NonZero128 is a 128-bit value that is never zero.
type NonZero128 struct {
	n uint128.Uint128
}

// NewNonZero128 returns n as a NonZero128 and true, or false if n is zero.
func NewNonZero128(n U128) (NonZero128, bool) {
	if n.IsZero() {
		return NonZero128{}, false
	}
	return NonZero128{n: n.Uint128}, true
}

// MustNonZero128 is like NewNonZero128 but panics if n is zero.
func MustNonZero128(n U128) NonZero128 {
	nz, ok := NewNonZero128(n)
	if !ok {
		panic("gcd: MustNonZero128 called with zero")
	}
	return nz
}

// Get returns the underlying value.
func (a NonZero128) Get() U128 {
	return U128{a.n}
}

func (a NonZero128) String() string {
	return a.n.String()
}

func (a NonZero128) Gcd(b NonZero128) NonZero128 {
	return a.GcdBinary(b)
}

func (a NonZero128) GcdBinary(b NonZero128) NonZero128 {
	mustBeSet(a.n.IsZero() || b.n.IsZero(), a.n)
	return NonZero128{n: stein128(a.n, b.n)}
}

func (a NonZero128) GcdEuclid(b NonZero128) NonZero128 {
	mustBeSet(a.n.IsZero() || b.n.IsZero(), a.n)
	return NonZero128{n: euclid128(a.n, b.n)}
}

func binary128(u, v uint128.Uint128) uint128.Uint128 {
	if u.IsZero() {
		return v
	}
	if v.IsZero() {
		return u
	}
	return stein128(u, v)
}

func stein128(u, v uint128.Uint128) uint128.Uint128 {
	shift := uint(u.Or(v).TrailingZeros())
	u = u.Rsh(shift)
	v = v.Rsh(shift)
	u = u.Rsh(uint(u.TrailingZeros()))
	v = v.Rsh(uint(v.TrailingZeros()))
	for !u.Equals(v) {
		if u.Cmp(v) > 0 {
			u, v = v, u
		}
		v = v.Sub(u)
		v = v.Rsh(uint(v.TrailingZeros()))
	}
	return u.Lsh(shift)
}

func euclid128(a, b uint128.Uint128) uint128.Uint128 {
	hi, lo := a, b
	if b.Cmp(a) > 0 {
		hi, lo = b, a
	}
	for !lo.IsZero() {
		hi, lo = lo, hi.Mod(lo)
	}
	if debugChecks && !hi.IsZero() {
		if !a.Mod(hi).IsZero() || !b.Mod(hi).IsZero() {
			panic(fmt.Sprintf("gcd: internal error: %s does not divide both %s and %s", hi, a, b))
		}
	}
	return hi
}
