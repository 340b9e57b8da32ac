// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

/*
Package gcd computes the greatest common divisor of unsigned integers.

Two algorithms are provided. Binary (Stein's algorithm) only uses shifts,
comparisons and subtraction. Euclid uses repeated remainders and is kept as an
independent implementation to cross-check against. Of is the default and uses
the binary algorithm.

All widths share one generic implementation over constraints.Unsigned.
The named types U8, U16, U32, U64, Uint and Uintptr, as well as U128 and the
non-zero refinements NonZero and NonZero128, implement the Gcd capability
interface:

	gcd.U32(2024).Gcd(748)        // 44
	gcd.U8(255).GcdEuclid(85)     // 85
	gcd.MustNonZero[uint16](12).Gcd(gcd.MustNonZero[uint16](18)).Get() // 6

Every operation is total and pure. gcd(0, 0) is 0 and gcd(n, 0) is n.

Building with the gcddebug tag enables an internal self-check in the Euclidean
algorithm that panics if a result does not divide both inputs.
*/
package gcd
