// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gcd

// U8 is uint8 with Gcd methods.
type U8 uint8

// U16 is uint16 with Gcd methods.
type U16 uint16

// U32 is uint32 with Gcd methods.
type U32 uint32

// U64 is uint64 with Gcd methods.
type U64 uint64

// Uint is uint with Gcd methods.
type Uint uint

// Uintptr is uintptr with Gcd methods.
type Uintptr uintptr

var (
	_ Gcd[U8]      = U8(0)
	_ Gcd[U16]     = U16(0)
	_ Gcd[U32]     = U32(0)
	_ Gcd[U64]     = U64(0)
	_ Gcd[Uint]    = Uint(0)
	_ Gcd[Uintptr] = Uintptr(0)
)

func (a U8) Gcd(b U8) U8       { return Of(a, b) }
func (a U8) GcdBinary(b U8) U8 { return Binary(a, b) }
func (a U8) GcdEuclid(b U8) U8 { return Euclid(a, b) }

func (a U16) Gcd(b U16) U16       { return Of(a, b) }
func (a U16) GcdBinary(b U16) U16 { return Binary(a, b) }
func (a U16) GcdEuclid(b U16) U16 { return Euclid(a, b) }

func (a U32) Gcd(b U32) U32       { return Of(a, b) }
func (a U32) GcdBinary(b U32) U32 { return Binary(a, b) }
func (a U32) GcdEuclid(b U32) U32 { return Euclid(a, b) }

func (a U64) Gcd(b U64) U64       { return Of(a, b) }
func (a U64) GcdBinary(b U64) U64 { return Binary(a, b) }
func (a U64) GcdEuclid(b U64) U64 { return Euclid(a, b) }

func (a Uint) Gcd(b Uint) Uint       { return Of(a, b) }
func (a Uint) GcdBinary(b Uint) Uint { return Binary(a, b) }
func (a Uint) GcdEuclid(b Uint) Uint { return Euclid(a, b) }

func (a Uintptr) Gcd(b Uintptr) Uintptr       { return Of(a, b) }
func (a Uintptr) GcdBinary(b Uintptr) Uintptr { return Binary(a, b) }
func (a Uintptr) GcdEuclid(b Uintptr) Uintptr { return Euclid(a, b) }
