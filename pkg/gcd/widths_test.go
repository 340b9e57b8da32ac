// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gcd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkCapability verifies the three operations agree through the interface.
func checkCapability[T Gcd[T]](t *testing.T, a, b, want T) {
	t.Helper()
	require.Equal(t, want, a.Gcd(b))
	require.Equal(t, want, a.GcdBinary(b))
	require.Equal(t, want, a.GcdEuclid(b))
	require.Equal(t, want, b.Gcd(a))
}

func TestCapabilityWidths(t *testing.T) {
	checkCapability(t, U8(255), U8(85), U8(85))
	checkCapability(t, U8(0), U8(0), U8(0))
	checkCapability(t, U16(10), U16(0), U16(10))
	checkCapability(t, U16(60000), U16(48000), U16(12000))
	checkCapability(t, U32(2024), U32(748), U32(44))
	checkCapability(t, U64(17), U64(13), U64(1))
	checkCapability(t, U64(90000*1001), U64(48000*1001), U64(6000*1001))
	checkCapability(t, Uint(10), Uint(20), Uint(10))
	checkCapability(t, Uintptr(4096), Uintptr(1536), Uintptr(512))
}

func TestFoldThroughInterface(t *testing.T) {
	require.Equal(t, U32(44), Fold(U32(2024), U32(748)))
	require.Equal(t, U32(7), Fold(U32(7)))
	require.Equal(t, U32(6), Fold(U32(12), U32(18), U32(30), U32(0)))
	require.Equal(t, U8(1), Fold(U8(6), U8(10), U8(15)))
	require.Equal(t, U128From64(4), Fold(U128From64(8), U128From64(12), U128From64(20)))
	nz := Fold(MustNonZero[uint16](12), MustNonZero[uint16](18))
	require.Equal(t, uint16(6), nz.Get())
}
