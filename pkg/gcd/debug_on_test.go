// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gcddebug

package gcd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugChecksEnabled(t *testing.T) {
	require.True(t, debugChecks, "gcddebug build must enable the euclid self-check")
	require.NotPanics(t, func() {
		for a := 0; a <= math.MaxUint8; a++ {
			for b := 0; b <= math.MaxUint8; b++ {
				Euclid(uint8(a), uint8(b))
			}
		}
		euclid128(NewU128(0, 6).Uint128, NewU128(0, 4).Uint128)
	})
}
