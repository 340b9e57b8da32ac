// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package calc computes GCDs of decimal strings at a chosen unsigned width.
package calc

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/Dash-Industry-Forum/gcd/pkg/gcd"
)

// Width names an unsigned integer width.
type Width string

const (
	Width8       Width = "8"
	Width16      Width = "16"
	Width32      Width = "32"
	Width64      Width = "64"
	Width128     Width = "128"
	WidthUint    Width = "uint"
	WidthUintptr Width = "uintptr"
)

// Widths lists the supported widths.
var Widths = []Width{Width8, Width16, Width32, Width64, Width128, WidthUint, WidthUintptr}

// Algorithm names a GCD algorithm.
type Algorithm string

const (
	AlgDefault Algorithm = "default"
	AlgBinary  Algorithm = "binary"
	AlgEuclid  Algorithm = "euclid"
)

// Algorithms lists the supported algorithms.
var Algorithms = []Algorithm{AlgDefault, AlgBinary, AlgEuclid}

const uintptrBits = 32 << (^uintptr(0) >> 63)

var (
	ErrNoValues         = errors.New("no values")
	ErrUnknownWidth     = errors.New("unknown width")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrZeroValue        = errors.New("zero value not allowed in non-zero mode")
	ErrMismatch         = errors.New("binary and euclid results differ")
)

// ParseError reports a value that is not a valid number at the requested width.
type ParseError struct {
	Value string
	Width Width
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("value %q is not a valid %s-bit unsigned integer: %v", e.Value, e.Width, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Request describes one computation.
type Request struct {
	Width     Width     `json:"width"`
	Algorithm Algorithm `json:"algorithm"`
	// NonZero computes with the non-zero refinement and rejects zero values.
	NonZero bool `json:"nonzero"`
	// Verify runs both algorithms and fails with ErrMismatch if they differ.
	Verify bool     `json:"verify"`
	Values []string `json:"values"`
}

// Result is the outcome of Compute.
type Result struct {
	Width     Width     `json:"width"`
	Algorithm Algorithm `json:"algorithm"`
	NonZero   bool      `json:"nonzero,omitempty"`
	Values    []string  `json:"values"`
	GCD       string    `json:"gcd"`
	Verified  bool      `json:"verified,omitempty"`
}

// Compute folds the GCD over all values of req.
func Compute(req Request) (*Result, error) {
	if len(req.Values) == 0 {
		return nil, ErrNoValues
	}
	alg := req.Algorithm
	switch alg {
	case "":
		alg = AlgDefault
	case AlgDefault, AlgBinary, AlgEuclid:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	run := func(alg Algorithm) (string, error) {
		switch req.Width {
		case Width8:
			return compute[uint8](req, alg, 8)
		case Width16:
			return compute[uint16](req, alg, 16)
		case Width32:
			return compute[uint32](req, alg, 32)
		case Width64:
			return compute[uint64](req, alg, 64)
		case WidthUint:
			return compute[uint](req, alg, bits.UintSize)
		case WidthUintptr:
			return compute[uintptr](req, alg, uintptrBits)
		case Width128:
			return compute128(req, alg)
		default:
			return "", fmt.Errorf("%w: %q", ErrUnknownWidth, req.Width)
		}
	}
	g, err := run(alg)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Width:     req.Width,
		Algorithm: alg,
		NonZero:   req.NonZero,
		Values:    req.Values,
		GCD:       g,
	}
	if req.Verify {
		other := AlgEuclid
		if alg == AlgEuclid {
			other = AlgBinary
		}
		g2, err := run(other)
		if err != nil {
			return nil, err
		}
		if g2 != g {
			return nil, fmt.Errorf("%w: %s=%s, %s=%s", ErrMismatch, alg, g, other, g2)
		}
		res.Verified = true
	}
	return res, nil
}

func parse[T constraints.Unsigned](req Request, bitSize int) ([]T, error) {
	vals := make([]T, len(req.Values))
	for i, s := range req.Values {
		v, err := strconv.ParseUint(s, 10, bitSize)
		if err != nil {
			return nil, &ParseError{Value: s, Width: req.Width, Err: err}
		}
		if req.NonZero && v == 0 {
			return nil, fmt.Errorf("%w: value %d", ErrZeroValue, i)
		}
		vals[i] = T(v)
	}
	return vals, nil
}

func compute[T constraints.Unsigned](req Request, alg Algorithm, bitSize int) (string, error) {
	vals, err := parse[T](req, bitSize)
	if err != nil {
		return "", err
	}
	if req.NonZero {
		nzs := make([]gcd.NonZero[T], len(vals))
		for i, v := range vals {
			nzs[i] = gcd.MustNonZero(v)
		}
		return foldWith(nzs, alg).String(), nil
	}
	var fn func(a, b T) T
	switch alg {
	case AlgEuclid:
		fn = gcd.Euclid[T]
	case AlgBinary:
		fn = gcd.Binary[T]
	default:
		fn = gcd.Of[T]
	}
	g := vals[0]
	for _, v := range vals[1:] {
		g = fn(g, v)
	}
	return strconv.FormatUint(uint64(g), 10), nil
}

func compute128(req Request, alg Algorithm) (string, error) {
	vals := make([]gcd.U128, len(req.Values))
	for i, s := range req.Values {
		v, err := gcd.ParseU128(s)
		if err != nil {
			return "", &ParseError{Value: s, Width: req.Width, Err: errors.Unwrap(err)}
		}
		if req.NonZero && v.IsZero() {
			return "", fmt.Errorf("%w: value %d", ErrZeroValue, i)
		}
		vals[i] = v
	}
	if req.NonZero {
		nzs := make([]gcd.NonZero128, len(vals))
		for i, v := range vals {
			nzs[i], _ = gcd.NewNonZero128(v)
		}
		return foldWith(nzs, alg).String(), nil
	}
	return foldWith(vals, alg).String(), nil
}

// foldWith folds vals through the Gcd capability with the chosen algorithm.
func foldWith[T gcd.Gcd[T]](vals []T, alg Algorithm) T {
	g := vals[0]
	for _, v := range vals[1:] {
		switch alg {
		case AlgEuclid:
			g = g.GcdEuclid(v)
		case AlgBinary:
			g = g.GcdBinary(v)
		default:
			g = g.Gcd(v)
		}
	}
	return g
}
