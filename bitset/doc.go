// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitset provides Bitset, a fixed-size set of N boolean flags whose
// size is part of its type: a Bitset[Size8] holds exactly 8 bits and only
// combines with other 8-bit sets.  Size1 through Size128 are the available
// sizes, and Bits8, Bits16, Bits32, Bits64 and Bits128 name the common ones.
//
// Index 0 is the least-significant bit.  String, BitString and Parse use the
// usual written order, most-significant bit first:
//
//	b := bitset.Of[bitset.Size4](false, false, true, true)
//	b.String() // "1100"
//
// Conversions to and from unsigned integers are only defined where they are
// lossless.  ToUint8 accepts bitsets of 1 to 8 bits; FromUint8 accepts
// bitsets of 8 or more bits and clears everything above bit 7.  Asking for
// anything else, such as ToUint8 on a Bitset[Size9], does not compile.
// The size types and the constraints that encode this live in
// sizes_gen.go.
//
// Out-of-range indices are programming errors and panic with an error
// wrapping ErrIndexOutOfRange.  Construction from slices and strings returns
// a *LengthMismatchError or *InvalidCharacterError instead.
package bitset

//go:generate go run ../cmd/gen-sizes --output sizes_gen.go --package bitset
