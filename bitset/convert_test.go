// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestIntegerRoundTrip(t *testing.T) {
	f := fuzz.NewWithSeed(0)
	for i := 0; i < 1000; i++ {
		var v8 uint8
		var v16 uint16
		var v32 uint32
		var v64, lo, hi uint64
		f.Fuzz(&v8)
		f.Fuzz(&v16)
		f.Fuzz(&v32)
		f.Fuzz(&v64)
		f.Fuzz(&lo)
		f.Fuzz(&hi)
		v128 := uint128.New(lo, hi)

		require.Equal(t, v8, ToUint8(FromUint8[Size8](v8)))
		require.Equal(t, v16, ToUint16(FromUint16[Size16](v16)))
		require.Equal(t, v32, ToUint32(FromUint32[Size32](v32)))
		require.Equal(t, v64, ToUint64(FromUint64[Size64](v64)))
		require.Equal(t, v128, ToUint128(FromUint128[Size128](v128)))
	}

	for _, v := range []uint64{0, 1, 1 << 63, ^uint64(0)} {
		require.Equal(t, v, ToUint64(FromUint64[Size64](v)))
	}
	require.Equal(t, uint128.New(^uint64(0), ^uint64(0)), ToUint128(FromUint128[Size128](uint128.New(^uint64(0), ^uint64(0)))))
}

func TestToUintAllWidths(t *testing.T) {
	b := Of[Size5](true, false, true, false, true)
	require.Equal(t, uint8(21), ToUint8(b))
	require.Equal(t, uint16(21), ToUint16(b))
	require.Equal(t, uint32(21), ToUint32(b))
	require.Equal(t, uint64(21), ToUint64(b))
	require.Equal(t, uint128.New(21, 0), ToUint128(b))

	var full Bitset[Size100]
	full.SetAll()
	require.Equal(t, uint128.New(^uint64(0), 1<<36-1), ToUint128(full))

	var top Bits128
	top.Set(127)
	require.Equal(t, uint128.New(0, 1<<63), ToUint128(top))
	top.Set(64)
	top.Set(63)
	require.Equal(t, uint128.New(1<<63, 1<<63|1), ToUint128(top))
}

func TestFromUintClearsHighBits(t *testing.T) {
	b := FromUint8[Size12](0xff)
	require.Equal(t, "000011111111", b.String())
	require.Equal(t, uint16(0xff), ToUint16(b))

	b100 := FromUint64[Size100](^uint64(0))
	require.Equal(t, 64, b100.Count())
	for i := 64; i < 100; i++ {
		require.False(t, b100.IsSet(i))
	}

	b128 := FromUint8[Size128](0b10000001)
	require.Equal(t, []int{0, 7}, b128.Ones())
	require.Equal(t, uint128.New(0b10000001, 0), ToUint128(b128))

	b32 := FromUint16[Size32](0xbeef)
	require.Equal(t, uint32(0xbeef), ToUint32(b32))
}

func TestConversionsAgreeWithString(t *testing.T) {
	f := fuzz.NewWithSeed(0)
	for i := 0; i < 500; i++ {
		var v uint32
		f.Fuzz(&v)
		b := FromUint32[Size32](v)
		parsed, err := Parse[Size32](b.String())
		require.NoError(t, err)
		require.Equal(t, v, ToUint32(parsed))
		require.Equal(t, uint64(v), ToUint64(b))
	}
}
