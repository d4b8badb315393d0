// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"testing"

	bitsandblooms "github.com/bits-and-blooms/bitset"
	fuzz "github.com/google/gofuzz"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/require"
)

func TestBitSetRoundTrip(t *testing.T) {
	f := fuzz.NewWithSeed(0)
	for i := 0; i < 500; i++ {
		var cells [70]bool
		f.Fuzz(&cells)
		b := Of[Size70](cells[:]...)

		bs := b.ToBitSet()
		require.Equal(t, uint(70), bs.Len())
		require.Equal(t, uint(b.Count()), bs.Count())
		for j := 0; j < 70; j++ {
			require.Equal(t, b.IsSet(j), bs.Test(uint(j)))
		}

		back, err := FromBitSet[Size70](bs)
		require.NoError(t, err)
		require.Equal(t, b, back)
	}
}

func TestFromBitSetLength(t *testing.T) {
	bs := bitsandblooms.New(6)
	bs.Set(1).Set(5)
	b, err := FromBitSet[Size6](bs)
	require.NoError(t, err)
	require.Equal(t, "100010", b.String())

	_, err = FromBitSet[Size8](bs)
	require.ErrorIs(t, err, ErrLengthMismatch)

	// setting past the end grows a bits-and-blooms set
	bs.Set(6)
	_, err = FromBitSet[Size6](bs)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFromBitSetIgnoresBitsPastLen(t *testing.T) {
	bs := bitsandblooms.FromWithLength(5, []uint64{0xff})
	require.Equal(t, uint(5), bs.Len())

	b, err := FromBitSet[Size5](bs)
	require.NoError(t, err)
	require.Equal(t, "11111", b.String())
	require.Equal(t, Of[Size5](true, true, true, true, true), b)
	require.Equal(t, Of[Size5](true, true, true, true, true).Hash(), b.Hash())
	for i := 5; i < MaxLen; i++ {
		require.False(t, b.bits[i], "cell %d", i)
	}
}

func TestBitfieldRoundTrip(t *testing.T) {
	f := fuzz.NewWithSeed(0)
	for i := 0; i < 200; i++ {
		var v uint64
		f.Fuzz(&v)
		b := FromUint64[Size64](v)

		bl := bitfield.NewBitlist(64)
		require.NoError(t, b.CopyTo(bl))
		require.Equal(t, uint64(b.Count()), bl.Count())
		for j := 0; j < 64; j++ {
			require.Equal(t, b.IsSet(j), bl.BitAt(uint64(j)))
		}

		back, err := FromBitfield[Size64](bl)
		require.NoError(t, err)
		require.Equal(t, v, ToUint64(back))
	}
}

func TestBitfieldLength(t *testing.T) {
	bl := bitfield.NewBitlist(10)
	bl.SetBitAt(3, true)

	_, err := FromBitfield[Size9](bl)
	require.ErrorIs(t, err, ErrLengthMismatch)

	b := FromUint8[Size8](0xff)
	require.ErrorIs(t, b.CopyTo(bl), ErrLengthMismatch)
	// nothing was written
	require.Equal(t, uint64(1), bl.Count())
	require.True(t, bl.BitAt(3))

	ten, err := FromBitfield[Size10](bl)
	require.NoError(t, err)
	require.Equal(t, []int{3}, ten.Ones())
}
