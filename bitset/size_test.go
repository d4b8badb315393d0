// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bpowers/sizedbit/bitset"
)

// relabeled8 embeds Size8 and declares a conflicting Len, which the bitset
// never consults.
type relabeled8 struct{ bitset.Size8 }

func (relabeled8) Len() int { return 16 }

func TestEmbeddedSizeKeepsItsLength(t *testing.T) {
	var b bitset.Bitset[relabeled8]
	require.Equal(t, 8, b.Len())
	require.Len(t, b.Bools(), 8)

	b.Set(0)
	b.Set(7)
	require.Equal(t, "10000001", b.String())
	require.Equal(t, uint8(0x81), bitset.ToUint8(b))
	require.Equal(t, bitset.FromUint8[relabeled8](0x81), b)

	require.Panics(t, func() { b.Set(12) })
	require.Equal(t, b, b.RotateLeft(8))
}
