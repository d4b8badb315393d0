// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	bitsandblooms "github.com/bits-and-blooms/bitset"
	"github.com/prysmaticlabs/go-bitfield"
)

// ToBitSet copies b into a word-packed bits-and-blooms BitSet of length N.
func (b Bitset[S]) ToBitSet() *bitsandblooms.BitSet {
	n := b.Len()
	bs := bitsandblooms.New(uint(n))
	for i := 0; i < n; i++ {
		if b.bits[i] {
			bs.Set(uint(i))
		}
	}
	return bs
}

// FromBitSet copies a bits-and-blooms BitSet whose Len is exactly N.  Bits
// the BitSet stores past its Len are ignored.
func FromBitSet[S Size](bs *bitsandblooms.BitSet) (Bitset[S], error) {
	var b Bitset[S]
	n := b.Len()
	if bs.Len() != uint(n) {
		return Bitset[S]{}, &LengthMismatchError{Expected: n, Actual: int(bs.Len())}
	}
	for i, ok := bs.NextSet(0); ok && i < uint(n); i, ok = bs.NextSet(i + 1) {
		b.bits[i] = true
	}
	return b, nil
}

// FromBitfield copies a go-bitfield Bitvector or Bitlist whose Len is exactly N.
func FromBitfield[S Size](bf bitfield.Bitfield) (Bitset[S], error) {
	var b Bitset[S]
	n := b.Len()
	if bf.Len() != uint64(n) {
		return Bitset[S]{}, &LengthMismatchError{Expected: n, Actual: int(bf.Len())}
	}
	for i := 0; i < n; i++ {
		b.bits[i] = bf.BitAt(uint64(i))
	}
	return b, nil
}

// CopyTo writes every cell of b into bf, which must have length N.  Nothing
// is written when the lengths differ.
func (b Bitset[S]) CopyTo(bf bitfield.Bitfield) error {
	n := b.Len()
	if bf.Len() != uint64(n) {
		return &LengthMismatchError{Expected: n, Actual: int(bf.Len())}
	}
	for i := 0; i < n; i++ {
		bf.SetBitAt(uint64(i), b.bits[i])
	}
	return nil
}
