// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"lukechampine.com/uint128"
)

// ToUint8 returns the integer value of b.  It only accepts bitsets of at
// most 8 bits, so no bits are ever lost.
func ToUint8[S Fits8](b Bitset[S]) uint8 {
	return uint8(b.word(0))
}

func ToUint16[S Fits16](b Bitset[S]) uint16 {
	return uint16(b.word(0))
}

func ToUint32[S Fits32](b Bitset[S]) uint32 {
	return uint32(b.word(0))
}

func ToUint64[S Fits64](b Bitset[S]) uint64 {
	return b.word(0)
}

func ToUint128[S Fits128](b Bitset[S]) uint128.Uint128 {
	return uint128.New(b.word(0), b.word(64))
}

// FromUint8 stores v in the low 8 bits of a bitset of at least 8 bits; the
// remaining bits are cleared.
func FromUint8[S Holds8](v uint8) Bitset[S] {
	var b Bitset[S]
	b.loadWord(0, uint64(v), 8)
	return b
}

func FromUint16[S Holds16](v uint16) Bitset[S] {
	var b Bitset[S]
	b.loadWord(0, uint64(v), 16)
	return b
}

func FromUint32[S Holds32](v uint32) Bitset[S] {
	var b Bitset[S]
	b.loadWord(0, uint64(v), 32)
	return b
}

func FromUint64[S Holds64](v uint64) Bitset[S] {
	var b Bitset[S]
	b.loadWord(0, v, 64)
	return b
}

func FromUint128[S Holds128](v uint128.Uint128) Bitset[S] {
	var b Bitset[S]
	b.loadWord(0, v.Lo, 64)
	b.loadWord(64, v.Hi, 64)
	return b
}

// word packs cells [off, min(off+64, N)) into a uint64, cell off in bit 0.
func (b *Bitset[S]) word(off int) uint64 {
	var w uint64
	n := b.Len()
	for i := off; i < n && i < off+64; i++ {
		if b.bits[i] {
			w |= 1 << uint(i-off)
		}
	}
	return w
}

// loadWord copies the low width bits of w into cells [off, off+width).  The
// Holds constraints guarantee off+width <= N.
func (b *Bitset[S]) loadWord(off int, w uint64, width int) {
	for i := 0; i < width; i++ {
		b.bits[off+i] = (w>>uint(i))&1 == 1
	}
}
