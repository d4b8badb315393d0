// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"fmt"
	"strings"

	"github.com/dgryski/go-farm"
)

// Bitset is a fixed-size set of N flags, where S is SizeN.  It is a plain
// value: assignment copies it, == compares it, and the zero value has every
// bit cleared.  Index 0 is the least-significant bit.
type Bitset[S Size] struct {
	// cells at index >= N are always false
	bits [MaxLen]bool
}

// New returns a Bitset with every bit cleared.
func New[S Size]() Bitset[S] {
	return Bitset[S]{}
}

func sizeOf[S Size]() int {
	var s S
	return s.n()
}

// Of returns a Bitset holding exactly the given cells, cell 0 first.  It is
// meant for literals: it panics with an error wrapping ErrLengthMismatch
// unless len(cells) is N.
func Of[S Size](cells ...bool) Bitset[S] {
	b, err := FromSlice[S](cells)
	if err != nil {
		panic(err)
	}
	return b
}

// FromSlice builds a Bitset from a slice that must have exactly N elements.
func FromSlice[S Size, T ~bool](values []T) (Bitset[S], error) {
	return FromSliceFunc[S](values, func(v T) bool { return bool(v) })
}

// FromSliceFunc builds a Bitset from a slice of exactly N elements, using
// toBool to convert each element.
func FromSliceFunc[S Size, T any](values []T, toBool func(T) bool) (Bitset[S], error) {
	n := sizeOf[S]()
	if len(values) != n {
		return Bitset[S]{}, &LengthMismatchError{Expected: n, Actual: len(values)}
	}
	var b Bitset[S]
	for i, v := range values {
		b.bits[i] = toBool(v)
	}
	return b, nil
}

// Parse reads a string of '0' and '1' characters, most-significant bit first.
// Characters are validated before the length, so "12" fails with an
// InvalidCharacterError regardless of N.
func Parse[S Size](s string) (Bitset[S], error) {
	for off, c := range s {
		if c != '0' && c != '1' {
			return Bitset[S]{}, &InvalidCharacterError{Input: s, Offset: off, Char: c}
		}
	}
	n := sizeOf[S]()
	// s is ASCII at this point, so its byte length is its character count
	if len(s) != n {
		return Bitset[S]{}, &LengthMismatchError{Expected: n, Actual: len(s)}
	}
	var b Bitset[S]
	for i := 0; i < n; i++ {
		b.bits[n-1-i] = s[i] == '1'
	}
	return b, nil
}

// Len returns N.
func (b Bitset[S]) Len() int {
	return sizeOf[S]()
}

// cells returns the N live cells of b.
func (b *Bitset[S]) cells() []bool {
	return b.bits[:b.Len()]
}

func (b *Bitset[S]) checkIndex(i int) {
	if n := b.Len(); i < 0 || i >= n {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n))
	}
}

// IsSet returns true if the bit at position i is 1.  It panics if i is out of range.
func (b Bitset[S]) IsSet(i int) bool {
	b.checkIndex(i)
	return b.bits[i]
}

// SetTo sets the bit at position i to v.
func (b *Bitset[S]) SetTo(i int, v bool) {
	b.checkIndex(i)
	b.bits[i] = v
}

// Set sets the bit at position i to 1.
func (b *Bitset[S]) Set(i int) {
	b.SetTo(i, true)
}

// Reset sets the bit at position i to 0.
func (b *Bitset[S]) Reset(i int) {
	b.SetTo(i, false)
}

func (b *Bitset[S]) SetAll() {
	cells := b.cells()
	for i := range cells {
		cells[i] = true
	}
}

func (b *Bitset[S]) ResetAll() {
	b.bits = [MaxLen]bool{}
}

// Bools returns a copy of the N cells, cell 0 first.
func (b Bitset[S]) Bools() []bool {
	out := make([]bool, b.Len())
	copy(out, b.bits[:])
	return out
}

// Ones returns the indices of the set bits in ascending order.
func (b Bitset[S]) Ones() []int {
	var ones []int
	for i, v := range b.cells() {
		if v {
			ones = append(ones, i)
		}
	}
	return ones
}

func (b Bitset[S]) All() bool {
	for _, v := range b.cells() {
		if !v {
			return false
		}
	}
	return true
}

func (b Bitset[S]) Any() bool {
	for _, v := range b.cells() {
		if v {
			return true
		}
	}
	return false
}

func (b Bitset[S]) None() bool {
	return !b.Any()
}

// Count returns the number of set bits.
func (b Bitset[S]) Count() int {
	n := 0
	for _, v := range b.cells() {
		if v {
			n++
		}
	}
	return n
}

// Flip complements every bit in place.
func (b *Bitset[S]) Flip() {
	cells := b.cells()
	for i := range cells {
		cells[i] = !cells[i]
	}
}

// Flipped returns the complement of b.
func (b Bitset[S]) Flipped() Bitset[S] {
	b.Flip()
	return b
}

func (b Bitset[S]) And(o Bitset[S]) Bitset[S] {
	b.AndAssign(o)
	return b
}

func (b Bitset[S]) Or(o Bitset[S]) Bitset[S] {
	b.OrAssign(o)
	return b
}

func (b Bitset[S]) Xor(o Bitset[S]) Bitset[S] {
	b.XorAssign(o)
	return b
}

func (b *Bitset[S]) AndAssign(o Bitset[S]) {
	cells := b.cells()
	for i := range cells {
		cells[i] = cells[i] && o.bits[i]
	}
}

func (b *Bitset[S]) OrAssign(o Bitset[S]) {
	cells := b.cells()
	for i := range cells {
		cells[i] = cells[i] || o.bits[i]
	}
}

func (b *Bitset[S]) XorAssign(o Bitset[S]) {
	cells := b.cells()
	for i := range cells {
		cells[i] = cells[i] != o.bits[i]
	}
}

// ShiftLeft moves every bit s positions toward the most-significant end, the
// same as multiplying the integer value by 2^s.  Bits shifted past N-1 are
// dropped and vacated positions are cleared; s >= N clears everything.
func (b Bitset[S]) ShiftLeft(s uint) Bitset[S] {
	b.ShiftLeftAssign(s)
	return b
}

// ShiftRight is the inverse direction of ShiftLeft.
func (b Bitset[S]) ShiftRight(s uint) Bitset[S] {
	b.ShiftRightAssign(s)
	return b
}

func (b *Bitset[S]) ShiftLeftAssign(s uint) {
	cells := b.cells()
	if s >= uint(len(cells)) {
		b.ResetAll()
		return
	}
	k := int(s)
	copy(cells[k:], cells)
	for i := 0; i < k; i++ {
		cells[i] = false
	}
}

func (b *Bitset[S]) ShiftRightAssign(s uint) {
	cells := b.cells()
	n := len(cells)
	if s >= uint(n) {
		b.ResetAll()
		return
	}
	k := int(s)
	copy(cells, cells[k:])
	for i := n - k; i < n; i++ {
		cells[i] = false
	}
}

// RotateLeft returns b circularly shifted toward the most-significant end by
// s positions, matching math/bits.RotateLeft for the integer value of b.
func (b Bitset[S]) RotateLeft(s uint) Bitset[S] {
	n := uint(b.Len())
	r := s % n
	if r == 0 {
		return b
	}
	return b.ShiftLeft(r).Or(b.ShiftRight(n - r))
}

// RotateRight returns b circularly shifted toward the least-significant end.
func (b Bitset[S]) RotateRight(s uint) Bitset[S] {
	n := uint(b.Len())
	r := s % n
	if r == 0 {
		return b
	}
	return b.ShiftRight(r).Or(b.ShiftLeft(n - r))
}

// BitString renders b most-significant bit first, writing one for set bits
// and zero for cleared ones.
func (b Bitset[S]) BitString(one, zero rune) string {
	var sb strings.Builder
	cells := b.cells()
	sb.Grow(len(cells))
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i] {
			sb.WriteRune(one)
		} else {
			sb.WriteRune(zero)
		}
	}
	return sb.String()
}

func (b Bitset[S]) String() string {
	return b.BitString('1', '0')
}

func (b Bitset[S]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses text as Parse does.  b is left unchanged on error.
func (b *Bitset[S]) UnmarshalText(text []byte) error {
	parsed, err := Parse[S](string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Equal is the same as ==, for callers holding a Bitset behind an interface.
func (b Bitset[S]) Equal(o Bitset[S]) bool {
	return b.bits == o.bits
}

// Hash returns a structural hash of b: equal bitsets hash equally.
func (b Bitset[S]) Hash() uint64 {
	return farm.Hash64WithSeed(b.packed(), uint64(b.Len()))
}

// packed returns the cells 8 to a byte, cell 0 in the low bit of byte 0.
func (b Bitset[S]) packed() []byte {
	cells := b.cells()
	buf := make([]byte, (len(cells)+7)/8)
	for i, v := range cells {
		if v {
			buf[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return buf
}
