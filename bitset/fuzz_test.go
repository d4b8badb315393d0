// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"errors"
	"math/bits"
	"strings"
	"testing"
)

// FuzzParse checks that Parse either round-trips through String or fails
// with one of its two documented errors.
func FuzzParse(f *testing.F) {
	f.Add("0000000000000000")
	f.Add("1010101010101010")
	f.Add("101")
	f.Add("12")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		b, err := Parse[Size16](s)
		if err != nil {
			if !errors.Is(err, ErrInvalidCharacter) && !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("Parse(%q): unexpected error %v", s, err)
			}
			if strings.Trim(s, "01") == "" && len(s) == 16 {
				t.Fatalf("Parse(%q) rejected a valid input: %v", s, err)
			}
			return
		}
		if got := b.String(); got != s {
			t.Fatalf("String() = %q; want %q", got, s)
		}
		if b.Count() != strings.Count(s, "1") {
			t.Fatalf("Count() = %d for %q", b.Count(), s)
		}
	})
}

// FuzzUint64 compares bitset operations against the same operations on
// the integer value.
func FuzzUint64(f *testing.F) {
	f.Add(uint64(0), uint64(0), uint(0))
	f.Add(uint64(0xdeadbeef), ^uint64(0), uint(3))
	f.Add(uint64(1)<<63, uint64(1), uint(64))
	f.Add(^uint64(0), uint64(0xf0f0f0f0f0f0f0f0), uint(17))
	f.Add(uint64(0x8000000000000001), uint64(0x0123456789abcdef), uint(63))

	f.Fuzz(func(t *testing.T, lhs, rhs uint64, s uint) {
		l := FromUint64[Size64](lhs)
		r := FromUint64[Size64](rhs)

		if got := ToUint64(l); got != lhs {
			t.Fatalf("round trip: got %#x; want %#x", got, lhs)
		}
		if got := ToUint64(l.And(r)); got != lhs&rhs {
			t.Fatalf("and: got %#x; want %#x", got, lhs&rhs)
		}
		if got := ToUint64(l.Or(r)); got != lhs|rhs {
			t.Fatalf("or: got %#x; want %#x", got, lhs|rhs)
		}
		if got := ToUint64(l.Xor(r)); got != lhs^rhs {
			t.Fatalf("xor: got %#x; want %#x", got, lhs^rhs)
		}
		if got := ToUint64(l.ShiftLeft(s)); got != lhs<<s {
			t.Fatalf("shl %d: got %#x; want %#x", s, got, lhs<<s)
		}
		if got := ToUint64(l.ShiftRight(s)); got != lhs>>s {
			t.Fatalf("shr %d: got %#x; want %#x", s, got, lhs>>s)
		}
		k := int(s % 64)
		if got := ToUint64(l.RotateLeft(s)); got != bits.RotateLeft64(lhs, k) {
			t.Fatalf("rotl %d: got %#x; want %#x", s, got, bits.RotateLeft64(lhs, k))
		}
		if got := ToUint64(l.RotateRight(s)); got != bits.RotateLeft64(lhs, -k) {
			t.Fatalf("rotr %d: got %#x; want %#x", s, got, bits.RotateLeft64(lhs, -k))
		}

		c := l
		c.AndAssign(r)
		if got := ToUint64(c); got != lhs&rhs {
			t.Fatalf("and assign: got %#x; want %#x", got, lhs&rhs)
		}
		c = l
		c.OrAssign(r)
		if got := ToUint64(c); got != lhs|rhs {
			t.Fatalf("or assign: got %#x; want %#x", got, lhs|rhs)
		}
		c = l
		c.XorAssign(r)
		if got := ToUint64(c); got != lhs^rhs {
			t.Fatalf("xor assign: got %#x; want %#x", got, lhs^rhs)
		}
		c = l
		c.ShiftLeftAssign(s)
		if got := ToUint64(c); got != lhs<<s {
			t.Fatalf("shl assign %d: got %#x; want %#x", s, got, lhs<<s)
		}
		c = l
		c.ShiftRightAssign(s)
		if got := ToUint64(c); got != lhs>>s {
			t.Fatalf("shr assign %d: got %#x; want %#x", s, got, lhs>>s)
		}
		if got := ToUint64(l); got != lhs {
			t.Fatalf("operand changed: got %#x; want %#x", got, lhs)
		}

		if l.Count() != bits.OnesCount64(lhs) {
			t.Fatalf("count: got %d; want %d", l.Count(), bits.OnesCount64(lhs))
		}
	})
}
