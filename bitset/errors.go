// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is matched by every *LengthMismatchError.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInvalidCharacter is matched by every *InvalidCharacterError.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrIndexOutOfRange is the value wrapped by the panic raised when a
	// cell index is outside [0, N).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// LengthMismatchError is returned when a sequence, string or foreign bitset
// doesn't have exactly N elements.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("bitset: length mismatch: want %d, got %d", e.Expected, e.Actual)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// InvalidCharacterError is returned by Parse for input containing anything
// other than '0' and '1'.  Offset is the byte offset of Char within Input.
type InvalidCharacterError struct {
	Input  string
	Offset int
	Char   rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("bitset: invalid character %q at offset %d in %q", e.Char, e.Offset, e.Input)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
