// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset_test

import (
	"fmt"

	"github.com/bpowers/sizedbit/bitset"
)

func Example() {
	b := bitset.FromUint8[bitset.Size8](0b00011101)
	fmt.Println(b)
	fmt.Println(b.RotateLeft(2))
	fmt.Printf("%#b\n", bitset.ToUint8(b.RotateLeft(2)))

	flags, err := bitset.Parse[bitset.Size4]("1100")
	if err != nil {
		panic(err)
	}
	fmt.Println(flags.IsSet(3), flags.IsSet(0), flags.Count())
	// Output:
	// 00011101
	// 01110100
	// 0b1110100
	// true false 2
}
