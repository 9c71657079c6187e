// Copyright (C) 2017. See AUTHORS.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package md4

import (
	"encoding/binary"
	"math/bits"
)

// Round constants, the square roots of 2 and 3 in 32-bit fixed point.
const (
	k2 = 0x5a827999
	k3 = 0x6ed9eba1
)

// Per-round shift amounts and the message word schedules for rounds 2 and 3,
// as laid out in RFC 1320. Round 1 consumes the words in order.
var (
	shift1 = [4]int{3, 7, 11, 19}
	shift2 = [4]int{3, 5, 9, 13}
	shift3 = [4]int{3, 9, 11, 15}

	order2 = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
	order3 = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}
)

// compress folds exactly one 64-byte block into state. Block bytes are
// assembled into words least significant byte first; all additions wrap
// modulo 2^32.
func compress(state *[4]uint32, block []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d := state[0], state[1], state[2], state[3]

	// Round 1: F(X,Y,Z) = (X AND Y) OR (NOT X AND Z).
	for i := 0; i < 16; i++ {
		f := (b & c) | (^b & d)
		a = bits.RotateLeft32(a+f+x[i], shift1[i%4])
		a, b, c, d = d, a, b, c
	}

	// Round 2: G(X,Y,Z), the majority of X, Y and Z.
	for i := 0; i < 16; i++ {
		g := (b & c) | (b & d) | (c & d)
		a = bits.RotateLeft32(a+g+x[order2[i]]+k2, shift2[i%4])
		a, b, c, d = d, a, b, c
	}

	// Round 3: H(X,Y,Z) = X XOR Y XOR Z.
	for i := 0; i < 16; i++ {
		h := b ^ c ^ d
		a = bits.RotateLeft32(a+h+x[order3[i]]+k3, shift3[i%4])
		a, b, c, d = d, a, b, c
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
}
