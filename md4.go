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

import "encoding/binary"

// blockBits is the capacity of one compression block in bits.
const blockBits = BlockSize * 8

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// digest is the running state of one native MD4 computation: the four
// chaining words, the count of message bits absorbed so far and the flag
// set once the padding step has run.
type digest struct {
	state    [4]uint32
	bitCount uint64
	finished bool
}

func (d *digest) reset() {
	d.state[0] = init0
	d.state[1] = init1
	d.state[2] = init2
	d.state[3] = init3
	d.bitCount = 0
	d.finished = false
}

// update absorbs at most one block per call, counted in bits. Exactly 512
// bits compresses a full block and leaves the computation open. Any smaller
// count, zero included, is the terminal call: the block is padded with a 1
// bit after the last message bit, zero filled, and closed with the 64-bit
// little-endian message length at byte offset 56, spilling into a second
// block when the message bits reach past offset 55. A zero-bit call on an
// already finalised digest is a no-op, so closing twice is always safe.
func (d *digest) update(p []byte, bits uint64) error {
	if d.finished {
		if bits == 0 {
			return nil
		}
		return ErrDigestFinalised
	}
	if bits > blockBits {
		return ErrInvalidBitCount
	}
	d.bitCount += bits

	if bits == blockBits {
		compress(&d.state, p)
		return nil
	}

	var block [BlockSize]byte
	copy(block[:], p[:(bits+7)/8])

	// The padding bit sits just after the last message bit; the rest of
	// that byte is cleared. Counts that are not a byte multiple occupy
	// the high-order bits of their final byte.
	idx := bits >> 3
	mask := byte(0x80) >> (bits & 7)
	block[idx] = (block[idx] | mask) &^ (mask - 1)

	if idx <= BlockSize-9 {
		binary.LittleEndian.PutUint64(block[BlockSize-8:], d.bitCount)
		compress(&d.state, block[:])
	} else {
		compress(&d.state, block[:])
		var length [BlockSize]byte
		binary.LittleEndian.PutUint64(length[BlockSize-8:], d.bitCount)
		compress(&d.state, length[:])
	}
	d.finished = true
	return nil
}

// sum closes the digest if it is still open and serialises the chaining
// words least significant byte first.
func (d *digest) sum() [Size]byte {
	_ = d.update(nil, 0)
	var out [Size]byte
	for i, s := range d.state {
		binary.LittleEndian.PutUint32(out[i*4:], s)
	}
	return out
}
