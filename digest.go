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

// Package md4 implements the MD4 message-digest algorithm (RFC 1320) behind
// a swappable backend contract. The native backend computes the digest from
// scratch; the xcrypto backend delegates to golang.org/x/crypto/md4. Both
// produce byte-identical digests for identical input, so which one a process
// uses is a deployment choice.
//
// MD4 is cryptographically broken. This package exists for compatibility
// with legacy challenge/response authentication protocols, not for security.
//
// A Hash must not be shared between goroutines without external locking.
package md4

import (
	"encoding/hex"
	"errors"
	"io"
)

// Size is the size of an MD4 digest in bytes.
const Size = 16

// BlockSize is the block size of MD4 in bytes.
const BlockSize = 64

var (
	ErrDigestFinalised = errors.New("digest job already finalised")
	ErrInvalidBitCount = errors.New("bit count exceeds a single block")
	ErrUnknownBackend  = errors.New("unknown backend")
)

// Hash is a digest job: created by a Backend, fed any number of times,
// finalised once and then released.
type Hash interface {
	io.Writer

	// Update feeds data into the digest. Feeding a finalised digest
	// returns ErrDigestFinalised, except that feeding nothing is always
	// a harmless no-op.
	Update(data []byte) error

	// Sum finalises the digest if it is still open and returns its 16
	// bytes. Calling Sum again returns the same bytes.
	Sum() ([]byte, error)

	// Reset returns the digest to its initial state so the job can be
	// reused for a new message.
	Reset() error

	// Close releases the job and wipes any buffered input. The job must
	// not be used afterwards.
	Close()
}

// MD4 computes the digest of data in one shot using the default backend.
func MD4(data []byte) (result [Size]byte, err error) {
	hash, err := New()
	if err != nil {
		return result, err
	}
	defer hash.Close()
	if err = hash.Update(data); err != nil {
		return result, err
	}
	resultBuffer, err := hash.Sum()
	if err != nil {
		return result, err
	}
	return *(*[Size]byte)(resultBuffer), err
}

// HexString renders a digest sum in its conventional printable form, 32
// lowercase hex digits with the high-order digit of each byte first.
func HexString(sum []byte) string {
	return hex.EncodeToString(sum)
}
