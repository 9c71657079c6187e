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
	"hash"

	xmd4 "golang.org/x/crypto/md4"
)

// CryptoHash is a digest job that delegates to golang.org/x/crypto/md4.
// The library keeps no notion of a finalised computation, so the flag lives
// here to make misuse behave exactly as it does on the native backend.
type CryptoHash struct {
	h        hash.Hash
	finished bool
}

var _ Hash = (*CryptoHash)(nil)

// NewCryptoHash creates a new digest job backed by golang.org/x/crypto/md4.
func NewCryptoHash() (*CryptoHash, error) {
	return &CryptoHash{h: xmd4.New()}, nil
}

// Reset initialises (and therefore resets) the digest
func (c *CryptoHash) Reset() error {
	c.h.Reset()
	c.finished = false
	return nil
}

// Update updates a digest job
func (c *CryptoHash) Update(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if c.finished {
		return ErrDigestFinalised
	}
	c.h.Write(data)
	return nil
}

// Write writes data to be digested and returns number of bytes written
func (c *CryptoHash) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := c.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum finalises the digest job and returns the digest sum
func (c *CryptoHash) Sum() ([]byte, error) {
	c.finished = true
	return c.h.Sum(nil), nil
}

// Close wipes the digest state. The job must not be used afterwards.
func (c *CryptoHash) Close() {
	c.h.Reset()
	c.finished = true
}
