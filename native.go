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

// NativeHash is a digest job backed by the from-scratch engine in this
// package. Input may be split across Update calls at any byte boundary:
// whole blocks are compressed as they complete and the remainder is carried
// in the tail buffer, so the digest depends only on the concatenated bytes.
type NativeHash struct {
	ctx  digest
	tail [BlockSize]byte
	n    int // bytes of tail in use
}

var _ Hash = (*NativeHash)(nil)

// NewNativeHash creates a new native digest job.
func NewNativeHash() (*NativeHash, error) {
	h := new(NativeHash)
	h.ctx.reset()
	return h, nil
}

// Reset initialises (and therefore resets) the digest
func (h *NativeHash) Reset() error {
	h.ctx.reset()
	h.tail = [BlockSize]byte{}
	h.n = 0
	return nil
}

// Update updates a digest job
func (h *NativeHash) Update(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if h.ctx.finished {
		return ErrDigestFinalised
	}
	if h.n > 0 {
		c := copy(h.tail[h.n:], data)
		h.n += c
		data = data[c:]
		if h.n < BlockSize {
			return nil
		}
		if err := h.ctx.update(h.tail[:], blockBits); err != nil {
			return err
		}
		h.n = 0
	}
	for len(data) >= BlockSize {
		if err := h.ctx.update(data[:BlockSize], blockBits); err != nil {
			return err
		}
		data = data[BlockSize:]
	}
	h.n = copy(h.tail[:], data)
	return nil
}

// Write writes data to be digested and returns number of bytes written
func (h *NativeHash) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := h.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum finalises the digest job and returns the digest sum. The buffered
// tail, always shorter than a block, becomes the terminal feed; calling Sum
// again just rereads the closed state.
func (h *NativeHash) Sum() ([]byte, error) {
	if err := h.ctx.update(h.tail[:h.n], uint64(h.n)*8); err != nil {
		return nil, err
	}
	h.n = 0
	sum := h.ctx.sum()
	return sum[:], nil
}

// Close wipes the digest state, buffered input included. Challenge/response
// protocols feed password material through here, so the tail must not
// outlive the job.
func (h *NativeHash) Close() {
	*h = NativeHash{}
	h.ctx.finished = true
}
