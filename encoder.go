// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fountain

import "math/rand"

// Encoder produces fountain-coded Packets over a fixed message. It is
// pure with respect to (message, blockSize) and impure only with respect
// to the shared *rand.Rand -- the same contract the teacher codec's
// lubyCodec.PickIndices has with its random field, but driven by the
// triangular distribution of spec §4.2 rather than a supplied degree CDF.
type Encoder struct {
	random *rand.Rand
}

// NewEncoder creates an Encoder that draws degrees and block indices from
// the given random source. The caller owns the *rand.Rand and may reuse
// it across encoders; the encoder keeps no other state between calls.
func NewEncoder(random *rand.Rand) *Encoder {
	return &Encoder{random: random}
}

// Encode produces one packet for message, chunked into blocks of size
// blockSize. It samples a degree from the triangular distribution, draws
// that many distinct block indices by uniform rejection sampling, and
// XORs the corresponding (zero-padded) source blocks into the payload.
func (e *Encoder) Encode(message []byte, blockSize int) (Packet, error) {
	if err := checkInputs(message, blockSize); err != nil {
		return Packet{}, err
	}

	n := sourceBlockCount(len(message), blockSize)
	degree := triangularDegree(e.random, n)
	indices := sampleDistinctIndices(e.random, degree, n)

	payload := make([]byte, blockSize)
	for _, i := range indices {
		xorInto(payload, sourceBlock(message, i, blockSize))
	}

	return Packet{
		Degree:  degree,
		Blocks:  indices,
		Payload: payload,
	}, nil
}
