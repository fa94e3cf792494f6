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

import "bytes"

// Packet is one code block produced by the encoder: the XOR of Degree
// source blocks, together with the indices of the blocks that were
// combined. Order within Blocks is preserved from the draw that produced
// it and is significant for equality (see Equal).
type Packet struct {
	Degree  int
	Blocks  []int
	Payload []byte
}

// Equal reports whether p and o describe the same packet: same degree,
// byte-identical payload, and the same block indices in the same order.
// Two packets whose index sets differ only in order are not equal.
func (p Packet) Equal(o Packet) bool {
	return p.Compare(o) == 0
}

// Compare defines a total order over packets: degree, then payload
// (lexicographic byte comparison), then blocks (lexicographic int
// comparison). It returns a negative number, zero, or a positive number as
// p is less than, equal to, or greater than o. Only Equal (Compare == 0)
// is load-bearing for the decoder; the ordering itself exists so packets
// are a testable, sortable contract.
func (p Packet) Compare(o Packet) int {
	if p.Degree != o.Degree {
		if p.Degree < o.Degree {
			return -1
		}
		return 1
	}
	if c := bytes.Compare(p.Payload, o.Payload); c != 0 {
		return c
	}
	for i := 0; i < len(p.Blocks) && i < len(o.Blocks); i++ {
		if p.Blocks[i] != o.Blocks[i] {
			if p.Blocks[i] < o.Blocks[i] {
				return -1
			}
			return 1
		}
	}
	if len(p.Blocks) != len(o.Blocks) {
		if len(p.Blocks) < len(o.Blocks) {
			return -1
		}
		return 1
	}
	return 0
}

// indexOf returns the position of block in p.Blocks, or -1 if absent.
func (p Packet) indexOf(block int) int {
	for i, b := range p.Blocks {
		if b == block {
			return i
		}
	}
	return -1
}

// removeAt returns a copy of p with the block at position i removed from
// Blocks (later indices shifted left) and Degree decremented. The caller
// is expected to have already XORed the corresponding content out of
// Payload.
func (p Packet) removeAt(i int) Packet {
	blocks := make([]int, 0, len(p.Blocks)-1)
	blocks = append(blocks, p.Blocks[:i]...)
	blocks = append(blocks, p.Blocks[i+1:]...)
	return Packet{Degree: p.Degree - 1, Blocks: blocks, Payload: p.Payload}
}
