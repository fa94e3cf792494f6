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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacketEqualReflexiveSymmetricTransitive(t *testing.T) {
	a := Packet{Degree: 2, Blocks: []int{1, 3}, Payload: []byte{0xAA, 0xBB}}
	b := Packet{Degree: 2, Blocks: []int{1, 3}, Payload: []byte{0xAA, 0xBB}}
	c := Packet{Degree: 2, Blocks: []int{1, 3}, Payload: []byte{0xAA, 0xBB}}

	assert.True(t, a.Equal(a), "reflexive")
	assert.True(t, a.Equal(b), "symmetric (a,b)")
	assert.True(t, b.Equal(a), "symmetric (b,a)")
	assert.True(t, b.Equal(c), "transitive precondition")
	assert.True(t, a.Equal(c), "transitive")
}

func TestPacketInequalityRespectsEachField(t *testing.T) {
	base := Packet{Degree: 2, Blocks: []int{1, 3}, Payload: []byte{0xAA, 0xBB}}

	tests := []struct {
		name string
		p    Packet
	}{
		{"different degree", Packet{Degree: 3, Blocks: []int{1, 3}, Payload: []byte{0xAA, 0xBB}}},
		{"different payload", Packet{Degree: 2, Blocks: []int{1, 3}, Payload: []byte{0xAA, 0xBC}}},
		{"different block order", Packet{Degree: 2, Blocks: []int{3, 1}, Payload: []byte{0xAA, 0xBB}}},
		{"different blocks", Packet{Degree: 2, Blocks: []int{1, 4}, Payload: []byte{0xAA, 0xBB}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, base.Equal(tt.p))
			assert.False(t, tt.p.Equal(base))
		})
	}
}

func TestPacketBlockOrderMattersForEquality(t *testing.T) {
	// spec §4.3.4: "two packets with the same index set in a different
	// order are not considered equal."
	p1 := Packet{Degree: 3, Blocks: []int{0, 1, 2}, Payload: []byte{1, 2, 3}}
	p2 := Packet{Degree: 3, Blocks: []int{2, 1, 0}, Payload: []byte{1, 2, 3}}
	assert.False(t, p1.Equal(p2))
}

func TestPacketRemoveAt(t *testing.T) {
	p := Packet{Degree: 3, Blocks: []int{5, 7, 9}, Payload: []byte{1, 2, 3}}

	reduced := p.removeAt(1)

	assert.Equal(t, 2, reduced.Degree)
	assert.Equal(t, []int{5, 9}, reduced.Blocks)
	// Original packet must be untouched.
	assert.Equal(t, []int{5, 7, 9}, p.Blocks)
}

func TestPacketIndexOf(t *testing.T) {
	p := Packet{Degree: 3, Blocks: []int{5, 7, 9}}

	assert.Equal(t, 0, p.indexOf(5))
	assert.Equal(t, 2, p.indexOf(9))
	assert.Equal(t, -1, p.indexOf(6))
}

func TestPacketCompareOrdering(t *testing.T) {
	low := Packet{Degree: 1, Blocks: []int{0}, Payload: []byte{0}}
	high := Packet{Degree: 2, Blocks: []int{0, 1}, Payload: []byte{0, 0}}

	assert.Negative(t, low.Compare(high))
	assert.Positive(t, high.Compare(low))
	assert.Zero(t, low.Compare(low))
}
