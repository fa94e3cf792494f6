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
	"github.com/stretchr/testify/require"
)

func TestHoldInsertRejectsDuplicates(t *testing.T) {
	h := newHold(4)
	p := Packet{Degree: 2, Blocks: []int{0, 1}, Payload: []byte{1, 2}}

	require.True(t, h.insert(p))
	require.False(t, h.insert(p), "equal packet must not be inserted twice")
	assert.Equal(t, 1, h.len())
}

func TestHoldInsertDistinguishesBlockOrder(t *testing.T) {
	h := newHold(4)
	a := Packet{Degree: 2, Blocks: []int{0, 1}, Payload: []byte{1, 2}}
	b := Packet{Degree: 2, Blocks: []int{1, 0}, Payload: []byte{1, 2}}

	require.True(t, h.insert(a))
	require.True(t, h.insert(b), "different block order is a different packet")
	assert.Equal(t, 2, h.len())
}

func TestHoldRemoveAtShiftsLeft(t *testing.T) {
	h := newHold(4)
	p0 := Packet{Degree: 2, Blocks: []int{0, 1}, Payload: []byte{0}}
	p1 := Packet{Degree: 2, Blocks: []int{1, 2}, Payload: []byte{1}}
	p2 := Packet{Degree: 2, Blocks: []int{2, 3}, Payload: []byte{2}}
	h.insert(p0)
	h.insert(p1)
	h.insert(p2)

	h.removeAt(0)

	require.Equal(t, 2, h.len())
	assert.True(t, h.at(0).Equal(p1))
	assert.True(t, h.at(1).Equal(p2))
}

func TestHoldRemoveAtOnlyLiveEntry(t *testing.T) {
	h := newHold(4)
	p := Packet{Degree: 2, Blocks: []int{0, 1}, Payload: []byte{0}}
	h.insert(p)

	h.removeAt(0)

	assert.Equal(t, 0, h.len())
}

func TestHoldGrowsByGranularityStep(t *testing.T) {
	h := newHold(2)
	for i := 0; i < 3; i++ {
		h.insert(Packet{Degree: 2, Blocks: []int{i, i + 1}, Payload: []byte{byte(i)}})
	}

	assert.Equal(t, 3, h.len())
	assert.Equal(t, 4, cap(h.packets), "capacity should grow in steps of the configured granularity")
}

func TestHoldContainsOnlyScansLiveEntries(t *testing.T) {
	// Regression for spec §9 Open Question 1: duplicate detection must
	// only ever consider the live prefix, never whatever happens to sit
	// in not-yet-used backing-array capacity.
	h := newHold(4)
	p0 := Packet{Degree: 2, Blocks: []int{0, 1}, Payload: []byte{9}}
	p1 := Packet{Degree: 2, Blocks: []int{2, 3}, Payload: []byte{9}}
	h.insert(p0)
	h.insert(p1)
	h.removeAt(0) // vacated slot now holds a zeroed Packet{} at a stale capacity index

	// A genuinely empty Packet{} must not be treated as "already held".
	assert.False(t, h.contains(Packet{}))
	assert.Equal(t, 1, h.len())
}
