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

func TestSourceBlockCount(t *testing.T) {
	tests := []struct {
		name string
		l, b int
		want int
	}{
		{"exact multiple", 20, 4, 5},
		{"needs padding", 10, 4, 3},
		{"single block", 1, 1, 1},
		{"message shorter than block", 3, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sourceBlockCount(tt.l, tt.b))
		})
	}
}

func TestSourceBlock(t *testing.T) {
	message := []byte("abcdefghij")

	tests := []struct {
		name string
		i, b int
		want []byte
	}{
		{"first block", 0, 4, []byte("abcd")},
		{"middle block", 1, 4, []byte("efgh")},
		{"padded final block", 2, 4, []byte{'i', 'j', 0, 0}},
		{"block entirely past end", 5, 4, []byte{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sourceBlock(message, tt.i, tt.b))
		})
	}
}

func TestXorInto(t *testing.T) {
	tests := []struct {
		name     string
		dst, src []byte
		want     []byte
	}{
		{"identity", []byte{1, 0, 1}, []byte{0, 0, 0}, []byte{1, 0, 1}},
		{"flips set bits", []byte{1, 1, 1}, []byte{1, 1, 1}, []byte{0, 0, 0}},
		{"mixed", []byte{0b1010, 0xFF}, []byte{0b0110, 0x0F}, []byte{0b1100, 0xF0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := append([]byte(nil), tt.dst...)
			xorInto(dst, tt.src)
			assert.Equal(t, tt.want, dst)
		})
	}
}

func TestXorIntoIsSelfInverse(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{9, 8, 7, 6}

	dst := append([]byte(nil), a...)
	xorInto(dst, b)
	xorInto(dst, b)

	assert.Equal(t, a, dst, "XORing the same value in twice should restore the original")
}
