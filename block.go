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

// sourceBlockCount returns N, the number of fixed-size blocks a message of
// length l is split into given block size b: ceil(l/b).
func sourceBlockCount(l, b int) int {
	n := l / b
	if l%b != 0 {
		n++
	}
	return n
}

// sourceBlock returns the content of block i (0-based) of message, zero
// padded to length b if it runs past the end of message. The codec here
// fixes every block at size b rather than the teacher codec's variable
// long/short partitioning (RFC 5053 §5.3.1.2) -- this demonstrator chunks a
// message against an agreed block size, it does not need to equalize block
// count against a target transmission size.
func sourceBlock(message []byte, i, b int) []byte {
	out := make([]byte, b)
	start := i * b
	if start >= len(message) {
		return out
	}
	end := start + b
	if end > len(message) {
		end = len(message)
	}
	copy(out, message[start:end])
	return out
}

// xorInto XORs src into dst in place. Every payload and block handled by
// this package is fixed at the codec's block size, so dst and src are
// always the same length by construction -- unlike the teacher codec's
// block.xor, there is no length-equalizing step to perform first.
func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
