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

import "github.com/pkg/errors"

// Sentinel errors for the two precondition violations the codec refuses to
// guess at: an empty source message and a degenerate block size. Neither has
// a defined reference behaviour (spec §7), so both are rejected outright.
var (
	ErrEmptyMessage  = errors.New("fountain: message must be non-empty")
	ErrZeroBlockSize = errors.New("fountain: block size must be >= 1")
)

// checkInputs validates the preconditions shared by the encoder and decoder
// entry points.
func checkInputs(message []byte, blockSize int) error {
	if len(message) == 0 {
		return ErrEmptyMessage
	}
	if blockSize < 1 {
		return ErrZeroBlockSize
	}
	return nil
}
