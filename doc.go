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

/*
Package fountain implements a Luby-transform-style fountain code
demonstrator: an Encoder that XORs a randomly sampled subset of a
message's source blocks into each packet it produces, and a peeling
decoder (Decode) that reconstructs the message from a stream of such packets by
cascading reductions through a hold of packets it cannot yet resolve.

It is a teaching implementation, not a production codec: the degree
distribution is the simple triangular distribution, not the optimised
Robust Soliton distribution, so decoding may consume more packets than
strictly necessary. There is no wire format, transport, or persistence --
packets are in-memory values passed directly from Encoder to Decode.
*/
package fountain
