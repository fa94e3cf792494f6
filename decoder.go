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
	"math/rand"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// DefaultHoldGranularity is H0 from spec §3/§6: the hold grows in steps of
// this many packets.
const DefaultHoldGranularity = 256

// Logger is the minimal logging surface the decoder needs. The ambient
// logger.Logger wrapper around zap satisfies it; tests and library callers
// that don't care about diagnostics can leave Options.Logger nil and get
// noopLogger instead.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}

// Options configures a Decode call. All fields are optional.
type Options struct {
	// Seed seeds the decoder's RNG. Zero means "derive one from the
	// current time", matching the original C driver's srand(time(NULL)).
	Seed int64
	// HoldGranularity overrides DefaultHoldGranularity.
	HoldGranularity int
	// Logger receives debug/info diagnostics. Nil disables logging.
	Logger Logger
}

// Decoded is the result of a successful decode: the reconstructed message
// and the number of packets pulled from the encoder to produce it. The
// latter is the one externally visible efficiency metric (spec §6); it is
// returned here rather than printed, per spec §9's redesign guidance.
type Decoded struct {
	Message       []byte
	PacketsPulled int
}

// decoder is the stateful belief-propagation peeling decoder described in
// spec §4.3. It owns the RNG and the encoder it pulls packets from for the
// duration of one decode.
type decoder struct {
	n         int
	blockSize int

	solved  []byte
	decoded []bool
	hold    *hold

	encoder *Encoder
	log     Logger

	packetsPulled int

	// pending holds indices newly marked decoded whose cascade against
	// the hold has not yet run, and draining reports whether a scan
	// over the hold is currently in progress. Together they turn
	// resolveDegreeOne's recursion into a worklist: a nested resolution
	// reached from inside cascade only enqueues its index and returns
	// instead of reentering cascade, so the outer scan's position is
	// never invalidated by a hold mutation a nested call makes.
	pending  []int
	draining bool
}

// newDecoder allocates the decoder's working state. Allocation failure
// (including an out-of-memory panic from make, which this recovers) is
// surfaced as an error rather than left to crash the process, matching
// spec §7's "allocation failure ... fatal; the operation surfaces a
// failure to its caller" -- this is the "scoped ownership" shape from
// spec §9: every allocation here belongs to the returned *decoder, and if
// construction fails none of it escapes.
func newDecoder(n, blockSize, holdGranularity int, random *rand.Rand, log Logger) (*decoder, error) {
	if log == nil {
		log = noopLogger{}
	}

	var errs *multierror.Error
	solved, err := allocBytes(n * blockSize)
	errs = multierror.Append(errs, err)
	decoded, err := allocBools(n)
	errs = multierror.Append(errs, err)
	h, err := allocHold(holdGranularity)
	errs = multierror.Append(errs, err)

	if err := errs.ErrorOrNil(); err != nil {
		return nil, errors.Wrap(err, "fountain: failed to allocate decoder state")
	}

	return &decoder{
		n:         n,
		blockSize: blockSize,
		solved:    solved,
		decoded:   decoded,
		hold:      h,
		encoder:   NewEncoder(random),
		log:       log,
	}, nil
}

// allocBytes, allocBools and allocHold each recover from an out-of-memory
// panic in make() and turn it into an error, so a failure in one of the
// decoder's three owned allocations doesn't take the process down and can
// be reported (and aggregated with any sibling failures) to the caller.
func allocBytes(n int) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("solved buffer: %v", r)
		}
	}()
	return make([]byte, n), nil
}

func allocBools(n int) (b []bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("decoded bitmap: %v", r)
		}
	}()
	return make([]bool, n), nil
}

func allocHold(granularity int) (h *hold, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("hold: %v", r)
		}
	}()
	return newHold(granularity), nil
}

// Decode reconstructs message from a stream of fountain packets encoded
// over it with the given blockSize, pulling fresh packets from an
// internally owned encoder until every block is recovered.
func Decode(message []byte, blockSize int, opts Options) (Decoded, error) {
	if err := checkInputs(message, blockSize); err != nil {
		return Decoded{}, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	granularity := opts.HoldGranularity
	if granularity < 1 {
		granularity = DefaultHoldGranularity
	}

	n := sourceBlockCount(len(message), blockSize)
	d, err := newDecoder(n, blockSize, granularity, rand.New(rand.NewSource(seed)), opts.Logger)
	if err != nil {
		return Decoded{}, err
	}

	for !d.allDecoded() {
		packet, err := d.encoder.Encode(message, blockSize)
		if err != nil {
			return Decoded{}, errors.Wrap(err, "fountain: encoder failed mid-decode")
		}
		d.packetsPulled++
		d.process(packet)
	}

	d.log.Infof("fountain: decoded %d blocks from %d packets", d.n, d.packetsPulled)

	return Decoded{
		Message:       append([]byte(nil), d.solved[:len(message)]...),
		PacketsPulled: d.packetsPulled,
	}, nil
}

func (d *decoder) allDecoded() bool {
	for _, ok := range d.decoded {
		if !ok {
			return false
		}
	}
	return true
}

// process handles one packet pulled from the encoder, including any
// in-place reductions and cascades it triggers, per spec §4.3.
func (d *decoder) process(p Packet) {
	for {
		if p.Degree <= 1 {
			d.resolveDegreeOne(p)
			return
		}

		reduced, changed := d.peelAgainstSolved(p)
		if changed {
			// Re-inspect the reduced packet instead of pulling a new one:
			// the small state machine from spec §9 ("packet,
			// should_pull_next") collapses to this loop restarting with p.
			p = reduced
			continue
		}

		d.insertIntoHold(p)
		return
	}
}

// peelAgainstSolved scans p's indices in order and, on the first index
// that is already decoded, XORs that block's recovered content out of the
// payload and removes the index. It reports whether a reduction happened.
func (d *decoder) peelAgainstSolved(p Packet) (Packet, bool) {
	for pos, blockIdx := range p.Blocks {
		if !d.decoded[blockIdx] {
			continue
		}
		payload := append([]byte(nil), p.Payload...)
		xorInto(payload, d.blockContent(blockIdx))
		reduced := p.removeAt(pos)
		reduced.Payload = payload
		return reduced, true
	}
	return p, false
}

// resolveDegreeOne applies spec §4.3.1 to a degree-1 packet: if the block
// is already decoded the packet is redundant and discarded; otherwise the
// block is recorded solved and queued for a cascade against the hold.
//
// Called both directly (a freshly pulled degree-1 packet) and from inside
// cascade, when reducing a held packet yields a new degree-1 packet. In
// the latter case a scan over the hold is already in progress, so this
// only enqueues i and returns rather than starting a second, nested scan;
// drainCascades runs the queued cascade once the in-progress scan
// finishes.
func (d *decoder) resolveDegreeOne(p Packet) {
	i := p.Blocks[0]
	if d.decoded[i] {
		return
	}

	copy(d.blockContent(i), p.Payload)
	d.decoded[i] = true
	d.pending = append(d.pending, i)
	d.drainCascades()
}

// drainCascades processes queued newly-decoded indices one at a time,
// each via one full scan over the current hold (cascade). If a scan is
// already running (d.draining), this is a no-op: the index was just
// appended to d.pending by the caller, and the running scan's own call
// to drainCascades -- once it returns to its loop -- will pick it up.
// This is what keeps a single cascade scan's position from being
// invalidated by a hold mutation a nested resolveDegreeOne makes: no
// scan is ever reentered, only ever continued after it returns.
func (d *decoder) drainCascades() {
	if d.draining {
		return
	}
	d.draining = true
	defer func() { d.draining = false }()

	for len(d.pending) > 0 {
		i := d.pending[0]
		d.pending = d.pending[1:]
		d.cascade(i, d.blockContent(i))
	}
}

// cascade applies the new knowledge that block i equals c to every packet
// currently in the hold, in hold order. A reduction that leaves a held
// packet equal to another held packet removes it from the hold. A
// reduction that drops a held packet to degree 1 removes it from the
// hold immediately; resolving it
// (via resolveDegreeOne) only queues its index for drainCascades's loop
// rather than recursing back into this scan, so this loop's idx always
// reflects a hold this call itself has mutated.
func (d *decoder) cascade(i int, c []byte) {
	idx := 0
	for idx < d.hold.len() {
		q := d.hold.at(idx)
		pos := q.indexOf(i)
		if pos == -1 {
			idx++
			continue
		}

		payload := append([]byte(nil), q.Payload...)
		xorInto(payload, c)
		reduced := q.removeAt(pos)
		reduced.Payload = payload

		if reduced.Degree == 1 {
			d.hold.removeAt(idx)
			d.resolveDegreeOne(reduced)
			continue // hold has shifted left; idx now points past q
		}

		if d.hold.contains(reduced) {
			// The reduced packet now equals one already held; dropping it
			// keeps the hold free of duplicates.
			d.hold.removeAt(idx)
			continue
		}

		d.hold.set(idx, reduced)
		idx++
	}
}

// insertIntoHold adds a degree>=2 packet to the hold, logging when that
// requires growing the backing allocation.
func (d *decoder) insertIntoHold(p Packet) {
	before := cap(d.hold.packets)
	inserted := d.hold.insert(p)
	if cap(d.hold.packets) != before {
		d.log.Debugf("fountain: hold grew from %d to %d slots", before, cap(d.hold.packets))
	}
	if inserted {
		d.log.Debugf("fountain: held degree-%d packet, hold now has %d entries", p.Degree, d.hold.len())
	}
}

func (d *decoder) blockContent(i int) []byte {
	return d.solved[i*d.blockSize : (i+1)*d.blockSize]
}
