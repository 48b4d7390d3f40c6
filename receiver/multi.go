package receiver

import (
	"fmt"

	"github.com/infraredgo/infrared/protocol"
	"github.com/infraredgo/infrared/sample"
)

// MultiReceiver drives a fixed set of 2 to 6 type-erased decoders off one
// shared pin read per tick (§4.5). Rather than generating one concrete type
// per arity, it holds a slice of protocol.AnyDecoder and enforces the 2-6
// bound at construction; see SPEC_FULL.md's Design Notes for why the
// type-erasure route was preferred over per-arity generated tuple types.
type MultiReceiver struct {
	sampler  *sample.Periodic
	decoders []protocol.AnyDecoder
	results  []protocol.AnyResult
}

// NewMultiReceiver constructs a MultiReceiver polling pin and feeding every
// decoder, in the given order, on each change. It returns an error if
// decoders is not sized 2 to 6. The result slice returned by Poll is
// allocated once here and reused in place on every call.
func NewMultiReceiver(pin sample.PinInput, decoders ...protocol.AnyDecoder) (*MultiReceiver, error) {
	if len(decoders) < 2 || len(decoders) > 6 {
		return nil, fmt.Errorf("infrared: multi-receiver supports 2 to 6 decoders, got %d", len(decoders))
	}
	return &MultiReceiver{
		sampler:  sample.NewPeriodic(pin),
		decoders: decoders,
		results:  make([]protocol.AnyResult, len(decoders)),
	}, nil
}

// Pin returns the underlying pin, so an interrupt handler can clear a
// pending-edge flag after Poll returns.
func (m *MultiReceiver) Pin() sample.PinInput { return m.sampler.Pin() }

// Poll reads the pin once and, on a level change, feeds the resulting event
// to every decoder in declared order, returning one protocol.AnyResult per
// decoder in that same order. A decoder that lands in Err state has already
// reset itself to Idle internally; its siblings are unaffected. When the
// pin level did not change, no decoder is fed and Poll returns nil with
// changed=false.
func (m *MultiReceiver) Poll() (results []protocol.AnyResult, changed bool) {
	ev, ok := m.sampler.Sample()
	if !ok {
		return nil, false
	}
	for i, d := range m.decoders {
		m.results[i] = d.Event(ev.Level, ev.Duration)
	}
	return m.results, true
}
