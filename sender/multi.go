package sender

// AnySender is the type-erased view of Sender that MultiSender arbitrates,
// mirroring protocol.AnyDecoder's role in receiver.MultiReceiver.
type AnySender interface {
	Tick()
	IsBusy() bool
}

// anyLoader adapts a concrete *Sender[Cmd] so MultiSender can attempt a load
// without knowing Cmd at the call site, the same role protocol.Erase plays
// for decoders.
type anyLoader interface {
	AnySender
	loadAny(cmd any) bool
}

type senderSlot[Cmd any] struct {
	*Sender[Cmd]
}

func (s senderSlot[Cmd]) loadAny(cmd any) bool {
	c, ok := cmd.(Cmd)
	if !ok {
		return false
	}
	return s.Sender.Load(c)
}

// Protocol wraps one protocol's Sender for registration with a MultiSender.
// Construct with NewProtocol.
type Protocol struct {
	name string
	s    anyLoader
}

// NewProtocol registers s under name for use with MultiSender.Load.
func NewProtocol[Cmd any](name string, s *Sender[Cmd]) Protocol {
	return Protocol{name: name, s: senderSlot[Cmd]{s}}
}

// MultiSender arbitrates a single shared carrier output across several
// per-protocol Senders: at most one is ever in flight, and Load is rejected
// while another is busy (§4.7's multi-sender).
type MultiSender struct {
	protocols []Protocol
	activeIdx int
}

// NewMultiSender constructs a MultiSender over the given registered
// protocols. Each Protocol's Sender must share the same CarrierOutput and
// tick rate; MultiSender itself owns no carrier reference, only arbitration.
func NewMultiSender(protocols ...Protocol) *MultiSender {
	return &MultiSender{protocols: protocols, activeIdx: -1}
}

// Load encodes cmd using the named protocol's Sender and begins sending it.
// It returns false if another protocol's send is already in flight, if name
// is not registered, or if cmd's type does not match the registered
// protocol's command type.
func (m *MultiSender) Load(name string, cmd any) bool {
	if m.activeIdx >= 0 && m.protocols[m.activeIdx].s.IsBusy() {
		return false
	}
	for i, p := range m.protocols {
		if p.name != name {
			continue
		}
		if !p.s.loadAny(cmd) {
			return false
		}
		m.activeIdx = i
		return true
	}
	return false
}

// Tick services whichever protocol's Sender is currently active. It is a
// no-op when nothing is in flight.
func (m *MultiSender) Tick() {
	if m.activeIdx < 0 {
		return
	}
	m.protocols[m.activeIdx].s.Tick()
	if !m.protocols[m.activeIdx].s.IsBusy() {
		m.activeIdx = -1
	}
}

// IsBusy reports whether any registered protocol currently has a send in
// flight.
func (m *MultiSender) IsBusy() bool {
	return m.activeIdx >= 0 && m.protocols[m.activeIdx].s.IsBusy()
}
