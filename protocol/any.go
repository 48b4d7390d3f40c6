package protocol

// AnyResult is the type-erased counterpart of Result, used where a set of
// differently-typed decoders must be driven uniformly (the multi-receiver,
// §4.5). Cmd is nil unless Status is Done.
type AnyResult struct {
	Status Status
	Cmd    any
	Err    DecoderError
}

// AnyDecoder is the narrow, non-generic view of Decoder that the
// multi-receiver holds a slice of. Generic decoders are adapted to it with
// Erase.
type AnyDecoder interface {
	Event(level bool, durationTicks uint32) AnyResult
	Reset()
	MaxSymbolTicks() uint32
}

// erased adapts a Decoder[Cmd] to AnyDecoder by boxing its Cmd into an any
// only when a frame actually completes. Frame completions are rare relative
// to the per-edge hot path (tens of milliseconds apart), so this boxing does
// not affect the allocation-free guarantee for InProgress/Timing events.
type erased[Cmd any] struct {
	d Decoder[Cmd]
}

// Erase adapts a typed Decoder to the non-generic AnyDecoder interface, for
// use in a MultiReceiver's fixed decoder set.
func Erase[Cmd any](d Decoder[Cmd]) AnyDecoder {
	return erased[Cmd]{d: d}
}

func (e erased[Cmd]) Event(level bool, durationTicks uint32) AnyResult {
	r := e.d.Event(level, durationTicks)
	out := AnyResult{Status: r.Status, Err: r.Err}
	if r.Status == Done {
		out.Cmd = r.Cmd
	}
	return out
}

func (e erased[Cmd]) Reset() { e.d.Reset() }

func (e erased[Cmd]) MaxSymbolTicks() uint32 { return e.d.MaxSymbolTicks() }
