package rc6

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infraredgo/infrared/protocol"
)

const rate = 1_000_000

func flatten(buf protocol.Buffer) []protocol.Event {
	var events []protocol.Event
	for _, iv := range buf.Items[:buf.Len] {
		if iv.OnTicks > 0 {
			events = append(events, protocol.Event{Level: true, Duration: iv.OnTicks})
		}
		if iv.OffTicks > 0 {
			events = append(events, protocol.Event{Level: false, Duration: iv.OffTicks})
		}
	}
	return events
}

func TestRC6Mode0Scenario(t *testing.T) {
	cmd := Command{Start: true, Mode: 0, Toggle: false, Address: 0x00, Command: 0x0C}
	buf := Encode(cmd, rate)

	d := New(rate)
	var result protocol.Result[Command]
	for _, e := range flatten(buf) {
		result = d.Event(e.Level, e.Duration)
	}

	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, cmd, result.Cmd)
}

func TestRC6RoundTrip(t *testing.T) {
	cases := []Command{
		{Start: true, Mode: 0, Toggle: false, Address: 0x00, Command: 0x00},
		{Start: true, Mode: 0, Toggle: true, Address: 0xFF, Command: 0xFF},
		{Start: true, Mode: 6, Toggle: false, Address: 0x42, Command: 0x17},
		{Start: true, Mode: 0, Toggle: true, Address: 0x01, Command: 0x80},
	}
	for _, cmd := range cases {
		buf := Encode(cmd, rate)
		d := New(rate)

		var result protocol.Result[Command]
		for _, e := range flatten(buf) {
			result = d.Event(e.Level, e.Duration)
		}
		require.Equal(t, protocol.Done, result.Status)
		assert.Equal(t, cmd, result.Cmd)
	}
}

func TestRC6IdleRecovery(t *testing.T) {
	d := New(rate)
	cmd := Command{Start: true, Mode: 0, Address: 0x10, Command: 0x20}
	events := flatten(Encode(cmd, rate))

	half := events[:len(events)/2]
	for _, e := range half {
		d.Event(e.Level, e.Duration)
	}
	r := d.Event(true, d.MaxSymbolTicks()+5000)
	assert.Equal(t, protocol.Err, r.Status)

	var result protocol.Result[Command]
	for _, e := range flatten(Encode(cmd, rate)) {
		result = d.Event(e.Level, e.Duration)
	}
	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, cmd, result.Cmd)
}

func TestRC6NonParticipatingDecoderStaysIdleOnUnrelatedTiming(t *testing.T) {
	d := New(rate)
	r := d.Event(true, 9000) // an NEC header mark, not an RC-6 leader
	assert.Equal(t, protocol.Idle, r.Status)
}
