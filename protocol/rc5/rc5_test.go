package rc5

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

func TestRC5Scenario(t *testing.T) {
	cmd := Command{Address: 0x05, Command: 0x09, Toggle: false, Start1: true, Start2: true}
	buf := Encode(cmd, rate)

	d := New(rate)
	var result protocol.Result[Command]
	for _, e := range flatten(buf) {
		result = d.Event(e.Level, e.Duration)
	}

	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, cmd, result.Cmd)
}

func TestRC5RoundTrip(t *testing.T) {
	cases := []Command{
		{Address: 0, Command: 0, Start1: true, Start2: true},
		{Address: 0x1F, Command: 0x3F, Toggle: true, Start1: true, Start2: true},
		{Address: 0x05, Command: 0x09, Toggle: false, Start1: true, Start2: true},
		{Address: 0x1A, Command: 0x15, Toggle: true, Start1: true, Start2: true},
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

func TestRC5IdleRecovery(t *testing.T) {
	d := New(rate)
	cmd := Command{Address: 0x05, Command: 0x09, Start1: true, Start2: true}
	buf := Encode(cmd, rate)
	events := flatten(buf)

	// Feed half the frame, then blow past the maximum valid symbol.
	half := events[:len(events)/2]
	for _, e := range half {
		d.Event(e.Level, e.Duration)
	}
	r := d.Event(true, d.MaxSymbolTicks()+5000)
	assert.Equal(t, protocol.Err, r.Status)

	// Fresh frame decodes normally afterwards.
	var result protocol.Result[Command]
	for _, e := range flatten(Encode(cmd, rate)) {
		result = d.Event(e.Level, e.Duration)
	}
	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, cmd, result.Cmd)
}

func TestRC5RejectsBrokenManchesterTransition(t *testing.T) {
	d := New(rate)
	// First half low for one unit, as expected...
	r := d.Event(false, 889)
	require.Equal(t, protocol.InProgress, r.Status)
	// ...but the second half repeats the same level instead of flipping.
	r = d.Event(false, 889)
	assert.Equal(t, protocol.Err, r.Status)
}
