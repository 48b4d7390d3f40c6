package sbp

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
		events = append(events, protocol.Event{Level: true, Duration: iv.OnTicks})
		if iv.OffTicks > 0 {
			events = append(events, protocol.Event{Level: false, Duration: iv.OffTicks})
		}
	}
	return events
}

func TestSBPRoundTrip(t *testing.T) {
	cases := []Command{
		{Address: 0, Command: 0},
		{Address: 0x1FFF, Command: 0xFF},
		{Address: 0x1234 & 0x1FFF, Command: 0x5A},
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

func TestSBPIdleRecoveryAfterOversizedDuration(t *testing.T) {
	d := New(rate)
	d.Event(true, 3500)
	d.Event(false, 1700)
	r := d.Event(true, d.MaxSymbolTicks()+2000)
	assert.Equal(t, protocol.Err, r.Status)

	cmd := Command{Address: 42, Command: 7}
	var result protocol.Result[Command]
	for _, e := range flatten(Encode(cmd, rate)) {
		result = d.Event(e.Level, e.Duration)
	}
	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, cmd, result.Cmd)
}

func TestSBPUnrelatedNoiseStaysIdle(t *testing.T) {
	d := New(rate)
	r := d.Event(true, 2666) // RC-6 leader length, not an SBP header
	assert.Equal(t, protocol.Idle, r.Status)
}
