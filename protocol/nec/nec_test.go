package nec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infraredgo/infrared/protocol"
)

const rate = 1_000_000

// feed drives a decoder through a stream of (level, duration) events, in
// microseconds at rate. It returns the result of the last event.
func feed(t *testing.T, d *Decoder, events []protocol.Event) protocol.Result[Command] {
	t.Helper()
	var last protocol.Result[Command]
	for _, e := range events {
		last = d.Event(e.Level, e.Duration)
	}
	return last
}

func necFrame(addr, cmd uint8) []protocol.Event {
	bits := uint32(addr) | uint32(^addr)<<8 | uint32(cmd)<<16 | uint32(^cmd)<<24
	events := []protocol.Event{
		{Level: true, Duration: 9000},
		{Level: false, Duration: 4500},
	}
	for i := 0; i < 32; i++ {
		events = append(events, protocol.Event{Level: true, Duration: 562})
		if (bits>>uint(i))&1 == 1 {
			events = append(events, protocol.Event{Level: false, Duration: 1687})
		} else {
			events = append(events, protocol.Event{Level: false, Duration: 562})
		}
	}
	events = append(events, protocol.Event{Level: true, Duration: 562})
	return events
}

func TestNECStandardDecode(t *testing.T) {
	d := New(rate)
	result := feed(t, d, necFrame(0x04, 0x07))

	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, Command{Address: 4, Command: 7, Repeat: false}, result.Cmd)
}

func TestNECRepeat(t *testing.T) {
	d := New(rate)
	feed(t, d, necFrame(0x04, 0x07))

	repeat := []protocol.Event{
		{Level: true, Duration: 9000},
		{Level: false, Duration: 2250},
		{Level: true, Duration: 562},
	}
	result := feed(t, d, repeat)

	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, Command{Address: 4, Command: 7, Repeat: true}, result.Cmd)
}

func TestNECRepeatWithoutPriorFrameIsDropped(t *testing.T) {
	d := New(rate)
	repeat := []protocol.Event{
		{Level: true, Duration: 9000},
		{Level: false, Duration: 2250},
		{Level: true, Duration: 562},
	}
	result := feed(t, d, repeat)
	assert.Equal(t, protocol.Idle, result.Status)
}

func TestNECComplementFailure(t *testing.T) {
	d := New(rate)

	// cmd byte 0x07 but cmd-complement byte forced to 0x00 instead of 0xF8.
	events := []protocol.Event{
		{Level: true, Duration: 9000},
		{Level: false, Duration: 4500},
	}
	bits := uint32(0x04) | uint32(^uint8(0x04))<<8 | uint32(0x07)<<16 | uint32(0x00)<<24
	for i := 0; i < 32; i++ {
		events = append(events, protocol.Event{Level: true, Duration: 562})
		if (bits>>uint(i))&1 == 1 {
			events = append(events, protocol.Event{Level: false, Duration: 1687})
		} else {
			events = append(events, protocol.Event{Level: false, Duration: 562})
		}
	}
	events = append(events, protocol.Event{Level: true, Duration: 562})

	result := feed(t, d, events)
	require.Equal(t, protocol.Err, result.Status)
	assert.Equal(t, protocol.ErrData, result.Err.Kind)

	// Next valid frame after the error decodes normally.
	next := feed(t, d, necFrame(0x04, 0x07))
	require.Equal(t, protocol.Done, next.Status)
	assert.Equal(t, Command{Address: 4, Command: 7}, next.Cmd)
}

func TestNECSamsungNoComplementCheck(t *testing.T) {
	d := NewSamsung(rate)
	// Samsung frames repeat the address byte and command byte verbatim
	// instead of sending the complement.
	bits := uint32(0x07) | uint32(0x07)<<8 | uint32(0x02)<<16 | uint32(0x02)<<24
	events := []protocol.Event{
		{Level: true, Duration: 9000},
		{Level: false, Duration: 4500},
	}
	for i := 0; i < 32; i++ {
		events = append(events, protocol.Event{Level: true, Duration: 562})
		if (bits>>uint(i))&1 == 1 {
			events = append(events, protocol.Event{Level: false, Duration: 1687})
		} else {
			events = append(events, protocol.Event{Level: false, Duration: 562})
		}
	}
	events = append(events, protocol.Event{Level: true, Duration: 562})

	result := feed(t, d, events)
	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, Command{Address: 7, Command: 2}, result.Cmd)
}

func TestNECRoundTrip(t *testing.T) {
	cases := []Command{
		{Address: 0, Command: 0},
		{Address: 4, Command: 7},
		{Address: 0xFF, Command: 0xA5},
	}
	for _, cmd := range cases {
		buf := Encode(cmd, rate, StandardVariant())
		d := New(rate)

		var result protocol.Result[Command]
		for _, iv := range buf.Items[:buf.Len] {
			result = d.Event(true, iv.OnTicks)
			if iv.OffTicks > 0 {
				result = d.Event(false, iv.OffTicks)
			}
		}
		require.Equal(t, protocol.Done, result.Status)
		want := cmd
		want.Repeat = false
		assert.Equal(t, want, result.Cmd)
	}
}

func TestNECIdleRecoveryAfterOversizedDuration(t *testing.T) {
	d := New(rate)
	// Start a frame, then blow past MaxSymbolTicks.
	d.Event(true, 9000)
	d.Event(false, 4500)
	r := d.Event(true, d.MaxSymbolTicks()+1000)
	assert.Equal(t, protocol.Err, r.Status)

	// A fresh valid frame must decode normally afterwards.
	result := feed(t, d, necFrame(0x01, 0x02))
	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, Command{Address: 1, Command: 2}, result.Cmd)
}

func TestAppleRoundTrip(t *testing.T) {
	cmd := AppleCommand{Address: 0x87EE, Command: 0x0B}
	buf := EncodeApple(cmd, rate)
	d := NewApple(rate)

	var result protocol.Result[AppleCommand]
	for _, iv := range buf.Items[:buf.Len] {
		result = d.Event(true, iv.OnTicks)
		if iv.OffTicks > 0 {
			result = d.Event(false, iv.OffTicks)
		}
	}
	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, cmd, result.Cmd)
}

func TestSamsungRoundTrip(t *testing.T) {
	cmd := Command{Address: 0x07, Command: 0x02}
	buf := Encode(cmd, rate, SamsungVariant())
	d := NewSamsung(rate)

	var result protocol.Result[Command]
	for _, iv := range buf.Items[:buf.Len] {
		result = d.Event(true, iv.OnTicks)
		if iv.OffTicks > 0 {
			result = d.Event(false, iv.OffTicks)
		}
	}
	require.Equal(t, protocol.Done, result.Status)
	assert.Equal(t, cmd, result.Cmd)
}
