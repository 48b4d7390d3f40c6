package receiver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infraredgo/infrared/protocol"
	"github.com/infraredgo/infrared/protocol/nec"
	"github.com/infraredgo/infrared/protocol/rc5"
	"github.com/infraredgo/infrared/remote"
)

const rate = 1_000_000

// scriptedPin replays a fixed level sequence, one entry per Poll/Event call,
// holding the last entry once exhausted.
type scriptedPin struct {
	levels []bool
	idx    int
}

func (p *scriptedPin) IsHigh() bool {
	level := p.levels[p.idx]
	if p.idx < len(p.levels)-1 {
		p.idx++
	}
	return level
}

func necFrameLevels(cmd nec.Command) []bool {
	buf := nec.EncodeStandard(cmd, rate)
	var levels []bool
	for _, iv := range buf.Items[:buf.Len] {
		for i := uint32(0); i < iv.OnTicks; i++ {
			levels = append(levels, true)
		}
		for i := uint32(0); i < iv.OffTicks; i++ {
			levels = append(levels, false)
		}
	}
	// The periodic sampler reports a run only once the level changes, so the
	// trailing stop mark needs one idle-low sample after it.
	levels = append(levels, false)
	return levels
}

func TestReceiverPeriodicDecodesFrame(t *testing.T) {
	cmd := nec.Command{Address: 0x12, Command: 0x34}
	pin := &scriptedPin{levels: necFrameLevels(cmd)}
	r := NewPeriodic[nec.Command](nec.New(rate), pin)

	var got nec.Command
	var ok bool
	for range pin.levels {
		got, ok, _ = r.Poll()
		if ok {
			break
		}
	}
	require.True(t, ok)
	assert.Equal(t, cmd.Address, got.Address)
	assert.Equal(t, cmd.Command, got.Command)
}

func TestReceiverPinAccessor(t *testing.T) {
	pin := &scriptedPin{levels: []bool{false}}
	r := NewPeriodic[nec.Command](nec.New(rate), pin)
	assert.Same(t, pin, r.Pin())
}

func TestEventReceiverSurfacesTimingError(t *testing.T) {
	pin := &scriptedPin{levels: []bool{true}}
	r := NewEvent[rc5.Command](rc5.New(rate), pin)

	_, ok, err := r.Event(889)
	assert.False(t, ok)
	assert.NoError(t, err)

	pin.levels = []bool{true}
	_, ok, err = r.Event(889)
	assert.False(t, ok)
	require.Error(t, err)
	var derr protocol.DecoderError
	assert.ErrorAs(t, err, &derr)
	assert.Equal(t, protocol.ErrTiming, derr.Kind)
}

func TestMultiReceiverRejectsOutOfRangeArity(t *testing.T) {
	pin := &scriptedPin{levels: []bool{false}}
	_, err := NewMultiReceiver(pin, protocol.Erase[nec.Command](nec.New(rate)))
	assert.Error(t, err)
}

func TestMultiReceiverDistributesEventToEveryDecoder(t *testing.T) {
	cmd := nec.Command{Address: 1, Command: 2}
	pin := &scriptedPin{levels: necFrameLevels(cmd)}

	necDec := protocol.Erase[nec.Command](nec.New(rate))
	rc5Dec := protocol.Erase[rc5.Command](rc5.New(rate))
	m, err := NewMultiReceiver(pin, necDec, rc5Dec)
	require.NoError(t, err)

	var results []protocol.AnyResult
	for range pin.levels {
		results, _ = m.Poll()
		if results != nil && results[0].Status == protocol.Done {
			break
		}
	}
	require.NotNil(t, results)
	require.Equal(t, protocol.Done, results[0].Status)
	decoded, ok := results[0].Cmd.(nec.Command)
	require.True(t, ok)
	assert.Equal(t, cmd.Address, decoded.Address)
	assert.Equal(t, protocol.Idle, results[1].Status)
}

func TestPollRemoteControlResolvesMappedButton(t *testing.T) {
	cmd := nec.Command{Address: 0x12, Command: 0x0C}
	pin := &scriptedPin{levels: necFrameLevels(cmd)}
	r := NewPeriodic[nec.Command](nec.New(rate), pin)
	table := remote.NewTable[nec.Command]("Acme TV-100", "TV", 0x12, remote.NECCode, map[uint8]remote.Button{
		0x0C: remote.ButtonPower,
	})

	var btn remote.Button
	var ok bool
	for range pin.levels {
		btn, ok, _ = PollRemoteControl(r, table)
		if ok {
			break
		}
	}
	require.True(t, ok)
	assert.Equal(t, remote.ButtonPower, btn)
}
