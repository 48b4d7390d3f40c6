package sender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infraredgo/infrared/protocol/nec"
	"github.com/infraredgo/infrared/protocol/rc5"
)

const rate = 1_000_000

type fakeCarrier struct {
	enabled     bool
	enableCalls int
}

func (c *fakeCarrier) Enable() {
	c.enabled = true
	c.enableCalls++
}

func (c *fakeCarrier) Disable() { c.enabled = false }

func drive(s interface {
	Tick()
	IsBusy() bool
}, maxTicks int) int {
	ticks := 0
	for s.IsBusy() && ticks < maxTicks {
		s.Tick()
		ticks++
	}
	return ticks
}

func TestSenderLoadRejectedWhileBusy(t *testing.T) {
	c := &fakeCarrier{}
	s := New[nec.Command](nec.EncodeStandard, rate, c)
	require.True(t, s.Load(nec.Command{Address: 1, Command: 2}))
	assert.False(t, s.Load(nec.Command{Address: 3, Command: 4}))
}

func TestSenderRunsToCompletionAndIdlesCarrier(t *testing.T) {
	c := &fakeCarrier{}
	s := New[nec.Command](nec.EncodeStandard, rate, c)
	cmd := nec.Command{Address: 1, Command: 2}
	require.True(t, s.Load(cmd))

	buf := nec.EncodeStandard(cmd, rate)
	var total uint32
	for i := 0; i < buf.Len; i++ {
		total += buf.Items[i].OnTicks + buf.Items[i].OffTicks
	}

	ticks := drive(s, int(total)+10)
	assert.False(t, s.IsBusy())
	assert.False(t, c.enabled)
	assert.InDelta(t, int(total), ticks, 2)
}

func TestSenderProducesCarrierActivityForRC5(t *testing.T) {
	c := &fakeCarrier{}
	s := New[rc5.Command](rc5.Encode, rate, c)
	cmd := rc5.Command{Address: 5, Command: 10, Start1: true, Start2: true}
	require.True(t, s.Load(cmd))

	drive(s, 30000)
	assert.False(t, s.IsBusy())
	assert.Greater(t, c.enableCalls, 0)
}

func TestMultiSenderArbitratesSingleActiveProtocol(t *testing.T) {
	necCarrier := &fakeCarrier{}
	necSender := New[nec.Command](nec.EncodeStandard, rate, necCarrier)
	rc5Sender := New[rc5.Command](rc5.Encode, rate, necCarrier)

	m := NewMultiSender(
		NewProtocol("nec", necSender),
		NewProtocol("rc5", rc5Sender),
	)

	assert.True(t, m.Load("nec", nec.Command{Address: 1, Command: 2}))
	assert.False(t, m.Load("rc5", rc5.Command{Address: 1, Command: 2}))
	assert.True(t, m.IsBusy())

	drive(m, 200000)
	assert.False(t, m.IsBusy())

	assert.True(t, m.Load("rc5", rc5.Command{Address: 1, Command: 2, Start1: true, Start2: true}))
}

func TestMultiSenderRejectsUnknownProtocol(t *testing.T) {
	c := &fakeCarrier{}
	necSender := New[nec.Command](nec.EncodeStandard, rate, c)
	m := NewMultiSender(NewProtocol("nec", necSender))
	assert.False(t, m.Load("sbp", struct{}{}))
}
