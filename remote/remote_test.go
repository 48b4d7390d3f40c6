package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infraredgo/infrared/protocol/nec"
	"github.com/infraredgo/infrared/protocol/rc5"
)

func tvTable() *Table[nec.Command] {
	return NewTable[nec.Command]("Acme TV-100", "TV", 0x12, NECCode, map[uint8]Button{
		0x00: ButtonDigit0,
		0x01: ButtonDigit1,
		0x0C: ButtonPower,
		0x0D: ButtonVolumeUp,
	})
}

func TestTableLookupMapsKnownCode(t *testing.T) {
	table := tvTable()
	btn, ok := table.Lookup(nec.Command{Address: 0x12, Command: 0x0C})
	assert.True(t, ok)
	assert.Equal(t, ButtonPower, btn)
}

func TestTableLookupRejectsWrongAddress(t *testing.T) {
	table := tvTable()
	btn, ok := table.Lookup(nec.Command{Address: 0x99, Command: 0x0C})
	assert.False(t, ok)
	assert.Equal(t, Unmapped, btn)
}

func TestTableLookupRejectsUnmappedCode(t *testing.T) {
	table := tvTable()
	btn, ok := table.Lookup(nec.Command{Address: 0x12, Command: 0xFE})
	assert.False(t, ok)
	assert.Equal(t, Unmapped, btn)
}

func TestRC5CodeExtractor(t *testing.T) {
	addr, code := RC5Code(rc5.Command{Address: 5, Command: 10})
	assert.Equal(t, uint16(5), addr)
	assert.Equal(t, uint8(10), code)
}

func TestToggleTrackerDistinguishesRepeatFromNewPress(t *testing.T) {
	var tr ToggleTracker

	assert.False(t, tr.Observe(5, false))
	assert.True(t, tr.Observe(5, false))
	assert.False(t, tr.Observe(5, true))
	assert.True(t, tr.Observe(5, true))
	assert.False(t, tr.Observe(7, true))
}

func TestToggleTrackerResetClearsRepeatState(t *testing.T) {
	var tr ToggleTracker
	tr.Observe(5, false)
	tr.Reset()
	assert.False(t, tr.Observe(5, false))
}

func TestButtonStringUnmappedDefault(t *testing.T) {
	assert.Equal(t, "unmapped", Unmapped.String())
	assert.Equal(t, "power", ButtonPower.String())
}
