package remote

// CodeOf extracts the (address, command code) pair a Table looks up from a
// decoded protocol command. This package provides one for each protocol's
// Command type (see codes.go).
type CodeOf[Cmd any] func(cmd Cmd) (address uint16, code uint8)

// Table is a compile-time remote-control record: model name, device type,
// the protocol address this remote answers to, and a lookup table from
// protocol command code to logical Button (§4.8).
type Table[Cmd any] struct {
	Name       string
	DeviceType string
	Address    uint16

	codeOf  CodeOf[Cmd]
	buttons map[uint8]Button
}

// NewTable constructs a Table for the given protocol Command type. buttons
// maps each raw protocol command code this remote uses to its logical
// Button; codes absent from the map resolve to Unmapped.
func NewTable[Cmd any](name, deviceType string, address uint16, codeOf CodeOf[Cmd], buttons map[uint8]Button) *Table[Cmd] {
	return &Table[Cmd]{
		Name:       name,
		DeviceType: deviceType,
		Address:    address,
		codeOf:     codeOf,
		buttons:    buttons,
	}
}

// Lookup composes the three steps of §4.8: extract (address, code) from
// cmd, check the address against the Table's declared address, then look up
// the code. ok is false whenever the address doesn't match or the code is
// not in the table; Button is Unmapped in that case.
func (t *Table[Cmd]) Lookup(cmd Cmd) (button Button, ok bool) {
	address, code := t.codeOf(cmd)
	if address != t.Address {
		return Unmapped, false
	}
	b, found := t.buttons[code]
	if !found {
		return Unmapped, false
	}
	return b, true
}
