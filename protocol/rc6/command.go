// Package rc6 implements the RC-6 mode-0 bi-phase protocol: a 2666us/889us
// leader, then 1 start bit, 3 mode bits, a double-width toggle bit, and an
// 8-bit address plus 8-bit command, all bi-phase encoded at a 444us
// half-bit cell (888us for the toggle bit).
package rc6

// Command is a decoded/encoded RC-6 mode-0 frame.
type Command struct {
	Address uint8
	Command uint8
	Mode    uint8 // 3 bits
	Toggle  bool
	Start   bool
}
