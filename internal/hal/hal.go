// Package hal provides concrete GPIO adapters binding the library's two
// external collaborator interfaces (sample.PinInput, sender.CarrierOutput)
// to real hardware, so cmd/* binaries don't have to. The core packages
// never import hal; the dependency points inward.
//
// An IR decode/encode library only ever touches one GPIO input (the
// receiver's demodulated line) and one GPIO or PWM output (the carrier
// gate), never a bus — I2C, SPI, and Serial are out of scope, and so is
// any general-purpose multi-pin provider abstraction; each backend below
// exposes exactly the two lines the library needs, nothing more.
package hal
