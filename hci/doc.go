// Package hci implements the bit-exact wire codec for the Host
// Controller Interface: opcode packing, packet framing, and the
// command/return parameter records exchanged between a host and a
// controller.
//
// Nothing in this package knows about goroutines, channels, or the
// transport that carries the bytes it produces — it only serializes
// and deserializes.
package hci
