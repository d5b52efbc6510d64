// Package transport implements an in-process framed transport: a
// duplex pair of byte-slice queues standing in for the real radio
// link between a host and a controller, used to drive both sides of
// a simulated device in-process.
package transport
