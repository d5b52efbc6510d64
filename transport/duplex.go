package transport

import "github.com/google/uuid"

// Duplex is a bounded, single-writer-per-direction byte queue pair
// connecting one host to one controller in-process, standing in for
// the framed transport a real radio link would provide.
type Duplex struct {
	ID uuid.UUID

	hostToController chan []byte
	controllerToHost chan []byte
}

// NewDuplex allocates a duplex with the given per-direction buffer
// depth.
func NewDuplex(buffer int) *Duplex {
	return &Duplex{
		ID:               uuid.New(),
		hostToController: make(chan []byte, buffer),
		controllerToHost: make(chan []byte, buffer),
	}
}

// Endpoint is one side's view of a Duplex: a send direction and a
// receive direction, each the other's opposite channel.
type Endpoint struct {
	send chan<- []byte
	recv <-chan []byte
}

// HostEnd returns the host-side view: writes go toward the
// controller, reads come from it.
func (d *Duplex) HostEnd() Endpoint {
	return Endpoint{send: d.hostToController, recv: d.controllerToHost}
}

// ControllerEnd returns the controller-side view.
func (d *Duplex) ControllerEnd() Endpoint {
	return Endpoint{send: d.controllerToHost, recv: d.hostToController}
}

// Send enqueues a framed packet, blocking only if the bounded queue
// is full. The bounded-queue discipline applies to the reader, not
// the writer.
func (e Endpoint) Send(packet []byte) { e.send <- packet }

// TryReceive is a non-blocking read: it never suspends the caller's
// event loop waiting for a packet that may never come.
func (e Endpoint) TryReceive() ([]byte, bool) {
	select {
	case p := <-e.recv:
		return p, true
	default:
		return nil, false
	}
}

// Chan exposes the receive direction for use in a select statement —
// the native Go equivalent of multiplexing several try_receive
// sources on one thread without busy-polling.
func (e Endpoint) Chan() <-chan []byte { return e.recv }
