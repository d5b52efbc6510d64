// Package rblue wires one host state machine to one controller
// shim over an in-process transport, and exposes the tagged-union
// application command surface that drives them — the orchestration
// layer the original's create_new_hci and BTCmd played in a single
// binary, elevated here into a reusable package.
package rblue

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/greedyhao/rblue/baseband"
	"github.com/greedyhao/rblue/host"
	"github.com/greedyhao/rblue/transport"
)

// Link owns one host, one controller, and the duplex connecting
// them, each side driven on its own goroutine.
type Link struct {
	ID uuid.UUID

	Host       *host.Host
	Controller *baseband.Controller

	cmds chan AppCmd
	done chan struct{}
}

// NewLink constructs a fully wired link and starts its host and
// controller goroutines. log may be nil.
func NewLink(log *logrus.Entry) *Link {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	duplex := transport.NewDuplex(32)
	hostEnd := duplex.HostEnd()
	ctrlEnd := duplex.ControllerEnd()

	l := &Link{
		ID:   duplex.ID,
		cmds: make(chan AppCmd, 32),
		done: make(chan struct{}),
	}
	linkLog := log.WithField("link", l.ID)
	l.Host = host.NewHost(func(p []byte) { hostEnd.Send(p) }, linkLog)
	l.Controller = baseband.NewController(0, func(p []byte) { ctrlEnd.Send(p) }, linkLog)

	go l.runHost(hostEnd)
	go l.runController(ctrlEnd)
	return l
}

// Submit enqueues an application command for the host's event loop.
func (l *Link) Submit(cmd AppCmd) {
	l.cmds <- cmd
}

// Stop shuts down both goroutines.
func (l *Link) Stop() {
	close(l.done)
}

func (l *Link) runHost(end transport.Endpoint) {
	for {
		select {
		case packet := <-end.Chan():
			l.Host.RecvPacket(packet)
		case cmd := <-l.cmds:
			l.exec(cmd)
		case <-l.done:
			return
		}
	}
}

func (l *Link) runController(end transport.Endpoint) {
	for {
		select {
		case packet := <-end.Chan():
			l.Controller.RecvHostPacket(packet)
		case <-l.done:
			return
		}
	}
}

func (l *Link) exec(cmd AppCmd) {
	switch c := cmd.(type) {
	case AppCmdOn:
		l.Host.PowerControl(true)
	case AppCmdOff:
		l.Host.PowerControl(false)
	case AppCmdConnect:
		l.Host.Connect(c.Address)
	case AppCmdLEConnect:
		l.Host.LEConnect(c.Address)
	case AppCmdLEAdvertise:
		l.Host.GAPAdvertisementsEnable(c.Enable)
	}
}
