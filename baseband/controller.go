package baseband

import (
	"github.com/sirupsen/logrus"

	"github.com/greedyhao/rblue/hci"
)

// SendFunc is the injectable outbound path the core never assumes a
// concrete transport for: a controller hands it a fully framed
// packet and forgets about it.
type SendFunc func(packet []byte)

// Controller is the minimal controller/baseband state the core
// tracks: a single power_on flag, enough to let Reset exercise a
// visible side effect.
type Controller struct {
	ID      uint8
	PowerOn bool

	send SendFunc
	log  *logrus.Entry
}

// NewController wires a controller to its outbound packet sink. log
// may be nil, in which case logrus's standard logger is used at the
// default level.
func NewController(id uint8, send SendFunc, log *logrus.Entry) *Controller {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Controller{ID: id, send: send, log: log.WithField("controller", id)}
}

// RecvHostPacket decodes a framed host→controller packet and
// dispatches its Command header through the OGF/OCF table. Packets
// shorter than a full command header are dropped silently.
func (c *Controller) RecvHostPacket(packet []byte) {
	typ, body, err := hci.ParsePacket(packet)
	if err != nil || typ != hci.TypCommand || len(body) < 3 {
		return
	}
	op := hci.Opcode(uint16(body[0]) | uint16(body[1])<<8)
	ogf, ocf := hci.Unpack(op)
	row := int(ogf) - 1
	col := int(ocf) - 1
	c.log.WithFields(logrus.Fields{"ogf": ogf, "ocf": ocf, "opcode": op}).Debug("bb recv")

	if row < 0 || row >= len(Table) || col < 0 || col >= len(Table[row]) {
		return
	}
	entry := Table[row][col]
	if entry == nil {
		return
	}
	entry.Handle(c, op)
}

// sendEvent frames and emits a controller-originated event.
func (c *Controller) sendEvent(code hci.EventCode, params []byte) {
	c.log.WithFields(logrus.Fields{"code": code}).Debug("bb send")
	c.send(hci.BuildEvent(code, params))
}

// returnMarshaler is satisfied by every return-parameter record in
// package hci; bbSendEvent uses it to stay generic over the payload
// the way the original's bb_send_event<T: RBlueToU8Array> does.
type returnMarshaler interface {
	Marshal() []byte
}

func bbSendEvent[T returnMarshaler](c *Controller, op hci.Opcode, ret T) {
	params := hci.BuildCommandComplete(5, op, ret.Marshal())
	c.sendEvent(hci.EvtCommandComplete, params)
}
