package host

import (
	"github.com/sirupsen/logrus"

	"github.com/greedyhao/rblue/hci"
)

// SendFunc is the injectable outbound path toward the framed
// transport. The host never assumes a concrete transport.
type SendFunc func(packet []byte)

// Host is the host-side HCI state machine: connection table, local
// address, boot sub-state, and LE GAP state.
type Host struct {
	state    State
	subState SubState

	send SendFunc
	log  *logrus.Entry

	connections []Connection

	bdAddr      hci.Address
	bdAddrKnown bool

	scanEnable ScanEnable

	gap gapState
}

// NewHost wires a host to its outbound packet sink. log may be nil.
func NewHost(send SendFunc, log *logrus.Entry) *Host {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Host{
		send:       send,
		log:        log.WithField("component", "host"),
		scanEnable: NoScansEnable,
		gap:        newGapState(),
	}
}

// State reports the current coarse power state.
func (h *Host) State() State { return h.state }

// BDAddr returns the local address once it has been read from the
// controller during boot.
func (h *Host) BDAddr() (hci.Address, bool) { return h.bdAddr, h.bdAddrKnown }

// ScanEnable reports the host-local scan mode set on power-on.
func (h *Host) ScanEnable() ScanEnable { return h.scanEnable }

// PowerControl is the single entry point for power requests. Only
// On is implemented by the core; Off is accepted by the application
// command surface (see package rblue) but the core defines no
// teardown sequence.
func (h *Host) PowerControl(on bool) {
	if !on {
		return
	}
	if h.state != Off {
		return
	}
	h.scanEnable = InquiryEnablePageEnable
	h.state = Initializing
	h.subState = SendReset
	h.run()
}

// RecvPacket is the single inbound entry point: decode the framed
// packet, dispatch it by type, then advance whichever engine is
// active.
func (h *Host) RecvPacket(packet []byte) {
	typ, body, err := hci.ParsePacket(packet)
	if err != nil {
		h.log.Debug("dropped malformed packet")
		return
	}
	switch typ {
	case hci.TypCommand:
		h.log.WithField("bytes", len(body)).Debug("host recv CE")
	case hci.TypACL:
		h.log.WithField("bytes", len(body)).Debug("host recv ACL")
	case hci.TypEvent:
		h.recvEventData(body)
	default:
		h.log.Debug("dropped unknown packet type")
		return
	}
	h.run()
}

func (h *Host) recvEventData(body []byte) {
	code, params, err := hci.ParseEventHeader(body)
	if err != nil {
		h.log.Debug("dropped malformed event")
		return
	}
	if code != hci.EvtCommandComplete {
		h.log.WithField("code", code).Debug("event logged and ignored")
		return
	}
	var cc hci.CommandCompleteParams
	if err := cc.Unmarshal(params); err != nil {
		h.log.Debug("dropped malformed command complete")
		return
	}
	if cc.Opcode == hci.OpReadBDAddr {
		var ret hci.ReadBDAddrReturn
		if ret.Unmarshal(cc.ReturnParameters) == nil {
			h.bdAddr = ret.BDAddr
			h.bdAddrKnown = true
		}
	}
	if h.state != Working {
		h.initProcessEvent(cc.Opcode)
	}
}

// run is the engine: advance the boot sequence while Initializing,
// otherwise run the GAP reconcile loop.
func (h *Host) run() {
	if h.state == Initializing {
		h.initProcess()
	} else {
		h.gapRun()
	}
}

// initProcess emits the command for the current SendX sub-state and
// advances to the paired W4SendX, or — in End — completes boot.
func (h *Host) initProcess() {
	switch h.subState {
	case SendReset:
		h.subState = W4SendReset
		h.sendCmd(hci.Reset{})
	case SendReadLocalSupportedCommands:
		h.subState = W4SendReadLocalSupportedCommands
		h.sendCmd(hci.ReadLocalSupportedCommands{})
	case SendReadLocalSupportedFeatures:
		h.subState = W4SendReadLocalSupportedFeatures
		h.sendCmd(hci.ReadLocalSupportedFeatures{})
	case SendSetEventMask:
		h.subState = W4SendSetEventMask
		h.sendCmd(hci.SetEventMask{EventMask: defaultEventMask})
	case SendLESetEventMask:
		h.subState = W4SendLESetEventMask
		h.sendCmd(hci.LESetEventMask{EventMask: defaultLEEventMask})
	case SendLEReadBufferSize:
		h.subState = W4SendLEReadBufferSize
		h.sendCmd(hci.LEReadBufferSize{})
	case SendReadBufferSize:
		h.subState = W4SendReadBufferSize
		h.sendCmd(hci.ReadBufferSize{})
	case SendLEReadLocalSupportedFeatures:
		h.subState = W4SendLEReadLocalSupportedFeatures
		h.sendCmd(hci.LEReadLocalSupportedFeatures{})
	case SendReadBDAddr:
		h.subState = W4SendReadBDAddr
		h.sendCmd(hci.ReadBDAddr{})
	case End:
		h.state = Working
		addr, _ := h.BDAddr()
		h.log.WithField("bd_addr", addr).Info("HCI init done")
	}
}

// initProcessEvent advances W4SendX → Send(X+1) iff the echoed
// opcode matches the one expected for X. A mismatch leaves the
// sub-state untouched.
func (h *Host) initProcessEvent(op hci.Opcode) {
	switch h.subState {
	case W4SendReset:
		if op == hci.OpReset {
			h.subState = SendReadLocalSupportedCommands
		}
	case W4SendReadLocalSupportedCommands:
		if op == hci.OpReadLocalSupportedCommands {
			h.subState = SendReadLocalSupportedFeatures
		}
	case W4SendReadLocalSupportedFeatures:
		if op == hci.OpReadLocalSupportedFeatures {
			h.subState = SendSetEventMask
		}
	case W4SendSetEventMask:
		if op == hci.OpSetEventMask {
			h.subState = SendLESetEventMask
		}
	case W4SendLESetEventMask:
		if op == hci.OpLESetEventMask {
			h.subState = SendLEReadBufferSize
		}
	case W4SendLEReadBufferSize:
		if op == hci.OpLEReadBufferSize {
			h.subState = SendReadBufferSize
		}
	case W4SendReadBufferSize:
		if op == hci.OpReadBufferSize {
			h.subState = SendLEReadLocalSupportedFeatures
		}
	case W4SendLEReadLocalSupportedFeatures:
		if op == hci.OpLEReadLocalSupportedFeatures {
			h.subState = SendReadBDAddr
		}
	case W4SendReadBDAddr:
		if op == hci.OpReadBDAddr {
			h.subState = End
		}
	}
}

// sendCmd frames and emits a command parameter record.
func (h *Host) sendCmd(cp hci.CmdParam) {
	h.log.WithField("opcode", cp.Opcode()).Debug("host send")
	h.send(hci.BuildCommand(cp.Opcode(), hci.Marshal(cp)))
}

// SendCmdNoParam and SendCmdWithParam are the two outbound command
// primitives the core exposes beyond the typed command structs.
func (h *Host) SendCmdNoParam(ogf hci.OGF, ocf uint16) {
	op := hci.Pack(ogf, ocf)
	h.log.WithField("opcode", op).Debug("host send")
	h.send(hci.BuildCommand(op, nil))
}

func (h *Host) SendCmdWithParam(ogf hci.OGF, ocf uint16, payload []byte) {
	op := hci.Pack(ogf, ocf)
	h.log.WithField("opcode", op).Debug("host send")
	h.send(hci.BuildCommand(op, payload))
}
