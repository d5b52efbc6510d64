package host

import (
	"testing"

	"github.com/greedyhao/rblue/hci"
)

func ackCommandComplete(h *Host, op hci.Opcode, returnParams []byte) {
	cc := hci.BuildCommandComplete(5, op, returnParams)
	h.RecvPacket(hci.BuildEvent(hci.EvtCommandComplete, cc))
}

func TestBootSequenceExactOpcodeOrder(t *testing.T) {
	var sent []hci.Opcode
	h := NewHost(func(p []byte) {
		typ, body, _ := hci.ParsePacket(p)
		if typ != hci.TypCommand {
			return
		}
		op := hci.Opcode(uint16(body[0]) | uint16(body[1])<<8)
		sent = append(sent, op)
	}, nil)

	h.PowerControl(true)

	want := []hci.Opcode{
		0x0C03, 0x1002, 0x1003, 0x0C01, 0x2001, 0x2002, 0x1005, 0x2003, 0x1009,
	}
	if len(sent) != 1 {
		t.Fatalf("after power on, expected exactly 1 outbound command, got %d", len(sent))
	}
	if sent[0] != want[0] {
		t.Fatalf("sent[0] = 0x%04X, want 0x%04X", sent[0], want[0])
	}

	for i := 1; i < len(want); i++ {
		ackCommandComplete(h, sent[i-1], []byte{0x00})
		if len(sent) != i+1 {
			t.Fatalf("after ack %d, expected %d outbound commands, got %d", i, i+1, len(sent))
		}
		if sent[i] != want[i] {
			t.Fatalf("sent[%d] = 0x%04X, want 0x%04X", i, sent[i], want[i])
		}
	}

	// Final ack (Read BD Addr) completes boot.
	ackCommandComplete(h, sent[len(sent)-1], (&hci.ReadBDAddrReturn{Status: 0, BDAddr: hci.Address{1, 2, 3, 4, 5, 6}}).Marshal())
	if h.State() != Working {
		t.Fatalf("state = %v, want Working", h.State())
	}
	addr, known := h.BDAddr()
	if !known || addr != (hci.Address{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("bd addr = %v known=%v", addr, known)
	}
}

func TestDuplicateConnectDiscarded(t *testing.T) {
	var sent int
	h := NewHost(func(p []byte) { sent++ }, nil)
	addr := hci.Address{1, 0, 0, 0, 0, 0}

	h.Connect(addr)
	if sent != 1 {
		t.Fatalf("first connect: sent = %d, want 1", sent)
	}
	h.Connect(addr)
	if sent != 1 {
		t.Fatalf("duplicate connect: sent = %d, want still 1", sent)
	}
}

func TestGAPReconcileBothToggles(t *testing.T) {
	var sent []hci.Opcode
	h := NewHost(func(p []byte) {
		typ, body, _ := hci.ParsePacket(p)
		if typ != hci.TypCommand {
			return
		}
		sent = append(sent, hci.Opcode(uint16(body[0])|uint16(body[1])<<8))
	}, nil)
	// Skip boot; exercise the GAP engine directly against Off/Working-
	// independent state, as scenario 5 describes.
	h.state = Working

	h.GAPAdvertisementsSetParams(0x0020, 0x0020, 0, hci.PublicDevice, hci.PublicDevice, hci.Address{}, 0x07, 0)
	if len(sent) != 1 || sent[0] != hci.OpLESetAdvertisingParameters {
		t.Fatalf("after set params, sent = %v", sent)
	}
	if h.GAPState()&Active != 0 {
		t.Fatalf("expected Active still clear")
	}

	h.GAPAdvertisementsEnable(true)
	if len(sent) != 2 || sent[1] != hci.OpLESetAdvertisingEnable {
		t.Fatalf("after enable, sent = %v", sent)
	}
	if h.GAPState()&Active == 0 {
		t.Fatalf("expected Active set")
	}

	h.GAPAdvertisementsSetParams(0x0020, 0x0020, 0, hci.PublicDevice, hci.PublicDevice, hci.Address{}, 0x07, 0)
	want := []hci.Opcode{
		hci.OpLESetAdvertisingParameters, hci.OpLESetAdvertisingEnable,
		hci.OpLESetAdvertisingEnable, hci.OpLESetAdvertisingParameters, hci.OpLESetAdvertisingEnable,
	}
	if len(sent) != len(want) {
		t.Fatalf("sent = %v, want %d entries", sent, len(want))
	}
	for i, op := range want {
		if sent[i] != op {
			t.Fatalf("sent[%d] = %v, want %v", i, sent[i], op)
		}
	}
	if h.GAPState()&Active == 0 || h.GAPState()&Enabled == 0 {
		t.Fatalf("expected final state Active ∧ Enabled, got %v", h.GAPState())
	}
}

func TestGAPDisableWithNoPendingUpdateClearsActive(t *testing.T) {
	var sent []hci.Opcode
	h := NewHost(func(p []byte) {
		typ, body, _ := hci.ParsePacket(p)
		if typ != hci.TypCommand {
			return
		}
		sent = append(sent, hci.Opcode(uint16(body[0])|uint16(body[1])<<8))
	}, nil)
	h.state = Working

	h.GAPAdvertisementsSetParams(0x0020, 0x0020, 0, hci.PublicDevice, hci.PublicDevice, hci.Address{}, 0x07, 0)
	h.GAPAdvertisementsEnable(true)
	if h.GAPState()&Active == 0 {
		t.Fatalf("expected Active set after enable")
	}

	// No pending update bit here, unlike TestGAPReconcileBothToggles:
	// disabling alone must still stop advertising.
	h.GAPAdvertisementsEnable(false)
	if h.GAPState()&Active != 0 {
		t.Fatalf("expected Active cleared after disable, got %v", h.GAPState())
	}
	if len(sent) == 0 || sent[len(sent)-1] != hci.OpLESetAdvertisingEnable {
		t.Fatalf("expected LE Set Advertising Enable to be sent last, sent = %v", sent)
	}
}
