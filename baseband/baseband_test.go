package baseband

import (
	"bytes"
	"testing"

	"github.com/greedyhao/rblue/hci"
)

func TestComputeSupportedCommandsBitExact(t *testing.T) {
	bitmap := ComputeSupportedCommands()
	for _, row := range Table {
		for _, e := range row {
			if e == nil {
				continue
			}
			if bitmap[e.Byte]&e.Mask != e.Mask {
				t.Errorf("bit (%d,0x%02X) not set", e.Byte, e.Mask)
			}
		}
	}
	if bitmap[5] != bitSetEventMask|bitReset {
		t.Errorf("byte 5 = 0x%02X, want 0x%02X", bitmap[5], bitSetEventMask|bitReset)
	}
	if bitmap[14] != bitReadLocalSupportedCommands|bitReadLocalSupportedFeatures|bitReadBufferSize {
		t.Errorf("byte 14 = 0x%02X", bitmap[14])
	}
}

func TestResetHandlerEmitsExactEvent(t *testing.T) {
	var got []byte
	c := NewController(0, func(p []byte) { got = p }, nil)
	c.RecvHostPacket([]byte{0x01, 0x03, 0x0C, 0x00})

	want := []byte{0x04, 0x0E, 0x04, 0x05, 0x03, 0x0C, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("reset event = % X, want % X", got, want)
	}
}

func TestUnknownOpcodeProducesNoEvent(t *testing.T) {
	fired := false
	c := NewController(0, func(p []byte) { fired = true }, nil)
	// LinkControl row is nil entirely.
	c.RecvHostPacket(hci.BuildCommand(hci.Pack(hci.LinkControl, 1), nil))
	if fired {
		t.Fatalf("expected no event for an unhandled opcode")
	}
}

func TestShortPacketDropped(t *testing.T) {
	fired := false
	c := NewController(0, func(p []byte) { fired = true }, nil)
	c.RecvHostPacket([]byte{0x01})
	if fired {
		t.Fatalf("expected no event for a short packet")
	}
}
