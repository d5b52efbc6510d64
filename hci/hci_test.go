package hci

import (
	"bytes"
	"testing"
)

func TestOpcodePackUnpack(t *testing.T) {
	cases := []struct {
		ogf  OGF
		ocf  uint16
		want Opcode
	}{
		{LinkControl, 0, 0x0400},
		{ControllerAndBaseband, 3, 0x0C03},
		{LEController, 0x000D, 0x200D},
	}
	for _, c := range cases {
		got := Pack(c.ogf, c.ocf)
		if got != c.want {
			t.Errorf("Pack(%d,%d) = 0x%04X, want 0x%04X", c.ogf, c.ocf, got, c.want)
		}
		gogf, gocf := Unpack(got)
		if gogf != c.ogf || gocf != c.ocf {
			t.Errorf("Unpack(0x%04X) = (%d,%d), want (%d,%d)", got, gogf, gocf, c.ogf, c.ocf)
		}
	}
}

func TestOpcodeBootSequence(t *testing.T) {
	want := []Opcode{
		0x0C03, 0x1002, 0x1003, 0x0C01, 0x2001, 0x2002, 0x1005, 0x2003, 0x1009,
	}
	got := []Opcode{
		OpReset,
		OpReadLocalSupportedCommands,
		OpReadLocalSupportedFeatures,
		OpSetEventMask,
		OpLESetEventMask,
		OpLEReadBufferSize,
		OpReadBufferSize,
		OpLEReadLocalSupportedFeatures,
		OpReadBDAddr,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("boot opcode %d = 0x%04X, want 0x%04X", i, got[i], want[i])
		}
	}
}

func TestResetHandlerFraming(t *testing.T) {
	cmd := BuildCommand(OpReset, nil)
	want := []byte{0x01, 0x03, 0x0C, 0x00}
	if !bytes.Equal(cmd, want) {
		t.Fatalf("reset command = % X, want % X", cmd, want)
	}

	ret := &StatusReturn{Status: 0}
	cc := BuildCommandComplete(5, OpReset, ret.Marshal())
	evt := BuildEvent(EvtCommandComplete, cc)
	want = []byte{0x04, 0x0E, 0x04, 0x05, 0x03, 0x0C, 0x00}
	if !bytes.Equal(evt, want) {
		t.Fatalf("reset event = % X, want % X", evt, want)
	}
}

func TestCommandCompleteRoundTrip(t *testing.T) {
	body := BuildCommandComplete(5, OpReset, []byte{0x00})
	var cc CommandCompleteParams
	if err := cc.Unmarshal(body); err != nil {
		t.Fatal(err)
	}
	if cc.NumHCICommandPackets != 5 || cc.Opcode != OpReset || !bytes.Equal(cc.ReturnParameters, []byte{0x00}) {
		t.Fatalf("unexpected decode: %+v", cc)
	}
}

func TestLESetAdvertisingParametersMarshal(t *testing.T) {
	c := LESetAdvertisingParameters{
		AdvertisingIntervalMin:  0x0020,
		AdvertisingIntervalMax:  0x0020,
		AdvertisingType:         0,
		OwnAddressType:          PublicDevice,
		PeerAddressType:         PublicDevice.Reduce(),
		PeerAddress:             Address{1, 2, 3, 4, 5, 6},
		AdvertisingChannelMap:   0x07,
		AdvertisingFilterPolicy: 0,
	}
	if c.Len() != 15 {
		t.Fatalf("len = %d, want 15", c.Len())
	}
	b := Marshal(c)
	if len(b) != 15 {
		t.Fatalf("marshaled len = %d, want 15", len(b))
	}
	if b[0] != 0x20 || b[1] != 0x00 || b[13] != 0x07 {
		t.Fatalf("unexpected bytes: % X", b)
	}
	if !bytes.Equal(b[7:13], []byte{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("peer address mismatch: % X", b[7:13])
	}
}

func TestAddressTypeReduce(t *testing.T) {
	cases := []struct {
		in   AddressType
		want AddressType2
	}{
		{PublicDevice, PublicDeviceOrPublicIdentity},
		{PublicIdentity, PublicDeviceOrPublicIdentity},
		{RandomDevice, RandomDeviceOrRandomIdentity},
		{RandomIdentity, RandomDeviceOrRandomIdentity},
	}
	for _, c := range cases {
		if got := c.in.Reduce(); got != c.want {
			t.Errorf("%d.Reduce() = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSupportedCommandsReturnRoundTrip(t *testing.T) {
	var bitmap [64]byte
	bitmap[5] = 0x80
	bitmap[14] = 0x10
	ret := ReadLocalSupportedCommandsReturn{Status: 0, SupportedCommands: bitmap}
	raw := make([]byte, 65)
	raw[0] = ret.Status
	copy(raw[1:], bitmap[:])

	var got ReadLocalSupportedCommandsReturn
	if err := got.Unmarshal(raw); err != nil {
		t.Fatal(err)
	}
	if got.SupportedCommands != bitmap {
		t.Fatalf("round trip mismatch")
	}
}

func TestCommandStatusEPUnmarshal(t *testing.T) {
	var ep CommandStatusEP
	b := []byte{0x00, 0x01, 0x03, 0x0C}
	if err := ep.Unmarshal(b); err != nil {
		t.Fatal(err)
	}
	if ep.Status != 0 || ep.NumHCICommandPackets != 1 || ep.CommandOpcode != OpReset {
		t.Fatalf("unexpected decode: %+v", ep)
	}
}

func TestNumberOfCompletedPacketsEPUnmarshal(t *testing.T) {
	var ep NumberOfCompletedPacketsEP
	b := []byte{0x02, 0x10, 0x00, 0x03, 0x00, 0x20, 0x00, 0x01, 0x00}
	if err := ep.Unmarshal(b); err != nil {
		t.Fatal(err)
	}
	if ep.NumberOfHandles != 2 || len(ep.Packets) != 2 {
		t.Fatalf("unexpected decode: %+v", ep)
	}
	if ep.Packets[0].ConnectionHandle != 0x0010 || ep.Packets[0].NumOfCompletedPkts != 3 {
		t.Fatalf("packet 0 = %+v", ep.Packets[0])
	}
	if ep.Packets[1].ConnectionHandle != 0x0020 || ep.Packets[1].NumOfCompletedPkts != 1 {
		t.Fatalf("packet 1 = %+v", ep.Packets[1])
	}
}

func TestLEMetaEPUnmarshal(t *testing.T) {
	var ep LEMetaEP
	b := []byte{0x01, 0xAA, 0xBB}
	if err := ep.Unmarshal(b); err != nil {
		t.Fatal(err)
	}
	if ep.SubeventCode != 0x01 || !bytes.Equal(ep.Parameters, []byte{0xAA, 0xBB}) {
		t.Fatalf("unexpected decode: %+v", ep)
	}
}
