package transport

import "testing"

func TestDuplexTryReceiveNonBlocking(t *testing.T) {
	d := NewDuplex(4)
	host := d.HostEnd()
	ctrl := d.ControllerEnd()

	if _, ok := ctrl.TryReceive(); ok {
		t.Fatalf("expected no packet before any Send")
	}

	host.Send([]byte{0x01, 0x02})
	p, ok := ctrl.TryReceive()
	if !ok {
		t.Fatalf("expected a packet")
	}
	if len(p) != 2 || p[0] != 0x01 || p[1] != 0x02 {
		t.Fatalf("unexpected packet: % X", p)
	}

	if _, ok := ctrl.TryReceive(); ok {
		t.Fatalf("expected queue to be drained")
	}
}

func TestDuplexEndsAreOpposite(t *testing.T) {
	d := NewDuplex(1)
	ctrl := d.ControllerEnd()
	host := d.HostEnd()

	ctrl.Send([]byte{0xAA})
	p, ok := host.TryReceive()
	if !ok || len(p) != 1 || p[0] != 0xAA {
		t.Fatalf("controller->host delivery failed: %v %v", p, ok)
	}
}
