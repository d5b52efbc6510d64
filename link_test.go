package rblue

import (
	"testing"
	"time"

	"github.com/greedyhao/rblue/host"
)

func waitForState(t *testing.T, l *Link, want host.State, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if l.Host.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for state %v, last seen %v", want, l.Host.State())
}

func TestLinkBootsToWorking(t *testing.T) {
	l := NewLink(nil)
	defer l.Stop()

	l.Submit(AppCmdOn{})
	waitForState(t, l, host.Working, time.Second)

	if _, known := l.Host.BDAddr(); !known {
		t.Fatalf("expected bd addr to be known once Working")
	}
}

func TestLinkAdvertiseAfterBoot(t *testing.T) {
	l := NewLink(nil)
	defer l.Stop()

	l.Submit(AppCmdOn{})
	waitForState(t, l, host.Working, time.Second)

	l.Submit(AppCmdLEAdvertise{Enable: true})

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if l.Host.GAPState()&host.Active != 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for advertising to become active")
}
