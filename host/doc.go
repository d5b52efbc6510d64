// Package host implements the host side of the HCI link: the
// boot-time initialization sub-state machine, the connection table,
// the outbound command encoder, and — in gap.go — the LE advertising
// reconcile loop.
package host
