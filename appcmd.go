package rblue

import "github.com/greedyhao/rblue/hci"

// AppCmd is the tagged union of high-level requests an application
// command source submits to a Link: On, Off, Connect, LEConnect,
// LEAdvertise. Delivery is at-least-once from the source's
// perspective; Link and the host it drives treat every delivery as
// idempotent.
type AppCmd interface {
	isAppCmd()
}

// AppCmdOn powers the stack on.
type AppCmdOn struct{}

func (AppCmdOn) isAppCmd() {}

// AppCmdOff requests power-down. The core defines no teardown
// sequence; see host.Host.PowerControl.
type AppCmdOff struct{}

func (AppCmdOff) isAppCmd() {}

// AppCmdConnect requests a Classic connection to Address.
type AppCmdConnect struct {
	Address hci.Address
}

func (AppCmdConnect) isAppCmd() {}

// AppCmdLEConnect requests an LE connection to Address.
type AppCmdLEConnect struct {
	Address hci.Address
}

func (AppCmdLEConnect) isAppCmd() {}

// AppCmdLEAdvertise toggles the GAP Enabled bit.
type AppCmdLEAdvertise struct {
	Enable bool
}

func (AppCmdLEAdvertise) isAppCmd() {}
