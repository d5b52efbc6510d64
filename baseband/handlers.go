package baseband

import "github.com/greedyhao/rblue/hci"

// lmpSupportedFeatures is a zero-valued placeholder — the core shim
// claims no LMP features, matching the original's all-zero constant.
var lmpSupportedFeatures [8]byte

func setEventMask(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.StatusReturn{Status: 0})
}

func reset(c *Controller, op hci.Opcode) {
	c.PowerOn = false
	bbSendEvent(c, op, hci.StatusReturn{Status: 0})
}

func readLocalSupportedCommands(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.ReadLocalSupportedCommandsReturn{
		Status:            0,
		SupportedCommands: ComputeSupportedCommands(),
	})
}

func readLocalSupportedFeatures(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.ReadLocalSupportedFeaturesReturn{
		Status:     0,
		LMPFeature: lmpSupportedFeatures,
	})
}

func readBufferSize(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.ReadBufferSizeReturn{Status: 0})
}

func readBDAddr(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.ReadBDAddrReturn{Status: 0})
}

func leSetEventMask(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.StatusReturn{Status: 0})
}

func leReadBufferSize(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.LEReadBufferSizeReturn{Status: 0})
}

func leReadLocalSupportedFeatures(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.LEReadLocalSupportedFeaturesReturn{Status: 0})
}

func leSetAdvertisingParameters(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.StatusReturn{Status: 0})
}

func leReadAdvertisingPhysicalChannelTxPower(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.LEReadAdvertisingPhysicalChannelTxPowerReturn{Status: 0})
}

func leSetAdvertisingData(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.StatusReturn{Status: 0})
}

func leSetScanResponseData(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.StatusReturn{Status: 0})
}

func leSetAdvertisingEnable(c *Controller, op hci.Opcode) {
	bbSendEvent(c, op, hci.StatusReturn{Status: 0})
}
