package hci

// OGF is the Opcode Group Field, the high six bits of an Opcode.
type OGF uint8

const (
	LinkControl OGF = iota + 1
	LinkPolicy
	ControllerAndBaseband
	InformationalParam
	StatusParam
	TestingCommand
	// OGF 7 is reserved; the table has no row content for it.
	LEController = OGF(8)
)

// Opcode is the 16-bit HCI command opcode: OGF in bits 10..15, OCF in
// bits 0..9.
type Opcode uint16

// Pack builds an Opcode from its OGF and OCF halves.
func Pack(ogf OGF, ocf uint16) Opcode {
	return Opcode(uint16(ogf)<<10 | (ocf & 0x03FF))
}

// Unpack splits an Opcode back into OGF and OCF.
func Unpack(op Opcode) (OGF, uint16) {
	return OGF(op >> 10), uint16(op) & 0x03FF
}

func (op Opcode) OGF() OGF    { return OGF(op >> 10) }
func (op Opcode) OCF() uint16 { return uint16(op) & 0x03FF }

// Concrete opcodes for every command the controller dispatch table
// and the host boot sequence cover.
const (
	OpCreateConnection Opcode = Opcode(uint16(LinkControl)<<10 | 0x0005)

	OpSetEventMask Opcode = Opcode(uint16(ControllerAndBaseband)<<10 | 0x0001)
	OpReset        Opcode = Opcode(uint16(ControllerAndBaseband)<<10 | 0x0003)

	OpReadLocalSupportedCommands Opcode = Opcode(uint16(InformationalParam)<<10 | 0x0002)
	OpReadLocalSupportedFeatures Opcode = Opcode(uint16(InformationalParam)<<10 | 0x0003)
	OpReadBufferSize             Opcode = Opcode(uint16(InformationalParam)<<10 | 0x0005)
	OpReadBDAddr                 Opcode = Opcode(uint16(InformationalParam)<<10 | 0x0009)

	OpLESetEventMask                             Opcode = Opcode(uint16(LEController)<<10 | 0x0001)
	OpLEReadBufferSize                           Opcode = Opcode(uint16(LEController)<<10 | 0x0002)
	OpLEReadLocalSupportedFeatures                Opcode = Opcode(uint16(LEController)<<10 | 0x0003)
	OpLESetAdvertisingParameters                  Opcode = Opcode(uint16(LEController)<<10 | 0x0006)
	OpLEReadAdvertisingPhysicalChannelTxPower     Opcode = Opcode(uint16(LEController)<<10 | 0x0007)
	OpLESetAdvertisingData                        Opcode = Opcode(uint16(LEController)<<10 | 0x0008)
	OpLESetScanResponseData                       Opcode = Opcode(uint16(LEController)<<10 | 0x0009)
	OpLESetAdvertisingEnable                      Opcode = Opcode(uint16(LEController)<<10 | 0x000A)
	OpLECreateConnection                          Opcode = Opcode(uint16(LEController)<<10 | 0x000D)
)

// opName is a lookup table for logging, covering the opcodes this
// core actually handles.
var opName = map[Opcode]string{
	OpCreateConnection: "Create Connection",

	OpSetEventMask: "Set Event Mask",
	OpReset:        "Reset",

	OpReadLocalSupportedCommands: "Read Local Supported Commands",
	OpReadLocalSupportedFeatures: "Read Local Supported Features",
	OpReadBufferSize:             "Read Buffer Size",
	OpReadBDAddr:                 "Read BD ADDR",

	OpLESetEventMask:                           "LE Set Event Mask",
	OpLEReadBufferSize:                         "LE Read Buffer Size",
	OpLEReadLocalSupportedFeatures:             "LE Read Local Supported Features",
	OpLESetAdvertisingParameters:               "LE Set Advertising Parameters",
	OpLEReadAdvertisingPhysicalChannelTxPower:  "LE Read Advertising Physical Channel Tx Power",
	OpLESetAdvertisingData:                     "LE Set Advertising Data",
	OpLESetScanResponseData:                    "LE Set Scan Response Data",
	OpLESetAdvertisingEnable:                   "LE Set Advertising Enable",
	OpLECreateConnection:                       "LE Create Connection",
}

func (op Opcode) String() string {
	if s, ok := opName[op]; ok {
		return s
	}
	return "Unknown Opcode"
}
