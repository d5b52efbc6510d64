package baseband

import "github.com/greedyhao/rblue/hci"

// Entry is one live cell of the dispatch table: the (byte, mask)
// position it claims in the 64-byte supported-commands bitmap, and
// the handler it runs. The supported-commands bitmap must never set
// a bit for which no Entry exists — Table is the single source of
// both.
type Entry struct {
	Byte   uint8
	Mask   uint8
	Handle func(c *Controller, op hci.Opcode)
}

func entry(byteN, bit uint8, h func(*Controller, hci.Opcode)) *Entry {
	return &Entry{Byte: byteN, Mask: bit, Handle: h}
}

// Supported-commands bitmap positions, named after the byte/bit the
// Bluetooth Core specification assigns each command.
const (
	bitSetEventMask byte = 0x40 // byte 5
	bitReset        byte = 0x80 // byte 5

	bitReadLocalSupportedCommands byte = 0x10 // byte 14
	bitReadLocalSupportedFeatures byte = 0x20 // byte 14
	bitReadBufferSize             byte = 0x80 // byte 14

	bitReadBDAddr byte = 0x02 // byte 15

	bitLESetEventMask                         byte = 0x01 // byte 25
	bitLEReadBufferSize                       byte = 0x02 // byte 25
	bitLEReadLocalSupportedFeatures           byte = 0x04 // byte 25
	bitLESetAdvertisingParameters             byte = 0x20 // byte 25
	bitLEReadAdvertisingPhysicalChannelTxPower byte = 0x40 // byte 25
	bitLESetAdvertisingData                   byte = 0x80 // byte 25

	bitLESetScanResponseData byte = 0x01 // byte 26
	bitLESetAdvertisingEnable byte = 0x02 // byte 26
)

// Table is the 8-row, OCF-indexed dispatch table. Row index is
// OGF-1; column index is OCF-1 within that row. nil entries are
// placeholders that preserve column alignment with the Bluetooth
// specification's OCF numbering — they are not the same as a missing
// row.
var Table = [8][]*Entry{
	// 0: LinkControl — uncovered by this shim.
	nil,
	// 1: LinkPolicy — uncovered.
	nil,
	// 2: ControllerAndBaseband
	{
		entry(5, bitSetEventMask, setEventMask),
		nil,
		entry(5, bitReset, reset),
	},
	// 3: InformationalParam
	{
		nil,
		entry(14, bitReadLocalSupportedCommands, readLocalSupportedCommands),
		entry(14, bitReadLocalSupportedFeatures, readLocalSupportedFeatures),
		nil,
		entry(14, bitReadBufferSize, readBufferSize),
		nil,
		nil,
		nil,
		entry(15, bitReadBDAddr, readBDAddr),
	},
	// 4: StatusParam — uncovered.
	nil,
	// 5: TestingCommand — uncovered.
	nil,
	// 6: reserved OGF — no row content.
	nil,
	// 7: LEController
	{
		entry(25, bitLESetEventMask, leSetEventMask),
		entry(25, bitLEReadBufferSize, leReadBufferSize),
		entry(25, bitLEReadLocalSupportedFeatures, leReadLocalSupportedFeatures),
		nil,
		nil,
		entry(25, bitLESetAdvertisingParameters, leSetAdvertisingParameters),
		entry(25, bitLEReadAdvertisingPhysicalChannelTxPower, leReadAdvertisingPhysicalChannelTxPower),
		entry(25, bitLESetAdvertisingData, leSetAdvertisingData),
		entry(26, bitLESetScanResponseData, leSetScanResponseData),
		entry(26, bitLESetAdvertisingEnable, leSetAdvertisingEnable),
	},
}

// ComputeSupportedCommands derives the 64-byte supported-commands
// bitmap purely from Table: bit (byte, mask) is set iff a live entry
// claims it. Deterministic, callable at any time, never drifts from
// the handler set because it has no other data source.
func ComputeSupportedCommands() [64]byte {
	var bitmap [64]byte
	for _, row := range Table {
		for _, e := range row {
			if e == nil {
				continue
			}
			bitmap[e.Byte] |= e.Mask
		}
	}
	return bitmap
}
