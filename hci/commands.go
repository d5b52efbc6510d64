package hci

// CmdParam is implemented by every HCI command parameter record: it
// knows its own opcode, its marshaled length, and how to marshal
// itself into a caller-provided buffer.
type CmdParam interface {
	Opcode() Opcode
	Len() int
	Marshal(b []byte)
}

// Reset carries no parameters.
type Reset struct{}

func (Reset) Opcode() Opcode   { return OpReset }
func (Reset) Len() int         { return 0 }
func (Reset) Marshal(b []byte) {}

type ReadLocalSupportedCommands struct{}

func (ReadLocalSupportedCommands) Opcode() Opcode   { return OpReadLocalSupportedCommands }
func (ReadLocalSupportedCommands) Len() int         { return 0 }
func (ReadLocalSupportedCommands) Marshal(b []byte) {}

type ReadLocalSupportedFeatures struct{}

func (ReadLocalSupportedFeatures) Opcode() Opcode   { return OpReadLocalSupportedFeatures }
func (ReadLocalSupportedFeatures) Len() int         { return 0 }
func (ReadLocalSupportedFeatures) Marshal(b []byte) {}

type ReadBufferSize struct{}

func (ReadBufferSize) Opcode() Opcode   { return OpReadBufferSize }
func (ReadBufferSize) Len() int         { return 0 }
func (ReadBufferSize) Marshal(b []byte) {}

type ReadBDAddr struct{}

func (ReadBDAddr) Opcode() Opcode   { return OpReadBDAddr }
func (ReadBDAddr) Len() int         { return 0 }
func (ReadBDAddr) Marshal(b []byte) {}

type LEReadBufferSize struct{}

func (LEReadBufferSize) Opcode() Opcode   { return OpLEReadBufferSize }
func (LEReadBufferSize) Len() int         { return 0 }
func (LEReadBufferSize) Marshal(b []byte) {}

type LEReadLocalSupportedFeatures struct{}

func (LEReadLocalSupportedFeatures) Opcode() Opcode   { return OpLEReadLocalSupportedFeatures }
func (LEReadLocalSupportedFeatures) Len() int         { return 0 }
func (LEReadLocalSupportedFeatures) Marshal(b []byte) {}

type LEReadAdvertisingPhysicalChannelTxPower struct{}

func (LEReadAdvertisingPhysicalChannelTxPower) Opcode() Opcode {
	return OpLEReadAdvertisingPhysicalChannelTxPower
}
func (LEReadAdvertisingPhysicalChannelTxPower) Len() int         { return 0 }
func (LEReadAdvertisingPhysicalChannelTxPower) Marshal(b []byte) {}

type SetEventMask struct {
	EventMask uint64
}

func (SetEventMask) Opcode() Opcode { return OpSetEventMask }
func (SetEventMask) Len() int       { return 8 }
func (c SetEventMask) Marshal(b []byte) {
	o.PutUint64(b[0:], c.EventMask)
}

type LESetEventMask struct {
	EventMask uint64
}

func (LESetEventMask) Opcode() Opcode { return OpLESetEventMask }
func (LESetEventMask) Len() int       { return 8 }
func (c LESetEventMask) Marshal(b []byte) {
	o.PutUint64(b[0:], c.EventMask)
}

// CreateConnection is the Classic Create Connection command. Fields
// and ordering follow the original's CreateConnectionCmd exactly.
type CreateConnection struct {
	BDAddr                 Address
	PacketType             uint16
	PageScanRepetitionMode uint8
	Reserved               uint8
	ClockOffset            uint16
	AllowRoleSwitch        uint8
}

func (CreateConnection) Opcode() Opcode { return OpCreateConnection }
func (CreateConnection) Len() int       { return 13 }
func (c CreateConnection) Marshal(b []byte) {
	o.PutMAC(b[0:], c.BDAddr)
	o.PutUint16(b[6:], c.PacketType)
	o.PutUint8(b[8:], c.PageScanRepetitionMode)
	o.PutUint8(b[9:], c.Reserved)
	o.PutUint16(b[10:], c.ClockOffset)
	o.PutUint8(b[12:], c.AllowRoleSwitch)
}

// LECreateConnection is the LE Create Connection command, field order
// and defaults grounded on the original's LECreateConnectionCmd.
type LECreateConnection struct {
	LEScanInterval        uint16
	LEScanWindow          uint16
	InitiatorFilterPolicy bool
	PeerAddressType       AddressType
	PeerAddress           Address
	OwnAddressType        AddressType
	ConnIntervalMin       uint16
	ConnIntervalMax       uint16
	MaxLatency            uint16
	SupervisionTimeout    uint16
	MinCELength           uint16
	MaxCELength           uint16
}

func (LECreateConnection) Opcode() Opcode { return OpLECreateConnection }
func (LECreateConnection) Len() int       { return 25 }
func (c LECreateConnection) Marshal(b []byte) {
	o.PutUint16(b[0:], c.LEScanInterval)
	o.PutUint16(b[2:], c.LEScanWindow)
	o.PutBool(b[4:], c.InitiatorFilterPolicy)
	o.PutUint8(b[5:], uint8(c.PeerAddressType))
	o.PutMAC(b[6:], c.PeerAddress)
	o.PutUint8(b[12:], uint8(c.OwnAddressType))
	o.PutUint16(b[13:], c.ConnIntervalMin)
	o.PutUint16(b[15:], c.ConnIntervalMax)
	o.PutUint16(b[17:], c.MaxLatency)
	o.PutUint16(b[19:], c.SupervisionTimeout)
	o.PutUint16(b[21:], c.MinCELength)
	o.PutUint16(b[23:], c.MaxCELength)
}

// LESetAdvertisingParameters encodes field-declaration order:
// interval_min, interval_max, type, own_address_type,
// peer_address_type (reduced), peer_address, channel_map,
// filter_policy — 15 octets total.
type LESetAdvertisingParameters struct {
	AdvertisingIntervalMin  uint16
	AdvertisingIntervalMax  uint16
	AdvertisingType         uint8
	OwnAddressType          AddressType
	PeerAddressType         AddressType2
	PeerAddress             Address
	AdvertisingChannelMap   uint8
	AdvertisingFilterPolicy uint8
}

func (LESetAdvertisingParameters) Opcode() Opcode { return OpLESetAdvertisingParameters }
func (LESetAdvertisingParameters) Len() int       { return 15 }
func (c LESetAdvertisingParameters) Marshal(b []byte) {
	o.PutUint16(b[0:], c.AdvertisingIntervalMin)
	o.PutUint16(b[2:], c.AdvertisingIntervalMax)
	o.PutUint8(b[4:], c.AdvertisingType)
	o.PutUint8(b[5:], uint8(c.OwnAddressType))
	o.PutUint8(b[6:], uint8(c.PeerAddressType))
	o.PutMAC(b[7:], c.PeerAddress)
	o.PutUint8(b[13:], c.AdvertisingChannelMap)
	o.PutUint8(b[14:], c.AdvertisingFilterPolicy)
}

// LEAdvPacket is the fixed 31-octet LE advertisement payload shape.
type LEAdvPacket [31]byte

type LESetAdvertisingData struct {
	AdvertisingDataLength uint8
	AdvertisingData       LEAdvPacket
}

func (LESetAdvertisingData) Opcode() Opcode { return OpLESetAdvertisingData }
func (LESetAdvertisingData) Len() int       { return 32 }
func (c LESetAdvertisingData) Marshal(b []byte) {
	o.PutUint8(b[0:], c.AdvertisingDataLength)
	o.PutRaw(b[1:32], c.AdvertisingData[:])
}

type LESetScanResponseData struct {
	ScanResponseDataLength uint8
	ScanResponseData       LEAdvPacket
}

func (LESetScanResponseData) Opcode() Opcode { return OpLESetScanResponseData }
func (LESetScanResponseData) Len() int       { return 32 }
func (c LESetScanResponseData) Marshal(b []byte) {
	o.PutUint8(b[0:], c.ScanResponseDataLength)
	o.PutRaw(b[1:32], c.ScanResponseData[:])
}

type LESetAdvertisingEnable struct {
	AdvertisingEnable bool
}

func (LESetAdvertisingEnable) Opcode() Opcode { return OpLESetAdvertisingEnable }
func (LESetAdvertisingEnable) Len() int       { return 1 }
func (c LESetAdvertisingEnable) Marshal(b []byte) {
	o.PutBool(b[0:], c.AdvertisingEnable)
}

// Marshal allocates a buffer of the declared length and fills it —
// the convenience wrapper every command-sending call site in host
// uses instead of open-coding the make/Marshal pair.
func Marshal(cp CmdParam) []byte {
	b := make([]byte, cp.Len())
	cp.Marshal(b)
	return b
}
