package hci

import "fmt"

// BuildCommand frames a command packet: [Command, opcode_lo,
// opcode_hi, param_len, params...].
func BuildCommand(op Opcode, params []byte) []byte {
	b := make([]byte, 4+len(params))
	b[0] = byte(TypCommand)
	o.PutUint16(b[1:], uint16(op))
	o.PutUint8(b[3:], uint8(len(params)))
	copy(b[4:], params)
	return b
}

// BuildEvent frames an event packet: [Event, event_code, param_len,
// params...].
func BuildEvent(code EventCode, params []byte) []byte {
	b := make([]byte, 3+len(params))
	b[0] = byte(TypEvent)
	b[1] = byte(code)
	o.PutUint8(b[2:], uint8(len(params)))
	copy(b[3:], params)
	return b
}

// BuildCommandComplete assembles a Command Complete parameter block:
// [num_hci_command_packets, opcode_lo, opcode_hi,
// return_parameter_bytes...].
func BuildCommandComplete(numHCICommandPackets uint8, op Opcode, returnParams []byte) []byte {
	b := make([]byte, 3+len(returnParams))
	o.PutUint8(b[0:], numHCICommandPackets)
	o.PutUint16(b[1:], uint16(op))
	copy(b[3:], returnParams)
	return b
}

// ParsePacket splits a framed packet into its type byte and the rest.
func ParsePacket(b []byte) (PacketType, []byte, error) {
	if len(b) < 1 {
		return 0, nil, fmt.Errorf("hci: empty packet")
	}
	return PacketType(b[0]), b[1:], nil
}

// ParseEventHeader splits an event's body (everything after the
// packet-type byte) into its code, declared length, and parameters.
func ParseEventHeader(body []byte) (EventCode, []byte, error) {
	if len(body) < 2 {
		return 0, nil, fmt.Errorf("hci: short event header")
	}
	code := EventCode(body[0])
	plen := int(body[1])
	if len(body)-2 < plen {
		return 0, nil, fmt.Errorf("hci: event param length mismatch")
	}
	return code, body[2 : 2+plen], nil
}

// CommandCompleteParams is the decoded form of a Command Complete
// event's parameter block.
type CommandCompleteParams struct {
	NumHCICommandPackets uint8
	Opcode               Opcode
	ReturnParameters     []byte
}

func (p *CommandCompleteParams) Unmarshal(b []byte) error {
	if len(b) < 3 {
		return fmt.Errorf("hci: short command complete")
	}
	p.NumHCICommandPackets = o.Uint8(b[0:])
	p.Opcode = Opcode(o.Uint16(b[1:]))
	p.ReturnParameters = b[3:]
	return nil
}

// Return-parameter records. Each Unmarshal rejects a buffer whose
// length disagrees with the record's declared size; the caller (the
// host's boot event handler) decides whether a malformed reply is
// fatal.

type StatusReturn struct {
	Status uint8
}

func (r StatusReturn) Marshal() []byte { return []byte{r.Status} }

func (r *StatusReturn) Unmarshal(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("hci: status return wants 1 byte, got %d", len(b))
	}
	r.Status = o.Uint8(b[0:])
	return nil
}

type ReadLocalSupportedCommandsReturn struct {
	Status            uint8
	SupportedCommands [64]byte
}

func (r ReadLocalSupportedCommandsReturn) Marshal() []byte {
	b := make([]byte, 65)
	o.PutUint8(b[0:], r.Status)
	o.PutRaw(b[1:65], r.SupportedCommands[:])
	return b
}

func (r *ReadLocalSupportedCommandsReturn) Unmarshal(b []byte) error {
	if len(b) != 65 {
		return fmt.Errorf("hci: read local supported commands return wants 65 bytes, got %d", len(b))
	}
	r.Status = o.Uint8(b[0:])
	copy(r.SupportedCommands[:], b[1:65])
	return nil
}

type ReadLocalSupportedFeaturesReturn struct {
	Status     uint8
	LMPFeature [8]byte
}

func (r ReadLocalSupportedFeaturesReturn) Marshal() []byte {
	b := make([]byte, 9)
	o.PutUint8(b[0:], r.Status)
	o.PutRaw(b[1:9], r.LMPFeature[:])
	return b
}

func (r *ReadLocalSupportedFeaturesReturn) Unmarshal(b []byte) error {
	if len(b) != 9 {
		return fmt.Errorf("hci: read local supported features return wants 9 bytes, got %d", len(b))
	}
	r.Status = o.Uint8(b[0:])
	copy(r.LMPFeature[:], b[1:9])
	return nil
}

type ReadBufferSizeReturn struct {
	Status                         uint8
	ACLDataPacketLength            uint16
	SynchronousDataPacketLength    uint8
	TotalNumACLDataPackets         uint16
	TotalNumSynchronousDataPackets uint16
}

func (r ReadBufferSizeReturn) Marshal() []byte {
	b := make([]byte, 8)
	o.PutUint8(b[0:], r.Status)
	o.PutUint16(b[1:], r.ACLDataPacketLength)
	o.PutUint8(b[3:], r.SynchronousDataPacketLength)
	o.PutUint16(b[4:], r.TotalNumACLDataPackets)
	o.PutUint16(b[6:], r.TotalNumSynchronousDataPackets)
	return b
}

func (r *ReadBufferSizeReturn) Unmarshal(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("hci: read buffer size return wants 8 bytes, got %d", len(b))
	}
	r.Status = o.Uint8(b[0:])
	r.ACLDataPacketLength = o.Uint16(b[1:])
	r.SynchronousDataPacketLength = o.Uint8(b[3:])
	r.TotalNumACLDataPackets = o.Uint16(b[4:])
	r.TotalNumSynchronousDataPackets = o.Uint16(b[6:])
	return nil
}

type ReadBDAddrReturn struct {
	Status uint8
	BDAddr Address
}

func (r ReadBDAddrReturn) Marshal() []byte {
	b := make([]byte, 7)
	o.PutUint8(b[0:], r.Status)
	o.PutMAC(b[1:], r.BDAddr)
	return b
}

func (r *ReadBDAddrReturn) Unmarshal(b []byte) error {
	if len(b) != 7 {
		return fmt.Errorf("hci: read bd addr return wants 7 bytes, got %d", len(b))
	}
	r.Status = o.Uint8(b[0:])
	r.BDAddr = o.MAC(b[1:])
	return nil
}

type LEReadBufferSizeReturn struct {
	Status                    uint8
	LEACLDataPacketLength     uint16
	TotalNumLEACLDataPackets  uint8
}

func (r LEReadBufferSizeReturn) Marshal() []byte {
	b := make([]byte, 4)
	o.PutUint8(b[0:], r.Status)
	o.PutUint16(b[1:], r.LEACLDataPacketLength)
	o.PutUint8(b[3:], r.TotalNumLEACLDataPackets)
	return b
}

func (r *LEReadBufferSizeReturn) Unmarshal(b []byte) error {
	if len(b) != 4 {
		return fmt.Errorf("hci: le read buffer size return wants 4 bytes, got %d", len(b))
	}
	r.Status = o.Uint8(b[0:])
	r.LEACLDataPacketLength = o.Uint16(b[1:])
	r.TotalNumLEACLDataPackets = o.Uint8(b[3:])
	return nil
}

type LEReadLocalSupportedFeaturesReturn struct {
	Status     uint8
	LEFeatures uint64
}

func (r LEReadLocalSupportedFeaturesReturn) Marshal() []byte {
	b := make([]byte, 9)
	o.PutUint8(b[0:], r.Status)
	o.PutUint64(b[1:], r.LEFeatures)
	return b
}

func (r *LEReadLocalSupportedFeaturesReturn) Unmarshal(b []byte) error {
	if len(b) != 9 {
		return fmt.Errorf("hci: le read local supported features return wants 9 bytes, got %d", len(b))
	}
	r.Status = o.Uint8(b[0:])
	r.LEFeatures = o.Uint64(b[1:])
	return nil
}

type LEReadAdvertisingPhysicalChannelTxPowerReturn struct {
	Status       uint8
	TxPowerLevel int8
}

func (r LEReadAdvertisingPhysicalChannelTxPowerReturn) Marshal() []byte {
	b := make([]byte, 2)
	o.PutUint8(b[0:], r.Status)
	o.PutInt8(b[1:], r.TxPowerLevel)
	return b
}

func (r *LEReadAdvertisingPhysicalChannelTxPowerReturn) Unmarshal(b []byte) error {
	if len(b) != 2 {
		return fmt.Errorf("hci: le read tx power return wants 2 bytes, got %d", len(b))
	}
	r.Status = o.Uint8(b[0:])
	r.TxPowerLevel = o.Int8(b[1:])
	return nil
}

// Event bodies below decode events no handler in this core's dispatch
// table emits. They exist so a packet stream containing them can be
// recognized and logged rather than dropped as garbage; nothing calls
// them today.

// CommandStatusEP is the parameter block of a Command Status event.
type CommandStatusEP struct {
	Status               uint8
	NumHCICommandPackets uint8
	CommandOpcode        Opcode
}

func (ep *CommandStatusEP) Unmarshal(b []byte) error {
	if len(b) != 4 {
		return fmt.Errorf("hci: command status wants 4 bytes, got %d", len(b))
	}
	ep.Status = o.Uint8(b[0:])
	ep.NumHCICommandPackets = o.Uint8(b[1:])
	ep.CommandOpcode = Opcode(o.Uint16(b[2:]))
	return nil
}

// NumOfCompletedPkt is one connection handle's completed-packet count
// within a Number Of Completed Packets event.
type NumOfCompletedPkt struct {
	ConnectionHandle   uint16
	NumOfCompletedPkts uint16
}

// NumberOfCompletedPacketsEP is the parameter block of a Number Of
// Completed Packets event.
type NumberOfCompletedPacketsEP struct {
	NumberOfHandles uint8
	Packets         []NumOfCompletedPkt
}

func (ep *NumberOfCompletedPacketsEP) Unmarshal(b []byte) error {
	if len(b) < 1 {
		return fmt.Errorf("hci: short number of completed packets event")
	}
	ep.NumberOfHandles = b[0]
	n := int(ep.NumberOfHandles)
	if len(b)-1 != n*4 {
		return fmt.Errorf("hci: number of completed packets length mismatch")
	}
	ep.Packets = make([]NumOfCompletedPkt, n)
	for i := 0; i < n; i++ {
		rec := b[1+i*4 : 1+i*4+4]
		ep.Packets[i].ConnectionHandle = o.Uint16(rec[0:]) & 0x0fff
		ep.Packets[i].NumOfCompletedPkts = o.Uint16(rec[2:])
	}
	return nil
}

// LEMetaEP is the common header of every LE Meta event sub-event: a
// one-octet sub-event code followed by that sub-event's own
// parameters, left undecoded here.
type LEMetaEP struct {
	SubeventCode uint8
	Parameters   []byte
}

func (ep *LEMetaEP) Unmarshal(b []byte) error {
	if len(b) < 1 {
		return fmt.Errorf("hci: short le meta event")
	}
	ep.SubeventCode = b[0]
	ep.Parameters = b[1:]
	return nil
}
