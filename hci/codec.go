package hci

// o is the package-level codec used by every command and event for
// primitive put/get (o.PutUint16, o.PutMAC, o.Uint8, o.MAC, o.Int8,
// ...) — plain little-endian octet arithmetic, nothing more.
var o littleEndian

type littleEndian struct{}

func (littleEndian) PutUint8(b []byte, v uint8)  { b[0] = v }
func (littleEndian) Uint8(b []byte) uint8        { return b[0] }

func (littleEndian) PutInt8(b []byte, v int8) { b[0] = byte(v) }
func (littleEndian) Int8(b []byte) int8       { return int8(b[0]) }

func (littleEndian) PutBool(b []byte, v bool) {
	if v {
		b[0] = 0x01
	} else {
		b[0] = 0x00
	}
}
func (littleEndian) Bool(b []byte) bool { return b[0] != 0 }

func (littleEndian) PutUint16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}
func (littleEndian) Uint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func (littleEndian) PutUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
func (littleEndian) Uint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (littleEndian) PutUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}
func (littleEndian) Uint64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * uint(i))
	}
	return v
}

// PutMAC/MAC move a six-octet Address to/from its wire position
// unchanged — Address is already stored little-endian.
func (littleEndian) PutMAC(b []byte, a Address) { copy(b[:6], a[:]) }
func (littleEndian) MAC(b []byte) Address {
	var a Address
	copy(a[:], b[:6])
	return a
}

// PutRaw moves a fixed-length octet array verbatim: the
// supported-commands bitmap (64), LMP features (8), and LE
// advertisement payload (31) all serialize as raw bytes in order.
func (littleEndian) PutRaw(b []byte, v []byte) { copy(b, v) }
