package hci

import "fmt"

// Address is a 48-bit Bluetooth device address, stored little-endian
// as six octets (matching the wire form, not the human-readable
// colon-separated big-endian convention).
type Address [6]byte

func (a Address) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[5], a[4], a[3], a[2], a[1], a[0])
}

// AddressType is the full four-variant LE address type the host
// stores on a connection or advertising-parameter record.
type AddressType uint8

const (
	PublicDevice AddressType = iota
	RandomDevice
	PublicIdentity
	RandomIdentity
)

// AddressType2 is the reduced two-variant peer address type LE Set
// Advertising Parameters encodes on the wire. The projection from
// AddressType is many-to-one and non-invertible.
type AddressType2 uint8

const (
	PublicDeviceOrPublicIdentity AddressType2 = iota
	RandomDeviceOrRandomIdentity
)

// Reduce projects the full four-variant address type down to the
// two-variant wire form LE Set Advertising Parameters requires.
func (t AddressType) Reduce() AddressType2 {
	switch t {
	case PublicDevice, PublicIdentity:
		return PublicDeviceOrPublicIdentity
	default:
		return RandomDeviceOrRandomIdentity
	}
}

// ConnAddressType distinguishes a connection record's transport and,
// for LE, its address kind.
type ConnAddressType uint8

const (
	Classic ConnAddressType = iota
	LEPublic
	LERandom
)
