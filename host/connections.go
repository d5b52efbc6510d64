package host

import "github.com/greedyhao/rblue/hci"

// Connection is one entry in the host's connection table.
type Connection struct {
	Remote      hci.Address
	AddressType hci.ConnAddressType
}

func (h *Host) hasConnection(addr hci.Address) bool {
	for _, c := range h.connections {
		if c.Remote == addr {
			return true
		}
	}
	return false
}

// Connect issues Classic Create Connection, rejecting silently if a
// connection record for addr already exists.
func (h *Host) Connect(addr hci.Address) {
	if h.hasConnection(addr) {
		h.log.WithField("addr", addr).Debug("duplicate connect discarded")
		return
	}
	h.connections = append(h.connections, Connection{Remote: addr, AddressType: hci.Classic})
	h.sendCmd(hci.CreateConnection{
		BDAddr:                 addr,
		PacketType:             0x0008, // MayUseDH1
		PageScanRepetitionMode: 0,      // R0
		Reserved:               0,
		ClockOffset:            0,
		AllowRoleSwitch:        1,
	})
}

// LEConnect issues LE Create Connection, rejecting silently if a
// connection record for addr already exists.
func (h *Host) LEConnect(addr hci.Address) {
	if h.hasConnection(addr) {
		h.log.WithField("addr", addr).Debug("duplicate le connect discarded")
		return
	}
	h.connections = append(h.connections, Connection{Remote: addr, AddressType: hci.LEPublic})
	h.sendCmd(hci.LECreateConnection{
		LEScanInterval:        16,
		LEScanWindow:          16,
		InitiatorFilterPolicy: false,
		PeerAddressType:       hci.PublicDevice,
		PeerAddress:           addr,
		OwnAddressType:        hci.PublicDevice,
		ConnIntervalMin:       6,
		ConnIntervalMax:       7,
		MaxLatency:            0,
		SupervisionTimeout:    10,
		MinCELength:           0,
		MaxCELength:           0,
	})
}
