package host

import "github.com/greedyhao/rblue/hci"

// LEAdvertisementsState is the observed-state flag set: what the
// controller is actually doing.
type LEAdvertisementsState uint8

const (
	Idle   LEAdvertisementsState = 0
	Active LEAdvertisementsState = 0x01
	Enabled LEAdvertisementsState = 0x02
)

// LEAdvertisementsTodo is the pending-work flag set: what the host
// still needs to push down to the controller.
type LEAdvertisementsTodo uint16

const (
	TodoIdle          LEAdvertisementsTodo = 0
	SetAdvData        LEAdvertisementsTodo = 1 << 0
	SetScanData       LEAdvertisementsTodo = 1 << 1
	SetParams         LEAdvertisementsTodo = 1 << 2
	SetPeriodicParams LEAdvertisementsTodo = 1 << 3
	SetPeriodicData   LEAdvertisementsTodo = 1 << 4
	RemoveSet         LEAdvertisementsTodo = 1 << 5
	SetAddress        LEAdvertisementsTodo = 1 << 6
	SetAddressSet0    LEAdvertisementsTodo = 1 << 7
	PrivacyNotify     LEAdvertisementsTodo = 1 << 8
)

// updateBits is every todo bit that represents a parameter update
// requiring advertising to be stopped first.
const updateBits = SetAdvData | SetScanData | SetParams | SetPeriodicParams |
	SetPeriodicData | RemoveSet | SetAddress | SetAddressSet0 | PrivacyNotify

// advParams is the full configurable LE advertising parameter set.
type advParams struct {
	intervalMin     uint16
	intervalMax     uint16
	advType         uint8
	ownAddressType  hci.AddressType
	peerAddressType hci.AddressType
	peerAddress     hci.Address
	channelMap      uint8
	filterPolicy    uint8
}

type gapState struct {
	state LEAdvertisementsState
	todo  LEAdvertisementsTodo

	params       advParams
	advData      hci.LEAdvPacket
	advDataLen   uint8
	scanRespData hci.LEAdvPacket
	scanRespLen  uint8
}

func newGapState() gapState {
	return gapState{params: advParams{channelMap: 0x07}} // channels 37/38/39
}

// GAPAdvertisementsSetParams writes the advertising parameter set on
// the host, marks SetParams pending, and runs the engine.
func (h *Host) GAPAdvertisementsSetParams(
	intervalMin, intervalMax uint16,
	advType uint8,
	ownAddressType hci.AddressType,
	peerAddressType hci.AddressType,
	peerAddress hci.Address,
	channelMap uint8,
	filterPolicy uint8,
) {
	h.gap.params = advParams{
		intervalMin:     intervalMin,
		intervalMax:     intervalMax,
		advType:         advType,
		ownAddressType:  ownAddressType,
		peerAddressType: peerAddressType,
		peerAddress:     peerAddress,
		channelMap:      channelMap,
		filterPolicy:    filterPolicy,
	}
	h.gap.todo |= SetParams
	h.run()
}

// GAPAdvertisementsSetData stages LE Set Advertising Data.
func (h *Host) GAPAdvertisementsSetData(data hci.LEAdvPacket, length uint8) {
	h.gap.advData = data
	h.gap.advDataLen = length
	h.gap.todo |= SetAdvData
	h.run()
}

// GAPAdvertisementsSetScanResponseData stages LE Set Scan Response
// Data.
func (h *Host) GAPAdvertisementsSetScanResponseData(data hci.LEAdvPacket, length uint8) {
	h.gap.scanRespData = data
	h.gap.scanRespLen = length
	h.gap.todo |= SetScanData
	h.run()
}

// GAPAdvertisementsEnable toggles the Enabled observed bit and runs
// the engine.
func (h *Host) GAPAdvertisementsEnable(enable bool) {
	if enable {
		h.gap.state |= Enabled
	} else {
		h.gap.state &^= Enabled
	}
	h.run()
}

// gapRun executes one reconcile tick: Collect, Stop, Modify, Restore.
// Collect and Modify evaluate their conditions against the snapshot
// taken at entry; Restore reads the state as Stop left it, so a tick
// that stops advertising for an update re-enables it in the same tick.
func (h *Host) gapRun() {
	todo := h.gap.todo
	active := h.gap.state&Active != 0
	enabled := h.gap.state&Enabled != 0

	// 1. Collect
	stop := active && (todo&updateBits != 0 || !enabled)

	// 2. Stop
	if stop {
		h.gap.state &^= Active
		h.sendCmd(hci.LESetAdvertisingEnable{AdvertisingEnable: false})
	}

	// 3. Modify
	if todo&SetParams != 0 {
		h.gap.todo &^= SetParams
		p := h.gap.params
		h.sendCmd(hci.LESetAdvertisingParameters{
			AdvertisingIntervalMin:  p.intervalMin,
			AdvertisingIntervalMax:  p.intervalMax,
			AdvertisingType:         p.advType,
			OwnAddressType:          p.ownAddressType,
			PeerAddressType:         p.peerAddressType.Reduce(),
			PeerAddress:             p.peerAddress,
			AdvertisingChannelMap:   p.channelMap,
			AdvertisingFilterPolicy: p.filterPolicy,
		})
	}
	if todo&SetAdvData != 0 {
		h.gap.todo &^= SetAdvData
		h.sendCmd(hci.LESetAdvertisingData{
			AdvertisingDataLength: h.gap.advDataLen,
			AdvertisingData:       h.gap.advData,
		})
	}
	if todo&SetScanData != 0 {
		h.gap.todo &^= SetScanData
		h.sendCmd(hci.LESetScanResponseData{
			ScanResponseDataLength: h.gap.scanRespLen,
			ScanResponseData:       h.gap.scanRespData,
		})
	}
	// The remaining update bits (periodic advertising, extended-set
	// address and removal, privacy notification) name reconcile steps
	// this shim's fourteen-handler core has no wire command for; the
	// bit is still cleared each tick so the engine never wedges on it.
	for _, bit := range []LEAdvertisementsTodo{
		SetPeriodicParams, SetPeriodicData, RemoveSet, SetAddress, SetAddressSet0, PrivacyNotify,
	} {
		if todo&bit != 0 {
			h.gap.todo &^= bit
			h.log.WithField("todo_bit", bit).Debug("gap todo bit has no covered command")
		}
	}

	// 4. Restore
	if h.gap.state&Enabled != 0 && h.gap.state&Active == 0 {
		h.gap.state |= Active
		h.sendCmd(hci.LESetAdvertisingEnable{AdvertisingEnable: true})
	}
}

// GAPState reports the observed-state flags, for tests and logging.
func (h *Host) GAPState() LEAdvertisementsState { return h.gap.state }
