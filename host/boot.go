package host

// SubState is the strict linear SendX/W4SendX sequence a host walks
// through while Initializing.
type SubState int

const (
	SendReset SubState = iota
	W4SendReset
	SendReadLocalSupportedCommands
	W4SendReadLocalSupportedCommands
	SendReadLocalSupportedFeatures
	W4SendReadLocalSupportedFeatures
	SendSetEventMask
	W4SendSetEventMask
	SendLESetEventMask
	W4SendLESetEventMask
	SendLEReadBufferSize
	W4SendLEReadBufferSize
	SendReadBufferSize
	W4SendReadBufferSize
	SendLEReadLocalSupportedFeatures
	W4SendLEReadLocalSupportedFeatures
	SendReadBDAddr
	W4SendReadBDAddr
	End
)

// State is the coarse host power state.
type State int

const (
	Off State = iota
	Initializing
	Working
)

// ScanEnable mirrors the controller-facing scan mode the host tracks
// locally once powered on. None of the commands this core covers
// write it back to the controller.
type ScanEnable uint8

const (
	NoScansEnable ScanEnable = iota
	InquiryEnablePageDisable
	InquiryDisablePageEnable
	InquiryEnablePageEnable
)

// Default event masks sent during boot. The Bluetooth Core
// specification reserves bit width for future event codes; this
// shim enables everything it can represent since it does not yet
// distinguish individual event classes.
const (
	defaultEventMask   uint64 = 0xFFFFFFFFFFFFFFFF
	defaultLEEventMask uint64 = 0xFFFFFFFFFFFFFFFF
)
