package winrtble

import (
	"github.com/go-ble/ble"
	"github.com/srg/bleconv/internal/device"
	"github.com/srg/bleconv/internal/native/winrt"
)

// Reason and message carried by the canonical errors built here
const (
	ReasonProtocolError       = "ProtocolError"
	MessageCommunicationError = "Communication Error"
)

// ToError maps a GATT communication status to nil on success or to a
// canonical error. Each call returns a fresh *device.Error; compare with
// errors.Is against the device sentinels. Unknown statuses land in Other so that values added to
// the enum by later Windows releases still map somewhere.
func ToError(status winrt.GattCommunicationStatus) error {
	switch status {
	case winrt.GattCommunicationStatusSuccess:
		return nil
	case winrt.GattCommunicationStatusAccessDenied:
		return &device.Error{Kind: device.PermissionDenied}
	case winrt.GattCommunicationStatusUnreachable:
		return &device.Error{Kind: device.NotConnected}
	case winrt.GattCommunicationStatusProtocolError:
		return device.NewNotSupported(ReasonProtocolError)
	default:
		return device.NewOther(MessageCommunicationError)
	}
}

// ToErrorWithProtocolError is ToError for result objects that also carry the
// optional ATT error byte (GattReadResult.ProtocolError and friends). For a
// ProtocolError status with a byte present, the ATT error is attached as the
// cause and can be recovered with errors.As into a ble.ATTError.
func ToErrorWithProtocolError(status winrt.GattCommunicationStatus, protocolError *byte) error {
	if status != winrt.GattCommunicationStatusProtocolError || protocolError == nil {
		return ToError(status)
	}
	return device.Wrap(device.NotSupported, ReasonProtocolError, ble.ATTError(*protocolError))
}
