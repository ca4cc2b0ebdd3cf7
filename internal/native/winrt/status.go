package winrt

import (
	"fmt"
	"strconv"
	"strings"
)

// GattCommunicationStatus mirrors Windows.Devices.Bluetooth.GenericAttributeProfile.GattCommunicationStatus.
type GattCommunicationStatus int32

const (
	GattCommunicationStatusSuccess       GattCommunicationStatus = 0
	GattCommunicationStatusUnreachable   GattCommunicationStatus = 1
	GattCommunicationStatusProtocolError GattCommunicationStatus = 2
	GattCommunicationStatusAccessDenied  GattCommunicationStatus = 3
)

func (s GattCommunicationStatus) String() string {
	switch s {
	case GattCommunicationStatusSuccess:
		return "Success"
	case GattCommunicationStatusUnreachable:
		return "Unreachable"
	case GattCommunicationStatusProtocolError:
		return "ProtocolError"
	case GattCommunicationStatusAccessDenied:
		return "AccessDenied"
	default:
		return fmt.Sprintf("GattCommunicationStatus(%d)", int32(s))
	}
}

// ParseGattCommunicationStatus accepts a status name (case-insensitive) or its numeric value.
func ParseGattCommunicationStatus(s string) (GattCommunicationStatus, error) {
	for _, st := range []GattCommunicationStatus{
		GattCommunicationStatusSuccess,
		GattCommunicationStatusUnreachable,
		GattCommunicationStatusProtocolError,
		GattCommunicationStatusAccessDenied,
	} {
		if strings.EqualFold(st.String(), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid communication status %q", s)
	}
	return GattCommunicationStatus(v), nil
}
