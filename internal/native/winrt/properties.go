package winrt

import (
	"fmt"
	"strconv"
	"strings"
)

// GattCharacteristicProperties mirrors the
// Windows.Devices.Bluetooth.GenericAttributeProfile.GattCharacteristicProperties flags enum.
type GattCharacteristicProperties uint32

const (
	GattCharacteristicPropertiesNone                      GattCharacteristicProperties = 0x0
	GattCharacteristicPropertiesBroadcast                 GattCharacteristicProperties = 0x1
	GattCharacteristicPropertiesRead                      GattCharacteristicProperties = 0x2
	GattCharacteristicPropertiesWriteWithoutResponse      GattCharacteristicProperties = 0x4
	GattCharacteristicPropertiesWrite                     GattCharacteristicProperties = 0x8
	GattCharacteristicPropertiesNotify                    GattCharacteristicProperties = 0x10
	GattCharacteristicPropertiesIndicate                  GattCharacteristicProperties = 0x20
	GattCharacteristicPropertiesAuthenticatedSignedWrites GattCharacteristicProperties = 0x40
	GattCharacteristicPropertiesExtendedProperties        GattCharacteristicProperties = 0x80
	GattCharacteristicPropertiesReliableWrites            GattCharacteristicProperties = 0x100
	GattCharacteristicPropertiesWritableAuxiliaries       GattCharacteristicProperties = 0x200
)

var propertyNames = []struct {
	value GattCharacteristicProperties
	name  string
}{
	{GattCharacteristicPropertiesBroadcast, "Broadcast"},
	{GattCharacteristicPropertiesRead, "Read"},
	{GattCharacteristicPropertiesWriteWithoutResponse, "WriteWithoutResponse"},
	{GattCharacteristicPropertiesWrite, "Write"},
	{GattCharacteristicPropertiesNotify, "Notify"},
	{GattCharacteristicPropertiesIndicate, "Indicate"},
	{GattCharacteristicPropertiesAuthenticatedSignedWrites, "AuthenticatedSignedWrites"},
	{GattCharacteristicPropertiesExtendedProperties, "ExtendedProperties"},
	{GattCharacteristicPropertiesReliableWrites, "ReliableWrites"},
	{GattCharacteristicPropertiesWritableAuxiliaries, "WritableAuxiliaries"},
}

// String renders the set flags the way the WinRT projection prints flag enums ("Read, Notify").
func (p GattCharacteristicProperties) String() string {
	if p == GattCharacteristicPropertiesNone {
		return "None"
	}
	var parts []string
	rest := p
	for _, e := range propertyNames {
		if p&e.value != 0 {
			parts = append(parts, e.name)
			rest &^= e.value
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(parts, ", ")
}

// ParseGattCharacteristicProperties parses a numeric mask ("18", "0x12").
func ParseGattCharacteristicProperties(s string) (GattCharacteristicProperties, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid characteristic properties %q: %w", s, err)
	}
	return GattCharacteristicProperties(v), nil
}
