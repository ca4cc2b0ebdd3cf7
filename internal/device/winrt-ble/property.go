package winrtble

import (
	"github.com/srg/bleconv/internal/device"
	"github.com/srg/bleconv/internal/native/winrt"
)

var propertyBits = []struct {
	native    winrt.GattCharacteristicProperties
	canonical device.CharPropFlags
}{
	{winrt.GattCharacteristicPropertiesBroadcast, device.CharBroadcast},
	{winrt.GattCharacteristicPropertiesRead, device.CharRead},
	{winrt.GattCharacteristicPropertiesWriteWithoutResponse, device.CharWriteWithoutResponse},
	{winrt.GattCharacteristicPropertiesWrite, device.CharWrite},
	{winrt.GattCharacteristicPropertiesNotify, device.CharNotify},
	{winrt.GattCharacteristicPropertiesIndicate, device.CharIndicate},
	{winrt.GattCharacteristicPropertiesAuthenticatedSignedWrites, device.CharAuthenticatedSignedWrites},
	{winrt.GattCharacteristicPropertiesExtendedProperties, device.CharExtendedProperties},
}

// ToCharPropFlags bit-tests each standard property. ReliableWrites,
// WritableAuxiliaries and undefined bits are not part of the canonical set;
// see ToExtendedProperties.
func ToCharPropFlags(p winrt.GattCharacteristicProperties) device.CharPropFlags {
	var flags device.CharPropFlags
	for _, b := range propertyBits {
		if p&b.native != 0 {
			flags |= b.canonical
		}
	}
	return flags
}

// FromCharPropFlags is the inverse of ToCharPropFlags
func FromCharPropFlags(flags device.CharPropFlags) winrt.GattCharacteristicProperties {
	var p winrt.GattCharacteristicProperties
	for _, b := range propertyBits {
		if flags&b.canonical != 0 {
			p |= b.native
		}
	}
	return p
}

// ToExtendedProperties extracts the two bits WinRT folds in from the
// Characteristic Extended Properties descriptor.
func ToExtendedProperties(p winrt.GattCharacteristicProperties) device.ExtendedProperties {
	return device.ExtendedProperties{
		ReliableWrite:       p&winrt.GattCharacteristicPropertiesReliableWrites != 0,
		WritableAuxiliaries: p&winrt.GattCharacteristicPropertiesWritableAuxiliaries != 0,
	}
}

// NewProperties creates a Properties instance from WinRT property flags.
func NewProperties(p winrt.GattCharacteristicProperties) device.Properties {
	return device.NewProperties(ToCharPropFlags(p))
}
