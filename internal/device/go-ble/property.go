package goble

import (
	"github.com/go-ble/ble"
	"github.com/srg/bleconv/internal/device"
)

var propertyBits = []struct {
	native    ble.Property
	canonical device.CharPropFlags
}{
	{ble.CharBroadcast, device.CharBroadcast},
	{ble.CharRead, device.CharRead},
	{ble.CharWriteNR, device.CharWriteWithoutResponse},
	{ble.CharWrite, device.CharWrite},
	{ble.CharNotify, device.CharNotify},
	{ble.CharIndicate, device.CharIndicate},
	{ble.CharSignedWrite, device.CharAuthenticatedSignedWrites},
	{ble.CharExtended, device.CharExtendedProperties},
}

// ToCharPropFlags converts ble.Property bit flags to the canonical set.
func ToCharPropFlags(p ble.Property) device.CharPropFlags {
	var flags device.CharPropFlags
	for _, b := range propertyBits {
		if p&b.native != 0 {
			flags |= b.canonical
		}
	}
	return flags
}

// FromCharPropFlags is the inverse of ToCharPropFlags
func FromCharPropFlags(flags device.CharPropFlags) ble.Property {
	var p ble.Property
	for _, b := range propertyBits {
		if flags&b.canonical != 0 {
			p |= b.native
		}
	}
	return p
}

// NewProperties creates a Properties instance from ble.Property bit flags.
func NewProperties(p ble.Property) device.Properties {
	return device.NewProperties(ToCharPropFlags(p))
}
