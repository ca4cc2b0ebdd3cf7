package goble

import (
	"encoding/binary"
	"fmt"

	"github.com/go-ble/ble"
	"github.com/google/uuid"
	"github.com/srg/bleconv/internal/device"
)

// ToUUID converts a go-ble UUID, stored least significant byte first, to the
// canonical form. 16- and 32-bit UUIDs are expanded onto the Bluetooth base UUID.
func ToUUID(u ble.UUID) (uuid.UUID, error) {
	switch len(u) {
	case 2:
		return device.New16BitUUID(binary.LittleEndian.Uint16(u)), nil
	case 4:
		return device.New32BitUUID(binary.LittleEndian.Uint32(u)), nil
	case 16:
		var c uuid.UUID
		for i := range c {
			c[i] = u[len(u)-1-i]
		}
		return c, nil
	default:
		return uuid.Nil, fmt.Errorf("invalid go-ble UUID length %d", len(u))
	}
}

// FromUUID converts a canonical UUID to go-ble form, using the 16-bit
// encoding for UUIDs on the Bluetooth base UUID as go-ble does on the wire.
func FromUUID(u uuid.UUID) ble.UUID {
	if short, ok := device.ShortUUID(u); ok {
		return ble.UUID16(short)
	}
	b := make(ble.UUID, len(u))
	for i := range u {
		b[i] = u[len(u)-1-i]
	}
	return b
}

// ParseUUID parses s with go-ble's parser and converts the result.
func ParseUUID(s string) (uuid.UUID, error) {
	u, err := ble.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	return ToUUID(u)
}
