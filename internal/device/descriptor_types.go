package device

import (
	"encoding/binary"
	"fmt"
)

// DescriptorExtendedProperties is the Characteristic Extended Properties descriptor UUID (16-bit short form)
const DescriptorExtendedProperties = "2900"

// ExtendedProperties represents the Characteristic Extended Properties descriptor (0x2900)
type ExtendedProperties struct {
	ReliableWrite       bool `json:"reliable_write" yaml:"reliable_write"`             // Reliable Write enabled
	WritableAuxiliaries bool `json:"writable_auxiliaries" yaml:"writable_auxiliaries"` // Writable Auxiliaries enabled
}

// ParseExtendedProperties parses the Characteristic Extended Properties descriptor value.
// The descriptor is 2 bytes: bit 0 = Reliable Write, bit 1 = Writable Auxiliaries.
func ParseExtendedProperties(data []byte) (*ExtendedProperties, error) {
	if len(data) != 2 {
		return nil, fmt.Errorf("invalid length for extended properties: expected 2, got %d", len(data))
	}
	value := binary.LittleEndian.Uint16(data)
	return &ExtendedProperties{
		ReliableWrite:       (value & 0x0001) != 0,
		WritableAuxiliaries: (value & 0x0002) != 0,
	}, nil
}

// Bytes encodes the descriptor value in its 2-byte little-endian wire form
func (e ExtendedProperties) Bytes() []byte {
	var value uint16
	if e.ReliableWrite {
		value |= 0x0001
	}
	if e.WritableAuxiliaries {
		value |= 0x0002
	}
	return binary.LittleEndian.AppendUint16(nil, value)
}
