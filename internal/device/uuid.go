package device

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/srg/bleconv/internal/bledb"
)

// BaseUUID is the Bluetooth Base UUID (00000000-0000-1000-8000-00805F9B34FB)
// onto which 16- and 32-bit SIG-assigned UUIDs are mapped.
var BaseUUID = uuid.MustParse("00000000-0000-1000-8000-00805f9b34fb")

// New16BitUUID expands a SIG-assigned 16-bit UUID onto the base UUID.
func New16BitUUID(short uint16) uuid.UUID {
	return New32BitUUID(uint32(short))
}

// New32BitUUID expands a SIG-assigned 32-bit UUID onto the base UUID.
func New32BitUUID(short uint32) uuid.UUID {
	u := BaseUUID
	binary.BigEndian.PutUint32(u[0:4], short)
	return u
}

// ShortUUID returns the 16-bit form of u if u lies on the base UUID.
func ShortUUID(u uuid.UUID) (uint16, bool) {
	if u[0] != 0 || u[1] != 0 || !onBase(u) {
		return 0, false
	}
	return binary.BigEndian.Uint16(u[2:4]), true
}

// Short32UUID returns the 32-bit form of u if u lies on the base UUID.
func Short32UUID(u uuid.UUID) (uint32, bool) {
	if !onBase(u) {
		return 0, false
	}
	return binary.BigEndian.Uint32(u[0:4]), true
}

func onBase(u uuid.UUID) bool {
	return [12]byte(u[4:]) == [12]byte(BaseUUID[4:])
}

// ParseUUID parses a UUID in any of the forms users type: 16-bit ("180d",
// "0x180D"), 32-bit ("0000180d"), or 128-bit with or without dashes or braces.
func ParseUUID(s string) (uuid.UUID, error) {
	clean := strings.ToLower(strings.TrimSpace(s))
	clean = strings.TrimPrefix(strings.TrimSuffix(clean, "}"), "{")
	clean = strings.TrimPrefix(clean, "0x")
	clean = strings.ReplaceAll(clean, "-", "")

	b, err := hex.DecodeString(clean)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	switch len(b) {
	case 2:
		return New16BitUUID(binary.BigEndian.Uint16(b)), nil
	case 4:
		return New32BitUUID(binary.BigEndian.Uint32(b)), nil
	case 16:
		return uuid.FromBytes(b)
	default:
		return uuid.Nil, fmt.Errorf("invalid UUID %q: expected 2, 4 or 16 bytes, got %d", s, len(b))
	}
}

// NormalizeUUID is re-exported from bledb for convenience.
// It converts a UUID string to the internal BLE library format (lowercase, no dashes).
// For full 128-bit UUIDs in Bluetooth SIG base format (0000xxxx-0000-1000-8000-00805f9b34fb),
// extracts the 16-bit short form (xxxx).
func NormalizeUUID(s string) string {
	return bledb.NormalizeUUID(s)
}

// ValidateUUID validates that UUID strings are non-empty and well-formed.
// Returns normalized UUID strings or an error.
func ValidateUUID(uuids ...string) ([]string, error) {
	if len(uuids) == 0 {
		return nil, fmt.Errorf("at least one UUID is required")
	}

	result := make([]string, 0, len(uuids))
	for i, s := range uuids {
		if s == "" {
			return nil, fmt.Errorf("UUID at index %d cannot be empty", i)
		}
		normalized := NormalizeUUID(s)
		if normalized == "" {
			return nil, fmt.Errorf("invalid UUID format at index %d: %s", i, s)
		}
		result = append(result, normalized)
	}
	return result, nil
}
