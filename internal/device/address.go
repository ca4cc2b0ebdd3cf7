package device

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Address is a 48-bit Bluetooth device address, most significant byte first.
type Address [6]byte

// String formats the address as AA:BB:CC:DD:EE:FF
func (a Address) String() string {
	parts := make([]string, len(a))
	for i, b := range a {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":")
}

// ParseAddress parses AA:BB:CC:DD:EE:FF, AA-BB-CC-DD-EE-FF or AABBCCDDEEFF, in either case.
func ParseAddress(s string) (Address, error) {
	var a Address
	clean := strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(s))
	if len(clean) != 2*len(a) {
		return a, fmt.Errorf("invalid address %q: expected 6 bytes", s)
	}
	if _, err := hex.Decode(a[:], []byte(clean)); err != nil {
		return a, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return a, nil
}
