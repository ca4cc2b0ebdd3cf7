// Package bledb normalizes UUID strings and resolves SIG-assigned UUIDs to
// their human-readable names.
package bledb

import (
	"encoding/hex"
	"strings"

	"github.com/cornelk/hashmap"
)

// BLEType represents the category of a BLE UUID.
type BLEType string

const (
	Service        BLEType = "Service"
	Characteristic BLEType = "Characteristic"
	Descriptor     BLEType = "Descriptor"
)

// Entry is a known UUID
type Entry struct {
	UUID string
	Name string
	Type BLEType
}

const sigBaseSuffix = "00001000800000805f9b34fb"

var registry = newRegistry()

func newRegistry() *hashmap.Map[string, Entry] {
	m := hashmap.New[string, Entry]()
	for _, e := range knownEntries {
		m.Set(e.UUID, e)
	}
	return m
}

// NormalizeUUID converts a UUID string to the internal format (lowercase, no dashes).
// Braces and a 0x prefix are stripped. Full 128-bit UUIDs on the Bluetooth SIG base
// (0000xxxx-0000-1000-8000-00805f9b34fb) collapse to their 16-bit short form.
// Returns "" if s is not hexadecimal.
func NormalizeUUID(s string) string {
	u := strings.ToLower(strings.TrimSpace(s))
	u = strings.TrimPrefix(strings.TrimSuffix(u, "}"), "{")
	u = strings.TrimPrefix(u, "0x")
	u = strings.ReplaceAll(u, "-", "")
	if u == "" {
		return ""
	}
	if len(u)%2 != 0 {
		return ""
	}
	if _, err := hex.DecodeString(u); err != nil {
		return ""
	}
	if len(u) == 32 && strings.HasPrefix(u, "0000") && strings.HasSuffix(u, sigBaseSuffix) {
		return u[4:8]
	}
	return u
}

// Lookup returns the known entry for uuid in any accepted format
func Lookup(uuid string) (Entry, bool) {
	return registry.Get(NormalizeUUID(uuid))
}

// Register adds or replaces a vendor-specific entry. Safe for concurrent use.
func Register(uuid, name string, typ BLEType) {
	n := NormalizeUUID(uuid)
	if n == "" {
		return
	}
	registry.Set(n, Entry{UUID: n, Name: name, Type: typ})
}

// LookupService returns the service name for uuid, or "" if unknown.
func LookupService(uuid string) string {
	return lookupTyped(uuid, Service)
}

// LookupCharacteristic returns the characteristic name for uuid, or "" if unknown.
func LookupCharacteristic(uuid string) string {
	return lookupTyped(uuid, Characteristic)
}

// LookupDescriptor returns the descriptor name for uuid, or "" if unknown.
func LookupDescriptor(uuid string) string {
	return lookupTyped(uuid, Descriptor)
}

func lookupTyped(uuid string, typ BLEType) string {
	e, ok := Lookup(uuid)
	if !ok || e.Type != typ {
		return ""
	}
	return e.Name
}
