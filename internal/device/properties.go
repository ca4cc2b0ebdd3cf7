package device

import (
	"fmt"
	"strings"
)

// CharPropFlags is the canonical set of GATT characteristic properties.
// Bit positions follow the Characteristic Properties field of the
// characteristic declaration (Core Spec Vol 3, Part G, 3.3.1.1).
type CharPropFlags uint8

const (
	CharBroadcast CharPropFlags = 1 << iota
	CharRead
	CharWriteWithoutResponse
	CharWrite
	CharNotify
	CharIndicate
	CharAuthenticatedSignedWrites
	CharExtendedProperties
)

// AllCharPropFlags is the full canonical enumeration
const AllCharPropFlags = CharBroadcast | CharRead | CharWriteWithoutResponse | CharWrite |
	CharNotify | CharIndicate | CharAuthenticatedSignedWrites | CharExtendedProperties

var charPropNames = []struct {
	flag CharPropFlags
	name string
}{
	{CharBroadcast, "Broadcast"},
	{CharRead, "Read"},
	{CharWriteWithoutResponse, "WriteWithoutResponse"},
	{CharWrite, "Write"},
	{CharNotify, "Notify"},
	{CharIndicate, "Indicate"},
	{CharAuthenticatedSignedWrites, "AuthenticatedSignedWrites"},
	{CharExtendedProperties, "ExtendedProperties"},
}

// Has reports whether every flag in f is set
func (p CharPropFlags) Has(f CharPropFlags) bool {
	return p&f == f
}

// Names returns the names of the set flags in bit order
func (p CharPropFlags) Names() []string {
	names := make([]string, 0, len(charPropNames))
	for _, e := range charPropNames {
		if p&e.flag != 0 {
			names = append(names, e.name)
		}
	}
	return names
}

func (p CharPropFlags) String() string {
	if p == 0 {
		return "None"
	}
	return strings.Join(p.Names(), "|")
}

// ParseCharPropFlags parses a comma or pipe separated list of property names.
// Names are matched case-insensitively; "writenr" and "signed" are accepted as
// short aliases. An empty string yields no flags.
func ParseCharPropFlags(s string) (CharPropFlags, error) {
	var flags CharPropFlags
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' || r == ' ' })
	for _, field := range fields {
		f, ok := lookupCharProp(field)
		if !ok {
			return 0, fmt.Errorf("unknown characteristic property: %q", field)
		}
		flags |= f
	}
	return flags, nil
}

func lookupCharProp(name string) (CharPropFlags, bool) {
	switch strings.ToLower(name) {
	case "writenr", "write-without-response":
		return CharWriteWithoutResponse, true
	case "signed", "signed-write":
		return CharAuthenticatedSignedWrites, true
	case "extended":
		return CharExtendedProperties, true
	case "none":
		return 0, true
	}
	for _, e := range charPropNames {
		if strings.EqualFold(e.name, name) {
			return e.flag, true
		}
	}
	return 0, false
}

// Property represents a single BLE characteristic property
type Property interface {
	Value() int
	KnownName() string
}

// Properties represent a collection of BLE characteristic properties
type Properties interface {
	Broadcast() Property
	Read() Property
	Write() Property
	WriteWithoutResponse() Property
	Notify() Property
	Indicate() Property
	AuthenticatedSignedWrites() Property
	ExtendedProperties() Property
	Flags() CharPropFlags
}

type charProperty struct {
	value CharPropFlags
	name  string
}

func (p charProperty) Value() int        { return int(p.value) }
func (p charProperty) KnownName() string { return p.name }

type charProperties CharPropFlags

// NewProperties returns the per-property view of flags.
// Accessors return nil for properties that are not set.
func NewProperties(flags CharPropFlags) Properties {
	return charProperties(flags)
}

func (p charProperties) get(f CharPropFlags) Property {
	if CharPropFlags(p)&f == 0 {
		return nil
	}
	for _, e := range charPropNames {
		if e.flag == f {
			return charProperty{value: f, name: e.name}
		}
	}
	return nil
}

func (p charProperties) Broadcast() Property            { return p.get(CharBroadcast) }
func (p charProperties) Read() Property                 { return p.get(CharRead) }
func (p charProperties) Write() Property                { return p.get(CharWrite) }
func (p charProperties) WriteWithoutResponse() Property { return p.get(CharWriteWithoutResponse) }
func (p charProperties) Notify() Property               { return p.get(CharNotify) }
func (p charProperties) Indicate() Property             { return p.get(CharIndicate) }
func (p charProperties) AuthenticatedSignedWrites() Property {
	return p.get(CharAuthenticatedSignedWrites)
}
func (p charProperties) ExtendedProperties() Property { return p.get(CharExtendedProperties) }
func (p charProperties) Flags() CharPropFlags         { return CharPropFlags(p) }
