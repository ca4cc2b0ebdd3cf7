package winrtble

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/srg/bleconv/internal/native/winrt"
)

// ToUUID lays the GUID fields out in RFC 4122 byte order: Data1, Data2 and
// Data3 big-endian, followed by Data4 as is.
func ToUUID(g winrt.GUID) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:16], g.Data4[:])
	return u
}

// ToGUID splits u into GUID fields. It is the inverse of ToUUID.
func ToGUID(u uuid.UUID) winrt.GUID {
	g := winrt.GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:16])
	return g
}
