package winrt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ole/go-ole"
)

// GUID is the native 128-bit identifier: Data1, Data2 and Data3 are
// integers in host order, Data4 is the trailing 8 bytes.
type GUID = ole.GUID

// ErrInvalidGUID is returned when a GUID string cannot be parsed
var ErrInvalidGUID = errors.New("invalid GUID")

// ParseGUID accepts XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX with or without
// dashes and braces, in either case.
func ParseGUID(s string) (GUID, error) {
	g := ole.NewGUID(strings.TrimSpace(s))
	if g == nil {
		return GUID{}, fmt.Errorf("%w: %q", ErrInvalidGUID, s)
	}
	return *g, nil
}

// FormatGUID renders g in registry form, {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}.
func FormatGUID(g GUID) string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1],
		g.Data4[2], g.Data4[3], g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}
