package winrt

import (
	"errors"

	"github.com/go-ole/go-ole"
)

// HRESULTs surfaced by the stream types
const (
	EBounds            uintptr = 0x8000000B
	EIllegalMethodCall uintptr = 0x8000000E
	ENoInterface       uintptr = 0x80004002
	EPointer           uintptr = 0x80004003
	EInvalidArg        uintptr = 0x80070057
	ROEClosed          uintptr = 0x80000013
)

// makeError makes a *ole.OleError if hr is non-zero. If it is zero, it will
// return nil.
func makeError(hr uintptr) error {
	if hr != 0 {
		return ole.NewError(hr)
	}
	return nil
}

// HResult returns the HRESULT of the first *ole.OleError in err's chain, or 0.
func HResult(err error) uintptr {
	var oleErr *ole.OleError
	if !errors.As(err, &oleErr) {
		return 0
	}
	return oleErr.Code()
}
