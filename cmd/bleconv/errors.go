package main

import (
	"errors"

	"github.com/srg/bleconv/internal/device"
)

// Command-level errors
var (
	// ErrInvalidInput indicates an argument that could not be parsed into a native value.
	ErrInvalidInput = errors.New("invalid input")
)

// FormatUserError renders err for the terminal. Canonical BLE errors get a
// plain-language prefix; everything else prints as is.
func FormatUserError(err error) string {
	kind, ok := device.KindOf(err)
	if !ok {
		return err.Error()
	}
	switch kind {
	case device.PermissionDenied:
		return "access denied by the platform: " + err.Error()
	case device.NotConnected:
		return "device unreachable: " + err.Error()
	case device.NotSupported:
		return "not supported by the device: " + err.Error()
	default:
		return err.Error()
	}
}
