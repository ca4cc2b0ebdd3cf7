package goble

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-ble/ble"
	"github.com/srg/bleconv/internal/device"
)

// ATT error codes (Core Spec Vol 3, Part F, 3.4.1.1) that are mapped to a specific kind
const (
	attReadNotPermitted           = 0x02
	attWriteNotPermitted          = 0x03
	attInsufficientAuthentication = 0x05
	attRequestNotSupported        = 0x06
	attInsufficientAuthorization  = 0x08
	attInsufficientEncKeySize     = 0x0C
	attInsufficientEncryption     = 0x0F
	attUnsupportedGroupType       = 0x10
)

// NormalizeError maps go-ble errors onto the canonical device.Error taxonomy.
// ATT protocol errors are classified by code; other errors by their message,
// so the mapping survives minor wording changes upstream. The original error
// is always kept as the cause. Context errors and errors that are already
// canonical pass through unchanged.
func NormalizeError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := device.KindOf(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var attErr ble.ATTError
	if errors.As(err, &attErr) {
		return normalizeATTError(attErr, err)
	}

	msg := err.Error()
	switch {
	case msg == "central manager has invalid state: have=4 want=5: is Bluetooth turned on?":
		return device.Wrap(device.NotConnected, "bluetooth off", err)
	case containsIgnoreCase(msg, "bluetooth is turned off"):
		return device.Wrap(device.NotConnected, "bluetooth off", err)
	case containsIgnoreCase(msg, "not authorized"), containsIgnoreCase(msg, "permission denied"):
		return device.Wrap(device.PermissionDenied, "", err)
	case containsIgnoreCase(msg, "device not connected"):
		return device.Wrap(device.NotConnected, "", err)
	case containsIgnoreCase(msg, "disconnected"):
		return device.Wrap(device.NotConnected, "", err)
	case containsIgnoreCase(msg, "not supported"), containsIgnoreCase(msg, "not implemented"):
		return device.Wrap(device.NotSupported, "", err)
	default:
		return device.Wrap(device.Other, "", err)
	}
}

func normalizeATTError(code ble.ATTError, err error) error {
	switch byte(code) {
	case attReadNotPermitted, attWriteNotPermitted,
		attInsufficientAuthentication, attInsufficientAuthorization,
		attInsufficientEncKeySize, attInsufficientEncryption:
		return device.Wrap(device.PermissionDenied, "", err)
	case attRequestNotSupported, attUnsupportedGroupType:
		return device.Wrap(device.NotSupported, fmt.Sprintf("ATT error 0x%02X", byte(code)), err)
	default:
		return device.Wrap(device.NotSupported, "ProtocolError", err)
	}
}

// containsIgnoreCase checks the substring case-insensitively
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
