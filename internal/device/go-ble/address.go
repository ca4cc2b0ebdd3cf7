package goble

import (
	"strings"

	"github.com/go-ble/ble"
	"github.com/srg/bleconv/internal/device"
)

// ToAddress converts a go-ble address. On macOS go-ble reports peripheral
// UUIDs instead of MAC addresses; those fail to convert.
func ToAddress(a ble.Addr) (device.Address, error) {
	return device.ParseAddress(a.String())
}

// FromAddress returns the go-ble address for a, in go-ble's lowercase form
func FromAddress(a device.Address) ble.Addr {
	return ble.NewAddr(strings.ToLower(a.String()))
}
