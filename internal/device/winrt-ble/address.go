package winrtble

import "github.com/srg/bleconv/internal/device"

// ToAddress converts a BluetoothLEDevice.BluetoothAddress. Only the low 48 bits are meaningful.
func ToAddress(addr uint64) device.Address {
	var a device.Address
	for i := len(a) - 1; i >= 0; i-- {
		a[i] = byte(addr)
		addr >>= 8
	}
	return a
}

// ToBluetoothAddress is the inverse of ToAddress
func ToBluetoothAddress(a device.Address) uint64 {
	var addr uint64
	for _, b := range a {
		addr = addr<<8 | uint64(b)
	}
	return addr
}
