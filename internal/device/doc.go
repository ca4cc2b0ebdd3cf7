// Package device is the portable Bluetooth Low Energy (BLE) domain model.
//
// Platform adapters (internal/device/winrt-ble, internal/device/go-ble) are the
// only code allowed to build these values from native types:
//   - Error: the canonical failure taxonomy (PermissionDenied, NotConnected,
//     NotSupported, Other) matched with errors.Is by kind
//   - uuid.UUID: canonical 128-bit identifiers, with Bluetooth base UUID helpers
//   - CharPropFlags and Properties: characteristic capabilities
//   - Address: 48-bit device addresses
//   - ExtendedProperties: the 0x2900 descriptor value
package device
