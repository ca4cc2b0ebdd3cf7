// Package winrt models the slice of the Windows Runtime Bluetooth and stream
// APIs that the winrt-ble adapter consumes: GATT communication status codes,
// characteristic property bitmasks, GUIDs in their field layout, and IBuffer
// byte buffers read through a DataReader.
//
// Values mirror the ABI in windows.devices.bluetooth.genericattributeprofile.idl
// and windows.storage.streams.idl. Failures are reported as HRESULTs wrapped
// in *ole.OleError, the way go-ole reports COM failures.
package winrt
