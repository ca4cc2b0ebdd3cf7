// Package winrtble converts WinRT Bluetooth values into the portable device
// model and back. It is the only sanctioned crossing point between
// internal/native/winrt types and the device package.
//
// Every function is stateless and safe for concurrent use. ToBytes is the
// only one that touches a native object; the caller must own the buffer for
// the duration of the call.
package winrtble
