package winrtble

import (
	"fmt"

	"github.com/srg/bleconv/internal/device"
	"github.com/srg/bleconv/internal/native/winrt"
)

// MessageBufferRead is the Other message for every extraction failure
const MessageBufferRead = "buffer read failed"

// ToBytes copies the unread contents of buf into a new slice.
//
// A reader is bound to buf, the unconsumed length is queried, and a single
// ReadBytes fills a slice of exactly that length. Failures at any step
// return a device.Other error wrapping the native HRESULT; a short buffer
// never yields a truncated or zero-padded result.
func ToBytes(buf winrt.IBuffer) ([]byte, error) {
	reader, err := winrt.DataReaderFromBuffer(buf)
	if err != nil {
		return nil, device.Wrap(device.Other, MessageBufferRead, fmt.Errorf("bind reader: %w", err))
	}
	defer func() { _ = reader.Close() }()

	n, err := reader.UnconsumedBufferLength()
	if err != nil {
		return nil, device.Wrap(device.Other, MessageBufferRead, fmt.Errorf("query length: %w", err))
	}

	data := make([]byte, n)
	if err := reader.ReadBytes(data); err != nil {
		return nil, device.Wrap(device.Other, MessageBufferRead, fmt.Errorf("read %d bytes: %w", n, err))
	}
	return data, nil
}
