package winrt

import (
	"sync"
)

// IBuffer mirrors Windows.Storage.Streams.IBuffer
type IBuffer interface {
	Capacity() (uint32, error)
	Length() (uint32, error)
}

// IBufferByteAccess mirrors the COM interface of the same name that exposes
// an IBuffer's backing storage. The returned slice spans the full capacity.
type IBufferByteAccess interface {
	Bytes() ([]byte, error)
}

// Buffer is an in-memory IBuffer, the analogue of Windows.Storage.Streams.Buffer:
// a fixed capacity region of which the first Length bytes hold data.
// Read accessors on a nil *Buffer fail with E_POINTER.
type Buffer struct {
	data   []byte
	length uint32
	mutex  sync.RWMutex
}

// NewBuffer creates an empty buffer with the given capacity
func NewBuffer(capacity uint32) *Buffer {
	return &Buffer{
		data: make([]byte, capacity),
	}
}

// NewBufferFromBytes creates a full buffer holding a copy of data
func NewBufferFromBytes(data []byte) *Buffer {
	b := NewBuffer(uint32(len(data)))
	copy(b.data, data)
	b.length = uint32(len(data))
	return b
}

// Capacity returns the size of the backing storage
func (b *Buffer) Capacity() (uint32, error) {
	if b == nil {
		return 0, makeError(EPointer)
	}
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return uint32(len(b.data)), nil
}

// Length returns the number of bytes holding data
func (b *Buffer) Length() (uint32, error) {
	if b == nil {
		return 0, makeError(EPointer)
	}
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.length, nil
}

// SetLength marks the first n bytes as data. n may not exceed the capacity.
func (b *Buffer) SetLength(n uint32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if int(n) > len(b.data) {
		return makeError(EInvalidArg)
	}
	b.length = n
	return nil
}

// Append writes data after the current length
func (b *Buffer) Append(data []byte) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if int(b.length)+len(data) > len(b.data) {
		return makeError(EInvalidArg)
	}
	copy(b.data[b.length:], data)
	b.length += uint32(len(data))
	return nil
}

// Bytes implements IBufferByteAccess
func (b *Buffer) Bytes() ([]byte, error) {
	if b == nil {
		return nil, makeError(EPointer)
	}
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.data, nil
}
