package winrt

import "sync"

// DataReader mirrors the byte-reading subset of Windows.Storage.Streams.DataReader.
// A reader bound to a buffer sees the buffer's Length at bind time as its
// unconsumed length; reads consume from the front.
type DataReader struct {
	data       []byte
	unconsumed uint32
	closed     bool
	mutex      sync.Mutex
}

// DataReaderFromBuffer binds a reader to buf, like DataReader.FromBuffer.
// It fails with E_POINTER for a nil buffer and E_NOINTERFACE when buf does
// not expose its bytes through IBufferByteAccess.
func DataReaderFromBuffer(buf IBuffer) (*DataReader, error) {
	if buf == nil {
		return nil, makeError(EPointer)
	}
	access, ok := buf.(IBufferByteAccess)
	if !ok {
		return nil, makeError(ENoInterface)
	}

	length, err := buf.Length()
	if err != nil {
		return nil, err
	}
	raw, err := access.Bytes()
	if err != nil {
		return nil, err
	}

	// The storage may be shorter than the declared length; the
	// shortfall surfaces as E_BOUNDS on read.
	data := raw
	if uint32(len(data)) > length {
		data = data[:length]
	}

	return &DataReader{
		data:       data,
		unconsumed: length,
	}, nil
}

// UnconsumedBufferLength returns the number of bytes not yet read
func (r *DataReader) UnconsumedBufferLength() (uint32, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return 0, makeError(ROEClosed)
	}
	return r.unconsumed, nil
}

// ReadBytes fills value completely or fails with E_BOUNDS, consuming nothing.
func (r *DataReader) ReadBytes(value []byte) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return makeError(ROEClosed)
	}
	n := uint32(len(value))
	if n > r.unconsumed || len(value) > len(r.data) {
		return makeError(EBounds)
	}

	copy(value, r.data[:n])
	r.data = r.data[n:]
	r.unconsumed -= n
	return nil
}

// Close releases the reader. Further calls fail with RO_E_CLOSED.
func (r *DataReader) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.closed = true
	r.data = nil
	return nil
}
