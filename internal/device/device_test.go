package device

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "kind only",
			err:      ErrPermissionDenied,
			expected: "permission_denied",
		},
		{
			name:     "not supported with reason",
			err:      NewNotSupported("ProtocolError"),
			expected: "not_supported: ProtocolError",
		},
		{
			name:     "other with message and cause",
			err:      Wrap(Other, "buffer read failed", io.ErrUnexpectedEOF),
			expected: "other: buffer read failed: unexpected EOF",
		},
		{
			name:     "nil receiver",
			err:      nil,
			expected: "<nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_IsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("read characteristic: %w", NewNotSupported("ProtocolError"))

	assert.ErrorIs(t, err, ErrNotSupported)
	assert.NotErrorIs(t, err, ErrOther)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
	assert.True(t, IsKind(err, NotSupported))
	assert.False(t, IsKind(errors.New("plain"), NotSupported))
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("E_BOUNDS")
	err := Wrap(Other, "buffer read failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrOther)

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, Other, kind)
}

func TestKindOf_NoCanonicalError(t *testing.T) {
	_, ok := KindOf(io.EOF)
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}
