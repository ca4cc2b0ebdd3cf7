package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharPropFlags_String(t *testing.T) {
	assert.Equal(t, "None", CharPropFlags(0).String())
	assert.Equal(t, "Read|Notify", (CharRead | CharNotify).String())
	assert.Equal(t,
		"Broadcast|Read|WriteWithoutResponse|Write|Notify|Indicate|AuthenticatedSignedWrites|ExtendedProperties",
		AllCharPropFlags.String())
}

func TestCharPropFlags_Has(t *testing.T) {
	p := CharRead | CharWrite
	assert.True(t, p.Has(CharRead))
	assert.True(t, p.Has(CharRead|CharWrite))
	assert.False(t, p.Has(CharRead|CharNotify))
}

func TestParseCharPropFlags(t *testing.T) {
	tests := []struct {
		input    string
		expected CharPropFlags
	}{
		{"", 0},
		{"none", 0},
		{"read", CharRead},
		{"Read,Notify", CharRead | CharNotify},
		{"read|write|writenr", CharRead | CharWrite | CharWriteWithoutResponse},
		{"broadcast, signed, extended, indicate", CharBroadcast | CharAuthenticatedSignedWrites | CharExtendedProperties | CharIndicate},
		{"AuthenticatedSignedWrites", CharAuthenticatedSignedWrites},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParseCharPropFlags(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}

	_, err := ParseCharPropFlags("read,teleport")
	assert.ErrorContains(t, err, "teleport")
}

func TestNewProperties(t *testing.T) {
	props := NewProperties(CharRead | CharIndicate)

	require.NotNil(t, props.Read())
	assert.Equal(t, "Read", props.Read().KnownName())
	assert.Equal(t, 0x02, props.Read().Value())

	require.NotNil(t, props.Indicate())
	assert.Equal(t, 0x20, props.Indicate().Value())

	assert.Nil(t, props.Broadcast())
	assert.Nil(t, props.Write())
	assert.Nil(t, props.WriteWithoutResponse())
	assert.Nil(t, props.Notify())
	assert.Nil(t, props.AuthenticatedSignedWrites())
	assert.Nil(t, props.ExtendedProperties())
	assert.Equal(t, CharRead|CharIndicate, props.Flags())
}

func TestNewProperties_All(t *testing.T) {
	props := NewProperties(AllCharPropFlags)

	for _, p := range []Property{
		props.Broadcast(), props.Read(), props.WriteWithoutResponse(), props.Write(),
		props.Notify(), props.Indicate(), props.AuthenticatedSignedWrites(), props.ExtendedProperties(),
	} {
		assert.NotNil(t, p)
	}
}
