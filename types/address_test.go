package types

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddressRoundTrip(t *testing.T) {
	var raw [AddressLen]byte
	for i := range raw {
		raw[i] = byte(i + 1)
	}

	encoded := base58.Encode(raw[:])
	addr, err := ParseAddress(encoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, addr.String())
	assert.Equal(t, raw[:], addr.Bytes())
}

func TestParseAddressRejectsWrongLength(t *testing.T) {
	short := base58.Encode([]byte{1, 2, 3})
	_, err := ParseAddress(short)
	assert.Error(t, err)
}

func TestParseAddressRejectsBadEncoding(t *testing.T) {
	_, err := ParseAddress("not-base58-0OIl")
	assert.Error(t, err)
}

func TestAddressFromBytes(t *testing.T) {
	raw := make([]byte, AddressLen)
	raw[0] = 0xff
	addr, err := AddressFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, addr.Bytes())

	_, err = AddressFromBytes(raw[:16])
	assert.Error(t, err)
}

func TestAddressTextMarshaling(t *testing.T) {
	var addr Address
	addr[31] = 0x7f

	text, err := addr.MarshalText()
	require.NoError(t, err)

	var decoded Address
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, addr, decoded)
}
