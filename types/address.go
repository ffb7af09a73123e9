package types

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// AddressLen is the fixed byte length of a ledger account identifier.
const AddressLen = 32

// Address identifies a party capable of holding tokens. The ledger
// never inspects its internal structure; it only compares it and uses
// it as a map/storage key. The canonical text form is base58.
type Address [AddressLen]byte

// ParseAddress decodes the base58 text form of an address.
func ParseAddress(s string) (Address, error) {
	var addr Address
	raw, err := base58.Decode(s)
	if err != nil {
		return addr, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(raw) != AddressLen {
		return addr, fmt.Errorf("invalid address %q: expected %d bytes, got %d", s, AddressLen, len(raw))
	}
	copy(addr[:], raw)
	return addr, nil
}

// AddressFromBytes copies raw into an Address, validating the length.
func AddressFromBytes(raw []byte) (Address, error) {
	var addr Address
	if len(raw) != AddressLen {
		return addr, fmt.Errorf("invalid address: expected %d bytes, got %d", AddressLen, len(raw))
	}
	copy(addr[:], raw)
	return addr, nil
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

// MarshalText implements encoding.TextMarshaler so addresses serialize
// as base58 strings inside JSON store records and config files.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	addr, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
