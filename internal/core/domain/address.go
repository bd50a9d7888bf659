package domain

import (
	"encoding/hex"
	"fmt"
)

// AddressLen is the byte length of a ledger address.
const AddressLen = 32

// Address is an opaque fixed-length ledger account address.
type Address [AddressLen]byte

// ParseAddress decodes a hex-encoded address string.
func ParseAddress(s string) (Address, error) {
	var a Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("parsing address: %w", err)
	}
	if len(b) != AddressLen {
		return a, fmt.Errorf("parsing address: want %d bytes, got %d", AddressLen, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// String returns the lowercase hex form of the address.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// IsZero reports whether the address is the all-zero value.
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalText implements encoding.TextMarshaler (hex form in JSON).
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
