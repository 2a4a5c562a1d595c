// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package models

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidAddress is returned for strings that are not 20-byte hex addresses.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrAddressChecksum is returned for mixed-case addresses whose EIP-55
	// checksum does not match.
	ErrAddressChecksum = errors.New("address checksum mismatch")
	// ErrInvalidHex is returned when a HexBytes value cannot be decoded.
	ErrInvalidHex = errors.New("invalid hex string")
)

// Address is a ledger account or contract address in EIP-55 checksummed form.
type Address string

// ParseAddress validates s and returns its checksummed form.
//
// All-lowercase and all-uppercase inputs are accepted as-is; mixed-case inputs
// must carry a valid EIP-55 checksum.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	body, ok := strings.CutPrefix(s, "0x")
	if !ok {
		body, ok = strings.CutPrefix(s, "0X")
	}
	if !ok || len(body) != 40 {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	checksummed := checksumAddress(strings.ToLower(body))
	lower, upper := strings.ToLower(body), strings.ToUpper(body)
	if body != lower && body != upper && "0x"+body != checksummed {
		return "", fmt.Errorf("%w: %q", ErrAddressChecksum, s)
	}

	return Address(checksummed), nil
}

// MustParseAddress is ParseAddress that panics on error. Intended for
// constants and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return a == ""
}

// Short returns an abbreviated 0x1234...abcd form for display.
func (a Address) Short() string {
	if len(a) < 10 {
		return string(a)
	}
	return string(a[:6]) + "..." + string(a[len(a)-4:])
}

func checksumAddress(lowerHex string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lowerHex))
	digest := h.Sum(nil)

	out := make([]byte, len(lowerHex))
	for i := 0; i < len(lowerHex); i++ {
		c := lowerHex[i]
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if c >= 'a' && c <= 'f' && nibble&0x0f >= 8 {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return "0x" + string(out)
}

// HexBytes is a byte slice that travels as a 0x-prefixed hex string.
type HexBytes []byte

// String returns the 0x-prefixed hex form.
func (b HexBytes) String() string {
	return "0x" + hex.EncodeToString(b)
}

// MarshalJSON implements json.Marshaler.
func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := ParseHexBytes(s)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// ParseHexBytes decodes a hex string with an optional 0x prefix.
func ParseHexBytes(s string) (HexBytes, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return decoded, nil
}
