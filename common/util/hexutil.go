// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package util

/*
Encoding Rules

All hex data must have prefix "0x".

For byte slices, the hex data must be of even length. An empty byte slice
encodes as "0x".

Account identifiers are exactly 20 bytes (40 hex digits). Their checksummed
rendering follows EIP-55: a letter digit is upper-cased when the matching nibble
of keccak256(lower case hex) is 8 or more.
*/

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spacemeshos/go-cfxaddress/hash"
)

// AddressLength is the number of bytes in an account identifier.
const AddressLength = 20

// Errors.
var (
	ErrSyntax        = errors.New("invalid hex string")
	ErrMissingPrefix = errors.New("hex string without 0x prefix")
	ErrOddLength     = errors.New("hex string of odd length")
	ErrLength        = errors.New("hex string of wrong length")
)

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// Decode decodes a hex string with 0x prefix.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrMissingPrefix
	}
	if !has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	b, err := hex.DecodeString(input[2:])
	if err != nil {
		if _, ok := err.(hex.InvalidByteError); ok {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		if errors.Is(err, hex.ErrLength) {
			return nil, ErrOddLength
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return b, nil
}

// DecodeAddress decodes "0x" followed by 40 hex digits of any case. The case of
// the digits is not validated against the EIP-55 checksum.
func DecodeAddress(input string) ([AddressLength]byte, error) {
	var out [AddressLength]byte
	b, err := Decode(input)
	if err != nil {
		return out, err
	}
	if len(b) != AddressLength {
		return out, fmt.Errorf("%w: expected %d bytes, got %d", ErrLength, AddressLength, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// ChecksumHex returns the EIP-55 mixed-case rendering of an account identifier,
// prefixed with 0x. The result depends on the bytes only.
func ChecksumHex(addr [AddressLength]byte) string {
	var lower [AddressLength * 2]byte
	hex.Encode(lower[:], addr[:])
	digest := hash.Keccak256(lower[:])

	out := make([]byte, 2, 2+len(lower))
	copy(out, "0x")
	for i, c := range lower {
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if c >= 'a' && nibble&0x0f >= 8 {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
