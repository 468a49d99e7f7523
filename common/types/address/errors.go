package address

import (
	"errors"

	"github.com/spacemeshos/go-cfxaddress/common/types/address/network"
)

var (
	// ErrInvalidFormat is returned when text is not a well formed base32 address.
	ErrInvalidFormat = errors.New("invalid base32 address")
	// ErrChecksumMismatch is returned when the checksum symbols don't match the address.
	ErrChecksumMismatch = errors.New("checksum verification failed")
	// ErrNetworkMismatch is returned when an address belongs to another network than expected.
	ErrNetworkMismatch = errors.New("network mismatch")
	// ErrInvalidType is returned for payloads of the invalid type and for type fields
	// that contradict the payload.
	ErrInvalidType = errors.New("invalid address type")
	// ErrInvalidNetworkID is returned for the zero network id.
	ErrInvalidNetworkID = network.ErrInvalidNetworkID
	// ErrInvalidHex is returned when text is not a 0x prefixed 20-byte hex string.
	ErrInvalidHex = errors.New("invalid hex address")
)
