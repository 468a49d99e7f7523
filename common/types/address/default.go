package address

import (
	"github.com/spacemeshos/go-cfxaddress/common/types/address/network"
)

var defaultCodec = NewCodec(network.DefaultParams())

// DefaultCodec returns the codec over network.DefaultParams used by the package
// level functions.
func DefaultCodec() *Codec {
	return defaultCodec
}

// FromHex calls Codec.FromHex on the default codec.
func FromHex(payload Payload, id network.ID, opts ...Opt) (Address, error) {
	return defaultCodec.FromHex(payload, id, opts...)
}

// FromHexString calls Codec.FromHexString on the default codec.
func FromHexString(s string, id network.ID, opts ...Opt) (Address, error) {
	return defaultCodec.FromHexString(s, id, opts...)
}

// FromPublicKey calls Codec.FromPublicKey on the default codec.
func FromPublicKey(pub []byte, id network.ID, opts ...Opt) (Address, error) {
	return defaultCodec.FromPublicKey(pub, id, opts...)
}

// Zero calls Codec.Zero on the default codec.
func Zero(id network.ID, opts ...Opt) (Address, error) {
	return defaultCodec.Zero(id, opts...)
}

// Decode calls Codec.Decode on the default codec.
func Decode(text string, opts ...Opt) (Address, error) {
	return defaultCodec.Decode(text, opts...)
}

// Parse calls Codec.Parse on the default codec.
func Parse(text string, opts ...Opt) (Address, error) {
	return defaultCodec.Parse(text, opts...)
}

// Validate calls Codec.Validate on the default codec.
func Validate(text string, opts ...Opt) error {
	return defaultCodec.Validate(text, opts...)
}

// IsValid calls Codec.IsValid on the default codec.
func IsValid(text string, opts ...Opt) bool {
	return defaultCodec.IsValid(text, opts...)
}

// Equals calls Codec.Equals on the default codec.
func Equals(a, b string) (bool, error) {
	return defaultCodec.Equals(a, b)
}

// Shorten calls Codec.Shorten on the default codec.
func Shorten(text string, compressed bool) (string, error) {
	return defaultCodec.Shorten(text, compressed)
}

// MappedEVMSpaceAddress calls Codec.MappedEVMSpaceAddress on the default codec.
func MappedEVMSpaceAddress(text string) (string, error) {
	return defaultCodec.MappedEVMSpaceAddress(text)
}
