// Package signing handles the secp256k1 public keys accounts are derived from.
package signing

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// PublicKeySize is the size of a raw public key: the X and Y coordinates
	// without the SEC1 prefix byte.
	PublicKeySize = 64
	// CompressedPublicKeySize is the size of a SEC1 compressed public key.
	CompressedPublicKeySize = secp256k1.PubKeyBytesLenCompressed
	// UncompressedPublicKeySize is the size of a SEC1 uncompressed public key.
	UncompressedPublicKeySize = secp256k1.PubKeyBytesLenUncompressed
)

// ErrInvalidPublicKey is returned when bytes can't be read as a public key.
var ErrInvalidPublicKey = errors.New("invalid public key")

// PublicKey is a secp256k1 public key in raw (X || Y) form.
type PublicKey struct {
	raw [PublicKeySize]byte
}

// NewPublicKey reads a public key in one of three forms:
//   - 64 bytes: raw X || Y, taken as is;
//   - 65 bytes: SEC1 uncompressed, the point is validated;
//   - 33 bytes: SEC1 compressed, the point is validated and decompressed.
func NewPublicKey(pub []byte) (*PublicKey, error) {
	p := &PublicKey{}
	switch len(pub) {
	case PublicKeySize:
		copy(p.raw[:], pub)
	case UncompressedPublicKeySize, CompressedPublicKeySize:
		key, err := secp256k1.ParsePubKey(pub)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
		}
		return FromSecp256k1(key), nil
	default:
		return nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidPublicKey, len(pub))
	}
	return p, nil
}

// FromSecp256k1 converts a parsed secp256k1 key.
func FromSecp256k1(key *secp256k1.PublicKey) *PublicKey {
	p := &PublicKey{}
	copy(p.raw[:], key.SerializeUncompressed()[1:])
	return p
}

// Bytes returns the raw X || Y form.
func (p *PublicKey) Bytes() []byte {
	// Prevent segfault if unset
	if p == nil {
		return nil
	}
	out := make([]byte, PublicKeySize)
	copy(out, p.raw[:])
	return out
}

// String returns the public key as a hex representation string.
func (p *PublicKey) String() string {
	return hex.EncodeToString(p.Bytes())
}
