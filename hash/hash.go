// Package hash provides the keccak-256 primitive used to derive account
// identifiers and checksummed hex renderings.
package hash

import (
	"golang.org/x/crypto/sha3"
)

// Size is the length of a keccak-256 digest in bytes.
const Size = 32

// New returns a legacy keccak-256 hasher (the pre-standard padding used by EVM chains).
var New = sha3.NewLegacyKeccak256

// Keccak256 returns the keccak-256 digest of the concatenation of chunks.
func Keccak256(chunks ...[]byte) []byte {
	h := GetHasher()
	defer PutHasher(h)
	for _, chunk := range chunks {
		h.Write(chunk)
	}
	return h.Sum(make([]byte, 0, Size))
}

// Sum returns the keccak-256 digest of data as an array.
func Sum(data []byte) [Size]byte {
	var out [Size]byte
	copy(out[:], Keccak256(data))
	return out
}
