// Package checksum implements the 40-bit BCH checksum that binds the payload of an
// address to its network prefix.
//
// The code is the cashaddr one: the input is read as a polynomial over GF(32) and
// reduced modulo the generator
//
//	g(x) = x^8 + {19}x^7 + {3}x^6 + {25}x^5 + {11}x^4 + {25}x^3 + {3}x^2 + {19}x + {1}
//
// which detects any error affecting up to 4 symbols within 1025 symbols and any burst
// of up to 8 symbols. The network prefix is folded into the checksum, so a checksum
// computed for one network never verifies for another.
package checksum

import (
	"github.com/spacemeshos/go-cfxaddress/common/types/address/base32"
)

// Size is the number of symbols in a checksum.
const Size = 8

// generator holds {2^n}k(x) for n in 0..4, where k(x) = x^8 mod g(x).
var generator = [5]uint64{
	0x98f2bc8e61,
	0x79b76d99e2,
	0xf33e5fb3c4,
	0xae2eabe2a8,
	0x1e4f43e470,
}

// PolyMod returns the 40-bit remainder, xored with 1, of the polynomial with an
// implicit leading 1 followed by words.
func PolyMod(words []byte) uint64 {
	c := uint64(1)
	for _, d := range words {
		c0 := byte(c >> 35)
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)
		for i, g := range generator {
			if (c0>>uint(i))&1 == 1 {
				c ^= g
			}
		}
	}
	return c ^ 1
}

// PrefixWords expands a network prefix into the words fed to PolyMod: the low five
// bits of every character followed by a zero separator.
func PrefixWords(prefix string) []byte {
	words := make([]byte, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		words[i] = prefix[i] & 0x1f
	}
	return words
}

// Create returns the checksum words of payload under prefix.
func Create(prefix string, payload []byte) [Size]byte {
	words := make([]byte, 0, len(prefix)+1+len(payload)+Size)
	words = append(words, PrefixWords(prefix)...)
	words = append(words, payload...)
	words = append(words, make([]byte, Size)...)
	mod := PolyMod(words)

	var sum [Size]byte
	for i := range sum {
		sum[i] = byte(mod>>uint(5*(Size-1-i))) & 0x1f
	}
	return sum
}

// Verify reports whether sum is the checksum of payload under prefix.
func Verify(prefix string, payload []byte, sum [Size]byte) bool {
	words := make([]byte, 0, len(prefix)+1+len(payload)+Size)
	words = append(words, PrefixWords(prefix)...)
	words = append(words, payload...)
	words = append(words, sum[:]...)
	return PolyMod(words) == 0
}

// Compute returns the checksum symbols of a version byte and a 20-byte account
// identifier under the network prefix.
func Compute(prefix string, version byte, hex [20]byte) string {
	sum := Create(prefix, payloadWords(version, hex))
	s, _ := base32.EncodeWords(sum[:])
	return s
}

// VerifyString reports whether the checksum symbols match the version byte, the
// account identifier and the network prefix. Symbols outside of the alphabet never
// match.
func VerifyString(prefix string, version byte, hex [20]byte, sum string) bool {
	if len(sum) != Size {
		return false
	}
	words, err := base32.DecodeWords(sum)
	if err != nil {
		return false
	}
	var s [Size]byte
	copy(s[:], words)
	return Verify(prefix, payloadWords(version, hex), s)
}

func payloadWords(version byte, hex [20]byte) []byte {
	data := make([]byte, 0, 1+len(hex))
	data = append(data, version)
	data = append(data, hex[:]...)
	return base32.ToWords(data)
}
