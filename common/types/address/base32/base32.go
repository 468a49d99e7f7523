// Package base32 implements the 32 symbol alphabet used by network-qualified
// account addresses. The alphabet leaves out the visually ambiguous i, l, o and q.
//
// Bytes are split into 5-bit words most significant bit first. When the bit length
// is not a multiple of 5 the last word is padded with zero bits.
package base32

import (
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/bech32"
)

// Alphabet is the ordered set of symbols, the index of a symbol is its word value.
const Alphabet = "abcdefghjkmnprstuvwxyz0123456789"

var (
	// ErrInvalidCharacter is returned when a symbol is not part of the alphabet.
	ErrInvalidCharacter = errors.New("invalid base32 character")
	// ErrInvalidWord is returned when a word does not fit in 5 bits.
	ErrInvalidWord = errors.New("invalid base32 word")
	// ErrInvalidPadding is returned when the trailing bits can't be dropped.
	ErrInvalidPadding = errors.New("invalid base32 padding")
)

var reverse = func() [256]int8 {
	var rev [256]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		rev[Alphabet[i]] = int8(i)
		if c := Alphabet[i]; c >= 'a' && c <= 'z' {
			rev[c-'a'+'A'] = int8(i)
		}
	}
	return rev
}()

// EncodeWords maps 5-bit words to symbols.
func EncodeWords(words []byte) (string, error) {
	buf := make([]byte, len(words))
	for i, w := range words {
		if w > 31 {
			return "", fmt.Errorf("%w: %d at position %d", ErrInvalidWord, w, i)
		}
		buf[i] = Alphabet[w]
	}
	return string(buf), nil
}

// DecodeWords maps symbols to 5-bit words. Upper case symbols are accepted.
func DecodeWords(s string) ([]byte, error) {
	words := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		v := reverse[s[i]]
		if v < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		words[i] = byte(v)
	}
	return words, nil
}

// ToWords regroups bytes into 5-bit words, zero padding the last word.
func ToWords(data []byte) []byte {
	words, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		// regrouping 8-bit input with padding enabled has no failure mode
		panic(fmt.Sprintf("convert bits: %v", err))
	}
	return words
}

// FromWords regroups 5-bit words into bytes. Trailing bits that do not form a
// whole byte must be zero and fewer than 5.
func FromWords(words []byte) ([]byte, error) {
	for i, w := range words {
		if w > 31 {
			return nil, fmt.Errorf("%w: %d at position %d", ErrInvalidWord, w, i)
		}
	}
	data, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPadding, err)
	}
	return data, nil
}

// Encode returns the symbols for data.
func Encode(data []byte) string {
	words := ToWords(data)
	buf := make([]byte, len(words))
	for i, w := range words {
		buf[i] = Alphabet[w]
	}
	return string(buf)
}

// Decode returns the bytes encoded in s.
func Decode(s string) ([]byte, error) {
	words, err := DecodeWords(s)
	if err != nil {
		return nil, err
	}
	return FromWords(words)
}
