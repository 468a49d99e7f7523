package address

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-cfxaddress/common/types/address/base32"
	"github.com/spacemeshos/go-cfxaddress/common/types/address/checksum"
	"github.com/spacemeshos/go-cfxaddress/common/types/address/network"
	"github.com/spacemeshos/go-cfxaddress/common/util"
	"github.com/spacemeshos/go-cfxaddress/hash"
	"github.com/spacemeshos/go-cfxaddress/signing"
)

// Codec encodes and decodes addresses against a network table.
// It is safe for concurrent use.
type Codec struct {
	params *network.Params
	logger *zap.Logger
}

// NewCodec creates a codec over params.
func NewCodec(params *network.Params, opts ...CodecOpt) *Codec {
	c := &Codec{
		params: params,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Params returns the network table of the codec.
func (c *Codec) Params() *network.Params {
	return c.params
}

// FromHex builds the address of a payload on a network.
func (c *Codec) FromHex(payload Payload, id network.ID, opts ...Opt) (Address, error) {
	o := applyOpts(opts)
	if err := id.Validate(); err != nil {
		return Address{}, err
	}
	typ := Classify(payload)
	if typ == TypeInvalid && !o.ignoreType {
		return Address{}, fmt.Errorf("%w: payload 0x%x must start with 0x0, 0x1 or 0x8", ErrInvalidType, payload[:])
	}
	return Address{
		payload: payload,
		network: id,
		typ:     typ,
		verbose: o.verbose,
		params:  c.params,
	}, nil
}

// FromHexString builds the address of a 0x prefixed hex payload on a network.
// Hex digits may be of any case.
func (c *Codec) FromHexString(s string, id network.ID, opts ...Opt) (Address, error) {
	payload, err := util.DecodeAddress(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
	}
	return c.FromHex(payload, id, opts...)
}

// FromPublicKey builds the address of a secp256k1 public key on a network. The
// key is either 64 raw bytes or in a SEC1 form.
func (c *Codec) FromPublicKey(pub []byte, id network.ID, opts ...Opt) (Address, error) {
	key, err := signing.NewPublicKey(pub)
	if err != nil {
		return Address{}, err
	}
	return c.FromHex(PublicKeyPayload(key), id, opts...)
}

// PublicKeyPayload derives the user payload of a public key: the last 20 bytes
// of the keccak256 hash of the key, with the high nibble set to the user type.
func PublicKeyPayload(key *signing.PublicKey) Payload {
	var p Payload
	sum := hash.Sum(key.Bytes())
	copy(p[:], sum[hash.Size-len(p):])
	p[0] = p[0]&0x0f | 0x10
	return p
}

// Zero returns the null address of a network.
func (c *Codec) Zero(id network.ID, opts ...Opt) (Address, error) {
	return c.FromHex(Payload{}, id, opts...)
}

// Decode parses a base32 address. Both the compact and the verbose form are
// accepted, but the case of the text must be uniform.
func (c *Codec) Decode(text string, opts ...Opt) (Address, error) {
	o := applyOpts(opts)
	a, err := c.decode(text, o)
	if err != nil {
		c.logger.Debug("failed to decode address", zap.String("text", text), zap.Error(err))
		return Address{}, err
	}
	return a, nil
}

func (c *Codec) decode(text string, o options) (Address, error) {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return Address{}, fmt.Errorf("%w: non ascii character at position %d in %q", ErrInvalidFormat, i, text)
		}
	}
	lower := strings.ToLower(text)
	if text != lower && text != strings.ToUpper(text) {
		return Address{}, fmt.Errorf("%w: mixed case in %q", ErrInvalidFormat, text)
	}
	parts := strings.Split(lower, Delimiter)
	if len(parts) != 2 && len(parts) != 3 {
		return Address{}, fmt.Errorf("%w: expected prefix%s[type%s]payload, got %q",
			ErrInvalidFormat, Delimiter, Delimiter, text)
	}
	prefix, body := parts[0], parts[len(parts)-1]
	id, err := c.params.ParsePrefix(prefix)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if o.network != 0 && o.network != id {
		return Address{}, fmt.Errorf("%w: expected network %d, got %d", ErrNetworkMismatch, o.network, id)
	}
	if len(body) != EncodedLength {
		return Address{}, fmt.Errorf("%w: expected %d symbols, got %d", ErrInvalidFormat, EncodedLength, len(body))
	}
	words, err := base32.DecodeWords(body)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	data, err := base32.FromWords(words[:payloadSymbols])
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if version := c.params.VersionByte(); data[0] != version {
		return Address{}, fmt.Errorf("%w: expected version byte %d, got %d", ErrInvalidFormat, version, data[0])
	}
	var payload Payload
	copy(payload[:], data[1:])

	if !o.trusted {
		var sum [checksum.Size]byte
		copy(sum[:], words[payloadSymbols:])
		if !checksum.Verify(prefix, words[:payloadSymbols], sum) {
			if !o.ignoreChecksum {
				return Address{}, fmt.Errorf("%w: %q", ErrChecksumMismatch, text)
			}
			c.logger.Debug("ignored checksum mismatch", zap.String("text", text))
		}
	}

	typ := Classify(payload)
	if len(parts) == 3 {
		if err := checkTypeField(parts[1], typ); err != nil {
			return Address{}, err
		}
	}
	if typ == TypeInvalid && !o.ignoreType {
		return Address{}, fmt.Errorf("%w: payload 0x%x must start with 0x0, 0x1 or 0x8", ErrInvalidType, payload[:])
	}
	return Address{
		payload: payload,
		network: id,
		typ:     typ,
		verbose: o.verbose,
		params:  c.params,
	}, nil
}

// checkTypeField rejects a type field naming a known type other than the one
// of the payload. Other optional fields are ignored.
func checkTypeField(field string, typ Type) error {
	name, ok := strings.CutPrefix(field, typeFieldPrefix)
	if !ok || name == typ.String() {
		return nil
	}
	if _, err := ParseType(name); err != nil {
		return nil
	}
	return fmt.Errorf("%w: type field %q doesn't match the payload type %q", ErrInvalidType, field, typ)
}

// Parse reads either a base32 address or a 0x prefixed hex payload. Hex payloads
// are placed on the network given by WithNetworkID, or on the default network of
// the codec. A base32 address is moved to the network given by WithNetworkID.
func (c *Codec) Parse(text string, opts ...Opt) (Address, error) {
	o := applyOpts(opts)
	if strings.Contains(text, Delimiter) {
		target := o.network
		o.network = 0
		a, err := c.decode(text, o)
		if err != nil {
			return Address{}, err
		}
		if target != 0 {
			return a.WithNetwork(target)
		}
		return a, nil
	}
	id := o.network
	if id == 0 {
		id = c.params.DefaultNetwork()
	}
	a, err := c.FromHexString(text, id, opts...)
	if errors.Is(err, ErrInvalidHex) {
		return Address{}, fmt.Errorf("%w: %q is neither a base32 nor a hex address", ErrInvalidFormat, text)
	}
	return a, err
}

// Validate returns the reason text is not a valid base32 address, if any.
func (c *Codec) Validate(text string, opts ...Opt) error {
	_, err := c.Decode(text, opts...)
	return err
}

// IsValid reports whether text is a valid base32 address.
func (c *Codec) IsValid(text string, opts ...Opt) bool {
	return c.Validate(text, opts...) == nil
}

// Equals reports whether two base32 addresses identify the same account on the
// same network. It fails if either one is invalid.
func (c *Codec) Equals(a, b string) (bool, error) {
	first, err := c.Decode(a, IgnoreInvalidType())
	if err != nil {
		return false, err
	}
	second, err := c.Decode(b, IgnoreInvalidType())
	if err != nil {
		return false, err
	}
	return first.Equal(second), nil
}

// Shorten validates text and returns its abbreviation.
func (c *Codec) Shorten(text string, compressed bool) (string, error) {
	a, err := c.Decode(text, IgnoreInvalidType())
	if err != nil {
		return "", err
	}
	return a.abbr(compressed), nil
}

// MappedEVMSpaceAddress validates text and returns the hex address of the
// account mapped to it in the EVM space.
func (c *Codec) MappedEVMSpaceAddress(text string) (string, error) {
	a, err := c.Decode(text, IgnoreInvalidType())
	if err != nil {
		return "", err
	}
	return a.MappedEVMSpaceAddress(), nil
}

// EthEOAToHex converts the hex address of an externally owned account to the
// hex payload of the corresponding user account, by setting its first nibble.
func EthEOAToHex(eoa string) (string, error) {
	payload, err := util.DecodeAddress(eoa)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidHex, eoa, err)
	}
	return "0x1" + util.Encode(payload[:])[3:], nil
}
