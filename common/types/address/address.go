// Package address implements network qualified base32 addresses of 20-byte
// accounts, with a checksum binding the account to its network.
package address

import (
	"fmt"
	"strings"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-cfxaddress/common/types/address/base32"
	"github.com/spacemeshos/go-cfxaddress/common/types/address/checksum"
	"github.com/spacemeshos/go-cfxaddress/common/types/address/network"
	"github.com/spacemeshos/go-cfxaddress/common/util"
	"github.com/spacemeshos/go-cfxaddress/hash"
)

const (
	// Delimiter separates the network prefix, the optional fields and the payload.
	Delimiter = ":"
	// EncodedLength is the number of symbols of the payload followed by the checksum.
	EncodedLength = payloadSymbols + checksum.Size

	payloadSymbols  = 34
	typeFieldPrefix = "type."
	abbrHead        = 3
	abbrTail        = 4
	mainnetAbbrTail = 8
)

// Payload is the 20-byte account identifier carried by an address.
type Payload [util.AddressLength]byte

// Address is an account on a network. The zero value is not a valid address.
// Addresses are immutable and safe for concurrent use.
type Address struct {
	payload Payload
	network network.ID
	typ     Type
	verbose bool
	params  *network.Params
}

func (a Address) networkParams() *network.Params {
	if a.params == nil {
		return network.DefaultParams()
	}
	return a.params
}

func (a Address) codec() *Codec {
	return NewCodec(a.networkParams())
}

func (a Address) prefix() string {
	return a.networkParams().Prefix(a.network)
}

// body returns the payload and checksum symbols.
func (a Address) body() string {
	version := a.networkParams().VersionByte()
	data := make([]byte, 0, 1+len(a.payload))
	data = append(data, version)
	data = append(data, a.payload[:]...)
	return base32.Encode(data) + checksum.Compute(a.prefix(), version, a.payload)
}

// String renders the address in the form it was created with.
func (a Address) String() string {
	if a.verbose {
		return a.VerboseString()
	}
	return a.Compact()
}

// Encode is an alias of String.
func (a Address) Encode() string {
	return a.String()
}

// Compact renders the address without optional fields, in lower case.
func (a Address) Compact() string {
	return a.prefix() + Delimiter + a.body()
}

// VerboseString renders the address with the type field, in upper case.
func (a Address) VerboseString() string {
	return strings.ToUpper(a.prefix() + Delimiter + typeFieldPrefix + a.typ.String() + Delimiter + a.body())
}

// Hex returns the payload in the mixed case checksummed hex form.
func (a Address) Hex() string {
	return util.ChecksumHex(a.payload)
}

// EthChecksumAddress is an alias of Hex.
func (a Address) EthChecksumAddress() string {
	return a.Hex()
}

// Bytes returns a copy of the payload.
func (a Address) Bytes() []byte {
	b := make([]byte, len(a.payload))
	copy(b, a.payload[:])
	return b
}

// Payload returns the payload.
func (a Address) Payload() Payload { return a.payload }

// NetworkID returns the network of the address.
func (a Address) NetworkID() network.ID { return a.network }

// Type returns the type of the payload.
func (a Address) Type() Type { return a.typ }

// IsVerbose reports whether String renders the verbose form.
func (a Address) IsVerbose() bool { return a.verbose }

// WithNetwork returns the same account on another network.
func (a Address) WithNetwork(id network.ID) (Address, error) {
	if err := id.Validate(); err != nil {
		return Address{}, err
	}
	a.network = id
	return a, nil
}

// WithVerbose returns a copy rendered in the verbose or the compact form.
func (a Address) WithVerbose(verbose bool) Address {
	a.verbose = verbose
	return a
}

// Equal reports whether other has the same compact encoding: the same account on
// the same network under the same prefix and version byte. Textual values are
// decoded first and never equal if decoding fails. The rendering form is ignored.
func (a Address) Equal(other any) bool {
	var b Address
	switch o := other.(type) {
	case Address:
		b = o
	case *Address:
		if o == nil {
			return false
		}
		b = *o
	case string:
		return a.equalText(o)
	case []byte:
		return a.equalText(string(o))
	case fmt.Stringer:
		return a.equalText(o.String())
	default:
		return false
	}
	return a.sameEncoding(b)
}

func (a Address) sameEncoding(b Address) bool {
	if a.payload != b.payload || a.network != b.network {
		return false
	}
	return a.Compact() == b.Compact()
}

func (a Address) equalText(text string) bool {
	b, err := a.codec().Decode(text, IgnoreInvalidType())
	if err != nil {
		return false
	}
	return a.sameEncoding(b)
}

// NotEqual is the negation of Equal.
func (a Address) NotEqual(other any) bool {
	return !a.Equal(other)
}

// Abbr returns the abbreviated form: the prefix, the first 3 and the last 4
// symbols, or the last 8 symbols on the main network.
func (a Address) Abbr() string {
	return a.abbr(false)
}

// CompressedAbbr is the same as Abbr but keeps the last 4 symbols on every network.
func (a Address) CompressedAbbr() string {
	return a.abbr(true)
}

func (a Address) abbr(compressed bool) string {
	body := a.body()
	tail := abbrTail
	if a.network == network.MainnetID && !compressed {
		tail = mainnetAbbrTail
	}
	return a.prefix() + Delimiter + body[:abbrHead] + "..." + body[len(body)-tail:]
}

// MappedEVMSpaceAddress returns the checksummed hex address of the account
// mapped to this one in the EVM space: the last 20 bytes of the keccak256 hash
// of the payload.
func (a Address) MappedEVMSpaceAddress() string {
	var mapped [util.AddressLength]byte
	sum := hash.Sum(a.payload[:])
	copy(mapped[:], sum[hash.Size-util.AddressLength:])
	return util.ChecksumHex(mapped)
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	if err := a.network.Validate(); err != nil {
		return nil, err
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The verbose form is
// preserved.
func (a *Address) UnmarshalText(text []byte) error {
	s := string(text)
	var opts []Opt
	if strings.Count(s, Delimiter) == 2 {
		opts = append(opts, Verbose())
	}
	decoded, err := a.codec().Decode(s, opts...)
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

// EncodeScale implements scale codec interface.
func (a *Address) EncodeScale(e *scale.Encoder) (int, error) {
	total := 0
	n, err := scale.EncodeCompact32(e, uint32(a.network))
	if err != nil {
		return total, err
	}
	total += n
	n, err = scale.EncodeByteArray(e, a.payload[:])
	if err != nil {
		return total, err
	}
	total += n
	return total, nil
}

// DecodeScale implements scale codec interface.
func (a *Address) DecodeScale(d *scale.Decoder) (int, error) {
	total := 0
	id, n, err := scale.DecodeCompact32(d)
	if err != nil {
		return total, err
	}
	total += n
	var payload Payload
	n, err = scale.DecodeByteArray(d, payload[:])
	if err != nil {
		return total, err
	}
	total += n
	if err := network.ID(id).Validate(); err != nil {
		return total, err
	}
	*a = Address{
		payload: payload,
		network: network.ID(id),
		typ:     Classify(payload),
		params:  a.networkParams(),
	}
	return total, nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (a Address) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("address", a.Compact())
	enc.AddString("hex", a.Hex())
	enc.AddUint32("network", uint32(a.network))
	enc.AddString("type", a.typ.String())
	return nil
}
