package address_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spacemeshos/go-cfxaddress/codec"
	"github.com/spacemeshos/go-cfxaddress/common/types/address"
	"github.com/spacemeshos/go-cfxaddress/common/types/address/network"
	"github.com/spacemeshos/go-cfxaddress/common/util"
	"github.com/spacemeshos/go-cfxaddress/signing"
)

const (
	userHex         = "0x1ecde7223747601823f7535d7968ba98b4881e09"
	userChecksumHex = "0x1ECdE7223747601823f7535d7968Ba98b4881E09"
	testnetUser     = "cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695j4"
	testnetVerbose  = "CFXTEST:TYPE.USER:AATP533CG7D0AGBD87KZ48NJ1MPNKCA8BE1RZ695J4"
	mainnetUser     = "cfx:aatp533cg7d0agbd87kz48nj1mpnkca8be7ggp3vpu"
	mainnetVerbose  = "CFX:TYPE.USER:AATP533CG7D0AGBD87KZ48NJ1MPNKCA8BE7GGP3VPU"
	customUser      = "net8888:aatp533cg7d0agbd87kz48nj1mpnkca8beh6tx5zc7"
	testnetNull     = "cfxtest:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa6f0vrcsw"
	testnetNullVerb = "CFXTEST:TYPE.NULL:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA6F0VRCSW"
	invalidTypeHex  = "0x252d251c36aec31072b90a85b95bf9435b07edb8"
)

func userPayload(t *testing.T) address.Payload {
	t.Helper()
	p, err := util.DecodeAddress(userHex)
	require.NoError(t, err)
	return p
}

func TestAddress_FromHex(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name    string
		id      network.ID
		verbose bool
		want    string
	}{
		{name: "testnet", id: network.TestnetID, want: testnetUser},
		{name: "testnet verbose", id: network.TestnetID, verbose: true, want: testnetVerbose},
		{name: "mainnet", id: network.MainnetID, want: mainnetUser},
		{name: "mainnet verbose", id: network.MainnetID, verbose: true, want: mainnetVerbose},
		{name: "custom network", id: 8888, want: customUser},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var opts []address.Opt
			if tc.verbose {
				opts = append(opts, address.Verbose())
			}
			a, err := address.FromHexString(userHex, tc.id, opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, a.String())
			require.Equal(t, tc.want, a.Encode())
			require.Equal(t, tc.verbose, a.IsVerbose())
			require.Equal(t, tc.id, a.NetworkID())
			require.Equal(t, address.TypeUser, a.Type())
			require.Equal(t, userChecksumHex, a.Hex())
			require.Equal(t, userChecksumHex, a.EthChecksumAddress())
			payload := userPayload(t)
			require.Equal(t, payload[:], a.Bytes())
			require.Equal(t, payload, a.Payload())
		})
	}
}

func TestAddress_FromHexErrors(t *testing.T) {
	t.Parallel()
	_, err := address.FromHexString(userHex, 0)
	require.ErrorIs(t, err, address.ErrInvalidNetworkID)

	_, err = address.FromHexString(userHex, 0, address.Trusted())
	require.ErrorIs(t, err, address.ErrInvalidNetworkID)
	_, err = address.Zero(0, address.Trusted(), address.IgnoreInvalidType())
	require.ErrorIs(t, err, address.ErrInvalidNetworkID)

	_, err = address.FromHexString(invalidTypeHex, network.TestnetID)
	require.ErrorIs(t, err, address.ErrInvalidType)

	for _, s := range []string{
		"",
		"1ecde7223747601823f7535d7968ba98b4881e09",
		"0x1ecde7223747601823f7535d7968ba98b4881e",
		"0x1ecde7223747601823f7535d7968ba98b4881e0900",
		"0x1ecde7223747601823f7535d7968ba98b4881e0g",
		testnetUser,
	} {
		_, err := address.FromHexString(s, network.TestnetID)
		require.ErrorIs(t, err, address.ErrInvalidHex, s)
	}
}

func TestAddress_IgnoreInvalidType(t *testing.T) {
	t.Parallel()
	a, err := address.FromHexString(invalidTypeHex, network.TestnetID, address.IgnoreInvalidType())
	require.NoError(t, err)
	require.Equal(t, address.TypeInvalid, a.Type())
	require.Contains(t, a.VerboseString(), ":TYPE.INVALID:")

	_, err = address.Decode(a.String())
	require.ErrorIs(t, err, address.ErrInvalidType)

	decoded, err := address.Decode(a.String(), address.IgnoreInvalidType())
	require.NoError(t, err)
	require.True(t, decoded.Equal(a))
}

func TestAddress_Zero(t *testing.T) {
	t.Parallel()
	a, err := address.Zero(network.TestnetID)
	require.NoError(t, err)
	require.Equal(t, testnetNull, a.String())
	require.Equal(t, testnetNullVerb, a.VerboseString())
	require.Equal(t, address.TypeNull, a.Type())
	require.Equal(t, "0x0000000000000000000000000000000000000000", a.Hex())

	verbose, err := address.Zero(network.TestnetID, address.Verbose())
	require.NoError(t, err)
	require.Equal(t, testnetNullVerb, verbose.String())

	_, err = address.Zero(0)
	require.ErrorIs(t, err, address.ErrInvalidNetworkID)
}

func TestAddress_FromPublicKey(t *testing.T) {
	t.Parallel()
	pub, err := util.Decode("0xdacdaeba8e391e7649d3ac4b5329ca0e202d38facd928d88b5f729b89a497e43" +
		"cc4ad3816fcfdb241497b3b43862afb4c899bc284bf60feca4ee66ff868d1feb")
	require.NoError(t, err)
	a, err := address.FromPublicKey(pub, network.TestnetID)
	require.NoError(t, err)
	require.Equal(t, "cfxtest:aamw4kj6g41pgedw1efjnsm59fbz0b9r1awbp8k2p2", a.String())
	want, err := util.Decode("0x152d251c36aec31072b90a85b95bf9435b07edb8")
	require.NoError(t, err)
	require.Equal(t, want, a.Bytes())
	require.Equal(t, address.TypeUser, a.Type())

	_, err = address.FromPublicKey(pub[:10], network.TestnetID)
	require.Error(t, err)
	_, err = address.FromPublicKey(pub, 0)
	require.ErrorIs(t, err, address.ErrInvalidNetworkID)
}

func TestAddress_FromPublicKeyForms(t *testing.T) {
	t.Parallel()
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	pub := key.PubKey()

	raw, err := address.FromPublicKey(pub.SerializeUncompressed()[1:], network.MainnetID)
	require.NoError(t, err)
	require.Equal(t, address.TypeUser, raw.Type())
	for _, form := range [][]byte{pub.SerializeUncompressed(), pub.SerializeCompressed()} {
		a, err := address.FromPublicKey(form, network.MainnetID)
		require.NoError(t, err)
		require.True(t, raw.Equal(a))
	}
	require.Equal(t, raw.Payload(), address.PublicKeyPayload(signing.FromSecp256k1(pub)))
}

func TestAddress_Decode(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name    string
		text    string
		network network.ID
		typ     address.Type
	}{
		{name: "compact", text: testnetUser, network: network.TestnetID, typ: address.TypeUser},
		{name: "verbose", text: testnetVerbose, network: network.TestnetID, typ: address.TypeUser},
		{name: "upper case compact", text: "CFXTEST:AATP533CG7D0AGBD87KZ48NJ1MPNKCA8BE1RZ695J4", network: network.TestnetID, typ: address.TypeUser},
		{name: "mainnet", text: mainnetUser, network: network.MainnetID, typ: address.TypeUser},
		{name: "mainnet verbose", text: mainnetVerbose, network: network.MainnetID, typ: address.TypeUser},
		{name: "unknown option", text: "CFX:GOD:AATP533CG7D0AGBD87KZ48NJ1MPNKCA8BE7GGP3VPU", network: network.MainnetID, typ: address.TypeUser},
		{name: "custom network", text: customUser, network: 8888, typ: address.TypeUser},
		{name: "null", text: testnetNull, network: network.TestnetID, typ: address.TypeNull},
		{name: "null verbose", text: testnetNullVerb, network: network.TestnetID, typ: address.TypeNull},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := address.Decode(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.network, a.NetworkID())
			require.Equal(t, tc.typ, a.Type())
			require.False(t, a.IsVerbose())
			require.True(t, address.IsValid(tc.text))
			require.NoError(t, address.Validate(tc.text))

			again, err := address.Decode(a.String())
			require.NoError(t, err)
			require.Equal(t, a, again)
		})
	}
}

func TestAddress_DecodeErrors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name string
		text string
		err  error
	}{
		{name: "mixed case", text: "CFXTEST:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695j4", err: address.ErrInvalidFormat},
		{name: "missing prefix", text: "TYPE.USER:AATP533CG7D0AGBD87KZ48NJ1MPNKCA8BE1RZ695J4", err: address.ErrInvalidFormat},
		{name: "missing payload", text: "CFXTEST:TYPE.USER", err: address.ErrInvalidFormat},
		{name: "prefix only", text: "CFXTEST", err: address.ErrInvalidFormat},
		{name: "payload only", text: "AATP533CG7D0AGBD87KZ48NJ1MPNKCA8BE1RZ695J4", err: address.ErrInvalidFormat},
		{name: "hex", text: userHex, err: address.ErrInvalidFormat},
		{name: "empty", text: "", err: address.ErrInvalidFormat},
		{name: "too many fields", text: "cfxtest:type.user:foo:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695j4", err: address.ErrInvalidFormat},
		{name: "non canonical prefix", text: "net1:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695j4", err: address.ErrInvalidFormat},
		{name: "unknown prefix", text: "btc:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695j4", err: address.ErrInvalidFormat},
		{name: "short payload", text: "cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695j", err: address.ErrInvalidFormat},
		{name: "excluded symbol", text: "cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695jl", err: address.ErrInvalidFormat},
		{name: "kelvin sign in payload", text: "CFX:TYPE.USER:AATP533CG7D0AGBD87\u212aZ48NJ1MPN\u212aCA8BE7GGP3VPU", err: address.ErrInvalidFormat},
		{name: "kelvin sign compact", text: "cfx:aatp533cg7d0agbd87\u212az48nj1mpnkca8be7ggp3vpu", err: address.ErrInvalidFormat},
		{name: "long s in type field", text: "CFX:TYPE.U\u017fER:AATP533CG7D0AGBD87KZ48NJ1MPNKCA8BE7GGP3VPU", err: address.ErrInvalidFormat},
		{name: "altered checksum", text: "cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695ja", err: address.ErrChecksumMismatch},
		{name: "wrong type field", text: "CFX:TYPE.NULL:AATP533CG7D0AGBD87KZ48NJ1MPNKCA8BE7GGP3VPU", err: address.ErrInvalidType},
		{name: "checksum of other network", text: "cfx:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695j4", err: address.ErrChecksumMismatch},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := address.Decode(tc.text)
			require.ErrorIs(t, err, tc.err)
			require.False(t, address.IsValid(tc.text))
		})
	}
}

func TestAddress_EqualRejectsFoldedSymbols(t *testing.T) {
	t.Parallel()
	canonical, err := address.Decode(mainnetUser)
	require.NoError(t, err)
	require.False(t, canonical.Equal("CFX:TYPE.USER:AATP533CG7D0AGBD87\u212aZ48NJ1MPN\u212aCA8BE7GGP3VPU"))
	_, err = address.Equals(mainnetUser, "cfx:aatp533cg7d0agbd87\u212az48nj1mpnkca8be7ggp3vpu")
	require.ErrorIs(t, err, address.ErrInvalidFormat)
}

func TestAddress_DecodeNetwork(t *testing.T) {
	t.Parallel()
	a, err := address.Decode(testnetUser, address.WithNetworkID(network.TestnetID))
	require.NoError(t, err)
	require.Equal(t, network.TestnetID, a.NetworkID())

	_, err = address.Decode(testnetUser, address.WithNetworkID(network.MainnetID))
	require.ErrorIs(t, err, address.ErrNetworkMismatch)

	// network is checked before the checksum
	_, err = address.Decode("cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695ja", address.WithNetworkID(network.MainnetID))
	require.ErrorIs(t, err, address.ErrNetworkMismatch)
}

func TestAddress_IgnoreInvalidChecksum(t *testing.T) {
	t.Parallel()
	altered := "cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695ja"
	a, err := address.Decode(altered, address.IgnoreInvalidChecksum())
	require.NoError(t, err)
	require.Equal(t, userPayload(t), a.Payload())
	require.Equal(t, testnetUser, a.String())
}

func TestAddress_Trusted(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	c := address.NewCodec(network.DefaultParams(), address.WithLogger(zap.New(core)))

	altered := "cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695ja"
	a, err := c.Decode(altered, address.Trusted())
	require.NoError(t, err)
	require.Equal(t, userPayload(t), a.Payload())
	require.Equal(t, testnetUser, a.String())
	require.Zero(t, logs.FilterMessage("ignored checksum mismatch").Len())

	_, err = c.Decode(altered, address.Trusted(), address.WithNetworkID(network.MainnetID))
	require.ErrorIs(t, err, address.ErrNetworkMismatch)
	_, err = c.Decode("cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695j", address.Trusted())
	require.ErrorIs(t, err, address.ErrInvalidFormat)
	_, err = c.Decode("CFXTEST:TYPE.NULL:AATP533CG7D0AGBD87KZ48NJ1MPNKCA8BE1RZ695JA", address.Trusted())
	require.ErrorIs(t, err, address.ErrInvalidType)
}

func TestAddress_SingleSymbolChange(t *testing.T) {
	t.Parallel()
	prefixLen := len("cfxtest:")
	for i := prefixLen; i < len(testnetUser); i++ {
		for _, c := range []byte("abcdefghjkmnprstuvwxyz0123456789") {
			if testnetUser[i] == c {
				continue
			}
			altered := []byte(testnetUser)
			altered[i] = c
			_, err := address.Decode(string(altered))
			require.Error(t, err, "position %d symbol %c", i, c)
		}
	}
}

func TestAddress_NetworkBinding(t *testing.T) {
	t.Parallel()
	a, err := address.Decode(testnetUser)
	require.NoError(t, err)
	moved, err := a.WithNetwork(network.MainnetID)
	require.NoError(t, err)
	require.Equal(t, mainnetUser, moved.String())
	require.NotEqual(t, testnetUser[len(testnetUser)-8:], mainnetUser[len(mainnetUser)-8:])
	require.True(t, a.NotEqual(moved))

	_, err = a.WithNetwork(0)
	require.ErrorIs(t, err, address.ErrInvalidNetworkID)

	verbose := a.WithVerbose(true)
	require.Equal(t, testnetVerbose, verbose.String())
	require.Equal(t, testnetUser, verbose.Compact())
	require.False(t, a.IsVerbose())
	require.True(t, verbose.Equal(a))
}

func TestAddress_RoundTrip(t *testing.T) {
	t.Parallel()
	f := fuzz.New().NilChance(0)
	for i := 0; i < 200; i++ {
		var payload address.Payload
		var id uint32
		f.Fuzz(&payload)
		f.Fuzz(&id)
		payload[0] = payload[0]&0x0f | 0x10
		if id == 0 {
			id = 1
		}
		a, err := address.FromHex(payload, network.ID(id))
		require.NoError(t, err)
		for _, text := range []string{a.Compact(), a.VerboseString()} {
			decoded, err := address.Decode(text)
			require.NoError(t, err, text)
			require.Equal(t, payload, decoded.Payload())
			require.Equal(t, network.ID(id), decoded.NetworkID())
			require.True(t, a.Equal(text))
		}
	}
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestAddress_Equal(t *testing.T) {
	t.Parallel()
	a, err := address.Decode(testnetUser)
	require.NoError(t, err)
	mainnet, err := address.Decode(mainnetUser)
	require.NoError(t, err)

	for _, tc := range []struct {
		name  string
		other any
		equal bool
	}{
		{name: "same", other: a, equal: true},
		{name: "pointer", other: &a, equal: true},
		{name: "nil pointer", other: (*address.Address)(nil)},
		{name: "compact text", other: testnetUser, equal: true},
		{name: "verbose text", other: testnetVerbose, equal: true},
		{name: "bytes", other: []byte(testnetUser), equal: true},
		{name: "stringer", other: stringer(testnetUser), equal: true},
		{name: "other network", other: mainnet},
		{name: "other network text", other: mainnetUser},
		{name: "invalid text", other: "cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695ja"},
		{name: "hex", other: userHex},
		{name: "number", other: 42},
		{name: "nil", other: nil},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.equal, a.Equal(tc.other))
			require.Equal(t, !tc.equal, a.NotEqual(tc.other))
		})
	}
}

func TestAddress_Equals(t *testing.T) {
	t.Parallel()
	equal, err := address.Equals(testnetUser, testnetVerbose)
	require.NoError(t, err)
	require.True(t, equal)

	equal, err = address.Equals(testnetUser, mainnetUser)
	require.NoError(t, err)
	require.False(t, equal)

	_, err = address.Equals(testnetUser, "cfxtest:")
	require.ErrorIs(t, err, address.ErrInvalidFormat)
}

func TestAddress_Abbr(t *testing.T) {
	t.Parallel()
	testnet, err := address.Decode(testnetUser)
	require.NoError(t, err)
	require.Equal(t, "cfxtest:aat...95j4", testnet.Abbr())
	require.Equal(t, "cfxtest:aat...95j4", testnet.CompressedAbbr())

	mainnet, err := address.Decode(mainnetUser)
	require.NoError(t, err)
	require.Equal(t, "cfx:aat...7ggp3vpu", mainnet.Abbr())
	require.Equal(t, "cfx:aat...3vpu", mainnet.CompressedAbbr())

	short, err := address.Shorten(mainnetVerbose, false)
	require.NoError(t, err)
	require.Equal(t, "cfx:aat...7ggp3vpu", short)
	short, err = address.Shorten(mainnetUser, true)
	require.NoError(t, err)
	require.Equal(t, "cfx:aat...3vpu", short)

	_, err = address.Shorten("cfx:aat", false)
	require.ErrorIs(t, err, address.ErrInvalidFormat)
}

func TestAddress_MappedEVMSpaceAddress(t *testing.T) {
	t.Parallel()
	const mapped = "0x349f086998cF4a0C5a00b853a0E93239D81A97f6"
	a, err := address.Decode(mainnetUser)
	require.NoError(t, err)
	require.Equal(t, mapped, a.MappedEVMSpaceAddress())

	got, err := address.MappedEVMSpaceAddress(testnetVerbose)
	require.NoError(t, err)
	require.Equal(t, mapped, got)

	_, err = address.MappedEVMSpaceAddress(userHex)
	require.Error(t, err)
}

func TestEthEOAToHex(t *testing.T) {
	t.Parallel()
	got, err := address.EthEOAToHex("0xd43d2a93e97245E290feE74276a1EF8D275bE646")
	require.NoError(t, err)
	require.Equal(t, "0x143d2a93e97245e290fee74276a1ef8d275be646", got)

	_, err = address.EthEOAToHex("0xd43d")
	require.ErrorIs(t, err, address.ErrInvalidHex)
}

func TestClassify(t *testing.T) {
	t.Parallel()
	require.Equal(t, address.TypeNull, address.Classify(address.Payload{}))
	for b := 0; b < 256; b++ {
		var p address.Payload
		p[0] = byte(b)
		p[19] = 1
		want := address.TypeInvalid
		switch b >> 4 {
		case 0x0:
			want = address.TypeBuiltin
		case 0x1:
			want = address.TypeUser
		case 0x8:
			want = address.TypeContract
		}
		require.Equal(t, want, address.Classify(p), "first byte %#x", b)
	}
}

func TestType(t *testing.T) {
	t.Parallel()
	for _, typ := range []address.Type{
		address.TypeInvalid, address.TypeNull, address.TypeBuiltin, address.TypeUser, address.TypeContract,
	} {
		parsed, err := address.ParseType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}
	parsed, err := address.ParseType("CONTRACT")
	require.NoError(t, err)
	require.Equal(t, address.TypeContract, parsed)
	_, err = address.ParseType("god")
	require.ErrorIs(t, err, address.ErrInvalidType)
	_, err = address.ParseType("u\u017fer")
	require.ErrorIs(t, err, address.ErrInvalidType)
	require.Equal(t, "Type(9)", address.Type(9).String())
}

func TestAddress_Parse(t *testing.T) {
	t.Parallel()
	a, err := address.Parse(userHex, address.WithNetworkID(network.TestnetID))
	require.NoError(t, err)
	require.Equal(t, testnetUser, a.String())

	a, err = address.Parse(userHex)
	require.NoError(t, err)
	require.Equal(t, mainnetUser, a.String())

	a, err = address.Parse(mainnetVerbose, address.WithNetworkID(network.TestnetID), address.Verbose())
	require.NoError(t, err)
	require.Equal(t, testnetVerbose, a.String())

	_, err = address.Parse("hello")
	require.ErrorIs(t, err, address.ErrInvalidFormat)
	_, err = address.Parse(invalidTypeHex)
	require.ErrorIs(t, err, address.ErrInvalidType)
}

func TestAddress_CustomParams(t *testing.T) {
	t.Parallel()
	cfg := network.DefaultConfig()
	cfg.Networks["dev"] = 1234
	params, err := network.NewParams(cfg)
	require.NoError(t, err)
	c := address.NewCodec(params)
	require.Same(t, params, c.Params())

	a, err := c.FromHexString(userHex, 1234)
	require.NoError(t, err)
	require.Equal(t, "dev:", a.String()[:4])

	decoded, err := c.Decode(a.String())
	require.NoError(t, err)
	require.True(t, a.Equal(decoded))
	require.True(t, a.Equal(a.VerboseString()))

	_, err = address.Decode(a.String())
	require.ErrorIs(t, err, address.ErrInvalidFormat)
	_, err = c.Decode("net1234" + a.String()[3:])
	require.ErrorIs(t, err, address.ErrInvalidFormat)
}

func TestAddress_EqualVersionByte(t *testing.T) {
	t.Parallel()
	cfg := network.DefaultConfig()
	cfg.VersionByte = 1
	params, err := network.NewParams(cfg)
	require.NoError(t, err)
	c := address.NewCodec(params)

	versioned, err := c.FromHexString(userHex, network.MainnetID)
	require.NoError(t, err)
	current, err := address.FromHexString(userHex, network.MainnetID)
	require.NoError(t, err)
	require.Equal(t, current.Payload(), versioned.Payload())
	require.Equal(t, current.NetworkID(), versioned.NetworkID())
	require.NotEqual(t, current.String(), versioned.String())

	require.False(t, current.Equal(versioned))
	require.False(t, versioned.Equal(current))
	require.True(t, current.NotEqual(&versioned))

	again, err := c.Decode(versioned.String())
	require.NoError(t, err)
	require.True(t, versioned.Equal(again))
}

func TestAddress_Text(t *testing.T) {
	t.Parallel()
	type wrapper struct {
		Account address.Address `json:"account"`
	}
	for _, text := range []string{testnetUser, testnetVerbose} {
		a, err := address.Decode(text, func() []address.Opt {
			if text == testnetVerbose {
				return []address.Opt{address.Verbose()}
			}
			return nil
		}()...)
		require.NoError(t, err)
		buf, err := json.Marshal(wrapper{Account: a})
		require.NoError(t, err)
		require.JSONEq(t, fmt.Sprintf(`{"account": %q}`, text), string(buf))

		var decoded wrapper
		require.NoError(t, json.Unmarshal(buf, &decoded))
		require.Equal(t, a, decoded.Account)
	}

	var a address.Address
	require.Error(t, a.UnmarshalText([]byte("cfxtest:")))
	_, err := a.MarshalText()
	require.ErrorIs(t, err, address.ErrInvalidNetworkID)
}

func TestAddress_Scale(t *testing.T) {
	t.Parallel()
	a, err := address.Decode(testnetUser)
	require.NoError(t, err)
	buf, err := codec.Encode(&a)
	require.NoError(t, err)
	require.Len(t, buf, 1+len(a.Payload()))
	require.Equal(t, a.Bytes(), buf[1:])

	var decoded address.Address
	require.NoError(t, codec.Decode(buf, &decoded))
	require.Equal(t, a, decoded)

	mainnet, err := address.Decode(mainnetUser)
	require.NoError(t, err)
	list := []address.Address{a, mainnet}
	buf, err = codec.EncodeSlice(list)
	require.NoError(t, err)
	got, err := codec.DecodeSlice[address.Address](buf)
	require.NoError(t, err)
	require.Equal(t, list, got)

	zero := address.Address{}
	buf, err = codec.Encode(&zero)
	require.NoError(t, err)
	require.ErrorIs(t, codec.Decode(buf, &decoded), address.ErrInvalidNetworkID)
}

func TestAddress_MarshalLogObject(t *testing.T) {
	t.Parallel()
	a, err := address.Decode(testnetVerbose)
	require.NoError(t, err)
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, a.MarshalLogObject(enc))
	require.Equal(t, testnetUser, enc.Fields["address"])
	require.Equal(t, userChecksumHex, enc.Fields["hex"])
	require.Equal(t, uint32(network.TestnetID), enc.Fields["network"])
	require.Equal(t, "user", enc.Fields["type"])
}

func TestCodec_Logger(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	c := address.NewCodec(network.DefaultParams(), address.WithLogger(zap.New(core)))

	_, err := c.Decode("cfxtest:aatp533cg7d0agbd87kz48nj1mpnkca8be1rz695ja", address.IgnoreInvalidChecksum())
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("ignored checksum mismatch").Len())

	_, err = c.Decode("cfxtest:")
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("failed to decode address").Len())
}
