package address

import (
	"go.uber.org/zap"

	"github.com/spacemeshos/go-cfxaddress/common/types/address/network"
)

type options struct {
	network        network.ID
	verbose        bool
	trusted        bool
	ignoreChecksum bool
	ignoreType     bool
}

func applyOpts(opts []Opt) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Opt changes how a single address is built or decoded.
type Opt func(*options)

// Verbose renders the address in the verbose form.
func Verbose() Opt {
	return func(o *options) {
		o.verbose = true
	}
}

// Trusted marks decoded text as coming from a source that already verified it:
// the checksum is neither computed nor compared. The structure, the network and
// the type are still checked.
func Trusted() Opt {
	return func(o *options) {
		o.trusted = true
	}
}

// IgnoreInvalidType accepts payloads of the invalid type.
func IgnoreInvalidType() Opt {
	return func(o *options) {
		o.ignoreType = true
	}
}

// IgnoreInvalidChecksum accepts addresses with a checksum that doesn't verify.
func IgnoreInvalidChecksum() Opt {
	return func(o *options) {
		o.ignoreChecksum = true
	}
}

// WithNetworkID requires decoded addresses to belong to the network.
func WithNetworkID(id network.ID) Opt {
	return func(o *options) {
		o.network = id
	}
}

// CodecOpt configures a Codec.
type CodecOpt func(*Codec)

// WithLogger sets the logger of the codec.
func WithLogger(logger *zap.Logger) CodecOpt {
	return func(c *Codec) {
		c.logger = logger
	}
}
