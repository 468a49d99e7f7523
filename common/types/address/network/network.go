// Package network holds the network identifiers and the prefixes they are rendered
// with in textual addresses.
package network

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ID identifies a chain. Zero is not a valid network id.
type ID uint32

const (
	// MainnetID is the id of the main network.
	MainnetID ID = 1029
	// TestnetID is the id of the public test network.
	TestnetID ID = 1

	// MainnetPrefix is the prefix of main network addresses.
	MainnetPrefix = "cfx"
	// TestnetPrefix is the prefix of test network addresses.
	TestnetPrefix = "cfxtest"
	// CommonPrefix is followed by the decimal network id for networks without a name.
	CommonPrefix = "net"

	// DefaultVersionByte is the version byte of the address format.
	DefaultVersionByte = 0x00
)

var (
	// ErrInvalidNetworkID is returned for the zero network id.
	ErrInvalidNetworkID = errors.New("invalid network id")
	// ErrInvalidPrefix is returned when a prefix names no network or is not canonical.
	ErrInvalidPrefix = errors.New("invalid network prefix")
	// ErrInvalidConfig is returned when a network table can't be built from a Config.
	ErrInvalidConfig = errors.New("invalid network config")
)

// Validate checks that id may be used in an address.
func (id ID) Validate() error {
	if id == 0 {
		return fmt.Errorf("%w: expected a positive integer, got %d", ErrInvalidNetworkID, id)
	}
	return nil
}

// reserved networks are part of every table and can't be renamed.
var reserved = map[string]ID{
	MainnetPrefix: MainnetID,
	TestnetPrefix: TestnetID,
}

// Config is the configuration of the network table.
type Config struct {
	// Networks maps a prefix to a network id. They are added to the mainnet and
	// testnet entries, which can be listed but not remapped. Prefixes are lower
	// case letters and must not start with CommonPrefix.
	Networks       map[string]uint32 `mapstructure:"networks"`
	DefaultNetwork uint32            `mapstructure:"default-network"`
	VersionByte    uint8             `mapstructure:"version-byte"`
}

// DefaultConfig returns the default configuration of the network table.
func DefaultConfig() Config {
	return Config{
		Networks: map[string]uint32{
			MainnetPrefix: uint32(MainnetID),
			TestnetPrefix: uint32(TestnetID),
		},
		DefaultNetwork: uint32(MainnetID),
		VersionByte:    DefaultVersionByte,
	}
}

// DefaultTestConfig returns the default test configuration of the network table.
func DefaultTestConfig() Config {
	cfg := DefaultConfig()
	cfg.DefaultNetwork = uint32(TestnetID)
	return cfg
}

// Params is an immutable network table. It is safe for concurrent use.
type Params struct {
	names          map[ID]string
	ids            map[string]ID
	defaultNetwork ID
	version        byte
}

var defaultParams = func() *Params {
	p, err := NewParams(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return p
}()

// DefaultParams returns the table built from DefaultConfig.
func DefaultParams() *Params {
	return defaultParams
}

// NewParams validates cfg and builds a table from it. The table does not share
// memory with cfg.
func NewParams(cfg Config) (*Params, error) {
	p := &Params{
		names:          make(map[ID]string, len(reserved)+len(cfg.Networks)),
		ids:            make(map[string]ID, len(reserved)+len(cfg.Networks)),
		defaultNetwork: ID(cfg.DefaultNetwork),
		version:        cfg.VersionByte,
	}
	for name, id := range reserved {
		p.names[id] = name
		p.ids[name] = id
	}
	for name, id := range cfg.Networks {
		if err := validateName(name); err != nil {
			return nil, err
		}
		if want, ok := reserved[name]; ok {
			if ID(id) != want {
				return nil, fmt.Errorf("%w: network %q is reserved for id %d, got %d", ErrInvalidConfig, name, want, id)
			}
			continue
		}
		if err := ID(id).Validate(); err != nil {
			return nil, fmt.Errorf("%w: network %q: %w", ErrInvalidConfig, name, err)
		}
		if other, exists := p.names[ID(id)]; exists {
			return nil, fmt.Errorf("%w: network id %d is named both %q and %q", ErrInvalidConfig, id, other, name)
		}
		p.names[ID(id)] = name
		p.ids[name] = ID(id)
	}
	if err := p.defaultNetwork.Validate(); err != nil {
		return nil, fmt.Errorf("%w: default network: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

func validateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("%w: empty network name", ErrInvalidConfig)
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 'a' || name[i] > 'z' {
			return fmt.Errorf("%w: network name %q must consist of lower case letters", ErrInvalidConfig, name)
		}
	}
	if strings.HasPrefix(name, CommonPrefix) {
		return fmt.Errorf("%w: network name %q clashes with %q prefixes", ErrInvalidConfig, name, CommonPrefix)
	}
	return nil
}

// VersionByte returns the version byte of the address format.
func (p *Params) VersionByte() byte {
	return p.version
}

// DefaultNetwork returns the network used when none is specified.
func (p *Params) DefaultNetwork() ID {
	return p.defaultNetwork
}

// Networks returns a copy of the named networks.
func (p *Params) Networks() map[string]ID {
	out := make(map[string]ID, len(p.ids))
	for name, id := range p.ids {
		out[name] = id
	}
	return out
}

// Prefix returns the prefix of a network. Unnamed networks are rendered as
// CommonPrefix followed by the decimal id.
func (p *Params) Prefix(id ID) string {
	if name, ok := p.names[id]; ok {
		return name
	}
	return CommonPrefix + strconv.FormatUint(uint64(id), 10)
}

// ParsePrefix returns the network a prefix stands for. Parsing is case insensitive,
// but only the canonical prefix of a network is accepted: a named network can't be
// spelled as CommonPrefix followed by its id, and ids have no leading zeros.
func (p *Params) ParsePrefix(prefix string) (ID, error) {
	for i := 0; i < len(prefix); i++ {
		if prefix[i] >= utf8.RuneSelf {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
		}
	}
	prefix = strings.ToLower(prefix)
	if id, ok := p.ids[prefix]; ok {
		return id, nil
	}
	digits, ok := strings.CutPrefix(prefix, CommonPrefix)
	if !ok || len(digits) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	if digits[0] == '0' {
		return 0, fmt.Errorf("%w: %q has leading zeros", ErrInvalidPrefix, prefix)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
		}
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidPrefix, prefix, err)
	}
	id := ID(n)
	if name, named := p.names[id]; named {
		return 0, fmt.Errorf("%w: network %d must be written as %q", ErrInvalidPrefix, id, name)
	}
	return id, nil
}
