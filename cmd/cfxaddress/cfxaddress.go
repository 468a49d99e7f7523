// Package cfxaddress implements the command line tool converting between hex
// account identifiers and base32 addresses.
package cfxaddress

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-cfxaddress/cache"
	"github.com/spacemeshos/go-cfxaddress/cmd"
	"github.com/spacemeshos/go-cfxaddress/codec"
	"github.com/spacemeshos/go-cfxaddress/common/types/address"
	"github.com/spacemeshos/go-cfxaddress/common/types/address/network"
	"github.com/spacemeshos/go-cfxaddress/common/util"
	"github.com/spacemeshos/go-cfxaddress/config"
	"github.com/spacemeshos/go-cfxaddress/metrics"
)

// Logger names.
const (
	AppLogger   = "cfxaddress"
	CodecLogger = "codec"
	CacheLogger = "cache"
)

// ErrInvalidAddresses is returned by validate when some of the addresses are invalid.
var ErrInvalidAddresses = errors.New("invalid addresses")

type app struct {
	conf    *config.Config
	logger  *zap.Logger
	codec   *address.Codec
	decoder *cache.Decoder
}

func newApp(conf *config.Config) (*app, error) {
	logger, err := cmd.NewLogger(conf, AppLogger, conf.LOGGING.AppLoggerLevel)
	if err != nil {
		return nil, err
	}
	codecLogger, err := cmd.NewLogger(conf, CodecLogger, conf.LOGGING.CodecLoggerLevel)
	if err != nil {
		return nil, err
	}
	cacheLogger, err := cmd.NewLogger(conf, CacheLogger, conf.LOGGING.CacheLoggerLevel)
	if err != nil {
		return nil, err
	}
	params, err := conf.NetworkParams()
	if err != nil {
		return nil, err
	}
	addressCodec := address.NewCodec(params, address.WithLogger(codecLogger))
	decoder, err := cache.New(addressCodec, conf.Cache, cache.WithLogger(cacheLogger))
	if err != nil {
		return nil, err
	}
	logger.Debug("configured",
		zap.String("preset", conf.Preset),
		zap.Uint32("default network", uint32(params.DefaultNetwork())),
		zap.Int("cache size", conf.Cache.Size),
	)
	return &app{
		conf:    conf,
		logger:  logger,
		codec:   addressCodec,
		decoder: decoder,
	}, nil
}

// renderOpts returns the options every rendered address is built with.
func (a *app) renderOpts(extra ...address.Opt) []address.Opt {
	if a.conf.Verbose {
		extra = append(extra, address.Verbose())
	}
	return extra
}

// targetNetwork returns id, or the default network if id is zero.
func (a *app) targetNetwork(id uint32) network.ID {
	if id == 0 {
		return a.codec.Params().DefaultNetwork()
	}
	return network.ID(id)
}

// GetCommand returns the root command of the tool.
func GetCommand() *cobra.Command {
	conf := config.DefaultConfig()
	var a *app

	c := &cobra.Command{
		Use:           "cfxaddress",
		Short:         "convert between hex account identifiers and base32 addresses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if err := cmd.Configure(c, &conf); err != nil {
				return err
			}
			var err error
			a, err = newApp(&conf)
			return err
		},
		PersistentPostRunE: func(c *cobra.Command, args []string) error {
			if a != nil {
				_ = a.logger.Sync()
			}
			if !conf.DumpMetrics {
				return nil
			}
			return metrics.Dump(c.ErrOrStderr(), prometheus.DefaultGatherer)
		},
	}
	cmd.AddFlags(c.PersistentFlags(), &conf)

	var (
		encodeNetwork uint32
		encodeInvalid bool
		encodeScale   bool
	)
	encodeCmd := &cobra.Command{
		Use:   "encode <hex>...",
		Short: "encode 0x prefixed hex account identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			opts := a.renderOpts()
			if encodeInvalid {
				opts = append(opts, address.IgnoreInvalidType())
			}
			addrs := make([]address.Address, 0, len(args))
			for _, arg := range args {
				addr, err := a.codec.FromHexString(arg, a.targetNetwork(encodeNetwork), opts...)
				if err != nil {
					return err
				}
				addrs = append(addrs, addr)
			}
			if encodeScale {
				return printScale(c.OutOrStdout(), addrs)
			}
			for _, addr := range addrs {
				if _, err := fmt.Fprintln(c.OutOrStdout(), addr); err != nil {
					return err
				}
			}
			return nil
		},
	}
	encodeCmd.Flags().Uint32VarP(&encodeNetwork, "network", "n", 0, "network id, the default network if unset")
	encodeCmd.Flags().BoolVar(&encodeInvalid, "ignore-invalid-type", false, "accept identifiers of the invalid type")
	encodeCmd.Flags().BoolVar(&encodeScale, "scale", false,
		"print the binary form in hex, a length prefixed list for several identifiers")
	c.AddCommand(encodeCmd)

	var (
		scaleList    bool
		scaleInvalid bool
	)
	scaleCmd := &cobra.Command{
		Use:   "scale <hex>",
		Short: "decode addresses from their binary form",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			buf, err := util.Decode(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q: %w", address.ErrInvalidHex, args[0], err)
			}
			var decoded []address.Address
			if scaleList {
				decoded, err = codec.DecodeSlice[address.Address](buf)
			} else {
				var addr address.Address
				err = codec.Decode(buf, &addr)
				decoded = []address.Address{addr}
			}
			if err != nil {
				return err
			}
			opts := a.renderOpts()
			if scaleInvalid {
				opts = append(opts, address.IgnoreInvalidType())
			}
			for _, d := range decoded {
				// render with the configured network table
				addr, err := a.codec.FromHex(d.Payload(), d.NetworkID(), opts...)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(c.OutOrStdout(), addr); err != nil {
					return err
				}
			}
			return nil
		},
	}
	scaleCmd.Flags().BoolVar(&scaleList, "list", false, "read a length prefixed list of addresses")
	scaleCmd.Flags().BoolVar(&scaleInvalid, "ignore-invalid-type", false, "accept identifiers of the invalid type")
	c.AddCommand(scaleCmd)

	var (
		decodeNetwork  uint32
		decodeChecksum bool
		decodeInvalid  bool
	)
	decodeCmd := &cobra.Command{
		Use:   "decode <address>",
		Short: "decode a base32 address",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			opts := a.renderOpts(address.WithNetworkID(network.ID(decodeNetwork)))
			if decodeChecksum {
				opts = append(opts, address.IgnoreInvalidChecksum())
			}
			if decodeInvalid {
				opts = append(opts, address.IgnoreInvalidType())
			}
			addr, err := a.codec.Decode(args[0], opts...)
			if err != nil {
				return err
			}
			return printAddress(c.OutOrStdout(), addr)
		},
	}
	decodeCmd.Flags().Uint32VarP(&decodeNetwork, "network", "n", 0, "expected network id, any network if unset")
	decodeCmd.Flags().BoolVar(&decodeChecksum, "ignore-invalid-checksum", false, "accept addresses with a wrong checksum")
	decodeCmd.Flags().BoolVar(&decodeInvalid, "ignore-invalid-type", false, "accept addresses of the invalid type")
	c.AddCommand(decodeCmd)

	var pubkeyNetwork uint32
	pubkeyCmd := &cobra.Command{
		Use:   "pubkey <hex public key>",
		Short: "derive the address of a secp256k1 public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			pub, err := util.Decode(args[0])
			if err != nil {
				return fmt.Errorf("public key %q: %w", args[0], err)
			}
			addr, err := a.codec.FromPublicKey(pub, a.targetNetwork(pubkeyNetwork), a.renderOpts()...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), addr)
			return err
		},
	}
	pubkeyCmd.Flags().Uint32VarP(&pubkeyNetwork, "network", "n", 0, "network id, the default network if unset")
	c.AddCommand(pubkeyCmd)

	c.AddCommand(&cobra.Command{
		Use:   "checksum <hex>",
		Short: "render a hex account identifier in the mixed case checksummed form",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			payload, err := util.DecodeAddress(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q: %w", address.ErrInvalidHex, args[0], err)
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), util.ChecksumHex(payload))
			return err
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "eoa <hex>",
		Short: "convert the hex address of an externally owned account to a user identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			converted, err := address.EthEOAToHex(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), converted)
			return err
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "mapped <address>",
		Short: "print the hex address of the mapped account in the EVM space",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			mapped, err := a.codec.MappedEVMSpaceAddress(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), mapped)
			return err
		},
	})

	var compressed bool
	abbrCmd := &cobra.Command{
		Use:   "abbr <address>",
		Short: "print the abbreviation of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			short, err := a.codec.Shorten(args[0], compressed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), short)
			return err
		},
	}
	abbrCmd.Flags().BoolVar(&compressed, "compressed", false, "keep the last 4 symbols on every network")
	c.AddCommand(abbrCmd)

	validateCmd := &cobra.Command{
		Use:   "validate [address...]",
		Short: "validate addresses given as arguments or one per line on stdin",
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				lines, err := readLines(c.InOrStdin())
				if err != nil {
					return err
				}
				args = lines
			}
			return a.validate(c.OutOrStdout(), args)
		},
	}
	c.AddCommand(validateCmd)

	c.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintln(c.OutOrStdout(), cmd.Version)
		},
	})
	return c
}

func (a *app) validate(w io.Writer, texts []string) error {
	invalid := 0
	for _, text := range texts {
		if _, err := a.decoder.Decode(text); err != nil {
			invalid++
			if _, err := fmt.Fprintf(w, "%s\tinvalid: %v\n", text, err); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\tvalid\n", text); err != nil {
			return err
		}
	}
	a.logger.Debug("validated addresses",
		zap.Int("total", len(texts)),
		zap.Int("invalid", invalid),
		zap.Int("cached", a.decoder.Len()),
	)
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidAddresses, invalid, len(texts))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read addresses: %w", err)
	}
	return lines, nil
}

func printAddress(w io.Writer, a address.Address) error {
	buf, err := codec.Encode(&a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "address\t%s\nverbose\t%s\nhex\t%s\nnetwork\t%d\ntype\t%s\nabbr\t%s\nmapped\t%s\nscale\t%s\n",
		a, a.VerboseString(), a.Hex(), a.NetworkID(), a.Type(), a.Abbr(), a.MappedEVMSpaceAddress(), util.Encode(buf))
	return err
}

func printScale(w io.Writer, addrs []address.Address) error {
	var (
		buf []byte
		err error
	)
	if len(addrs) == 1 {
		buf, err = codec.Encode(&addrs[0])
	} else {
		buf, err = codec.EncodeSlice(addrs)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, util.Encode(buf))
	return err
}
