package presets

import (
	"github.com/spacemeshos/go-cfxaddress/common/types/address/network"
	"github.com/spacemeshos/go-cfxaddress/config"
)

func init() {
	register("testnet", testnet)
}

func testnet() config.Config {
	conf := config.DefaultConfig()
	conf.Address = network.DefaultTestConfig()
	return conf
}
