package presets

import "github.com/spacemeshos/go-cfxaddress/config"

func init() {
	register("mainnet", config.DefaultConfig)
}
