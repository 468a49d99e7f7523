package presets

import (
	"github.com/spacemeshos/go-cfxaddress/config"
)

// StandaloneNetworkID is the id of the local development network.
const StandaloneNetworkID = 8888

func init() {
	register("standalone", standalone)
}

func standalone() config.Config {
	conf := config.DefaultConfig()
	conf.Address.DefaultNetwork = StandaloneNetworkID
	conf.Cache.Size = 256
	conf.LOGGING.AppLoggerLevel = "info"
	conf.LOGGING.CodecLoggerLevel = "debug"
	conf.LOGGING.CacheLoggerLevel = "debug"
	return conf
}
