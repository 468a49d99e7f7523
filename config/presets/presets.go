// Package presets holds named configurations that replace the defaults before
// the config file and the flags are applied.
package presets

import (
	"fmt"
	"sort"

	"github.com/spacemeshos/go-cfxaddress/config"
)

var presets = map[string]func() config.Config{}

func register(name string, preset func() config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("preset with name %s already exists", name))
	}
	presets[name] = preset
}

// Options returns the names of registered presets.
func Options() []string {
	var rst []string
	for name := range presets {
		rst = append(rst, name)
	}
	sort.Strings(rst)
	return rst
}

// Get returns a fresh copy of the preset with the given name.
func Get(name string) (config.Config, error) {
	preset, exists := presets[name]
	if !exists {
		return config.Config{}, fmt.Errorf("preset %s doesn't exist", name)
	}
	conf := preset()
	conf.Preset = name
	return conf, nil
}
