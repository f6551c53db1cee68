package orbitalsim

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _simconfig{}
)

// _simconfig is a "hidden" struct, just use `simConfig`.
type _simconfig struct {
	Ephemeris string // "static" or "meeus"
	outputDir string
}

// simConfig returns the orbitalsim configuration. Unlike a mission tool, a propagation
// core must run without any file on disk, so a missing ORBITALSIM_CONFIG falls back to
// defaults instead of failing; a present but broken config still panics loudly.
func simConfig() _simconfig {
	if cfgLoaded {
		return config
	}
	config = _simconfig{Ephemeris: "static", outputDir: "."}
	confPath := os.Getenv("ORBITALSIM_CONFIG")
	if confPath == "" {
		cfgLoaded = true
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	if eph := viper.GetString("ephemeris.source"); eph != "" {
		config.Ephemeris = eph
	}
	if out := viper.GetString("general.output_path"); out != "" {
		config.outputDir = out
	}
	cfgLoaded = true
	return config
}

// NewEnvironmentFromConfig returns the environment provider selected by conf.toml:
// "meeus" for the ephemeris-backed provider, anything else for the static one.
func NewEnvironmentFromConfig(epoch time.Time) EnvironmentProvider {
	if simConfig().Ephemeris == "meeus" {
		return NewMeeusEnvironment(epoch)
	}
	env := NewStaticEnvironment(Earth)
	env.SimTime = epoch
	return env
}
