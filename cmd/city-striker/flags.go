package main

import (
	"flag"

	"github.com/lixenwraith/city-striker/config"
	"github.com/lixenwraith/city-striker/parameter"
)

// cliFlags override the environment when explicitly set
type cliFlags struct {
	config   string
	debug    bool
	headless bool
	mute     bool
	tickRate int
	seed     uint64
	bridge   string
	codec    string
	volume   int
}

func registerFlags(fs *flag.FlagSet) *cliFlags {
	f := &cliFlags{}
	fs.StringVar(&f.config, "config", ".env", "Dotenv file with CITY_STRIKER_ settings")
	fs.BoolVar(&f.debug, "debug", false, "Write logs to logs/city-striker.log")
	fs.BoolVar(&f.headless, "headless", false, "Run without the terminal UI")
	fs.BoolVar(&f.mute, "mute", false, "Start with audio muted")
	fs.IntVar(&f.tickRate, "tick-rate", parameter.DefaultTickRate, "Simulation rate in Hz")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed, 0 for time based")
	fs.StringVar(&f.bridge, "bridge", "", "Renderer bridge listen address, empty disables")
	fs.StringVar(&f.codec, "codec", config.DefaultBridgeCodec, "Renderer bridge codec: json, msgpack")
	fs.IntVar(&f.volume, "volume", config.DefaultMasterVolume, "Master volume 0-100")
	return f
}

// apply copies only flags present on the command line
func (f *cliFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			cfg.Debug = f.debug
		case "headless":
			cfg.Headless = f.headless
		case "mute":
			cfg.AudioEnabled = !f.mute
		case "tick-rate":
			cfg.TickRate = f.tickRate
		case "seed":
			cfg.Seed = f.seed
		case "bridge":
			cfg.BridgeAddr = f.bridge
		case "codec":
			cfg.BridgeCodec = f.codec
		case "volume":
			cfg.MasterVolume = f.volume
		}
	})
}
