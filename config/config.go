package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/city-striker/parameter"
)

// EnvPrefix namespaces every recognised environment variable
const EnvPrefix = "CITY_STRIKER_"

// Environment keys, without prefix
const (
	KeyTickRate     = "TICK_RATE"
	KeySeed         = "SEED"
	KeyDebug        = "DEBUG"
	KeyAudioEnabled = "AUDIO_ENABLED"
	KeyMasterVolume = "MASTER_VOLUME"
	KeyBridgeAddr   = "BRIDGE_ADDR"
	KeyBridgeCodec  = "BRIDGE_CODEC"
	KeyHeadless     = "HEADLESS"
)

// ErrInvalidValue is wrapped by every parse and range failure
var ErrInvalidValue = errors.New("invalid config value")

const (
	DefaultMasterVolume = 30
	DefaultBridgeCodec  = "json"

	maxTickRate = 1000
)

// Config holds host settings; gameplay constants live in parameter
type Config struct {
	TickRate     int    // Hz
	Seed         uint64 // 0 selects a time based seed
	Debug        bool
	AudioEnabled bool
	MasterVolume int    // 0-100
	BridgeAddr   string // empty disables the bridge
	BridgeCodec  string // json | msgpack
	Headless     bool
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TickRate:     parameter.DefaultTickRate,
		AudioEnabled: true,
		MasterVolume: DefaultMasterVolume,
		BridgeCodec:  DefaultBridgeCodec,
	}
}

// Load reads an optional dotenv file then the process environment
// Process environment wins over the file; a missing file is not an error
func Load(path string) (*Config, error) {
	file := map[string]string{}
	if path != "" {
		m, err := godotenv.Read(path)
		switch {
		case err == nil:
			file = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := file[EnvPrefix+key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.apply(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	var err error
	if v, ok := lookup(KeyTickRate); ok {
		if c.TickRate, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return invalid(KeyTickRate, v)
		}
	}
	if v, ok := lookup(KeySeed); ok {
		if c.Seed, err = strconv.ParseUint(strings.TrimSpace(v), 10, 64); err != nil {
			return invalid(KeySeed, v)
		}
	}
	if v, ok := lookup(KeyDebug); ok {
		if c.Debug, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return invalid(KeyDebug, v)
		}
	}
	if v, ok := lookup(KeyAudioEnabled); ok {
		if c.AudioEnabled, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return invalid(KeyAudioEnabled, v)
		}
	}
	if v, ok := lookup(KeyMasterVolume); ok {
		if c.MasterVolume, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return invalid(KeyMasterVolume, v)
		}
	}
	if v, ok := lookup(KeyBridgeAddr); ok {
		c.BridgeAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(KeyBridgeCodec); ok {
		c.BridgeCodec = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(KeyHeadless); ok {
		if c.Headless, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return invalid(KeyHeadless, v)
		}
	}
	return nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > maxTickRate {
		return invalid(KeyTickRate, strconv.Itoa(c.TickRate))
	}
	if c.MasterVolume < 0 || c.MasterVolume > 100 {
		return invalid(KeyMasterVolume, strconv.Itoa(c.MasterVolume))
	}
	switch c.BridgeCodec {
	case "json", "msgpack":
	default:
		return invalid(KeyBridgeCodec, c.BridgeCodec)
	}
	return nil
}

// Volume returns master volume as 0.0-1.0
func (c *Config) Volume() float64 {
	return float64(c.MasterVolume) / 100
}

func invalid(key, value string) error {
	return fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, EnvPrefix, key, value)
}
