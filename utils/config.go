package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "GOL"

	// placements contain a comma, so list values from env are split on ';'
	listSeparator = ";"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `mapstructure:"width"`
	Height              int           `mapstructure:"height"`
	ViewX               int           `mapstructure:"view_x"`
	ViewY               int           `mapstructure:"view_y"`
	FrameRate           time.Duration `mapstructure:"frame_rate"`
	AutoRestart         bool          `mapstructure:"auto_restart"`
	StagnationThreshold int           `mapstructure:"stagnation_threshold"`
	UseScratchPool      bool          `mapstructure:"use_scratch_pool"`
	MaxGenerations      int           `mapstructure:"max_generations"`
	RandomDensity       float64       `mapstructure:"random_density"`
	InjectionCount      int           `mapstructure:"injection_count"`
	Seed                int64         `mapstructure:"seed"`
	Patterns            []string      `mapstructure:"patterns"`
	MetricsAddr         string        `mapstructure:"metrics_addr"`
	Headless            bool          `mapstructure:"headless"`
	Debug               bool          `mapstructure:"debug"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           50 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseScratchPool:      true,
		MaxGenerations:      1000,
		RandomDensity:       0,
		InjectionCount:      3,
		Seed:                1,
		Patterns:            []string{"Gosper Glider Gun@1,1"},
	}
}

// Validate rejects configurations the game loop cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got %s", c.FrameRate)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	}
	for _, p := range c.Patterns {
		if _, err := ParsePlacement(p); err != nil {
			return errors.Wrap(err, "[Validate] invalid pattern placement")
		}
	}
	return nil
}

// BindFlags registers one flag per config key on fs, named with dashes
func BindFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String("config", "", "path to a config file (json, yaml or toml)")
	fs.Int("width", d.Width, "viewport width in cells")
	fs.Int("height", d.Height, "viewport height in cells")
	fs.Int("view-x", d.ViewX, "x coordinate of the viewport's top-left cell")
	fs.Int("view-y", d.ViewY, "y coordinate of the viewport's top-left cell")
	fs.Duration("frame-rate", d.FrameRate, "tick interval")
	fs.Bool("auto-restart", d.AutoRestart, "reseed the board on extinction or stagnation")
	fs.Int("stagnation-threshold", d.StagnationThreshold, "stagnant ticks before a restart")
	fs.Bool("use-scratch-pool", d.UseScratchPool, "reuse per-tick scratch storage")
	fs.Int("max-generations", d.MaxGenerations, "stop after this many generations, 0 runs forever")
	fs.Float64("random-density", d.RandomDensity, "probability of each viewport cell starting alive")
	fs.Int("injection-count", d.InjectionCount, "random cells injected when the board stagnates")
	fs.Int64("seed", d.Seed, "random seed")
	fs.StringArray("patterns", d.Patterns, "pattern placement as Name@x,y, repeatable")
	fs.String("metrics-addr", d.MetricsAddr, "serve prometheus metrics on this address")
	fs.Bool("headless", d.Headless, "run without drawing frames")
	fs.Bool("debug", d.Debug, "enable debug logging")
}

var configKeys = []string{
	"width", "height", "view_x", "view_y", "frame_rate", "auto_restart",
	"stagnation_threshold", "use_scratch_pool", "max_generations",
	"random_density", "injection_count", "seed", "patterns", "metrics_addr",
	"headless", "debug",
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("view_x", d.ViewX)
	v.SetDefault("view_y", d.ViewY)
	v.SetDefault("frame_rate", d.FrameRate)
	v.SetDefault("auto_restart", d.AutoRestart)
	v.SetDefault("stagnation_threshold", d.StagnationThreshold)
	v.SetDefault("use_scratch_pool", d.UseScratchPool)
	v.SetDefault("max_generations", d.MaxGenerations)
	v.SetDefault("random_density", d.RandomDensity)
	v.SetDefault("injection_count", d.InjectionCount)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("patterns", d.Patterns)
	v.SetDefault("metrics_addr", d.MetricsAddr)
	v.SetDefault("headless", d.Headless)
	v.SetDefault("debug", d.Debug)
}

// LoadConfig loads configuration from defaults, an optional file, GOL_*
// environment variables and flags, later sources winning.
// An empty filename looks for ./config.{json,yaml,toml} and skips it when absent.
func LoadConfig(filename string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for _, key := range configKeys {
			if f := fs.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to bind flag: %+v", f.Name)
				}
			}
		}
	}

	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return DefaultConfig(), errors.Wrap(err, "[LoadConfig] failed to read config from working directory")
			}
		}
	}

	var config Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(listSeparator),
	))
	if err := v.Unmarshal(&config, decodeHook); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", v.ConfigFileUsed())
	}
	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[LoadConfig] invalid configuration")
	}

	return config, nil
}

// Placement is a request to stamp a named pattern at an origin
type Placement struct {
	Name string
	X    int
	Y    int
}

// ParsePlacement parses "Name@x,y". The name may contain spaces.
func ParsePlacement(s string) (Placement, error) {
	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return Placement{}, errors.Errorf("[ParsePlacement] expected Name@x,y, got %q", s)
	}
	coords := strings.Split(s[at+1:], ",")
	if len(coords) != 2 {
		return Placement{}, errors.Errorf("[ParsePlacement] expected x,y after @, got %q", s[at+1:])
	}
	x, err := strconv.Atoi(strings.TrimSpace(coords[0]))
	if err != nil {
		return Placement{}, errors.Wrapf(err, "[ParsePlacement] invalid x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(coords[1]))
	if err != nil {
		return Placement{}, errors.Wrapf(err, "[ParsePlacement] invalid y in %q", s)
	}
	return Placement{Name: strings.TrimSpace(s[:at]), X: x, Y: y}, nil
}
