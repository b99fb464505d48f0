// Package config loads draw options from a YAML file with LVDRAW_
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvdraw/pairing"
)

// ErrRead is returned when the config file cannot be read or decoded.
var ErrRead = errors.New("config: cannot read")

// EnvPrefix prefixes environment overrides, e.g. LVDRAW_SIDE_PENALTY.
const EnvPrefix = "LVDRAW"

// Config is the file layout: pairing options at the top level plus
// process settings.
type Config struct {
	pairing.Options `mapstructure:",squash"`

	LogLevel string `mapstructure:"log_level"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{Options: pairing.DefaultOptions(), LogLevel: "info"}
}

// Load reads path (skipped when empty) over Defaults, applies environment
// overrides and validates the resulting options.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrRead, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrRead, path, err)
	}
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	o := d.Options
	v.SetDefault("avoid_history", o.AvoidHistory)
	v.SetDefault("history_penalty", o.HistoryPenalty)
	v.SetDefault("avoid_institution", o.AvoidInstitution)
	v.SetDefault("institution_penalty", o.InstitutionPenalty)
	v.SetDefault("side_allocations", string(o.SideAllocations))
	v.SetDefault("side_penalty", o.SidePenalty)
	v.SetDefault("max_times_on_one_side", o.MaxTimesOnOneSide)
	v.SetDefault("unranked_room_rank", string(o.UnrankedRoomRank))
	v.SetDefault("log_level", d.LogLevel)
}
