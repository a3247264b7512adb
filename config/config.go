package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the environment overrides. Everything is optional; the zero
// configuration resolves both tools from PATH under their usual names.
type Config struct {
	FFmpegBin  string `env:"FRAMEPICK_FFMPEG"  envDefault:"ffmpeg"`
	FFprobeBin string `env:"FRAMEPICK_FFPROBE" envDefault:"ffprobe"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
