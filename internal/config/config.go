package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window     WindowConfig `toml:"window"`
	Assets     AssetConfig  `toml:"assets"`
	Audio      AudioConfig  `toml:"audio"`
	Fonts      FontConfig   `toml:"fonts"`
	Seed       int64        `toml:"seed"`
	Difficulty string       `toml:"difficulty"`
}

type WindowConfig struct {
	Title string  `toml:"title"`
	Scale float64 `toml:"scale"`
	TPS   int     `toml:"tps"`
}

type AssetConfig struct {
	Dir string `toml:"dir"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// FontConfig lists preferred font names per role, first found wins.
type FontConfig struct {
	Title []string `toml:"title"`
	Stat  []string `toml:"stat"`
	Label []string `toml:"label"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{Title: "Chasse Express", Scale: 1, TPS: 60},
		Assets: AssetConfig{Dir: "assets"},
		Audio:  AudioConfig{Enabled: true, Volume: 0.5},
		Fonts: FontConfig{
			Title: []string{"NeutraText", "Montserrat"},
			Stat:  []string{"Consolas", "DejaVuSansMono"},
			Label: []string{"Montserrat"},
		},
	}
}

// Load builds the configuration: defaults, then envFile, then the TOML
// file at path, then CHASSE_* environment variables. Missing files are
// skipped.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("CHASSE_ASSETS"); ok {
		cfg.Assets.Dir = v
	}
	if v, ok := os.LookupEnv("CHASSE_DIFFICULTY"); ok {
		cfg.Difficulty = v
	}
	if v, ok := os.LookupEnv("CHASSE_SCALE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: CHASSE_SCALE: %v", ErrInvalid, err)
		}
		cfg.Window.Scale = f
	}
	if v, ok := os.LookupEnv("CHASSE_TPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CHASSE_TPS: %v", ErrInvalid, err)
		}
		cfg.Window.TPS = n
	}
	if v, ok := os.LookupEnv("CHASSE_VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: CHASSE_VOLUME: %v", ErrInvalid, err)
		}
		cfg.Audio.Volume = f
	}
	if v, ok := os.LookupEnv("CHASSE_MUTE"); ok {
		mute, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: CHASSE_MUTE: %v", ErrInvalid, err)
		}
		cfg.Audio.Enabled = !mute
	}
	if v, ok := os.LookupEnv("CHASSE_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: CHASSE_SEED: %v", ErrInvalid, err)
		}
		cfg.Seed = n
	}
	return nil
}

// Validate checks ranges. The difficulty label is not checked here; an
// unknown label is handled by the menu.
func (c Config) Validate() error {
	switch {
	case c.Window.Scale <= 0 || c.Window.Scale > 8:
		return fmt.Errorf("%w: window scale %v not in (0, 8]", ErrInvalid, c.Window.Scale)
	case c.Window.TPS < 1 || c.Window.TPS > 240:
		return fmt.Errorf("%w: tps %d not in [1, 240]", ErrInvalid, c.Window.TPS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v not in [0, 1]", ErrInvalid, c.Audio.Volume)
	case c.Assets.Dir == "":
		return fmt.Errorf("%w: empty asset dir", ErrInvalid)
	}
	return nil
}
