// Package config loads meadow settings from YAML and the environment.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/phanxgames/meadow"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds all meadow settings.
type Config struct {
	Window        WindowConfig  `yaml:"window"`
	Level         LevelConfig   `yaml:"level"`
	Seed          uint64        `yaml:"seed"`
	Debug         bool          `yaml:"debug"`
	ShowFPS       bool          `yaml:"show_fps"`
	ScreenshotDir string        `yaml:"screenshot_dir"`
	Logging       LoggingConfig `yaml:"logging"`
	Catalog       CatalogConfig `yaml:"catalog"`
}

// WindowConfig configures the game window. Zero width or height fits the
// level at its tile size.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// LevelConfig configures the terrain grid.
type LevelConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	TileSize    int    `yaml:"tile_size"`
	DefaultTile string `yaml:"default_tile"` // tile type name
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// CatalogConfig overrides the type tables. An empty list keeps the built-in
// table for that category.
type CatalogConfig struct {
	Tiles   []TileConfig   `yaml:"tiles"`
	Plants  []PlantConfig  `yaml:"plants"`
	Animals []AnimalConfig `yaml:"animals"`
}

// TileConfig describes one tile type. Colors are "#rrggbb".
type TileConfig struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"` // water, dirt, grass
	Height int    `yaml:"height"`
	Dark   string `yaml:"dark"`
	Light  string `yaml:"light"`
}

// PlantConfig describes one plant type.
type PlantConfig struct {
	Name           string `yaml:"name"`
	Size           int    `yaml:"size"`
	GrowsOnWetDirt bool   `yaml:"grows_on_wet_dirt"`
}

// AnimalConfig describes one animal type. Zero speeds use the built-in
// defaults.
type AnimalConfig struct {
	Name      string  `yaml:"name"`
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"`
	TurnSpeed float64 `yaml:"turn_speed"`
}

// Limits on level dimensions.
const (
	MaxLevelSize = 512
	MinTileSize  = 8
	MaxTileSize  = 256
)

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return cfg
}

// Load reads the config file at path over the defaults, applies MEADOW_*
// environment overrides and validates the result. An empty path skips the
// file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode unmarshals YAML over cfg, rejecting unknown keys.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// envOverrides lists the settings that can come from the environment.
type envOverrides struct {
	Title         string `env:"MEADOW_TITLE"`
	WindowWidth   int    `env:"MEADOW_WINDOW_WIDTH"`
	WindowHeight  int    `env:"MEADOW_WINDOW_HEIGHT"`
	LevelWidth    int    `env:"MEADOW_LEVEL_WIDTH"`
	LevelHeight   int    `env:"MEADOW_LEVEL_HEIGHT"`
	TileSize      int    `env:"MEADOW_TILE_SIZE"`
	DefaultTile   string `env:"MEADOW_DEFAULT_TILE"`
	Seed          uint64 `env:"MEADOW_SEED"`
	Debug         bool   `env:"MEADOW_DEBUG"`
	ShowFPS       bool   `env:"MEADOW_SHOW_FPS"`
	ScreenshotDir string `env:"MEADOW_SCREENSHOT_DIR"`
	LogLevel      string `env:"MEADOW_LOG_LEVEL"`
}

// applyEnvOverrides replaces settings whose MEADOW_* variable is set. Unset
// variables keep the current values.
func (c *Config) applyEnvOverrides() error {
	o := envOverrides{
		Title:         c.Window.Title,
		WindowWidth:   c.Window.Width,
		WindowHeight:  c.Window.Height,
		LevelWidth:    c.Level.Width,
		LevelHeight:   c.Level.Height,
		TileSize:      c.Level.TileSize,
		DefaultTile:   c.Level.DefaultTile,
		Seed:          c.Seed,
		Debug:         c.Debug,
		ShowFPS:       c.ShowFPS,
		ScreenshotDir: c.ScreenshotDir,
		LogLevel:      c.Logging.Level,
	}
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.Window.Title = o.Title
	c.Window.Width = o.WindowWidth
	c.Window.Height = o.WindowHeight
	c.Level.Width = o.LevelWidth
	c.Level.Height = o.LevelHeight
	c.Level.TileSize = o.TileSize
	c.Level.DefaultTile = o.DefaultTile
	c.Seed = o.Seed
	c.Debug = o.Debug
	c.ShowFPS = o.ShowFPS
	c.ScreenshotDir = o.ScreenshotDir
	c.Logging.Level = o.LogLevel
	return nil
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window: size must not be negative, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Level.Width < 1 || c.Level.Width > MaxLevelSize || c.Level.Height < 1 || c.Level.Height > MaxLevelSize {
		errs = append(errs, fmt.Errorf("level: size must be between 1 and %d, got %dx%d", MaxLevelSize, c.Level.Width, c.Level.Height))
	}
	if c.Level.TileSize < MinTileSize || c.Level.TileSize > MaxTileSize {
		errs = append(errs, fmt.Errorf("level: tile_size must be between %d and %d, got %d", MinTileSize, MaxTileSize, c.Level.TileSize))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	cat, err := c.BuildCatalog()
	if err != nil {
		errs = append(errs, err)
	} else if _, ok := cat.TileID(c.Level.DefaultTile); !ok {
		errs = append(errs, fmt.Errorf("level: default_tile %q is not a tile type", c.Level.DefaultTile))
	}
	return errors.Join(errs...)
}

// LogLevel returns the parsed logging level, or info when it does not parse.
func (c *Config) LogLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// BuildCatalog converts the catalog section into type tables, starting from
// meadow.DefaultCatalog for empty categories.
func (c *Config) BuildCatalog() (*meadow.Catalog, error) {
	cat := meadow.DefaultCatalog()
	var errs []error

	if len(c.Catalog.Tiles) > 0 {
		cat.Tiles = cat.Tiles[:0]
		for i, tc := range c.Catalog.Tiles {
			tt, err := tc.tileType()
			if err != nil {
				errs = append(errs, fmt.Errorf("catalog: tile %d: %w", i, err))
				continue
			}
			cat.Tiles = append(cat.Tiles, tt)
		}
	}
	if len(c.Catalog.Plants) > 0 {
		cat.Plants = cat.Plants[:0]
		for _, pc := range c.Catalog.Plants {
			cat.Plants = append(cat.Plants, meadow.PlantType{
				Name:           pc.Name,
				Size:           pc.Size,
				GrowsOnWetDirt: pc.GrowsOnWetDirt,
			})
		}
	}
	if len(c.Catalog.Animals) > 0 {
		def := meadow.DefaultCatalog().Animals[0]
		cat.Animals = cat.Animals[:0]
		for _, ac := range c.Catalog.Animals {
			at := meadow.AnimalType{Name: ac.Name, Radius: ac.Radius, Speed: ac.Speed, TurnSpeed: ac.TurnSpeed}
			if at.Speed == 0 {
				at.Speed = def.Speed
			}
			if at.TurnSpeed == 0 {
				at.TurnSpeed = def.TurnSpeed
			}
			cat.Animals = append(cat.Animals, at)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// DefaultTileID resolves Level.DefaultTile against cat.
func (c *Config) DefaultTileID(cat *meadow.Catalog) (int, error) {
	id, ok := cat.TileID(c.Level.DefaultTile)
	if !ok {
		return 0, fmt.Errorf("level: default_tile %q is not a tile type", c.Level.DefaultTile)
	}
	return id, nil
}

func (tc TileConfig) tileType() (meadow.TileType, error) {
	kind, ok := meadow.ParseTileKind(tc.Kind)
	if !ok {
		return meadow.TileType{}, fmt.Errorf("%q: unknown kind %q", tc.Name, tc.Kind)
	}
	dark, err := ParseHexColor(tc.Dark)
	if err != nil {
		return meadow.TileType{}, fmt.Errorf("%q: dark: %w", tc.Name, err)
	}
	light := dark
	if tc.Light != "" {
		light, err = ParseHexColor(tc.Light)
		if err != nil {
			return meadow.TileType{}, fmt.Errorf("%q: light: %w", tc.Name, err)
		}
	}
	return meadow.TileType{Name: tc.Name, Kind: kind, Height: tc.Height, Dark: dark, Light: light}, nil
}

// ParseHexColor parses "#rrggbb" (the leading # is optional).
func ParseHexColor(s string) (meadow.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return meadow.Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return meadow.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return meadow.RGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
