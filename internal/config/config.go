// Package config loads the host configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Shake-N-Baker/ADyingWorld/internal/world"
)

type Config struct {
	World  World  `yaml:"world"`
	Game   Game   `yaml:"game"`
	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`
}

type World struct {
	TilesWide int `yaml:"tiles_wide"`
	TilesHigh int `yaml:"tiles_high"`
	ZoneWide  int `yaml:"zone_wide"`
	ZoneHigh  int `yaml:"zone_high"`
	// Seed 0 picks a time-based seed at startup.
	Seed int64 `yaml:"seed"`
}

type Game struct {
	TickRateHz           int     `yaml:"tick_rate_hz"`
	TurnsPerDay          int     `yaml:"turns_per_day"`
	TurnIntervalSec      float64 `yaml:"turn_interval_sec"`
	AnimationIntervalSec float64 `yaml:"animation_interval_sec"`
	Villagers            int     `yaml:"villagers"`
}

type Server struct {
	Addr    string `yaml:"addr"`
	HostKey string `yaml:"host_key"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	wc := world.DefaultConfig()
	return Config{
		World: World{
			TilesWide: wc.TilesWide,
			TilesHigh: wc.TilesHigh,
			ZoneWide:  wc.ZoneWide,
			ZoneHigh:  wc.ZoneHigh,
		},
		Game: Game{
			TickRateHz:           20,
			TurnsPerDay:          360,
			TurnIntervalSec:      1.0,
			AnimationIntervalSec: 0.5,
			Villagers:            6,
		},
		Server: Server{
			Addr:    ":2222",
			HostKey: "host_key",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv lets PORT override the listen port.
func (c *Config) ApplyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		host := c.Server.Addr
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		c.Server.Addr = host + ":" + port
	}
}

// WorldConfig returns the map dimensions for world.New.
func (c Config) WorldConfig() world.Config {
	return world.Config{
		TilesWide: c.World.TilesWide,
		TilesHigh: c.World.TilesHigh,
		ZoneWide:  c.World.ZoneWide,
		ZoneHigh:  c.World.ZoneHigh,
	}
}

func (c Config) Validate() error {
	if err := c.WorldConfig().Validate(); err != nil {
		return err
	}
	switch {
	case c.Game.TickRateHz <= 0:
		return fmt.Errorf("game.tick_rate_hz must be positive, got %d", c.Game.TickRateHz)
	case c.Game.TurnsPerDay <= 0:
		return fmt.Errorf("game.turns_per_day must be positive, got %d", c.Game.TurnsPerDay)
	case c.Game.TurnIntervalSec <= 0:
		return fmt.Errorf("game.turn_interval_sec must be positive, got %v", c.Game.TurnIntervalSec)
	case c.Game.AnimationIntervalSec <= 0:
		return fmt.Errorf("game.animation_interval_sec must be positive, got %v", c.Game.AnimationIntervalSec)
	case c.Game.Villagers < 0:
		return fmt.Errorf("game.villagers must not be negative, got %d", c.Game.Villagers)
	case c.Server.Addr == "":
		return fmt.Errorf("server.addr is empty")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
