package game

import (
	"time"

	"chunk-roguelike/internal/gamemap"
	"chunk-roguelike/internal/msglog"
	"chunk-roguelike/internal/system"
)

// Config holds the tunable settings of a game session.
type Config struct {
	// Seed feeds the spawner's RNG. Zero picks a time-based seed.
	Seed int64
	// FOVRange is the sight radius of the player, in tiles.
	FOVRange int
	// LoadRadius is how many chunks around the player are loaded at start.
	LoadRadius int
	// LogCapacity is the number of messages kept for the HUD.
	LogCapacity int
	// FrameInterval paces redraws and spawn attempts when no key is pressed.
	FrameInterval time.Duration
	SpawnEnabled  bool
	Spawner       system.SpawnerConfig
	// SaveRunLog appends a summary of the session to runs.jsonl on exit.
	SaveRunLog bool
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		FOVRange:      50,
		LoadRadius:    gamemap.LoadDistance,
		LogCapacity:   msglog.DefaultCapacity,
		FrameInterval: 100 * time.Millisecond,
		SpawnEnabled:  true,
		Spawner:       system.DefaultSpawnerConfig(),
		SaveRunLog:    true,
	}
}

// normalized fills zero values with defaults and caps the sight radius to
// what the loaded chunks can cover.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.FOVRange <= 0 {
		c.FOVRange = def.FOVRange
	}
	if c.LoadRadius <= 0 {
		c.LoadRadius = def.LoadRadius
	}
	if c.LogCapacity <= 0 {
		c.LogCapacity = def.LogCapacity
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = def.FrameInterval
	}
	c.Spawner.Radius = max(c.Spawner.Radius, 0)
	// Movement keeps LoadDistance chunks loaded around the player, so sight
	// never reaches past that even when more was preloaded.
	c.FOVRange = min(c.FOVRange, min(c.LoadRadius, gamemap.LoadDistance)*gamemap.ChunkSize)
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}
