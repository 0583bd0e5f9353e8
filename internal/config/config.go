// Package config provides YAML-based game configuration loading and
// difficulty management for the tank game.
package config

import (
	"errors"
	"fmt"
)

// TanksConfig contains all tunable constants of the simulation.
type TanksConfig struct {
	Map        MapConfig        `yaml:"map"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MapConfig describes the tile grid and the fixed level layout.
type MapConfig struct {
	Rows       int          `yaml:"rows"`
	Cols       int          `yaml:"cols"`
	TileSize   float64      `yaml:"tile_size"`
	InnerWalls []WallConfig `yaml:"inner_walls"`
}

// WallConfig is a horizontal wall run: Row, columns [FromCol, ToCol).
type WallConfig struct {
	Row     int `yaml:"row"`
	FromCol int `yaml:"from_col"`
	ToCol   int `yaml:"to_col"`
}

// PlayerConfig defines the player tank.
type PlayerConfig struct {
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
	Lives         int     `yaml:"lives"`
	Speed         float64 `yaml:"speed"`
	FireCooldown  int     `yaml:"fire_cooldown"`
	InitialShotAt int     `yaml:"initial_shot_at"` // lastShotFrame before the first shot
}

// EnemyConfig defines enemy tanks and the spawner.
type EnemyConfig struct {
	Speed        float64 `yaml:"speed"`
	TurnEvery    int     `yaml:"turn_every"`    // Frames between heading re-rolls
	FireCooldown int     `yaml:"fire_cooldown"` // Minimum frames between shots
	FireOdds     int     `yaml:"fire_odds"`     // 1-in-N chance per frame once cooled down
	SpawnOdds    int     `yaml:"spawn_odds"`    // 1-in-N chance per frame to spawn
	SpawnMinX    float64 `yaml:"spawn_min_x"`
	SpawnWidth   float64 `yaml:"spawn_width"`
	SpawnMinY    float64 `yaml:"spawn_min_y"`
	SpawnHeight  float64 `yaml:"spawn_height"`
}

// ProjectileConfig defines bullets.
type ProjectileConfig struct {
	Speed   float64 `yaml:"speed"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"` // Muzzle offset from the tank's top-left
	OffsetY float64 `yaml:"offset_y"`
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PerKill int `yaml:"per_kill"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnOddsReduction int `yaml:"spawn_odds_reduction"` // Subtracted from spawn odds at max difficulty
	MinSpawnOdds       int `yaml:"min_spawn_odds"`
}

// Validate reports every invalid field at once.
func (c TanksConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("map.rows", float64(c.Map.Rows))
	positive("map.cols", float64(c.Map.Cols))
	positive("map.tile_size", c.Map.TileSize)
	positive("player.lives", float64(c.Player.Lives))
	positive("player.speed", c.Player.Speed)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.turn_every", float64(c.Enemy.TurnEvery))
	positive("enemy.fire_odds", float64(c.Enemy.FireOdds))
	positive("enemy.spawn_odds", float64(c.Enemy.SpawnOdds))
	positive("projectile.speed", c.Projectile.Speed)
	positive("projectile.width", c.Projectile.Width)
	positive("projectile.height", c.Projectile.Height)

	for i, w := range c.Map.InnerWalls {
		if w.Row <= 0 || w.Row >= c.Map.Rows-1 || w.FromCol < 0 || w.ToCol > c.Map.Cols || w.FromCol >= w.ToCol {
			errs = append(errs, fmt.Errorf("map.inner_walls[%d] out of range: %+v", i, w))
		}
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
