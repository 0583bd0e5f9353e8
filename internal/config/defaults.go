package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksConfig returns the hardcoded default configuration.
// It mirrors defaults/tanks.yaml and is used if the embedded file cannot be parsed.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		Map: MapConfig{
			Rows:     45,
			Cols:     67,
			TileSize: 16,
			InnerWalls: []WallConfig{
				{Row: 15, FromCol: 10, ToCol: 57},
				{Row: 30, FromCol: 10, ToCol: 57},
			},
		},
		Player: PlayerConfig{
			StartX:        540,
			StartY:        600,
			Lives:         3,
			Speed:         2.0,
			FireCooldown:  10,
			InitialShotAt: -300,
		},
		Enemy: EnemyConfig{
			Speed:        2.0,
			TurnEvery:    60,
			FireCooldown: 60,
			FireOdds:     30,
			SpawnOdds:    240,
			SpawnMinX:    30,
			SpawnWidth:   1000,
			SpawnMinY:    20,
			SpawnHeight:  180,
		},
		Projectile: ProjectileConfig{
			Speed:   4.0,
			Width:   13,
			Height:  10,
			OffsetX: 11,
			OffsetY: 11,
		},
		Scoring: ScoringConfig{
			PerKill: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpawnOddsReduction: 150,
				MinSpawnOdds:       60,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTanksYAML
}
