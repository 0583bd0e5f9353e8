package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTanks loads the tank game configuration.
// An explicit path must exist and parse. Otherwise the first readable, valid
// file among ~/.tanks/configs/tanks.yaml and ./configs/tanks.yaml wins, then
// the embedded default. Files may be partial; missing fields keep defaults.
func LoadTanks(customPath string) (TanksConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TanksConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseTanks(data)
		if err != nil {
			return TanksConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths("tanks.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseTanks(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseTanks(defaultTanksYAML); err == nil {
		return cfg, nil
	}
	return DefaultTanksConfig(), nil
}

// parseTanks decodes YAML over the defaults and validates the result.
func parseTanks(data []byte) (TanksConfig, error) {
	cfg := DefaultTanksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TanksConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TanksConfig{}, err
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations, user directory first.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".tanks", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}

// ApplyTanksPreset modifies the config based on a difficulty preset.
// Every preset except fixed enables score progression from level 0, so the
// preset's spawn odds hold until points are earned.
func ApplyTanksPreset(cfg *TanksConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 0

	switch preset {
	case DifficultyEasy:
		cfg.Enemy.SpawnOdds = 360
		cfg.Enemy.FireOdds = 45
	case DifficultyHard:
		cfg.Enemy.SpawnOdds = 150
		cfg.Enemy.FireOdds = 20
		cfg.Player.Lives = 2
	}
}
