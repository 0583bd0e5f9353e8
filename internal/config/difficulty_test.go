package config

import "testing"

func TestSpawnOddsDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultTanksConfig().Difficulty)
	if got := d.SpawnOdds(240, 100000, 100000); got != 240 {
		t.Errorf("SpawnOdds() = %d, expected 240 with progression disabled", got)
	}
}

func TestSpawnOddsScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpawnOddsReduction: 200, MinSpawnOdds: 60},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected int
	}{
		{0, 240},
		{500, 140},
		{1000, 60}, // 240-200=40, clamped to floor
		{5000, 60},
	}
	for _, tc := range tests {
		if got := d.SpawnOdds(240, tc.score, 0); got != tc.expected {
			t.Errorf("SpawnOdds(score=%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestLevelTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}
	if got := d.Level(0, 1000); got != 1.0 {
		t.Errorf("Level past max = %v, expected 1.0", got)
	}
}
